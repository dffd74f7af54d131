package cli

import (
	"context"
	"fmt"
	"os"

	"mercadito/internal/models"
)

// getSimpleText and getPassword are indirections used to facilitate testing.
// They point to interactive input helpers and can be swapped in tests.
var getSimpleText = GetSimpleText
var getPassword = GetPassword

// Register prompts for email, password, and name and attempts to create a
// new account. A successful registration also starts the session. The
// discriminated store errors carry user-facing messages and are printed
// directly.
func (a *App) Register(ctx context.Context) error {
	email, err := getSimpleText(a.reader, "Correo electrónico", os.Stdout)
	if err != nil {
		return err
	}

	password, err := getPassword(os.Stdout)
	if err != nil {
		return err
	}

	name, err := getSimpleText(a.reader, "Nombre", os.Stdout)
	if err != nil {
		return err
	}

	if err := a.auth.Register(ctx, email, password, name); err != nil {
		fmt.Println("Error:", err)
		return err
	}

	fmt.Println("¡Cuenta creada!")
	return nil
}

// Login prompts for credentials and tries to authenticate.
func (a *App) Login(ctx context.Context) error {
	email, err := getSimpleText(a.reader, "Correo electrónico", os.Stdout)
	if err != nil {
		return err
	}

	password, err := getPassword(os.Stdout)
	if err != nil {
		return err
	}

	if err := a.auth.Login(ctx, email, password); err != nil {
		fmt.Println("Error:", err)
		return err
	}

	fmt.Println("Sesión iniciada")
	return nil
}

// Logout ends the current session. Safe to call when not logged in.
func (a *App) Logout(ctx context.Context) error {
	a.auth.Logout(ctx)
	fmt.Println("Sesión cerrada")
	return nil
}

// Profile prints the active session's profile.
func (a *App) Profile(ctx context.Context) error {
	user, ok := a.auth.CurrentUser()
	if !ok {
		fmt.Println("No has iniciado sesión")
		return nil
	}

	fmt.Println("Correo:", user.Email)
	fmt.Println("Nombre:", user.Name)
	if user.Photo != nil {
		fmt.Println("Foto:  ", *user.Photo)
	} else {
		fmt.Println("Foto:   (sin foto)")
	}
	return nil
}

// EditProfile prompts for a new name and photo reference; empty answers
// keep the current values.
func (a *App) EditProfile(ctx context.Context) error {
	if _, ok := a.auth.CurrentUser(); !ok {
		fmt.Println("No has iniciado sesión")
		return nil
	}

	name, err := getSimpleText(a.reader, "Nuevo nombre (vacío para mantener)", os.Stdout)
	if err != nil {
		return err
	}
	photo, err := getSimpleText(a.reader, "Nueva foto (vacío para mantener)", os.Stdout)
	if err != nil {
		return err
	}

	update := models.ProfileUpdate{}
	if name != "" {
		update.Name = &name
	}
	if photo != "" {
		update.Photo = &photo
	}
	if update.Name == nil && update.Photo == nil {
		fmt.Println("Sin cambios")
		return nil
	}

	a.auth.UpdateProfile(ctx, update)
	fmt.Println("Perfil actualizado")
	return nil
}
