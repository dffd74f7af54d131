package cli

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"strings"

	"mercadito/internal/models"
)

// List prints the listings matching the current filter state.
func (a *App) List(ctx context.Context) error {
	a.render(a.catalog.Filtered())
	return nil
}

// Search replaces the search text and prints the resulting view. An empty
// query clears the text filter.
func (a *App) Search(ctx context.Context, query string) error {
	a.catalog.SetSearchQuery(query)
	a.render(a.catalog.Filtered())
	return nil
}

// Category replaces the category filter ("all" disables it) and prints the
// resulting view.
func (a *App) Category(ctx context.Context, id string) error {
	category := models.Category(id)
	if category != models.CategoryAll && !category.Valid() {
		fmt.Println("Categoría desconocida:", id)
		return nil
	}

	a.catalog.SetSelectedCategory(category)
	a.render(a.catalog.Filtered())
	return nil
}

// Categories prints the category table.
func (a *App) Categories(ctx context.Context) error {
	for _, ci := range models.Categories {
		fmt.Printf("%s  %-12s %s\n", ci.Emoji, ci.ID, ci.Name)
	}
	return nil
}

// Add prompts for the listing fields, validates them, snapshots the seller
// from the active session, and publishes the listing. Requires a session.
func (a *App) Add(ctx context.Context) error {
	user, ok := a.auth.CurrentUser()
	if !ok {
		fmt.Println("Inicia sesión para publicar")
		return nil
	}

	title, err := getSimpleText(a.reader, "Título", os.Stdout)
	if err != nil {
		return err
	}
	description, err := GetMultiline(a.reader, "Descripción", os.Stdout)
	if err != nil {
		return err
	}
	priceText, err := getSimpleText(a.reader, "Precio (€)", os.Stdout)
	if err != nil {
		return err
	}
	price, err := strconv.ParseFloat(priceText, 64)
	if err != nil {
		fmt.Println("Por favor ingresa un precio válido")
		return nil
	}
	categoryText, err := getSimpleText(a.reader, "Categoría (ver 'categories')", os.Stdout)
	if err != nil {
		return err
	}
	conditionText, err := getSimpleText(a.reader, "Estado (new, like-new, good, fair, poor)", os.Stdout)
	if err != nil {
		return err
	}
	location, err := getSimpleText(a.reader, "Ubicación", os.Stdout)
	if err != nil {
		return err
	}
	image, err := getSimpleText(a.reader, "Imagen (vacío para usar la imagen por defecto)", os.Stdout)
	if err != nil {
		return err
	}

	sellerName := user.Name
	if sellerName == "" {
		sellerName = "Usuario"
	}
	sellerAvatar := "https://i.pravatar.cc/150?img=1"
	if user.Photo != nil {
		sellerAvatar = *user.Photo
	}

	input := models.ListingInput{
		Title:       strings.TrimSpace(title),
		Description: strings.TrimSpace(description),
		Price:       price,
		Category:    models.Category(categoryText),
		Location:    strings.TrimSpace(location),
		Seller:      models.Seller{Name: sellerName, Avatar: sellerAvatar},
		Condition:   models.Condition(conditionText),
	}
	if image != "" {
		input.Images = []string{image}
	}

	if err := a.validate.Struct(input); err != nil {
		fmt.Println("Por favor completa todos los campos obligatorios:", err)
		return nil
	}

	listing := a.catalog.AddListing(input)
	a.log.Info(ctx, "listing published", "id", listing.ID, "title", listing.Title)
	fmt.Println("¡Tu producto ha sido publicado!")
	return nil
}

// Show prints the details of the n-th listing of the last printed view.
func (a *App) Show(ctx context.Context, arg string) error {
	n, err := strconv.Atoi(arg)
	if err != nil || n < 1 || n > len(a.lastView) {
		fmt.Println("Uso: show <n> (según la última lista mostrada)")
		return nil
	}

	l := a.lastView[n-1]
	fmt.Printf("%s — %.2f €\n", l.Title, l.Price)
	fmt.Println(l.Description)
	fmt.Println("Categoría:", l.Category, "· Estado:", l.Condition)
	fmt.Println("Ubicación:", l.Location)
	fmt.Println("Vendedor: ", l.Seller.Name)
	for _, img := range l.Images {
		fmt.Println("Imagen:   ", img)
	}
	fmt.Println("Publicado: ", l.CreatedAt.Format("2006-01-02"))
	return nil
}

// render prints a listing view and remembers it for "show <n>".
func (a *App) render(listings []models.Listing) {
	a.lastView = listings

	if len(listings) == 0 {
		fmt.Println("No se encontraron productos")
		return
	}

	if q := a.catalog.SearchQuery(); q != "" {
		fmt.Println("Búsqueda:", q)
	}
	if c := a.catalog.SelectedCategory(); c != models.CategoryAll {
		fmt.Println("Categoría:", c)
	}
	for i, l := range listings {
		fmt.Printf("%2d. %s — %.2f € (%s) %s\n", i+1, l.Title, l.Price, l.Category, l.Location)
	}
}
