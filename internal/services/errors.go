package services

import "errors"

// Sentinel errors surfaced to the presentation layer. The auth errors carry
// the user-facing message; match with errors.Is.
var (
	ErrDuplicateAccount   = errors.New("el correo ya está registrado")
	ErrAccountNotFound    = errors.New("usuario no encontrado")
	ErrInvalidCredentials = errors.New("contraseña incorrecta")

	// ErrStorageUnavailable replaces any raw storage failure; the underlying
	// cause is logged at the store boundary and never propagated.
	ErrStorageUnavailable = errors.New("almacenamiento local no disponible")
)
