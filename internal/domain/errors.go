package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound     = errors.New("recurso no encontrado")
	ErrInvalidID    = errors.New("identificador inválido")
	ErrInvalidInput = errors.New("entrada inválida")
	ErrDuplicate    = errors.New("recurso duplicado")
	ErrNilEntity    = errors.New("entidad nula")

	// ErrConcurrency: la fila esperada no existía al momento de confirmar un update.
	ErrConcurrency = errors.New("actualización concurrente: la fila no existe")

	// Errores del proveedor de identidad.
	ErrUserNotFound      = errors.New("usuario no encontrado")
	ErrUserNameTaken     = errors.New("el email ya está registrado")
	ErrWeakPassword      = errors.New("la contraseña no cumple la política")
	ErrRoleNotFound      = errors.New("el rol no existe")
	ErrInvalidToken      = errors.New("token inválido")
	ErrEmailNotConfirmed = errors.New("el email no está confirmado")
)
