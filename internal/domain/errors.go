package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound           = errors.New("recurso no encontrado")
	ErrClientNotFound     = errors.New("cliente no encontrado")
	ErrUserNotFound       = errors.New("usuario no encontrado")
	ErrValidation         = errors.New("entrada inválida")
	ErrDuplicate          = errors.New("identificador duplicado")
	ErrIndexOutOfRange    = errors.New("índice de pago fuera de rango")
	ErrPreconditionNotMet = errors.New("precondición no cumplida")
	ErrInvalidToken       = errors.New("token de confirmación inválido o expirado")
	ErrAdminLimit         = errors.New("límite de administradores alcanzado")
	ErrUnauthorized       = errors.New("no autorizado")
	ErrForbidden          = errors.New("acceso denegado")
)
