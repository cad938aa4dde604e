package dto

import (
	"time"

	"github.com/jfarias-dev/wisp-cobros/internal/domain/entity"
)

// LoginRequest body para POST /api/auth/login.
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// LoginResponse token + usuario autenticado.
type LoginResponse struct {
	Token string       `json:"token"`
	User  UserResponse `json:"user"`
}

// RegisterAdminRequest body para crear una cuenta administradora.
type RegisterAdminRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
	Name     string `json:"name"`
	LastName string `json:"last_name,omitempty"`
	Phone    string `json:"phone,omitempty"`
	Email    string `json:"email,omitempty"`
}

// EmployeeRequest body para crear o actualizar un empleado de caja.
// Password vacío en una actualización conserva la contraseña actual.
type EmployeeRequest struct {
	Username    string              `json:"username"`
	Password    string              `json:"password,omitempty"`
	Name        string              `json:"name"`
	LastName    string              `json:"last_name"`
	Phone       string              `json:"phone"`
	Email       string              `json:"email"`
	Permissions *entity.Permissions `json:"permissions,omitempty"`
}

// ProfileRequest body para que un operador actualice su propio perfil.
type ProfileRequest struct {
	Name     string `json:"name"`
	LastName string `json:"last_name"`
	Phone    string `json:"phone"`
	Email    string `json:"email"`
}

// UserResponse usuario en respuestas (nunca incluye el hash).
type UserResponse struct {
	Username    string             `json:"username"`
	Role        string             `json:"role"`
	Name        string             `json:"name"`
	LastName    string             `json:"last_name,omitempty"`
	Phone       string             `json:"phone,omitempty"`
	Email       string             `json:"email,omitempty"`
	Permissions entity.Permissions `json:"permissions"`
	CreatedAt   time.Time          `json:"created_at"`
	UpdatedAt   time.Time          `json:"updated_at"`
}
