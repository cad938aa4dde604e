package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jfarias-dev/wisp-cobros/internal/application/dto"
	"github.com/jfarias-dev/wisp-cobros/internal/application/usecase"
	"github.com/jfarias-dev/wisp-cobros/internal/domain"
)

// UserHandler maneja la administración de cuentas.
type UserHandler struct {
	uc *usecase.UserUseCase
}

// NewUserHandler construye el handler.
func NewUserHandler(uc *usecase.UserUseCase) *UserHandler {
	return &UserHandler{uc: uc}
}

// RegisterAdmin crea una cuenta administradora (máximo tres en total).
// POST /api/users/admins
func (h *UserHandler) RegisterAdmin(c *fiber.Ctx) error {
	var in dto.RegisterAdminRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.RegisterAdmin(in)
	if err != nil {
		if err == domain.ErrAdminLimit {
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "ADMIN_LIMIT", Message: "se alcanzó el máximo de cuentas administradoras"})
		}
		return userError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// CreateEmployee crea un empleado de caja.
// POST /api/users/employees
func (h *UserHandler) CreateEmployee(c *fiber.Ctx) error {
	var in dto.EmployeeRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.CreateEmployee(in)
	if err != nil {
		return userError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// UpdateEmployee actualiza datos, permisos y opcionalmente la contraseña.
// PUT /api/users/employees/:username
func (h *UserHandler) UpdateEmployee(c *fiber.Ctx) error {
	var in dto.EmployeeRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.UpdateEmployee(c.Params("username"), in)
	if err != nil {
		return userError(c, err)
	}
	return c.JSON(out)
}

// DeleteEmployee elimina un empleado de caja.
// DELETE /api/users/employees/:username
func (h *UserHandler) DeleteEmployee(c *fiber.Ctx) error {
	if err := h.uc.DeleteEmployee(c.Params("username")); err != nil {
		return userError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// List devuelve todos los usuarios registrados.
// GET /api/users
func (h *UserHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// Me devuelve el perfil del operador autenticado.
// GET /api/users/me
func (h *UserHandler) Me(c *fiber.Ctx) error {
	out, err := h.uc.Get(GetUsername(c))
	if err != nil {
		return userError(c, err)
	}
	return c.JSON(out)
}

// UpdateProfile actualiza el perfil del operador autenticado.
// PUT /api/users/me
func (h *UserHandler) UpdateProfile(c *fiber.Ctx) error {
	var in dto.ProfileRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.UpdateProfile(GetUsername(c), in)
	if err != nil {
		return userError(c, err)
	}
	return c.JSON(out)
}

func userError(c *fiber.Ctx, err error) error {
	if err == domain.ErrUserNotFound {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "usuario no encontrado"})
	}
	if err == domain.ErrValidation {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "username, contraseña y nombre son obligatorios"})
	}
	if err == domain.ErrDuplicate {
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "DUPLICATE", Message: "ya existe un usuario con ese username"})
	}
	if err == domain.ErrForbidden {
		return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: "FORBIDDEN", Message: "la cuenta no puede gestionarse por esta vía"})
	}
	return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
}
