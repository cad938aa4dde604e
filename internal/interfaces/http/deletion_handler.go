package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jfarias-dev/wisp-cobros/internal/application/billing"
	"github.com/jfarias-dev/wisp-cobros/internal/application/dto"
	"github.com/jfarias-dev/wisp-cobros/internal/domain"
)

// DeletionHandler maneja el borrado en dos fases (protegido).
type DeletionHandler struct {
	uc *billing.DeletionUseCase
}

// NewDeletionHandler construye el handler.
func NewDeletionHandler(uc *billing.DeletionUseCase) *DeletionHandler {
	return &DeletionHandler{uc: uc}
}

// RequestOne solicita el borrado de un cliente y devuelve un token de
// confirmación de un solo uso.
// POST /api/clients/:id/delete-request
func (h *DeletionHandler) RequestOne(c *fiber.Ctx) error {
	out, err := h.uc.RequestOne(c.Params("id"))
	if err != nil {
		if err == domain.ErrClientNotFound {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "cliente no encontrado"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// RequestAll solicita el borrado de toda la base de clientes.
// POST /api/clients/delete-all-request
func (h *DeletionHandler) RequestAll(c *fiber.Ctx) error {
	out, err := h.uc.RequestAll()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// Confirm consume el token y ejecuta el borrado solicitado.
// POST /api/clients/delete-confirm/:token
func (h *DeletionHandler) Confirm(c *fiber.Ctx) error {
	count, err := h.uc.Confirm(c.Params("token"))
	if err != nil {
		if err == domain.ErrInvalidToken {
			return c.Status(fiber.StatusGone).JSON(dto.ErrorResponse{Code: "INVALID_TOKEN", Message: "token de borrado inválido o expirado"})
		}
		if err == domain.ErrClientNotFound {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "cliente no encontrado"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(dto.CountResponse{Count: count, Message: "clientes eliminados"})
}
