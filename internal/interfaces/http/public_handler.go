package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jfarias-dev/wisp-cobros/internal/application/billing"
	"github.com/jfarias-dev/wisp-cobros/internal/application/dto"
	"github.com/jfarias-dev/wisp-cobros/internal/domain"
)

// PublicHandler maneja la consulta de estado sin autenticación.
type PublicHandler struct {
	uc *billing.ClientUseCase
}

// NewPublicHandler construye el handler.
func NewPublicHandler(uc *billing.ClientUseCase) *PublicHandler {
	return &PublicHandler{uc: uc}
}

// Query devuelve nombre, estado y saldo por cédula. Es la única ruta
// pública de datos y va detrás del rate limit por IP.
// GET /api/public/clients/:cedula
func (h *PublicHandler) Query(c *fiber.Ctx) error {
	out, err := h.uc.PublicQuery(c.Params("cedula"))
	if err != nil {
		if err == domain.ErrClientNotFound {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "no existe un cliente con esa cédula"})
		}
		if err == domain.ErrValidation {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "cédula requerida"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}
