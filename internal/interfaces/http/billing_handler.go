package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jfarias-dev/wisp-cobros/internal/application/billing"
	"github.com/jfarias-dev/wisp-cobros/internal/application/dto"
	"github.com/jfarias-dev/wisp-cobros/internal/domain"
)

// BillingHandler maneja la facturación mensual (protegido).
type BillingHandler struct {
	uc *billing.BillingRunUseCase
}

// NewBillingHandler construye el handler.
func NewBillingHandler(uc *billing.BillingRunUseCase) *BillingHandler {
	return &BillingHandler{uc: uc}
}

// Run ejecuta la facturación mensual; solo procede el día configurado.
// POST /api/billing/run
func (h *BillingHandler) Run(c *fiber.Ctx) error {
	count, err := h.uc.Run(GetUsername(c))
	if err != nil {
		if err == domain.ErrPreconditionNotMet {
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "NOT_BILLING_DAY", Message: "hoy no es el día de facturación configurado"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(dto.CountResponse{Count: count, Message: "clientes facturados"})
}

// Stats devuelve los contadores de la página de facturación.
// GET /api/billing/stats
func (h *BillingHandler) Stats(c *fiber.Ctx) error {
	out, err := h.uc.Stats()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}
