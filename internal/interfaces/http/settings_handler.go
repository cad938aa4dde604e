package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jfarias-dev/wisp-cobros/internal/application/dto"
	"github.com/jfarias-dev/wisp-cobros/internal/application/usecase"
	"github.com/jfarias-dev/wisp-cobros/internal/domain"
)

// SettingsHandler maneja los ajustes del sistema (solo administradores).
type SettingsHandler struct {
	uc *usecase.SettingsUseCase
}

// NewSettingsHandler construye el handler.
func NewSettingsHandler(uc *usecase.SettingsUseCase) *SettingsHandler {
	return &SettingsHandler{uc: uc}
}

// GetFeeSchedule devuelve el tarifario vigente.
// GET /api/settings/fees
func (h *SettingsHandler) GetFeeSchedule(c *fiber.Ctx) error {
	out, err := h.uc.FeeSchedule()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// UpdateFeeSchedule reemplaza el tarifario completo.
// PUT /api/settings/fees
func (h *SettingsHandler) UpdateFeeSchedule(c *fiber.Ctx) error {
	var in dto.FeeScheduleRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.UpdateFeeSchedule(in)
	if err != nil {
		if err == domain.ErrValidation {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "cada tarifa debe tener letra y valor mayor que cero"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// GetBillingCalendar devuelve los días del ciclo de cobro.
// GET /api/settings/calendar
func (h *SettingsHandler) GetBillingCalendar(c *fiber.Ctx) error {
	out, err := h.uc.BillingCalendar()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// UpdateBillingCalendar guarda los días del ciclo de cobro.
// PUT /api/settings/calendar
func (h *SettingsHandler) UpdateBillingCalendar(c *fiber.Ctx) error {
	var in dto.BillingCalendarDTO
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.UpdateBillingCalendar(in)
	if err != nil {
		if err == domain.ErrValidation {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "días fuera de rango o corte antes del día límite de pago"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// GetBackupEmail devuelve el correo de respaldo configurado.
// GET /api/settings/backup-email
func (h *SettingsHandler) GetBackupEmail(c *fiber.Ctx) error {
	out, err := h.uc.BackupEmail()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// UpdateBackupEmail guarda el correo de respaldo.
// PUT /api/settings/backup-email
func (h *SettingsHandler) UpdateBackupEmail(c *fiber.Ctx) error {
	var in dto.BackupEmailDTO
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.UpdateBackupEmail(in)
	if err != nil {
		if err == domain.ErrValidation {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "correo inválido"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}
