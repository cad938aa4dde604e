package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jfarias-dev/wisp-cobros/internal/application/billing"
	"github.com/jfarias-dev/wisp-cobros/internal/application/dto"
	"github.com/jfarias-dev/wisp-cobros/internal/domain"
)

// EquipmentHandler maneja la asignación de MAC/IP a clientes (protegido).
type EquipmentHandler struct {
	uc *billing.EquipmentUseCase
}

// NewEquipmentHandler construye el handler.
func NewEquipmentHandler(uc *billing.EquipmentUseCase) *EquipmentHandler {
	return &EquipmentHandler{uc: uc}
}

// Assign asigna equipo por primera vez a un cliente.
// POST /api/clients/:id/equipment
func (h *EquipmentHandler) Assign(c *fiber.Ctx) error {
	var in dto.EquipmentRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Assign(c.Params("id"), in.MAC, in.IP, GetUsername(c))
	if err != nil {
		return equipmentError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// Modify cambia el equipo ya asignado de un cliente.
// PUT /api/clients/:id/equipment
func (h *EquipmentHandler) Modify(c *fiber.Ctx) error {
	var in dto.EquipmentRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Modify(c.Params("id"), in.MAC, in.IP, GetUsername(c))
	if err != nil {
		return equipmentError(c, err)
	}
	return c.JSON(out)
}

// CheckAvailability chequeo en vivo de unicidad de MAC/IP para el formulario.
// GET /api/equipment/availability?mac=&ip=&exclude=
func (h *EquipmentHandler) CheckAvailability(c *fiber.Ctx) error {
	out, err := h.uc.CheckAvailability(c.Query("mac"), c.Query("ip"), c.Query("exclude"))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// Partition separa los clientes con y sin equipo asignado.
// GET /api/equipment/partition
func (h *EquipmentHandler) Partition(c *fiber.Ctx) error {
	out, err := h.uc.Partition()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

func equipmentError(c *fiber.Ctx, err error) error {
	if err == domain.ErrClientNotFound {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "cliente no encontrado"})
	}
	if err == domain.ErrValidation {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "MAC e IP son obligatorios"})
	}
	if err == domain.ErrDuplicate {
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "DUPLICATE", Message: "la MAC o la IP ya están asignadas a otro cliente"})
	}
	return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
}
