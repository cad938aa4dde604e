package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jfarias-dev/wisp-cobros/internal/application/dto"
	"github.com/jfarias-dev/wisp-cobros/internal/application/messaging"
	"github.com/jfarias-dev/wisp-cobros/internal/domain"
)

// MessageHandler maneja los recordatorios por WhatsApp (protegido).
type MessageHandler struct {
	uc *messaging.UseCase
}

// NewMessageHandler construye el handler.
func NewMessageHandler(uc *messaging.UseCase) *MessageHandler {
	return &MessageHandler{uc: uc}
}

// BuildLinks genera los enlaces wa.me para el filtro de destinatarios pedido.
// POST /api/messages/whatsapp
func (h *MessageHandler) BuildLinks(c *fiber.Ctx) error {
	var in dto.WhatsAppMessageRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.BuildLinks(in.Recipient, in.Text)
	if err != nil {
		if err == domain.ErrValidation {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "texto vacío o filtro de destinatarios desconocido"})
		}
		if err == domain.ErrNotFound {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "ningún cliente con teléfono coincide con el filtro"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// LinkQR devuelve un PNG con el QR de un enlace wa.me ya generado.
// GET /api/messages/whatsapp/qr?link=
func (h *MessageHandler) LinkQR(c *fiber.Ctx) error {
	link := c.Query("link")
	png, err := h.uc.LinkQR(link)
	if err != nil {
		if err == domain.ErrValidation {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "enlace requerido"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	c.Set(fiber.HeaderContentType, "image/png")
	return c.Send(png)
}
