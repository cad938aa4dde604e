package http

import (
	"bytes"

	"github.com/gofiber/fiber/v2"
	"github.com/jfarias-dev/wisp-cobros/internal/application/billing"
	"github.com/jfarias-dev/wisp-cobros/internal/application/dto"
	"github.com/jfarias-dev/wisp-cobros/internal/domain"
)

// CSVHandler maneja exportación e importación de la base de clientes
// (protegido).
type CSVHandler struct {
	uc *billing.CSVUseCase
}

// NewCSVHandler construye el handler.
func NewCSVHandler(uc *billing.CSVUseCase) *CSVHandler {
	return &CSVHandler{uc: uc}
}

// Export descarga la base completa de clientes como CSV.
// GET /api/clients/export
func (h *CSVHandler) Export(c *fiber.Ctx) error {
	var buf bytes.Buffer
	if _, err := h.uc.Export(&buf); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	c.Set(fiber.HeaderContentType, "text/csv; charset=utf-8")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="clientes.csv"`)
	return c.Send(buf.Bytes())
}

// Import agrega al sistema los clientes de un CSV. Acepta el archivo como
// multipart (campo "file") o como cuerpo crudo text/csv.
// POST /api/clients/import
func (h *CSVHandler) Import(c *fiber.Ctx) error {
	body := c.Body()
	if file, err := c.FormFile("file"); err == nil {
		f, err := file.Open()
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "no se pudo leer el archivo"})
		}
		defer f.Close()
		var buf bytes.Buffer
		if _, err := buf.ReadFrom(f); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "no se pudo leer el archivo"})
		}
		body = buf.Bytes()
	}
	if len(body) == 0 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "CSV vacío"})
	}
	count, err := h.uc.Import(bytes.NewReader(body), GetUsername(c))
	if err != nil {
		if err == domain.ErrValidation {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "el CSV no tiene el formato esperado"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(dto.CountResponse{Count: count, Message: "clientes importados"})
}
