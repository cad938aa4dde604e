package http

import (
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/jfarias-dev/wisp-cobros/internal/application/billing"
	"github.com/jfarias-dev/wisp-cobros/internal/application/dto"
	"github.com/jfarias-dev/wisp-cobros/internal/domain"
)

// PaymentHandler maneja pagos, abonos y correcciones de saldo (protegido).
type PaymentHandler struct {
	uc  *billing.PaymentUseCase
	pdf *billing.ReceiptPDFUseCase
}

// NewPaymentHandler construye el handler.
func NewPaymentHandler(uc *billing.PaymentUseCase, pdf *billing.ReceiptPDFUseCase) *PaymentHandler {
	return &PaymentHandler{uc: uc, pdf: pdf}
}

// Pay registra el pago de la mensualidad completa del cliente.
// POST /api/clients/:id/payments
func (h *PaymentHandler) Pay(c *fiber.Ctx) error {
	var in dto.PaymentRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Pay(c.Params("id"), in.Method, GetUsername(c))
	if err != nil {
		return paymentError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// Abono registra un pago parcial por un monto arbitrario.
// POST /api/clients/:id/abonos
func (h *PaymentHandler) Abono(c *fiber.Ctx) error {
	var in dto.PaymentRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Abono(c.Params("id"), in.Amount, in.Method, GetUsername(c))
	if err != nil {
		return paymentError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// RemovePayment revierte un pago del historial por índice.
// DELETE /api/clients/:id/payments/:index
func (h *PaymentHandler) RemovePayment(c *fiber.Ctx) error {
	index, err := strconv.Atoi(c.Params("index"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "índice de pago inválido"})
	}
	out, err := h.uc.RemovePayment(c.Params("id"), index, GetUsername(c))
	if err != nil {
		return paymentError(c, err)
	}
	return c.JSON(out)
}

// OverrideBalance fija el saldo del cliente a un valor arbitrario.
// PUT /api/clients/:id/balance
func (h *PaymentHandler) OverrideBalance(c *fiber.Ctx) error {
	var in dto.BalanceOverrideRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.OverrideBalance(c.Params("id"), in.Balance, GetUsername(c))
	if err != nil {
		return paymentError(c, err)
	}
	return c.JSON(out)
}

// Receipt reconstruye el recibo de un pago histórico.
// GET /api/clients/:id/payments/:index/receipt
func (h *PaymentHandler) Receipt(c *fiber.Ctx) error {
	index, err := strconv.Atoi(c.Params("index"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "índice de pago inválido"})
	}
	out, err := h.uc.Receipt(c.Params("id"), index)
	if err != nil {
		return paymentError(c, err)
	}
	return c.JSON(out)
}

// ReceiptPDF genera el recibo imprimible de un pago histórico.
// GET /api/clients/:id/payments/:index/receipt.pdf
func (h *PaymentHandler) ReceiptPDF(c *fiber.Ctx) error {
	index, err := strconv.Atoi(c.Params("index"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "índice de pago inválido"})
	}
	pdfBytes, err := h.pdf.Generate(c.Context(), c.Params("id"), index)
	if err != nil {
		return paymentError(c, err)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `inline; filename="recibo.pdf"`)
	return c.Send(pdfBytes)
}

// paymentError mapea los errores de dominio de pagos a respuestas HTTP.
func paymentError(c *fiber.Ctx, err error) error {
	if err == domain.ErrClientNotFound {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "cliente no encontrado"})
	}
	if err == domain.ErrValidation {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "monto o método de pago inválido"})
	}
	if err == domain.ErrIndexOutOfRange {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INDEX_OUT_OF_RANGE", Message: "el índice no corresponde a ningún pago"})
	}
	return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
}
