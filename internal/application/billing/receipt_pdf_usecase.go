package billing

import (
	"context"
)

// ReceiptPDFUseCase genera el PDF de un recibo de pago del historial.
type ReceiptPDFUseCase struct {
	payments *PaymentUseCase
	pdfGen   ReceiptPDFGenerator
}

// NewReceiptPDFUseCase construye el caso de uso.
func NewReceiptPDFUseCase(payments *PaymentUseCase, pdfGen ReceiptPDFGenerator) *ReceiptPDFUseCase {
	return &ReceiptPDFUseCase{payments: payments, pdfGen: pdfGen}
}

// Generate reconstruye el recibo del pago en la posición dada y lo renderiza.
func (uc *ReceiptPDFUseCase) Generate(ctx context.Context, clientID string, index int) ([]byte, error) {
	receipt, err := uc.payments.Receipt(clientID, index)
	if err != nil {
		return nil, err
	}
	return uc.pdfGen.GenerateReceiptPDF(ctx, receipt)
}
