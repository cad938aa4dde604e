package billing

import (
	"context"

	"github.com/jfarias-dev/wisp-cobros/internal/application/dto"
)

// ReceiptPDFGenerator puerto para la representación imprimible del recibo.
// La implementación Maroto vive en infrastructure/pdf.
type ReceiptPDFGenerator interface {
	GenerateReceiptPDF(ctx context.Context, receipt *dto.ReceiptResponse) ([]byte, error)
}
