// Package qr genera códigos QR PNG para los enlaces de WhatsApp, de modo
// que el operador pueda escanearlos desde su teléfono.
package qr

import (
	"fmt"

	qrcode "github.com/skip2/go-qrcode"
)

// Encoder implementa messaging.QRGenerator.
type Encoder struct{}

// NewEncoder construye el codificador.
func NewEncoder() *Encoder { return &Encoder{} }

// PNG codifica content como un QR cuadrado de size píxeles.
func (e *Encoder) PNG(content string, size int) ([]byte, error) {
	if size <= 0 {
		size = 256
	}
	png, err := qrcode.Encode(content, qrcode.Medium, size)
	if err != nil {
		return nil, fmt.Errorf("qr: codificar contenido: %w", err)
	}
	return png, nil
}
