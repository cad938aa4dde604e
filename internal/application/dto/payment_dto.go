package dto

import "github.com/shopspring/decimal"

// PaymentRequest body para pagar la mensualidad o abonar al saldo.
// En el pago de mensualidad Amount se ignora y se usa la tarifa del cliente.
type PaymentRequest struct {
	Amount decimal.Decimal `json:"amount"`
	Method string          `json:"method"` // Efectivo | Transferencia
}

// BalanceOverrideRequest body para la actualización manual de saldo.
type BalanceOverrideRequest struct {
	Balance decimal.Decimal `json:"balance"`
}

// ReceiptResponse artefacto de recibo producido por pago/abono. Es un
// canal lateral para mostrar/imprimir: no se persiste.
type ReceiptResponse struct {
	Client  ClientResponse `json:"client"` // snapshot con el saldo nuevo
	Payment PaymentDTO     `json:"payment"`
}

// DeletionTokenResponse primera fase del protocolo de borrado.
type DeletionTokenResponse struct {
	Token   string `json:"token"`
	Message string `json:"message"`
}
