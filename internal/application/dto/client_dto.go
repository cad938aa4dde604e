package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// ClientRequest body para crear o actualizar un cliente. El equipo (MAC/IP)
// se gestiona por separado en los endpoints de equipo.
type ClientRequest struct {
	ClientType   string `json:"client_type,omitempty"` // Normal | Exento | Comodato
	Name         string `json:"name"`
	LastName     string `json:"last_name"`
	Cedula       string `json:"cedula"`
	Phone        string `json:"phone,omitempty"`
	Address      string `json:"address,omitempty"`
	Place        string `json:"place,omitempty"`
	Comment      string `json:"comment,omitempty"`
	MonthlyFeeID string `json:"monthly_fee_identifier"`
}

// PaymentDTO un pago del historial.
type PaymentDTO struct {
	Amount decimal.Decimal `json:"amount"`
	Date   time.Time       `json:"date"`
	Method string          `json:"method"`
	By     string          `json:"by"`
}

// ModificationDTO una entrada del historial de auditoría.
type ModificationDTO struct {
	Date    time.Time `json:"date"`
	By      string    `json:"by"`
	Type    string    `json:"type"`
	Details string    `json:"details,omitempty"`
}

// ClientResponse cliente completo en respuestas.
type ClientResponse struct {
	ID              string            `json:"id"`
	ClientType      string            `json:"client_type"`
	Name            string            `json:"name"`
	LastName        string            `json:"last_name"`
	Cedula          string            `json:"cedula"`
	Phone           string            `json:"phone,omitempty"`
	Address         string            `json:"address,omitempty"`
	Place           string            `json:"place,omitempty"`
	Comment         string            `json:"comment,omitempty"`
	MonthlyFeeID    string            `json:"monthly_fee_identifier"`
	MonthlyFee      decimal.Decimal   `json:"monthly_fee"`
	Balance         decimal.Decimal   `json:"balance"`
	Status          string            `json:"status"`
	LastPaymentDate time.Time         `json:"last_payment_date"`
	Payments        []PaymentDTO      `json:"payments"`
	Modifications   []ModificationDTO `json:"modifications"`
	MAC             string            `json:"mac,omitempty"`
	IP              string            `json:"ip,omitempty"`
}

// PublicClientResponse lo único que expone la consulta pública por cédula.
type PublicClientResponse struct {
	Name     string          `json:"name"`
	LastName string          `json:"last_name"`
	Status   string          `json:"status"`
	Balance  decimal.Decimal `json:"balance"`
}

// BillingStatsResponse contadores de la página de facturación.
type BillingStatsResponse struct {
	BillingDay     int `json:"billing_day"`
	PendingCount   int `json:"pending_count"`    // saldo > 0
	CreditCount    int `json:"credit_count"`     // saldo < 0
	UpToDateCount  int `json:"up_to_date_count"` // saldo == 0
}
