package dto

import "github.com/shopspring/decimal"

// FeeScheduleResponse tarifario: letra del plan -> valor mensual.
type FeeScheduleResponse struct {
	Fees map[string]decimal.Decimal `json:"fees"`
}

// FeeScheduleRequest body para actualizar el tarifario completo.
type FeeScheduleRequest struct {
	Fees map[string]decimal.Decimal `json:"fees"`
}

// BillingCalendarDTO días del ciclo de cobro (request y response).
type BillingCalendarDTO struct {
	NextPaymentDueDay int `json:"next_payment_due_day"`
	SuspensionDay     int `json:"suspension_day"`
	BillingDay        int `json:"billing_day"`
}

// BackupEmailDTO correo de respaldo (request y response).
type BackupEmailDTO struct {
	Email string `json:"email"`
}

// EquipmentRequest body para asignar o modificar MAC/IP de un cliente.
type EquipmentRequest struct {
	MAC string `json:"mac"`
	IP  string `json:"ip"`
}

// EquipmentAvailabilityResponse chequeo en vivo de unicidad de MAC/IP.
type EquipmentAvailabilityResponse struct {
	MACAvailable bool `json:"mac_available"`
	IPAvailable  bool `json:"ip_available"`
}

// EquipmentPartitionResponse clientes con y sin equipo asignado, para el
// selector de la pantalla de equipos.
type EquipmentPartitionResponse struct {
	Unassigned []ClientResponse `json:"unassigned"`
	Assigned   []ClientResponse `json:"assigned"`
}

// WhatsAppMessageRequest body para construir los enlaces de recordatorio.
// Recipient: all | pending | al_dia.
type WhatsAppMessageRequest struct {
	Recipient string `json:"recipient"`
	Text      string `json:"text"`
}

// WhatsAppLink enlace wa.me listo para abrir por cliente.
type WhatsAppLink struct {
	ClientID string `json:"client_id"`
	Name     string `json:"name"`
	Phone    string `json:"phone"`
	URL      string `json:"url"`
}

// WhatsAppLinksResponse enlaces generados para el filtro pedido.
type WhatsAppLinksResponse struct {
	Count int            `json:"count"`
	Links []WhatsAppLink `json:"links"`
}
