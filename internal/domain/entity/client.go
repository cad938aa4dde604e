package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Tipos de cliente.
const (
	ClientTypeNormal   = "Normal"
	ClientTypeExento   = "Exento"
	ClientTypeComodato = "Comodato"
)

// Estados de un cliente respecto a su saldo.
const (
	EstadoAlDia      = "Al día"
	EstadoPendiente  = "Pendiente"
	EstadoSuspendido = "Suspendido" // solo por suspensión administrativa explícita
)

// Métodos de pago aceptados.
const (
	MetodoEfectivo      = "Efectivo"
	MetodoTransferencia = "Transferencia"
)

// Client representa un abonado del servicio de internet.
// Las etiquetas JSON conservan el esquema con el que el sistema anterior
// guardaba los registros, de modo que un respaldo viejo sigue siendo legible.
type Client struct {
	ID            string          `json:"id"`
	ClientType    string          `json:"clientType"`
	Name          string          `json:"name"`
	LastName      string          `json:"lastName"`
	Cedula        string          `json:"cedula"`
	Phone         string          `json:"phone"`
	Address       string          `json:"address"`
	Place         string          `json:"place"`
	Comment       string          `json:"comment"`
	MonthlyFeeID  string          `json:"monthlyFeeIdentifier"` // letra del plan (A..J)
	MonthlyFee    decimal.Decimal `json:"monthlyFee"`           // snapshot del valor al asignar el plan, no referencia viva
	Balance       decimal.Decimal `json:"balance"`              // >0 debe, 0 al día, <0 saldo a favor
	Status        string          `json:"status"`
	LastPaymentDate time.Time     `json:"lastPaymentDate"`
	Payments      []Payment       `json:"payments"`
	Modifications []Modification  `json:"modifications"`
	DaysRemaining int             `json:"daysRemainingInMonth"` // snapshot de la creación, se exporta en CSV
	MAC           string          `json:"mac,omitempty"`
	IP            string          `json:"ip,omitempty"`
}

// Payment un pago o abono aplicado al saldo.
type Payment struct {
	Amount decimal.Decimal `json:"amount"`
	Date   time.Time       `json:"date"`
	Method string          `json:"type"` // Efectivo | Transferencia
	By     string          `json:"by"`
}

// Modification una entrada del historial de auditoría (append-only).
type Modification struct {
	Date    time.Time `json:"date"`
	By      string    `json:"by"`
	Type    string    `json:"type"`
	Details string    `json:"details,omitempty"`
}

// Tipos de entrada del historial de modificaciones. Los tipos de pago y
// abono llevan el método entre paréntesis, p. ej. "Pago de Mensualidad (Efectivo)".
const (
	ModCreacion           = "Creación de Cliente"
	ModPagoMensualidad    = "Pago de Mensualidad"
	ModAbonoSaldo         = "Abono de Saldo"
	ModModificacion       = "Modificación de Cliente"
	ModSaldoManual        = "Actualización de Saldo Manual"
	ModEliminacionPago    = "Eliminación de Pago"
	ModFacturacion        = "Facturación Mensual"
	ModImportacion        = "Importación"
	ModAsignacionEquipo   = "Asignación de Equipo"
	ModModificacionEquipo = "Modificación de Equipo"
	ModSuspension         = "Suspensión de Servicio"
	ModReactivacion       = "Reactivación de Servicio"
)

// EstadoPorSaldo deriva el estado a partir del signo del saldo.
// El estado Suspendido nunca sale de aquí; solo lo fija la suspensión
// administrativa y lo borra la siguiente transición derivada del saldo.
func EstadoPorSaldo(saldo decimal.Decimal) string {
	if saldo.GreaterThan(decimal.Zero) {
		return EstadoPendiente
	}
	return EstadoAlDia
}

// HasEquipment indica si el cliente tiene MAC o IP asignada.
func (c *Client) HasEquipment() bool {
	return c.MAC != "" || c.IP != ""
}

// Clone devuelve una copia profunda del cliente. Los repositorios entregan
// copias para que un caso de uso abortado no deje mutaciones parciales.
func (c *Client) Clone() *Client {
	cp := *c
	cp.Payments = make([]Payment, len(c.Payments))
	copy(cp.Payments, c.Payments)
	cp.Modifications = make([]Modification, len(c.Modifications))
	copy(cp.Modifications, c.Modifications)
	return &cp
}
