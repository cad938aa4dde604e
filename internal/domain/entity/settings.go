package entity

import "github.com/shopspring/decimal"

// FeeSchedule tarifario: letra del plan -> valor de la mensualidad.
// Editable por un administrador; los clientes guardan un snapshot del valor
// al momento de asignar el plan, no una referencia viva a este mapa.
type FeeSchedule map[string]decimal.Decimal

// DefaultFeeSchedule tarifario inicial (A..J).
func DefaultFeeSchedule() FeeSchedule {
	return FeeSchedule{
		"A": decimal.NewFromInt(60000),
		"B": decimal.NewFromInt(70000),
		"C": decimal.NewFromInt(80000),
		"D": decimal.NewFromInt(90000),
		"E": decimal.NewFromInt(100000),
		"F": decimal.NewFromInt(110000),
		"G": decimal.NewFromInt(120000),
		"H": decimal.NewFromInt(130000),
		"I": decimal.NewFromInt(140000),
		"J": decimal.NewFromInt(150000),
	}
}

// Resolve devuelve el valor de la mensualidad para la letra dada.
// Una letra desconocida resuelve a 0.
func (fs FeeSchedule) Resolve(id string) decimal.Decimal {
	if v, ok := fs[id]; ok {
		return v
	}
	return decimal.Zero
}

// BillingCalendar días configurados del ciclo de cobro.
type BillingCalendar struct {
	NextPaymentDueDay int `json:"nextPaymentDueDay"` // día límite de pago
	SuspensionDay     int `json:"suspensionDay"`     // día de corte del servicio
	BillingDay        int `json:"billingDay"`        // día de facturación mensual
}

// DefaultBillingCalendar valores iniciales del ciclo.
func DefaultBillingCalendar() BillingCalendar {
	return BillingCalendar{NextPaymentDueDay: 5, SuspensionDay: 10, BillingDay: 1}
}

// Valid aplica las mismas reglas del formulario de ajustes: días dentro del
// mes y el corte siempre después del día límite de pago.
func (bc BillingCalendar) Valid() bool {
	if bc.NextPaymentDueDay <= 0 || bc.NextPaymentDueDay > 31 {
		return false
	}
	if bc.SuspensionDay <= 0 || bc.SuspensionDay > 31 {
		return false
	}
	if bc.BillingDay <= 0 || bc.BillingDay > 30 {
		return false
	}
	return bc.SuspensionDay > bc.NextPaymentDueDay
}
