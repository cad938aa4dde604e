// Package billing contiene los cálculos puros del ciclo de cobro.
package billing

import (
	"time"

	"github.com/shopspring/decimal"
)

// DaysInMonth días del mes calendario de la fecha dada.
func DaysInMonth(date time.Time) int {
	firstOfNext := time.Date(date.Year(), date.Month(), 1, 0, 0, 0, 0, date.Location()).AddDate(0, 1, 0)
	return firstOfNext.AddDate(0, 0, -1).Day()
}

// DaysRemaining días que faltan del mes contando el día de la fecha.
func DaysRemaining(date time.Time) int {
	return DaysInMonth(date) - date.Day() + 1
}

// Prorate calcula el saldo inicial prorrateado de un cliente creado en la
// fecha dada: fee * díasRestantes / díasDelMes, redondeado a 2 decimales.
// El día de creación cuenta como día restante; crear el último día de un mes
// de 30 días con tarifa 60000 da 60000 * 1/30 = 2000.
func Prorate(fee decimal.Decimal, date time.Time) decimal.Decimal {
	days := DaysInMonth(date)
	remaining := DaysRemaining(date)
	return fee.Mul(decimal.NewFromInt(int64(remaining))).
		Div(decimal.NewFromInt(int64(days))).
		Round(2)
}

// SameBillingCycle indica si dos fechas caen en el mismo mes calendario del
// mismo año. La corrida mensual lo usa para no refacturar a un cliente que
// ya pagó dentro del ciclo.
func SameBillingCycle(a, b time.Time) bool {
	return a.Year() == b.Year() && a.Month() == b.Month()
}
