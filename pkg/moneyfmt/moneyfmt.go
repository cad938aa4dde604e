// Package moneyfmt formatea montos en pesos con la convención es-CO
// (separador de miles con punto), igual que los recibos y el historial
// del sistema anterior.
package moneyfmt

import (
	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

var printer = message.NewPrinter(language.MustParse("es-CO"))

// Pesos formatea un monto como "$60.000" o "$32.258,06".
// Los montos enteros se muestran sin decimales.
func Pesos(d decimal.Decimal) string {
	if d.Equal(d.Truncate(0)) {
		return printer.Sprintf("$%v", number.Decimal(d.IntPart()))
	}
	f, _ := d.Float64()
	return printer.Sprintf("$%v", number.Decimal(f,
		number.MinFractionDigits(2), number.MaxFractionDigits(2)))
}
