package moneyfmt_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/jfarias-dev/wisp-cobros/pkg/moneyfmt"
)

func TestPesos_EnterosConSeparadorDeMiles(t *testing.T) {
	assert.Equal(t, "$60.000", moneyfmt.Pesos(decimal.NewFromInt(60000)))
	assert.Equal(t, "$0", moneyfmt.Pesos(decimal.Zero))
	assert.Equal(t, "$1.190.000", moneyfmt.Pesos(decimal.NewFromInt(1190000)))
}

func TestPesos_NegativoConservaElSigno(t *testing.T) {
	// Saldo a favor del cliente.
	assert.Equal(t, "$-5.000", moneyfmt.Pesos(decimal.NewFromInt(-5000)))
}

func TestPesos_DecimalesConComa(t *testing.T) {
	assert.Equal(t, "$32.258,06", moneyfmt.Pesos(decimal.NewFromFloat(32258.06)))
}
