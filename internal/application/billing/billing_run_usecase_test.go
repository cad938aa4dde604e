package billing_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jfarias-dev/wisp-cobros/internal/application/billing"
	"github.com/jfarias-dev/wisp-cobros/internal/domain"
	"github.com/jfarias-dev/wisp-cobros/internal/domain/entity"
)

// ──────────────────────────────────────────────────────────────────────────────
// La corrida mensual factura solo a los clientes con saldo exactamente cero,
// tarifa positiva y sin pago dentro del mes en curso. La deuda nunca se
// compone y el saldo a favor se respeta.
// ──────────────────────────────────────────────────────────────────────────────

func TestBillingRun_FueraDelDiaConfigurado_NoMutaNada(t *testing.T) {
	clients, settings := newTestRepos(t)
	clientUC := billing.NewClientUseCase(clients, settings)
	clientUC.Now = fixedClock(2025, time.September, 16)
	created, err := clientUC.Create(clientRequest("8001"), "admin")
	require.NoError(t, err)

	runUC := billing.NewBillingRunUseCase(clients, settings)
	runUC.Now = fixedClock(2025, time.September, 16) // el día configurado es 1

	count, err := runUC.Run("admin")
	assert.ErrorIs(t, err, domain.ErrPreconditionNotMet)
	assert.Zero(t, count)

	after, err := clientUC.GetByID(created.ID)
	require.NoError(t, err)
	assert.True(t, created.Balance.Equal(after.Balance), "la corrida rechazada no toca saldos")
	assert.Len(t, after.Modifications, len(created.Modifications))
}

func TestBillingRun_FacturaSoloASaldoCeroSinPagoDelMes(t *testing.T) {
	clients, settings := newTestRepos(t)
	clientUC := billing.NewClientUseCase(clients, settings)
	paymentUC := billing.NewPaymentUseCase(clients)

	// Altas en agosto para que ningún pago caiga en el ciclo de octubre.
	august := fixedClock(2025, time.August, 16)
	clientUC.Now = august
	paymentUC.Now = august

	// alDia: pagó en agosto y quedó en cero -> se factura en octubre.
	alDia, err := clientUC.Create(clientRequest("9001"), "admin")
	require.NoError(t, err)
	_, err = paymentUC.Abono(alDia.ID, alDia.Balance, entity.MetodoEfectivo, "admin")
	require.NoError(t, err)

	// deudor: nunca pagó -> su deuda no se compone.
	deudor, err := clientUC.Create(clientRequest("9002"), "admin")
	require.NoError(t, err)

	// aFavor: abonó de más -> el crédito se respeta.
	aFavor, err := clientUC.Create(clientRequest("9003"), "admin")
	require.NoError(t, err)
	_, err = paymentUC.Abono(aFavor.ID, aFavor.Balance.Add(decimal.NewFromInt(10000)), entity.MetodoEfectivo, "admin")
	require.NoError(t, err)

	// exento: letra fuera del tarifario, tarifa 0 -> nunca se factura.
	exentoReq := clientRequest("9004")
	exentoReq.MonthlyFeeID = "Z"
	exento, err := clientUC.Create(exentoReq, "admin")
	require.NoError(t, err)

	// recienPagado: quedó en cero pagando el mismo día de la corrida.
	recienPagado, err := clientUC.Create(clientRequest("9005"), "admin")
	require.NoError(t, err)
	octoberFirst := fixedClock(2025, time.October, 1)
	paymentUC.Now = octoberFirst
	_, err = paymentUC.Abono(recienPagado.ID, recienPagado.Balance, entity.MetodoEfectivo, "admin")
	require.NoError(t, err)

	runUC := billing.NewBillingRunUseCase(clients, settings)
	runUC.Now = octoberFirst

	count, err := runUC.Run("admin")
	require.NoError(t, err)
	assert.Equal(t, 1, count, "solo el cliente en cero sin pago del ciclo se factura")

	facturado, err := clientUC.GetByID(alDia.ID)
	require.NoError(t, err)
	assert.True(t, decimal.NewFromInt(60000).Equal(facturado.Balance),
		"al facturado se le carga la mensualidad completa")
	assert.Equal(t, entity.EstadoPendiente, facturado.Status)
	last := facturado.Modifications[len(facturado.Modifications)-1]
	assert.Equal(t, entity.ModFacturacion, last.Type)
	assert.Equal(t, "admin", last.By)

	for _, id := range []string{deudor.ID, aFavor.ID, exento.ID, recienPagado.ID} {
		c, err := clientUC.GetByID(id)
		require.NoError(t, err)
		lastMod := c.Modifications[len(c.Modifications)-1]
		assert.NotEqual(t, entity.ModFacturacion, lastMod.Type,
			"los clientes fuera del criterio no reciben entrada de facturación")
	}
}

func TestBillingRun_Stats(t *testing.T) {
	clients, settings := newTestRepos(t)
	clientUC := billing.NewClientUseCase(clients, settings)
	paymentUC := billing.NewPaymentUseCase(clients)
	clientUC.Now = fixedClock(2025, time.September, 16)
	paymentUC.Now = clientUC.Now

	pendiente, err := clientUC.Create(clientRequest("9101"), "admin")
	require.NoError(t, err)
	_ = pendiente

	enCero, err := clientUC.Create(clientRequest("9102"), "admin")
	require.NoError(t, err)
	_, err = paymentUC.Abono(enCero.ID, enCero.Balance, entity.MetodoEfectivo, "admin")
	require.NoError(t, err)

	credito, err := clientUC.Create(clientRequest("9103"), "admin")
	require.NoError(t, err)
	_, err = paymentUC.Abono(credito.ID, credito.Balance.Add(decimal.NewFromInt(1000)), entity.MetodoEfectivo, "admin")
	require.NoError(t, err)

	runUC := billing.NewBillingRunUseCase(clients, settings)
	stats, err := runUC.Stats()
	require.NoError(t, err)

	assert.Equal(t, 1, stats.BillingDay, "el día de facturación por defecto es 1")
	assert.Equal(t, 1, stats.PendingCount)
	assert.Equal(t, 1, stats.UpToDateCount)
	assert.Equal(t, 1, stats.CreditCount)
}
