package billing_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jfarias-dev/wisp-cobros/internal/application/billing"
	"github.com/jfarias-dev/wisp-cobros/internal/application/dto"
	"github.com/jfarias-dev/wisp-cobros/internal/domain"
	"github.com/jfarias-dev/wisp-cobros/internal/domain/entity"
	"github.com/jfarias-dev/wisp-cobros/internal/domain/repository"
	"github.com/jfarias-dev/wisp-cobros/internal/infrastructure/kvstore"
	"github.com/jfarias-dev/wisp-cobros/internal/infrastructure/memory"
	"github.com/jfarias-dev/wisp-cobros/pkg/logger"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers compartidos por los tests del paquete: repos en memoria sobre un
// FileStore temporal y un reloj fijo para que el prorrateo sea determinista.
// ──────────────────────────────────────────────────────────────────────────────

func newTestRepos(t *testing.T) (repository.ClientRepository, repository.SettingsRepository) {
	t.Helper()
	store, err := kvstore.NewFileStore(t.TempDir())
	require.NoError(t, err, "abrir el FileStore temporal no debe fallar")
	t.Cleanup(func() { _ = store.Close() })
	return memory.NewClientRepository(store, logger.Nop()),
		memory.NewSettingsRepository(store, logger.Nop())
}

func fixedClock(year int, month time.Month, day int) func() time.Time {
	return func() time.Time {
		return time.Date(year, month, day, 10, 0, 0, 0, time.UTC)
	}
}

func clientRequest(cedula string) dto.ClientRequest {
	return dto.ClientRequest{
		Name:         "María",
		LastName:     "González",
		Cedula:       cedula,
		Phone:        "3001234567",
		Address:      "Calle 10 # 4-21",
		Place:        "Vereda El Carmen",
		MonthlyFeeID: "A",
	}
}

// ── Alta de clientes ──────────────────────────────────────────────────────────

func TestClientCreate_ProrrateaPrimeraMensualidad(t *testing.T) {
	clients, settings := newTestRepos(t)
	uc := billing.NewClientUseCase(clients, settings)
	// 16 de septiembre: quedan 15 días de 30 -> media mensualidad.
	uc.Now = fixedClock(2025, time.September, 16)

	out, err := uc.Create(clientRequest("1001"), "admin")
	require.NoError(t, err)

	assert.True(t, decimal.NewFromInt(30000).Equal(out.Balance),
		"el saldo inicial debe ser la mitad de la tarifa A (quedan 15/30 días)")
	assert.Equal(t, entity.EstadoPendiente, out.Status, "con saldo > 0 el estado es Pendiente")
	assert.True(t, decimal.NewFromInt(60000).Equal(out.MonthlyFee),
		"la tarifa de la letra A debe quedar como snapshot en el cliente")
	require.Len(t, out.Modifications, 1)
	assert.Equal(t, entity.ModCreacion, out.Modifications[0].Type)
	assert.Equal(t, "admin", out.Modifications[0].By)
}

func TestClientCreate_PrimerDiaDelMes_CobraMesCompleto(t *testing.T) {
	clients, settings := newTestRepos(t)
	uc := billing.NewClientUseCase(clients, settings)
	uc.Now = fixedClock(2025, time.September, 1)

	out, err := uc.Create(clientRequest("1002"), "admin")
	require.NoError(t, err)
	assert.True(t, decimal.NewFromInt(60000).Equal(out.Balance),
		"un alta el día 1 paga el mes completo")
}

func TestClientCreate_LetraDesconocida_TarifaCero(t *testing.T) {
	clients, settings := newTestRepos(t)
	uc := billing.NewClientUseCase(clients, settings)
	uc.Now = fixedClock(2025, time.September, 16)

	in := clientRequest("1003")
	in.MonthlyFeeID = "Z"
	out, err := uc.Create(in, "admin")
	require.NoError(t, err)
	assert.True(t, out.MonthlyFee.IsZero(), "una letra fuera del tarifario resuelve a 0")
	assert.True(t, out.Balance.IsZero())
	assert.Equal(t, entity.EstadoAlDia, out.Status)
}

func TestClientCreate_CamposObligatorios(t *testing.T) {
	clients, settings := newTestRepos(t)
	uc := billing.NewClientUseCase(clients, settings)

	in := clientRequest("1004")
	in.Name = ""
	_, err := uc.Create(in, "admin")
	assert.ErrorIs(t, err, domain.ErrValidation, "sin nombre el alta debe fallar")
}

func TestClientCreate_CedulaDuplicada(t *testing.T) {
	clients, settings := newTestRepos(t)
	uc := billing.NewClientUseCase(clients, settings)
	uc.Now = fixedClock(2025, time.September, 16)

	_, err := uc.Create(clientRequest("2001"), "admin")
	require.NoError(t, err)

	_, err = uc.Create(clientRequest("2001"), "admin")
	assert.ErrorIs(t, err, domain.ErrDuplicate, "dos clientes no pueden compartir cédula")
}

// ── Modificación ──────────────────────────────────────────────────────────────

func TestClientUpdate_RegistraDiffLegible(t *testing.T) {
	clients, settings := newTestRepos(t)
	uc := billing.NewClientUseCase(clients, settings)
	uc.Now = fixedClock(2025, time.September, 16)

	created, err := uc.Create(clientRequest("3001"), "admin")
	require.NoError(t, err)

	in := clientRequest("3001")
	in.Name = "Marta"
	in.Phone = "3117654321"
	out, err := uc.Update(created.ID, in, "caja1")
	require.NoError(t, err)

	last := out.Modifications[len(out.Modifications)-1]
	assert.Equal(t, entity.ModModificacion, last.Type)
	assert.Equal(t, "caja1", last.By)
	assert.Contains(t, last.Details, "Nombre: 'María' -> 'Marta'")
	assert.Contains(t, last.Details, "Celular: '3001234567' -> '3117654321'")
}

func TestClientUpdate_SinCambios(t *testing.T) {
	clients, settings := newTestRepos(t)
	uc := billing.NewClientUseCase(clients, settings)
	uc.Now = fixedClock(2025, time.September, 16)

	created, err := uc.Create(clientRequest("3002"), "admin")
	require.NoError(t, err)

	out, err := uc.Update(created.ID, clientRequest("3002"), "admin")
	require.NoError(t, err)
	last := out.Modifications[len(out.Modifications)-1]
	assert.Equal(t, "Sin cambios específicos", last.Details)
}

func TestClientUpdate_CambioDePlanConDeuda_NoReprorratea(t *testing.T) {
	clients, settings := newTestRepos(t)
	uc := billing.NewClientUseCase(clients, settings)
	uc.Now = fixedClock(2025, time.September, 16)

	created, err := uc.Create(clientRequest("3003"), "admin")
	require.NoError(t, err)
	require.True(t, created.Balance.GreaterThan(decimal.Zero), "el alta a mitad de mes deja deuda")

	in := clientRequest("3003")
	in.MonthlyFeeID = "B"
	out, err := uc.Update(created.ID, in, "admin")
	require.NoError(t, err)

	assert.True(t, created.Balance.Equal(out.Balance),
		"el cambio de plan no refactura a quien ya debe")
	assert.True(t, decimal.NewFromInt(70000).Equal(out.MonthlyFee),
		"la tarifa snapshot sí se actualiza a la letra B")
	last := out.Modifications[len(out.Modifications)-1]
	assert.Contains(t, last.Details, "Mensualidad: 'A' ($60.000) -> 'B' ($70.000)")
}

func TestClientUpdate_CambioDePlanAlDia_Reprorratea(t *testing.T) {
	clients, settings := newTestRepos(t)
	uc := billing.NewClientUseCase(clients, settings)
	uc.Now = fixedClock(2025, time.September, 16)

	created, err := uc.Create(clientRequest("3004"), "admin")
	require.NoError(t, err)

	payments := billing.NewPaymentUseCase(clients)
	payments.Now = uc.Now
	_, err = payments.Abono(created.ID, created.Balance, entity.MetodoEfectivo, "admin")
	require.NoError(t, err, "el abono exacto deja al cliente en cero")

	in := clientRequest("3004")
	in.MonthlyFeeID = "B"
	out, err := uc.Update(created.ID, in, "admin")
	require.NoError(t, err)

	// 70000 * 15/30 = 35000
	assert.True(t, decimal.NewFromInt(35000).Equal(out.Balance),
		"el cliente al día queda con la tarifa nueva prorrateada")
	assert.Equal(t, entity.EstadoPendiente, out.Status)
}

func TestClientUpdate_CedulaDeOtroCliente(t *testing.T) {
	clients, settings := newTestRepos(t)
	uc := billing.NewClientUseCase(clients, settings)
	uc.Now = fixedClock(2025, time.September, 16)

	_, err := uc.Create(clientRequest("4001"), "admin")
	require.NoError(t, err)
	created, err := uc.Create(clientRequest("4002"), "admin")
	require.NoError(t, err)

	in := clientRequest("4001")
	_, err = uc.Update(created.ID, in, "admin")
	assert.ErrorIs(t, err, domain.ErrDuplicate)
}

// ── Suspensión y reactivación ─────────────────────────────────────────────────

func TestClientSuspend_Reinstate(t *testing.T) {
	clients, settings := newTestRepos(t)
	uc := billing.NewClientUseCase(clients, settings)
	uc.Now = fixedClock(2025, time.September, 16)

	created, err := uc.Create(clientRequest("5001"), "admin")
	require.NoError(t, err)

	suspended, err := uc.Suspend(created.ID, "admin")
	require.NoError(t, err)
	assert.Equal(t, entity.EstadoSuspendido, suspended.Status)
	last := suspended.Modifications[len(suspended.Modifications)-1]
	assert.Equal(t, entity.ModSuspension, last.Type)

	reinstated, err := uc.Reinstate(created.ID, "admin")
	require.NoError(t, err)
	assert.Equal(t, entity.EstadoPendiente, reinstated.Status,
		"al reactivar el estado vuelve a derivarse del saldo")
}

// ── Consulta pública ──────────────────────────────────────────────────────────

func TestPublicQuery_SoloExponeEstadoYSaldo(t *testing.T) {
	clients, settings := newTestRepos(t)
	uc := billing.NewClientUseCase(clients, settings)
	uc.Now = fixedClock(2025, time.September, 16)

	_, err := uc.Create(clientRequest("6001"), "admin")
	require.NoError(t, err)

	out, err := uc.PublicQuery("6001")
	require.NoError(t, err)
	assert.Equal(t, "María", out.Name)
	assert.Equal(t, entity.EstadoPendiente, out.Status)
	assert.True(t, decimal.NewFromInt(30000).Equal(out.Balance))

	_, err = uc.PublicQuery("no-existe")
	assert.ErrorIs(t, err, domain.ErrClientNotFound)
}
