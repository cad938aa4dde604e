package messaging_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jfarias-dev/wisp-cobros/internal/application/billing"
	"github.com/jfarias-dev/wisp-cobros/internal/application/dto"
	"github.com/jfarias-dev/wisp-cobros/internal/application/messaging"
	"github.com/jfarias-dev/wisp-cobros/internal/domain"
	"github.com/jfarias-dev/wisp-cobros/internal/domain/entity"
	"github.com/jfarias-dev/wisp-cobros/internal/domain/repository"
	"github.com/jfarias-dev/wisp-cobros/internal/infrastructure/kvstore"
	"github.com/jfarias-dev/wisp-cobros/internal/infrastructure/memory"
	"github.com/jfarias-dev/wisp-cobros/internal/infrastructure/qr"
	"github.com/jfarias-dev/wisp-cobros/pkg/logger"
)

func newMessagingSetup(t *testing.T) (repository.ClientRepository, *billing.ClientUseCase, *billing.PaymentUseCase) {
	t.Helper()
	store, err := kvstore.NewFileStore(t.TempDir())
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })

	clients := memory.NewClientRepository(store, logger.Nop())
	settings := memory.NewSettingsRepository(store, logger.Nop())
	clientUC := billing.NewClientUseCase(clients, settings)
	clientUC.Now = func() time.Time {
		return time.Date(2025, time.September, 16, 10, 0, 0, 0, time.UTC)
	}
	paymentUC := billing.NewPaymentUseCase(clients)
	paymentUC.Now = clientUC.Now
	return clients, clientUC, paymentUC
}

func crearCliente(t *testing.T, uc *billing.ClientUseCase, cedula, phone string) *dto.ClientResponse {
	t.Helper()
	out, err := uc.Create(dto.ClientRequest{
		Name:         "Luis",
		LastName:     "Pérez",
		Cedula:       cedula,
		Phone:        phone,
		MonthlyFeeID: "A",
	}, "admin")
	require.NoError(t, err)
	return out
}

func TestBuildLinks_FiltraPorSaldoPendiente(t *testing.T) {
	clients, clientUC, paymentUC := newMessagingSetup(t)

	deudor := crearCliente(t, clientUC, "M001", "573001112233")
	alDia := crearCliente(t, clientUC, "M002", "573004445566")
	_, err := paymentUC.Abono(alDia.ID, alDia.Balance, entity.MetodoEfectivo, "admin")
	require.NoError(t, err)

	uc := messaging.NewUseCase(clients, qr.NewEncoder())
	out, err := uc.BuildLinks(messaging.RecipientPending, "Recuerda tu pago de internet")
	require.NoError(t, err)

	require.Equal(t, 1, out.Count)
	link := out.Links[0]
	assert.Equal(t, deudor.ID, link.ClientID)
	assert.Equal(t, "Luis Pérez", link.Name)
	assert.Equal(t,
		"https://wa.me/573001112233?text=Recuerda+tu+pago+de+internet",
		link.URL, "el texto va URL-encoded en el enlace wa.me")
}

func TestBuildLinks_TodosOmiteSinTelefono(t *testing.T) {
	clients, clientUC, _ := newMessagingSetup(t)

	crearCliente(t, clientUC, "M101", "573001112233")
	crearCliente(t, clientUC, "M102", "") // sin teléfono: no hay a quién escribir

	uc := messaging.NewUseCase(clients, qr.NewEncoder())
	out, err := uc.BuildLinks(messaging.RecipientAll, "Aviso general")
	require.NoError(t, err)
	assert.Equal(t, 1, out.Count, "los clientes sin teléfono no generan enlace")
}

func TestBuildLinks_AlDia(t *testing.T) {
	clients, clientUC, paymentUC := newMessagingSetup(t)

	crearCliente(t, clientUC, "M201", "573001112233") // deudor
	alDia := crearCliente(t, clientUC, "M202", "573004445566")
	_, err := paymentUC.Abono(alDia.ID, alDia.Balance, entity.MetodoEfectivo, "admin")
	require.NoError(t, err)

	uc := messaging.NewUseCase(clients, qr.NewEncoder())
	out, err := uc.BuildLinks(messaging.RecipientAlDia, "Gracias por estar al día")
	require.NoError(t, err)
	require.Equal(t, 1, out.Count)
	assert.Equal(t, alDia.ID, out.Links[0].ClientID)
}

func TestBuildLinks_Validaciones(t *testing.T) {
	clients, clientUC, _ := newMessagingSetup(t)
	crearCliente(t, clientUC, "M301", "573001112233")
	uc := messaging.NewUseCase(clients, qr.NewEncoder())

	_, err := uc.BuildLinks(messaging.RecipientAll, "")
	assert.ErrorIs(t, err, domain.ErrValidation, "un mensaje vacío no genera enlaces")

	_, err = uc.BuildLinks("vip", "Hola")
	assert.ErrorIs(t, err, domain.ErrValidation, "un filtro desconocido se rechaza")
}

func TestBuildLinks_SinDestinatarios(t *testing.T) {
	clients, clientUC, paymentUC := newMessagingSetup(t)
	alDia := crearCliente(t, clientUC, "M401", "573001112233")
	_, err := paymentUC.Abono(alDia.ID, alDia.Balance, entity.MetodoEfectivo, "admin")
	require.NoError(t, err)

	uc := messaging.NewUseCase(clients, qr.NewEncoder())
	_, err = uc.BuildLinks(messaging.RecipientPending, "Recordatorio")
	assert.ErrorIs(t, err, domain.ErrNotFound, "sin deudores con teléfono no hay enlaces")
}

func TestLinkQR_GeneraPNG(t *testing.T) {
	clients, _, _ := newMessagingSetup(t)
	uc := messaging.NewUseCase(clients, qr.NewEncoder())

	png, err := uc.LinkQR("https://wa.me/573001112233?text=Hola")
	require.NoError(t, err)
	assert.True(t, len(png) > 8, "el QR debe producir bytes PNG")
	assert.Equal(t, []byte{0x89, 'P', 'N', 'G'}, png[:4], "cabecera PNG")

	_, err = uc.LinkQR("")
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestBuildLinks_DecimalCero(t *testing.T) {
	// Un cliente con tarifa desconocida (0) nunca es deudor.
	clients, clientUC, _ := newMessagingSetup(t)
	out, err := clientUC.Create(dto.ClientRequest{
		Name: "Rosa", LastName: "Mejía", Cedula: "M501",
		Phone: "573007778899", MonthlyFeeID: "Z",
	}, "admin")
	require.NoError(t, err)
	require.True(t, out.Balance.Equal(decimal.Zero))

	uc := messaging.NewUseCase(clients, qr.NewEncoder())
	_, err = uc.BuildLinks(messaging.RecipientPending, "Recordatorio")
	assert.ErrorIs(t, err, domain.ErrNotFound)

	links, err := uc.BuildLinks(messaging.RecipientAlDia, "Gracias")
	require.NoError(t, err)
	assert.Equal(t, 1, links.Count)
}
