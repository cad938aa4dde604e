package billing_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jfarias-dev/wisp-cobros/internal/application/billing"
	"github.com/jfarias-dev/wisp-cobros/internal/domain"
	"github.com/jfarias-dev/wisp-cobros/internal/domain/entity"
)

func TestEquipmentAssign_RegistraMACeIP(t *testing.T) {
	clients, settings := newTestRepos(t)
	clientUC := billing.NewClientUseCase(clients, settings)
	clientUC.Now = fixedClock(2025, time.September, 16)
	created, err := clientUC.Create(clientRequest("E001"), "admin")
	require.NoError(t, err)

	equipUC := billing.NewEquipmentUseCase(clients)
	out, err := equipUC.Assign(created.ID, "AA:BB:CC:DD:EE:01", "192.168.1.10", "admin")
	require.NoError(t, err)

	assert.Equal(t, "AA:BB:CC:DD:EE:01", out.MAC)
	assert.Equal(t, "192.168.1.10", out.IP)
	last := out.Modifications[len(out.Modifications)-1]
	assert.Equal(t, entity.ModAsignacionEquipo, last.Type)
	assert.Equal(t, "MAC: AA:BB:CC:DD:EE:01, IP: 192.168.1.10", last.Details)
}

func TestEquipmentAssign_MACoIPVacias(t *testing.T) {
	clients, settings := newTestRepos(t)
	clientUC := billing.NewClientUseCase(clients, settings)
	clientUC.Now = fixedClock(2025, time.September, 16)
	created, err := clientUC.Create(clientRequest("E002"), "admin")
	require.NoError(t, err)

	equipUC := billing.NewEquipmentUseCase(clients)
	_, err = equipUC.Assign(created.ID, "", "192.168.1.10", "admin")
	assert.ErrorIs(t, err, domain.ErrValidation)
	_, err = equipUC.Assign(created.ID, "AA:BB:CC:DD:EE:02", "", "admin")
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestEquipmentAssign_ColisionNoMutaAlObjetivo(t *testing.T) {
	clients, settings := newTestRepos(t)
	clientUC := billing.NewClientUseCase(clients, settings)
	clientUC.Now = fixedClock(2025, time.September, 16)

	dueno, err := clientUC.Create(clientRequest("E101"), "admin")
	require.NoError(t, err)
	objetivo, err := clientUC.Create(clientRequest("E102"), "admin")
	require.NoError(t, err)

	equipUC := billing.NewEquipmentUseCase(clients)
	_, err = equipUC.Assign(dueno.ID, "AA:BB:CC:DD:EE:10", "192.168.1.20", "admin")
	require.NoError(t, err)

	_, err = equipUC.Assign(objetivo.ID, "AA:BB:CC:DD:EE:10", "192.168.1.21", "admin")
	assert.ErrorIs(t, err, domain.ErrDuplicate, "una MAC ajena bloquea la asignación")
	_, err = equipUC.Assign(objetivo.ID, "AA:BB:CC:DD:EE:11", "192.168.1.20", "admin")
	assert.ErrorIs(t, err, domain.ErrDuplicate, "una IP ajena bloquea la asignación")

	after, err := clientUC.GetByID(objetivo.ID)
	require.NoError(t, err)
	assert.Empty(t, after.MAC, "la colisión no deja equipo a medias en el objetivo")
	assert.Empty(t, after.IP)
}

func TestEquipmentModify_RegistraValoresViejosYNuevos(t *testing.T) {
	clients, settings := newTestRepos(t)
	clientUC := billing.NewClientUseCase(clients, settings)
	clientUC.Now = fixedClock(2025, time.September, 16)
	created, err := clientUC.Create(clientRequest("E201"), "admin")
	require.NoError(t, err)

	equipUC := billing.NewEquipmentUseCase(clients)
	_, err = equipUC.Assign(created.ID, "AA:BB:CC:DD:EE:20", "192.168.1.30", "admin")
	require.NoError(t, err)

	out, err := equipUC.Modify(created.ID, "AA:BB:CC:DD:EE:21", "192.168.1.31", "admin")
	require.NoError(t, err)
	last := out.Modifications[len(out.Modifications)-1]
	assert.Equal(t, entity.ModModificacionEquipo, last.Type)
	assert.Equal(t,
		"MAC: AA:BB:CC:DD:EE:20 -> AA:BB:CC:DD:EE:21, IP: 192.168.1.30 -> 192.168.1.31",
		last.Details)
}

func TestEquipmentModify_MantenerPropiosValoresNoEsColision(t *testing.T) {
	clients, settings := newTestRepos(t)
	clientUC := billing.NewClientUseCase(clients, settings)
	clientUC.Now = fixedClock(2025, time.September, 16)
	created, err := clientUC.Create(clientRequest("E202"), "admin")
	require.NoError(t, err)

	equipUC := billing.NewEquipmentUseCase(clients)
	_, err = equipUC.Assign(created.ID, "AA:BB:CC:DD:EE:30", "192.168.1.40", "admin")
	require.NoError(t, err)

	// Cambia solo la IP; conservar la propia MAC no debe contar como duplicado.
	_, err = equipUC.Modify(created.ID, "AA:BB:CC:DD:EE:30", "192.168.1.41", "admin")
	assert.NoError(t, err)
}

func TestEquipmentCheckAvailability(t *testing.T) {
	clients, settings := newTestRepos(t)
	clientUC := billing.NewClientUseCase(clients, settings)
	clientUC.Now = fixedClock(2025, time.September, 16)
	created, err := clientUC.Create(clientRequest("E301"), "admin")
	require.NoError(t, err)

	equipUC := billing.NewEquipmentUseCase(clients)
	_, err = equipUC.Assign(created.ID, "AA:BB:CC:DD:EE:40", "192.168.1.50", "admin")
	require.NoError(t, err)

	out, err := equipUC.CheckAvailability("AA:BB:CC:DD:EE:40", "10.0.0.1", "")
	require.NoError(t, err)
	assert.False(t, out.MACAvailable)
	assert.True(t, out.IPAvailable)

	// Excluyendo al propio cliente sus valores aparecen libres.
	out, err = equipUC.CheckAvailability("AA:BB:CC:DD:EE:40", "192.168.1.50", created.ID)
	require.NoError(t, err)
	assert.True(t, out.MACAvailable)
	assert.True(t, out.IPAvailable)
}

func TestEquipmentPartition(t *testing.T) {
	clients, settings := newTestRepos(t)
	clientUC := billing.NewClientUseCase(clients, settings)
	clientUC.Now = fixedClock(2025, time.September, 16)

	conEquipo, err := clientUC.Create(clientRequest("E401"), "admin")
	require.NoError(t, err)
	sinEquipo, err := clientUC.Create(clientRequest("E402"), "admin")
	require.NoError(t, err)

	equipUC := billing.NewEquipmentUseCase(clients)
	_, err = equipUC.Assign(conEquipo.ID, "AA:BB:CC:DD:EE:50", "192.168.1.60", "admin")
	require.NoError(t, err)

	out, err := equipUC.Partition()
	require.NoError(t, err)
	require.Len(t, out.Assigned, 1)
	require.Len(t, out.Unassigned, 1)
	assert.Equal(t, conEquipo.ID, out.Assigned[0].ID)
	assert.Equal(t, sinEquipo.ID, out.Unassigned[0].ID)
}
