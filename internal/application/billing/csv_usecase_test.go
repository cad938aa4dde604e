package billing_test

import (
	"bytes"
	"encoding/csv"
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jfarias-dev/wisp-cobros/internal/application/billing"
	"github.com/jfarias-dev/wisp-cobros/internal/domain/entity"
)

func TestCSVExport_EsquemaDe19Columnas(t *testing.T) {
	clients, settings := newTestRepos(t)
	clientUC := billing.NewClientUseCase(clients, settings)
	clientUC.Now = fixedClock(2025, time.September, 16)
	_, err := clientUC.Create(clientRequest("C001"), "admin")
	require.NoError(t, err)

	csvUC := billing.NewCSVUseCase(clients)
	var buf bytes.Buffer
	count, err := csvUC.Export(&buf)
	require.NoError(t, err)
	assert.Equal(t, 1, count)

	rows, err := csv.NewReader(strings.NewReader(buf.String())).ReadAll()
	require.NoError(t, err)
	require.Len(t, rows, 2, "encabezados + una fila de datos")
	require.Len(t, rows[0], 19)
	assert.Equal(t, "ID", rows[0][0])
	assert.Equal(t, "Cédula", rows[0][4])
	assert.Equal(t, "Saldo Actual", rows[0][10])
	assert.Equal(t, "IP", rows[0][18])

	fila := rows[1]
	assert.Equal(t, "Normal", fila[1])
	assert.Equal(t, "María", fila[2])
	assert.Equal(t, "C001", fila[4])
	assert.Equal(t, "A", fila[8])
	assert.Equal(t, "60000", fila[9])
	assert.Equal(t, "30000", fila[10])
	assert.Equal(t, entity.EstadoPendiente, fila[11])
	assert.Equal(t, "16/09/2025", fila[13])
	assert.Equal(t, "15", fila[16], "los días restantes del alta quedan como snapshot")
}

func TestCSVExport_HistorialesLegibles(t *testing.T) {
	clients, settings := newTestRepos(t)
	clientUC := billing.NewClientUseCase(clients, settings)
	clientUC.Now = fixedClock(2025, time.September, 16)
	created, err := clientUC.Create(clientRequest("C002"), "admin")
	require.NoError(t, err)

	paymentUC := billing.NewPaymentUseCase(clients)
	paymentUC.Now = clientUC.Now
	_, err = paymentUC.Abono(created.ID, decimal.NewFromInt(10000), entity.MetodoEfectivo, "caja1")
	require.NoError(t, err)

	csvUC := billing.NewCSVUseCase(clients)
	var buf bytes.Buffer
	_, err = csvUC.Export(&buf)
	require.NoError(t, err)

	rows, err := csv.NewReader(strings.NewReader(buf.String())).ReadAll()
	require.NoError(t, err)
	fila := rows[1]
	assert.Equal(t, "16/09/2025 10:00 - $10.000 (Efectivo) - Por: caja1", fila[14])
	assert.Contains(t, fila[15], "Creación de Cliente")
	assert.Contains(t, fila[15], "Abono de Saldo (Efectivo)")
	assert.Contains(t, fila[15], "; ", "las entradas del historial van separadas por punto y coma")
}

func TestCSVImport_RoundTripConservaLosDatos(t *testing.T) {
	clients, settings := newTestRepos(t)
	clientUC := billing.NewClientUseCase(clients, settings)
	clientUC.Now = fixedClock(2025, time.September, 16)
	created, err := clientUC.Create(clientRequest("C101"), "admin")
	require.NoError(t, err)

	equipUC := billing.NewEquipmentUseCase(clients)
	_, err = equipUC.Assign(created.ID, "AA:BB:CC:DD:EE:60", "192.168.1.70", "admin")
	require.NoError(t, err)

	csvUC := billing.NewCSVUseCase(clients)
	var buf bytes.Buffer
	_, err = csvUC.Export(&buf)
	require.NoError(t, err)

	// Importar sobre una base vacía simula restaurar el respaldo en otra instancia.
	clients2, _ := newTestRepos(t)
	csvUC2 := billing.NewCSVUseCase(clients2)
	csvUC2.Now = fixedClock(2025, time.October, 2)
	count, err := csvUC2.Import(bytes.NewReader(buf.Bytes()), "admin")
	require.NoError(t, err)
	assert.Equal(t, 1, count)

	restored, err := clients2.GetByCedula("C101")
	require.NoError(t, err)
	require.NotNil(t, restored)
	assert.Equal(t, created.ID, restored.ID, "el ID del CSV se conserva")
	assert.Equal(t, "María", restored.Name)
	assert.Equal(t, "González", restored.LastName)
	assert.Equal(t, "A", restored.MonthlyFeeID)
	assert.True(t, decimal.NewFromInt(60000).Equal(restored.MonthlyFee))
	assert.True(t, decimal.NewFromInt(30000).Equal(restored.Balance))
	assert.Equal(t, entity.EstadoPendiente, restored.Status)
	assert.Equal(t, "AA:BB:CC:DD:EE:60", restored.MAC)
	assert.Equal(t, "192.168.1.70", restored.IP)

	// Los historiales no viajan: el importado arranca con una sola entrada.
	assert.Empty(t, restored.Payments)
	require.Len(t, restored.Modifications, 1)
	assert.Equal(t, entity.ModImportacion, restored.Modifications[0].Type)
	assert.Equal(t, "admin", restored.Modifications[0].By)
}

func TestCSVImport_FilaMinimaUsaDefaults(t *testing.T) {
	clients, _ := newTestRepos(t)
	csvUC := billing.NewCSVUseCase(clients)
	csvUC.Now = fixedClock(2025, time.October, 2)

	raw := "Nombre,Apellido,Cédula\nPedro,Ruiz,C201\n"
	count, err := csvUC.Import(strings.NewReader(raw), "admin")
	require.NoError(t, err)
	assert.Equal(t, 1, count)

	imported, err := clients.GetByCedula("C201")
	require.NoError(t, err)
	require.NotNil(t, imported)
	assert.NotEmpty(t, imported.ID, "sin columna ID se genera uno nuevo")
	assert.Equal(t, entity.ClientTypeNormal, imported.ClientType)
	assert.Equal(t, "A", imported.MonthlyFeeID)
	assert.True(t, imported.MonthlyFee.IsZero())
	assert.True(t, imported.Balance.IsZero())
	assert.Equal(t, entity.EstadoAlDia, imported.Status)
}

func TestCSVImport_NoDeduplicaCedulas(t *testing.T) {
	clients, settings := newTestRepos(t)
	clientUC := billing.NewClientUseCase(clients, settings)
	clientUC.Now = fixedClock(2025, time.September, 16)
	_, err := clientUC.Create(clientRequest("C301"), "admin")
	require.NoError(t, err)

	csvUC := billing.NewCSVUseCase(clients)
	raw := "Nombre,Apellido,Cédula\nOtra,Persona,C301\n"
	count, err := csvUC.Import(strings.NewReader(raw), "admin")
	require.NoError(t, err)
	assert.Equal(t, 1, count)

	list, err := clientUC.List()
	require.NoError(t, err)
	assert.Len(t, list, 2, "la importación agrega sin deduplicar contra cédulas existentes")
}

func TestCSVImport_ValorNumericoIlegibleQuedaEnCero(t *testing.T) {
	clients, _ := newTestRepos(t)
	csvUC := billing.NewCSVUseCase(clients)

	raw := "Nombre,Apellido,Cédula,Saldo Actual\nAna,Mora,C401,no-es-numero\n"
	count, err := csvUC.Import(strings.NewReader(raw), "admin")
	require.NoError(t, err)
	assert.Equal(t, 1, count)

	imported, err := clients.GetByCedula("C401")
	require.NoError(t, err)
	require.NotNil(t, imported)
	assert.True(t, imported.Balance.IsZero())
}
