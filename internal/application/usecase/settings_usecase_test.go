package usecase_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jfarias-dev/wisp-cobros/internal/application/dto"
	"github.com/jfarias-dev/wisp-cobros/internal/application/usecase"
	"github.com/jfarias-dev/wisp-cobros/internal/domain"
	"github.com/jfarias-dev/wisp-cobros/internal/infrastructure/kvstore"
	"github.com/jfarias-dev/wisp-cobros/internal/infrastructure/memory"
	"github.com/jfarias-dev/wisp-cobros/pkg/logger"
)

func newSettingsUC(t *testing.T) *usecase.SettingsUseCase {
	t.Helper()
	store, err := kvstore.NewFileStore(t.TempDir())
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })
	return usecase.NewSettingsUseCase(memory.NewSettingsRepository(store, logger.Nop()))
}

// ── Tarifario ─────────────────────────────────────────────────────────────────

func TestFeeSchedule_DefaultsAtravesDeLaJ(t *testing.T) {
	uc := newSettingsUC(t)

	out, err := uc.FeeSchedule()
	require.NoError(t, err)
	assert.Len(t, out.Fees, 10)
	assert.True(t, decimal.NewFromInt(60000).Equal(out.Fees["A"]))
	assert.True(t, decimal.NewFromInt(150000).Equal(out.Fees["J"]))
}

func TestUpdateFeeSchedule_ReemplazaElTarifario(t *testing.T) {
	uc := newSettingsUC(t)

	_, err := uc.UpdateFeeSchedule(dto.FeeScheduleRequest{Fees: map[string]decimal.Decimal{
		"A": decimal.NewFromInt(65000),
		"B": decimal.NewFromInt(75000),
	}})
	require.NoError(t, err)

	out, err := uc.FeeSchedule()
	require.NoError(t, err)
	assert.Len(t, out.Fees, 2, "la actualización reemplaza el tarifario completo")
	assert.True(t, decimal.NewFromInt(65000).Equal(out.Fees["A"]))
}

func TestUpdateFeeSchedule_Validaciones(t *testing.T) {
	uc := newSettingsUC(t)

	_, err := uc.UpdateFeeSchedule(dto.FeeScheduleRequest{Fees: map[string]decimal.Decimal{}})
	assert.ErrorIs(t, err, domain.ErrValidation, "un tarifario vacío se rechaza")

	_, err = uc.UpdateFeeSchedule(dto.FeeScheduleRequest{Fees: map[string]decimal.Decimal{
		"A": decimal.Zero,
	}})
	assert.ErrorIs(t, err, domain.ErrValidation, "las tarifas deben ser mayores que cero")

	_, err = uc.UpdateFeeSchedule(dto.FeeScheduleRequest{Fees: map[string]decimal.Decimal{
		"": decimal.NewFromInt(60000),
	}})
	assert.ErrorIs(t, err, domain.ErrValidation, "la letra del plan no puede ser vacía")
}

// ── Calendario de cobro ───────────────────────────────────────────────────────

func TestBillingCalendar_Defaults(t *testing.T) {
	uc := newSettingsUC(t)

	out, err := uc.BillingCalendar()
	require.NoError(t, err)
	assert.Equal(t, 5, out.NextPaymentDueDay)
	assert.Equal(t, 10, out.SuspensionDay)
	assert.Equal(t, 1, out.BillingDay)
}

func TestUpdateBillingCalendar(t *testing.T) {
	uc := newSettingsUC(t)

	_, err := uc.UpdateBillingCalendar(dto.BillingCalendarDTO{
		NextPaymentDueDay: 7, SuspensionDay: 15, BillingDay: 2,
	})
	require.NoError(t, err)

	out, err := uc.BillingCalendar()
	require.NoError(t, err)
	assert.Equal(t, 7, out.NextPaymentDueDay)
	assert.Equal(t, 15, out.SuspensionDay)
	assert.Equal(t, 2, out.BillingDay)
}

func TestUpdateBillingCalendar_CorteAntesDelLimite(t *testing.T) {
	uc := newSettingsUC(t)

	_, err := uc.UpdateBillingCalendar(dto.BillingCalendarDTO{
		NextPaymentDueDay: 10, SuspensionDay: 5, BillingDay: 1,
	})
	assert.ErrorIs(t, err, domain.ErrValidation,
		"el día de corte debe ser posterior al día límite de pago")
}

func TestUpdateBillingCalendar_DiasFueraDeRango(t *testing.T) {
	uc := newSettingsUC(t)

	_, err := uc.UpdateBillingCalendar(dto.BillingCalendarDTO{
		NextPaymentDueDay: 0, SuspensionDay: 10, BillingDay: 1,
	})
	assert.ErrorIs(t, err, domain.ErrValidation)

	_, err = uc.UpdateBillingCalendar(dto.BillingCalendarDTO{
		NextPaymentDueDay: 5, SuspensionDay: 10, BillingDay: 31,
	})
	assert.ErrorIs(t, err, domain.ErrValidation, "el día de facturación llega máximo al 30")
}

// ── Correo de respaldo ────────────────────────────────────────────────────────

func TestBackupEmail(t *testing.T) {
	uc := newSettingsUC(t)

	out, err := uc.BackupEmail()
	require.NoError(t, err)
	assert.Empty(t, out.Email)

	_, err = uc.UpdateBackupEmail(dto.BackupEmailDTO{Email: "respaldo@example.com"})
	require.NoError(t, err)

	out, err = uc.BackupEmail()
	require.NoError(t, err)
	assert.Equal(t, "respaldo@example.com", out.Email)
}

func TestUpdateBackupEmail_FormatoInvalido(t *testing.T) {
	uc := newSettingsUC(t)

	_, err := uc.UpdateBackupEmail(dto.BackupEmailDTO{Email: "sin-arroba"})
	assert.ErrorIs(t, err, domain.ErrValidation)

	_, err = uc.UpdateBackupEmail(dto.BackupEmailDTO{Email: "@dominio"})
	assert.ErrorIs(t, err, domain.ErrValidation)

	// Vacío borra el correo configurado.
	_, err = uc.UpdateBackupEmail(dto.BackupEmailDTO{Email: ""})
	assert.NoError(t, err)
}
