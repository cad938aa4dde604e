package usecase

import (
	"strings"

	"github.com/jfarias-dev/wisp-cobros/internal/application/dto"
	"github.com/jfarias-dev/wisp-cobros/internal/domain"
	"github.com/jfarias-dev/wisp-cobros/internal/domain/entity"
	"github.com/jfarias-dev/wisp-cobros/internal/domain/repository"
	"github.com/shopspring/decimal"
)

// SettingsUseCase lectura y edición de la configuración del sistema.
type SettingsUseCase struct {
	settings repository.SettingsRepository
}

// NewSettingsUseCase construye el caso de uso de ajustes.
func NewSettingsUseCase(settings repository.SettingsRepository) *SettingsUseCase {
	return &SettingsUseCase{settings: settings}
}

// FeeSchedule devuelve el tarifario vigente.
func (uc *SettingsUseCase) FeeSchedule() (*dto.FeeScheduleResponse, error) {
	fs, err := uc.settings.FeeSchedule()
	if err != nil {
		return nil, err
	}
	return &dto.FeeScheduleResponse{Fees: fs}, nil
}

// UpdateFeeSchedule reemplaza el tarifario completo. Cada valor debe ser
// mayor que cero y las letras no pueden ser vacías. El cambio no toca la
// mensualidad ya asignada a los clientes.
func (uc *SettingsUseCase) UpdateFeeSchedule(in dto.FeeScheduleRequest) (*dto.FeeScheduleResponse, error) {
	if len(in.Fees) == 0 {
		return nil, domain.ErrValidation
	}
	fs := make(entity.FeeSchedule, len(in.Fees))
	for letter, amount := range in.Fees {
		letter = strings.TrimSpace(letter)
		if letter == "" || !amount.GreaterThan(decimal.Zero) {
			return nil, domain.ErrValidation
		}
		fs[letter] = amount
	}
	if err := uc.settings.SaveFeeSchedule(fs); err != nil {
		return nil, err
	}
	return &dto.FeeScheduleResponse{Fees: fs}, nil
}

// BillingCalendar devuelve los días configurados del ciclo de cobro.
func (uc *SettingsUseCase) BillingCalendar() (*dto.BillingCalendarDTO, error) {
	bc, err := uc.settings.BillingCalendar()
	if err != nil {
		return nil, err
	}
	return &dto.BillingCalendarDTO{
		NextPaymentDueDay: bc.NextPaymentDueDay,
		SuspensionDay:     bc.SuspensionDay,
		BillingDay:        bc.BillingDay,
	}, nil
}

// UpdateBillingCalendar guarda los días del ciclo tras validarlos.
func (uc *SettingsUseCase) UpdateBillingCalendar(in dto.BillingCalendarDTO) (*dto.BillingCalendarDTO, error) {
	bc := entity.BillingCalendar{
		NextPaymentDueDay: in.NextPaymentDueDay,
		SuspensionDay:     in.SuspensionDay,
		BillingDay:        in.BillingDay,
	}
	if !bc.Valid() {
		return nil, domain.ErrValidation
	}
	if err := uc.settings.SaveBillingCalendar(bc); err != nil {
		return nil, err
	}
	return &in, nil
}

// BackupEmail devuelve el correo configurado para recibir respaldos.
func (uc *SettingsUseCase) BackupEmail() (*dto.BackupEmailDTO, error) {
	email, err := uc.settings.BackupEmail()
	if err != nil {
		return nil, err
	}
	return &dto.BackupEmailDTO{Email: email}, nil
}

// UpdateBackupEmail guarda el correo de respaldo. Se exige un formato
// mínimo usuario@dominio; vacío lo borra.
func (uc *SettingsUseCase) UpdateBackupEmail(in dto.BackupEmailDTO) (*dto.BackupEmailDTO, error) {
	email := strings.TrimSpace(in.Email)
	if email != "" {
		at := strings.Index(email, "@")
		if at <= 0 || at == len(email)-1 {
			return nil, domain.ErrValidation
		}
	}
	if err := uc.settings.SaveBackupEmail(email); err != nil {
		return nil, err
	}
	return &dto.BackupEmailDTO{Email: email}, nil
}
