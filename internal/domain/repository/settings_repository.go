package repository

import "github.com/jfarias-dev/wisp-cobros/internal/domain/entity"

// SettingsRepository puerto para la configuración editable del sistema:
// tarifario, calendario de cobro y correo de respaldo.
type SettingsRepository interface {
	FeeSchedule() (entity.FeeSchedule, error)
	SaveFeeSchedule(fs entity.FeeSchedule) error
	BillingCalendar() (entity.BillingCalendar, error)
	SaveBillingCalendar(bc entity.BillingCalendar) error
	BackupEmail() (string, error)
	SaveBackupEmail(email string) error
}
