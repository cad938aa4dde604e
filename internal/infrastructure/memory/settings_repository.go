package memory

import (
	"sync"

	"github.com/jfarias-dev/wisp-cobros/internal/domain/entity"
	"github.com/jfarias-dev/wisp-cobros/internal/domain/repository"
	"github.com/jfarias-dev/wisp-cobros/pkg/logger"
)

// Claves de configuración; los nombres son los del esquema heredado.
const (
	feeOptionsKey  = "monthlyFeeOptions"
	paymentDaysKey = "paymentDays"
	backupEmailKey = "backupEmail"
)

var _ repository.SettingsRepository = (*SettingsRepo)(nil)

// SettingsRepo configuración editable en memoria con write-through.
type SettingsRepo struct {
	mu          sync.RWMutex
	fees        entity.FeeSchedule
	calendar    entity.BillingCalendar
	backupEmail string
	store       repository.KeyValueStore
	log         *logger.Logger
}

// NewSettingsRepository hidrata desde el almacenamiento; lo que no exista
// arranca con los valores por defecto del sistema.
func NewSettingsRepository(store repository.KeyValueStore, log *logger.Logger) *SettingsRepo {
	r := &SettingsRepo{
		fees:     entity.DefaultFeeSchedule(),
		calendar: entity.DefaultBillingCalendar(),
		store:    store,
		log:      log,
	}
	var fees entity.FeeSchedule
	if ok, err := store.Get(feeOptionsKey, &fees); err != nil {
		log.Error().Err(err).Msg("hidratar tarifario")
	} else if ok {
		r.fees = fees
	}
	var cal entity.BillingCalendar
	if ok, err := store.Get(paymentDaysKey, &cal); err != nil {
		log.Error().Err(err).Msg("hidratar calendario de cobro")
	} else if ok {
		r.calendar = cal
	}
	var email string
	if ok, err := store.Get(backupEmailKey, &email); err != nil {
		log.Error().Err(err).Msg("hidratar correo de respaldo")
	} else if ok {
		r.backupEmail = email
	}
	return r
}

func (r *SettingsRepo) persist(key string, value any) {
	if err := r.store.Set(key, value); err != nil {
		r.log.Error().Err(err).Str("key", key).Msg("persistir configuración")
	}
}

// FeeSchedule devuelve una copia del tarifario vigente.
func (r *SettingsRepo) FeeSchedule() (entity.FeeSchedule, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make(entity.FeeSchedule, len(r.fees))
	for k, v := range r.fees {
		out[k] = v
	}
	return out, nil
}

// SaveFeeSchedule reemplaza el tarifario.
func (r *SettingsRepo) SaveFeeSchedule(fs entity.FeeSchedule) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	cp := make(entity.FeeSchedule, len(fs))
	for k, v := range fs {
		cp[k] = v
	}
	r.fees = cp
	r.persist(feeOptionsKey, r.fees)
	return nil
}

// BillingCalendar devuelve el calendario de cobro vigente.
func (r *SettingsRepo) BillingCalendar() (entity.BillingCalendar, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.calendar, nil
}

// SaveBillingCalendar reemplaza el calendario de cobro.
func (r *SettingsRepo) SaveBillingCalendar(bc entity.BillingCalendar) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.calendar = bc
	r.persist(paymentDaysKey, r.calendar)
	return nil
}

// BackupEmail devuelve el correo de respaldo configurado.
func (r *SettingsRepo) BackupEmail() (string, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.backupEmail, nil
}

// SaveBackupEmail guarda el correo de respaldo.
func (r *SettingsRepo) SaveBackupEmail(email string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.backupEmail = email
	r.persist(backupEmailKey, r.backupEmail)
	return nil
}
