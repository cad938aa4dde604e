package billing

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/jfarias-dev/wisp-cobros/internal/application/dto"
	"github.com/jfarias-dev/wisp-cobros/internal/domain"
	domainbilling "github.com/jfarias-dev/wisp-cobros/internal/domain/billing"
	"github.com/jfarias-dev/wisp-cobros/internal/domain/entity"
	"github.com/jfarias-dev/wisp-cobros/internal/domain/repository"
)

// BillingRunUseCase la corrida de facturación mensual.
type BillingRunUseCase struct {
	clients  repository.ClientRepository
	settings repository.SettingsRepository
	Now      func() time.Time
}

// NewBillingRunUseCase construye el caso de uso.
func NewBillingRunUseCase(clients repository.ClientRepository, settings repository.SettingsRepository) *BillingRunUseCase {
	return &BillingRunUseCase{clients: clients, settings: settings, Now: time.Now}
}

// Run factura la mensualidad a todo cliente con saldo exactamente cero,
// tarifa mayor a cero y sin pago registrado dentro del mes en curso. Los
// clientes con saldo pendiente no se refacturan (la deuda no se compone) y
// los que tienen saldo a favor tampoco. Devuelve cuántos clientes se
// facturaron.
//
// Precondición: hoy debe ser el día de facturación configurado; si no,
// la corrida falla sin mutar a nadie.
func (uc *BillingRunUseCase) Run(actor string) (int, error) {
	now := uc.Now()
	calendar, err := uc.settings.BillingCalendar()
	if err != nil {
		return 0, err
	}
	if now.Day() != calendar.BillingDay {
		return 0, domain.ErrPreconditionNotMet
	}

	list, err := uc.clients.List()
	if err != nil {
		return 0, err
	}

	var billed []*entity.Client
	for _, client := range list {
		if !client.Balance.IsZero() || !client.MonthlyFee.GreaterThan(decimal.Zero) {
			continue
		}
		// El pago dentro del ciclo cuenta como "ya facturado este mes".
		if !client.LastPaymentDate.IsZero() && domainbilling.SameBillingCycle(client.LastPaymentDate, now) {
			continue
		}
		client.Balance = client.Balance.Add(client.MonthlyFee)
		client.Status = entity.EstadoPorSaldo(client.Balance)
		client.Modifications = append(client.Modifications, entity.Modification{
			Date: now, By: actor, Type: entity.ModFacturacion,
		})
		billed = append(billed, client)
	}

	if len(billed) > 0 {
		if err := uc.clients.UpdateAll(billed); err != nil {
			return 0, err
		}
	}
	return len(billed), nil
}

// Stats contadores que acompañan la pantalla de facturación.
func (uc *BillingRunUseCase) Stats() (*dto.BillingStatsResponse, error) {
	calendar, err := uc.settings.BillingCalendar()
	if err != nil {
		return nil, err
	}
	list, err := uc.clients.List()
	if err != nil {
		return nil, err
	}
	out := &dto.BillingStatsResponse{BillingDay: calendar.BillingDay}
	for _, client := range list {
		switch {
		case client.Balance.GreaterThan(decimal.Zero):
			out.PendingCount++
		case client.Balance.LessThan(decimal.Zero):
			out.CreditCount++
		default:
			out.UpToDateCount++
		}
	}
	return out, nil
}
