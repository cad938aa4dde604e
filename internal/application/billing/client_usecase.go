package billing

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/jfarias-dev/wisp-cobros/internal/application/dto"
	"github.com/jfarias-dev/wisp-cobros/internal/domain"
	domainbilling "github.com/jfarias-dev/wisp-cobros/internal/domain/billing"
	"github.com/jfarias-dev/wisp-cobros/internal/domain/entity"
	"github.com/jfarias-dev/wisp-cobros/internal/domain/repository"
	"github.com/jfarias-dev/wisp-cobros/pkg/moneyfmt"
)

// ClientUseCase casos de uso de alta, modificación y consulta de clientes.
type ClientUseCase struct {
	clients  repository.ClientRepository
	settings repository.SettingsRepository
	// Now inyectable para fijar la fecha en tests de prorrateo.
	Now func() time.Time
}

// NewClientUseCase construye el caso de uso.
func NewClientUseCase(clients repository.ClientRepository, settings repository.SettingsRepository) *ClientUseCase {
	return &ClientUseCase{clients: clients, settings: settings, Now: time.Now}
}

// Create da de alta un cliente con saldo inicial prorrateado al resto del
// mes. La tarifa se resuelve del tarifario y queda como snapshot en el
// registro; una letra desconocida resuelve a 0.
func (uc *ClientUseCase) Create(in dto.ClientRequest, actor string) (*dto.ClientResponse, error) {
	if in.Name == "" || in.LastName == "" || in.Cedula == "" {
		return nil, domain.ErrValidation
	}
	existing, err := uc.clients.GetByCedula(in.Cedula)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrDuplicate
	}

	fees, err := uc.settings.FeeSchedule()
	if err != nil {
		return nil, err
	}
	now := uc.Now()
	fee := fees.Resolve(in.MonthlyFeeID)
	balance := domainbilling.Prorate(fee, now)

	clientType := in.ClientType
	if clientType == "" {
		clientType = entity.ClientTypeNormal
	}
	client := &entity.Client{
		ID:              uuid.New().String(),
		ClientType:      clientType,
		Name:            in.Name,
		LastName:        in.LastName,
		Cedula:          in.Cedula,
		Phone:           in.Phone,
		Address:         in.Address,
		Place:           in.Place,
		Comment:         in.Comment,
		MonthlyFeeID:    in.MonthlyFeeID,
		MonthlyFee:      fee,
		Balance:         balance,
		Status:          entity.EstadoPorSaldo(balance),
		LastPaymentDate: now,
		Payments:        []entity.Payment{},
		Modifications: []entity.Modification{
			{Date: now, By: actor, Type: entity.ModCreacion},
		},
		DaysRemaining: domainbilling.DaysRemaining(now),
	}
	if err := uc.clients.Create(client); err != nil {
		return nil, err
	}
	return toClientResponse(client), nil
}

// Update modifica el perfil de un cliente y registra un diff legible de cada
// campo cambiado. Un cambio de letra de plan re-resuelve la tarifa; si el
// cliente no debía nada, el saldo se re-prorratea con la tarifa nueva (un
// cambio de plan no refactura a quien ya debe).
func (uc *ClientUseCase) Update(id string, in dto.ClientRequest, actor string) (*dto.ClientResponse, error) {
	client, err := uc.clients.GetByID(id)
	if err != nil {
		return nil, err
	}
	if client == nil {
		return nil, domain.ErrClientNotFound
	}
	if in.Cedula != client.Cedula {
		other, err := uc.clients.GetByCedula(in.Cedula)
		if err != nil {
			return nil, err
		}
		if other != nil {
			return nil, domain.ErrDuplicate
		}
	}

	now := uc.Now()
	var changes []string

	if in.MonthlyFeeID != client.MonthlyFeeID {
		fees, err := uc.settings.FeeSchedule()
		if err != nil {
			return nil, err
		}
		newFee := fees.Resolve(in.MonthlyFeeID)
		changes = append(changes, fmt.Sprintf("Mensualidad: '%s' (%s) -> '%s' (%s)",
			client.MonthlyFeeID, moneyfmt.Pesos(client.MonthlyFee),
			in.MonthlyFeeID, moneyfmt.Pesos(newFee)))

		// Solo se re-prorratea si el cliente estaba al día o con saldo a favor.
		if !client.Balance.GreaterThan(decimal.Zero) {
			client.Balance = domainbilling.Prorate(newFee, now)
			client.Status = entity.EstadoPorSaldo(client.Balance)
			client.DaysRemaining = domainbilling.DaysRemaining(now)
		}
		client.MonthlyFeeID = in.MonthlyFeeID
		client.MonthlyFee = newFee
	}

	changes = append(changes, diffField("Tipo de Cliente", client.ClientType, in.ClientType)...)
	changes = append(changes, diffField("Nombre", client.Name, in.Name)...)
	changes = append(changes, diffField("Apellido", client.LastName, in.LastName)...)
	changes = append(changes, diffField("Cédula", client.Cedula, in.Cedula)...)
	changes = append(changes, diffField("Celular", client.Phone, in.Phone)...)
	changes = append(changes, diffField("Dirección", client.Address, in.Address)...)
	changes = append(changes, diffField("Lugar", client.Place, in.Place)...)
	changes = append(changes, diffField("Comentario", client.Comment, in.Comment)...)

	if in.ClientType != "" {
		client.ClientType = in.ClientType
	}
	client.Name = in.Name
	client.LastName = in.LastName
	client.Cedula = in.Cedula
	client.Phone = in.Phone
	client.Address = in.Address
	client.Place = in.Place
	client.Comment = in.Comment

	details := "Sin cambios específicos"
	if len(changes) > 0 {
		details = strings.Join(changes, ", ")
	}
	client.Modifications = append(client.Modifications, entity.Modification{
		Date: now, By: actor, Type: entity.ModModificacion, Details: details,
	})

	if err := uc.clients.Update(client); err != nil {
		return nil, err
	}
	return toClientResponse(client), nil
}

// GetByID devuelve un cliente completo.
func (uc *ClientUseCase) GetByID(id string) (*dto.ClientResponse, error) {
	client, err := uc.clients.GetByID(id)
	if err != nil {
		return nil, err
	}
	if client == nil {
		return nil, domain.ErrClientNotFound
	}
	return toClientResponse(client), nil
}

// List devuelve todos los clientes en orden de inserción.
func (uc *ClientUseCase) List() ([]dto.ClientResponse, error) {
	list, err := uc.clients.List()
	if err != nil {
		return nil, err
	}
	return toClientResponses(list), nil
}

// PublicQuery consulta pública por cédula: solo nombre, estado y saldo.
func (uc *ClientUseCase) PublicQuery(cedula string) (*dto.PublicClientResponse, error) {
	client, err := uc.clients.GetByCedula(cedula)
	if err != nil {
		return nil, err
	}
	if client == nil {
		return nil, domain.ErrClientNotFound
	}
	return &dto.PublicClientResponse{
		Name:     client.Name,
		LastName: client.LastName,
		Status:   client.Status,
		Balance:  client.Balance,
	}, nil
}

// Suspend marca al cliente como suspendido. Es la única transición que
// produce el estado Suspendido; cualquier operación posterior que re-derive
// el estado a partir del saldo lo borra.
func (uc *ClientUseCase) Suspend(id, actor string) (*dto.ClientResponse, error) {
	client, err := uc.clients.GetByID(id)
	if err != nil {
		return nil, err
	}
	if client == nil {
		return nil, domain.ErrClientNotFound
	}
	now := uc.Now()
	client.Status = entity.EstadoSuspendido
	client.Modifications = append(client.Modifications, entity.Modification{
		Date: now, By: actor, Type: entity.ModSuspension,
	})
	if err := uc.clients.Update(client); err != nil {
		return nil, err
	}
	return toClientResponse(client), nil
}

// Reinstate levanta la suspensión: el estado vuelve a derivarse del saldo.
func (uc *ClientUseCase) Reinstate(id, actor string) (*dto.ClientResponse, error) {
	client, err := uc.clients.GetByID(id)
	if err != nil {
		return nil, err
	}
	if client == nil {
		return nil, domain.ErrClientNotFound
	}
	now := uc.Now()
	client.Status = entity.EstadoPorSaldo(client.Balance)
	client.Modifications = append(client.Modifications, entity.Modification{
		Date: now, By: actor, Type: entity.ModReactivacion,
	})
	if err := uc.clients.Update(client); err != nil {
		return nil, err
	}
	return toClientResponse(client), nil
}

func diffField(label, before, after string) []string {
	if before == after || (label == "Tipo de Cliente" && after == "") {
		return nil
	}
	return []string{fmt.Sprintf("%s: '%s' -> '%s'", label, before, after)}
}
