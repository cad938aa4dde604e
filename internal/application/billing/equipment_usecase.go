package billing

import (
	"fmt"
	"time"

	"github.com/jfarias-dev/wisp-cobros/internal/application/dto"
	"github.com/jfarias-dev/wisp-cobros/internal/domain"
	"github.com/jfarias-dev/wisp-cobros/internal/domain/entity"
	"github.com/jfarias-dev/wisp-cobros/internal/domain/repository"
)

// EquipmentUseCase asignación y modificación de equipo (MAC/IP) por cliente.
type EquipmentUseCase struct {
	clients repository.ClientRepository
	Now     func() time.Time
}

// NewEquipmentUseCase construye el caso de uso.
func NewEquipmentUseCase(clients repository.ClientRepository) *EquipmentUseCase {
	return &EquipmentUseCase{clients: clients, Now: time.Now}
}

// checkUnique rechaza MAC o IP ya presentes en otro cliente distinto de
// excludeID. La misma verificación respalda el chequeo en vivo del
// formulario y la validación final al enviar.
func (uc *EquipmentUseCase) checkUnique(mac, ip, excludeID string) error {
	if byMAC, err := uc.clients.GetByMAC(mac); err != nil {
		return err
	} else if byMAC != nil && byMAC.ID != excludeID {
		return domain.ErrDuplicate
	}
	if byIP, err := uc.clients.GetByIP(ip); err != nil {
		return err
	} else if byIP != nil && byIP.ID != excludeID {
		return domain.ErrDuplicate
	}
	return nil
}

// Assign asigna MAC e IP a un cliente sin equipo.
func (uc *EquipmentUseCase) Assign(clientID, mac, ip, actor string) (*dto.ClientResponse, error) {
	if mac == "" || ip == "" {
		return nil, domain.ErrValidation
	}
	client, err := uc.clients.GetByID(clientID)
	if err != nil {
		return nil, err
	}
	if client == nil {
		return nil, domain.ErrClientNotFound
	}
	if err := uc.checkUnique(mac, ip, clientID); err != nil {
		return nil, err
	}

	client.MAC = mac
	client.IP = ip
	client.Modifications = append(client.Modifications, entity.Modification{
		Date:    uc.Now(),
		By:      actor,
		Type:    entity.ModAsignacionEquipo,
		Details: fmt.Sprintf("MAC: %s, IP: %s", mac, ip),
	})
	if err := uc.clients.Update(client); err != nil {
		return nil, err
	}
	return toClientResponse(client), nil
}

// Modify cambia el equipo ya asignado y registra los valores viejos y nuevos.
func (uc *EquipmentUseCase) Modify(clientID, mac, ip, actor string) (*dto.ClientResponse, error) {
	if mac == "" || ip == "" {
		return nil, domain.ErrValidation
	}
	client, err := uc.clients.GetByID(clientID)
	if err != nil {
		return nil, err
	}
	if client == nil {
		return nil, domain.ErrClientNotFound
	}
	if err := uc.checkUnique(mac, ip, clientID); err != nil {
		return nil, err
	}

	oldMAC, oldIP := client.MAC, client.IP
	client.MAC = mac
	client.IP = ip
	client.Modifications = append(client.Modifications, entity.Modification{
		Date:    uc.Now(),
		By:      actor,
		Type:    entity.ModModificacionEquipo,
		Details: fmt.Sprintf("MAC: %s -> %s, IP: %s -> %s", oldMAC, mac, oldIP, ip),
	})
	if err := uc.clients.Update(client); err != nil {
		return nil, err
	}
	return toClientResponse(client), nil
}

// CheckAvailability chequeo en vivo de unicidad para el formulario:
// indica por separado si la MAC y la IP están libres (excluyendo al propio
// cliente que se está editando).
func (uc *EquipmentUseCase) CheckAvailability(mac, ip, excludeID string) (*dto.EquipmentAvailabilityResponse, error) {
	out := &dto.EquipmentAvailabilityResponse{MACAvailable: true, IPAvailable: true}
	if byMAC, err := uc.clients.GetByMAC(mac); err != nil {
		return nil, err
	} else if byMAC != nil && byMAC.ID != excludeID {
		out.MACAvailable = false
	}
	if byIP, err := uc.clients.GetByIP(ip); err != nil {
		return nil, err
	} else if byIP != nil && byIP.ID != excludeID {
		out.IPAvailable = false
	}
	return out, nil
}

// Partition separa la colección en clientes sin equipo (ni MAC ni IP) y con
// equipo (alguno de los dos). Es un filtro puro para el selector de la
// pantalla de equipos.
func (uc *EquipmentUseCase) Partition() (*dto.EquipmentPartitionResponse, error) {
	list, err := uc.clients.List()
	if err != nil {
		return nil, err
	}
	out := &dto.EquipmentPartitionResponse{
		Unassigned: []dto.ClientResponse{},
		Assigned:   []dto.ClientResponse{},
	}
	for _, client := range list {
		if client.HasEquipment() {
			out.Assigned = append(out.Assigned, *toClientResponse(client))
		} else {
			out.Unassigned = append(out.Unassigned, *toClientResponse(client))
		}
	}
	return out, nil
}
