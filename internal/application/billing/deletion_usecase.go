package billing

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/jfarias-dev/wisp-cobros/internal/application/dto"
	"github.com/jfarias-dev/wisp-cobros/internal/domain"
	"github.com/jfarias-dev/wisp-cobros/internal/domain/repository"
)

// tokenTTL ventana para confirmar un borrado solicitado.
const tokenTTL = 5 * time.Minute

// targetAll marca un token que borra la colección completa.
const targetAll = "*"

type pendingDeletion struct {
	target    string // ID del cliente, o targetAll
	expiresAt time.Time
}

// DeletionUseCase borrado de clientes en dos fases: solicitar devuelve un
// token y confirmar lo consume. Así la confirmación que antes era un diálogo
// bloqueante del navegador queda como contrato explícito e invocable en tests.
type DeletionUseCase struct {
	clients repository.ClientRepository
	mu      sync.Mutex
	pending map[string]pendingDeletion
	Now     func() time.Time
}

// NewDeletionUseCase construye el caso de uso.
func NewDeletionUseCase(clients repository.ClientRepository) *DeletionUseCase {
	return &DeletionUseCase{
		clients: clients,
		pending: make(map[string]pendingDeletion),
		Now:     time.Now,
	}
}

// RequestOne solicita borrar un cliente. Verifica que exista antes de emitir
// el token; el borrado en sí no ocurre hasta Confirm.
func (uc *DeletionUseCase) RequestOne(clientID string) (*dto.DeletionTokenResponse, error) {
	client, err := uc.clients.GetByID(clientID)
	if err != nil {
		return nil, err
	}
	if client == nil {
		return nil, domain.ErrClientNotFound
	}
	return uc.issue(clientID, "¿Estás seguro de que quieres eliminar a este cliente? Esta acción no se puede deshacer."), nil
}

// RequestAll solicita vaciar la colección completa.
func (uc *DeletionUseCase) RequestAll() (*dto.DeletionTokenResponse, error) {
	return uc.issue(targetAll, "¿Estás ABSOLUTAMENTE seguro de que quieres eliminar a TODOS los clientes? Esta acción no se puede deshacer."), nil
}

func (uc *DeletionUseCase) issue(target, message string) *dto.DeletionTokenResponse {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	uc.sweep()
	token := uuid.New().String()
	uc.pending[token] = pendingDeletion{target: target, expiresAt: uc.Now().Add(tokenTTL)}
	return &dto.DeletionTokenResponse{Token: token, Message: message}
}

// Confirm consume el token y ejecuta el borrado. Devuelve cuántos clientes
// se eliminaron. Un token desconocido, ya usado o vencido falla con
// ErrInvalidToken y no borra nada.
func (uc *DeletionUseCase) Confirm(token string) (int, error) {
	uc.mu.Lock()
	p, ok := uc.pending[token]
	if ok {
		delete(uc.pending, token)
	}
	uc.sweep()
	uc.mu.Unlock()

	if !ok || uc.Now().After(p.expiresAt) {
		return 0, domain.ErrInvalidToken
	}
	if p.target == targetAll {
		return uc.clients.DeleteAll()
	}
	if err := uc.clients.Delete(p.target); err != nil {
		return 0, err
	}
	return 1, nil
}

// sweep descarta tokens vencidos; llamar con el lock tomado.
func (uc *DeletionUseCase) sweep() {
	now := uc.Now()
	for t, p := range uc.pending {
		if now.After(p.expiresAt) {
			delete(uc.pending, t)
		}
	}
}
