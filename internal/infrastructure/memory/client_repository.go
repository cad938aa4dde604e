// Package memory implementa los repositorios del dominio sobre colecciones
// en memoria con escritura write-through al KeyValueStore. La memoria es la
// autoridad: un fallo de persistencia se registra en el log y no se propaga
// a la operación que lo originó (memoria y almacenamiento pueden divergir;
// es el contrato del sistema).
package memory

import (
	"sync"

	"github.com/jfarias-dev/wisp-cobros/internal/domain"
	"github.com/jfarias-dev/wisp-cobros/internal/domain/entity"
	"github.com/jfarias-dev/wisp-cobros/internal/domain/repository"
	"github.com/jfarias-dev/wisp-cobros/pkg/logger"
)

const clientsKey = "clients"

var _ repository.ClientRepository = (*ClientRepo)(nil)

// ClientRepo colección ordenada de clientes en memoria.
type ClientRepo struct {
	mu      sync.RWMutex
	clients []*entity.Client
	store   repository.KeyValueStore
	log     *logger.Logger
}

// NewClientRepository hidrata la colección desde el almacenamiento.
func NewClientRepository(store repository.KeyValueStore, log *logger.Logger) *ClientRepo {
	r := &ClientRepo{store: store, log: log}
	var loaded []*entity.Client
	if ok, err := store.Get(clientsKey, &loaded); err != nil {
		log.Error().Err(err).Msg("hidratar clientes desde el almacenamiento")
	} else if ok {
		r.clients = loaded
	}
	return r
}

// persist escribe la colección completa; fire-and-forget.
// Llamar con el lock tomado.
func (r *ClientRepo) persist() {
	if err := r.store.Set(clientsKey, r.clients); err != nil {
		r.log.Error().Err(err).Msg("persistir clientes")
	}
}

// Create agrega un cliente al final de la colección.
func (r *ClientRepo) Create(c *entity.Client) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.clients = append(r.clients, c.Clone())
	r.persist()
	return nil
}

// GetByID devuelve una copia del cliente, o nil, nil si no existe.
func (r *ClientRepo) GetByID(id string) (*entity.Client, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, c := range r.clients {
		if c.ID == id {
			return c.Clone(), nil
		}
	}
	return nil, nil
}

// GetByCedula busca por cédula (coincidencia exacta, sensible a mayúsculas).
func (r *ClientRepo) GetByCedula(cedula string) (*entity.Client, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, c := range r.clients {
		if c.Cedula == cedula {
			return c.Clone(), nil
		}
	}
	return nil, nil
}

// GetByMAC busca por MAC asignada; cadena vacía no coincide con nadie.
func (r *ClientRepo) GetByMAC(mac string) (*entity.Client, error) {
	if mac == "" {
		return nil, nil
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, c := range r.clients {
		if c.MAC == mac {
			return c.Clone(), nil
		}
	}
	return nil, nil
}

// GetByIP busca por IP asignada; cadena vacía no coincide con nadie.
func (r *ClientRepo) GetByIP(ip string) (*entity.Client, error) {
	if ip == "" {
		return nil, nil
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, c := range r.clients {
		if c.IP == ip {
			return c.Clone(), nil
		}
	}
	return nil, nil
}

// List devuelve copias de todos los clientes en orden de inserción.
func (r *ClientRepo) List() ([]*entity.Client, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]*entity.Client, 0, len(r.clients))
	for _, c := range r.clients {
		out = append(out, c.Clone())
	}
	return out, nil
}

// Update reemplaza el registro completo identificado por c.ID.
func (r *ClientRepo) Update(c *entity.Client) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i, existing := range r.clients {
		if existing.ID == c.ID {
			r.clients[i] = c.Clone()
			r.persist()
			return nil
		}
	}
	return domain.ErrClientNotFound
}

// UpdateAll reemplaza en bloque los registros dados; persiste una sola vez.
func (r *ClientRepo) UpdateAll(clients []*entity.Client) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	byID := make(map[string]*entity.Client, len(clients))
	for _, c := range clients {
		byID[c.ID] = c
	}
	for i, existing := range r.clients {
		if c, ok := byID[existing.ID]; ok {
			r.clients[i] = c.Clone()
		}
	}
	r.persist()
	return nil
}

// Append agrega clientes al final sin deduplicar (importación CSV).
func (r *ClientRepo) Append(clients []*entity.Client) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, c := range clients {
		r.clients = append(r.clients, c.Clone())
	}
	r.persist()
	return nil
}

// Delete elimina un cliente por ID.
func (r *ClientRepo) Delete(id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i, c := range r.clients {
		if c.ID == id {
			r.clients = append(r.clients[:i], r.clients[i+1:]...)
			r.persist()
			return nil
		}
	}
	return domain.ErrClientNotFound
}

// DeleteAll vacía la colección y devuelve cuántos clientes había.
func (r *ClientRepo) DeleteAll() (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	n := len(r.clients)
	r.clients = nil
	r.persist()
	return n, nil
}
