package repository

import "github.com/jfarias-dev/wisp-cobros/internal/domain/entity"

// ClientRepository puerto de persistencia para Client. Es el dueño de la
// colección ordenada de clientes; los métodos Get* y List devuelven copias,
// de modo que un caso de uso que aborta a mitad de camino no deja
// mutaciones parciales visibles.
type ClientRepository interface {
	Create(c *entity.Client) error
	// GetByID devuelve nil, nil si el cliente no existe.
	GetByID(id string) (*entity.Client, error)
	GetByCedula(cedula string) (*entity.Client, error)
	// GetByMAC / GetByIP buscan por equipo asignado; cadena vacía devuelve nil.
	GetByMAC(mac string) (*entity.Client, error)
	GetByIP(ip string) (*entity.Client, error)
	// List devuelve todos los clientes en orden de inserción.
	List() ([]*entity.Client, error)
	// Update reemplaza el registro completo identificado por c.ID.
	Update(c *entity.Client) error
	// UpdateAll reemplaza en bloque los registros dados (corrida mensual).
	UpdateAll(clients []*entity.Client) error
	// Append agrega clientes al final de la colección sin deduplicar
	// (importación CSV).
	Append(clients []*entity.Client) error
	Delete(id string) error
	// DeleteAll vacía la colección y devuelve cuántos había.
	DeleteAll() (int, error)
}
