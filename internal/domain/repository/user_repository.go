package repository

import "github.com/jfarias-dev/wisp-cobros/internal/domain/entity"

// UserRepository puerto de persistencia para User. La colección está
// ordenada por inserción y la clave es el username.
type UserRepository interface {
	Create(u *entity.User) error
	// GetByUsername devuelve nil, nil si el usuario no existe.
	GetByUsername(username string) (*entity.User, error)
	List() ([]*entity.User, error)
	CountByRole(role string) (int, error)
	Update(u *entity.User) error
	Delete(username string) error
}
