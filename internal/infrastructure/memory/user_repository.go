package memory

import (
	"sync"

	"github.com/jfarias-dev/wisp-cobros/internal/domain"
	"github.com/jfarias-dev/wisp-cobros/internal/domain/entity"
	"github.com/jfarias-dev/wisp-cobros/internal/domain/repository"
	"github.com/jfarias-dev/wisp-cobros/pkg/logger"
)

const usersKey = "users"

var _ repository.UserRepository = (*UserRepo)(nil)

// UserRepo colección ordenada de operadores, clave username.
type UserRepo struct {
	mu    sync.RWMutex
	users []*entity.User
	store repository.KeyValueStore
	log   *logger.Logger
}

// NewUserRepository hidrata la colección desde el almacenamiento.
func NewUserRepository(store repository.KeyValueStore, log *logger.Logger) *UserRepo {
	r := &UserRepo{store: store, log: log}
	var loaded []*entity.User
	if ok, err := store.Get(usersKey, &loaded); err != nil {
		log.Error().Err(err).Msg("hidratar usuarios desde el almacenamiento")
	} else if ok {
		r.users = loaded
	}
	return r
}

// Llamar con el lock tomado.
func (r *UserRepo) persist() {
	if err := r.store.Set(usersKey, r.users); err != nil {
		r.log.Error().Err(err).Msg("persistir usuarios")
	}
}

func clone(u *entity.User) *entity.User {
	cp := *u
	return &cp
}

// Create agrega un usuario; ErrDuplicate si el username ya existe.
func (r *UserRepo) Create(u *entity.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, existing := range r.users {
		if existing.Username == u.Username {
			return domain.ErrDuplicate
		}
	}
	r.users = append(r.users, clone(u))
	r.persist()
	return nil
}

// GetByUsername devuelve una copia, o nil, nil si no existe.
func (r *UserRepo) GetByUsername(username string) (*entity.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, u := range r.users {
		if u.Username == username {
			return clone(u), nil
		}
	}
	return nil, nil
}

// List devuelve copias en orden de inserción.
func (r *UserRepo) List() ([]*entity.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]*entity.User, 0, len(r.users))
	for _, u := range r.users {
		out = append(out, clone(u))
	}
	return out, nil
}

// CountByRole cuenta usuarios con el rol dado.
func (r *UserRepo) CountByRole(role string) (int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	n := 0
	for _, u := range r.users {
		if u.Role == role {
			n++
		}
	}
	return n, nil
}

// Update reemplaza el registro del username dado.
func (r *UserRepo) Update(u *entity.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i, existing := range r.users {
		if existing.Username == u.Username {
			r.users[i] = clone(u)
			r.persist()
			return nil
		}
	}
	return domain.ErrUserNotFound
}

// Delete elimina un usuario por username.
func (r *UserRepo) Delete(username string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i, u := range r.users {
		if u.Username == username {
			r.users = append(r.users[:i], r.users[i+1:]...)
			r.persist()
			return nil
		}
	}
	return domain.ErrUserNotFound
}
