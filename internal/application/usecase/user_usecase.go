package usecase

import (
	"strings"
	"time"

	"github.com/jfarias-dev/wisp-cobros/internal/application/auth"
	"github.com/jfarias-dev/wisp-cobros/internal/application/dto"
	"github.com/jfarias-dev/wisp-cobros/internal/domain"
	"github.com/jfarias-dev/wisp-cobros/internal/domain/entity"
	"github.com/jfarias-dev/wisp-cobros/internal/domain/repository"
	"golang.org/x/crypto/bcrypt"
)

// UserUseCase administración de cuentas: administradores y empleados de caja.
type UserUseCase struct {
	users repository.UserRepository

	// Now permite fijar el reloj en pruebas.
	Now func() time.Time
}

// NewUserUseCase construye el caso de uso de usuarios.
func NewUserUseCase(users repository.UserRepository) *UserUseCase {
	return &UserUseCase{users: users, Now: time.Now}
}

// RegisterAdmin crea una cuenta administradora. El sistema admite como
// máximo entity.MaxAdmins administradores.
func (uc *UserUseCase) RegisterAdmin(in dto.RegisterAdminRequest) (*dto.UserResponse, error) {
	username := strings.TrimSpace(in.Username)
	if username == "" || strings.TrimSpace(in.Password) == "" || strings.TrimSpace(in.Name) == "" {
		return nil, domain.ErrValidation
	}
	count, err := uc.users.CountByRole(entity.RoleAdmin)
	if err != nil {
		return nil, err
	}
	if count >= entity.MaxAdmins {
		return nil, domain.ErrAdminLimit
	}
	existing, err := uc.users.GetByUsername(username)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrDuplicate
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	now := uc.Now()
	user := &entity.User{
		Username:     username,
		PasswordHash: string(hash),
		Role:         entity.RoleAdmin,
		Name:         strings.TrimSpace(in.Name),
		LastName:     strings.TrimSpace(in.LastName),
		Phone:        strings.TrimSpace(in.Phone),
		Email:        strings.TrimSpace(in.Email),
		// Los administradores tienen todos los permisos de forma implícita;
		// se guardan en verdadero para que los respaldos sean autodescriptivos.
		Permissions: entity.Permissions{
			CanViewClients:    true,
			CanMakePayments:   true,
			CanAddClients:     true,
			CanEditClients:    true,
			CanDeleteClients:  true,
			CanUpdateBalance:  true,
			CanRemovePayments: true,
			CanExportImport:   true,
			CanBillMonthly:    true,
		},
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.users.Create(user); err != nil {
		return nil, err
	}
	return auth.ToUserResponse(user), nil
}

// CreateEmployee crea un empleado de caja con los permisos indicados
// (o los permisos por defecto si no se envían).
func (uc *UserUseCase) CreateEmployee(in dto.EmployeeRequest) (*dto.UserResponse, error) {
	username := strings.TrimSpace(in.Username)
	if username == "" || strings.TrimSpace(in.Password) == "" || strings.TrimSpace(in.Name) == "" {
		return nil, domain.ErrValidation
	}
	existing, err := uc.users.GetByUsername(username)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrDuplicate
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	perms := entity.DefaultCashierPermissions()
	if in.Permissions != nil {
		perms = *in.Permissions
	}
	now := uc.Now()
	user := &entity.User{
		Username:     username,
		PasswordHash: string(hash),
		Role:         entity.RoleCashier,
		Name:         strings.TrimSpace(in.Name),
		LastName:     strings.TrimSpace(in.LastName),
		Phone:        strings.TrimSpace(in.Phone),
		Email:        strings.TrimSpace(in.Email),
		Permissions:  perms,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := uc.users.Create(user); err != nil {
		return nil, err
	}
	return auth.ToUserResponse(user), nil
}

// UpdateEmployee actualiza datos, permisos y opcionalmente la contraseña
// de un empleado de caja. Un password vacío conserva la contraseña actual.
func (uc *UserUseCase) UpdateEmployee(username string, in dto.EmployeeRequest) (*dto.UserResponse, error) {
	user, err := uc.users.GetByUsername(username)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUserNotFound
	}
	if user.Role != entity.RoleCashier {
		return nil, domain.ErrForbidden
	}
	if strings.TrimSpace(in.Name) == "" {
		return nil, domain.ErrValidation
	}
	if in.Password != "" {
		hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
		if err != nil {
			return nil, err
		}
		user.PasswordHash = string(hash)
	}
	user.Name = strings.TrimSpace(in.Name)
	user.LastName = strings.TrimSpace(in.LastName)
	user.Phone = strings.TrimSpace(in.Phone)
	user.Email = strings.TrimSpace(in.Email)
	if in.Permissions != nil {
		user.Permissions = *in.Permissions
	}
	user.UpdatedAt = uc.Now()
	if err := uc.users.Update(user); err != nil {
		return nil, err
	}
	return auth.ToUserResponse(user), nil
}

// DeleteEmployee elimina un empleado de caja. Las cuentas administradoras
// no se eliminan por esta vía.
func (uc *UserUseCase) DeleteEmployee(username string) error {
	user, err := uc.users.GetByUsername(username)
	if err != nil {
		return err
	}
	if user == nil {
		return domain.ErrUserNotFound
	}
	if user.Role != entity.RoleCashier {
		return domain.ErrForbidden
	}
	return uc.users.Delete(username)
}

// UpdateProfile actualiza los datos de contacto del operador autenticado.
func (uc *UserUseCase) UpdateProfile(username string, in dto.ProfileRequest) (*dto.UserResponse, error) {
	user, err := uc.users.GetByUsername(username)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUserNotFound
	}
	if strings.TrimSpace(in.Name) == "" {
		return nil, domain.ErrValidation
	}
	user.Name = strings.TrimSpace(in.Name)
	user.LastName = strings.TrimSpace(in.LastName)
	user.Phone = strings.TrimSpace(in.Phone)
	user.Email = strings.TrimSpace(in.Email)
	user.UpdatedAt = uc.Now()
	if err := uc.users.Update(user); err != nil {
		return nil, err
	}
	return auth.ToUserResponse(user), nil
}

// Get devuelve un usuario por username.
func (uc *UserUseCase) Get(username string) (*dto.UserResponse, error) {
	user, err := uc.users.GetByUsername(username)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUserNotFound
	}
	return auth.ToUserResponse(user), nil
}

// List devuelve todos los usuarios registrados.
func (uc *UserUseCase) List() ([]dto.UserResponse, error) {
	users, err := uc.users.List()
	if err != nil {
		return nil, err
	}
	out := make([]dto.UserResponse, 0, len(users))
	for _, u := range users {
		out = append(out, *auth.ToUserResponse(u))
	}
	return out, nil
}

// HasAnyUser indica si ya existe al menos una cuenta; se usa para decidir
// si corresponde sembrar el administrador inicial.
func (uc *UserUseCase) HasAnyUser() (bool, error) {
	users, err := uc.users.List()
	if err != nil {
		return false, err
	}
	return len(users) > 0, nil
}
