package entity

import "time"

// Roles válidos para User.
const (
	RoleAdmin   = "admin"
	RoleCashier = "cashier"
)

// MaxAdmins límite de cuentas administradoras en todo el sistema.
const MaxAdmins = 3

// Permissions capacidades de un operador de caja. Los administradores
// tienen todas implícitamente.
type Permissions struct {
	CanViewClients    bool `json:"canViewClients"`
	CanMakePayments   bool `json:"canMakePayments"`
	CanAddClients     bool `json:"canAddClients"`
	CanEditClients    bool `json:"canEditClients"`
	CanDeleteClients  bool `json:"canDeleteClients"`
	CanUpdateBalance  bool `json:"canUpdateBalance"`
	CanRemovePayments bool `json:"canRemovePayments"`
	CanExportImport   bool `json:"canExportImport"`
	CanBillMonthly    bool `json:"canBillMonthly"`
}

// DefaultCashierPermissions permisos iniciales de un empleado de caja.
func DefaultCashierPermissions() Permissions {
	return Permissions{CanViewClients: true, CanMakePayments: true}
}

// Has consulta una capacidad por nombre (los nombres coinciden con las
// etiquetas JSON). Nombres desconocidos se niegan.
func (p Permissions) Has(name string) bool {
	switch name {
	case "canViewClients":
		return p.CanViewClients
	case "canMakePayments":
		return p.CanMakePayments
	case "canAddClients":
		return p.CanAddClients
	case "canEditClients":
		return p.CanEditClients
	case "canDeleteClients":
		return p.CanDeleteClients
	case "canUpdateBalance":
		return p.CanUpdateBalance
	case "canRemovePayments":
		return p.CanRemovePayments
	case "canExportImport":
		return p.CanExportImport
	case "canBillMonthly":
		return p.CanBillMonthly
	default:
		return false
	}
}

// User representa un operador del sistema (administrador o caja).
// Username es la clave única; es el identificador que queda registrado
// como actor en cada entrada del historial de modificaciones.
type User struct {
	Username     string      `json:"username"`
	PasswordHash string      `json:"passwordHash"` // bcrypt, nunca plano después de persistir
	Role         string      `json:"role"`         // admin | cashier
	Name         string      `json:"name"`
	LastName     string      `json:"lastName"`
	Phone        string      `json:"phone"`
	Email        string      `json:"email"`
	Permissions  Permissions `json:"permissions"`
	CreatedAt    time.Time   `json:"createdAt"`
	UpdatedAt    time.Time   `json:"updatedAt"`
}
