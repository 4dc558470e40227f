package entity

import "time"

// Roles válidos para User. La enumeración vive pre-sembrada en la tabla roles;
// asignar un rol fuera de ella es un error.
const (
	RoleAdmin    = "admin"
	RoleCustomer = "customer"
)

// User representa una cuenta administrada por el proveedor de identidad.
// UserName y Email se usan indistintamente (el user name ES el email).
// ConfirmToken y ResetToken son tokens opacos de un solo propósito; se limpian al usarse.
type User struct {
	ID             string    `db:"id"`
	UserName       string    `db:"user_name"`
	Name           string    `db:"name"`
	PasswordHash   string    `db:"password_hash"` // bcrypt, nunca en claro después de persistir
	EmailConfirmed bool      `db:"email_confirmed"`
	ConfirmToken   string    `db:"confirm_token"`
	ResetToken     string    `db:"reset_token"`
	Role           string    `db:"role"` // admin, customer; vacío si aún no se asigna
	CreatedAt      time.Time `db:"created_at"`
	UpdatedAt      time.Time `db:"updated_at"`
}

// Email devuelve el email de la cuenta (alias de UserName).
func (u *User) Email() string {
	return u.UserName
}
