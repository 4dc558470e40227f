// Package identity implementa el proveedor de cuentas: hashing de contraseñas,
// política de contraseñas, roles y tokens de confirmación/reset. Es el colaborador
// que el resto del sistema trata como "identity provider"; la persistencia la
// delega en el puerto repository.UserStore.
package identity

import (
	"context"
	"time"
	"unicode"

	"github.com/google/uuid"
	"github.com/jeffersoncargua/Pipeline-LineNatural/internal/domain"
	"github.com/jeffersoncargua/Pipeline-LineNatural/internal/domain/entity"
	"github.com/jeffersoncargua/Pipeline-LineNatural/internal/domain/repository"
	"golang.org/x/crypto/bcrypt"
)

// Manager administra cuentas sobre un UserStore (pool o tx, según quién lo construya).
type Manager struct {
	store repository.UserStore
}

// NewManager construye el manager. Es barato: el registro crea uno por transacción.
func NewManager(store repository.UserStore) *Manager {
	return &Manager{store: store}
}

// CreateAccount valida la política de contraseñas, hashea con bcrypt y persiste
// la cuenta. domain.ErrWeakPassword si la política rechaza; domain.ErrUserNameTaken
// si el user name ya existe.
func (m *Manager) CreateAccount(ctx context.Context, u *entity.User, password string) error {
	if err := validatePassword(password); err != nil {
		return err
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	now := time.Now()
	u.PasswordHash = string(hash)
	u.CreatedAt = now
	u.UpdatedAt = now
	return m.store.Create(ctx, u)
}

// CheckPassword verifica la contraseña contra el hash. Una cuenta ausente (nil)
// corta en "inválida" en lugar de fallar.
func (m *Manager) CheckPassword(u *entity.User, password string) bool {
	if u == nil {
		return false
	}
	return bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)) == nil
}

// IsEmailConfirmed devuelve el flag de email confirmado; false para cuenta ausente.
func (m *Manager) IsEmailConfirmed(u *entity.User) bool {
	return u != nil && u.EmailConfirmed
}

// RoleExists consulta la enumeración de roles pre-sembrada.
func (m *Manager) RoleExists(ctx context.Context, role string) (bool, error) {
	return m.store.RoleExists(ctx, role)
}

// AssignRole asigna el rol a la cuenta y persiste. El caller debe haber
// verificado antes que el rol existe en la enumeración.
func (m *Manager) AssignRole(ctx context.Context, u *entity.User, role string) error {
	u.Role = role
	u.UpdatedAt = time.Now()
	return m.store.Update(ctx, u)
}

// GenerateConfirmationToken emite un token opaco de confirmación de email y lo
// deja registrado en la cuenta (un solo token vigente por cuenta).
func (m *Manager) GenerateConfirmationToken(ctx context.Context, u *entity.User) (string, error) {
	token := uuid.New().String()
	u.ConfirmToken = token
	u.UpdatedAt = time.Now()
	if err := m.store.Update(ctx, u); err != nil {
		return "", err
	}
	return token, nil
}

// ConfirmEmail marca el email como confirmado si el token coincide con el vigente.
// Devuelve false (sin error) cuando el token no valida.
func (m *Manager) ConfirmEmail(ctx context.Context, u *entity.User, token string) (bool, error) {
	if u == nil || token == "" || u.ConfirmToken != token {
		return false, nil
	}
	u.EmailConfirmed = true
	u.ConfirmToken = ""
	u.UpdatedAt = time.Now()
	if err := m.store.Update(ctx, u); err != nil {
		return false, err
	}
	return true, nil
}

// GeneratePasswordResetToken emite un token opaco de reset y lo registra en la cuenta.
func (m *Manager) GeneratePasswordResetToken(ctx context.Context, u *entity.User) (string, error) {
	token := uuid.New().String()
	u.ResetToken = token
	u.UpdatedAt = time.Now()
	if err := m.store.Update(ctx, u); err != nil {
		return "", err
	}
	return token, nil
}

// ResetPassword aplica la contraseña nueva si el token de reset valida y la
// contraseña cumple la política. Devuelve false (sin error) si algo no valida.
func (m *Manager) ResetPassword(ctx context.Context, u *entity.User, token, newPassword string) (bool, error) {
	if u == nil || token == "" || u.ResetToken != token {
		return false, nil
	}
	if err := validatePassword(newPassword); err != nil {
		return false, nil
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		return false, err
	}
	u.PasswordHash = string(hash)
	u.ResetToken = ""
	u.UpdatedAt = time.Now()
	if err := m.store.Update(ctx, u); err != nil {
		return false, err
	}
	return true, nil
}

// validatePassword aplica la política de contraseñas: mínimo 6 caracteres, con
// mayúscula, minúscula, dígito y un carácter no alfanumérico.
func validatePassword(password string) error {
	if len(password) < 6 {
		return domain.ErrWeakPassword
	}
	var upper, lower, digit, symbol bool
	for _, r := range password {
		switch {
		case unicode.IsUpper(r):
			upper = true
		case unicode.IsLower(r):
			lower = true
		case unicode.IsDigit(r):
			digit = true
		default:
			symbol = true
		}
	}
	if !upper || !lower || !digit || !symbol {
		return domain.ErrWeakPassword
	}
	return nil
}
