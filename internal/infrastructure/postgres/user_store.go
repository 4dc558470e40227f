package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jeffersoncargua/Pipeline-LineNatural/internal/domain"
	"github.com/jeffersoncargua/Pipeline-LineNatural/internal/domain/entity"
	"github.com/jeffersoncargua/Pipeline-LineNatural/internal/domain/repository"
)

var _ repository.UserStore = (*UserStore)(nil)

const userCols = `id, user_name, name, password_hash, email_confirmed, confirm_token, reset_token, role, created_at, updated_at`

// UserStore implementación del puerto de cuentas sobre PostgreSQL (usable con pool o tx).
type UserStore struct {
	q Querier
}

// NewUserStore construye el adaptador de persistencia de cuentas.
func NewUserStore(q Querier) *UserStore {
	return &UserStore{q: q}
}

// Create persiste una cuenta nueva. user_name duplicado -> domain.ErrUserNameTaken.
func (s *UserStore) Create(ctx context.Context, u *entity.User) error {
	query := `
		INSERT INTO users (id, user_name, name, password_hash, email_confirmed, confirm_token, reset_token, role, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, NULLIF($8, ''), $9, $10)`
	_, err := s.q.Exec(ctx, query,
		u.ID, u.UserName, u.Name, u.PasswordHash, u.EmailConfirmed,
		u.ConfirmToken, u.ResetToken, u.Role, u.CreatedAt, u.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrUserNameTaken
		}
		return fmt.Errorf("insert user: %w", err)
	}
	return nil
}

// FindByEmail busca una cuenta por user_name/email. (nil, nil) si no existe.
func (s *UserStore) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	return s.findOne(ctx, `WHERE user_name = $1`, email)
}

// FindByID busca una cuenta por id. (nil, nil) si no existe.
func (s *UserStore) FindByID(ctx context.Context, id string) (*entity.User, error) {
	return s.findOne(ctx, `WHERE id = $1`, id)
}

func (s *UserStore) findOne(ctx context.Context, where string, arg any) (*entity.User, error) {
	var u entity.User
	var role *string
	err := s.q.QueryRow(ctx,
		`SELECT `+userCols+` FROM users `+where, arg,
	).Scan(
		&u.ID, &u.UserName, &u.Name, &u.PasswordHash, &u.EmailConfirmed,
		&u.ConfirmToken, &u.ResetToken, &role, &u.CreatedAt, &u.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get user: %w", err)
	}
	if role != nil {
		u.Role = *role
	}
	return &u, nil
}

// Update persiste los campos mutables de la cuenta.
func (s *UserStore) Update(ctx context.Context, u *entity.User) error {
	query := `
		UPDATE users SET name = $2, password_hash = $3, email_confirmed = $4,
			confirm_token = $5, reset_token = $6, role = NULLIF($7, ''), updated_at = $8
		WHERE id = $1`
	_, err := s.q.Exec(ctx, query,
		u.ID, u.Name, u.PasswordHash, u.EmailConfirmed,
		u.ConfirmToken, u.ResetToken, u.Role, u.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update user: %w", err)
	}
	return nil
}

// RoleExists consulta la enumeración pre-sembrada de roles.
func (s *UserStore) RoleExists(ctx context.Context, name string) (bool, error) {
	var exists bool
	err := s.q.QueryRow(ctx,
		`SELECT EXISTS (SELECT 1 FROM roles WHERE name = $1)`, name,
	).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("role exists: %w", err)
	}
	return exists, nil
}
