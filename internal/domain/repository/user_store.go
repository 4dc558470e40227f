package repository

import (
	"context"

	"github.com/jeffersoncargua/Pipeline-LineNatural/internal/domain/entity"
)

// UserStore define el puerto de persistencia de cuentas y roles que consume el
// proveedor de identidad. Los Find devuelven (nil, nil) si la cuenta no existe.
type UserStore interface {
	Create(ctx context.Context, u *entity.User) error
	FindByEmail(ctx context.Context, email string) (*entity.User, error)
	FindByID(ctx context.Context, id string) (*entity.User, error)
	Update(ctx context.Context, u *entity.User) error
	RoleExists(ctx context.Context, name string) (bool, error)
}
