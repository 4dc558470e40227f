package repository

import (
	"context"

	"github.com/jeffersoncargua/Pipeline-LineNatural/internal/domain/entity"
)

// Repository define el puerto de persistencia genérico del catálogo (DIP).
// T es Category o Product.
//
//   - GetAll devuelve todas las filas, o las que cumplen el filtro, en el orden
//     que decida el store (sin garantía explícita). Libre de efectos.
//   - Get devuelve la primera fila que cumple el filtro o (nil, nil) si no hay.
//   - Create inserta; si el store rechaza la escritura (campo requerido nulo,
//     violación de check) el error se distingue de los errores de dominio.
//   - Remove elimina la fila dada; una entidad nula es domain.ErrNilEntity
//     (el caller debe verificar existencia antes de eliminar).
//   - Save confirma cambios pendientes de forma explícita. Bajo autocommit no
//     hay pendientes y es un no-op; se conserva por el contrato.
type Repository[T any] interface {
	GetAll(ctx context.Context, filter *Filter) ([]*T, error)
	Get(ctx context.Context, filter *Filter, opts ...GetOption) (*T, error)
	Create(ctx context.Context, e *T) error
	Remove(ctx context.Context, e *T) error
	Save(ctx context.Context) error
}

// CategoryRepository agrega la operación de actualización para Category.
// Update contra un id inexistente falla con domain.ErrConcurrency.
type CategoryRepository interface {
	Repository[entity.Category]
	Update(ctx context.Context, c *entity.Category) error
}

// ProductRepository agrega la operación de actualización para Product.
type ProductRepository interface {
	Repository[entity.Product]
	Update(ctx context.Context, p *entity.Product) error
}
