package postgres

import (
	"context"
	"fmt"

	"github.com/jeffersoncargua/Pipeline-LineNatural/internal/domain"
	"github.com/jeffersoncargua/Pipeline-LineNatural/internal/domain/entity"
	"github.com/jeffersoncargua/Pipeline-LineNatural/internal/domain/repository"
)

var _ repository.CategoryRepository = (*CategoryRepo)(nil)

var categoryTable = Table[entity.Category]{
	Name:       "categories",
	NameCol:    "category_name",
	SelectCols: "id, category_name",
	InsertCols: "category_name",
	InsertVals: func(c *entity.Category) []any { return []any{c.CategoryName} },
	ID:         func(c *entity.Category) *int32 { return &c.ID },
}

// CategoryRepo implementación del puerto CategoryRepository sobre PostgreSQL (usable con pool o tx).
type CategoryRepo struct {
	*Repo[entity.Category]
	q Querier
}

// NewCategoryRepository construye el adaptador de persistencia para categorías.
func NewCategoryRepository(q Querier) *CategoryRepo {
	return &CategoryRepo{Repo: NewRepo(q, categoryTable), q: q}
}

// Update persiste de inmediato la fila modificada. Si la fila esperada no existe
// al confirmar, es un error de concurrencia, no un no-op silencioso.
func (r *CategoryRepo) Update(ctx context.Context, c *entity.Category) error {
	cmd, err := r.q.Exec(ctx,
		`UPDATE categories SET category_name = $2 WHERE id = $1`,
		c.ID, c.CategoryName,
	)
	if err != nil {
		return fmt.Errorf("update category: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrConcurrency
	}
	return nil
}
