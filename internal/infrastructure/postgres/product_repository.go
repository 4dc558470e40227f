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

var _ repository.ProductRepository = (*ProductRepo)(nil)

var productTable = Table[entity.Product]{
	Name:       "products",
	NameCol:    "product_name",
	SelectCols: "id, category_id, product_name, description, price, stock, date_expiry",
	InsertCols: "category_id, product_name, description, price, stock, date_expiry",
	InsertVals: func(p *entity.Product) []any {
		return []any{p.CategoryID, p.ProductName, p.Description, p.Price, p.Stock, p.DateExpiry}
	},
	ID:   func(p *entity.Product) *int32 { return &p.ID },
	Load: loadProductPath,
}

// loadProductPath resuelve las rutas de carga ansiosa de Product.
func loadProductPath(ctx context.Context, q Querier, p *entity.Product, path string) error {
	switch path {
	case "Category":
		var c entity.Category
		err := q.QueryRow(ctx,
			`SELECT id, category_name FROM categories WHERE id = $1`, p.CategoryID,
		).Scan(&c.ID, &c.CategoryName)
		if err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return nil
			}
			return fmt.Errorf("load category: %w", err)
		}
		p.Category = &c
		return nil
	default:
		return fmt.Errorf("products: ruta de carga desconocida: %q", path)
	}
}

// ProductRepo implementación del puerto ProductRepository sobre PostgreSQL (usable con pool o tx).
type ProductRepo struct {
	*Repo[entity.Product]
	q Querier
}

// NewProductRepository construye el adaptador de persistencia para productos.
func NewProductRepository(q Querier) *ProductRepo {
	return &ProductRepo{Repo: NewRepo(q, productTable), q: q}
}

// Update persiste de inmediato la fila modificada (reemplazo completo de los
// campos mutables). Fila inexistente al confirmar -> error de concurrencia.
func (r *ProductRepo) Update(ctx context.Context, p *entity.Product) error {
	cmd, err := r.q.Exec(ctx,
		`UPDATE products SET category_id = $2, product_name = $3, description = $4, price = $5, stock = $6, date_expiry = $7
		 WHERE id = $1`,
		p.ID, p.CategoryID, p.ProductName, p.Description, p.Price, p.Stock, p.DateExpiry,
	)
	if err != nil {
		if isForeignKeyViolation(err) {
			return domain.ErrInvalidInput
		}
		return fmt.Errorf("update product: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrConcurrency
	}
	return nil
}
