package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product representa un producto del catálogo. CategoryID debe referenciar una
// Category viva al crear y al actualizar. Category se puebla solo cuando el get
// pide la ruta de carga "Category".
type Product struct {
	ID          int32           `db:"id"`
	CategoryID  int32           `db:"category_id"`
	Category    *Category       `db:"-"`
	ProductName string          `db:"product_name"`
	Description string          `db:"description"`
	Price       decimal.Decimal `db:"price"` // 0.00 a 999.99
	Stock       int32           `db:"stock"` // 0 a 100
	DateExpiry  time.Time       `db:"date_expiry"`
}
