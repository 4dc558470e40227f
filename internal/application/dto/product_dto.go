package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

var maxPrice = decimal.NewFromFloat(999.99)

// ProductDTO salida de un producto. Category viene poblada solo cuando el get
// pidió la carga de la categoría.
type ProductDTO struct {
	ID          int32           `json:"id"`
	CategoryID  int32           `json:"categoryId"`
	ProductName string          `json:"productName"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price"`
	Stock       int32           `json:"stock"`
	DateExpiry  time.Time       `json:"dateExpiry"`
	Category    *CategoryDTO    `json:"category,omitempty"`
}

// ProductCreateDTO entrada para crear un producto.
type ProductCreateDTO struct {
	CategoryID  int32           `json:"categoryId"`
	ProductName string          `json:"productName"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price"`
	Stock       int32           `json:"stock"`
	DateExpiry  time.Time       `json:"dateExpiry"`
}

// Validate devuelve la lista de violaciones del request; vacía si es válido.
func (d ProductCreateDTO) Validate() []string {
	return validateProductFields(d.CategoryID, d.ProductName, d.Description, d.Price, d.Stock)
}

// ProductUpdateDTO entrada para actualizar un producto (reemplazo completo de los campos mutables).
type ProductUpdateDTO struct {
	ID          int32           `json:"id"`
	CategoryID  int32           `json:"categoryId"`
	ProductName string          `json:"productName"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price"`
	Stock       int32           `json:"stock"`
	DateExpiry  time.Time       `json:"dateExpiry"`
}

// Validate devuelve la lista de violaciones del request; vacía si es válido.
func (d ProductUpdateDTO) Validate() []string {
	v := validateProductFields(d.CategoryID, d.ProductName, d.Description, d.Price, d.Stock)
	if d.ID < 1 {
		v = append(v, "id debe ser un entero positivo")
	}
	return v
}

func validateProductFields(categoryID int32, name, description string, price decimal.Decimal, stock int32) []string {
	var v []string
	if categoryID < 1 {
		v = append(v, "categoryId debe ser un entero positivo")
	}
	if name == "" {
		v = append(v, "productName es requerido")
	}
	if len(name) > 30 {
		v = append(v, "productName no puede superar 30 caracteres")
	}
	if description == "" {
		v = append(v, "description es requerido")
	}
	if price.IsNegative() || price.GreaterThan(maxPrice) {
		v = append(v, "price debe estar entre 0.00 y 999.99")
	}
	if stock < 0 || stock > 100 {
		v = append(v, "stock debe estar entre 0 y 100")
	}
	return v
}
