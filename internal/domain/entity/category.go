package entity

// Category representa una categoría de productos.
// El nombre es único entre filas vivas (comparación case-insensitive en la capa de aplicación).
type Category struct {
	ID           int32  `db:"id"`
	CategoryName string `db:"category_name"`
}
