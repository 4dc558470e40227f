package dto

// CategoryDTO salida de una categoría.
type CategoryDTO struct {
	ID           int32  `json:"id"`
	CategoryName string `json:"categoryName"`
}

// CategoryCreateDTO entrada para crear una categoría.
type CategoryCreateDTO struct {
	CategoryName string `json:"categoryName"`
}

// Validate devuelve la lista de violaciones del request; vacía si es válido.
// Se ejecuta en el borde HTTP antes de cualquier lógica del handler.
func (d CategoryCreateDTO) Validate() []string {
	var v []string
	if d.CategoryName == "" {
		v = append(v, "categoryName es requerido")
	}
	if len(d.CategoryName) > 30 {
		v = append(v, "categoryName no puede superar 30 caracteres")
	}
	return v
}

// CategoryUpdateDTO entrada para actualizar una categoría (reemplazo completo).
type CategoryUpdateDTO struct {
	ID           int32  `json:"id"`
	CategoryName string `json:"categoryName"`
}

// Validate devuelve la lista de violaciones del request; vacía si es válido.
func (d CategoryUpdateDTO) Validate() []string {
	var v []string
	if d.ID < 1 {
		v = append(v, "id debe ser un entero positivo")
	}
	if d.CategoryName == "" {
		v = append(v, "categoryName es requerido")
	}
	if len(d.CategoryName) > 30 {
		v = append(v, "categoryName no puede superar 30 caracteres")
	}
	return v
}
