package repository

// Filter describe los predicados que soportan los listados y gets del catálogo.
// Campos en cero se ignoran; un filtro nil equivale a "todas las filas".
// El campo de nombre al que aplican NameEquals/NameContains lo decide cada
// repositorio (category_name, product_name).
type Filter struct {
	ID           int32  // >0 filtra por id
	NameEquals   string // igualdad de nombre case-insensitive
	NameContains string // substring de nombre, case-sensitive ("contains" del store)
}

// GetOptions opciones de un get individual.
type GetOptions struct {
	// Untracked señala que el resultado no debe quedar atado a una sesión de
	// change tracking. Un store sin change tracking (este) acepta y la ignora.
	Untracked bool
	// Includes rutas de entidades relacionadas a cargar (ej. "Category").
	Includes []string
}

// GetOption modifica GetOptions.
type GetOption func(*GetOptions)

// Untracked pide una lectura sin tracking.
func Untracked() GetOption {
	return func(o *GetOptions) { o.Untracked = true }
}

// Include pide la carga ansiosa de una entidad relacionada.
func Include(path string) GetOption {
	return func(o *GetOptions) { o.Includes = append(o.Includes, path) }
}

// ApplyGetOptions materializa las opciones de un get.
func ApplyGetOptions(opts []GetOption) GetOptions {
	var o GetOptions
	for _, opt := range opts {
		opt(&o)
	}
	return o
}
