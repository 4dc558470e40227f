package postgres

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jeffersoncargua/Pipeline-LineNatural/internal/domain/repository"
)

// buildWhere arma la cláusula parametrizada en el orden id, igualdad, subcadena.
func TestBuildWhere(t *testing.T) {
	casos := []struct {
		nombre    string
		filter    *repository.Filter
		wantWhere string
		wantArgs  []any
	}{
		{
			nombre:    "sin filtro",
			filter:    nil,
			wantWhere: "",
			wantArgs:  nil,
		},
		{
			nombre:    "filtro vacío",
			filter:    &repository.Filter{},
			wantWhere: "",
			wantArgs:  nil,
		},
		{
			nombre:    "por id",
			filter:    &repository.Filter{ID: 7},
			wantWhere: " WHERE id = $1",
			wantArgs:  []any{int32(7)},
		},
		{
			nombre:    "igualdad de nombre sin distinguir mayúsculas",
			filter:    &repository.Filter{NameEquals: "Vitaminas"},
			wantWhere: " WHERE LOWER(category_name) = LOWER($1)",
			wantArgs:  []any{"Vitaminas"},
		},
		{
			nombre:    "subcadena del nombre",
			filter:    &repository.Filter{NameContains: "min"},
			wantWhere: ` WHERE category_name LIKE '%' || $1 || '%' ESCAPE '\'`,
			wantArgs:  []any{"min"},
		},
		{
			nombre:    "subcadena con metacaracteres de LIKE escapados",
			filter:    &repository.Filter{NameContains: `50%_a\b`},
			wantWhere: ` WHERE category_name LIKE '%' || $1 || '%' ESCAPE '\'`,
			wantArgs:  []any{`50\%\_a\\b`},
		},
		{
			nombre:    "combinado",
			filter:    &repository.Filter{ID: 3, NameContains: "min"},
			wantWhere: ` WHERE id = $1 AND category_name LIKE '%' || $2 || '%' ESCAPE '\'`,
			wantArgs:  []any{int32(3), "min"},
		},
	}

	for _, c := range casos {
		t.Run(c.nombre, func(t *testing.T) {
			where, args := buildWhere(c.filter, "category_name")
			assert.Equal(t, c.wantWhere, where)
			assert.Equal(t, c.wantArgs, args)
		})
	}
}
