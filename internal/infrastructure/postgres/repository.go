package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jeffersoncargua/Pipeline-LineNatural/internal/domain"
	"github.com/jeffersoncargua/Pipeline-LineNatural/internal/domain/repository"
)

// Querier abstrae pool y transacción para que los repositorios funcionen sobre ambos.
type Querier interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// Table describe el mapeo declarativo entidad↔tabla que consume el repositorio genérico.
type Table[T any] struct {
	Name       string // nombre de la tabla
	NameCol    string // columna sobre la que aplican los filtros de nombre
	SelectCols string // lista de columnas del SELECT
	InsertCols string // columnas del INSERT, sin id (lo genera el store)
	InsertVals func(*T) []any  // valores en el orden de InsertCols
	ID         func(*T) *int32 // acceso al id generado (RETURNING, DELETE)
	// Load resuelve una ruta de carga ansiosa sobre una entidad ya leída.
	// nil si la entidad no tiene relaciones.
	Load func(ctx context.Context, q Querier, e *T, path string) error
}

// Repo implementación genérica de repository.Repository sobre PostgreSQL
// (usable con pool o tx). Los repositorios por entidad lo componen y agregan Update.
type Repo[T any] struct {
	q Querier
	t Table[T]
}

// NewRepo construye el repositorio genérico para una tabla. Pasar pool o tx (Querier).
func NewRepo[T any](q Querier, t Table[T]) *Repo[T] {
	return &Repo[T]{q: q, t: t}
}

// GetAll devuelve todas las filas que cumplen el filtro, en el orden del store.
func (r *Repo[T]) GetAll(ctx context.Context, f *repository.Filter) ([]*T, error) {
	where, args := buildWhere(f, r.t.NameCol)
	rows, err := r.q.Query(ctx, fmt.Sprintf("SELECT %s FROM %s%s", r.t.SelectCols, r.t.Name, where), args...)
	if err != nil {
		return nil, fmt.Errorf("select %s: %w", r.t.Name, err)
	}
	list, err := pgx.CollectRows(rows, pgx.RowToAddrOfStructByNameLax[T])
	if err != nil {
		return nil, fmt.Errorf("scan %s: %w", r.t.Name, err)
	}
	return list, nil
}

// Get devuelve la primera fila que cumple el filtro o (nil, nil) si no hay.
// La opción Untracked se acepta y se ignora: pgx no mantiene change tracking.
func (r *Repo[T]) Get(ctx context.Context, f *repository.Filter, opts ...repository.GetOption) (*T, error) {
	o := repository.ApplyGetOptions(opts)
	where, args := buildWhere(f, r.t.NameCol)
	rows, err := r.q.Query(ctx, fmt.Sprintf("SELECT %s FROM %s%s LIMIT 1", r.t.SelectCols, r.t.Name, where), args...)
	if err != nil {
		return nil, fmt.Errorf("select %s: %w", r.t.Name, err)
	}
	e, err := pgx.CollectOneRow(rows, pgx.RowToAddrOfStructByNameLax[T])
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("scan %s: %w", r.t.Name, err)
	}
	for _, path := range o.Includes {
		if r.t.Load == nil {
			return nil, fmt.Errorf("%s: ruta de carga no soportada: %q", r.t.Name, path)
		}
		if err := r.t.Load(ctx, r.q, e, path); err != nil {
			return nil, err
		}
	}
	return e, nil
}

// Create inserta una fila nueva y asigna el id generado a la entidad.
// Violación de unicidad -> domain.ErrDuplicate; FK inválida -> domain.ErrInvalidInput;
// cualquier otro rechazo del store se envuelve como falla de persistencia.
func (r *Repo[T]) Create(ctx context.Context, e *T) error {
	if e == nil {
		return domain.ErrNilEntity
	}
	cols := strings.Split(r.t.InsertCols, ",")
	ph := make([]string, len(cols))
	for i := range cols {
		ph[i] = fmt.Sprintf("$%d", i+1)
	}
	query := fmt.Sprintf("INSERT INTO %s (%s) VALUES (%s) RETURNING id",
		r.t.Name, r.t.InsertCols, strings.Join(ph, ", "))
	if err := r.q.QueryRow(ctx, query, r.t.InsertVals(e)...).Scan(r.t.ID(e)); err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		if isForeignKeyViolation(err) {
			return domain.ErrInvalidInput
		}
		return fmt.Errorf("insert %s: %w", r.t.Name, err)
	}
	return nil
}

// Remove elimina la fila dada. El contrato exige que el caller verifique
// existencia antes: una entidad nula es un error de argumento, no un no-op.
func (r *Repo[T]) Remove(ctx context.Context, e *T) error {
	if e == nil {
		return domain.ErrNilEntity
	}
	if _, err := r.q.Exec(ctx, fmt.Sprintf("DELETE FROM %s WHERE id = $1", r.t.Name), *r.t.ID(e)); err != nil {
		return fmt.Errorf("delete %s: %w", r.t.Name, err)
	}
	return nil
}

// Save confirma cambios pendientes. Sobre pool las escrituras son autocommit y
// no hay pendientes; dentro de una transacción el commit lo hace el TxRunner.
func (r *Repo[T]) Save(ctx context.Context) error {
	return nil
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// escapeLike neutraliza los metacaracteres de LIKE para que el filtro de
// subcadena sea literal: "50%" busca el texto "50%", no un prefijo.
func escapeLike(s string) string {
	return likeEscaper.Replace(s)
}

// buildWhere convierte el filtro declarativo en una cláusula WHERE parametrizada.
func buildWhere(f *repository.Filter, nameCol string) (string, []any) {
	if f == nil {
		return "", nil
	}
	var conds []string
	var args []any
	if f.ID > 0 {
		args = append(args, f.ID)
		conds = append(conds, fmt.Sprintf("id = $%d", len(args)))
	}
	if f.NameEquals != "" {
		args = append(args, f.NameEquals)
		conds = append(conds, fmt.Sprintf("LOWER(%s) = LOWER($%d)", nameCol, len(args)))
	}
	if f.NameContains != "" {
		args = append(args, escapeLike(f.NameContains))
		conds = append(conds, fmt.Sprintf(`%s LIKE '%%' || $%d || '%%' ESCAPE '\'`, nameCol, len(args)))
	}
	if len(conds) == 0 {
		return "", nil
	}
	return " WHERE " + strings.Join(conds, " AND "), args
}
