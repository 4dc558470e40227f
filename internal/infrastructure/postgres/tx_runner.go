package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jeffersoncargua/Pipeline-LineNatural/internal/application/account"
	"github.com/jeffersoncargua/Pipeline-LineNatural/internal/domain/repository"
)

var _ account.TxRunner = (*TxRunner)(nil)

// TxRunner ejecuta callbacks dentro de una transacción PostgreSQL.
// El registro de cuentas lo usa para que la creación de la cuenta, la verificación
// del rol y la asignación sean atómicas: un rol inexistente revierte la cuenta.
type TxRunner struct {
	pool *pgxpool.Pool
}

// NewTxRunner construye el runner con el pool.
func NewTxRunner(pool *pgxpool.Pool) *TxRunner {
	return &TxRunner{pool: pool}
}

// InTx inicia una transacción, ejecuta fn con un UserStore atado a la tx y hace Commit o Rollback.
func (r *TxRunner) InTx(ctx context.Context, fn func(store repository.UserStore) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if err := fn(NewUserStore(tx)); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}
