package postgres

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/aetherchain/aetherchain-api/internal/application/sync"
	"github.com/aetherchain/aetherchain-api/internal/domain/repository"
)

// Ensure TxRunner implements sync.TxRunner.
var _ sync.TxRunner = (*TxRunner)(nil)

// TxRunner ejecuta callbacks dentro de una transacción PostgreSQL.
type TxRunner struct {
	pool *pgxpool.Pool
}

// NewTxRunner construye el runner con el pool.
func NewTxRunner(pool *pgxpool.Pool) *TxRunner {
	return &TxRunner{pool: pool}
}

// Run inicia una transacción, ejecuta fn con repos atados a la tx y hace
// Commit o Rollback. Cada invocación es una transacción independiente: dos
// creaciones concurrentes no comparten estado y la unicidad la resuelve el
// constraint de la BD, no un lock de aplicación.
func (r *TxRunner) Run(ctx context.Context, fn func(
	supplierRepo repository.SupplierRepository,
	productRepo repository.ProductRepository,
) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return wrapStoreErr("begin transaction", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	supplierRepo := NewSupplierRepository(tx)
	productRepo := NewProductRepository(tx)

	if err := fn(supplierRepo, productRepo); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return wrapStoreErr("commit transaction", err)
	}
	return nil
}
