package postgres

import (
	"context"
	"fmt"

	"github.com/aetherchain/aetherchain-api/internal/domain"
	"github.com/aetherchain/aetherchain-api/internal/domain/entity"
	"github.com/aetherchain/aetherchain-api/internal/domain/repository"
)

var _ repository.InventoryRepository = (*InventoryRepo)(nil)

// InventoryRepo implementación del puerto InventoryRepository sobre PostgreSQL.
type InventoryRepo struct {
	q Querier
}

// NewInventoryRepository construye el adaptador de persistencia para lotes de inventario.
func NewInventoryRepository(q Querier) *InventoryRepo {
	return &InventoryRepo{q: q}
}

// Create persiste un lote. Sin unicidad sobre (product_id, warehouse_id):
// cada evento de stocking agrega una fila nueva.
func (r *InventoryRepo) Create(ctx context.Context, lot *entity.InventoryLot) error {
	query := `
		INSERT INTO inventory (id, product_id, warehouse_id, quantity, created_at)
		VALUES ($1, $2, $3, $4, $5)`
	_, err := r.q.Exec(ctx, query,
		lot.ID, lot.ProductID, lot.WarehouseID, lot.Quantity, lot.CreatedAt,
	)
	if err != nil {
		if isForeignKeyViolation(err) {
			return domain.ErrReferenceNotFound
		}
		return wrapStoreErr("insert inventory lot", err)
	}
	return nil
}

// List lista lotes con paginación.
func (r *InventoryRepo) List(ctx context.Context, limit, offset int) ([]*entity.InventoryLot, error) {
	query := `
		SELECT id, product_id, warehouse_id, quantity, created_at
		FROM inventory ORDER BY created_at LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, wrapStoreErr("list inventory", err)
	}
	defer rows.Close()
	var list []*entity.InventoryLot
	for rows.Next() {
		var lot entity.InventoryLot
		if err := rows.Scan(&lot.ID, &lot.ProductID, &lot.WarehouseID, &lot.Quantity, &lot.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan inventory lot: %w", err)
		}
		list = append(list, &lot)
	}
	return list, rows.Err()
}
