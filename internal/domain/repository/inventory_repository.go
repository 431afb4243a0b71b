package repository

import (
	"context"

	"github.com/aetherchain/aetherchain-api/internal/domain/entity"
)

// InventoryRepository define el puerto de persistencia para lotes de
// inventario. Un mismo par producto/bodega puede acumular varios lotes.
type InventoryRepository interface {
	Create(ctx context.Context, lot *entity.InventoryLot) error
	List(ctx context.Context, limit, offset int) ([]*entity.InventoryLot, error)
}
