package repository

import (
	"context"

	"github.com/aetherchain/aetherchain-api/internal/domain/entity"
)

// SupplierRepository define el puerto de persistencia para Supplier (DIP).
// Create devuelve domain.ErrDuplicateName si el nombre ya existe (constraint
// único de la BD, no chequeo previo en aplicación).
type SupplierRepository interface {
	Create(ctx context.Context, supplier *entity.Supplier) error
	GetByID(ctx context.Context, id string) (*entity.Supplier, error)
	GetByName(ctx context.Context, name string) (*entity.Supplier, error)
	List(ctx context.Context, limit, offset int) ([]*entity.Supplier, error)
}
