package sync

import (
	"context"

	"github.com/aetherchain/aetherchain-api/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción del almacén
// primario, pasando repositorios atados a esa tx. Garantiza que el insert y
// la validación de referencias (lectura del proveedor por id) vean el mismo
// estado y se confirmen o reviertan juntos.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		supplierRepo repository.SupplierRepository,
		productRepo repository.ProductRepository,
	) error) error
}
