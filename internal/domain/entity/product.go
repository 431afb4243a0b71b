package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// DefaultReorderLevel umbral de reposición cuando el request no lo especifica.
const DefaultReorderLevel = 20

// Product representa un producto ofrecido por exactamente un proveedor.
// Name NO es único globalmente: dos proveedores pueden vender un producto
// con el mismo nombre (ver la nota de multiplicidad en graphquery).
type Product struct {
	ID           string
	Name         string
	Price        decimal.Decimal // precio de venta, no negativo
	ReorderLevel int             // umbral de alerta de stock bajo
	SupplierID   string
	CreatedAt    time.Time
}
