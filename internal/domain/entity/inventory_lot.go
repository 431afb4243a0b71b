package entity

import "time"

// InventoryLot representa un lote de existencias de un producto en una bodega.
// No hay restricción de unicidad sobre (ProductID, WarehouseID): un mismo par
// puede tener varios lotes y el stock total del producto es la suma de todos.
type InventoryLot struct {
	ID          string
	ProductID   string
	WarehouseID string
	Quantity    int // no negativa
	CreatedAt   time.Time
}
