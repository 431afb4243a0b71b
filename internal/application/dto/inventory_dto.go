package dto

import "time"

// AddInventoryLotRequest entrada para registrar un lote de existencias.
type AddInventoryLotRequest struct {
	ProductID   string `json:"product_id" validate:"required"`
	WarehouseID string `json:"warehouse_id" validate:"required"`
	Quantity    int    `json:"quantity" validate:"min=0"`
}

// InventoryLotResponse salida de un lote.
type InventoryLotResponse struct {
	ID          string    `json:"id"`
	ProductID   string    `json:"product_id"`
	WarehouseID string    `json:"warehouse_id"`
	Quantity    int       `json:"quantity"`
	CreatedAt   time.Time `json:"created_at"`
}

// InventoryListResponse lista paginada de lotes.
type InventoryListResponse struct {
	Items []InventoryLotResponse `json:"items"`
	Page  PageResponse           `json:"page"`
}

// LowStockAlertDTO producto cuyo stock total quedó bajo su umbral de reposición.
type LowStockAlertDTO struct {
	ProductName   string `json:"product_name"`
	ReorderLevel  int    `json:"reorder_level"`
	TotalQuantity int64  `json:"total_quantity"`
}
