package repository

import "context"

// ProductStockRow fila cruda de la agregación de stock por producto.
// La produce la BD; el use case aplica el filtro de umbral.
type ProductStockRow struct {
	ProductID     string
	ProductName   string
	ReorderLevel  int
	TotalQuantity int64
}

// StockAlertRepository define la consulta de lectura para la agregación de
// stock. Las implementaciones son read-only (no modifican datos).
type StockAlertRepository interface {
	// GroupStockByProduct agrupa los lotes de inventory por product_id,
	// suma quantity y une con products mediante INNER JOIN: un producto
	// sin lotes registrados no produce fila (política deliberada del
	// sistema: solo alertan productos con stock rastreado pero
	// insuficiente, no productos ausentes del inventario).
	// La lectura es una sola sentencia SQL, es decir un snapshot
	// consistente frente a escrituras concurrentes.
	GroupStockByProduct(ctx context.Context) ([]ProductStockRow, error)
}
