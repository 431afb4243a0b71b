package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/aetherchain/aetherchain-api/internal/domain/repository"
)

var _ repository.StockAlertRepository = (*StockAlertRepo)(nil)

// StockAlertRepo consulta de solo lectura para la agregación de stock.
type StockAlertRepo struct {
	pool *pgxpool.Pool
}

// NewStockAlertRepository construye el adaptador de agregación de stock.
func NewStockAlertRepository(pool *pgxpool.Pool) *StockAlertRepo {
	return &StockAlertRepo{pool: pool}
}

// GroupStockByProduct suma quantity por producto sobre todos sus lotes.
// INNER JOIN contra la subconsulta agrupada: un producto sin lotes no
// produce fila (no usar LEFT JOIN, el contrato es exactamente este).
// Una sola sentencia ⇒ snapshot consistente: ningún grupo puede contar a
// medias un lote confirmado antes de iniciar la lectura.
func (r *StockAlertRepo) GroupStockByProduct(ctx context.Context) ([]repository.ProductStockRow, error) {
	const query = `
	SELECT p.id, p.name, p.reorder_level, ts.total_quantity
	FROM products p
	JOIN (
	    SELECT product_id, SUM(quantity) AS total_quantity
	    FROM inventory
	    GROUP BY product_id
	) ts ON ts.product_id = p.id
	ORDER BY p.name`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, wrapStoreErr("stock.GroupStockByProduct", err)
	}
	defer rows.Close()

	var results []repository.ProductStockRow
	for rows.Next() {
		var row repository.ProductStockRow
		if err := rows.Scan(&row.ProductID, &row.ProductName, &row.ReorderLevel, &row.TotalQuantity); err != nil {
			return nil, fmt.Errorf("scan stock row: %w", err)
		}
		results = append(results, row)
	}
	return results, rows.Err()
}
