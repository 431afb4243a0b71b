package usecase

import (
	"context"

	"github.com/aetherchain/aetherchain-api/internal/application/dto"
	"github.com/aetherchain/aetherchain-api/internal/domain/repository"
)

// AlertUseCase motor de agregación de stock bajo: lee los totales por
// producto (snapshot de una sola consulta) y filtra los que quedaron
// estrictamente por debajo de su umbral de reposición.
//
// Política de borde: un producto con CERO lotes registrados no aparece nunca
// en las alertas, tenga el umbral que tenga — el repositorio usa INNER JOIN
// contra los lotes existentes, no LEFT JOIN. Solo alertan productos con
// stock rastreado pero insuficiente.
type AlertUseCase struct {
	repo repository.StockAlertRepository
}

// NewAlertUseCase construye el motor de alertas.
func NewAlertUseCase(repo repository.StockAlertRepository) *AlertUseCase {
	return &AlertUseCase{repo: repo}
}

// LowStockAlerts devuelve (product_name, reorder_level, total_quantity) para
// cada producto cuyo total quedó bajo el umbral, ordenado por nombre (orden
// estable que ya impone el repositorio).
func (uc *AlertUseCase) LowStockAlerts(ctx context.Context) ([]dto.LowStockAlertDTO, error) {
	rows, err := uc.repo.GroupStockByProduct(ctx)
	if err != nil {
		return nil, err
	}
	alerts := make([]dto.LowStockAlertDTO, 0)
	for _, row := range rows {
		if row.TotalQuantity < int64(row.ReorderLevel) {
			alerts = append(alerts, dto.LowStockAlertDTO{
				ProductName:   row.ProductName,
				ReorderLevel:  row.ReorderLevel,
				TotalQuantity: row.TotalQuantity,
			})
		}
	}
	return alerts, nil
}
