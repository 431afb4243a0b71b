package usecase_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aetherchain/aetherchain-api/internal/application/usecase"
	"github.com/aetherchain/aetherchain-api/internal/domain/repository"
)

type stubStockAlertRepo struct {
	rows []repository.ProductStockRow
	err  error
}

func (r *stubStockAlertRepo) GroupStockByProduct(_ context.Context) ([]repository.ProductStockRow, error) {
	return r.rows, r.err
}

func TestLowStockAlerts_FiltraBajoUmbral(t *testing.T) {
	// El total del producto A (5+10=15) quedó bajo su umbral de 20; el de B no.
	repo := &stubStockAlertRepo{rows: []repository.ProductStockRow{
		{ProductID: "a", ProductName: "Widget A", ReorderLevel: 20, TotalQuantity: 15},
		{ProductID: "b", ProductName: "Widget B", ReorderLevel: 20, TotalQuantity: 30},
	}}
	uc := usecase.NewAlertUseCase(repo)

	alerts, err := uc.LowStockAlerts(context.Background())
	require.NoError(t, err)
	require.Len(t, alerts, 1)
	assert.Equal(t, "Widget A", alerts[0].ProductName)
	assert.Equal(t, 20, alerts[0].ReorderLevel)
	assert.Equal(t, int64(15), alerts[0].TotalQuantity)
}

func TestLowStockAlerts_IgualAlUmbralNoAlerta(t *testing.T) {
	// La comparación es estricta: total == umbral no es alerta
	repo := &stubStockAlertRepo{rows: []repository.ProductStockRow{
		{ProductID: "c", ProductName: "Widget C", ReorderLevel: 20, TotalQuantity: 20},
	}}
	uc := usecase.NewAlertUseCase(repo)

	alerts, err := uc.LowStockAlerts(context.Background())
	require.NoError(t, err)
	assert.Empty(t, alerts)
}

func TestLowStockAlerts_ProductoSinLotesNoAparece(t *testing.T) {
	// El INNER JOIN del repositorio no emite fila para productos sin lotes;
	// con cero filas no hay alertas, aunque existan productos en la tabla.
	uc := usecase.NewAlertUseCase(&stubStockAlertRepo{})

	alerts, err := uc.LowStockAlerts(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, alerts, "lista vacía, no nil, para serializar como []")
	assert.Empty(t, alerts)
}

func TestLowStockAlerts_PreservaOrdenDelRepositorio(t *testing.T) {
	repo := &stubStockAlertRepo{rows: []repository.ProductStockRow{
		{ProductID: "a", ProductName: "Bearing", ReorderLevel: 30, TotalQuantity: 2},
		{ProductID: "b", ProductName: "Rotor", ReorderLevel: 10, TotalQuantity: 4},
		{ProductID: "c", ProductName: "Valve", ReorderLevel: 50, TotalQuantity: 100},
	}}
	uc := usecase.NewAlertUseCase(repo)

	alerts, err := uc.LowStockAlerts(context.Background())
	require.NoError(t, err)
	require.Len(t, alerts, 2)
	assert.Equal(t, "Bearing", alerts[0].ProductName)
	assert.Equal(t, "Rotor", alerts[1].ProductName)
}

func TestLowStockAlerts_PropagaErrorDelRepositorio(t *testing.T) {
	repoErr := errors.New("conexión perdida")
	uc := usecase.NewAlertUseCase(&stubStockAlertRepo{err: repoErr})

	_, err := uc.LowStockAlerts(context.Background())
	require.ErrorIs(t, err, repoErr)
}
