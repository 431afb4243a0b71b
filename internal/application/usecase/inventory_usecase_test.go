package usecase_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aetherchain/aetherchain-api/internal/application/dto"
	"github.com/aetherchain/aetherchain-api/internal/application/usecase"
	"github.com/aetherchain/aetherchain-api/internal/domain"
	"github.com/aetherchain/aetherchain-api/internal/domain/entity"
)

// Stubs mínimos por-id: GetByID devuelve (nil, nil) para ids desconocidos,
// igual que los adaptadores de PostgreSQL.

type stubProductRepo struct {
	byID map[string]*entity.Product
}

func (r *stubProductRepo) Create(_ context.Context, p *entity.Product) error {
	r.byID[p.ID] = p
	return nil
}

func (r *stubProductRepo) GetByID(_ context.Context, id string) (*entity.Product, error) {
	return r.byID[id], nil
}

func (r *stubProductRepo) List(_ context.Context, _, _ int) ([]*entity.Product, error) {
	return nil, nil
}

type stubWarehouseRepo struct {
	byID map[string]*entity.Warehouse
}

func (r *stubWarehouseRepo) Create(_ context.Context, w *entity.Warehouse) error {
	r.byID[w.ID] = w
	return nil
}

func (r *stubWarehouseRepo) GetByID(_ context.Context, id string) (*entity.Warehouse, error) {
	return r.byID[id], nil
}

func (r *stubWarehouseRepo) List(_ context.Context, _, _ int) ([]*entity.Warehouse, error) {
	return nil, nil
}

type stubInventoryRepo struct {
	lots []*entity.InventoryLot
}

func (r *stubInventoryRepo) Create(_ context.Context, lot *entity.InventoryLot) error {
	r.lots = append(r.lots, lot)
	return nil
}

func (r *stubInventoryRepo) List(_ context.Context, limit, offset int) ([]*entity.InventoryLot, error) {
	if offset >= len(r.lots) {
		return nil, nil
	}
	end := offset + limit
	if end > len(r.lots) {
		end = len(r.lots)
	}
	return r.lots[offset:end], nil
}

func newInventoryFixture() (*usecase.InventoryUseCase, *stubInventoryRepo) {
	products := &stubProductRepo{byID: map[string]*entity.Product{
		"p1": {ID: "p1", Name: "Widget"},
	}}
	warehouses := &stubWarehouseRepo{byID: map[string]*entity.Warehouse{
		"w1": {ID: "w1", Location: "Hamburg Dock 4", Capacity: 5000},
	}}
	lots := &stubInventoryRepo{}
	return usecase.NewInventoryUseCase(lots, products, warehouses), lots
}

func TestAddLot_RegistraLote(t *testing.T) {
	uc, lots := newInventoryFixture()

	out, err := uc.AddLot(context.Background(), dto.AddInventoryLotRequest{
		ProductID: "p1", WarehouseID: "w1", Quantity: 40,
	})
	require.NoError(t, err)
	assert.NotEmpty(t, out.ID)
	assert.Equal(t, 40, out.Quantity)
	require.Len(t, lots.lots, 1)
	assert.Equal(t, "p1", lots.lots[0].ProductID)
}

func TestAddLot_CadaEventoEsUnLoteNuevo(t *testing.T) {
	uc, lots := newInventoryFixture()
	ctx := context.Background()

	// Dos stockings del mismo producto en la misma bodega: dos filas, no
	// una acumulada
	_, err := uc.AddLot(ctx, dto.AddInventoryLotRequest{ProductID: "p1", WarehouseID: "w1", Quantity: 10})
	require.NoError(t, err)
	_, err = uc.AddLot(ctx, dto.AddInventoryLotRequest{ProductID: "p1", WarehouseID: "w1", Quantity: 5})
	require.NoError(t, err)

	assert.Len(t, lots.lots, 2)
}

func TestAddLot_ProductoInexistente(t *testing.T) {
	uc, lots := newInventoryFixture()

	_, err := uc.AddLot(context.Background(), dto.AddInventoryLotRequest{
		ProductID: "fantasma", WarehouseID: "w1", Quantity: 10,
	})
	require.ErrorIs(t, err, domain.ErrReferenceNotFound)
	assert.Empty(t, lots.lots)
}

func TestAddLot_BodegaInexistente(t *testing.T) {
	uc, lots := newInventoryFixture()

	_, err := uc.AddLot(context.Background(), dto.AddInventoryLotRequest{
		ProductID: "p1", WarehouseID: "fantasma", Quantity: 10,
	})
	require.ErrorIs(t, err, domain.ErrReferenceNotFound)
	assert.Empty(t, lots.lots)
}

func TestAddLot_CantidadNegativa(t *testing.T) {
	uc, lots := newInventoryFixture()

	_, err := uc.AddLot(context.Background(), dto.AddInventoryLotRequest{
		ProductID: "p1", WarehouseID: "w1", Quantity: -1,
	})
	require.ErrorIs(t, err, domain.ErrInvalidInput)
	assert.Empty(t, lots.lots)
}

func TestAddLot_CantidadCeroEsValida(t *testing.T) {
	uc, lots := newInventoryFixture()

	out, err := uc.AddLot(context.Background(), dto.AddInventoryLotRequest{
		ProductID: "p1", WarehouseID: "w1", Quantity: 0,
	})
	require.NoError(t, err)
	assert.Equal(t, 0, out.Quantity)
	assert.Len(t, lots.lots, 1)
}
