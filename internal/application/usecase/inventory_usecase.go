package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/aetherchain/aetherchain-api/internal/application/dto"
	"github.com/aetherchain/aetherchain-api/internal/domain"
	"github.com/aetherchain/aetherchain-api/internal/domain/entity"
	"github.com/aetherchain/aetherchain-api/internal/domain/repository"
)

// InventoryUseCase registra lotes de existencias y los lista. Cada evento de
// stocking es un lote nuevo; el stock total de un producto es la suma de sus
// lotes (la agrega AlertUseCase / StockAlertRepository).
type InventoryUseCase struct {
	repo          repository.InventoryRepository
	productRepo   repository.ProductRepository
	warehouseRepo repository.WarehouseRepository
}

// NewInventoryUseCase construye el caso de uso.
func NewInventoryUseCase(
	repo repository.InventoryRepository,
	productRepo repository.ProductRepository,
	warehouseRepo repository.WarehouseRepository,
) *InventoryUseCase {
	return &InventoryUseCase{repo: repo, productRepo: productRepo, warehouseRepo: warehouseRepo}
}

// AddLot registra un lote. Producto y bodega deben existir
// (domain.ErrReferenceNotFound si no); cantidad no negativa.
func (uc *InventoryUseCase) AddLot(ctx context.Context, in dto.AddInventoryLotRequest) (*dto.InventoryLotResponse, error) {
	if in.ProductID == "" || in.WarehouseID == "" || in.Quantity < 0 {
		return nil, domain.ErrInvalidInput
	}
	product, err := uc.productRepo.GetByID(ctx, in.ProductID)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrReferenceNotFound
	}
	warehouse, err := uc.warehouseRepo.GetByID(ctx, in.WarehouseID)
	if err != nil {
		return nil, err
	}
	if warehouse == nil {
		return nil, domain.ErrReferenceNotFound
	}

	lot := &entity.InventoryLot{
		ID:          uuid.New().String(),
		ProductID:   in.ProductID,
		WarehouseID: in.WarehouseID,
		Quantity:    in.Quantity,
		CreatedAt:   time.Now(),
	}
	if err := uc.repo.Create(ctx, lot); err != nil {
		return nil, err
	}
	return toInventoryLotResponse(lot), nil
}

// List lista lotes con paginación.
func (uc *InventoryUseCase) List(ctx context.Context, limit, offset int) (*dto.InventoryListResponse, error) {
	list, err := uc.repo.List(ctx, limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.InventoryLotResponse, 0, len(list))
	for _, lot := range list {
		items = append(items, *toInventoryLotResponse(lot))
	}
	return &dto.InventoryListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}, nil
}

func toInventoryLotResponse(lot *entity.InventoryLot) *dto.InventoryLotResponse {
	return &dto.InventoryLotResponse{
		ID:          lot.ID,
		ProductID:   lot.ProductID,
		WarehouseID: lot.WarehouseID,
		Quantity:    lot.Quantity,
		CreatedAt:   lot.CreatedAt,
	}
}
