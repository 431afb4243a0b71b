// Package sync implementa el coordinador de sincronización: cada creación de
// proveedor o producto es una operación lógica de dos pasos — (1) commit en
// el almacén primario, (2) merge best-effort en la proyección de grafo. No
// hay two-phase commit entre almacenes heterogéneos: el primario es la
// fuente de verdad y confirma por su cuenta; si la proyección falla, la fila
// canónica permanece y el fallo se expone como *domain.ProjectionError para
// que el caller reintente solo ese paso. El core no reintenta nada por sí
// mismo: la política de reintentos pertenece al caller.
package sync

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/aetherchain/aetherchain-api/internal/application/dto"
	"github.com/aetherchain/aetherchain-api/internal/domain"
	"github.com/aetherchain/aetherchain-api/internal/domain/entity"
	"github.com/aetherchain/aetherchain-api/internal/domain/graph"
	"github.com/aetherchain/aetherchain-api/internal/domain/repository"
	"github.com/aetherchain/aetherchain-api/pkg/logger"
)

// Tamaño de página al reconstruir la proyección completa.
const rebuildPageSize = 200

// Coordinator orquesta "escribir primario, luego proyectar al grafo" para
// proveedores y productos.
type Coordinator struct {
	txRunner     TxRunner
	supplierRepo repository.SupplierRepository
	productRepo  repository.ProductRepository
	graph        graph.Store
	log          *logger.Logger
}

// NewCoordinator construye el coordinador.
func NewCoordinator(
	txRunner TxRunner,
	supplierRepo repository.SupplierRepository,
	productRepo repository.ProductRepository,
	graphStore graph.Store,
	log *logger.Logger,
) *Coordinator {
	return &Coordinator{
		txRunner:     txRunner,
		supplierRepo: supplierRepo,
		productRepo:  productRepo,
		graph:        graphStore,
		log:          log,
	}
}

// CreateSupplier inserta el proveedor en una transacción del primario y, solo
// tras el commit, proyecta el nodo Supplier. La unicidad del nombre la decide
// el constraint de la BD (domain.ErrDuplicateName), nunca un chequeo previo
// de existencia, que sería carrera entre lookup e insert.
//
// Si la proyección falla, el retorno es (proveedor creado, *ProjectionError):
// el dato canónico existe y el caller decide si reintenta con ProjectSupplier.
func (c *Coordinator) CreateSupplier(ctx context.Context, in dto.CreateSupplierRequest) (*dto.SupplierResponse, error) {
	name := strings.TrimSpace(in.Name)
	country := strings.TrimSpace(in.Country)
	if name == "" || country == "" {
		return nil, domain.ErrInvalidInput
	}

	supplier := &entity.Supplier{
		ID:        uuid.New().String(),
		Name:      name,
		Country:   country,
		CreatedAt: time.Now(),
	}
	err := c.txRunner.Run(ctx, func(supplierRepo repository.SupplierRepository, _ repository.ProductRepository) error {
		return supplierRepo.Create(ctx, supplier)
	})
	if err != nil {
		return nil, err
	}

	resp := toSupplierResponse(supplier)
	if err := c.graph.UpsertSupplier(ctx, supplier.Name, supplier.Country); err != nil {
		c.log.Warn().Err(err).Str("supplier", supplier.Name).
			Msg("fila confirmada pero la proyección del proveedor falló")
		return resp, &domain.ProjectionError{Label: graph.LabelSupplier, Key: supplier.Name, Err: err}
	}
	return resp, nil
}

// CreateProduct inserta el producto bajo un proveedor y proyecta el nodo
// Product más la relación SUPPLIES. El proveedor se busca por id DENTRO de la
// misma transacción del insert, así la FK queda validada sin carrera; el
// nombre del proveedor leído ahí alimenta el merge de la arista.
func (c *Coordinator) CreateProduct(ctx context.Context, supplierID string, in dto.CreateProductRequest) (*dto.ProductResponse, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" || supplierID == "" {
		return nil, domain.ErrInvalidInput
	}
	if in.Price.LessThan(decimal.Zero) {
		return nil, domain.ErrInvalidInput
	}
	reorderLevel := entity.DefaultReorderLevel
	if in.ReorderLevel != nil {
		if *in.ReorderLevel < 0 {
			return nil, domain.ErrInvalidInput
		}
		reorderLevel = *in.ReorderLevel
	}

	product := &entity.Product{
		ID:           uuid.New().String(),
		Name:         name,
		Price:        in.Price,
		ReorderLevel: reorderLevel,
		SupplierID:   supplierID,
		CreatedAt:    time.Now(),
	}
	var supplierName string
	err := c.txRunner.Run(ctx, func(supplierRepo repository.SupplierRepository, productRepo repository.ProductRepository) error {
		supplier, err := supplierRepo.GetByID(ctx, supplierID)
		if err != nil {
			return err
		}
		if supplier == nil {
			return domain.ErrReferenceNotFound
		}
		supplierName = supplier.Name
		return productRepo.Create(ctx, product)
	})
	if err != nil {
		return nil, err
	}

	resp := toProductResponse(product)
	if err := c.graph.UpsertProduct(ctx, product.Name, supplierName); err != nil {
		c.log.Warn().Err(err).Str("product", product.Name).Str("supplier", supplierName).
			Msg("fila confirmada pero la proyección del producto falló")
		return resp, &domain.ProjectionError{Label: graph.LabelProduct, Key: product.Name, Err: err}
	}
	return resp, nil
}

// ProjectSupplier re-emite solo el paso de proyección para un proveedor ya
// confirmado. Palanca de reintento del caller ante un ProjectionError.
func (c *Coordinator) ProjectSupplier(ctx context.Context, supplierID string) error {
	supplier, err := c.supplierRepo.GetByID(ctx, supplierID)
	if err != nil {
		return err
	}
	if supplier == nil {
		return domain.ErrNotFound
	}
	if err := c.graph.UpsertSupplier(ctx, supplier.Name, supplier.Country); err != nil {
		return &domain.ProjectionError{Label: graph.LabelSupplier, Key: supplier.Name, Err: err}
	}
	return nil
}

// ProjectProduct re-emite la proyección de un producto ya confirmado.
// Proyecta también el nodo del proveedor: el merge es idempotente y así la
// arista nunca se pierde porque la proyección del proveedor hubiera fallado
// en su momento.
func (c *Coordinator) ProjectProduct(ctx context.Context, productID string) error {
	product, err := c.productRepo.GetByID(ctx, productID)
	if err != nil {
		return err
	}
	if product == nil {
		return domain.ErrNotFound
	}
	supplier, err := c.supplierRepo.GetByID(ctx, product.SupplierID)
	if err != nil {
		return err
	}
	if supplier == nil {
		// FK garantiza que no pasa; solo ante datos corruptos
		return domain.ErrReferenceNotFound
	}
	if err := c.graph.UpsertSupplier(ctx, supplier.Name, supplier.Country); err != nil {
		return &domain.ProjectionError{Label: graph.LabelSupplier, Key: supplier.Name, Err: err}
	}
	if err := c.graph.UpsertProduct(ctx, product.Name, supplier.Name); err != nil {
		return &domain.ProjectionError{Label: graph.LabelProduct, Key: product.Name, Err: err}
	}
	return nil
}

// RebuildProjection reconstruye la proyección completa desde el almacén
// primario: re-aplica todos los proveedores y luego todos los productos. Los
// merges son idempotentes e independientes del orden entre entidades, solo
// importa proveedores antes que productos para que las aristas encuentren su
// nodo origen. Devuelve cuántos nodos de cada tipo se proyectaron.
func (c *Coordinator) RebuildProjection(ctx context.Context) (*dto.RebuildProjectionResponse, error) {
	out := &dto.RebuildProjectionResponse{}
	names := make(map[string]string) // supplier id -> name

	for offset := 0; ; offset += rebuildPageSize {
		suppliers, err := c.supplierRepo.List(ctx, rebuildPageSize, offset)
		if err != nil {
			return nil, err
		}
		for _, s := range suppliers {
			if err := c.graph.UpsertSupplier(ctx, s.Name, s.Country); err != nil {
				return nil, &domain.ProjectionError{Label: graph.LabelSupplier, Key: s.Name, Err: err}
			}
			names[s.ID] = s.Name
			out.Suppliers++
		}
		if len(suppliers) < rebuildPageSize {
			break
		}
	}

	for offset := 0; ; offset += rebuildPageSize {
		products, err := c.productRepo.List(ctx, rebuildPageSize, offset)
		if err != nil {
			return nil, err
		}
		for _, p := range products {
			supplierName, ok := names[p.SupplierID]
			if !ok {
				// la FK lo impide; si aparece, la fila es corrupta
				c.log.Warn().Str("product", p.Name).Str("supplier_id", p.SupplierID).
					Msg("producto sin proveedor durante la reconstrucción, omitido")
				continue
			}
			if err := c.graph.UpsertProduct(ctx, p.Name, supplierName); err != nil {
				return nil, &domain.ProjectionError{Label: graph.LabelProduct, Key: p.Name, Err: err}
			}
			out.Products++
		}
		if len(products) < rebuildPageSize {
			break
		}
	}
	return out, nil
}

// GetSupplier obtiene un proveedor por ID desde el almacén primario.
func (c *Coordinator) GetSupplier(ctx context.Context, id string) (*dto.SupplierResponse, error) {
	supplier, err := c.supplierRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if supplier == nil {
		return nil, nil
	}
	return toSupplierResponse(supplier), nil
}

// ListSuppliers lista proveedores con paginación.
func (c *Coordinator) ListSuppliers(ctx context.Context, limit, offset int) (*dto.SupplierListResponse, error) {
	list, err := c.supplierRepo.List(ctx, limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.SupplierResponse, 0, len(list))
	for _, s := range list {
		items = append(items, *toSupplierResponse(s))
	}
	return &dto.SupplierListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}, nil
}

// ListProducts lista productos con paginación.
func (c *Coordinator) ListProducts(ctx context.Context, limit, offset int) (*dto.ProductListResponse, error) {
	list, err := c.productRepo.List(ctx, limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.ProductResponse, 0, len(list))
	for _, p := range list {
		items = append(items, *toProductResponse(p))
	}
	return &dto.ProductListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}, nil
}

func toSupplierResponse(s *entity.Supplier) *dto.SupplierResponse {
	return &dto.SupplierResponse{
		ID:        s.ID,
		Name:      s.Name,
		Country:   s.Country,
		CreatedAt: s.CreatedAt,
	}
}

func toProductResponse(p *entity.Product) *dto.ProductResponse {
	return &dto.ProductResponse{
		ID:           p.ID,
		Name:         p.Name,
		Price:        p.Price,
		ReorderLevel: p.ReorderLevel,
		SupplierID:   p.SupplierID,
		CreatedAt:    p.CreatedAt,
	}
}
