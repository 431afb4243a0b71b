package sync_test

import (
	"context"
	"errors"
	"fmt"
	stdsync "sync"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aetherchain/aetherchain-api/internal/application/dto"
	appsync "github.com/aetherchain/aetherchain-api/internal/application/sync"
	"github.com/aetherchain/aetherchain-api/internal/domain"
	"github.com/aetherchain/aetherchain-api/internal/domain/entity"
	"github.com/aetherchain/aetherchain-api/internal/domain/graph"
	"github.com/aetherchain/aetherchain-api/internal/domain/repository"
	"github.com/aetherchain/aetherchain-api/pkg/logger"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria para los puertos del coordinador. El repo de proveedores
// reproduce el constraint único de la BD: chequeo e inserción bajo el mismo
// lock, como lo haría el índice único dentro de la transacción.
// ──────────────────────────────────────────────────────────────────────────────

type memSupplierRepo struct {
	mu        stdsync.Mutex
	suppliers map[string]*entity.Supplier // id -> supplier
}

func newMemSupplierRepo() *memSupplierRepo {
	return &memSupplierRepo{suppliers: make(map[string]*entity.Supplier)}
}

func (r *memSupplierRepo) Create(_ context.Context, s *entity.Supplier) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, existing := range r.suppliers {
		if existing.Name == s.Name {
			return domain.ErrDuplicateName
		}
	}
	cp := *s
	r.suppliers[s.ID] = &cp
	return nil
}

func (r *memSupplierRepo) GetByID(_ context.Context, id string) (*entity.Supplier, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	s, ok := r.suppliers[id]
	if !ok {
		return nil, nil
	}
	cp := *s
	return &cp, nil
}

func (r *memSupplierRepo) GetByName(_ context.Context, name string) (*entity.Supplier, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, s := range r.suppliers {
		if s.Name == name {
			cp := *s
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *memSupplierRepo) List(_ context.Context, limit, offset int) ([]*entity.Supplier, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var all []*entity.Supplier
	for _, s := range r.suppliers {
		cp := *s
		all = append(all, &cp)
	}
	return page(all, limit, offset), nil
}

type memProductRepo struct {
	mu       stdsync.Mutex
	products map[string]*entity.Product
}

func newMemProductRepo() *memProductRepo {
	return &memProductRepo{products: make(map[string]*entity.Product)}
}

func (r *memProductRepo) Create(_ context.Context, p *entity.Product) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	cp := *p
	r.products[p.ID] = &cp
	return nil
}

func (r *memProductRepo) GetByID(_ context.Context, id string) (*entity.Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	p, ok := r.products[id]
	if !ok {
		return nil, nil
	}
	cp := *p
	return &cp, nil
}

func (r *memProductRepo) List(_ context.Context, limit, offset int) ([]*entity.Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var all []*entity.Product
	for _, p := range r.products {
		cp := *p
		all = append(all, &cp)
	}
	return page(all, limit, offset), nil
}

func page[T any](all []T, limit, offset int) []T {
	if offset >= len(all) {
		return nil
	}
	end := offset + limit
	if end > len(all) {
		end = len(all)
	}
	return all[offset:end]
}

// memTxRunner pasa los repos compartidos al callback; cada Run es una "tx"
// independiente como en el runner real.
type memTxRunner struct {
	suppliers *memSupplierRepo
	products  *memProductRepo
}

func (r *memTxRunner) Run(_ context.Context, fn func(
	supplierRepo repository.SupplierRepository,
	productRepo repository.ProductRepository,
) error) error {
	return fn(r.suppliers, r.products)
}

// memGraph proyección en memoria con semántica de merge: clave name, sin
// duplicados posibles. failWith simula un grafo caído.
type memGraph struct {
	mu            stdsync.Mutex
	supplierNodes map[string]string          // name -> country
	productNodes  map[string]bool            // name -> existe
	edges         map[string]map[string]bool // supplier name -> set(product name)
	failWith      error
	upserts       int
}

func newMemGraph() *memGraph {
	return &memGraph{
		supplierNodes: make(map[string]string),
		productNodes:  make(map[string]bool),
		edges:         make(map[string]map[string]bool),
	}
}

func (g *memGraph) UpsertSupplier(_ context.Context, name, country string) error {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.failWith != nil {
		return g.failWith
	}
	g.upserts++
	g.supplierNodes[name] = country
	return nil
}

func (g *memGraph) UpsertProduct(_ context.Context, name, supplierName string) error {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.failWith != nil {
		return g.failWith
	}
	if _, ok := g.supplierNodes[supplierName]; !ok {
		return fmt.Errorf("nodo Supplier {name: %q}: %w", supplierName, domain.ErrNotFound)
	}
	g.upserts++
	g.productNodes[name] = true
	if g.edges[supplierName] == nil {
		g.edges[supplierName] = make(map[string]bool)
	}
	g.edges[supplierName][name] = true
	return nil
}

func (g *memGraph) FindSupplyPath(_ context.Context, productName string) (*graph.SupplyPath, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	for supplier, products := range g.edges {
		if products[productName] {
			return &graph.SupplyPath{
				Supplier: supplier,
				Country:  g.supplierNodes[supplier],
				Product:  productName,
			}, nil
		}
	}
	return nil, domain.ErrNotFound
}

type fixture struct {
	suppliers *memSupplierRepo
	products  *memProductRepo
	graph     *memGraph
	uc        *appsync.Coordinator
}

func newFixture() *fixture {
	suppliers := newMemSupplierRepo()
	products := newMemProductRepo()
	g := newMemGraph()
	runner := &memTxRunner{suppliers: suppliers, products: products}
	return &fixture{
		suppliers: suppliers,
		products:  products,
		graph:     g,
		uc:        appsync.NewCoordinator(runner, suppliers, products, g, logger.Nop()),
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Creación de proveedores
// ──────────────────────────────────────────────────────────────────────────────

func TestCreateSupplier_PersisteYProyecta(t *testing.T) {
	f := newFixture()

	out, err := f.uc.CreateSupplier(context.Background(), dto.CreateSupplierRequest{
		Name: "Acme", Country: "USA",
	})
	require.NoError(t, err)
	require.NotNil(t, out)
	assert.NotEmpty(t, out.ID)

	stored, err := f.suppliers.GetByID(context.Background(), out.ID)
	require.NoError(t, err)
	require.NotNil(t, stored, "la fila canónica debe existir en el primario")
	assert.Equal(t, "Acme", stored.Name)

	assert.Equal(t, "USA", f.graph.supplierNodes["Acme"], "el nodo Supplier debe quedar proyectado con su país")
}

func TestCreateSupplier_NombreDuplicado(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	_, err := f.uc.CreateSupplier(ctx, dto.CreateSupplierRequest{Name: "Acme", Country: "USA"})
	require.NoError(t, err)

	_, err = f.uc.CreateSupplier(ctx, dto.CreateSupplierRequest{Name: "Acme", Country: "Chile"})
	require.ErrorIs(t, err, domain.ErrDuplicateName)

	assert.Len(t, f.suppliers.suppliers, 1, "solo la primera creación debe persistir")
	assert.Equal(t, "USA", f.graph.supplierNodes["Acme"], "el país del primer registro no debe pisarse")
}

// TestCreateSupplier_Concurrente verifica la propiedad del modelo de
// concurrencia: dos creaciones simultáneas con el mismo nombre terminan en
// exactamente un éxito y un ErrDuplicateName, decidido por el constraint,
// no por un chequeo previo de existencia.
func TestCreateSupplier_Concurrente(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	errs := make(chan error, 2)
	var wg stdsync.WaitGroup
	for i := 0; i < 2; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := f.uc.CreateSupplier(ctx, dto.CreateSupplierRequest{Name: "Acme", Country: "USA"})
			errs <- err
		}()
	}
	wg.Wait()
	close(errs)

	var ok, dup int
	for err := range errs {
		switch {
		case err == nil:
			ok++
		case errors.Is(err, domain.ErrDuplicateName):
			dup++
		default:
			t.Fatalf("error inesperado: %v", err)
		}
	}
	assert.Equal(t, 1, ok, "exactamente una creación debe tener éxito")
	assert.Equal(t, 1, dup, "la otra debe fallar con ErrDuplicateName")
	assert.Len(t, f.suppliers.suppliers, 1)
}

func TestCreateSupplier_EntradaInvalida(t *testing.T) {
	f := newFixture()
	_, err := f.uc.CreateSupplier(context.Background(), dto.CreateSupplierRequest{Name: "  ", Country: "USA"})
	require.ErrorIs(t, err, domain.ErrInvalidInput)
	assert.Empty(t, f.suppliers.suppliers)
}

// ──────────────────────────────────────────────────────────────────────────────
// Fallo parcial: primario confirmado, proyección caída
// ──────────────────────────────────────────────────────────────────────────────

func TestCreateSupplier_FalloDeProyeccion(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	f.graph.failWith = errors.New("bolt: connection refused")

	out, err := f.uc.CreateSupplier(ctx, dto.CreateSupplierRequest{Name: "Acme", Country: "USA"})

	// La operación lógica NO falló: el proveedor creado se devuelve junto
	// con el ProjectionError para que el caller decida reintentar.
	require.NotNil(t, out, "el proveedor creado debe devolverse aunque la proyección falle")
	var projErr *domain.ProjectionError
	require.ErrorAs(t, err, &projErr)
	assert.Equal(t, "Supplier", projErr.Label)
	assert.Equal(t, "Acme", projErr.Key)

	stored, _ := f.suppliers.GetByID(ctx, out.ID)
	require.NotNil(t, stored, "la fila canónica debe seguir confirmada, jamás se revierte")
	assert.Empty(t, f.graph.supplierNodes, "el grafo no debe tener el nodo")

	// Reintento de solo el paso de proyección
	f.graph.failWith = nil
	require.NoError(t, f.uc.ProjectSupplier(ctx, out.ID))
	assert.Equal(t, "USA", f.graph.supplierNodes["Acme"])
}

func TestCreateProduct_FalloDeProyeccion(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	supplier, err := f.uc.CreateSupplier(ctx, dto.CreateSupplierRequest{Name: "Acme", Country: "USA"})
	require.NoError(t, err)

	f.graph.failWith = errors.New("bolt: connection refused")
	out, err := f.uc.CreateProduct(ctx, supplier.ID, dto.CreateProductRequest{
		Name: "Widget", Price: decimal.NewFromInt(10),
	})
	require.NotNil(t, out)
	var projErr *domain.ProjectionError
	require.ErrorAs(t, err, &projErr)
	assert.Equal(t, "Product", projErr.Label)
	assert.Equal(t, "Widget", projErr.Key)

	stored, _ := f.products.GetByID(ctx, out.ID)
	require.NotNil(t, stored, "el producto canónico debe quedar confirmado")

	f.graph.failWith = nil
	require.NoError(t, f.uc.ProjectProduct(ctx, out.ID))
	assert.True(t, f.graph.edges["Acme"]["Widget"], "tras el reintento la arista SUPPLIES debe existir")
}

// ──────────────────────────────────────────────────────────────────────────────
// Creación de productos
// ──────────────────────────────────────────────────────────────────────────────

func TestCreateProduct_CreaAristaSupplies(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	supplier, err := f.uc.CreateSupplier(ctx, dto.CreateSupplierRequest{Name: "Acme", Country: "USA"})
	require.NoError(t, err)

	out, err := f.uc.CreateProduct(ctx, supplier.ID, dto.CreateProductRequest{
		Name: "Widget", Price: decimal.NewFromFloat(19.99),
	})
	require.NoError(t, err)
	assert.Equal(t, entity.DefaultReorderLevel, out.ReorderLevel, "sin reorder_level explícito aplica el default")

	assert.True(t, f.graph.productNodes["Widget"])
	assert.True(t, f.graph.edges["Acme"]["Widget"], "debe existir la relación SUPPLIES proveedor→producto")
}

func TestCreateProduct_ProveedorInexistente(t *testing.T) {
	f := newFixture()

	_, err := f.uc.CreateProduct(context.Background(), "no-existe", dto.CreateProductRequest{
		Name: "Widget", Price: decimal.NewFromInt(10),
	})
	require.ErrorIs(t, err, domain.ErrReferenceNotFound)

	assert.Empty(t, f.products.products, "nada debe escribirse en el primario")
	assert.Empty(t, f.graph.productNodes, "nada debe escribirse en el grafo")
	assert.Empty(t, f.graph.edges)
}

func TestCreateProduct_PrecioNegativo(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	supplier, err := f.uc.CreateSupplier(ctx, dto.CreateSupplierRequest{Name: "Acme", Country: "USA"})
	require.NoError(t, err)

	_, err = f.uc.CreateProduct(ctx, supplier.ID, dto.CreateProductRequest{
		Name: "Widget", Price: decimal.NewFromInt(-1),
	})
	require.ErrorIs(t, err, domain.ErrInvalidInput)
	assert.Empty(t, f.products.products)
}

func TestCreateProduct_ReorderLevelNegativo(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	supplier, err := f.uc.CreateSupplier(ctx, dto.CreateSupplierRequest{Name: "Acme", Country: "USA"})
	require.NoError(t, err)

	bad := -5
	_, err = f.uc.CreateProduct(ctx, supplier.ID, dto.CreateProductRequest{
		Name: "Widget", Price: decimal.NewFromInt(1), ReorderLevel: &bad,
	})
	require.ErrorIs(t, err, domain.ErrInvalidInput)
}

// ──────────────────────────────────────────────────────────────────────────────
// Idempotencia y reconstrucción
// ──────────────────────────────────────────────────────────────────────────────

func TestProyeccion_Idempotente(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	supplier, err := f.uc.CreateSupplier(ctx, dto.CreateSupplierRequest{Name: "Acme", Country: "USA"})
	require.NoError(t, err)
	product, err := f.uc.CreateProduct(ctx, supplier.ID, dto.CreateProductRequest{
		Name: "Widget", Price: decimal.NewFromInt(10),
	})
	require.NoError(t, err)

	// Re-aplicar la misma proyección dos veces no duplica nada
	require.NoError(t, f.uc.ProjectSupplier(ctx, supplier.ID))
	require.NoError(t, f.uc.ProjectProduct(ctx, product.ID))
	require.NoError(t, f.uc.ProjectProduct(ctx, product.ID))

	assert.Len(t, f.graph.supplierNodes, 1, "exactamente un nodo Supplier")
	assert.Len(t, f.graph.productNodes, 1, "exactamente un nodo Product")
	require.Len(t, f.graph.edges, 1)
	assert.Len(t, f.graph.edges["Acme"], 1, "exactamente una arista SUPPLIES")
}

func TestRebuildProjection_RederivaDesdeElPrimario(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	// Todo se crea con el grafo caído: el primario queda poblado y la
	// proyección vacía.
	f.graph.failWith = errors.New("bolt: connection refused")
	s1, err := f.uc.CreateSupplier(ctx, dto.CreateSupplierRequest{Name: "Acme", Country: "USA"})
	require.Error(t, err)
	s2, err := f.uc.CreateSupplier(ctx, dto.CreateSupplierRequest{Name: "Globex", Country: "Germany"})
	require.Error(t, err)
	_, err = f.uc.CreateProduct(ctx, s1.ID, dto.CreateProductRequest{Name: "Widget", Price: decimal.NewFromInt(10)})
	require.Error(t, err)
	_, err = f.uc.CreateProduct(ctx, s2.ID, dto.CreateProductRequest{Name: "Gear", Price: decimal.NewFromInt(5)})
	require.Error(t, err)
	require.Empty(t, f.graph.supplierNodes)

	// La proyección es un dataset derivado: se reconstruye por completo
	f.graph.failWith = nil
	out, err := f.uc.RebuildProjection(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, out.Suppliers)
	assert.Equal(t, 2, out.Products)

	assert.Equal(t, "USA", f.graph.supplierNodes["Acme"])
	assert.Equal(t, "Germany", f.graph.supplierNodes["Globex"])
	assert.True(t, f.graph.edges["Acme"]["Widget"])
	assert.True(t, f.graph.edges["Globex"]["Gear"])
}
