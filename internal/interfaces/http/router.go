package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/aetherchain/aetherchain-api/internal/application/graphquery"
	"github.com/aetherchain/aetherchain-api/internal/application/sync"
	"github.com/aetherchain/aetherchain-api/internal/application/usecase"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	SyncUC      *sync.Coordinator
	WarehouseUC *usecase.WarehouseUseCase
	InventoryUC *usecase.InventoryUseCase
	AlertUC     *usecase.AlertUseCase
	PathUC      *graphquery.PathUseCase
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Suppliers y products: creación dual (primario + proyección)
	suppliers := api.Group("/suppliers")
	supplierHandler := NewSupplierHandler(deps.SyncUC)
	suppliers.Post("/", supplierHandler.Create)
	suppliers.Get("/", supplierHandler.List)
	suppliers.Get("/:id", supplierHandler.GetByID)
	suppliers.Post("/:id/products", supplierHandler.CreateProduct)
	suppliers.Post("/:id/projection", supplierHandler.ProjectSupplier)

	products := api.Group("/products")
	products.Get("/", supplierHandler.ListProducts)
	products.Post("/:id/projection", supplierHandler.ProjectProduct)

	// Warehouses: solo almacén primario
	warehouses := api.Group("/warehouses")
	warehouseHandler := NewWarehouseHandler(deps.WarehouseUC)
	warehouses.Post("/", warehouseHandler.Create)
	warehouses.Get("/", warehouseHandler.List)
	warehouses.Get("/:id", warehouseHandler.GetByID)

	// Inventory: lotes y alertas agregadas
	inventory := api.Group("/inventory")
	inventoryHandler := NewInventoryHandler(deps.InventoryUC, deps.AlertUC)
	inventory.Post("/", inventoryHandler.AddLot)
	inventory.Get("/", inventoryHandler.List)
	inventory.Get("/alerts", inventoryHandler.Alerts)

	// Graph: consultas de trayectoria y reconstrucción de la proyección
	graph := api.Group("/graph")
	graphHandler := NewGraphHandler(deps.PathUC, deps.SyncUC)
	graph.Get("/product-path/:name", graphHandler.ProductPath)
	graph.Post("/rebuild", graphHandler.Rebuild)
}
