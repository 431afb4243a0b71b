// Genera un dataset de demostración a través de los casos de uso: 50
// proveedores, 10 bodegas, 200 productos y de 1 a 3 lotes por producto,
// igual que el script de carga original del proyecto.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"math/rand"

	"github.com/shopspring/decimal"

	"github.com/aetherchain/aetherchain-api/internal/application/dto"
	"github.com/aetherchain/aetherchain-api/internal/application/sync"
	"github.com/aetherchain/aetherchain-api/internal/application/usecase"
	"github.com/aetherchain/aetherchain-api/internal/domain"
	"github.com/aetherchain/aetherchain-api/internal/infrastructure/neograph"
	"github.com/aetherchain/aetherchain-api/internal/infrastructure/postgres"
	"github.com/aetherchain/aetherchain-api/pkg/config"
	"github.com/aetherchain/aetherchain-api/pkg/logger"
)

var (
	companyPrefixes = []string{"Aether", "Nimbus", "Vertex", "Orion", "Atlas", "Quantum", "Helix", "Zenith", "Nova", "Polaris"}
	companySuffixes = []string{"Logistics", "Industries", "Trading", "Supply Co", "Group", "Materials", "Dynamics", "Global"}
	countries       = []string{"USA", "Germany", "China", "Brazil", "Japan", "India", "Mexico", "Spain", "Vietnam", "Poland"}
	cities          = []string{"Hamburg", "Rotterdam", "Shenzhen", "Laredo", "Valencia", "Gdansk", "Osaka", "Santos", "Mumbai", "Veracruz"}
	productNouns    = []string{"Widget", "Bracket", "Coupler", "Sensor", "Valve", "Bearing", "Rotor", "Gasket", "Actuator", "Manifold"}
	productQuals    = []string{"Heavy-Duty", "Compact", "Precision", "Industrial", "Modular", "Reinforced", "Sealed", "High-Torque"}
)

func main() {
	suppliersN := flag.Int("suppliers", 50, "cantidad de proveedores")
	warehousesN := flag.Int("warehouses", 10, "cantidad de bodegas")
	productsN := flag.Int("products", 200, "cantidad de productos")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}
	log := logger.New(logger.Config{Env: cfg.App.Env, Level: "info"})

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	driver, err := neograph.NewDriver(ctx, cfg.Graph)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a Neo4j")
	}
	defer func() { _ = driver.Close(context.Background()) }()

	supplierRepo := postgres.NewSupplierRepository(pool)
	productRepo := postgres.NewProductRepository(pool)
	warehouseRepo := postgres.NewWarehouseRepository(pool)
	inventoryRepo := postgres.NewInventoryRepository(pool)
	txRunner := postgres.NewTxRunner(pool)
	graphStore := neograph.NewStore(driver)

	syncUC := sync.NewCoordinator(txRunner, supplierRepo, productRepo, graphStore, log)
	warehouseUC := usecase.NewWarehouseUseCase(warehouseRepo)
	inventoryUC := usecase.NewInventoryUseCase(inventoryRepo, productRepo, warehouseRepo)

	// Proveedores: los nombres duplicados se omiten, igual que el script original
	log.Info().Msg("creando proveedores...")
	var supplierIDs []string
	for i := 0; len(supplierIDs) < *suppliersN && i < *suppliersN*3; i++ {
		name := fmt.Sprintf("%s %s %03d",
			companyPrefixes[rand.Intn(len(companyPrefixes))],
			companySuffixes[rand.Intn(len(companySuffixes))],
			rand.Intn(1000))
		out, err := syncUC.CreateSupplier(ctx, dto.CreateSupplierRequest{
			Name:    name,
			Country: countries[rand.Intn(len(countries))],
		})
		if err != nil {
			var projErr *domain.ProjectionError
			if errors.As(err, &projErr) {
				log.Warn().Err(err).Msg("proyección pendiente")
			} else if errors.Is(err, domain.ErrDuplicateName) {
				continue
			} else {
				log.Error().Err(err).Msg("crear proveedor")
				continue
			}
		}
		supplierIDs = append(supplierIDs, out.ID)
	}

	log.Info().Msg("creando bodegas...")
	var warehouseIDs []string
	for i := 0; len(warehouseIDs) < *warehousesN && i < *warehousesN*3; i++ {
		out, err := warehouseUC.Create(ctx, dto.CreateWarehouseRequest{
			Location: fmt.Sprintf("%s Dock %d", cities[rand.Intn(len(cities))], rand.Intn(100)),
			Capacity: 1000 + rand.Intn(9000),
		})
		if err != nil {
			if errors.Is(err, domain.ErrDuplicateName) {
				continue
			}
			log.Error().Err(err).Msg("crear bodega")
			continue
		}
		warehouseIDs = append(warehouseIDs, out.ID)
	}

	log.Info().Msg("creando productos e inventario...")
	products := 0
	for i := 0; i < *productsN && len(supplierIDs) > 0; i++ {
		supplierID := supplierIDs[rand.Intn(len(supplierIDs))]
		reorder := 10 + rand.Intn(41)
		price := decimal.NewFromFloat(10 + rand.Float64()*490).Round(2)
		out, err := syncUC.CreateProduct(ctx, supplierID, dto.CreateProductRequest{
			Name: fmt.Sprintf("%s %s %03d",
				productQuals[rand.Intn(len(productQuals))],
				productNouns[rand.Intn(len(productNouns))],
				rand.Intn(1000)),
			Price:        price,
			ReorderLevel: &reorder,
		})
		if err != nil {
			var projErr *domain.ProjectionError
			if !errors.As(err, &projErr) {
				log.Error().Err(err).Msg("crear producto")
				continue
			}
			log.Warn().Err(err).Msg("proyección pendiente")
		}
		products++

		// De 1 a 3 lotes por producto en bodegas aleatorias
		for j := 0; j < 1+rand.Intn(3) && len(warehouseIDs) > 0; j++ {
			_, err := inventoryUC.AddLot(ctx, dto.AddInventoryLotRequest{
				ProductID:   out.ID,
				WarehouseID: warehouseIDs[rand.Intn(len(warehouseIDs))],
				Quantity:    5 + rand.Intn(96),
			})
			if err != nil {
				log.Error().Err(err).Msg("crear lote")
			}
		}
	}

	log.Info().
		Int("suppliers", len(supplierIDs)).
		Int("warehouses", len(warehouseIDs)).
		Int("products", products).
		Msg("dataset de demostración generado")
}
