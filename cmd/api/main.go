package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/aetherchain/aetherchain-api/internal/application/graphquery"
	"github.com/aetherchain/aetherchain-api/internal/application/sync"
	"github.com/aetherchain/aetherchain-api/internal/application/usecase"
	"github.com/aetherchain/aetherchain-api/internal/infrastructure/neograph"
	"github.com/aetherchain/aetherchain-api/internal/infrastructure/postgres"
	httpRouter "github.com/aetherchain/aetherchain-api/internal/interfaces/http"
	"github.com/aetherchain/aetherchain-api/pkg/config"
	"github.com/aetherchain/aetherchain-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicación")

	ctx := context.Background()

	// Almacén primario: fuente de verdad, conexión obligatoria
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	// Proyección de grafo: handle explícito, abierto aquí y cerrado en el apagado
	driver, err := neograph.NewDriver(ctx, cfg.Graph)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a Neo4j")
	}
	defer func() { _ = driver.Close(context.Background()) }()

	supplierRepo := postgres.NewSupplierRepository(pool)
	productRepo := postgres.NewProductRepository(pool)
	warehouseRepo := postgres.NewWarehouseRepository(pool)
	inventoryRepo := postgres.NewInventoryRepository(pool)
	stockAlertRepo := postgres.NewStockAlertRepository(pool)
	txRunner := postgres.NewTxRunner(pool)
	graphStore := neograph.NewStore(driver)

	syncUC := sync.NewCoordinator(txRunner, supplierRepo, productRepo, graphStore, log)
	warehouseUC := usecase.NewWarehouseUseCase(warehouseRepo)
	inventoryUC := usecase.NewInventoryUseCase(inventoryRepo, productRepo, warehouseRepo)
	alertUC := usecase.NewAlertUseCase(stockAlertRepo)
	pathUC := graphquery.NewPathUseCase(graphStore)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	httpRouter.Router(app, httpRouter.RouterDeps{
		SyncUC:      syncUC,
		WarehouseUC: warehouseUC,
		InventoryUC: inventoryUC,
		AlertUC:     alertUC,
		PathUC:      pathUC,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}
