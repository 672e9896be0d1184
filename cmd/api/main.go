package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Pesokrava/grocery_catalog/internal/config"
	"github.com/Pesokrava/grocery_catalog/internal/delivery/events"
	httpDelivery "github.com/Pesokrava/grocery_catalog/internal/delivery/http"
	"github.com/Pesokrava/grocery_catalog/internal/delivery/http/handler"
	"github.com/Pesokrava/grocery_catalog/internal/geo"
	"github.com/Pesokrava/grocery_catalog/internal/pkg/cache"
	"github.com/Pesokrava/grocery_catalog/internal/pkg/database"
	"github.com/Pesokrava/grocery_catalog/internal/pkg/logger"
	cacheRepo "github.com/Pesokrava/grocery_catalog/internal/repository/cache"
	"github.com/Pesokrava/grocery_catalog/internal/repository/postgres"
	"github.com/Pesokrava/grocery_catalog/internal/usecase/catalog"
	"github.com/Pesokrava/grocery_catalog/internal/usecase/product"
	"github.com/Pesokrava/grocery_catalog/internal/usecase/seller"

	_ "github.com/Pesokrava/grocery_catalog/docs"
)

// @title Grocery Catalog API
// @version 1.0
// @description Multi-seller grocery catalog: variant pricing normalization and location-based availability.
// @termsOfService http://swagger.io/terms/

// @contact.name API Support
// @contact.url http://github.com/Pesokrava/grocery_catalog
// @contact.email support@example.com

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @host localhost:8080
// @BasePath /api/v1
// @schemes http https

// @tag.name Sellers
// @tag.description Seller management endpoints

// @tag.name Products
// @tag.description Seller-side product management endpoints

// @tag.name Catalog
// @tag.description Customer-facing catalog endpoints

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	appLogger := logger.New(cfg.Env)
	logger.SetLevel(cfg.LogLevel)
	logger.SetGlobalLogger(appLogger)
	appLogger.Info("Starting Grocery Catalog API...")

	appLogger.Info("Connecting to PostgreSQL...")
	db, err := database.WaitForDB(cfg, appLogger, 10, 2*time.Second)
	if err != nil {
		appLogger.Fatal("Failed to connect to database", err)
	}
	defer db.Close()
	appLogger.Info("Connected to PostgreSQL successfully")

	if cfg.Database.MigrationsDir != "" {
		if err := database.RunMigrations(db, cfg.Database.MigrationsDir); err != nil {
			appLogger.Fatal("Failed to run migrations", err)
		}
		appLogger.Infof("Migrations applied from %s", cfg.Database.MigrationsDir)
	}

	appLogger.Info("Connecting to Redis...")
	redisClient, err := cache.WaitForRedis(cfg, appLogger, 10, 2*time.Second)
	if err != nil {
		appLogger.Fatal("Failed to connect to Redis", err)
	}
	defer redisClient.Close()
	appLogger.Info("Connected to Redis successfully")

	appLogger.Info("Connecting to NATS...")
	publisher, err := events.NewPublisher(cfg, "catalog-api", appLogger)
	if err != nil {
		appLogger.Fatal("Failed to create NATS publisher", err)
	}
	defer publisher.Close()

	if err := events.NewStreamConfig(publisher.JetStream(), appLogger).EnsureStream(); err != nil {
		appLogger.Fatal("Failed to ensure JetStream stream", err)
	}

	productRepo := postgres.NewProductRepository(db)
	sellerRepo := postgres.NewSellerRepository(db)
	redisCache := cacheRepo.NewRedisCache(
		redisClient,
		cfg.Cache.LocatedSellersTTL,
		cfg.Cache.ProductTTL,
	)

	sellerService := seller.NewService(sellerRepo, redisCache, publisher, appLogger.Named("seller"))
	productService := product.NewService(productRepo, redisCache, publisher, appLogger.Named("product"))
	availability := geo.NewFilter(sellerService, appLogger.Named("geo"))
	catalogService := catalog.NewService(
		productRepo,
		productService,
		availability,
		catalog.Options{
			DefaultLimit:    cfg.Catalog.DefaultLimit,
			HomeSectionSize: cfg.Catalog.HomeSectionSize,
		},
		appLogger.Named("catalog"),
	)

	sellerHandler := handler.NewSellerHandler(sellerService, appLogger)
	productHandler := handler.NewProductHandler(productService, appLogger)
	catalogHandler := handler.NewCatalogHandler(catalogService, appLogger)

	ctx, stop := context.WithCancel(context.Background())
	defer stop()

	router := httpDelivery.NewRouter(productHandler, sellerHandler, catalogHandler, cfg, appLogger)
	httpHandler := router.Setup(ctx)

	server := &http.Server{
		Addr:         fmt.Sprintf(":%s", cfg.Server.Port),
		Handler:      httpHandler,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	go func() {
		appLogger.Infof("HTTP server listening on port %s", cfg.Server.Port)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			appLogger.Fatal("HTTP server failed", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	appLogger.Info("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		appLogger.Fatal("Server forced to shutdown", err)
	}
	stop()

	appLogger.Info("Server stopped gracefully")
}
