package main

import (
	"context"
	"flag"
	"log"
	"os"
	"time"

	"github.com/Pesokrava/grocery_catalog/internal/config"
	"github.com/Pesokrava/grocery_catalog/internal/delivery/events"
	"github.com/Pesokrava/grocery_catalog/internal/domain"
	"github.com/Pesokrava/grocery_catalog/internal/importer"
	"github.com/Pesokrava/grocery_catalog/internal/pkg/cache"
	"github.com/Pesokrava/grocery_catalog/internal/pkg/database"
	"github.com/Pesokrava/grocery_catalog/internal/pkg/logger"
	"github.com/Pesokrava/grocery_catalog/internal/pricing"
	cacheRepo "github.com/Pesokrava/grocery_catalog/internal/repository/cache"
	"github.com/Pesokrava/grocery_catalog/internal/repository/postgres"
	"github.com/Pesokrava/grocery_catalog/internal/usecase/product"
)

func main() {
	file := flag.String("file", "", "path to the .xlsx workbook")
	publish := flag.Bool("publish", false, "publish imported products immediately")
	dryRun := flag.Bool("dry-run", false, "parse and validate without writing")
	flag.Parse()

	if *file == "" {
		flag.Usage()
		os.Exit(2)
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	appLogger := logger.New(cfg.Env)
	logger.SetLevel(cfg.LogLevel)
	appLogger = appLogger.Named("catalog-import")

	f, err := os.Open(*file)
	if err != nil {
		appLogger.Fatal("Failed to open workbook", err)
	}
	defer f.Close()

	res, err := importer.ParseReader(f)
	if err != nil {
		appLogger.Fatal("Failed to parse workbook", err)
	}

	for _, rowErr := range res.Errors {
		appLogger.WithFields(map[string]interface{}{
			"row": rowErr.Row,
		}).Warnf("Row rejected: %v", rowErr.Err)
	}

	if *dryRun {
		for _, draft := range res.Drafts {
			if err := pricing.Validate(draft.Product); err != nil {
				appLogger.WithFields(map[string]interface{}{
					"row":  draft.Row,
					"name": draft.Product.Name,
				}).Warnf("Product would be rejected: %v", err)
			}
		}
		appLogger.WithFields(map[string]interface{}{
			"products": len(res.Drafts),
			"rejected": len(res.Errors),
		}).Info("Dry run finished")
		return
	}

	db, err := database.WaitForDB(cfg, appLogger, 5, 2*time.Second)
	if err != nil {
		appLogger.Fatal("Failed to connect to database", err)
	}
	defer db.Close()

	redisClient, err := cache.WaitForRedis(cfg, appLogger, 5, 2*time.Second)
	if err != nil {
		appLogger.Fatal("Failed to connect to Redis", err)
	}
	defer redisClient.Close()

	publisher, err := events.NewPublisher(cfg, "catalog-import", appLogger)
	if err != nil {
		appLogger.Fatal("Failed to create NATS publisher", err)
	}
	defer publisher.Close()

	productService := product.NewService(
		postgres.NewProductRepository(db),
		cacheRepo.NewRedisCache(redisClient, cfg.Cache.LocatedSellersTTL, cfg.Cache.ProductTTL),
		publisher,
		appLogger,
	)

	ctx := context.Background()
	created, failed := 0, 0
	for _, draft := range res.Drafts {
		draft.Product.Publish = *publish
		draft.Product.Status = domain.ProductPending

		if err := productService.Create(ctx, draft.Product); err != nil {
			failed++
			appLogger.WithFields(map[string]interface{}{
				"row":  draft.Row,
				"name": draft.Product.Name,
			}).Warnf("Product rejected: %v", err)
			continue
		}
		created++
	}

	appLogger.WithFields(map[string]interface{}{
		"created":  created,
		"failed":   failed,
		"rejected": len(res.Errors),
	}).Info("Import finished")

	// let background event publishes flush before the connection drains
	time.Sleep(500 * time.Millisecond)
}
