package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/nats-io/nats.go"

	"github.com/Pesokrava/grocery_catalog/internal/config"
	"github.com/Pesokrava/grocery_catalog/internal/delivery/events"
	"github.com/Pesokrava/grocery_catalog/internal/domain"
	"github.com/Pesokrava/grocery_catalog/internal/pkg/cache"
	"github.com/Pesokrava/grocery_catalog/internal/pkg/database"
	"github.com/Pesokrava/grocery_catalog/internal/pkg/logger"
	cacheRepo "github.com/Pesokrava/grocery_catalog/internal/repository/cache"
	"github.com/Pesokrava/grocery_catalog/internal/worker"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	appLogger := logger.New(cfg.Env)
	logger.SetLevel(cfg.LogLevel)
	appLogger = appLogger.Named("catalog-worker")

	appLogger.Info("Starting catalog worker...")

	db, err := database.WaitForDB(cfg, appLogger, 10, 2*time.Second)
	if err != nil {
		appLogger.Fatal("Failed to connect to database", err)
	}
	defer db.Close()

	redisClient, err := cache.WaitForRedis(cfg, appLogger, 10, 2*time.Second)
	if err != nil {
		appLogger.Fatal("Failed to connect to Redis", err)
	}
	defer redisClient.Close()

	redisCache := cacheRepo.NewRedisCache(redisClient, cfg.Cache.LocatedSellersTTL, cfg.Cache.ProductTTL)
	reconciler := worker.NewReconciler(db, redisCache, appLogger)
	reconcileWorker := worker.NewReconcileWorker(reconciler, worker.DefaultDebounceWindow, appLogger)

	nc, err := events.Connect(cfg, "catalog-worker", appLogger)
	if err != nil {
		appLogger.Fatal("Failed to connect to NATS", err)
	}
	defer nc.Drain()

	js, err := nc.JetStream()
	if err != nil {
		appLogger.Fatal("Failed to create JetStream context", err)
	}

	streamConfig := events.NewStreamConfig(js, appLogger)
	if err := streamConfig.EnsureStream(); err != nil {
		appLogger.Fatal("Failed to ensure stream", err)
	}
	if err := streamConfig.EnsureConsumer(); err != nil {
		appLogger.Fatal("Failed to ensure consumer", err)
	}

	sub, err := js.PullSubscribe(domain.ProductEventsSubject, events.ConsumerName, nats.ManualAck())
	if err != nil {
		appLogger.Fatal("Failed to subscribe to JetStream consumer", err)
	}
	defer func() {
		if err := sub.Unsubscribe(); err != nil {
			appLogger.Error("Failed to unsubscribe from JetStream", err)
		}
	}()

	appLogger.WithFields(map[string]any{
		"stream":   events.StreamName,
		"consumer": events.ConsumerName,
	}).Info("Subscribed to JetStream consumer")

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		defer close(done)
		events.RunPullLoop(ctx, sub, reconcileWorker.HandleEvent, appLogger)
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	<-sigCh
	appLogger.Info("Received shutdown signal")

	cancel()
	<-done

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer shutdownCancel()

	if err := reconcileWorker.Shutdown(shutdownCtx); err != nil {
		appLogger.Error("Error during shutdown", err)
	}

	appLogger.Info("Catalog worker stopped")
}
