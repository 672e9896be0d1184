package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/Pesokrava/grocery_catalog/internal/config"
	"github.com/Pesokrava/grocery_catalog/internal/delivery/events"
	"github.com/Pesokrava/grocery_catalog/internal/domain"
	"github.com/Pesokrava/grocery_catalog/internal/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	appLogger := logger.New(cfg.Env)
	logger.SetLevel(cfg.LogLevel)
	appLogger = appLogger.Named("notifier")
	appLogger.Info("Starting notifier service...")

	consumer, err := events.NewConsumer(cfg, "catalog-notifier", appLogger)
	if err != nil {
		appLogger.Fatal("Failed to create NATS consumer", err)
	}
	defer consumer.Close()

	for _, subject := range []string{domain.ProductEventsSubject, domain.SellerEventsSubject} {
		if err := consumer.Subscribe(subject, events.LoggingHandler(appLogger)); err != nil {
			appLogger.Fatalf(err, "Failed to subscribe to %s", subject)
		}
	}

	appLogger.Info("Notifier service started and listening for events...")

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	appLogger.Info("Shutting down notifier service...")
}
