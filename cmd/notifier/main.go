package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/Saharyasa/best-buy-2.0/internal/config"
	"github.com/Saharyasa/best-buy-2.0/internal/delivery/events"
	"github.com/Saharyasa/best-buy-2.0/internal/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	appLogger := logger.New(cfg.Env)
	appLogger.Info("Starting order notifier...")

	consumer, err := events.NewConsumer(cfg, appLogger)
	if err != nil {
		appLogger.Fatal("Failed to create NATS consumer", err)
	}
	defer consumer.Close()

	if err := consumer.Subscribe(cfg.Events.OrdersSubject, events.LoggingHandler(appLogger)); err != nil {
		appLogger.Fatal("Failed to subscribe to order events", err)
	}

	appLogger.Info("Order notifier started and listening for events...")

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	appLogger.Info("Shutting down order notifier...")
}
