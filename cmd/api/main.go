package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/Saharyasa/best-buy-2.0/internal/config"
	"github.com/Saharyasa/best-buy-2.0/internal/delivery/events"
	httpDelivery "github.com/Saharyasa/best-buy-2.0/internal/delivery/http"
	"github.com/Saharyasa/best-buy-2.0/internal/delivery/http/handler"
	"github.com/Saharyasa/best-buy-2.0/internal/pkg/logger"
	"github.com/Saharyasa/best-buy-2.0/internal/pkg/validator"
	"github.com/Saharyasa/best-buy-2.0/internal/seed"
	"github.com/Saharyasa/best-buy-2.0/internal/usecase/catalog"
	"github.com/Saharyasa/best-buy-2.0/internal/usecase/checkout"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	appLogger := logger.New(cfg.Env)
	appLogger.Info("Starting Best Buy catalog API...")

	store, err := seed.Load(cfg.Catalog.SeedPath)
	if err != nil {
		appLogger.Fatal("Failed to load catalog", err)
	}
	appLogger.Infof("Catalog loaded with %d products", len(store.AllProducts()))

	var publisher checkout.EventPublisher = events.NoopPublisher{}
	if cfg.Events.Enabled {
		appLogger.Info("Connecting to NATS...")
		natsPublisher, err := events.NewPublisher(cfg, appLogger)
		if err != nil {
			appLogger.Fatal("Failed to create NATS publisher", err)
		}
		defer natsPublisher.Close()
		publisher = natsPublisher
	}

	catalogService := catalog.NewService(store, appLogger)
	checkoutService := checkout.NewService(catalogService, publisher, cfg.Events.OrdersSubject, appLogger)

	catalogHandler := handler.NewCatalogHandler(catalogService, validator.Get(), appLogger)
	checkoutHandler := handler.NewCheckoutHandler(checkoutService, validator.Get(), appLogger)

	router := httpDelivery.NewRouter(catalogHandler, checkoutHandler, cfg, appLogger)
	httpHandler := router.Setup()

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

	ctx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		appLogger.Fatal("Server forced to shutdown", err)
	}

	appLogger.Info("Server stopped gracefully")
}
