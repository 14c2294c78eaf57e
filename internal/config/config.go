package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all configuration for the application
type Config struct {
	Env     string
	Server  ServerConfig
	Catalog CatalogConfig
	Events  EventsConfig
}

// ServerConfig holds HTTP server configuration
type ServerConfig struct {
	Port            string
	ReadTimeout     time.Duration
	WriteTimeout    time.Duration
	ShutdownTimeout time.Duration
	AllowedOrigins  []string
}

// CatalogConfig holds catalog seeding configuration
type CatalogConfig struct {
	// SeedPath points to the YAML catalog file loaded at startup.
	// Empty selects the built-in default inventory.
	SeedPath string
}

// EventsConfig holds NATS configuration for order events
type EventsConfig struct {
	Enabled       bool
	URL           string
	OrdersSubject string
}

// Load reads configuration from environment variables and returns a Config struct
func Load() (*Config, error) {
	viper.AutomaticEnv()

	// Set defaults
	viper.SetDefault("ENV", "development")
	viper.SetDefault("SERVER_PORT", "8080")
	viper.SetDefault("SERVER_READ_TIMEOUT", "10s")
	viper.SetDefault("SERVER_WRITE_TIMEOUT", "10s")
	viper.SetDefault("SERVER_SHUTDOWN_TIMEOUT", "30s")
	viper.SetDefault("CORS_ALLOWED_ORIGINS", "http://localhost:3000,http://localhost:8080")

	viper.SetDefault("CATALOG_SEED_PATH", "")

	viper.SetDefault("EVENTS_ENABLED", false)
	viper.SetDefault("NATS_URL", "nats://localhost:4222")
	viper.SetDefault("ORDER_EVENTS_SUBJECT", "orders.completed")

	readTimeout, err := time.ParseDuration(viper.GetString("SERVER_READ_TIMEOUT"))
	if err != nil {
		return nil, fmt.Errorf("invalid SERVER_READ_TIMEOUT: %w", err)
	}

	writeTimeout, err := time.ParseDuration(viper.GetString("SERVER_WRITE_TIMEOUT"))
	if err != nil {
		return nil, fmt.Errorf("invalid SERVER_WRITE_TIMEOUT: %w", err)
	}

	shutdownTimeout, err := time.ParseDuration(viper.GetString("SERVER_SHUTDOWN_TIMEOUT"))
	if err != nil {
		return nil, fmt.Errorf("invalid SERVER_SHUTDOWN_TIMEOUT: %w", err)
	}

	allowedOriginsStr := viper.GetString("CORS_ALLOWED_ORIGINS")
	allowedOrigins := strings.Split(allowedOriginsStr, ",")
	for i := range allowedOrigins {
		allowedOrigins[i] = strings.TrimSpace(allowedOrigins[i])
	}

	config := &Config{
		Env: viper.GetString("ENV"),
		Server: ServerConfig{
			Port:            viper.GetString("SERVER_PORT"),
			ReadTimeout:     readTimeout,
			WriteTimeout:    writeTimeout,
			ShutdownTimeout: shutdownTimeout,
			AllowedOrigins:  allowedOrigins,
		},
		Catalog: CatalogConfig{
			SeedPath: viper.GetString("CATALOG_SEED_PATH"),
		},
		Events: EventsConfig{
			Enabled:       viper.GetBool("EVENTS_ENABLED"),
			URL:           viper.GetString("NATS_URL"),
			OrdersSubject: viper.GetString("ORDER_EVENTS_SUBJECT"),
		},
	}

	return config, nil
}
