// Package main implements the entry point for the orders API server,
// a small HTTP/JSON service exposing CRUD over the orders table plus
// read-only listings of the student and foods tables.
package main

import (
	"context"
	"fmt"
	"log"

	"github.com/joho/godotenv"
	"github.com/phrazzld/orders-api/internal/config"
	"github.com/phrazzld/orders-api/internal/platform/logger"
	"github.com/phrazzld/orders-api/internal/platform/postgres"
)

func main() {
	if err := run(); err != nil {
		log.Fatalf("Failed to start application: %v", err)
	}
}

// run wires configuration, logging, the database pool and the
// application together, then starts the HTTP server. Splitting this
// from main keeps the error path testable.
func run() error {
	// Load a .env file if one exists; real environment variables
	// still take precedence.
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	appLogger := logger.Setup(cfg.Server)
	appLogger.Info("configuration loaded",
		"port", cfg.Server.Port,
		"log_level", cfg.Server.LogLevel,
		"db_pool_size", cfg.Database.PoolSize)

	ctx := context.Background()

	pool, err := postgres.NewPool(ctx, cfg.Database, appLogger)
	if err != nil {
		return fmt.Errorf("failed to set up database pool: %w", err)
	}

	app := newApplication(cfg, appLogger, pool)

	if err := app.Run(ctx); err != nil {
		return fmt.Errorf("server error: %w", err)
	}

	return nil
}
