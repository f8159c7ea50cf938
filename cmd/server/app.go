package main

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/phrazzld/orders-api/internal/config"
	"github.com/phrazzld/orders-api/internal/platform/postgres"
	"github.com/phrazzld/orders-api/internal/store"
)

// application holds all the shared application dependencies to simplify
// management and ensure proper cleanup on shutdown.
//
// The connection pool is constructed at startup and injected here; no
// package-level database state exists anywhere in the application.
type application struct {
	// Configuration
	config *config.Config

	// Core services
	logger *slog.Logger
	pool   *pgxpool.Pool

	// Stores (using interfaces for proper abstraction)
	orderStore   store.OrderStore
	catalogStore store.CatalogStore
}

// newApplication creates a new application instance with all dependencies
// initialized. It accepts core dependencies like configuration, logger and
// the database pool that must be established before application
// initialization.
func newApplication(cfg *config.Config, logger *slog.Logger, pool *pgxpool.Pool) *application {
	app := &application{
		config: cfg,
		logger: logger,
		pool:   pool,
	}

	// Initialize stores
	app.orderStore = postgres.NewPostgresOrderStore(pool, logger)
	app.catalogStore = postgres.NewPostgresCatalogStore(pool, logger)

	logger.Info("application initialized successfully")
	return app
}

// Run starts the application server, handling lifecycle and cleanup.
// It returns an error if the server fails to start or encounters problems.
func (app *application) Run(ctx context.Context) error {
	// Set up router using the application dependencies
	router := app.setupRouter()

	// Start the HTTP server
	err := app.startHTTPServer(ctx, router)
	if err != nil {
		return fmt.Errorf("server error: %w", err)
	}

	return nil
}

// cleanup handles graceful shutdown of application resources.
func (app *application) cleanup() {
	// Close the database pool; waits for checked-out connections to
	// be released.
	if app.pool != nil {
		app.pool.Close()
	}

	app.logger.Info("application shutdown completed")
}
