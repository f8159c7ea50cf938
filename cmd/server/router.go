package main

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/phrazzld/orders-api/internal/api"
	apiMiddleware "github.com/phrazzld/orders-api/internal/api/middleware"
)

// greeting is the plain-text body served at the root route.
const greeting = "Welcome to the Orders API"

// setupRouter creates and configures the application router with all routes
// and middleware. It accepts the application dependencies to create handlers
// and register routes. Returns the configured router.
func (app *application) setupRouter() http.Handler {
	// Create a router
	r := chi.NewRouter()

	// Apply standard middleware
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(apiMiddleware.TraceMiddleware)

	// All origins are permitted; the API carries no credentials.
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type"},
	}))

	// Create API handlers using the application's stores
	orderHandler := api.NewOrderHandler(app.orderStore, app.logger)
	catalogHandler := api.NewCatalogHandler(app.catalogStore, app.logger)
	docsHandler := api.NewDocsHandler(app.logger)

	// Register routes
	r.Route("/orders", func(r chi.Router) {
		r.Get("/", orderHandler.ListOrders)
		r.Post("/", orderHandler.CreateOrder)
		r.Patch("/{id}", orderHandler.UpdateOrder)
		r.Put("/{id}", orderHandler.ReplaceOrder)
		r.Delete("/{id}", orderHandler.DeleteOrder)
	})

	r.Get("/student", catalogHandler.ListStudents)
	r.Get("/foods", catalogHandler.ListFoods)
	r.Get("/api-docs", docsHandler.ServeDocs)

	// Root route serves a plain-text greeting
	r.Get("/", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		w.WriteHeader(http.StatusOK)
		if _, err := w.Write([]byte(greeting)); err != nil {
			app.logger.Error("failed to write greeting response", "error", err)
		}
	})

	// Health check endpoint
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, err := w.Write([]byte("OK"))
		if err != nil {
			app.logger.Error("failed to write health check response", "error", err)
		}
	})

	return r
}
