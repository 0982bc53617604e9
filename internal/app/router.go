package app

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"

	"github.com/northwind-api/northwind-api/internal/customers"
	"github.com/northwind-api/northwind-api/internal/orders"
	"github.com/northwind-api/northwind-api/internal/products"
)

// RouterParams groups dependencies for building the HTTP router.
type RouterParams struct {
	Logger          *slog.Logger
	Config          *Config
	CustomerHandler *customers.Handler
	ProductHandler  *products.Handler
	OrderHandler    *orders.Handler
}

// NewRouter constructs the chi.Router with Northwind defaults.
func NewRouter(params RouterParams) http.Handler {
	r := chi.NewRouter()

	for _, mw := range MiddlewareStack(MiddlewareConfig{
		Logger: params.Logger,
		Config: params.Config,
	}) {
		r.Use(mw)
	}

	r.Use(chimw.Logger)

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"status":"ok"}`))
	})

	r.Get("/", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		_, _ = w.Write([]byte("<h1>Northwind REST API.</h1>"))
	})

	r.Route("/api", func(r chi.Router) {
		params.CustomerHandler.MountRoutes(r)
		params.ProductHandler.MountRoutes(r)
		params.OrderHandler.MountRoutes(r)
	})

	return r
}
