package http

import (
	"context"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	httpSwagger "github.com/swaggo/http-swagger"

	"github.com/Pesokrava/grocery_catalog/internal/config"
	"github.com/Pesokrava/grocery_catalog/internal/delivery/http/handler"
	"github.com/Pesokrava/grocery_catalog/internal/delivery/http/middleware"
	"github.com/Pesokrava/grocery_catalog/internal/delivery/http/response"
	"github.com/Pesokrava/grocery_catalog/internal/pkg/logger"
)

// Router holds HTTP handlers and router configuration
type Router struct {
	productHandler *handler.ProductHandler
	sellerHandler  *handler.SellerHandler
	catalogHandler *handler.CatalogHandler
	logger         *logger.Logger
	cfg            *config.Config
}

// NewRouter creates a new HTTP router
func NewRouter(
	productHandler *handler.ProductHandler,
	sellerHandler *handler.SellerHandler,
	catalogHandler *handler.CatalogHandler,
	cfg *config.Config,
	log *logger.Logger,
) *Router {
	return &Router{
		productHandler: productHandler,
		sellerHandler:  sellerHandler,
		catalogHandler: catalogHandler,
		logger:         log,
		cfg:            cfg,
	}
}

// Setup configures and returns the HTTP router. ctx bounds background
// work owned by the middleware stack.
func (rt *Router) Setup(ctx context.Context) http.Handler {
	r := chi.NewRouter()

	r.Use(chimiddleware.RequestID)
	r.Use(middleware.Recovery(rt.logger))
	r.Use(middleware.Logger(rt.logger))
	r.Use(chimiddleware.Timeout(30 * time.Second))
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   rt.cfg.Server.AllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		ExposedHeaders:   []string{"Link"},
		AllowCredentials: false,
		MaxAge:           300,
	}))

	r.Get("/health", rt.healthCheck)
	r.Get("/swagger/*", httpSwagger.WrapHandler)

	limiter := middleware.NewRateLimiter(ctx, rt.cfg.RateLimit.RequestsPerSecond, rt.cfg.RateLimit.Burst)

	r.Route("/api/v1", func(r chi.Router) {
		r.Route("/sellers", func(r chi.Router) {
			r.Post("/", rt.sellerHandler.Create)
			r.Get("/{id}", rt.sellerHandler.GetByID)
			r.Put("/{id}", rt.sellerHandler.Update)
			r.Delete("/{id}", rt.sellerHandler.Delete)
		})

		r.Route("/products", func(r chi.Router) {
			r.Post("/", rt.productHandler.Create)
			r.Get("/", rt.productHandler.List)
			r.Get("/{id}", rt.productHandler.GetByID)
			r.Put("/{id}", rt.productHandler.Update)
			r.Delete("/{id}", rt.productHandler.Delete)
			r.Put("/{id}/status", rt.productHandler.SetStatus)
			r.Put("/{id}/publish", rt.productHandler.SetPublished)
		})

		r.Route("/catalog", func(r chi.Router) {
			r.Use(limiter.Handler)
			r.Get("/products", rt.catalogHandler.List)
			r.Get("/products/{id}", rt.catalogHandler.Detail)
			r.Get("/home", rt.catalogHandler.Home)
		})
	})

	return r
}

// healthCheck handles health check requests
func (rt *Router) healthCheck(w http.ResponseWriter, r *http.Request) {
	response.JSON(w, http.StatusOK, map[string]string{
		"status": "healthy",
	})
}
