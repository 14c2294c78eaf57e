package http

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"

	"github.com/Saharyasa/best-buy-2.0/internal/config"
	"github.com/Saharyasa/best-buy-2.0/internal/delivery/http/handler"
	"github.com/Saharyasa/best-buy-2.0/internal/delivery/http/middleware"
	"github.com/Saharyasa/best-buy-2.0/internal/delivery/http/response"
	"github.com/Saharyasa/best-buy-2.0/internal/pkg/logger"
)

// Router holds HTTP handlers and router configuration
type Router struct {
	catalogHandler  *handler.CatalogHandler
	checkoutHandler *handler.CheckoutHandler
	logger          *logger.Logger
	cfg             *config.Config
}

// NewRouter creates a new HTTP router
func NewRouter(
	catalogHandler *handler.CatalogHandler,
	checkoutHandler *handler.CheckoutHandler,
	cfg *config.Config,
	log *logger.Logger,
) *Router {
	return &Router{
		catalogHandler:  catalogHandler,
		checkoutHandler: checkoutHandler,
		logger:          log,
		cfg:             cfg,
	}
}

// Setup configures and returns the HTTP router
func (rt *Router) Setup() http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.Recovery(rt.logger))
	r.Use(middleware.Logger(rt.logger))
	r.Use(middleware.Timeout(30 * time.Second))
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   rt.cfg.Server.AllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		ExposedHeaders:   []string{"Link"},
		AllowCredentials: false,
		MaxAge:           300,
	}))

	r.Get("/health", rt.healthCheck)

	r.Route("/api/v1", func(r chi.Router) {
		r.Route("/products", func(r chi.Router) {
			r.Post("/", rt.catalogHandler.Create)
			r.Get("/", rt.catalogHandler.List)
			r.Get("/{name}", rt.catalogHandler.GetByName)
			r.Delete("/{name}", rt.catalogHandler.Delete)
			r.Put("/{name}/promotion", rt.catalogHandler.SetPromotion)
		})

		r.Get("/inventory", rt.catalogHandler.TotalQuantity)

		r.Post("/orders", rt.checkoutHandler.Create)
	})

	return r
}

// healthCheck handles health check requests
func (rt *Router) healthCheck(w http.ResponseWriter, r *http.Request) {
	response.JSON(w, http.StatusOK, map[string]string{
		"status": "healthy",
	})
}
