// Package http exposes the catalog, cart, and retailer state engines to the
// rendering collaborator as a JSON API.
package http

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"

	"github.com/light-bringer/agrocart-service/internal/app/cart"
	"github.com/light-bringer/agrocart-service/internal/app/catalog/fetcher"
	catalogstore "github.com/light-bringer/agrocart-service/internal/app/catalog/store"
	"github.com/light-bringer/agrocart-service/internal/app/retailer"
)

// Handler holds the stores the API reads and mutates.
type Handler struct {
	catalog   *catalogstore.Store
	cart      *cart.Store
	fetcher   *fetcher.Fetcher
	retailers *retailer.Registry
	validate  *validator.Validate
	log       *slog.Logger
}

// NewHandler creates the API handler over the given stores.
func NewHandler(
	catalog *catalogstore.Store,
	cartStore *cart.Store,
	f *fetcher.Fetcher,
	retailers *retailer.Registry,
	log *slog.Logger,
) *Handler {
	if log == nil {
		log = slog.Default()
	}
	return &Handler{
		catalog:   catalog,
		cart:      cartStore,
		fetcher:   f,
		retailers: retailers,
		validate:  validator.New(),
		log:       log,
	}
}

// RegisterRoutes mounts the API under /api/v1.
func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/healthz", h.Health)

		r.Route("/catalog", func(r chi.Router) {
			r.Get("/", h.GetCatalog)
			r.Post("/refresh", h.RefreshCatalog)
			r.Put("/category", h.SetCategory)
			r.Put("/search", h.SetSearch)
			r.Delete("/search", h.ClearSearch)
		})

		r.Get("/products/{productID}", h.GetProduct)

		r.Route("/cart", func(r chi.Router) {
			r.Get("/", h.GetCart)
			r.Delete("/", h.ClearCart)
			r.Post("/items", h.AddCartItem)
			r.Put("/items/{productID}", h.SetCartItemQuantity)
			r.Delete("/items/{productID}", h.RemoveCartItem)
		})

		r.Route("/retailer/{ownerID}/products", func(r chi.Router) {
			r.Get("/", h.ListOwnedProducts)
			r.Post("/", h.CreateOwnedProduct)
			r.Put("/{productID}", h.UpdateOwnedProduct)
			r.Patch("/{productID}/stock", h.SetOwnedProductStock)
			r.Delete("/{productID}", h.DeleteOwnedProduct)
		})
	})
}

// Health reports liveness.
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	respondWithJSON(w, http.StatusOK, map[string]string{
		"status":    "healthy",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	})
}
