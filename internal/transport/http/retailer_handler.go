package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/light-bringer/agrocart-service/internal/app/catalog/domain"
	"github.com/light-bringer/agrocart-service/internal/app/retailer"
)

// RetailerProductInput carries the editable product fields for the
// retailer surface.
type RetailerProductInput struct {
	Name        string `json:"name" validate:"required"`
	Price       int64  `json:"price" validate:"gte=0"`
	Image       string `json:"image" validate:"omitempty,uri"`
	Category    string `json:"category" validate:"required"`
	Description string `json:"description"`
}

// StockInput toggles the stock flag.
type StockInput struct {
	InStock *bool `json:"in_stock" validate:"required"`
}

// ListOwnedProducts loads and returns one owner's inventory. Failures
// surface: this path never serves fallback data.
func (h *Handler) ListOwnedProducts(w http.ResponseWriter, r *http.Request) {
	view := h.retailers.View(chi.URLParam(r, "ownerID"))
	if err := view.Load(r.Context()); err != nil {
		h.log.Error("failed to list owned products", "owner_id", view.OwnerID(), "error", err)
		respondWithError(w, http.StatusBadGateway, "failed to load inventory")
		return
	}
	respondWithJSON(w, http.StatusOK, view.Products())
}

// CreateOwnedProduct adds a product to the owner's inventory.
func (h *Handler) CreateOwnedProduct(w http.ResponseWriter, r *http.Request) {
	input, ok := h.decodeProductInput(w, r)
	if !ok {
		return
	}
	cat, err := domain.ParseCategory(input.Category)
	if err != nil || cat == domain.CategoryNone {
		respondWithError(w, http.StatusBadRequest, domain.ErrInvalidCategory.Error())
		return
	}

	view := h.retailers.View(chi.URLParam(r, "ownerID"))
	p, err := view.Create(r.Context(), retailer.ProductInput{
		Name:        input.Name,
		Price:       input.Price,
		Image:       input.Image,
		Category:    cat,
		Description: input.Description,
	})
	if err != nil {
		h.respondRetailerError(w, view.OwnerID(), "create", err)
		return
	}
	respondWithJSON(w, http.StatusCreated, p)
}

// UpdateOwnedProduct rewrites the editable fields of an owned product.
func (h *Handler) UpdateOwnedProduct(w http.ResponseWriter, r *http.Request) {
	input, ok := h.decodeProductInput(w, r)
	if !ok {
		return
	}
	cat, err := domain.ParseCategory(input.Category)
	if err != nil || cat == domain.CategoryNone {
		respondWithError(w, http.StatusBadRequest, domain.ErrInvalidCategory.Error())
		return
	}

	view := h.retailers.View(chi.URLParam(r, "ownerID"))
	p, err := view.Update(r.Context(), chi.URLParam(r, "productID"), retailer.ProductInput{
		Name:        input.Name,
		Price:       input.Price,
		Image:       input.Image,
		Category:    cat,
		Description: input.Description,
	})
	if err != nil {
		h.respondRetailerError(w, view.OwnerID(), "update", err)
		return
	}
	respondWithJSON(w, http.StatusOK, p)
}

// SetOwnedProductStock toggles the stock flag; on success the view's local
// entry is patched in place.
func (h *Handler) SetOwnedProductStock(w http.ResponseWriter, r *http.Request) {
	var input StockInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		respondWithError(w, http.StatusBadRequest, "invalid request payload")
		return
	}
	if err := h.validate.Struct(input); err != nil {
		respondWithError(w, http.StatusBadRequest, "validation failed: "+err.Error())
		return
	}

	view := h.retailers.View(chi.URLParam(r, "ownerID"))
	if err := view.SetStock(r.Context(), chi.URLParam(r, "productID"), *input.InStock); err != nil {
		h.respondRetailerError(w, view.OwnerID(), "set stock", err)
		return
	}
	respondWithJSON(w, http.StatusOK, view.Products())
}

// DeleteOwnedProduct removes a product from the owner's inventory.
func (h *Handler) DeleteOwnedProduct(w http.ResponseWriter, r *http.Request) {
	view := h.retailers.View(chi.URLParam(r, "ownerID"))
	if err := view.Remove(r.Context(), chi.URLParam(r, "productID")); err != nil {
		h.respondRetailerError(w, view.OwnerID(), "delete", err)
		return
	}
	respondWithJSON(w, http.StatusNoContent, nil)
}

func (h *Handler) decodeProductInput(w http.ResponseWriter, r *http.Request) (RetailerProductInput, bool) {
	var input RetailerProductInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		respondWithError(w, http.StatusBadRequest, "invalid request payload")
		return input, false
	}
	if err := h.validate.Struct(input); err != nil {
		respondWithError(w, http.StatusBadRequest, "validation failed: "+err.Error())
		return input, false
	}
	return input, true
}

// respondRetailerError maps retailer write failures: invalid input is the
// caller's fault, an absent product is 404, anything else is an
// authoritative write failure the user must see.
func (h *Handler) respondRetailerError(w http.ResponseWriter, ownerID, op string, err error) {
	switch {
	case errors.Is(err, domain.ErrProductNotFound):
		respondWithError(w, http.StatusNotFound, domain.ErrProductNotFound.Error())
	case errors.Is(err, domain.ErrEmptyName),
		errors.Is(err, domain.ErrInvalidPrice),
		errors.Is(err, domain.ErrInvalidRating),
		errors.Is(err, domain.ErrInvalidReviews),
		errors.Is(err, domain.ErrInvalidCategory):
		respondWithError(w, http.StatusBadRequest, err.Error())
	default:
		h.log.Error("retailer mutation failed", "owner_id", ownerID, "op", op, "error", err)
		respondWithError(w, http.StatusBadGateway, "inventory update failed")
	}
}
