package http

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/light-bringer/agrocart-service/internal/app/cart"
	"github.com/light-bringer/agrocart-service/internal/app/catalog/domain"
)

// CartResponse is the cart state plus the derived totals.
type CartResponse struct {
	Lines      []cart.Line `json:"lines"`
	TotalCount int         `json:"total_count"`
	TotalPrice int64       `json:"total_price"`
}

func (h *Handler) cartResponse() CartResponse {
	return CartResponse{
		Lines:      h.cart.Lines(),
		TotalCount: h.cart.TotalCount(),
		TotalPrice: h.cart.TotalPrice(),
	}
}

// GetCart returns the cart lines and totals.
func (h *Handler) GetCart(w http.ResponseWriter, r *http.Request) {
	respondWithJSON(w, http.StatusOK, h.cartResponse())
}

// ClearCart empties the cart.
func (h *Handler) ClearCart(w http.ResponseWriter, r *http.Request) {
	h.cart.Clear()
	respondWithJSON(w, http.StatusOK, h.cartResponse())
}

// AddCartItemInput adds a product to the cart. Quantity defaults to 1;
// non-positive quantities are absorbed as a no-op by the store.
type AddCartItemInput struct {
	ProductID string `json:"product_id" validate:"required"`
	Quantity  int    `json:"quantity"`
}

// AddCartItem snapshots the product at add time and merges it into the
// cart.
func (h *Handler) AddCartItem(w http.ResponseWriter, r *http.Request) {
	var input AddCartItemInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		respondWithError(w, http.StatusBadRequest, "invalid request payload")
		return
	}
	if err := h.validate.Struct(input); err != nil {
		respondWithError(w, http.StatusBadRequest, "validation failed: "+err.Error())
		return
	}
	if input.Quantity == 0 {
		input.Quantity = 1
	}

	p, ok := h.catalog.Product(input.ProductID)
	if !ok {
		p, ok = h.fetcher.FetchByID(r.Context(), input.ProductID)
	}
	if !ok {
		respondWithError(w, http.StatusNotFound, domain.ErrProductNotFound.Error())
		return
	}

	h.cart.Add(p, input.Quantity)
	respondWithJSON(w, http.StatusOK, h.cartResponse())
}

// QuantityInput replaces a line quantity.
type QuantityInput struct {
	Quantity int `json:"quantity"`
}

// SetCartItemQuantity replaces the quantity of a line; zero or negative
// removes the line.
func (h *Handler) SetCartItemQuantity(w http.ResponseWriter, r *http.Request) {
	var input QuantityInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		respondWithError(w, http.StatusBadRequest, "invalid request payload")
		return
	}
	h.cart.SetQuantity(chi.URLParam(r, "productID"), input.Quantity)
	respondWithJSON(w, http.StatusOK, h.cartResponse())
}

// RemoveCartItem deletes a line; removing an absent line is a no-op.
func (h *Handler) RemoveCartItem(w http.ResponseWriter, r *http.Request) {
	h.cart.Remove(chi.URLParam(r, "productID"))
	respondWithJSON(w, http.StatusOK, h.cartResponse())
}
