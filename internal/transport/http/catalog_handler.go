package http

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/light-bringer/agrocart-service/internal/app/catalog/domain"
)

// GetCatalog returns a consistent snapshot of the catalog store.
func (h *Handler) GetCatalog(w http.ResponseWriter, r *http.Request) {
	respondWithJSON(w, http.StatusOK, h.catalog.Snapshot())
}

// RefreshCatalog re-fetches the product set. The fetch degrades to the
// fallback catalog internally, so this cannot fail.
func (h *Handler) RefreshCatalog(w http.ResponseWriter, r *http.Request) {
	h.catalog.Load(r.Context())
	respondWithJSON(w, http.StatusOK, h.catalog.Snapshot())
}

// CategoryInput selects a category facet; an empty category clears it.
type CategoryInput struct {
	Category string `json:"category"`
}

// SetCategory sets the category facet. This also clears the search facet
// and does not refetch by itself.
func (h *Handler) SetCategory(w http.ResponseWriter, r *http.Request) {
	var input CategoryInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		respondWithError(w, http.StatusBadRequest, "invalid request payload")
		return
	}
	cat, err := domain.ParseCategory(input.Category)
	if err != nil {
		respondWithError(w, http.StatusBadRequest, err.Error())
		return
	}
	h.catalog.SetCategory(cat)
	respondWithJSON(w, http.StatusOK, h.catalog.Snapshot())
}

// SearchInput carries the free-text search facet.
type SearchInput struct {
	Query string `json:"query"`
}

// SetSearch sets the search facet verbatim.
func (h *Handler) SetSearch(w http.ResponseWriter, r *http.Request) {
	var input SearchInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		respondWithError(w, http.StatusBadRequest, "invalid request payload")
		return
	}
	h.catalog.SetSearch(input.Query)
	respondWithJSON(w, http.StatusOK, h.catalog.Snapshot())
}

// ClearSearch resets the search facet.
func (h *Handler) ClearSearch(w http.ResponseWriter, r *http.Request) {
	h.catalog.ClearSearch()
	respondWithJSON(w, http.StatusOK, h.catalog.Snapshot())
}

// GetProduct returns one product for the detail screen, served from the
// loaded set when possible and from the fetcher otherwise.
func (h *Handler) GetProduct(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "productID")
	p, ok := h.catalog.Product(id)
	if !ok {
		p, ok = h.fetcher.FetchByID(r.Context(), id)
	}
	if !ok {
		respondWithError(w, http.StatusNotFound, domain.ErrProductNotFound.Error())
		return
	}
	respondWithJSON(w, http.StatusOK, p)
}
