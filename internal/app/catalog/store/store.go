// Package store holds the process-local catalog state: the fetched product
// set, the two selection facets, and the derived filtered view.
package store

import (
	"context"
	"sync"

	"github.com/light-bringer/agrocart-service/internal/app/catalog/domain"
)

// CatalogFetcher is the slice of the fetcher the store depends on.
type CatalogFetcher interface {
	FetchAll(ctx context.Context) []domain.Product
	FetchByCategory(ctx context.Context, cat domain.Category) []domain.Product
}

// Store derives its filtered view deterministically from the product set
// and the two facets. The view is recomputed synchronously on every change;
// it is never mutated independently, so readers can never observe a stale
// combination of facets and view.
//
// A single mutex serializes mutations so the store stays correct when the
// serving runtime drives it from multiple goroutines.
type Store struct {
	mu      sync.Mutex
	fetcher CatalogFetcher

	products         []domain.Product
	selectedCategory domain.Category
	searchQuery      string
	filtered         []domain.Product
	loading          bool
}

// New creates an empty catalog store: no products, no facets.
func New(fetcher CatalogFetcher) *Store {
	return &Store{fetcher: fetcher}
}

// Load replaces the product set from the fetcher. When a category facet is
// active at call time the fetch is re-queried by category server-side;
// otherwise the full collection is fetched. The previous products and view
// stay visible while the fetch is in flight. Overlapping Loads are allowed
// to race; the last fetch to return wins.
func (s *Store) Load(ctx context.Context) {
	s.mu.Lock()
	s.loading = true
	cat := s.selectedCategory
	s.mu.Unlock()

	var ps []domain.Product
	if cat != domain.CategoryNone {
		ps = s.fetcher.FetchByCategory(ctx, cat)
	} else {
		ps = s.fetcher.FetchAll(ctx)
	}

	s.mu.Lock()
	s.products = ps
	s.recompute()
	s.loading = false
	s.mu.Unlock()
}

// SetCategory sets the category facet and clears the search facet:
// selecting a category and searching are mutually exclusive refinements,
// so switching category always resets the query. It does not refetch;
// callers wanting server-filtered data call Load afterwards.
func (s *Store) SetCategory(cat domain.Category) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.selectedCategory = cat
	s.searchQuery = ""
	s.recompute()
}

// SetSearch sets the search facet verbatim; trimming and lower-casing
// happen at match time only.
func (s *Store) SetSearch(query string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.searchQuery = query
	s.recompute()
}

// ClearSearch resets the search facet.
func (s *Store) ClearSearch() {
	s.SetSearch("")
}

// Products returns a copy of the full loaded product set.
func (s *Store) Products() []domain.Product {
	s.mu.Lock()
	defer s.mu.Unlock()
	return copyProducts(s.products)
}

// Filtered returns a copy of the derived filtered view, in source order.
func (s *Store) Filtered() []domain.Product {
	s.mu.Lock()
	defer s.mu.Unlock()
	return copyProducts(s.filtered)
}

// Product looks a product up in the loaded set.
func (s *Store) Product(id string) (domain.Product, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, p := range s.products {
		if p.ID == id {
			return p, true
		}
	}
	return domain.Product{}, false
}

// SelectedCategory returns the active category facet.
func (s *Store) SelectedCategory() domain.Category {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.selectedCategory
}

// SearchQuery returns the active search facet, verbatim as set.
func (s *Store) SearchQuery() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.searchQuery
}

// Loading reports whether a Load is in flight.
func (s *Store) Loading() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loading
}

// View is a consistent snapshot of the whole store for rendering.
type View struct {
	Products         []domain.Product `json:"products"`
	FilteredProducts []domain.Product `json:"filtered_products"`
	SelectedCategory domain.Category  `json:"selected_category"`
	SearchQuery      string           `json:"search_query"`
	Loading          bool             `json:"loading"`
}

// Snapshot returns every piece of store state at one instant.
func (s *Store) Snapshot() View {
	s.mu.Lock()
	defer s.mu.Unlock()
	return View{
		Products:         copyProducts(s.products),
		FilteredProducts: copyProducts(s.filtered),
		SelectedCategory: s.selectedCategory,
		SearchQuery:      s.searchQuery,
		Loading:          s.loading,
	}
}

// recompute rebuilds the filtered view from the facets. Both facets
// AND-combine; order follows the source product order. Callers must hold
// the mutex.
func (s *Store) recompute() {
	filtered := make([]domain.Product, 0, len(s.products))
	for _, p := range s.products {
		if p.MatchesCategory(s.selectedCategory) && p.MatchesSearch(s.searchQuery) {
			filtered = append(filtered, p)
		}
	}
	s.filtered = filtered
}

func copyProducts(ps []domain.Product) []domain.Product {
	out := make([]domain.Product, len(ps))
	copy(out, ps)
	return out
}
