package http

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/light-bringer/agrocart-service/internal/app/cart"
	"github.com/light-bringer/agrocart-service/internal/app/catalog/domain"
	"github.com/light-bringer/agrocart-service/internal/app/catalog/fetcher"
	catalogstore "github.com/light-bringer/agrocart-service/internal/app/catalog/store"
	"github.com/light-bringer/agrocart-service/internal/app/retailer"
	"github.com/light-bringer/agrocart-service/internal/pkg/clock"
)

// fakeSource serves a fixed product set; the write hooks are scriptable.
type fakeSource struct {
	products    []domain.Product
	setStockErr error
}

func (f *fakeSource) ListAll(context.Context, bool) ([]domain.Product, error) {
	return f.products, nil
}

func (f *fakeSource) ListByCategory(_ context.Context, cat domain.Category, _ bool) ([]domain.Product, error) {
	var out []domain.Product
	for _, p := range f.products {
		if p.Category == cat {
			out = append(out, p)
		}
	}
	return out, nil
}

func (f *fakeSource) ListByOwner(_ context.Context, ownerID string) ([]domain.Product, error) {
	var out []domain.Product
	for _, p := range f.products {
		if p.OwnerID == ownerID {
			out = append(out, p)
		}
	}
	return out, nil
}

func (f *fakeSource) GetByID(_ context.Context, id string) (domain.Product, error) {
	for _, p := range f.products {
		if p.ID == id {
			return p, nil
		}
	}
	return domain.Product{}, errors.New("not found")
}

func (f *fakeSource) Create(context.Context, domain.Product) error { return nil }
func (f *fakeSource) Update(context.Context, domain.Product) error { return nil }
func (f *fakeSource) SetStock(context.Context, string, bool) error { return f.setStockErr }
func (f *fakeSource) Delete(context.Context, string) error         { return nil }

func apiProducts() []domain.Product {
	return []domain.Product{
		{ID: "1", Name: "Wheat Seeds", Price: 100, Category: domain.CategorySeeds, InStock: true, OwnerID: "ret-1"},
		{ID: "2", Name: "Compost", Price: 200, Category: domain.CategoryFertilizers, InStock: true, OwnerID: "ret-1"},
	}
}

func newTestRouter(t *testing.T, src *fakeSource) *chi.Mux {
	t.Helper()

	f := fetcher.New(src, nil)
	catalog := catalogstore.New(f)
	catalog.Load(context.Background())
	retailers := retailer.NewRegistry(src, clock.NewRealClock())

	h := NewHandler(catalog, cart.NewStore(), f, retailers, nil)
	router := chi.NewRouter()
	h.RegisterRoutes(router)
	return router
}

func doJSON(t *testing.T, router *chi.Mux, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func decodeCart(t *testing.T, rec *httptest.ResponseRecorder) CartResponse {
	t.Helper()
	var resp CartResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	return resp
}

func TestCatalogEndpoints(t *testing.T) {
	router := newTestRouter(t, &fakeSource{products: apiProducts()})

	t.Run("snapshot returns the loaded catalog", func(t *testing.T) {
		rec := doJSON(t, router, http.MethodGet, "/api/v1/catalog/", nil)
		require.Equal(t, http.StatusOK, rec.Code)

		var view catalogstore.View
		require.NoError(t, json.NewDecoder(rec.Body).Decode(&view))
		assert.Len(t, view.Products, 2)
		assert.Len(t, view.FilteredProducts, 2)
		assert.False(t, view.Loading)
	})

	t.Run("setting a category narrows the view and clears search", func(t *testing.T) {
		doJSON(t, router, http.MethodPut, "/api/v1/catalog/search", SearchInput{Query: "compost"})
		rec := doJSON(t, router, http.MethodPut, "/api/v1/catalog/category", CategoryInput{Category: "seeds"})
		require.Equal(t, http.StatusOK, rec.Code)

		var view catalogstore.View
		require.NoError(t, json.NewDecoder(rec.Body).Decode(&view))
		assert.Equal(t, domain.CategorySeeds, view.SelectedCategory)
		assert.Empty(t, view.SearchQuery)
		require.Len(t, view.FilteredProducts, 1)
		assert.Equal(t, "1", view.FilteredProducts[0].ID)
	})

	t.Run("unknown category is rejected", func(t *testing.T) {
		rec := doJSON(t, router, http.MethodPut, "/api/v1/catalog/category", CategoryInput{Category: "gadgets"})
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("product detail by id", func(t *testing.T) {
		rec := doJSON(t, router, http.MethodGet, "/api/v1/products/2", nil)
		require.Equal(t, http.StatusOK, rec.Code)

		var p domain.Product
		require.NoError(t, json.NewDecoder(rec.Body).Decode(&p))
		assert.Equal(t, "Compost", p.Name)
	})
}

func TestCartEndpoints(t *testing.T) {
	router := newTestRouter(t, &fakeSource{products: apiProducts()})

	t.Run("adding twice merges into one line", func(t *testing.T) {
		doJSON(t, router, http.MethodPost, "/api/v1/cart/items", AddCartItemInput{ProductID: "1"})
		rec := doJSON(t, router, http.MethodPost, "/api/v1/cart/items", AddCartItemInput{ProductID: "1"})
		require.Equal(t, http.StatusOK, rec.Code)

		resp := decodeCart(t, rec)
		require.Len(t, resp.Lines, 1)
		assert.Equal(t, 2, resp.Lines[0].Quantity)
		assert.Equal(t, 2, resp.TotalCount)
		assert.Equal(t, int64(200), resp.TotalPrice)
	})

	t.Run("unknown product is 404", func(t *testing.T) {
		rec := doJSON(t, router, http.MethodPost, "/api/v1/cart/items", AddCartItemInput{ProductID: "no-such"})
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("missing product id fails validation", func(t *testing.T) {
		rec := doJSON(t, router, http.MethodPost, "/api/v1/cart/items", AddCartItemInput{})
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("set quantity to zero removes the line", func(t *testing.T) {
		rec := doJSON(t, router, http.MethodPut, "/api/v1/cart/items/1", QuantityInput{Quantity: 0})
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Empty(t, decodeCart(t, rec).Lines)
	})
}

func TestRetailerEndpoints(t *testing.T) {
	t.Run("list owned products", func(t *testing.T) {
		router := newTestRouter(t, &fakeSource{products: apiProducts()})
		rec := doJSON(t, router, http.MethodGet, "/api/v1/retailer/ret-1/products/", nil)
		require.Equal(t, http.StatusOK, rec.Code)

		var ps []domain.Product
		require.NoError(t, json.NewDecoder(rec.Body).Decode(&ps))
		assert.Len(t, ps, 2)
	})

	t.Run("stock toggle patches the list", func(t *testing.T) {
		router := newTestRouter(t, &fakeSource{products: apiProducts()})
		doJSON(t, router, http.MethodGet, "/api/v1/retailer/ret-1/products/", nil)

		off := false
		rec := doJSON(t, router, http.MethodPatch, "/api/v1/retailer/ret-1/products/1/stock", StockInput{InStock: &off})
		require.Equal(t, http.StatusOK, rec.Code)

		var ps []domain.Product
		require.NoError(t, json.NewDecoder(rec.Body).Decode(&ps))
		require.Len(t, ps, 2)
		assert.Equal(t, "1", ps[0].ID)
		assert.False(t, ps[0].InStock)
	})

	t.Run("failed stock write surfaces as an error", func(t *testing.T) {
		src := &fakeSource{products: apiProducts(), setStockErr: errors.New("write denied")}
		router := newTestRouter(t, src)
		doJSON(t, router, http.MethodGet, "/api/v1/retailer/ret-1/products/", nil)

		off := false
		rec := doJSON(t, router, http.MethodPatch, "/api/v1/retailer/ret-1/products/1/stock", StockInput{InStock: &off})
		assert.Equal(t, http.StatusBadGateway, rec.Code)
	})

	t.Run("create validates the payload", func(t *testing.T) {
		router := newTestRouter(t, &fakeSource{products: apiProducts()})
		rec := doJSON(t, router, http.MethodPost, "/api/v1/retailer/ret-1/products/", RetailerProductInput{
			Price:    100,
			Category: "seeds",
		})
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("create returns the stored product", func(t *testing.T) {
		router := newTestRouter(t, &fakeSource{products: apiProducts()})
		rec := doJSON(t, router, http.MethodPost, "/api/v1/retailer/ret-1/products/", RetailerProductInput{
			Name:     "Sticky Traps",
			Price:    9900,
			Category: "pesticides",
		})
		require.Equal(t, http.StatusCreated, rec.Code)

		var p domain.Product
		require.NoError(t, json.NewDecoder(rec.Body).Decode(&p))
		assert.NotEmpty(t, p.ID)
		assert.Equal(t, "ret-1", p.OwnerID)
	})
}
