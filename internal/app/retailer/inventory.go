// Package retailer narrows the remote catalog to one owner identity and
// carries the authoritative write path: stock toggles, edits, and deletes
// whose failures must reach the caller. No fallback substitution happens
// here; an owner's inventory reflects the store, including "empty".
package retailer

import (
	"context"
	"fmt"
	"sync"

	"github.com/google/uuid"

	"github.com/light-bringer/agrocart-service/internal/app/catalog/contracts"
	"github.com/light-bringer/agrocart-service/internal/app/catalog/domain"
	"github.com/light-bringer/agrocart-service/internal/pkg/clock"
)

// ProductInput carries the caller-editable product fields for create and
// update operations.
type ProductInput struct {
	Name        string
	Price       int64
	Image       string
	Category    domain.Category
	Description string
}

// InventoryView holds the locally cached owned-product list for one owner.
// Mutations write to the remote store first; only after success is the
// local copy patched in place, so list order stays stable and a failed
// write leaves local state untouched.
type InventoryView struct {
	mu      sync.Mutex
	source  contracts.RemoteSource
	clock   clock.Clock
	ownerID string

	products []domain.Product
}

// NewInventoryView creates a view scoped to one owner identity. The owner
// id is opaque; it is supplied by the identity collaborator and never
// validated here.
func NewInventoryView(source contracts.RemoteSource, clk clock.Clock, ownerID string) *InventoryView {
	return &InventoryView{source: source, clock: clk, ownerID: ownerID}
}

// OwnerID returns the owner identity this view is scoped to.
func (v *InventoryView) OwnerID() string {
	return v.ownerID
}

// Load replaces the local list with the owner's products from the remote
// store. Errors surface: an owner's inventory must reflect reality, not
// mock data.
func (v *InventoryView) Load(ctx context.Context) error {
	v.mu.Lock()
	defer v.mu.Unlock()
	ps, err := v.source.ListByOwner(ctx, v.ownerID)
	if err != nil {
		return fmt.Errorf("list owned products: %w", err)
	}
	v.products = ps
	return nil
}

// Products returns a copy of the locally held owned-product list.
func (v *InventoryView) Products() []domain.Product {
	v.mu.Lock()
	defer v.mu.Unlock()
	out := make([]domain.Product, len(v.products))
	copy(out, v.products)
	return out
}

// Create validates and writes a new product for this owner, then appends
// it to the local list.
func (v *InventoryView) Create(ctx context.Context, in ProductInput) (domain.Product, error) {
	v.mu.Lock()
	defer v.mu.Unlock()
	p := domain.Product{
		ID:          uuid.New().String(),
		Name:        in.Name,
		Price:       in.Price,
		Image:       in.Image,
		Category:    in.Category,
		Description: in.Description,
		InStock:     true,
		OwnerID:     v.ownerID,
		CreatedAt:   v.clock.Now(),
	}
	if err := p.Validate(); err != nil {
		return domain.Product{}, err
	}
	if err := v.source.Create(ctx, p); err != nil {
		return domain.Product{}, fmt.Errorf("create product: %w", err)
	}
	v.products = append(v.products, p)
	return p, nil
}

// Update validates and rewrites the editable fields of an owned product,
// then patches the local entry in place.
func (v *InventoryView) Update(ctx context.Context, id string, in ProductInput) (domain.Product, error) {
	v.mu.Lock()
	defer v.mu.Unlock()
	i := v.index(id)
	if i < 0 {
		return domain.Product{}, domain.ErrProductNotFound
	}
	p := v.products[i]
	p.Name = in.Name
	p.Price = in.Price
	p.Image = in.Image
	p.Category = in.Category
	p.Description = in.Description
	if err := p.Validate(); err != nil {
		return domain.Product{}, err
	}
	if err := v.source.Update(ctx, p); err != nil {
		return domain.Product{}, fmt.Errorf("update product: %w", err)
	}
	v.products[i] = p
	return p, nil
}

// SetStock toggles the stock flag remotely, then patches the local entry in
// place rather than refetching, keeping list order stable.
func (v *InventoryView) SetStock(ctx context.Context, id string, inStock bool) error {
	v.mu.Lock()
	defer v.mu.Unlock()
	i := v.index(id)
	if i < 0 {
		return domain.ErrProductNotFound
	}
	if err := v.source.SetStock(ctx, id, inStock); err != nil {
		return fmt.Errorf("set stock: %w", err)
	}
	v.products[i].InStock = inStock
	return nil
}

// Remove deletes the product remotely, then removes the matching local
// entry.
func (v *InventoryView) Remove(ctx context.Context, id string) error {
	v.mu.Lock()
	defer v.mu.Unlock()
	i := v.index(id)
	if i < 0 {
		return domain.ErrProductNotFound
	}
	if err := v.source.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete product: %w", err)
	}
	v.products = append(v.products[:i], v.products[i+1:]...)
	return nil
}

func (v *InventoryView) index(id string) int {
	for i, p := range v.products {
		if p.ID == id {
			return i
		}
	}
	return -1
}
