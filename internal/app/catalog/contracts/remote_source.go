package contracts

import (
	"context"
	"errors"

	"github.com/light-bringer/agrocart-service/internal/app/catalog/domain"
)

// Remote source errors the fetcher's degrade policy depends on. Everything
// else returned by a RemoteSource is a transport or permission failure.
var (
	// ErrOrderingUnsupported signals that the store cannot serve the query
	// with recency ordering (typically a missing index). The same logical
	// query without ordering may still succeed.
	ErrOrderingUnsupported = errors.New("recency ordering unsupported for query")

	// ErrNotFound signals a successful lookup that matched no document.
	ErrNotFound = errors.New("document not found")
)

// RemoteSource is the document-store accessor for the product collection.
// List operations return products in store order; when orderByRecency is
// set they are ordered by creation time, newest first, or fail with
// ErrOrderingUnsupported if the store cannot honor that.
type RemoteSource interface {
	// ListAll retrieves the full product collection.
	ListAll(ctx context.Context, orderByRecency bool) ([]domain.Product, error)

	// ListByCategory retrieves products matching one category.
	ListByCategory(ctx context.Context, cat domain.Category, orderByRecency bool) ([]domain.Product, error)

	// ListByOwner retrieves products owned by one retailer identity.
	ListByOwner(ctx context.Context, ownerID string) ([]domain.Product, error)

	// GetByID retrieves a single product, or ErrNotFound.
	GetByID(ctx context.Context, id string) (domain.Product, error)

	// Create inserts a new product document.
	Create(ctx context.Context, p domain.Product) error

	// Update replaces the stored fields of an existing product.
	Update(ctx context.Context, p domain.Product) error

	// SetStock updates only the stock flag of an existing product.
	SetStock(ctx context.Context, id string, inStock bool) error

	// Delete removes a product document. Deleting an absent document is
	// not an error.
	Delete(ctx context.Context, id string) error
}
