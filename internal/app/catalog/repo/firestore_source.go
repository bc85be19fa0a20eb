// Package repo implements the remote catalog source over a Firestore
// product collection.
package repo

import (
	"context"
	"fmt"
	"time"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/light-bringer/agrocart-service/internal/app/catalog/contracts"
	"github.com/light-bringer/agrocart-service/internal/app/catalog/domain"
)

// Firestore field paths for the product document.
const (
	fieldCategory  = "category"
	fieldOwnerID   = "ownerId"
	fieldInStock   = "inStock"
	fieldCreatedAt = "createdAt"
)

// productDoc is the Firestore document shape. The document id carries the
// product id and is not duplicated as a field.
type productDoc struct {
	Name        string    `firestore:"name"`
	Price       int64     `firestore:"price"`
	Image       string    `firestore:"image"`
	Category    string    `firestore:"category"`
	Description string    `firestore:"description"`
	Rating      float64   `firestore:"rating"`
	Reviews     int       `firestore:"reviews"`
	InStock     bool      `firestore:"inStock"`
	OwnerID     string    `firestore:"ownerId"`
	CreatedAt   time.Time `firestore:"createdAt"`
}

// FirestoreSource implements contracts.RemoteSource.
type FirestoreSource struct {
	client     *firestore.Client
	collection string
}

var _ contracts.RemoteSource = (*FirestoreSource)(nil)

// NewFirestoreSource creates a source over the given product collection.
func NewFirestoreSource(client *firestore.Client, collection string) *FirestoreSource {
	return &FirestoreSource{client: client, collection: collection}
}

// ListAll retrieves the whole product collection, newest first when
// orderByRecency is set.
func (s *FirestoreSource) ListAll(ctx context.Context, orderByRecency bool) ([]domain.Product, error) {
	q := s.col().Query
	if orderByRecency {
		q = q.OrderBy(fieldCreatedAt, firestore.Desc)
	}
	return s.runQuery(ctx, q)
}

// ListByCategory retrieves products of one category. The combination of an
// equality filter and a recency order needs a composite index; when it is
// missing Firestore rejects the query and the error maps to
// ErrOrderingUnsupported.
func (s *FirestoreSource) ListByCategory(ctx context.Context, cat domain.Category, orderByRecency bool) ([]domain.Product, error) {
	q := s.col().Where(fieldCategory, "==", string(cat))
	if orderByRecency {
		q = q.OrderBy(fieldCreatedAt, firestore.Desc)
	}
	return s.runQuery(ctx, q)
}

// ListByOwner retrieves the products owned by one retailer identity, in
// store order.
func (s *FirestoreSource) ListByOwner(ctx context.Context, ownerID string) ([]domain.Product, error) {
	return s.runQuery(ctx, s.col().Where(fieldOwnerID, "==", ownerID))
}

// GetByID retrieves a single product document.
func (s *FirestoreSource) GetByID(ctx context.Context, id string) (domain.Product, error) {
	snap, err := s.col().Doc(id).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return domain.Product{}, contracts.ErrNotFound
		}
		return domain.Product{}, fmt.Errorf("get product %s: %w", id, err)
	}
	return snapshotToProduct(snap)
}

// Create inserts a new product document keyed by the product id.
func (s *FirestoreSource) Create(ctx context.Context, p domain.Product) error {
	if _, err := s.col().Doc(p.ID).Create(ctx, productToDoc(p)); err != nil {
		return fmt.Errorf("create product %s: %w", p.ID, err)
	}
	return nil
}

// Update replaces the stored fields of an existing product.
func (s *FirestoreSource) Update(ctx context.Context, p domain.Product) error {
	if _, err := s.col().Doc(p.ID).Set(ctx, productToDoc(p)); err != nil {
		return fmt.Errorf("update product %s: %w", p.ID, err)
	}
	return nil
}

// SetStock updates only the stock flag.
func (s *FirestoreSource) SetStock(ctx context.Context, id string, inStock bool) error {
	_, err := s.col().Doc(id).Update(ctx, []firestore.Update{
		{Path: fieldInStock, Value: inStock},
	})
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return contracts.ErrNotFound
		}
		return fmt.Errorf("set stock on product %s: %w", id, err)
	}
	return nil
}

// Delete removes a product document. Firestore deletes are idempotent, so
// deleting an absent document succeeds.
func (s *FirestoreSource) Delete(ctx context.Context, id string) error {
	if _, err := s.col().Doc(id).Delete(ctx); err != nil {
		return fmt.Errorf("delete product %s: %w", id, err)
	}
	return nil
}

func (s *FirestoreSource) col() *firestore.CollectionRef {
	return s.client.Collection(s.collection)
}

func (s *FirestoreSource) runQuery(ctx context.Context, q firestore.Query) ([]domain.Product, error) {
	it := q.Documents(ctx)
	defer it.Stop()

	var out []domain.Product
	for {
		snap, err := it.Next()
		if err == iterator.Done {
			return out, nil
		}
		if err != nil {
			return nil, classifyQueryError(err)
		}
		p, err := snapshotToProduct(snap)
		if err != nil {
			return nil, err
		}
		out = append(out, p)
	}
}

// classifyQueryError maps a missing-index rejection to the
// ordering-unsupported sentinel the fetcher degrades on; everything else
// stays a transport failure.
func classifyQueryError(err error) error {
	if status.Code(err) == codes.FailedPrecondition {
		return fmt.Errorf("%w: %v", contracts.ErrOrderingUnsupported, err)
	}
	return fmt.Errorf("query products: %w", err)
}

func snapshotToProduct(snap *firestore.DocumentSnapshot) (domain.Product, error) {
	var doc productDoc
	if err := snap.DataTo(&doc); err != nil {
		return domain.Product{}, fmt.Errorf("parse product %s: %w", snap.Ref.ID, err)
	}
	return domain.Product{
		ID:          snap.Ref.ID,
		Name:        doc.Name,
		Price:       doc.Price,
		Image:       doc.Image,
		Category:    domain.Category(doc.Category),
		Description: doc.Description,
		Rating:      doc.Rating,
		Reviews:     doc.Reviews,
		InStock:     doc.InStock,
		OwnerID:     doc.OwnerID,
		CreatedAt:   doc.CreatedAt,
	}, nil
}

func productToDoc(p domain.Product) productDoc {
	return productDoc{
		Name:        p.Name,
		Price:       p.Price,
		Image:       p.Image,
		Category:    string(p.Category),
		Description: p.Description,
		Rating:      p.Rating,
		Reviews:     p.Reviews,
		InStock:     p.InStock,
		OwnerID:     p.OwnerID,
		CreatedAt:   p.CreatedAt,
	}
}
