// Package fetcher orchestrates the remote catalog source and the fallback
// catalog. Every fetch degrades rather than fails: an unsupported ordering
// is retried once without ordering, and an empty or failed result is
// replaced by the fallback subset. Failures are logged for diagnostics and
// never reach the caller.
package fetcher

import (
	"context"
	"errors"
	"log/slog"

	"github.com/light-bringer/agrocart-service/internal/app/catalog/contracts"
	"github.com/light-bringer/agrocart-service/internal/app/catalog/domain"
	"github.com/light-bringer/agrocart-service/internal/app/catalog/fallback"
)

// Fetcher retrieves products with the degrade-to-fallback policy.
type Fetcher struct {
	source contracts.RemoteSource
	log    *slog.Logger
}

// New creates a Fetcher over the given remote source.
func New(source contracts.RemoteSource, log *slog.Logger) *Fetcher {
	if log == nil {
		log = slog.Default()
	}
	return &Fetcher{source: source, log: log}
}

// FetchAll returns the full product collection, or the full fallback set.
func (f *Fetcher) FetchAll(ctx context.Context) []domain.Product {
	return f.list(ctx, "fetch_all", fallback.All(), func(ordered bool) ([]domain.Product, error) {
		return f.source.ListAll(ctx, ordered)
	})
}

// FetchByCategory returns the products of one category, or the fallback
// subset for that category.
func (f *Fetcher) FetchByCategory(ctx context.Context, cat domain.Category) []domain.Product {
	return f.list(ctx, "fetch_by_category", fallback.ByCategory(cat), func(ordered bool) ([]domain.Product, error) {
		return f.source.ListByCategory(ctx, cat, ordered)
	})
}

// FetchByID returns one product. Any remote miss or failure degrades
// directly to the fallback catalog; no ordering concern applies to a
// single-document read.
func (f *Fetcher) FetchByID(ctx context.Context, id string) (domain.Product, bool) {
	p, err := f.source.GetByID(ctx, id)
	if err != nil {
		if !errors.Is(err, contracts.ErrNotFound) {
			f.log.Warn("remote product read failed, trying fallback", "product_id", id, "error", err)
		}
		return fallback.ByID(id)
	}
	return p, true
}

// list runs one logical query with the degrade order: preferred ordered
// query, at most one unordered retry, then fallback substitution on any
// failure or empty result.
func (f *Fetcher) list(ctx context.Context, op string, fb []domain.Product, query func(ordered bool) ([]domain.Product, error)) []domain.Product {
	ps, err := query(true)
	if errors.Is(err, contracts.ErrOrderingUnsupported) {
		f.log.Warn("recency ordering unavailable, retrying unordered", "op", op)
		ps, err = query(false)
	}
	if err != nil {
		f.log.Warn("remote catalog query failed, serving fallback", "op", op, "error", err)
		return fb
	}
	if len(ps) == 0 {
		f.log.Debug("remote catalog query returned no products, serving fallback", "op", op)
		return fb
	}
	return ps
}
