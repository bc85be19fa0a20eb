package domain

import (
	"strings"
	"time"
)

// Category is the product category facet.
type Category string

const (
	// CategoryNone means no category filter is applied.
	CategoryNone Category = ""

	CategorySeeds       Category = "seeds"
	CategoryFertilizers Category = "fertilizers"
	CategoryPesticides  Category = "pesticides"
)

// Categories lists every concrete category, in catalog display order.
func Categories() []Category {
	return []Category{CategorySeeds, CategoryFertilizers, CategoryPesticides}
}

// ParseCategory converts a raw string into a Category.
// The empty string parses to CategoryNone.
func ParseCategory(raw string) (Category, error) {
	switch Category(raw) {
	case CategoryNone, CategorySeeds, CategoryFertilizers, CategoryPesticides:
		return Category(raw), nil
	default:
		return CategoryNone, ErrInvalidCategory
	}
}

// Product is a catalog entry. Prices are minor currency units (no fractional
// cents), so cart arithmetic stays exact integer math.
type Product struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Price       int64     `json:"price"`
	Image       string    `json:"image"`
	Category    Category  `json:"category"`
	Description string    `json:"description"`
	Rating      float64   `json:"rating"`
	Reviews     int       `json:"reviews"`
	InStock     bool      `json:"in_stock"`
	OwnerID     string    `json:"owner_id,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}

// Validate checks the invariants a product must satisfy before it is
// written to the remote store.
func (p Product) Validate() error {
	if strings.TrimSpace(p.Name) == "" {
		return ErrEmptyName
	}
	if p.Price < 0 {
		return ErrInvalidPrice
	}
	if p.Rating < 0 || p.Rating > 5 {
		return ErrInvalidRating
	}
	if p.Reviews < 0 {
		return ErrInvalidReviews
	}
	if p.Category == CategoryNone {
		return ErrInvalidCategory
	}
	if _, err := ParseCategory(string(p.Category)); err != nil {
		return err
	}
	return nil
}

// MatchesCategory reports whether the product belongs to the given category.
// CategoryNone matches every product.
func (p Product) MatchesCategory(c Category) bool {
	return c == CategoryNone || p.Category == c
}

// MatchesSearch reports whether the query occurs as a case-insensitive
// substring of the product name, description, or category. The query is
// trimmed and lower-cased here, at match time; an empty query matches
// every product.
func (p Product) MatchesSearch(query string) bool {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return true
	}
	return strings.Contains(strings.ToLower(p.Name), q) ||
		strings.Contains(strings.ToLower(p.Description), q) ||
		strings.Contains(strings.ToLower(string(p.Category)), q)
}
