// Package fallback holds the hand-authored product set served whenever the
// remote catalog is empty or unreachable. It is never merged with remote
// data: the fetcher substitutes the matching subset wholesale.
package fallback

import (
	"time"

	"github.com/light-bringer/agrocart-service/internal/app/catalog/domain"
)

var seedTime = time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)

var products = []domain.Product{
	{
		ID:          "fb-seeds-001",
		Name:        "Hybrid Tomato Seeds",
		Price:       24900,
		Image:       "https://static.agrocart.dev/products/tomato-seeds.jpg",
		Category:    domain.CategorySeeds,
		Description: "High-yield hybrid tomato seeds suited for open fields and greenhouses.",
		Rating:      4.6,
		Reviews:     182,
		InStock:     true,
		CreatedAt:   seedTime,
	},
	{
		ID:          "fb-seeds-002",
		Name:        "Winter Wheat Seeds",
		Price:       18500,
		Image:       "https://static.agrocart.dev/products/wheat-seeds.jpg",
		Category:    domain.CategorySeeds,
		Description: "Cold-hardy winter wheat with strong tillering and rust resistance.",
		Rating:      4.4,
		Reviews:     97,
		InStock:     true,
		CreatedAt:   seedTime.Add(-24 * time.Hour),
	},
	{
		ID:          "fb-seeds-003",
		Name:        "Sweet Corn Seeds",
		Price:       21000,
		Image:       "https://static.agrocart.dev/products/corn-seeds.jpg",
		Category:    domain.CategorySeeds,
		Description: "Early-maturing sweet corn variety with uniform cobs.",
		Rating:      4.2,
		Reviews:     64,
		InStock:     false,
		CreatedAt:   seedTime.Add(-48 * time.Hour),
	},
	{
		ID:          "fb-fert-001",
		Name:        "NPK 20-20-20 Fertilizer",
		Price:       32000,
		Image:       "https://static.agrocart.dev/products/npk-202020.jpg",
		Category:    domain.CategoryFertilizers,
		Description: "Balanced water-soluble NPK blend for vegetative growth, 5 kg bag.",
		Rating:      4.7,
		Reviews:     240,
		InStock:     true,
		CreatedAt:   seedTime.Add(-72 * time.Hour),
	},
	{
		ID:          "fb-fert-002",
		Name:        "Organic Compost",
		Price:       12500,
		Image:       "https://static.agrocart.dev/products/compost.jpg",
		Category:    domain.CategoryFertilizers,
		Description: "Fully decomposed organic compost for soil conditioning, 10 kg bag.",
		Rating:      4.5,
		Reviews:     131,
		InStock:     true,
		CreatedAt:   seedTime.Add(-96 * time.Hour),
	},
	{
		ID:          "fb-fert-003",
		Name:        "Urea Granules",
		Price:       15800,
		Image:       "https://static.agrocart.dev/products/urea.jpg",
		Category:    domain.CategoryFertilizers,
		Description: "46% nitrogen urea granules for top dressing, 5 kg bag.",
		Rating:      4.1,
		Reviews:     58,
		InStock:     true,
		CreatedAt:   seedTime.Add(-120 * time.Hour),
	},
	{
		ID:          "fb-pest-001",
		Name:        "Neem Oil Concentrate",
		Price:       28500,
		Image:       "https://static.agrocart.dev/products/neem-oil.jpg",
		Category:    domain.CategoryPesticides,
		Description: "Cold-pressed neem oil concentrate against aphids, mites, and whiteflies.",
		Rating:      4.3,
		Reviews:     156,
		InStock:     true,
		CreatedAt:   seedTime.Add(-144 * time.Hour),
	},
	{
		ID:          "fb-pest-002",
		Name:        "Copper Fungicide",
		Price:       34000,
		Image:       "https://static.agrocart.dev/products/copper-fungicide.jpg",
		Category:    domain.CategoryPesticides,
		Description: "Copper oxychloride fungicide for blight and leaf spot control.",
		Rating:      4.0,
		Reviews:     73,
		InStock:     true,
		CreatedAt:   seedTime.Add(-168 * time.Hour),
	},
	{
		ID:          "fb-pest-003",
		Name:        "Sticky Insect Traps",
		Price:       9900,
		Image:       "https://static.agrocart.dev/products/sticky-traps.jpg",
		Category:    domain.CategoryPesticides,
		Description: "Yellow sticky traps for greenhouse pest monitoring, pack of 20.",
		Rating:      4.8,
		Reviews:     312,
		InStock:     false,
		CreatedAt:   seedTime.Add(-192 * time.Hour),
	},
}

// All returns every fallback product, in catalog order.
func All() []domain.Product {
	out := make([]domain.Product, len(products))
	copy(out, products)
	return out
}

// ByCategory returns the fallback products for one category.
// CategoryNone returns the full set.
func ByCategory(cat domain.Category) []domain.Product {
	if cat == domain.CategoryNone {
		return All()
	}
	var out []domain.Product
	for _, p := range products {
		if p.Category == cat {
			out = append(out, p)
		}
	}
	return out
}

// ByID returns the fallback product with the given id, if any.
func ByID(id string) (domain.Product, bool) {
	for _, p := range products {
		if p.ID == id {
			return p, true
		}
	}
	return domain.Product{}, false
}
