package cart

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/light-bringer/agrocart-service/internal/app/catalog/domain"
)

func seeds() domain.Product {
	return domain.Product{ID: "p-1", Name: "Wheat Seeds", Price: 18500, Category: domain.CategorySeeds}
}

func compost() domain.Product {
	return domain.Product{ID: "p-2", Name: "Compost", Price: 12500, Category: domain.CategoryFertilizers}
}

func TestStore_Add(t *testing.T) {
	t.Run("adding the same product twice merges into one line", func(t *testing.T) {
		s := NewStore()
		s.Add(seeds(), 1)
		s.Add(seeds(), 1)

		lines := s.Lines()
		require.Len(t, lines, 1)
		assert.Equal(t, 2, lines[0].Quantity)
	})

	t.Run("merge increments by the given quantity", func(t *testing.T) {
		s := NewStore()
		s.Add(seeds(), 2)
		s.Add(seeds(), 3)
		assert.Equal(t, 5, s.Lines()[0].Quantity)
	})

	t.Run("non-positive quantity is a no-op", func(t *testing.T) {
		s := NewStore()
		s.Add(seeds(), 0)
		s.Add(seeds(), -4)
		assert.Empty(t, s.Lines())
	})

	t.Run("line holds a snapshot, not a live reference", func(t *testing.T) {
		s := NewStore()
		p := seeds()
		s.Add(p, 1)
		p.Price = 99999
		p.InStock = false
		assert.Equal(t, int64(18500), s.Lines()[0].Product.Price)
	})
}

func TestStore_Remove(t *testing.T) {
	t.Run("removes the line", func(t *testing.T) {
		s := NewStore()
		s.Add(seeds(), 1)
		s.Remove(seeds().ID)
		assert.Empty(t, s.Lines())
	})

	t.Run("absent id is a no-op", func(t *testing.T) {
		s := NewStore()
		s.Add(seeds(), 1)
		s.Remove("no-such-id")
		assert.Len(t, s.Lines(), 1)
	})

	t.Run("re-adding appends at the end, not the old position", func(t *testing.T) {
		s := NewStore()
		s.Add(seeds(), 1)
		s.Add(compost(), 1)
		s.Remove(seeds().ID)
		s.Add(seeds(), 1)

		lines := s.Lines()
		require.Len(t, lines, 2)
		assert.Equal(t, compost().ID, lines[0].Product.ID)
		assert.Equal(t, seeds().ID, lines[1].Product.ID)
	})
}

func TestStore_SetQuantity(t *testing.T) {
	t.Run("replaces the quantity", func(t *testing.T) {
		s := NewStore()
		s.Add(seeds(), 2)
		s.SetQuantity(seeds().ID, 7)
		assert.Equal(t, 7, s.Lines()[0].Quantity)
	})

	t.Run("zero is equivalent to remove", func(t *testing.T) {
		s := NewStore()
		s.Add(seeds(), 2)
		s.SetQuantity(seeds().ID, 0)
		assert.Empty(t, s.Lines())
	})

	t.Run("negative is equivalent to remove", func(t *testing.T) {
		s := NewStore()
		s.Add(seeds(), 2)
		s.SetQuantity(seeds().ID, -1)
		assert.Empty(t, s.Lines())
	})

	t.Run("absent id is a no-op", func(t *testing.T) {
		s := NewStore()
		s.SetQuantity("no-such-id", 3)
		assert.Empty(t, s.Lines())
	})
}

func TestStore_Totals(t *testing.T) {
	s := NewStore()
	s.Add(seeds(), 2)   // 2 * 18500
	s.Add(compost(), 3) // 3 * 12500

	assert.Equal(t, 5, s.TotalCount())
	assert.Equal(t, int64(2*18500+3*12500), s.TotalPrice())

	t.Run("empty cart totals are zero", func(t *testing.T) {
		s.Clear()
		assert.Zero(t, s.TotalCount())
		assert.Zero(t, s.TotalPrice())
	})
}
