package fallback

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/light-bringer/agrocart-service/internal/app/catalog/domain"
)

func TestAll(t *testing.T) {
	all := All()
	require.NotEmpty(t, all)

	t.Run("every product is valid", func(t *testing.T) {
		for _, p := range all {
			assert.NoError(t, p.Validate(), "product %s", p.ID)
		}
	})

	t.Run("every category is represented", func(t *testing.T) {
		counts := make(map[domain.Category]int)
		for _, p := range all {
			counts[p.Category]++
		}
		for _, c := range domain.Categories() {
			assert.Positive(t, counts[c], "category %s", c)
		}
	})

	t.Run("returns a copy", func(t *testing.T) {
		first := All()
		first[0].Name = "mutated"
		assert.NotEqual(t, "mutated", All()[0].Name)
	})
}

func TestByCategory(t *testing.T) {
	t.Run("only matching products", func(t *testing.T) {
		seeds := ByCategory(domain.CategorySeeds)
		require.NotEmpty(t, seeds)
		for _, p := range seeds {
			assert.Equal(t, domain.CategorySeeds, p.Category)
		}
	})

	t.Run("no filter returns the full set", func(t *testing.T) {
		assert.Equal(t, All(), ByCategory(domain.CategoryNone))
	})

	t.Run("partition covers the full set", func(t *testing.T) {
		var n int
		for _, c := range domain.Categories() {
			n += len(ByCategory(c))
		}
		assert.Equal(t, len(All()), n)
	})
}

func TestByID(t *testing.T) {
	t.Run("existing id", func(t *testing.T) {
		want := All()[0]
		got, ok := ByID(want.ID)
		require.True(t, ok)
		assert.Equal(t, want, got)
	})

	t.Run("unknown id", func(t *testing.T) {
		_, ok := ByID("no-such-product")
		assert.False(t, ok)
	})
}
