package catalog

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAvailable(t *testing.T) {
	tests := []struct {
		name string
		p    Product
		want bool
	}{
		{"no stock info", Product{ID: "a"}, true},
		{"in stock", Product{ID: "a", InStock: Bool(true), CountInStock: Int(3)}, true},
		{"flagged out", Product{ID: "a", InStock: Bool(false), CountInStock: Int(3)}, false},
		{"zero count wins over flag", Product{ID: "a", InStock: Bool(true), CountInStock: Int(0)}, false},
		{"negative count", Product{ID: "a", CountInStock: Int(-1)}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.p.Available())
		})
	}
}

func TestCacheFallsBackToDefaults(t *testing.T) {
	c := NewCache()
	require.True(t, c.UsingDefaults())
	require.NotZero(t, c.Len())

	c.Replace([]Product{{ID: "x", Name: "X"}})
	assert.False(t, c.UsingDefaults())
	assert.Equal(t, 1, c.Len())

	c.Replace(nil)
	assert.True(t, c.UsingDefaults())
	assert.Equal(t, len(Defaults()), c.Len())
}

func TestCachePutSwapRemove(t *testing.T) {
	c := NewCache()
	c.Replace([]Product{{ID: "a", Name: "A"}, {ID: "b", Name: "B"}})

	c.Put(Product{ID: "c", Name: "C"})
	assert.Equal(t, 3, c.Len())

	c.Swap("a", Product{ID: "a", Name: "A2"})
	got, ok := c.Get("a")
	require.True(t, ok)
	assert.Equal(t, "A2", got.Name)

	c.Remove("b")
	_, ok = c.Get("b")
	assert.False(t, ok)
	assert.Equal(t, 2, c.Len())
}

func TestCacheRelated(t *testing.T) {
	c := NewCache()
	c.Replace([]Product{
		{ID: "1", Category: "Serums"},
		{ID: "2", Category: "Serums"},
		{ID: "3", Category: "Cleansers"},
		{ID: "4", Category: "Serums"},
		{ID: "5", Category: "Serums"},
		{ID: "6", Category: "Serums"},
	})

	p, _ := c.Get("1")
	related := c.Related(p, 3)
	require.Len(t, related, 3)
	assert.Equal(t, "2", related[0].ID)
	assert.Equal(t, "4", related[1].ID)
	assert.Equal(t, "5", related[2].ID)
}

func TestCachePage(t *testing.T) {
	c := NewCache()
	var ps []Product
	for i := 0; i < 11; i++ {
		ps = append(ps, Product{ID: string(rune('a' + i))})
	}
	c.Replace(ps)

	page, meta := c.Page(2, 9)
	assert.Len(t, page, 2)
	assert.Equal(t, 2, meta.TotalPages)
	assert.False(t, meta.HasNext)

	page, _ = c.Page(math.MaxInt/9+2, 9)
	assert.Empty(t, page)
}

func TestInputValidate(t *testing.T) {
	assert.NoError(t, Input{Name: "Serum", Price: 100}.Validate())
	assert.ErrorIs(t, Input{Price: 100}.Validate(), ErrInvalidProduct)
	assert.ErrorIs(t, Input{Name: "x", Price: -1}.Validate(), ErrInvalidProduct)
	assert.ErrorIs(t, Product{Name: "x"}.Validate(), ErrInvalidProduct)
}
