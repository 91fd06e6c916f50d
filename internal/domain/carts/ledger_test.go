package carts

import (
	"math/rand"
	"testing"

	"jaanmak/internal/domain/catalog"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func product(id string, price int64) catalog.Product {
	return catalog.Product{ID: id, Name: "P" + id, Price: price}
}

func TestAddMergesQuantities(t *testing.T) {
	l := NewLedger()
	p := product("a", 1000)

	require.NoError(t, l.Add(p, 2))
	require.NoError(t, l.Add(p, 3))

	items := l.Items()
	require.Len(t, items, 1)
	assert.Equal(t, 5, items[0].Quantity)
	assert.Equal(t, int64(5000), l.Subtotal())
}

func TestAddRejectsNonPositiveQuantity(t *testing.T) {
	l := NewLedger()
	assert.ErrorIs(t, l.Add(product("a", 10), 0), ErrInvalidQuantity)
	assert.ErrorIs(t, l.Add(product("a", 10), -2), ErrInvalidQuantity)
	assert.True(t, l.Empty())
}

func TestDecrease(t *testing.T) {
	l := NewLedger()
	require.NoError(t, l.Add(product("a", 10), 2))

	l.Decrease("a")
	assert.Equal(t, 1, l.Quantity("a"))

	l.Decrease("a")
	assert.Zero(t, l.Len(), "quantity-1 line must be removed")

	l.Decrease("missing")
	assert.Zero(t, l.Len())
}

func TestRemoveKeepsOrder(t *testing.T) {
	l := NewLedger()
	for _, id := range []string{"a", "b", "c"} {
		require.NoError(t, l.Add(product(id, 1), 1))
	}
	snapshot := l.Items()

	l.Remove("b")
	l.Remove("zzz")

	items := l.Items()
	require.Len(t, items, 2)
	assert.Equal(t, "a", items[0].ID)
	assert.Equal(t, "c", items[1].ID)
	assert.Len(t, snapshot, 3, "earlier snapshots are not affected")
}

func TestRandomSequencesKeepInvariants(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	ids := []string{"a", "b", "c", "d"}
	l := NewLedger()

	for step := 0; step < 5000; step++ {
		id := ids[rng.Intn(len(ids))]
		switch rng.Intn(4) {
		case 0, 1:
			_ = l.Add(product(id, int64(rng.Intn(5000))), rng.Intn(4)+1)
		case 2:
			l.Decrease(id)
		case 3:
			l.Remove(id)
		}

		seen := map[string]bool{}
		var want int64
		for _, it := range l.Items() {
			require.False(t, seen[it.ID], "duplicate line for %s at step %d", it.ID, step)
			seen[it.ID] = true
			require.Positive(t, it.Quantity, "non-positive quantity at step %d", step)
			want += it.Price * int64(it.Quantity)
		}
		require.Equal(t, want, l.Subtotal())
	}
}

func TestRestoreNormalizes(t *testing.T) {
	l := Restore([]Item{
		{Product: product("a", 100), Quantity: 1},
		{Product: product("b", 100), Quantity: 0},
		{Product: product("a", 100), Quantity: 2},
		{Product: catalog.Product{}, Quantity: 4},
	})

	items := l.Items()
	require.Len(t, items, 1)
	assert.Equal(t, 3, items[0].Quantity)
}

func TestClear(t *testing.T) {
	l := NewLedger()
	require.NoError(t, l.Add(product("a", 100), 1))
	l.Clear()
	assert.True(t, l.Empty())
	assert.Zero(t, l.Subtotal())
}
