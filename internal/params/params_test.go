package params

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPaginate(t *testing.T) {
	tests := []struct {
		name        string
		page, limit int
		wantPage    int
		wantLimit   int
		wantOffset  int
	}{
		{"defaults", 0, 0, 1, DefaultLimit, 0},
		{"second page", 2, 9, 2, 9, 9},
		{"limit clamped", 1, 100, 1, MaxLimit, 0},
		{"negative page", -3, 5, 1, 5, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := Paginate(tt.page, tt.limit)
			assert.Equal(t, tt.wantPage, p.Page)
			assert.Equal(t, tt.wantLimit, p.Limit)
			assert.Equal(t, tt.wantOffset, p.Offset)
		})
	}
}

func TestComputeMetaAndBounds(t *testing.T) {
	p := Paginate(2, 9)
	p.ComputeMeta(20)

	assert.Equal(t, 3, p.TotalPages)
	assert.True(t, p.HasPrev)
	assert.True(t, p.HasNext)

	start, end := p.Bounds(20)
	assert.Equal(t, 9, start)
	assert.Equal(t, 18, end)

	last := Paginate(3, 9)
	last.ComputeMeta(20)
	assert.False(t, last.HasNext)
	start, end = last.Bounds(20)
	assert.Equal(t, 18, start)
	assert.Equal(t, 20, end)

	beyond := Paginate(7, 9)
	start, end = beyond.Bounds(20)
	assert.Equal(t, 20, start)
	assert.Equal(t, 20, end)
}

func TestPaginateHugePage(t *testing.T) {
	for _, page := range []int{math.MaxInt/9 + 2, math.MaxInt} {
		p := Paginate(page, 9)
		assert.GreaterOrEqual(t, p.Offset, 0)

		p.ComputeMeta(20)
		assert.False(t, p.HasNext)

		start, end := p.Bounds(20)
		assert.Equal(t, 20, start)
		assert.Equal(t, 20, end)
	}
}

func TestBoundsNegativeOffset(t *testing.T) {
	start, end := Pagination{Limit: 9, Offset: -18}.Bounds(20)
	assert.Equal(t, 0, start)
	assert.Equal(t, 9, end)
}
