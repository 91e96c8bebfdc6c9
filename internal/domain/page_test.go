package domain_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/pkordes/trip-planner/backend/internal/domain"
)

func TestPaginationParams(t *testing.T) {
	page, limit := 3, 500
	p := domain.NewPaginationParams(&page, &limit)

	assert.Equal(t, 100, p.Limit)
	assert.Equal(t, 200, p.Offset())
	assert.Equal(t, 3, p.TotalPages(201))
	assert.Equal(t, 0, p.TotalPages(0))

	d := domain.NewPaginationParams(nil, nil)
	assert.Equal(t, domain.PaginationParams{Page: 1, Limit: 20}, d)
}

// TestPaginationParams_HugePageKeepsOffsetNonNegative verifies that a page
// number large enough to overflow (Page-1)*Limit is capped instead.
func TestPaginationParams_HugePageKeepsOffsetNonNegative(t *testing.T) {
	for _, limit := range []int{1, 20, 100} {
		page := math.MaxInt / 10
		p := domain.NewPaginationParams(&page, &limit)

		assert.GreaterOrEqual(t, p.Offset(), 0, "limit=%d", limit)
		assert.LessOrEqual(t, p.Page, math.MaxInt/p.Limit, "limit=%d", limit)
	}

	page := math.MaxInt
	p := domain.NewPaginationParams(&page, nil)
	assert.Equal(t, math.MaxInt/20, p.Page)
	assert.GreaterOrEqual(t, p.Offset(), 0)
}
