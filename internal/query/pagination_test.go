package query

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewPage_Normalization(t *testing.T) {
	tests := []struct {
		name       string
		number     int
		size       int
		wantNumber int
		wantSize   int
		wantOffset int
	}{
		{name: "defaults", number: 0, size: 0, wantNumber: 1, wantSize: DefaultPageSize, wantOffset: 0},
		{name: "negative page", number: -3, size: 10, wantNumber: 1, wantSize: 10, wantOffset: 0},
		{name: "negative limit", number: 2, size: -5, wantNumber: 2, wantSize: DefaultPageSize, wantOffset: DefaultPageSize},
		{name: "regular window", number: 3, size: 20, wantNumber: 3, wantSize: 20, wantOffset: 40},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := NewPage(tt.number, tt.size)
			assert.Equal(t, tt.wantNumber, p.Number)
			assert.Equal(t, tt.wantSize, p.Limit())
			assert.Equal(t, tt.wantOffset, p.Offset())
		})
	}
}

func TestPageMeta(t *testing.T) {
	tests := []struct {
		name      string
		page      Page
		total     int64
		wantPages int64
	}{
		{name: "zero total means zero pages", page: NewPage(1, 10), total: 0, wantPages: 0},
		{name: "exact multiple", page: NewPage(1, 10), total: 30, wantPages: 3},
		{name: "remainder rounds up", page: NewPage(1, 10), total: 31, wantPages: 4},
		{name: "single item", page: NewPage(1, 10), total: 1, wantPages: 1},
		{name: "twenty five over ten", page: NewPage(2, 10), total: 25, wantPages: 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			meta := tt.page.Meta(tt.total)
			assert.Equal(t, tt.total, meta.TotalCount)
			assert.Equal(t, tt.wantPages, meta.TotalPages)
			assert.Equal(t, tt.page.Number, meta.CurrentPage)
		})
	}
}

// Walking every page of a result set must visit each record exactly
// once: windows are disjoint, they cover the whole set, and the page
// count matches ceil(total/limit).
func TestPagination_WindowsCoverExactly(t *testing.T) {
	rng := rand.New(rand.NewSource(7))

	for i := 0; i < 100; i++ {
		total := int64(rng.Intn(500))
		limit := 1 + rng.Intn(50)

		seen := make(map[int]int)
		var pages int64
		for n := 1; ; n++ {
			p := NewPage(n, limit)
			start := p.Offset()
			if int64(start) >= total {
				break
			}
			end := start + p.Limit()
			if int64(end) > total {
				end = int(total)
			}
			for idx := start; idx < end; idx++ {
				seen[idx]++
			}
			pages++
		}

		assert.Equal(t, total, int64(len(seen)), "total=%d limit=%d", total, limit)
		for idx, count := range seen {
			assert.Equal(t, 1, count, "record %d visited %d times", idx, count)
		}
		assert.Equal(t, NewPage(1, limit).Meta(total).TotalPages, pages, "total=%d limit=%d", total, limit)
	}
}

// The documented scenario: 25 matches at 10 per page, page 2 covers
// records 11-20 and reports 3 pages.
func TestPagination_SecondPageScenario(t *testing.T) {
	p := NewPage(2, 10)

	assert.Equal(t, 10, p.Offset())
	assert.Equal(t, 10, p.Limit())

	meta := p.Meta(25)
	assert.Equal(t, int64(25), meta.TotalCount)
	assert.Equal(t, int64(3), meta.TotalPages)
	assert.Equal(t, 2, meta.CurrentPage)
}
