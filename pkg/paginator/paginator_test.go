package paginator

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAdjust(t *testing.T) {
	tests := []struct {
		name string
		in   PaginateQuery
		want PaginateQuery
	}{
		{"defaults", PaginateQuery{}, PaginateQuery{Page: DefaultPage, Limit: DefaultLimit}},
		{"clamps limit", PaginateQuery{Page: 3, Limit: 5000}, PaginateQuery{Page: 3, Limit: MaxLimit}},
		{"keeps valid", PaginateQuery{Page: 2, Limit: 20}, PaginateQuery{Page: 2, Limit: 20}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q := tt.in
			q.Adjust()
			assert.Equal(t, tt.want, q)
		})
	}
}

func TestOffset(t *testing.T) {
	q := PaginateQuery{Page: 3, Limit: 15}
	assert.Equal(t, int64(30), q.Offset())
}

func TestToResponse(t *testing.T) {
	resp := Paginator{Total: 31, Count: 15, PerPage: 15, CurrentPage: 2}.ToResponse()

	assert.Equal(t, 3, resp.TotalPages)
	assert.True(t, resp.HasNext)
	assert.True(t, resp.HasPrev)
	assert.Equal(t, int64(31), resp.ToPaginator().Total)
}

func TestTotalPages_Empty(t *testing.T) {
	assert.Equal(t, 0, Paginator{}.TotalPages())
}
