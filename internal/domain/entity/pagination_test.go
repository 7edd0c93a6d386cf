package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewPagination(t *testing.T) {
	tests := []struct {
		name  string
		page  int
		total int64
		want  Pagination
	}{
		{
			name:  "first of three",
			page:  1,
			total: 5,
			want:  Pagination{CurrentPage: 1, HasNextPage: true, NextPage: 2, PreviousPage: 0, LastPage: 3, TotalItems: 5},
		},
		{
			name:  "last page",
			page:  3,
			total: 5,
			want:  Pagination{CurrentPage: 3, HasPreviousPage: true, NextPage: 4, PreviousPage: 2, LastPage: 3, TotalItems: 5},
		},
		{
			name:  "empty catalog",
			page:  0,
			total: 0,
			want:  Pagination{CurrentPage: 1, NextPage: 2, LastPage: 1},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, NewPagination(tt.page, 2, tt.total))
		})
	}
}

func TestOffset(t *testing.T) {
	assert.Equal(t, 0, Offset(1, 2))
	assert.Equal(t, 4, Offset(3, 2))
	assert.Equal(t, 0, Offset(-2, 2))
}
