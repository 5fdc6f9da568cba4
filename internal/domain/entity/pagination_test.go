package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewPage(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		page     int
		perPage  int
		expected Page
	}{
		{name: "defaults", page: 0, perPage: 0, expected: Page{Page: 1, PerPage: 20}},
		{name: "clamped to max", page: 2, perPage: 500, expected: Page{Page: 2, PerPage: 50}},
		{name: "negative page", page: -3, perPage: 10, expected: Page{Page: 1, PerPage: 10}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.expected, NewPage(tt.page, tt.perPage, 20, 50))
		})
	}

	assert.Equal(t, 40, Page{Page: 3, PerPage: 20}.Offset())
}

func TestNewPagination(t *testing.T) {
	t.Parallel()

	p := NewPagination(Page{Page: 2, PerPage: 20}, 45)

	assert.Equal(t, 3, p.Pages)
	assert.True(t, p.HasNext)
	assert.True(t, p.HasPrev)

	last := NewPagination(Page{Page: 3, PerPage: 20}, 45)
	assert.False(t, last.HasNext)

	empty := NewPagination(Page{Page: 1, PerPage: 20}, 0)
	assert.Zero(t, empty.Pages)
	assert.False(t, empty.HasNext)
	assert.False(t, empty.HasPrev)
}
