package request

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPaginatedRequest(t *testing.T) {
	assert.Equal(t, 0, PaginatedRequest{Page: 1, PerPage: 10}.Offset())
	assert.Equal(t, 20, PaginatedRequest{Page: 3, PerPage: 10}.Offset())
	assert.Equal(t, DefaultPerPage, PaginatedRequest{}.Limit())
	assert.Equal(t, MaxPerPage, PaginatedRequest{PerPage: 500}.Limit())
	assert.Equal(t, 0, PaginatedRequest{Page: 0, PerPage: 10}.Offset())
}
