package helper

import (
	"errors"
	"fmt"
	"testing"

	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
)

func TestBuildPaginationFromPage(t *testing.T) {
	p := BuildPaginationFromPage(101, 2, 25)
	assert.Equal(t, 5, p.TotalPages)
	assert.True(t, p.HasNext)
	assert.True(t, p.HasPrev)

	p = BuildPaginationFromPage(0, 1, 25)
	assert.Equal(t, 1, p.TotalPages)
	assert.False(t, p.HasNext)
	assert.False(t, p.HasPrev)

	p = BuildPaginationFromPage(50, 2, 25)
	assert.False(t, p.HasNext)
}

func TestIsUniqueViolation(t *testing.T) {
	assert.True(t, IsUniqueViolation(&pq.Error{Code: "23505"}))
	assert.False(t, IsUniqueViolation(&pq.Error{Code: "23503"}))

	// sqlite phrases it differently
	assert.True(t, IsUniqueViolation(errors.New("UNIQUE constraint failed: fee_structures.fee_structure_id")))
	assert.True(t, IsUniqueViolation(fmt.Errorf("wrapped: %w", errors.New("duplicate key value violates unique constraint"))))
	assert.False(t, IsUniqueViolation(errors.New("connection refused")))
	assert.False(t, IsUniqueViolation(nil))
}
