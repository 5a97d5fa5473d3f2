package errors

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromErrorPassesThroughTypedError(t *testing.T) {
	original := Clone(ErrNotFound, "grade not found")
	wrapped := fmt.Errorf("service: %w", original)

	got := FromError(wrapped)
	assert.Equal(t, ErrNotFound.Code, got.Code)
	assert.Equal(t, "grade not found", got.Message)
	assert.Equal(t, http.StatusNotFound, got.Status)
}

func TestFromErrorMapsUniqueViolation(t *testing.T) {
	pqErr := &pq.Error{Code: "23505"}

	got := FromError(fmt.Errorf("insert: %w", pqErr))
	assert.Equal(t, ErrConflict.Code, got.Code)
	assert.Equal(t, http.StatusConflict, got.Status)
}

func TestFromErrorDefaultsToInternal(t *testing.T) {
	got := FromError(fmt.Errorf("something odd"))
	assert.Equal(t, ErrInternal.Code, got.Code)
	assert.Equal(t, http.StatusInternalServerError, got.Status)
}

func TestViolationHelpers(t *testing.T) {
	unique := fmt.Errorf("wrap: %w", &pq.Error{Code: "23505"})
	fk := fmt.Errorf("wrap: %w", &pq.Error{Code: "23503"})
	check := fmt.Errorf("wrap: %w", &pq.Error{Code: "23514"})

	assert.True(t, IsUniqueViolation(unique))
	assert.False(t, IsUniqueViolation(fk))
	assert.True(t, IsForeignKeyViolation(fk))
	assert.True(t, IsCheckViolation(check))
	assert.False(t, IsCheckViolation(nil))
}

func TestCloneDoesNotMutateSentinel(t *testing.T) {
	clone := Clone(ErrValidation, "score out of range")
	require.NotSame(t, ErrValidation, clone)
	assert.Equal(t, "score out of range", clone.Message)
	assert.Equal(t, "validation failed", ErrValidation.Message)
}
