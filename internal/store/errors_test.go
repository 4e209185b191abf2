package store

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsNotFoundError(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected bool
	}{
		{
			name:     "nil error",
			err:      nil,
			expected: false,
		},
		{
			name:     "generic error",
			err:      errors.New("some error"),
			expected: false,
		},
		{
			name:     "ErrNotFound",
			err:      ErrNotFound,
			expected: true,
		},
		{
			name:     "ErrQuestionNotFound",
			err:      ErrQuestionNotFound,
			expected: true,
		},
		{
			name:     "wrapped ErrQuestionNotFound",
			err:      fmt.Errorf("failed to get question: %w", ErrQuestionNotFound),
			expected: true,
		},
		{
			name:     "store error wrapping ErrQuestionNotFound",
			err:      NewStoreError("question", "delete", "missing", ErrQuestionNotFound),
			expected: true,
		},
		{
			name:     "ErrQuestionExists",
			err:      ErrQuestionExists,
			expected: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, IsNotFoundError(tt.err))
		})
	}
}

func TestIsDuplicateError(t *testing.T) {
	assert.True(t, IsDuplicateError(ErrQuestionExists))
	assert.True(t, IsDuplicateError(fmt.Errorf("wrapped: %w", ErrDuplicate)))
	assert.False(t, IsDuplicateError(ErrQuestionNotFound))
	assert.False(t, IsDuplicateError(nil))
}

func TestStoreError(t *testing.T) {
	inner := errors.New("boom")

	err := NewStoreError("question", "create", "validation failed", inner)
	assert.Equal(t, "create operation on question failed: validation failed: boom", err.Error())
	assert.ErrorIs(t, err, inner)

	bare := NewStoreError("question", "list", "unavailable", nil)
	assert.Equal(t, "list operation on question failed: unavailable", bare.Error())
	assert.Nil(t, errors.Unwrap(bare))
}
