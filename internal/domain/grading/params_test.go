package grading

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParsePolicy(t *testing.T) {
	t.Parallel()

	p, err := ParsePolicy("partial")
	require.NoError(t, err)
	assert.Equal(t, PolicyPartial, p)

	p, err = ParsePolicy(" ALL_OR_NOTHING ")
	require.NoError(t, err)
	assert.Equal(t, PolicyAllOrNothing, p)

	_, err = ParsePolicy("bell_curve")
	assert.ErrorIs(t, err, ErrInvalidPolicy)
}

func TestNewDefaultParams(t *testing.T) {
	t.Parallel()

	assert.Equal(t, PolicyAllOrNothing, NewDefaultParams().Policy)
}
