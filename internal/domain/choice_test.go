package domain

import (
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestChoiceValidate(t *testing.T) {
	t.Parallel()

	valid := Choice{ID: uuid.New(), Text: "Go"}
	assert.NoError(t, valid.Validate())

	invalid := valid
	invalid.ID = uuid.Nil
	assert.ErrorIs(t, invalid.Validate(), ErrChoiceIDEmpty)

	invalid = valid
	invalid.Text = ""
	assert.ErrorIs(t, invalid.Validate(), ErrChoiceTextEmpty)

	invalid = valid
	invalid.Text = strings.Repeat("x", MaxChoiceTextLength+1)
	assert.ErrorIs(t, invalid.Validate(), ErrChoiceTextTooLong)
}
