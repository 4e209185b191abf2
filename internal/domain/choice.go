package domain

import (
	"github.com/google/uuid"
)

// MaxChoiceTextLength is the maximum number of characters in a choice text.
const MaxChoiceTextLength = 100

// Choice is one selectable answer option of a Question.
// Choices have no lifecycle of their own: they are created, changed and
// removed only through the owning Question, which hands out copies.
type Choice struct {
	ID        uuid.UUID `json:"id"`
	Text      string    `json:"text"`
	IsCorrect bool      `json:"is_correct"`
}

// choiceFields mirrors the validated fields of a Choice.
type choiceFields struct {
	Text string `validate:"required,max=100"`
}

var choiceSentinels = map[string]error{
	"Text.required": ErrChoiceTextEmpty,
	"Text.max":      ErrChoiceTextTooLong,
}

// Validate checks if the Choice has valid data.
func (c Choice) Validate() error {
	if c.ID == uuid.Nil {
		return ErrChoiceIDEmpty
	}

	return validateChoiceText(c.Text)
}

func validateChoiceText(text string) error {
	return checkFields(choiceFields{Text: text}, choiceSentinels)
}
