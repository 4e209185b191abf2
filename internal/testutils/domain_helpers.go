package testutils

import (
	"context"
	"testing"

	"github.com/phrazzld/scry-quiz/internal/domain"
	"github.com/phrazzld/scry-quiz/internal/store"
	"github.com/stretchr/testify/require"
)

// ChoiceSpec describes a choice added by the question helpers.
type ChoiceSpec struct {
	Text      string
	IsCorrect bool
}

// Correct returns a ChoiceSpec for a correct choice.
func Correct(text string) ChoiceSpec { return ChoiceSpec{Text: text, IsCorrect: true} }

// Incorrect returns a ChoiceSpec for an incorrect choice.
func Incorrect(text string) ChoiceSpec { return ChoiceSpec{Text: text} }

// CreateTestQuestion creates a new valid question with the given choices.
// It does not save the question to any store.
func CreateTestQuestion(t *testing.T, title string, choices ...ChoiceSpec) *domain.Question {
	t.Helper()
	return CreateTestQuestionWithOptions(t, title, nil, choices...)
}

// CreateTestQuestionWithOptions is CreateTestQuestion with construction
// options such as domain.WithMaxSelections.
func CreateTestQuestionWithOptions(
	t *testing.T,
	title string,
	opts []domain.QuestionOption,
	choices ...ChoiceSpec,
) *domain.Question {
	t.Helper()

	q, err := domain.NewQuestion(title, opts...)
	require.NoError(t, err, "Failed to create test question")

	for _, c := range choices {
		_, err := q.AddChoice(c.Text, c.IsCorrect)
		require.NoError(t, err, "Failed to add test choice")
	}
	return q
}

// MustInsertQuestion creates a test question and stores it.
// Returns the inserted question.
func MustInsertQuestion(
	ctx context.Context,
	t *testing.T,
	questions store.QuestionStore,
	title string,
	choices ...ChoiceSpec,
) *domain.Question {
	t.Helper()

	q := CreateTestQuestion(t, title, choices...)
	err := questions.Create(ctx, q)
	require.NoError(t, err, "Failed to insert test question")

	return q
}
