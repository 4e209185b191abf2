package bank

import (
	"context"
	"io"
	"log/slog"
	"strings"
	"testing"

	"github.com/phrazzld/scry-quiz/internal/domain"
	"github.com/phrazzld/scry-quiz/internal/domain/grading"
	"github.com/phrazzld/scry-quiz/internal/events"
	"github.com/phrazzld/scry-quiz/internal/platform/logger"
	"github.com/phrazzld/scry-quiz/internal/platform/memory"
	"github.com/phrazzld/scry-quiz/internal/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newService(t *testing.T) service.QuestionService {
	t.Helper()

	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	svc, err := service.NewQuestionService(
		memory.NewQuestionStore(log),
		grading.NewDefaultService(),
		events.NewInMemoryEventEmitter(log),
		log,
	)
	require.NoError(t, err)
	return svc
}

func quietContext() context.Context {
	return logger.WithLogger(context.Background(), slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func TestImport(t *testing.T) {
	t.Parallel()

	b, err := Parse([]byte(`questions:
  - title: "2 + 2?"
    choices:
      - text: "4"
        correct: true
      - text: "5"
  - title: "Pick the primes"
    points: 3
    max_selections: 2
    choices:
      - text: "2"
        correct: true
      - text: "3"
        correct: true
      - text: "4"
`), "bank.yaml")
	require.NoError(t, err)

	ctx := quietContext()
	svc := newService(t)

	questions, err := Import(ctx, svc, b)
	require.NoError(t, err)
	require.Len(t, questions, 2)

	assert.Equal(t, "2 + 2?", questions[0].Title())
	assert.Equal(t, domain.DefaultPoints, questions[0].Points())
	assert.False(t, questions[0].IsMultiSelect())
	assert.Len(t, questions[0].CorrectChoiceIDs(), 1)

	assert.Equal(t, 3, questions[1].Points())
	assert.True(t, questions[1].IsMultiSelect())
	assert.Len(t, questions[1].CorrectChoiceIDs(), 2)

	stored, err := svc.ListQuestions(ctx)
	require.NoError(t, err)
	assert.Len(t, stored, 2)
}

func TestImportReportsFailingQuestionAndRollsBack(t *testing.T) {
	t.Parallel()

	b := &Bank{Questions: []QuestionSpec{
		{Title: "fine", Choices: []ChoiceSpec{{Text: "a", Correct: true}}},
		{Title: "also fine"},
		{Title: "bad choice", Choices: []ChoiceSpec{{Text: strings.Repeat("x", domain.MaxChoiceTextLength+1)}}},
	}}

	ctx := quietContext()
	svc := newService(t)

	questions, err := Import(ctx, svc, b)
	require.Error(t, err)
	assert.Nil(t, questions)
	assert.True(t, strings.HasPrefix(err.Error(), "question 3: "), err.Error())
	assert.ErrorIs(t, err, domain.ErrChoiceTextTooLong)
	assert.ErrorIs(t, err, domain.ErrValidation)

	stored, err := svc.ListQuestions(ctx)
	require.NoError(t, err)
	assert.Empty(t, stored)
}

func TestImportRejectsInvalidPoints(t *testing.T) {
	t.Parallel()

	b := &Bank{Questions: []QuestionSpec{{Title: "q", Points: -1}}}

	_, err := Import(quietContext(), newService(t), b)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "question 1: ")
	assert.ErrorIs(t, err, domain.ErrInvalidPoints)
}
