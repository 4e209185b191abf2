package testutils

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/phrazzld/scry-quiz/internal/domain"
	"github.com/phrazzld/scry-quiz/internal/platform/memory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateTestQuestion(t *testing.T) {
	t.Parallel()

	q := CreateTestQuestion(t, "q1", Correct("a"), Incorrect("b"))

	assert.Equal(t, "q1", q.Title())
	require.Len(t, q.Choices(), 2)
	assert.Equal(t, []string{"a", "b"}, []string{q.Choices()[0].Text, q.Choices()[1].Text})
	assert.Equal(t, []bool{true, false}, []bool{q.Choices()[0].IsCorrect, q.Choices()[1].IsCorrect})

	multi := CreateTestQuestionWithOptions(t, "q2", []domain.QuestionOption{domain.WithMaxSelections(3)})
	assert.Equal(t, 3, multi.MaxSelections())
	assert.Empty(t, multi.Choices())
}

func TestMustInsertQuestion(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	questions := memory.NewQuestionStore(slog.New(slog.NewTextHandler(io.Discard, nil)))

	q := MustInsertQuestion(ctx, t, questions, "q1", Correct("a"))

	got, err := questions.GetByID(ctx, q.ID())
	require.NoError(t, err)
	assert.Equal(t, q.ID(), got.ID())
}
