package testutils

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/phrazzld/scry-quiz/internal/events"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEventRecorder(t *testing.T) {
	t.Parallel()

	recorder := &EventRecorder{}
	assert.Empty(t, recorder.Events())

	first, err := events.NewQuestionEvent(events.QuestionCreated, uuid.New(), nil)
	require.NoError(t, err)
	second, err := events.NewQuestionEvent(events.AnswerGraded, first.QuestionID, events.AnswerGradedPayload{MaxPoints: 1})
	require.NoError(t, err)

	emitter := events.NewInMemoryEventEmitter(nil)
	emitter.RegisterHandler(recorder)
	require.NoError(t, emitter.EmitEvent(context.Background(), first))
	require.NoError(t, emitter.EmitEvent(context.Background(), second))

	assert.Equal(t, []*events.QuestionEvent{first, second}, recorder.Events())
	assert.Equal(t, []events.EventType{events.QuestionCreated, events.AnswerGraded}, recorder.Types())

	var payload events.AnswerGradedPayload
	require.NoError(t, recorder.Events()[1].UnmarshalPayload(&payload))
	assert.Equal(t, 1, payload.MaxPoints)
}
