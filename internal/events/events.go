package events

import (
	"context"
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// EventType names what happened to a question.
type EventType string

// Question lifecycle events.
const (
	QuestionCreated   EventType = "question.created"
	QuestionDeleted   EventType = "question.deleted"
	ChoiceAdded       EventType = "question.choice_added"
	ChoiceRemoved     EventType = "question.choice_removed"
	ChoicesCleared    EventType = "question.choices_cleared"
	CorrectChoicesSet EventType = "question.correct_choices_set"
	AnswerGraded      EventType = "question.answer_graded"
)

// QuestionEvent records a change to, or use of, a single question.
type QuestionEvent struct {
	// ID is a unique identifier for this event
	ID uuid.UUID `json:"id"`

	// Type indicates what happened
	Type EventType `json:"type"`

	// QuestionID identifies the question the event is about
	QuestionID uuid.UUID `json:"question_id"`

	// Payload contains the event-specific data serialized as JSON
	Payload json.RawMessage `json:"payload,omitempty"`

	// CreatedAt is the timestamp when the event was created
	CreatedAt time.Time `json:"created_at"`
}

// ChoicePayload describes a single choice in ChoiceAdded and ChoiceRemoved events.
type ChoicePayload struct {
	ChoiceID  uuid.UUID `json:"choice_id"`
	Text      string    `json:"text,omitempty"`
	IsCorrect bool      `json:"is_correct"`
}

// CorrectChoicesPayload lists the choices marked correct by a CorrectChoicesSet event.
type CorrectChoicesPayload struct {
	ChoiceIDs []uuid.UUID `json:"choice_ids"`
}

// AnswerGradedPayload summarizes a graded selection.
type AnswerGradedPayload struct {
	SelectedIDs   []uuid.UUID `json:"selected_ids"`
	CorrectIDs    []uuid.UUID `json:"correct_ids"`
	AwardedPoints float64     `json:"awarded_points"`
	MaxPoints     int         `json:"max_points"`
}

// UnmarshalPayload decodes the event payload into the provided structure.
func (e *QuestionEvent) UnmarshalPayload(v interface{}) error {
	return json.Unmarshal(e.Payload, v)
}

// NewQuestionEvent creates a new QuestionEvent with the specified type and payload.
// A nil payload leaves the Payload field empty.
func NewQuestionEvent(eventType EventType, questionID uuid.UUID, payload interface{}) (*QuestionEvent, error) {
	var payloadBytes json.RawMessage
	if payload != nil {
		b, err := json.Marshal(payload)
		if err != nil {
			return nil, err
		}
		payloadBytes = b
	}

	return &QuestionEvent{
		ID:         uuid.New(),
		Type:       eventType,
		QuestionID: questionID,
		Payload:    payloadBytes,
		CreatedAt:  time.Now().UTC(),
	}, nil
}

// EventHandler defines an interface for components that can handle events.
type EventHandler interface {
	// HandleEvent processes the given event within the provided context.
	// Returns an error if the event cannot be handled successfully.
	HandleEvent(ctx context.Context, event *QuestionEvent) error
}

// HandlerFunc adapts an ordinary function to the EventHandler interface.
type HandlerFunc func(ctx context.Context, event *QuestionEvent) error

// HandleEvent calls f(ctx, event).
func (f HandlerFunc) HandleEvent(ctx context.Context, event *QuestionEvent) error {
	return f(ctx, event)
}

// EventEmitter defines an interface for components that can emit events.
// This allows services to publish events without direct knowledge of handlers.
type EventEmitter interface {
	// EmitEvent publishes the given event to all registered handlers.
	// Returns an error if the event cannot be emitted.
	EmitEvent(ctx context.Context, event *QuestionEvent) error
}
