package testutils

import (
	"context"
	"sync"

	"github.com/phrazzld/scry-quiz/internal/events"
)

// EventRecorder is an events.EventHandler that keeps every event it receives.
type EventRecorder struct {
	mu     sync.Mutex
	events []*events.QuestionEvent
}

var _ events.EventHandler = (*EventRecorder)(nil)

// HandleEvent implements events.EventHandler.
func (r *EventRecorder) HandleEvent(_ context.Context, event *events.QuestionEvent) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, event)
	return nil
}

// Events returns the recorded events in arrival order.
func (r *EventRecorder) Events() []*events.QuestionEvent {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]*events.QuestionEvent, len(r.events))
	copy(out, r.events)
	return out
}

// Types returns the types of the recorded events in arrival order.
func (r *EventRecorder) Types() []events.EventType {
	recorded := r.Events()
	types := make([]events.EventType, len(recorded))
	for i, e := range recorded {
		types[i] = e.Type
	}
	return types
}
