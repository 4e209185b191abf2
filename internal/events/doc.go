// Package events provides the question event types and a synchronous
// in-memory emitter.
//
// Services emit a QuestionEvent after every successful change to a question
// and after every graded answer. Handlers subscribe without the service
// knowing about them.
//
// The primary components are:
// - QuestionEvent: what happened to which question
// - EventHandler: Interface for components that can handle events
// - EventEmitter: Interface for components that can emit events
// - NewLogHandler: handler that writes events to a slog.Logger
package events
