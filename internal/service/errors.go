package service

import (
	"errors"
	"fmt"
)

// ErrMissingDependency is returned by constructors when a required
// dependency is nil.
var ErrMissingDependency = errors.New("required dependency is nil")

// QuestionServiceError is a custom error type for question service errors.
// It records the failed operation and wraps the underlying domain or store
// error, so callers can still check it with errors.Is:
//
//	if errors.Is(err, store.ErrQuestionNotFound) { ... }
//	if errors.Is(err, domain.ErrValidation) { ... }
type QuestionServiceError struct {
	Operation string
	Message   string
	Err       error
}

// Error implements the error interface for QuestionServiceError.
func (e *QuestionServiceError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("question service %s failed: %s: %v", e.Operation, e.Message, e.Err)
	}
	return fmt.Sprintf("question service %s failed: %s", e.Operation, e.Message)
}

// Unwrap returns the wrapped error to support errors.Is/errors.As.
func (e *QuestionServiceError) Unwrap() error {
	return e.Err
}

// NewQuestionServiceError creates a new QuestionServiceError.
func NewQuestionServiceError(operation, message string, err error) *QuestionServiceError {
	return &QuestionServiceError{
		Operation: operation,
		Message:   message,
		Err:       err,
	}
}
