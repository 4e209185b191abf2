package domain

import (
	"errors"
	"fmt"
)

// Common domain errors used across the application.
var (
	// ErrValidation is returned when a domain entity fails validation.
	// Every specific validation error below wraps it, so callers can test
	// for the whole class with errors.Is.
	ErrValidation = errors.New("validation failed")

	// ErrNotFound is returned when an operation references an entity that
	// does not exist inside its aggregate.
	ErrNotFound = errors.New("not found")
)

// Question validation errors.
var (
	ErrQuestionIDEmpty      = fmt.Errorf("%w: question ID cannot be empty", ErrValidation)
	ErrQuestionTitleEmpty   = fmt.Errorf("%w: question title cannot be empty", ErrValidation)
	ErrQuestionTitleTooLong = fmt.Errorf("%w: question title must be at most %d characters", ErrValidation, MaxTitleLength)
	ErrInvalidPoints        = fmt.Errorf("%w: points must be a positive integer", ErrValidation)
	ErrInvalidMaxSelections = fmt.Errorf("%w: max selections must be a positive integer", ErrValidation)

	// ErrTooManySelections is returned when more choice ids are submitted
	// than the question allows.
	ErrTooManySelections = fmt.Errorf("%w: too many selected choices", ErrValidation)
)

// Choice validation errors.
var (
	ErrChoiceIDEmpty     = fmt.Errorf("%w: choice ID cannot be empty", ErrValidation)
	ErrChoiceTextEmpty   = fmt.Errorf("%w: choice text cannot be empty", ErrValidation)
	ErrChoiceTextTooLong = fmt.Errorf("%w: choice text must be at most %d characters", ErrValidation, MaxChoiceTextLength)
	ErrDuplicateChoiceID = fmt.Errorf("%w: duplicate choice ID", ErrValidation)

	// ErrChoiceNotFound indicates that no choice with the given ID belongs
	// to the question.
	ErrChoiceNotFound = fmt.Errorf("%w: choice", ErrNotFound)
)
