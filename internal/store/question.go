package store

import (
	"context"

	"github.com/google/uuid"
	"github.com/phrazzld/scry-quiz/internal/domain"
)

// QuestionStore defines the interface for keeping questions.
type QuestionStore interface {
	// Create adds a question to the store.
	// Returns ErrInvalidEntity (wrapping the domain error) if the question
	// fails validation, and ErrQuestionExists if its ID is already taken.
	Create(ctx context.Context, question *domain.Question) error

	// GetByID retrieves a question by its unique ID.
	// Returns ErrQuestionNotFound if the question does not exist.
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Question, error)

	// List returns all questions in the order they were created.
	List(ctx context.Context) ([]*domain.Question, error)

	// Update replaces the stored state of an existing question.
	// Returns ErrQuestionNotFound if the question does not exist and
	// ErrInvalidEntity if it fails validation.
	Update(ctx context.Context, question *domain.Question) error

	// Delete removes a question from the store by its ID.
	// Returns ErrQuestionNotFound if the question does not exist.
	Delete(ctx context.Context, id uuid.UUID) error
}
