package memory

import (
	"context"
	"fmt"
	"log/slog"
	"slices"

	"github.com/google/uuid"
	"github.com/phrazzld/scry-quiz/internal/domain"
	"github.com/phrazzld/scry-quiz/internal/store"
)

// QuestionStore implements the store.QuestionStore interface
// using a map held in process memory. Questions are copied on the way in
// and on the way out, so changes reach the store only through Update.
type QuestionStore struct {
	questions map[uuid.UUID]*domain.Question
	order     []uuid.UUID
	logger    *slog.Logger
}

// NewQuestionStore creates an empty in-memory QuestionStore.
// If logger is nil, a default logger will be used.
func NewQuestionStore(logger *slog.Logger) *QuestionStore {
	if logger == nil {
		logger = slog.Default()
	}

	return &QuestionStore{
		questions: make(map[uuid.UUID]*domain.Question),
		order:     make([]uuid.UUID, 0),
		logger:    logger.With(slog.String("component", "question_store")),
	}
}

// Ensure QuestionStore implements store.QuestionStore interface
var _ store.QuestionStore = (*QuestionStore)(nil)

// Create implements store.QuestionStore.Create
func (s *QuestionStore) Create(ctx context.Context, question *domain.Question) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	if err := validate(question); err != nil {
		s.logger.WarnContext(ctx, "rejected invalid question", slog.String("error", err.Error()))
		return store.NewStoreError("question", "create", "validation failed", err)
	}

	id := question.ID()
	if _, exists := s.questions[id]; exists {
		return store.NewStoreError("question", "create", "duplicate id", store.ErrQuestionExists)
	}

	s.questions[id] = question.Clone()
	s.order = append(s.order, id)

	s.logger.DebugContext(ctx, "question stored",
		slog.String("question_id", id.String()),
		slog.Int("question_count", len(s.order)))
	return nil
}

// GetByID implements store.QuestionStore.GetByID
func (s *QuestionStore) GetByID(ctx context.Context, id uuid.UUID) (*domain.Question, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	question, ok := s.questions[id]
	if !ok {
		return nil, store.NewStoreError("question", "get", "lookup failed", store.ErrQuestionNotFound)
	}
	return question.Clone(), nil
}

// List implements store.QuestionStore.List
func (s *QuestionStore) List(ctx context.Context) ([]*domain.Question, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	questions := make([]*domain.Question, 0, len(s.order))
	for _, id := range s.order {
		questions = append(questions, s.questions[id].Clone())
	}
	return questions, nil
}

// Update implements store.QuestionStore.Update
func (s *QuestionStore) Update(ctx context.Context, question *domain.Question) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	if err := validate(question); err != nil {
		return store.NewStoreError("question", "update", "validation failed", err)
	}

	id := question.ID()
	if _, ok := s.questions[id]; !ok {
		return store.NewStoreError("question", "update", "lookup failed", store.ErrQuestionNotFound)
	}

	s.questions[id] = question.Clone()
	return nil
}

// Delete implements store.QuestionStore.Delete
func (s *QuestionStore) Delete(ctx context.Context, id uuid.UUID) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	if _, ok := s.questions[id]; !ok {
		return store.NewStoreError("question", "delete", "lookup failed", store.ErrQuestionNotFound)
	}

	delete(s.questions, id)
	s.order = slices.DeleteFunc(s.order, func(other uuid.UUID) bool { return other == id })

	s.logger.DebugContext(ctx, "question deleted", slog.String("question_id", id.String()))
	return nil
}

func validate(question *domain.Question) error {
	if question == nil {
		return fmt.Errorf("%w: question is nil", store.ErrInvalidEntity)
	}
	if err := question.Validate(); err != nil {
		return fmt.Errorf("%w: %w", store.ErrInvalidEntity, err)
	}
	return nil
}
