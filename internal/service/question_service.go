package service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/phrazzld/scry-quiz/internal/domain"
	"github.com/phrazzld/scry-quiz/internal/domain/grading"
	"github.com/phrazzld/scry-quiz/internal/events"
	"github.com/phrazzld/scry-quiz/internal/platform/logger"
	"github.com/phrazzld/scry-quiz/internal/store"
)

// ChoiceParams describes a choice to add while creating a question.
type ChoiceParams struct {
	Text      string
	IsCorrect bool
}

// CreateQuestionParams describes a new question. Zero Points or
// MaxSelections take the service defaults.
type CreateQuestionParams struct {
	Title         string
	Points        int
	MaxSelections int
	Choices       []ChoiceParams
}

// QuestionService provides question-related operations
type QuestionService interface {
	// CreateQuestion builds a question together with its initial choices and
	// stores it. Nothing is stored if any part is invalid.
	CreateQuestion(ctx context.Context, params CreateQuestionParams) (*domain.Question, error)

	// GetQuestion retrieves a question by its ID
	GetQuestion(ctx context.Context, questionID uuid.UUID) (*domain.Question, error)

	// ListQuestions returns every question in creation order
	ListQuestions(ctx context.Context) ([]*domain.Question, error)

	// DeleteQuestion removes a question
	DeleteQuestion(ctx context.Context, questionID uuid.UUID) error

	// AddChoice appends a choice to a question
	AddChoice(ctx context.Context, questionID uuid.UUID, text string, isCorrect bool) (domain.Choice, error)

	// RemoveChoice removes one choice from a question
	RemoveChoice(ctx context.Context, questionID, choiceID uuid.UUID) error

	// RemoveAllChoices removes every choice from a question
	RemoveAllChoices(ctx context.Context, questionID uuid.UUID) error

	// SetCorrectChoices marks exactly the given choices as correct
	SetCorrectChoices(ctx context.Context, questionID uuid.UUID, choiceIDs []uuid.UUID) error

	// GradeAnswer scores a selection of choice IDs against a question
	GradeAnswer(ctx context.Context, questionID uuid.UUID, selected []uuid.UUID) (*grading.Result, error)
}

// QuestionServiceOption customizes a QuestionService.
type QuestionServiceOption func(*questionServiceImpl)

// WithQuestionDefaults sets the points and max selections used when
// CreateQuestionParams leaves them zero. Non-positive values are ignored.
func WithQuestionDefaults(points, maxSelections int) QuestionServiceOption {
	return func(s *questionServiceImpl) {
		if points > 0 {
			s.defaultPoints = points
		}
		if maxSelections > 0 {
			s.defaultMaxSelections = maxSelections
		}
	}
}

// WithIDGenerator sets the generator handed to every question the service
// creates.
func WithIDGenerator(ids domain.IDGenerator) QuestionServiceOption {
	return func(s *questionServiceImpl) {
		s.ids = ids
	}
}

// questionServiceImpl implements the QuestionService interface
type questionServiceImpl struct {
	questions            store.QuestionStore
	grader               grading.Service
	emitter              events.EventEmitter
	logger               *slog.Logger
	ids                  domain.IDGenerator
	defaultPoints        int
	defaultMaxSelections int
}

// NewQuestionService creates a new QuestionService.
// It returns an error if any of the required dependencies are nil.
func NewQuestionService(
	questions store.QuestionStore,
	grader grading.Service,
	emitter events.EventEmitter,
	logger *slog.Logger,
	opts ...QuestionServiceOption,
) (QuestionService, error) {
	if questions == nil {
		return nil, fmt.Errorf("%w: question store", ErrMissingDependency)
	}
	if grader == nil {
		return nil, fmt.Errorf("%w: grading service", ErrMissingDependency)
	}
	if emitter == nil {
		return nil, fmt.Errorf("%w: event emitter", ErrMissingDependency)
	}

	if logger == nil {
		logger = slog.Default()
	}

	s := &questionServiceImpl{
		questions:            questions,
		grader:               grader,
		emitter:              emitter,
		logger:               logger.With(slog.String("component", "question_service")),
		defaultPoints:        domain.DefaultPoints,
		defaultMaxSelections: domain.DefaultMaxSelections,
	}
	for _, opt := range opts {
		opt(s)
	}

	return s, nil
}

// CreateQuestion implements QuestionService.CreateQuestion
func (s *questionServiceImpl) CreateQuestion(
	ctx context.Context,
	params CreateQuestionParams,
) (*domain.Question, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	points := params.Points
	if points == 0 {
		points = s.defaultPoints
	}
	maxSelections := params.MaxSelections
	if maxSelections == 0 {
		maxSelections = s.defaultMaxSelections
	}

	q, err := domain.NewQuestion(params.Title,
		domain.WithPoints(points),
		domain.WithMaxSelections(maxSelections),
		domain.WithIDGenerator(s.ids),
	)
	if err != nil {
		log.Debug("rejected question", slog.String("error", err.Error()))
		return nil, NewQuestionServiceError("create_question", "invalid question", err)
	}

	for i, c := range params.Choices {
		if _, err := q.AddChoice(c.Text, c.IsCorrect); err != nil {
			log.Debug("rejected choice",
				slog.Int("choice_index", i),
				slog.String("error", err.Error()))
			return nil, NewQuestionServiceError("create_question",
				fmt.Sprintf("invalid choice %d", i+1), err)
		}
	}

	if err := s.questions.Create(ctx, q); err != nil {
		log.Error("failed to store question",
			slog.String("question_id", q.ID().String()),
			slog.String("error", err.Error()))
		return nil, NewQuestionServiceError("create_question", "failed to store question", err)
	}

	log.Info("question created",
		slog.String("question_id", q.ID().String()),
		slog.Int("choice_count", len(params.Choices)),
		slog.Int("points", q.Points()),
		slog.Int("max_selections", q.MaxSelections()))

	s.emit(ctx, events.QuestionCreated, q.ID(), nil)
	return q, nil
}

// GetQuestion implements QuestionService.GetQuestion
func (s *questionServiceImpl) GetQuestion(ctx context.Context, questionID uuid.UUID) (*domain.Question, error) {
	q, err := s.questions.GetByID(ctx, questionID)
	if err != nil {
		return nil, s.lookupError(ctx, "get_question", questionID, err)
	}
	return q, nil
}

// ListQuestions implements QuestionService.ListQuestions
func (s *questionServiceImpl) ListQuestions(ctx context.Context) ([]*domain.Question, error) {
	qs, err := s.questions.List(ctx)
	if err != nil {
		return nil, NewQuestionServiceError("list_questions", "failed to list questions", err)
	}
	return qs, nil
}

// DeleteQuestion implements QuestionService.DeleteQuestion
func (s *questionServiceImpl) DeleteQuestion(ctx context.Context, questionID uuid.UUID) error {
	if err := s.questions.Delete(ctx, questionID); err != nil {
		return s.lookupError(ctx, "delete_question", questionID, err)
	}

	logger.FromContextOrDefault(ctx, s.logger).Info("question deleted",
		slog.String("question_id", questionID.String()))
	s.emit(ctx, events.QuestionDeleted, questionID, nil)
	return nil
}

// AddChoice implements QuestionService.AddChoice
func (s *questionServiceImpl) AddChoice(
	ctx context.Context,
	questionID uuid.UUID,
	text string,
	isCorrect bool,
) (domain.Choice, error) {
	var choice domain.Choice
	err := s.mutate(ctx, "add_choice", questionID, func(q *domain.Question) error {
		var err error
		choice, err = q.AddChoice(text, isCorrect)
		return err
	})
	if err != nil {
		return domain.Choice{}, err
	}

	s.emit(ctx, events.ChoiceAdded, questionID, events.ChoicePayload{
		ChoiceID:  choice.ID,
		Text:      choice.Text,
		IsCorrect: choice.IsCorrect,
	})
	return choice, nil
}

// RemoveChoice implements QuestionService.RemoveChoice
func (s *questionServiceImpl) RemoveChoice(ctx context.Context, questionID, choiceID uuid.UUID) error {
	err := s.mutate(ctx, "remove_choice", questionID, func(q *domain.Question) error {
		return q.RemoveChoiceByID(choiceID)
	})
	if err != nil {
		return err
	}

	s.emit(ctx, events.ChoiceRemoved, questionID, events.ChoicePayload{ChoiceID: choiceID})
	return nil
}

// RemoveAllChoices implements QuestionService.RemoveAllChoices
func (s *questionServiceImpl) RemoveAllChoices(ctx context.Context, questionID uuid.UUID) error {
	err := s.mutate(ctx, "remove_all_choices", questionID, func(q *domain.Question) error {
		q.RemoveAllChoices()
		return nil
	})
	if err != nil {
		return err
	}

	s.emit(ctx, events.ChoicesCleared, questionID, nil)
	return nil
}

// SetCorrectChoices implements QuestionService.SetCorrectChoices
func (s *questionServiceImpl) SetCorrectChoices(
	ctx context.Context,
	questionID uuid.UUID,
	choiceIDs []uuid.UUID,
) error {
	var correct []uuid.UUID
	err := s.mutate(ctx, "set_correct_choices", questionID, func(q *domain.Question) error {
		q.SetCorrectChoices(choiceIDs...)
		correct = q.CorrectChoiceIDs()
		return nil
	})
	if err != nil {
		return err
	}

	s.emit(ctx, events.CorrectChoicesSet, questionID, events.CorrectChoicesPayload{ChoiceIDs: correct})
	return nil
}

// GradeAnswer implements QuestionService.GradeAnswer
func (s *questionServiceImpl) GradeAnswer(
	ctx context.Context,
	questionID uuid.UUID,
	selected []uuid.UUID,
) (*grading.Result, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	q, err := s.questions.GetByID(ctx, questionID)
	if err != nil {
		return nil, s.lookupError(ctx, "grade_answer", questionID, err)
	}

	result, err := s.grader.Grade(q, selected)
	if err != nil {
		log.Debug("rejected answer",
			slog.String("question_id", questionID.String()),
			slog.Int("selection_count", len(selected)),
			slog.String("error", err.Error()))
		return nil, NewQuestionServiceError("grade_answer", "invalid selection", err)
	}

	log.Info("answer graded",
		slog.String("question_id", questionID.String()),
		slog.String("policy", string(s.grader.Policy())),
		slog.Float64("awarded_points", result.AwardedPoints),
		slog.Int("max_points", result.MaxPoints))

	s.emit(ctx, events.AnswerGraded, questionID, events.AnswerGradedPayload{
		SelectedIDs:   selected,
		CorrectIDs:    result.CorrectIDs,
		AwardedPoints: result.AwardedPoints,
		MaxPoints:     result.MaxPoints,
	})
	return result, nil
}

// mutate loads a question, applies change to a copy of it and writes the
// copy back. Nothing is kept unless both change and the store update succeed.
func (s *questionServiceImpl) mutate(
	ctx context.Context,
	operation string,
	questionID uuid.UUID,
	change func(q *domain.Question) error,
) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	stored, err := s.questions.GetByID(ctx, questionID)
	if err != nil {
		return s.lookupError(ctx, operation, questionID, err)
	}

	q := stored.Clone()
	if err := change(q); err != nil {
		log.Debug("question change rejected",
			slog.String("operation", operation),
			slog.String("question_id", questionID.String()),
			slog.String("error", err.Error()))
		return NewQuestionServiceError(operation, "invalid change", err)
	}

	if err := s.questions.Update(ctx, q); err != nil {
		log.Error("failed to update question",
			slog.String("operation", operation),
			slog.String("question_id", questionID.String()),
			slog.String("error", err.Error()))
		return NewQuestionServiceError(operation, "failed to update question", err)
	}

	log.Debug("question updated",
		slog.String("operation", operation),
		slog.String("question_id", questionID.String()),
		slog.Int("choice_count", len(q.Choices())))
	return nil
}

// lookupError wraps a failed store lookup. A missing question is an expected
// outcome and is logged at debug level; anything else is an error.
func (s *questionServiceImpl) lookupError(
	ctx context.Context,
	operation string,
	questionID uuid.UUID,
	err error,
) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if store.IsNotFoundError(err) {
		log.Debug("question not found",
			slog.String("operation", operation),
			slog.String("question_id", questionID.String()))
		return NewQuestionServiceError(operation, "question not found", err)
	}

	log.Error("failed to retrieve question",
		slog.String("operation", operation),
		slog.String("question_id", questionID.String()),
		slog.String("error", err.Error()))
	return NewQuestionServiceError(operation, "failed to retrieve question", err)
}

// emit publishes an event. Handler failures are logged and do not undo the
// change that has already been applied.
func (s *questionServiceImpl) emit(
	ctx context.Context,
	eventType events.EventType,
	questionID uuid.UUID,
	payload interface{},
) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	event, err := events.NewQuestionEvent(eventType, questionID, payload)
	if err != nil {
		log.Error("failed to build event",
			slog.String("event_type", string(eventType)),
			slog.String("error", err.Error()))
		return
	}

	if err := s.emitter.EmitEvent(ctx, event); err != nil {
		log.Warn("event handler failed",
			slog.String("event_type", string(eventType)),
			slog.String("event_id", event.ID.String()),
			slog.String("error", err.Error()))
	}
}
