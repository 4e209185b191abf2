package grading

import (
	"errors"

	"github.com/google/uuid"
	"github.com/phrazzld/scry-quiz/internal/domain"
)

// ErrNilQuestion is returned when Grade is called without a question.
var ErrNilQuestion = errors.New("question cannot be nil")

// Result is the outcome of grading one selection against one question.
type Result struct {
	QuestionID uuid.UUID `json:"question_id"`

	// CorrectIDs are the selected IDs of correct choices, in selection order.
	CorrectIDs []uuid.UUID `json:"correct_ids"`

	// IncorrectIDs are the selected IDs of choices flagged incorrect.
	IncorrectIDs []uuid.UUID `json:"incorrect_ids"`

	// MissedIDs are the correct choices that were not selected.
	MissedIDs []uuid.UUID `json:"missed_ids"`

	AwardedPoints float64 `json:"awarded_points"`
	MaxPoints     int     `json:"max_points"`
	FullyCorrect  bool    `json:"fully_correct"`
}

// Service defines the interface for grading operations.
type Service interface {
	// Grade scores the selected choice IDs against the question.
	// It fails with domain.ErrTooManySelections if the selection exceeds the
	// question's MaxSelections.
	Grade(q *domain.Question, selected []uuid.UUID) (*Result, error)

	// Policy returns the scoring policy in effect.
	Policy() Policy
}

// defaultService is the standard implementation of the Service interface
type defaultService struct {
	params *Params
}

// NewDefaultService creates a new grading service with default parameters
func NewDefaultService() Service {
	return &defaultService{
		params: NewDefaultParams(),
	}
}

// NewServiceWithParams creates a new grading service with custom parameters
func NewServiceWithParams(params *Params) (Service, error) {
	if params == nil {
		return NewDefaultService(), nil
	}
	if !params.Policy.Valid() {
		return nil, ErrInvalidPolicy
	}
	return &defaultService{params: params}, nil
}

// Policy implements the Service interface
func (s *defaultService) Policy() Policy {
	return s.params.Policy
}

// Grade implements the Service interface
func (s *defaultService) Grade(q *domain.Question, selected []uuid.UUID) (*Result, error) {
	if q == nil {
		return nil, ErrNilQuestion
	}

	hits, err := q.CorrectSelectedChoices(selected)
	if err != nil {
		return nil, err
	}

	result := &Result{
		QuestionID:   q.ID(),
		CorrectIDs:   hits,
		IncorrectIDs: incorrectSelections(q, selected),
		MissedIDs:    missedChoices(q, hits),
		MaxPoints:    q.Points(),
	}
	result.AwardedPoints = score(s.params.Policy, q.Points(), len(hits), len(q.CorrectChoiceIDs()), len(result.IncorrectIDs))
	result.FullyCorrect = len(hits) > 0 && len(result.MissedIDs) == 0 && len(result.IncorrectIDs) == 0

	return result, nil
}

// score is the pure scoring rule. A question without correct choices never
// awards points.
func score(policy Policy, points, hits, correct, incorrect int) float64 {
	if correct == 0 || incorrect > 0 || hits == 0 {
		return 0
	}

	if hits == correct {
		return float64(points)
	}

	if policy == PolicyPartial {
		return float64(points) * float64(hits) / float64(correct)
	}

	return 0
}

func incorrectSelections(q *domain.Question, selected []uuid.UUID) []uuid.UUID {
	seen := make(map[uuid.UUID]struct{}, len(selected))
	ids := make([]uuid.UUID, 0)
	for _, id := range selected {
		if _, dup := seen[id]; dup {
			continue
		}
		seen[id] = struct{}{}

		if c, ok := q.Choice(id); ok && !c.IsCorrect {
			ids = append(ids, id)
		}
	}
	return ids
}

func missedChoices(q *domain.Question, hits []uuid.UUID) []uuid.UUID {
	hit := make(map[uuid.UUID]struct{}, len(hits))
	for _, id := range hits {
		hit[id] = struct{}{}
	}

	ids := make([]uuid.UUID, 0)
	for _, id := range q.CorrectChoiceIDs() {
		if _, ok := hit[id]; !ok {
			ids = append(ids, id)
		}
	}
	return ids
}
