package domain

import (
	"encoding/json"
	"slices"

	"github.com/google/uuid"
)

// Question limits and defaults.
const (
	MaxTitleLength       = 200
	DefaultPoints        = 1
	DefaultMaxSelections = 1
)

// Question is a multiple-choice assessment item and the aggregate root for
// its choices. Every mutating method validates its input before changing
// state, so a failed call leaves the question untouched.
//
// A Question is not safe for concurrent use.
type Question struct {
	id            uuid.UUID
	title         string
	points        int
	maxSelections int
	choices       []Choice
	ids           IDGenerator
}

// QuestionOption customizes a Question at construction time.
type QuestionOption func(*Question)

// WithPoints sets the number of points the question is worth.
func WithPoints(points int) QuestionOption {
	return func(q *Question) { q.points = points }
}

// WithMaxSelections sets how many choices a respondent may select.
func WithMaxSelections(n int) QuestionOption {
	return func(q *Question) { q.maxSelections = n }
}

// WithIDGenerator sets the generator used for the question ID and for the
// IDs of every choice added later. A nil generator is ignored.
func WithIDGenerator(g IDGenerator) QuestionOption {
	return func(q *Question) {
		if g != nil {
			q.ids = g
		}
	}
}

// questionFields mirrors the validated scalar fields of a Question.
type questionFields struct {
	Title         string `validate:"required,max=200"`
	Points        int    `validate:"gte=1"`
	MaxSelections int    `validate:"gte=1"`
}

var questionSentinels = map[string]error{
	"Title.required":    ErrQuestionTitleEmpty,
	"Title.max":         ErrQuestionTitleTooLong,
	"Points.gte":        ErrInvalidPoints,
	"MaxSelections.gte": ErrInvalidMaxSelections,
}

// NewQuestion creates a new Question with the given title. Points and max
// selections default to 1. The ID is taken from the configured IDGenerator
// (random UUIDs unless WithIDGenerator is given).
// Returns an error wrapping ErrValidation if any field is invalid.
func NewQuestion(title string, opts ...QuestionOption) (*Question, error) {
	q := &Question{
		title:         title,
		points:        DefaultPoints,
		maxSelections: DefaultMaxSelections,
		choices:       make([]Choice, 0),
		ids:           defaultIDGenerator,
	}
	for _, opt := range opts {
		opt(q)
	}

	if err := q.validateFields(); err != nil {
		return nil, err
	}

	q.id = q.ids.NewID()
	return q, nil
}

// ID returns the question's immutable identifier.
func (q *Question) ID() uuid.UUID { return q.id }

// Title returns the question title.
func (q *Question) Title() string { return q.title }

// Points returns how many points the question is worth.
func (q *Question) Points() int { return q.points }

// MaxSelections returns how many choices may be submitted when answering.
func (q *Question) MaxSelections() int { return q.maxSelections }

// IsMultiSelect reports whether more than one choice may be selected.
func (q *Question) IsMultiSelect() bool { return q.maxSelections > 1 }

// Choices returns a copy of the question's choices in insertion order.
func (q *Question) Choices() []Choice {
	return slices.Clone(q.choices)
}

// Choice returns a copy of the choice with the given ID.
func (q *Question) Choice(id uuid.UUID) (Choice, bool) {
	i := q.indexOf(id)
	if i < 0 {
		return Choice{}, false
	}
	return q.choices[i], true
}

// CorrectChoiceIDs returns the IDs of all choices flagged as correct, in
// choice order.
func (q *Question) CorrectChoiceIDs() []uuid.UUID {
	ids := make([]uuid.UUID, 0, len(q.choices))
	for _, c := range q.choices {
		if c.IsCorrect {
			ids = append(ids, c.ID)
		}
	}
	return ids
}

// Clone returns an independent copy of the question. The copy shares the
// question's IDGenerator.
func (q *Question) Clone() *Question {
	c := *q
	c.choices = slices.Clone(q.choices)
	if c.choices == nil {
		c.choices = make([]Choice, 0)
	}
	return &c
}

// Validate checks if the Question and all of its choices hold valid data.
func (q *Question) Validate() error {
	if q.id == uuid.Nil {
		return ErrQuestionIDEmpty
	}

	if err := q.validateFields(); err != nil {
		return err
	}

	seen := make(map[uuid.UUID]struct{}, len(q.choices))
	for _, c := range q.choices {
		if err := c.Validate(); err != nil {
			return err
		}
		if _, dup := seen[c.ID]; dup {
			return ErrDuplicateChoiceID
		}
		seen[c.ID] = struct{}{}
	}

	return nil
}

// AddChoice appends a new choice with a fresh ID and returns a copy of it.
// Returns an error wrapping ErrValidation if the text is invalid, in which
// case the question is left unchanged.
func (q *Question) AddChoice(text string, isCorrect bool) (Choice, error) {
	if err := validateChoiceText(text); err != nil {
		return Choice{}, err
	}

	choice := Choice{
		ID:        q.ids.NewID(),
		Text:      text,
		IsCorrect: isCorrect,
	}
	if q.indexOf(choice.ID) >= 0 {
		return Choice{}, ErrDuplicateChoiceID
	}

	q.choices = append(q.choices, choice)
	return choice, nil
}

// RemoveChoiceByID removes the choice with the given ID.
// Returns ErrChoiceNotFound if the question has no such choice.
func (q *Question) RemoveChoiceByID(id uuid.UUID) error {
	i := q.indexOf(id)
	if i < 0 {
		return ErrChoiceNotFound
	}

	q.choices = slices.Delete(q.choices, i, i+1)
	return nil
}

// RemoveAllChoices removes every choice. It is a no-op on a question without
// choices.
func (q *Question) RemoveAllChoices() {
	q.choices = q.choices[:0]
}

// SetCorrectChoices marks exactly the choices whose IDs are given as correct
// and every other choice as incorrect. IDs that do not belong to the question
// are ignored.
func (q *Question) SetCorrectChoices(ids ...uuid.UUID) {
	correct := make(map[uuid.UUID]struct{}, len(ids))
	for _, id := range ids {
		correct[id] = struct{}{}
	}

	for i := range q.choices {
		_, ok := correct[q.choices[i].ID]
		q.choices[i].IsCorrect = ok
	}
}

// CorrectSelectedChoices returns the selected IDs that refer to correct
// choices, in the order they were selected and without repeats.
//
// It returns ErrTooManySelections if more IDs are given than MaxSelections
// allows. IDs that do not belong to the question count towards that limit
// but are otherwise ignored.
func (q *Question) CorrectSelectedChoices(selected []uuid.UUID) ([]uuid.UUID, error) {
	if len(selected) > q.maxSelections {
		return nil, ErrTooManySelections
	}

	correct := make(map[uuid.UUID]struct{}, len(q.choices))
	for _, c := range q.choices {
		if c.IsCorrect {
			correct[c.ID] = struct{}{}
		}
	}

	result := make([]uuid.UUID, 0, len(selected))
	for _, id := range selected {
		if _, ok := correct[id]; !ok {
			continue
		}
		result = append(result, id)
		delete(correct, id)
	}

	return result, nil
}

// MarshalJSON encodes a snapshot of the question.
func (q *Question) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		ID            uuid.UUID `json:"id"`
		Title         string    `json:"title"`
		Points        int       `json:"points"`
		MaxSelections int       `json:"max_selections"`
		Choices       []Choice  `json:"choices"`
	}{
		ID:            q.id,
		Title:         q.title,
		Points:        q.points,
		MaxSelections: q.maxSelections,
		Choices:       q.choices,
	})
}

func (q *Question) validateFields() error {
	return checkFields(questionFields{
		Title:         q.title,
		Points:        q.points,
		MaxSelections: q.maxSelections,
	}, questionSentinels)
}

func (q *Question) indexOf(id uuid.UUID) int {
	return slices.IndexFunc(q.choices, func(c Choice) bool { return c.ID == id })
}
