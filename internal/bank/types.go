package bank

import "github.com/phrazzld/scry-quiz/internal/service"

// Bank is the decoded content of a question-bank file.
type Bank struct {
	Questions []QuestionSpec `json:"questions" yaml:"questions"`
}

// QuestionSpec describes one question of a bank.
type QuestionSpec struct {
	Title         string       `json:"title" yaml:"title"`
	Points        int          `json:"points" yaml:"points"`
	MaxSelections int          `json:"max_selections" yaml:"max_selections"`
	Choices       []ChoiceSpec `json:"choices" yaml:"choices"`
}

// ChoiceSpec describes one choice of a question.
type ChoiceSpec struct {
	Text    string `json:"text" yaml:"text"`
	Correct bool   `json:"correct" yaml:"correct"`
}

// Params converts the question into service parameters.
func (q QuestionSpec) Params() service.CreateQuestionParams {
	choices := make([]service.ChoiceParams, 0, len(q.Choices))
	for _, c := range q.Choices {
		choices = append(choices, service.ChoiceParams{Text: c.Text, IsCorrect: c.Correct})
	}
	return service.CreateQuestionParams{
		Title:         q.Title,
		Points:        q.Points,
		MaxSelections: q.MaxSelections,
		Choices:       choices,
	}
}
