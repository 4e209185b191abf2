package main

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/google/uuid"
	"github.com/phrazzld/scry-quiz/internal/domain"
	"github.com/spf13/cobra"
)

func newGradeCmd(opts *rootOptions) *cobra.Command {
	var (
		bankFile       string
		questionNumber int
		selected       []int
	)

	cmd := &cobra.Command{
		Use:   "grade",
		Short: "Grade a selection of choices for one question",
		Long: `Grades the given choices for one question of a bank. Questions and
choices are numbered from 1 in the order shown by "quiz show".`,
		Example: "  quiz grade --bank questions.yaml --question 2 --select 1,3",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := opts.application()
			if err != nil {
				return err
			}

			questions, err := app.loadBank(cmd.Context(), bankFile)
			if err != nil {
				return err
			}
			if questionNumber < 1 || questionNumber > len(questions) {
				return fmt.Errorf("question %d out of range: bank has %d questions", questionNumber, len(questions))
			}
			q := questions[questionNumber-1]

			choiceIDs, err := selectedChoiceIDs(q, selected)
			if err != nil {
				return err
			}

			result, err := app.questionService.GradeAnswer(cmd.Context(), q.ID(), choiceIDs)
			if err != nil {
				if errors.Is(err, domain.ErrTooManySelections) {
					return fmt.Errorf("at most %d choices may be selected for question %d", q.MaxSelections(), questionNumber)
				}
				return err
			}

			out := cmd.OutOrStdout()
			printQuestion(out, questionNumber, q)
			fmt.Fprintf(out, "Correct selections: %s\n", choiceNumbers(q, result.CorrectIDs))
			if len(result.IncorrectIDs) > 0 {
				fmt.Fprintf(out, "Incorrect selections: %s\n", choiceNumbers(q, result.IncorrectIDs))
			}
			if len(result.MissedIDs) > 0 {
				fmt.Fprintf(out, "Missed: %s\n", choiceNumbers(q, result.MissedIDs))
			}
			fmt.Fprintf(out, "Score: %s/%d\n", strconv.FormatFloat(result.AwardedPoints, 'f', -1, 64), result.MaxPoints)
			return nil
		},
	}

	cmd.Flags().StringVar(&bankFile, "bank", "", "question bank file (YAML or JSON)")
	cmd.Flags().IntVar(&questionNumber, "question", 1, "question number")
	cmd.Flags().IntSliceVar(&selected, "select", nil, "selected choice numbers, comma separated")
	_ = cmd.MarkFlagRequired("bank")
	return cmd
}

// selectedChoiceIDs maps 1-based choice numbers to choice IDs.
func selectedChoiceIDs(q *domain.Question, numbers []int) ([]uuid.UUID, error) {
	choices := q.Choices()
	ids := make([]uuid.UUID, 0, len(numbers))
	for _, n := range numbers {
		if n < 1 || n > len(choices) {
			return nil, fmt.Errorf("choice %d out of range: question has %d choices", n, len(choices))
		}
		ids = append(ids, choices[n-1].ID)
	}
	return ids, nil
}

// choiceNumbers renders choice IDs as their comma separated 1-based numbers.
func choiceNumbers(q *domain.Question, ids []uuid.UUID) string {
	if len(ids) == 0 {
		return "none"
	}

	position := make(map[uuid.UUID]int)
	for i, c := range q.Choices() {
		position[c.ID] = i + 1
	}

	numbers := make([]string, 0, len(ids))
	for _, id := range ids {
		numbers = append(numbers, strconv.Itoa(position[id]))
	}
	return strings.Join(numbers, ",")
}
