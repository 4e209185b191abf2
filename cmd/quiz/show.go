package main

import (
	"fmt"
	"io"

	"github.com/phrazzld/scry-quiz/internal/domain"
	"github.com/spf13/cobra"
)

func newShowCmd(opts *rootOptions) *cobra.Command {
	var bankFile string

	cmd := &cobra.Command{
		Use:   "show",
		Short: "Print the questions of a bank",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := opts.application()
			if err != nil {
				return err
			}

			questions, err := app.loadBank(cmd.Context(), bankFile)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			for i, q := range questions {
				if i > 0 {
					fmt.Fprintln(out)
				}
				printQuestion(out, i+1, q)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&bankFile, "bank", "", "question bank file (YAML or JSON)")
	_ = cmd.MarkFlagRequired("bank")
	return cmd
}

// printQuestion writes a question and its numbered choices.
func printQuestion(out io.Writer, number int, q *domain.Question) {
	mode := "single select"
	if q.IsMultiSelect() {
		mode = fmt.Sprintf("select up to %d", q.MaxSelections())
	}
	fmt.Fprintf(out, "%d. %s (%d %s, %s)\n", number, q.Title(), q.Points(), pointsLabel(q.Points()), mode)
	for j, c := range q.Choices() {
		fmt.Fprintf(out, "   %d) %s\n", j+1, c.Text)
	}
}

func pointsLabel(points int) string {
	if points == 1 {
		return "point"
	}
	return "points"
}
