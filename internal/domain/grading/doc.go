// Package grading turns a respondent's choice selection into a score.
//
// It builds on domain.Question.CorrectSelectedChoices and adds a scoring
// policy on top: all-or-nothing, or proportional partial credit when no
// incorrect choice was selected.
package grading
