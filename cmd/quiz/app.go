package main

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/phrazzld/scry-quiz/internal/bank"
	"github.com/phrazzld/scry-quiz/internal/config"
	"github.com/phrazzld/scry-quiz/internal/domain"
	"github.com/phrazzld/scry-quiz/internal/domain/grading"
	"github.com/phrazzld/scry-quiz/internal/events"
	"github.com/phrazzld/scry-quiz/internal/platform/memory"
	"github.com/phrazzld/scry-quiz/internal/service"
)

// application holds the dependencies shared by the commands.
type application struct {
	config *config.Config
	logger *slog.Logger

	grader          grading.Service
	eventEmitter    events.EventEmitter
	questionService service.QuestionService
}

// newApplication wires the question service from configuration.
func newApplication(cfg *config.Config, logger *slog.Logger) (*application, error) {
	app := &application{
		config: cfg,
		logger: logger,
	}

	policy, err := grading.ParsePolicy(cfg.Grading.Policy)
	if err != nil {
		return nil, fmt.Errorf("failed to parse grading policy: %w", err)
	}
	app.grader, err = grading.NewServiceWithParams(&grading.Params{Policy: policy})
	if err != nil {
		return nil, fmt.Errorf("failed to create grading service: %w", err)
	}

	emitter := events.NewInMemoryEventEmitter(logger)
	emitter.RegisterHandler(events.NewLogHandler(logger))
	app.eventEmitter = emitter

	app.questionService, err = service.NewQuestionService(
		memory.NewQuestionStore(logger),
		app.grader,
		app.eventEmitter,
		logger,
		service.WithQuestionDefaults(cfg.Question.DefaultPoints, cfg.Question.DefaultMaxSelections),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create question service: %w", err)
	}

	logger.Debug("application initialized",
		"grading_policy", string(policy),
		"default_points", cfg.Question.DefaultPoints,
		"default_max_selections", cfg.Question.DefaultMaxSelections)
	return app, nil
}

// loadBank reads the bank file at path and imports it.
func (app *application) loadBank(ctx context.Context, path string) ([]*domain.Question, error) {
	b, err := bank.Load(path)
	if err != nil {
		return nil, err
	}
	return bank.Import(ctx, app.questionService, b)
}
