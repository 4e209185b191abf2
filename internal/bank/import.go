package bank

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/phrazzld/scry-quiz/internal/domain"
	"github.com/phrazzld/scry-quiz/internal/platform/logger"
	"github.com/phrazzld/scry-quiz/internal/service"
)

// Import creates every question of the bank through svc, in file order.
// If any question is rejected the questions already created are deleted
// again and the error names the 1-based position of the failing question.
func Import(ctx context.Context, svc service.QuestionService, b *Bank) ([]*domain.Question, error) {
	log := logger.FromContextOrDefault(ctx, slog.Default()).
		With(slog.String("component", "bank_import"))

	created := make([]*domain.Question, 0, len(b.Questions))
	for i, entry := range b.Questions {
		q, err := svc.CreateQuestion(ctx, entry.Params())
		if err != nil {
			rollback(ctx, log, svc, created)
			return nil, fmt.Errorf("question %d: %w", i+1, err)
		}
		created = append(created, q)
	}

	log.Info("question bank imported", slog.Int("question_count", len(created)))
	return created, nil
}

func rollback(ctx context.Context, log *slog.Logger, svc service.QuestionService, created []*domain.Question) {
	for _, q := range created {
		if err := svc.DeleteQuestion(ctx, q.ID()); err != nil {
			log.Warn("failed to roll back imported question",
				slog.String("question_id", q.ID().String()),
				slog.String("error", err.Error()))
		}
	}
}
