package logger

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFromContextOrDefault(t *testing.T) {
	t.Parallel()

	ctxLogger := slog.New(slog.NewTextHandler(io.Discard, nil))
	fallback := slog.New(slog.NewJSONHandler(io.Discard, nil))

	ctx := WithLogger(context.Background(), ctxLogger)
	assert.Same(t, ctxLogger, FromContext(ctx))
	assert.Same(t, ctxLogger, FromContextOrDefault(ctx, fallback))

	assert.Nil(t, FromContext(context.Background()))
	assert.Same(t, fallback, FromContextOrDefault(context.Background(), fallback))
	assert.NotNil(t, FromContextOrDefault(context.Background(), nil))
}
