package testutils

import (
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTestSlogHandler(t *testing.T) {
	t.Parallel()

	handler := NewTestSlogHandler()
	logger := slog.New(handler)

	logger.Info("first", "count", 1)
	logger.With("component", "store").Warn("second", "ok", false)

	entries := handler.Entries()
	require.Len(t, entries, 2)

	assert.Equal(t, "INFO", entries[0]["level"])
	assert.Equal(t, "first", entries[0]["message"])
	assert.Equal(t, int64(1), entries[0]["count"])
	assert.NotContains(t, entries[0], "component")

	assert.Equal(t, "WARN", entries[1]["level"])
	assert.Equal(t, "store", entries[1]["component"])
	assert.Equal(t, false, entries[1]["ok"])

	assert.Len(t, handler.EntriesWithMessage("second"), 1)
	assert.Empty(t, handler.EntriesWithMessage("third"))

	handler.Clear()
	assert.Empty(t, handler.Entries())
}
