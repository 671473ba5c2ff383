package logger

import (
	"context"
	"log/slog"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type memoryWriter struct {
	mu      sync.Mutex
	entries []Entry
}

func (w *memoryWriter) WriteBatch(_ context.Context, batch []any) error {
	w.mu.Lock()
	defer w.mu.Unlock()
	for _, e := range batch {
		w.entries = append(w.entries, e.(Entry))
	}
	return nil
}

func TestMongoHandlerFlushesOnClose(t *testing.T) {
	out := &memoryWriter{}
	h := newMongoHandler(out, slog.LevelInfo)

	log := slog.New(h).With("request_id", "abc", "user_id", uint(7))
	log.Debug("dropped by level")
	log.Info("rating stored", "store_id", 3)
	log.WithGroup("query").Warn("slow plan", "entity", "stores")

	require.NoError(t, h.Close(context.Background()))
	require.NoError(t, h.Close(context.Background()))

	require.Len(t, out.entries, 2)
	first := out.entries[0]
	assert.Equal(t, "rating stored", first.Msg)
	assert.Equal(t, "abc", first.RequestID)
	assert.Equal(t, uint64(7), first.UserID)
	assert.Equal(t, int64(3), first.Attrs["store_id"])
	assert.Equal(t, "stores", out.entries[1].Attrs["query.entity"])
}

func TestWithCtxFallsBackToBase(t *testing.T) {
	assert.Same(t, L, WithCtx(context.Background()))

	tagged := L.With("request_id", "x")
	ctx := InjectLogger(context.Background(), tagged)
	assert.Same(t, tagged, WithCtx(ctx))
}
