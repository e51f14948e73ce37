package tmpstore

import (
	"context"
	"testing"
	"time"

	"github.com/King0lightai/JT-Power-Tools-sub005/util"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

func requireRedis(t *testing.T) *RedisStore {
	t.Helper()

	if testing.Short() {
		t.Skip("redis tests are skipped in short mode")
	}

	store := NewStore(&util.Config{RedisAddress: "localhost:6379"})
	t.Cleanup(func() { _ = store.Close() })

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()

	if err := store.Ping(ctx); err != nil {
		t.Skip("redis is not available: ", err)
	}

	return store
}

func TestPreviewKey(t *testing.T) {
	id := uuid.MustParse("2f0a4c36-8f57-4bb8-9d8e-2d3c3f4f1a10")
	require.Equal(t, "preview:2f0a4c36-8f57-4bb8-9d8e-2d3c3f4f1a10", previewKey(id))
}

func TestCachedPreviewFresh(t *testing.T) {
	at := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)
	p := CachedPreview{UpdatedAt: at}

	require.True(t, p.Fresh(at.In(time.FixedZone("X", 3600))))
	require.False(t, p.Fresh(at.Add(time.Microsecond)))
}

func TestSaveGetDeletePreview(t *testing.T) {
	store := requireRedis(t)
	ctx := context.Background()

	preview := CachedPreview{
		NoteID:    uuid.New(),
		HTML:      `<span class="bullet-dot">&bull;</span> <strong>a</strong>`,
		UpdatedAt: time.Now().UTC().Truncate(time.Microsecond),
	}

	require.NoError(t, store.SavePreview(ctx, preview, time.Minute))

	got, err := store.GetPreview(ctx, preview.NoteID)
	require.NoError(t, err)
	require.Equal(t, preview.HTML, got.HTML)
	require.True(t, got.Fresh(preview.UpdatedAt))

	require.NoError(t, store.DeletePreview(ctx, preview.NoteID))

	_, err = store.GetPreview(ctx, preview.NoteID)
	require.ErrorIs(t, err, ErrCacheMiss)
}

func TestGetPreview_Miss(t *testing.T) {
	store := requireRedis(t)

	_, err := store.GetPreview(context.Background(), uuid.New())
	require.ErrorIs(t, err, ErrCacheMiss)
}
