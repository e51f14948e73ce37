package tmpstore

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/King0lightai/JT-Power-Tools-sub005/util"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

// Different key prefixes for different use cases
const (
	PreviewPrefix = "preview:"
)

var ErrCacheMiss = errors.New("cache entry not found or expired")

// CachedPreview is a rendered preview of a note body. UpdatedAt records the
// note version the HTML was rendered from.
type CachedPreview struct {
	NoteID    uuid.UUID `json:"note_id"`
	HTML      string    `json:"html"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Fresh reports whether the entry was rendered from the given note version.
func (p *CachedPreview) Fresh(updatedAt time.Time) bool {
	return p.UpdatedAt.Equal(updatedAt)
}

type Store interface {
	SavePreview(ctx context.Context, preview CachedPreview, ttl time.Duration) error
	GetPreview(ctx context.Context, noteID uuid.UUID) (*CachedPreview, error)
	DeletePreview(ctx context.Context, noteID uuid.UUID) error
}

type RedisStore struct {
	client *redis.Client
}

func NewStore(config *util.Config) *RedisStore {
	rdb := redis.NewClient(&redis.Options{
		Addr:     config.RedisAddress, //  default "localhost:6379"
		Password: "",                  // "" for no password, ok for now
		DB:       0,                   // 0 for default database
	})

	return &RedisStore{client: rdb}
}

// NewStoreWithClient wraps an existing client, used by tests against a throwaway server.
func NewStoreWithClient(client *redis.Client) *RedisStore {
	return &RedisStore{client: client}
}

func previewKey(noteID uuid.UUID) string {
	return PreviewPrefix + noteID.String()
}

// SavePreview stores rendered preview HTML for ttl. A zero ttl keeps the entry until it is deleted.
func (store *RedisStore) SavePreview(ctx context.Context, preview CachedPreview, ttl time.Duration) error {
	jsonData, err := json.Marshal(preview)
	if err != nil {
		return fmt.Errorf("failed to serialize preview: %w", err)
	}

	return store.client.Set(ctx, previewKey(preview.NoteID), jsonData, ttl).Err()
}

// GetPreview returns ErrCacheMiss if there is no entry for the note.
func (store *RedisStore) GetPreview(ctx context.Context, noteID uuid.UUID) (*CachedPreview, error) {
	jsonData, err := store.client.Get(ctx, previewKey(noteID)).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, ErrCacheMiss
		}
		return nil, fmt.Errorf("failed to get preview: %w", err)
	}

	var preview CachedPreview
	if err := json.Unmarshal([]byte(jsonData), &preview); err != nil {
		return nil, fmt.Errorf("failed to parse preview json: %w", err)
	}

	return &preview, nil
}

// DeletePreview drops the cached preview of a note. Missing entries are not an error.
func (store *RedisStore) DeletePreview(ctx context.Context, noteID uuid.UUID) error {
	return store.client.Del(ctx, previewKey(noteID)).Err()
}

// Ping checks the connection, used at startup.
func (store *RedisStore) Ping(ctx context.Context) error {
	return store.client.Ping(ctx).Err()
}

func (store *RedisStore) Close() error {
	return store.client.Close()
}
