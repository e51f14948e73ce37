package api

import (
	"time"

	db "github.com/King0lightai/JT-Power-Tools-sub005/db/sqlc"
	"github.com/dustin/go-humanize"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

// NoteSummary is a list entry. The body is omitted; its size is reported
// both in bytes and in human readable form.
type NoteSummary struct {
	ID         uuid.UUID `json:"id"`
	Title      string    `json:"title"`
	SizeBytes  int       `json:"size_bytes"`
	Size       string    `json:"size"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
	UpdatedAgo string    `json:"updated_ago"`
}

func newNoteSummary(note db.Note, now time.Time) NoteSummary {
	return NoteSummary{
		ID:         note.ID,
		Title:      note.Title,
		SizeBytes:  len(note.Body),
		Size:       humanize.Bytes(uint64(len(note.Body))),
		CreatedAt:  note.CreatedAt,
		UpdatedAt:  note.UpdatedAt,
		UpdatedAgo: humanize.RelTime(note.UpdatedAt, now, "ago", "from now"),
	}
}

// dropPreview removes a cached preview after the note changed. Cached entries are
// also checked against updated_at on read, so a failure here is only logged.
func (s *Service) dropPreview(ctx *gin.Context, noteID uuid.UUID) {
	if err := s.cache.DeletePreview(ctx, noteID); err != nil {
		log.Warn().Err(err).Str("note_id", noteID.String()).Msg("cannot drop cached preview")
	}
}
