package api

import (
	"errors"
	"net/http"

	"github.com/King0lightai/JT-Power-Tools-sub005/tmpstore"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

func (s *Service) getNotePreview(ctx *gin.Context) {
	noteID := extractNoteIDFromCtx(ctx)

	note, err := s.store.GetNote(ctx, noteID)
	if err != nil {
		respondStoreError(ctx, err, noteID)
		return
	}

	cached, err := s.cache.GetPreview(ctx, noteID)
	switch {
	case err == nil && cached.Fresh(note.UpdatedAt):
		ctx.JSON(http.StatusOK, PreviewResponse{HTML: cached.HTML, Cached: true})
		return
	case err == nil:
		log.Debug().Str("note_id", noteID.String()).Msg("cached preview is stale")
	case errors.Is(err, tmpstore.ErrCacheMiss):
		log.Debug().Str("note_id", noteID.String()).Msg("preview cache miss")
	default:
		// the cache is an optimization, render anyway
		log.Warn().Err(err).Str("note_id", noteID.String()).Msg("cannot read cached preview")
	}

	html := s.renderPreview(note.Body)

	err = s.cache.SavePreview(ctx, tmpstore.CachedPreview{
		NoteID:    note.ID,
		HTML:      html,
		UpdatedAt: note.UpdatedAt,
	}, s.config.PreviewCacheTTL)
	if err != nil {
		log.Warn().Err(err).Str("note_id", noteID.String()).Msg("cannot cache preview")
	}

	ctx.JSON(http.StatusOK, PreviewResponse{HTML: html})
}
