package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

func (s *Service) deleteNote(ctx *gin.Context) {
	noteID := extractNoteIDFromCtx(ctx)

	if err := s.store.DeleteNote(ctx, noteID); err != nil {
		respondStoreError(ctx, err, noteID)
		return
	}

	s.dropPreview(ctx, noteID)

	ctx.Status(http.StatusNoContent)
}
