package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

func (s *Service) getNote(ctx *gin.Context) {
	noteID := extractNoteIDFromCtx(ctx)

	note, err := s.store.GetNote(ctx, noteID)
	if err != nil {
		respondStoreError(ctx, err, noteID)
		return
	}

	ctx.JSON(http.StatusOK, note)
}
