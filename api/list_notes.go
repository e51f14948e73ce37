package api

import (
	"net/http"
	"time"

	db "github.com/King0lightai/JT-Power-Tools-sub005/db/sqlc"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type ListNotesQuery struct {
	Limit  int32 `form:"limit" json:"limit" binding:"min=1,max=100"`
	Offset int32 `form:"offset" json:"offset" binding:"min=0"`
}

type ListNotesResponse struct {
	Notes []NoteSummary `json:"notes"`
	Total int64         `json:"total"`
}

func (s *Service) listNotes(ctx *gin.Context) {
	// pre-filled with default values
	req := ListNotesQuery{
		Limit:  20,
		Offset: 0,
	}

	if err := ctx.ShouldBindQuery(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, NewErrorResponse(ErrInvalidParams, ExtractErrorFields(err)...))
		return
	}

	result, err := s.store.ListNotes(ctx, db.ListNotesParams{
		Limit:  req.Limit,
		Offset: req.Offset,
	})
	if err != nil {
		respondStoreError(ctx, err, uuid.Nil)
		return
	}

	now := time.Now()
	notes := make([]NoteSummary, len(result.Notes))
	for i, note := range result.Notes {
		notes[i] = newNoteSummary(note, now)
	}

	ctx.JSON(http.StatusOK, ListNotesResponse{Notes: notes, Total: result.Total})
}
