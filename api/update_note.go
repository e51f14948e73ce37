package api

import (
	"net/http"

	db "github.com/King0lightai/JT-Power-Tools-sub005/db/sqlc"
	"github.com/King0lightai/JT-Power-Tools-sub005/util"
	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgtype"
)

type UpdateNoteRequest struct {
	Title *string `json:"title" binding:"omitempty,max=200"`
	Body  *string `json:"body"`
}

func (s *Service) updateNote(ctx *gin.Context) {
	var req UpdateNoteRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, NewErrorResponse(ErrInvalidParams, ExtractErrorFields(err)...))
		return
	}

	if req.Title == nil && req.Body == nil {
		errField := ErrorField{"request", "at least one of title or body must be provided"}
		ctx.JSON(http.StatusBadRequest, NewErrorResponse(ErrInvalidParams, errField))
		return
	}

	// the body is stored verbatim, leading spaces encode list nesting
	body := pgtype.Text{}
	if req.Body != nil {
		if !s.checkMarkupSize(ctx, "body", *req.Body) {
			return
		}
		body = pgtype.Text{String: *req.Body, Valid: true}
	}

	noteID := extractNoteIDFromCtx(ctx)

	note, err := s.store.UpdateNote(ctx, db.UpdateNoteParams{
		ID:    noteID,
		Title: util.StringToPgxText(req.Title),
		Body:  body,
	})
	if err != nil {
		respondStoreError(ctx, err, noteID)
		return
	}

	if req.Body != nil {
		s.dropPreview(ctx, noteID)
	}

	ctx.JSON(http.StatusOK, note)
}
