package api

import (
	"net/http"
	"strings"

	db "github.com/King0lightai/JT-Power-Tools-sub005/db/sqlc"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type CreateNoteRequest struct {
	Title string `json:"title" binding:"max=200"`
	Body  string `json:"body"`
}

func (s *Service) createNote(ctx *gin.Context) {
	var req CreateNoteRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, NewErrorResponse(ErrInvalidParams, ExtractErrorFields(err)...))
		return
	}

	if !s.checkMarkupSize(ctx, "body", req.Body) {
		return
	}

	note, err := s.store.CreateNote(ctx, db.CreateNoteParams{
		Title: strings.TrimSpace(req.Title),
		Body:  req.Body,
	})
	if err != nil {
		respondStoreError(ctx, err, uuid.Nil)
		return
	}

	ctx.JSON(http.StatusCreated, note)
}
