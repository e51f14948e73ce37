package api

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const noteIDKey = "provided_note_id"

func (s *Service) noteIDMiddleware() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		// getting mandatory note id form the request, abort with 400 on error
		noteIDRaw := ctx.Param("note_id")

		noteID, err := uuid.Parse(noteIDRaw)
		if err != nil {
			errField := ErrorField{"note_id", fmt.Sprintf("Invalid note id: %s", noteIDRaw)}
			ctx.AbortWithStatusJSON(
				http.StatusBadRequest,
				NewErrorResponse(ErrInvalidNoteID, errField),
			)
			return
		}

		ctx.Set(noteIDKey, noteID)
		ctx.Next()
	}
}

func extractNoteIDFromCtx(ctx *gin.Context) uuid.UUID {
	return ctx.MustGet(noteIDKey).(uuid.UUID)
}
