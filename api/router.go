package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

const (
	// api routes
	MarkupParseURL     = "/markup/parse"
	MarkupSerializeURL = "/markup/serialize"
	MarkupPreviewURL   = "/markup/preview"
	MarkupFormatsURL   = "/markup/formats"
	MarkupLintURL      = "/markup/lint"
	NotesURL           = "/notes"
)

// Establishes HTTP router.
func (service *Service) setupRouter(server *http.Server) {
	router := gin.New()

	router.Use(gin.Recovery(), requestLogger())
	router.Use(service.corsMiddleware())

	router.GET("/ping", func(ctx *gin.Context) {
		ctx.String(http.StatusOK, "pong")
	})

	// stateless engine endpoints
	router.POST(MarkupParseURL, service.parseMarkup)
	router.POST(MarkupSerializeURL, service.serializeMarkup)
	router.POST(MarkupPreviewURL, service.previewMarkup)
	router.POST(MarkupFormatsURL, service.detectFormats)
	router.POST(MarkupLintURL, service.lintMarkup)

	// notes collection
	router.POST(NotesURL, service.createNote)
	router.GET(NotesURL, service.listNotes)

	// routes where note id is checked
	noteGroup := router.Group(NotesURL + "/:note_id").Use(service.noteIDMiddleware())
	noteGroup.GET("", service.getNote)
	noteGroup.PATCH("", service.updateNote)
	noteGroup.DELETE("", service.deleteNote)
	noteGroup.GET("/blocks", service.getNoteBlocks)
	noteGroup.PUT("/blocks", service.putNoteBlocks)
	noteGroup.GET("/preview", service.getNotePreview)

	server.Handler = router
	service.router = router
}
