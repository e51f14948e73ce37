package api

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// requestLogger replaces gin's default text logger with structured request logs.
func requestLogger() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		start := time.Now()

		ctx.Next()

		status := ctx.Writer.Status()

		var event *zerolog.Event
		switch {
		case status >= 500:
			event = log.Error()
		case status >= 400:
			event = log.Warn()
		default:
			event = log.Info()
		}

		if len(ctx.Errors) > 0 {
			event = event.Str("errors", ctx.Errors.String())
		}

		event.
			Str("protocol", "http").
			Str("method", ctx.Request.Method).
			Str("path", ctx.FullPath()).
			Str("raw_path", ctx.Request.URL.Path).
			Int("status_code", status).
			Str("status_text", http.StatusText(status)).
			Dur("duration", time.Since(start)).
			Msg("received a HTTP request")
	}
}
