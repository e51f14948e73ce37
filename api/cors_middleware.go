package api

import (
	"net/http"
	"slices"
	"strings"

	"github.com/gin-gonic/gin"
)

// handling CORS
//
// Origins listed in AllowedOrigins are echoed back, "*" opens the API to every origin.
func (s *Service) corsMiddleware() gin.HandlerFunc {
	allowAll := slices.Contains(s.config.AllowedOrigins, "*")

	return func(ctx *gin.Context) {
		origin := ctx.Request.Header.Get("Origin")

		switch {
		case allowAll:
			ctx.Header("Access-Control-Allow-Origin", "*")
		case origin != "" && slices.Contains(s.config.AllowedOrigins, origin):
			ctx.Header("Access-Control-Allow-Origin", origin)
			ctx.Header("Vary", "Origin")
		}

		ctx.Header("Access-Control-Allow-Methods", "GET, POST, PUT, PATCH, DELETE, OPTIONS")

		allowedHeaders := []string{
			"Content-Type",
		}
		ctx.Header("Access-Control-Allow-Headers", strings.Join(allowedHeaders, ","))

		// If someone sends preflight (OPTIONS), respond 204 and return
		if ctx.Request.Method == http.MethodOptions {
			ctx.AbortWithStatus(http.StatusNoContent)
			return
		}

		ctx.Next()
	}
}
