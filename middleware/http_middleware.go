package middleware

import (
	"net/http"
	"time"

	"github.com/coder-56/stock-insights/model"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

// RecoveryMiddleware converts panics at the request boundary into a
// generic 500 without leaking internals to the client.
func RecoveryMiddleware(c *gin.Context) {
	defer func() {
		if err := recover(); err != nil {
			log.Error().
				Interface("panic", err).
				Str("method", c.Request.Method).
				Str("path", c.Request.URL.Path).
				Msg("PANIC_RECOVERED")

			c.AbortWithStatusJSON(http.StatusInternalServerError, model.ErrorResponse{
				Error: "Internal server error",
			})
		}
	}()
	c.Next()
}

// ZerologMiddleware logs one structured line per request.
func ZerologMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		path := c.Request.URL.Path
		if path == "/api/health" {
			c.Next()
			return
		}

		start := time.Now()
		query := c.Request.URL.RawQuery

		c.Next()
		latency := time.Since(start)

		log.Info().
			Str("method", c.Request.Method).
			Str("path", path).
			Str("query", query).
			Int("status", c.Writer.Status()).
			Dur("latency", latency).
			Msg("HTTP Request")
	}
}
