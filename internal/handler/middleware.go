package handler

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// RequestLogger writes one zerolog event per request.
func RequestLogger(logger zerolog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		status := c.Writer.Status()
		event := logger.Info()
		switch {
		case status >= http.StatusInternalServerError:
			event = logger.Error()
		case status >= http.StatusBadRequest:
			event = logger.Warn()
		}

		event.
			Str("method", c.Request.Method).
			Str("path", c.FullPath()).
			Int("status", status).
			Dur("latency", time.Since(start)).
			Str("client_ip", c.ClientIP()).
			Msg("request")
	}
}

// Recovery turns a panic into a 500 response and records it on the banner.
func Recovery(banner *FatalBanner, logger zerolog.Logger) gin.HandlerFunc {
	return gin.CustomRecoveryWithWriter(nil, func(c *gin.Context, recovered any) {
		message := fmt.Sprint(recovered)
		if err, ok := recovered.(error); ok {
			message = err.Error()
		}

		logger.Error().Str("path", c.Request.URL.Path).Str("panic", message).Msg("recovered from panic")
		banner.Record(message)
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"fatal": message})
	})
}
