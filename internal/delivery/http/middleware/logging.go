package middleware

import (
	"net/http"
	"time"

	"codeforge-backend/internal/delivery/http/response"
	"codeforge-backend/pkg/logger"

	"github.com/gin-gonic/gin"
)

// RequestLogger logs one line per HTTP request
func RequestLogger(log *logger.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		c.Next()

		log.WithRequestID(GetRequestID(c.Request.Context())).
			HTTPRequest(c.Request.Method, c.Request.URL.Path, c.Writer.Status(), time.Since(start), c.ClientIP())
	}
}

// Recovery turns panics into a logged 500 instead of a dropped connection
func Recovery(log *logger.Logger) gin.HandlerFunc {
	return gin.CustomRecovery(func(c *gin.Context, recovered any) {
		log.Error().
			Interface("error", recovered).
			Str("path", c.Request.URL.Path).
			Str("method", c.Request.Method).
			Str("request_id", GetRequestID(c.Request.Context())).
			Msg("panic recovered")
		response.Error(c, http.StatusInternalServerError, "An unexpected error occurred. Please try again later.", nil)
		c.Abort()
	})
}
