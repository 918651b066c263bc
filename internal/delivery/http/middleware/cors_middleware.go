package middleware

import (
	"net/http"

	"codeforge-backend/internal/delivery/http/response"

	"github.com/gin-gonic/gin"
)

const msgOriginNotAllowed = "Origin not allowed"

// CORSMiddleware allows cross-origin requests from an exact list of origins.
//
// SECURITY: origins are compared verbatim, no wildcards or suffix matching.
// Requests without an Origin header (curl, server-to-server) pass through;
// any request from an unlisted origin is rejected with 403.
func CORSMiddleware(allowedOrigins []string) gin.HandlerFunc {
	allowed := make(map[string]bool, len(allowedOrigins))
	for _, o := range allowedOrigins {
		allowed[o] = true
	}

	return func(c *gin.Context) {
		origin := c.Request.Header.Get("Origin")
		isAllowed := origin == "" || allowed[origin]

		// === SECURITY: Only set headers if origin is allowed ===
		if isAllowed && origin != "" {
			c.Header("Access-Control-Allow-Origin", origin)
			c.Header("Access-Control-Allow-Credentials", "true")
			c.Header("Access-Control-Allow-Headers", "Content-Type")
			c.Header("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
			c.Header("Access-Control-Max-Age", "86400") // 24 hours
		}

		// Vary header to ensure caches differentiate by Origin
		c.Header("Vary", "Origin")

		// Unlisted origins never reach the handlers
		if !isAllowed {
			response.Error(c, http.StatusForbidden, msgOriginNotAllowed, nil)
			c.Abort()
			return
		}

		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	}
}
