package middleware

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"codeforge-backend/internal/delivery/http/response"
	"codeforge-backend/pkg/apperror"
	"codeforge-backend/pkg/logger"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

var testLog = logger.New(io.Discard, "info", "json")

func newCORSRouter() *gin.Engine {
	r := gin.New()
	r.Use(CORSMiddleware([]string{"https://thecodeforge.dev"}))
	r.POST("/api/contact", func(c *gin.Context) { c.Status(http.StatusOK) })
	return r
}

func TestCORSMiddleware(t *testing.T) {
	t.Run("Should echo an allowed origin", func(t *testing.T) {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/api/contact", nil)
		req.Header.Set("Origin", "https://thecodeforge.dev")
		newCORSRouter().ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "https://thecodeforge.dev", w.Header().Get("Access-Control-Allow-Origin"))
		assert.Equal(t, "true", w.Header().Get("Access-Control-Allow-Credentials"))
		assert.Equal(t, "Origin", w.Header().Get("Vary"))
	})

	t.Run("Should answer an allowed preflight with 204", func(t *testing.T) {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodOptions, "/api/contact", nil)
		req.Header.Set("Origin", "https://thecodeforge.dev")
		newCORSRouter().ServeHTTP(w, req)

		assert.Equal(t, http.StatusNoContent, w.Code)
		assert.Contains(t, w.Header().Get("Access-Control-Allow-Methods"), "POST")
	})

	t.Run("Should refuse a preflight from an unknown origin", func(t *testing.T) {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodOptions, "/api/contact", nil)
		req.Header.Set("Origin", "https://evil.thecodeforge.dev")
		newCORSRouter().ServeHTTP(w, req)

		assert.Equal(t, http.StatusForbidden, w.Code)
		assert.Empty(t, w.Header().Get("Access-Control-Allow-Origin"))
	})

	t.Run("Should refuse a simple request from an unknown origin", func(t *testing.T) {
		reached := false
		r := gin.New()
		r.Use(CORSMiddleware([]string{"https://thecodeforge.dev"}))
		r.POST("/api/contact", func(c *gin.Context) {
			reached = true
			c.Status(http.StatusOK)
		})

		for _, origin := range []string{"https://thecodeforge.dev.evil.com", "https://evil.example", "null"} {
			w := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodPost, "/api/contact", strings.NewReader("name=Spam&email=victim%40example.com&project=x"))
			req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
			req.Header.Set("Origin", origin)
			r.ServeHTTP(w, req)

			assert.Equal(t, http.StatusForbidden, w.Code, origin)
			assert.Empty(t, w.Header().Get("Access-Control-Allow-Origin"), origin)
			resp := decode(t, w)
			assert.False(t, resp.Success)
			assert.Equal(t, "Origin not allowed", resp.Message)
		}
		assert.False(t, reached)
	})

	t.Run("Should pass requests without Origin", func(t *testing.T) {
		w := httptest.NewRecorder()
		newCORSRouter().ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/api/contact", nil))

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Empty(t, w.Header().Get("Access-Control-Allow-Origin"))
	})
}

func TestRequestID(t *testing.T) {
	r := gin.New()
	r.Use(RequestID())
	r.GET("/id", func(c *gin.Context) {
		c.String(http.StatusOK, GetRequestID(c.Request.Context()))
	})

	t.Run("Should generate an id", func(t *testing.T) {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/id", nil))

		id := w.Header().Get(RequestIDHeader)
		assert.Len(t, id, 36)
		assert.Equal(t, id, w.Body.String())
	})

	t.Run("Should reuse the caller id", func(t *testing.T) {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/id", nil)
		req.Header.Set(RequestIDHeader, "edge-123")
		r.ServeHTTP(w, req)

		assert.Equal(t, "edge-123", w.Header().Get(RequestIDHeader))
		assert.Equal(t, "edge-123", w.Body.String())
	})

	t.Run("Should replace an oversized caller id", func(t *testing.T) {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/id", nil)
		req.Header.Set(RequestIDHeader, strings.Repeat("x", 200))
		r.ServeHTTP(w, req)

		assert.Len(t, w.Header().Get(RequestIDHeader), 36)
	})
}

func newErrorRouter(exposeDetails bool, err error) *gin.Engine {
	r := gin.New()
	r.Use(RequestID(), ErrorHandler(testLog, exposeDetails))
	r.POST("/fail", func(c *gin.Context) { _ = c.Error(err) })
	return r
}

func decode(t *testing.T, w *httptest.ResponseRecorder) response.Response {
	t.Helper()
	var resp response.Response
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return resp
}

func TestErrorHandler(t *testing.T) {
	smtpErr := errors.New("dial tcp: connection refused")

	t.Run("Should expose the detail when enabled", func(t *testing.T) {
		w := httptest.NewRecorder()
		newErrorRouter(true, apperror.New(http.StatusInternalServerError, "Failed to send message", smtpErr)).
			ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/fail", nil))

		assert.Equal(t, http.StatusInternalServerError, w.Code)
		resp := decode(t, w)
		assert.False(t, resp.Success)
		assert.Equal(t, "Failed to send message", resp.Message)
		assert.Equal(t, "dial tcp: connection refused", resp.Error)
		assert.NotEmpty(t, resp.RequestID)
	})

	t.Run("Should hide the detail when disabled", func(t *testing.T) {
		w := httptest.NewRecorder()
		newErrorRouter(false, apperror.New(http.StatusInternalServerError, "Failed to send message", smtpErr)).
			ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/fail", nil))

		resp := decode(t, w)
		assert.Equal(t, "Failed to send message", resp.Message)
		assert.Nil(t, resp.Error)
		assert.NotContains(t, w.Body.String(), "connection refused")
	})

	t.Run("Should map unknown errors to a generic 500", func(t *testing.T) {
		w := httptest.NewRecorder()
		newErrorRouter(false, smtpErr).ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/fail", nil))

		assert.Equal(t, http.StatusInternalServerError, w.Code)
		assert.NotContains(t, w.Body.String(), "connection refused")
	})

	t.Run("Should keep client error status", func(t *testing.T) {
		w := httptest.NewRecorder()
		newErrorRouter(true, apperror.BadRequest("Invalid email format")).
			ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/fail", nil))

		assert.Equal(t, http.StatusBadRequest, w.Code)
		resp := decode(t, w)
		assert.Equal(t, "Invalid email format", resp.Message)
		assert.Nil(t, resp.Error)
	})
}

func TestRecovery(t *testing.T) {
	r := gin.New()
	r.Use(RequestID(), Recovery(testLog))
	r.GET("/panic", func(c *gin.Context) { panic("boom") })

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/panic", nil))

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	resp := decode(t, w)
	assert.False(t, resp.Success)
	assert.NotContains(t, w.Body.String(), "boom")
}

func TestSecurityHeadersMiddleware(t *testing.T) {
	for _, production := range []bool{false, true} {
		r := gin.New()
		r.Use(SecurityHeadersMiddleware(production))
		r.GET("/api/health", func(c *gin.Context) { c.Status(http.StatusOK) })

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/health", nil))

		assert.Equal(t, "nosniff", w.Header().Get("X-Content-Type-Options"))
		assert.Equal(t, "no-store", w.Header().Get("Cache-Control"))
		assert.Equal(t, production, w.Header().Get("Strict-Transport-Security") != "")
	}
}
