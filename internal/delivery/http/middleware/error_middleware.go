package middleware

import (
	"errors"
	"net/http"

	"codeforge-backend/internal/delivery/http/response"
	"codeforge-backend/pkg/apperror"
	"codeforge-backend/pkg/logger"

	"github.com/gin-gonic/gin"
)

// ErrorHandler renders the last error pushed with c.Error. The wrapped error
// text is only sent to the client when exposeDetails is set.
func ErrorHandler(log *logger.Logger, exposeDetails bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 {
			return
		}

		err := c.Errors.Last().Err
		reqLog := log.WithRequestID(GetRequestID(c.Request.Context()))

		var appErr *apperror.AppError
		if !errors.As(err, &appErr) {
			// SECURITY: Never expose internal error details to clients.
			appErr = apperror.New(http.StatusInternalServerError, "An unexpected error occurred. Please try again later.", err)
		}

		if appErr.Code >= http.StatusInternalServerError {
			reqLog.Error().Err(appErr.Err).Int("status", appErr.Code).Msg(appErr.Message)
		}

		var detail interface{}
		if exposeDetails && appErr.Detail() != "" {
			detail = appErr.Detail()
		}
		response.Error(c, appErr.Code, appErr.Message, detail)
	}
}
