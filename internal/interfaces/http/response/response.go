package response

import (
	"errors"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	domainerrors "betx.backend/internal/domain/errors"
	"betx.backend/pkg/logger"
)

// Success sends a success response
func Success(c *gin.Context, status int, data interface{}) {
	c.JSON(status, data)
}

// Error sends an error response. Errors that are not AppErrors are logged and
// reported as a generic internal error.
func Error(c *gin.Context, err error) {
	var appErr *domainerrors.AppError
	if !errors.As(err, &appErr) {
		logger.Error(c.Request.Context(), "Unhandled error",
			zap.String("path", c.Request.URL.Path),
			zap.Error(err),
		)
		appErr = domainerrors.InternalError(err)
	} else if appErr.Status >= 500 {
		logger.Error(c.Request.Context(), "Request failed", zap.Error(appErr))
	}

	c.JSON(appErr.Status, gin.H{
		"code":    appErr.Code,
		"message": appErr.Message,
		"error":   appErr.Message,
	})
}

// Abort sends an error response and stops the handler chain
func Abort(c *gin.Context, err error) {
	Error(c, err)
	c.Abort()
}

// ErrorWithError sends an error response with a specific status and message
func ErrorWithError(c *gin.Context, status int, code string, message string) {
	c.JSON(status, gin.H{
		"code":    code,
		"message": message,
		"error":   message,
	})
}
