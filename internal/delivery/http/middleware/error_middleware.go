package middleware

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"go-screening-backend/internal/delivery/http/response"
	"go-screening-backend/internal/domain"
	"go-screening-backend/pkg/apperror"
	"go-screening-backend/pkg/logger"
)

// ErrorHandler maps errors appended to the gin context onto the response
// envelope. Internal details are logged server-side, never sent to clients.
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 {
			return
		}
		err := c.Errors.Last().Err

		var appErr *apperror.AppError
		if errors.As(err, &appErr) {
			response.Error(c, appErr.Code, appErr.Message, nil)
			return
		}

		var ingErr *domain.IngestionError
		if errors.As(err, &ingErr) {
			response.Error(c, http.StatusUnprocessableEntity, ingErr.Error(), nil)
			return
		}

		var embErr *domain.EmbeddingError
		if errors.As(err, &embErr) {
			logger.Log.Error("embedding service failure", "error", err)
			response.Error(c, http.StatusBadGateway, "Embedding service is unavailable. Please try again later.", nil)
			return
		}

		logger.Log.Error("unhandled request error", "error", err, "path", c.Request.URL.Path)
		response.Error(c, http.StatusInternalServerError, "An unexpected error occurred. Please try again later.", nil)
	}
}
