package apperrors

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"healthreach_backend/internal/logger"
)

// ErrorResponse is the envelope written for failed requests. The
// client reads Message and ignores the rest, so the shape mirrors
// the success envelope with success=false.
type ErrorResponse struct {
	Success bool      `json:"success"`
	Message string    `json:"message"`
	Code    ErrorCode `json:"code,omitempty"`
	Details any       `json:"details,omitempty"`
}

// HandleError writes an AppError to the gin context.
func HandleError(c *gin.Context, err *AppError) {
	if err.HTTPCode >= http.StatusInternalServerError {
		logger.CtxWithError(c.Request.Context(), "server error", err, "path", c.Request.URL.Path)
	}

	c.JSON(err.HTTPCode, ErrorResponse{
		Success: false,
		Message: err.Message,
		Code:    err.Code,
		Details: err.Details,
	})
}
