package middleware

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yigit/studentmanagement/internal/app/models/dto"
	"github.com/yigit/studentmanagement/internal/pkg/apperrors"
	"github.com/yigit/studentmanagement/internal/pkg/logger"
)

// --- Central Error Handling ---

// HandleAPIError maps an error to its status code and writes the failure envelope.
// Validation and malformed input map to 400, missing entities to 404. Every other
// failure, conflicts and storage errors included, is reported as 400 with its message.
func HandleAPIError(c *gin.Context, err error) {
	status := http.StatusBadRequest
	switch {
	case apperrors.Is(err, apperrors.ErrValidationFailed, apperrors.ErrBadRequest):
		status = http.StatusBadRequest
	case errors.Is(err, apperrors.ErrResourceNotFound):
		status = http.StatusNotFound
	default:
		logger.Ctx(c.Request.Context()).Error().Err(err).
			Str("path", c.FullPath()).
			Msg("Request failed")
	}

	c.JSON(status, dto.NewFailureResponse(errorMessage(err)))
}

// errorMessage prefers the message of the outermost CustomError over the wrapped chain
func errorMessage(err error) string {
	var customErr *apperrors.CustomError
	if errors.As(err, &customErr) {
		return customErr.Error()
	}
	return err.Error()
}
