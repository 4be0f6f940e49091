package helpers

import (
	"errors"
	"fmt"
	"net/http"

	"sharelocal/internal/requesterrors"
	"sharelocal/utils"

	"github.com/gin-gonic/gin"
)

// HandleBindError sends a standardized JSON error for binding failures
func HandleBindError(c *gin.Context, handlerName string, err error) {
	wrappedErr := fmt.Errorf("invalid request payload: %w", err)
	utils.JSONError(c, http.StatusBadRequest, wrappedErr, "invalid request payload")
	utils.Warn(handlerName+": binding error", map[string]any{"error": err.Error()})
}

// MapErrorToHTTP maps domain/service errors to HTTP status code and message
func MapErrorToHTTP(err error) (int, string) {
	switch {
	case errors.Is(err, requesterrors.ErrItemNotFound):
		return http.StatusNotFound, "item not found"
	case errors.Is(err, requesterrors.ErrRequestNotFound):
		return http.StatusNotFound, "request not found"
	case errors.Is(err, requesterrors.ErrSelfRequest):
		return http.StatusBadRequest, "you cannot request your own item"
	case errors.Is(err, requesterrors.ErrNotOwner):
		return http.StatusForbidden, "you do not have permission to do this"
	case errors.Is(err, requesterrors.ErrInvalidTransition):
		return http.StatusConflict, "request has already been settled"
	case errors.Is(err, requesterrors.ErrAlreadyRequested):
		return http.StatusOK, "you have already requested this item"
	case errors.Is(err, requesterrors.ErrInvalidRequest), errors.Is(err, requesterrors.ErrInvalidItem):
		return http.StatusBadRequest, "invalid request details"
	default:
		return http.StatusInternalServerError, "internal server error"
	}
}

// LogSuccess is a small helper to standardize logging of successful operations
func LogSuccess(handlerName, message string, ctx map[string]any) {
	utils.Info(handlerName+": "+message, ctx)
}
