package httputil

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/dermacare/booking-api/pkg/errors"
)

// Response wraps all API responses
type Response struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data,omitempty"`
	Error   *Error      `json:"error,omitempty"`
}

// Error represents API error
type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// RespondWithSuccess sends a success response
func RespondWithSuccess(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, Response{
		Success: true,
		Data:    data,
	})
}

// RespondWithError sends an error response
func RespondWithError(c *gin.Context, err error) {
	c.JSON(StatusFor(err), Response{
		Success: false,
		Error: &Error{
			Code:    StatusFor(err),
			Message: MessageFor(err),
		},
	})
}

// RespondWithDetail sends the bare `{"detail": ...}` payload the mobile
// clients expect from the scheduling endpoints.
func RespondWithDetail(c *gin.Context, err error) {
	c.JSON(StatusFor(err), gin.H{"detail": MessageFor(err)})
}

// StatusFor maps application error codes to HTTP status codes.
func StatusFor(err error) int {
	appErr, ok := err.(*errors.AppError)
	if !ok {
		return http.StatusInternalServerError
	}
	switch appErr.Code {
	case errors.ErrNotFound:
		return http.StatusNotFound
	case errors.ErrBadRequest:
		return http.StatusBadRequest
	case errors.ErrConflict:
		return http.StatusConflict
	case errors.ErrUnauthorized:
		return http.StatusUnauthorized
	default:
		return http.StatusInternalServerError
	}
}

// MessageFor returns the user-facing message for an error.
func MessageFor(err error) string {
	if appErr, ok := err.(*errors.AppError); ok {
		return appErr.Message
	}
	return "internal server error"
}
