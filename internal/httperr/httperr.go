package httperr

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// HTTPError is the one error shape handlers are allowed to surface.
// Anything else that reaches the responder renders as a 500 with no
// detail leaked.
type HTTPError struct {
	Code    int
	Message string
}

func (e *HTTPError) Error() string { return e.Message }

func New(code int, message string) *HTTPError {
	return &HTTPError{Code: code, Message: message}
}

func BadRequest(message string) *HTTPError {
	return New(http.StatusBadRequest, message)
}

func Unauthorized(message string) *HTTPError {
	return New(http.StatusUnauthorized, message)
}

func NotFound(message string) *HTTPError {
	return New(http.StatusNotFound, message)
}

func Conflict(message string) *HTTPError {
	return New(http.StatusConflict, message)
}

// ErrorHandler renders the first error attached to the context after the
// handler chain has run. Handlers report failures with c.Error and return;
// they never write error bodies themselves.
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 {
			return
		}
		err := c.Errors[0].Err
		if he, ok := err.(*HTTPError); ok {
			c.AbortWithStatusJSON(he.Code, gin.H{"message": he.Message})
			return
		}
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"message": "internal server error"})
	}
}
