// Package httpkit provides the HTTP plumbing shared by every module:
// response helpers, middleware, and session tokens.
package httpkit

import (
	"errors"
	"net/http"

	"lead_scoring_backend/platform/apperr"

	"github.com/gin-gonic/gin"
)

const msgInternalError = "internal server error"

// ErrorResponse is the body of every error response.
type ErrorResponse struct {
	Error   string      `json:"error"`
	Details interface{} `json:"details,omitempty"`
}

func OK(c *gin.Context, payload interface{}) {
	c.JSON(http.StatusOK, payload)
}

func Created(c *gin.Context, payload interface{}) {
	c.JSON(http.StatusCreated, payload)
}

func Error(c *gin.Context, status int, message string, details interface{}) {
	c.JSON(status, ErrorResponse{Error: message, Details: details})
}

// BadRequest answers 400 with optional per-field details.
func BadRequest(c *gin.Context, message string, details interface{}) {
	Error(c, http.StatusBadRequest, message, details)
}

// HandleError writes the response for err and reports whether it did.
// An *apperr.Error anywhere in the chain sets the status and message;
// anything else is a 500 whose cause is recorded on the gin context for the
// request logger and never sent to the client.
func HandleError(c *gin.Context, err error) bool {
	if err == nil {
		return false
	}

	var domainErr *apperr.Error
	if errors.As(err, &domainErr) {
		if domainErr.HTTPStatus() >= http.StatusInternalServerError {
			_ = c.Error(err)
			Error(c, domainErr.HTTPStatus(), msgInternalError, nil)
			return true
		}
		Error(c, domainErr.HTTPStatus(), domainErr.Message, nil)
		return true
	}

	_ = c.Error(err)
	Error(c, http.StatusInternalServerError, msgInternalError, nil)
	return true
}
