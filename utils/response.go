package utils

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// Envelope is the uniform response wrapper used by every endpoint.
type Envelope struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
	Data    any    `json:"data,omitempty"`
	Error   string `json:"error,omitempty"`
}

// APIError carries an HTTP status alongside a caller-facing message.
type APIError struct {
	Status  int
	Message string
	Err     error
}

func (e *APIError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

func (e *APIError) Unwrap() error { return e.Err }

func NewValidationError(msg string) *APIError {
	return &APIError{Status: http.StatusBadRequest, Message: msg}
}

func NewNotFoundError(msg string) *APIError {
	return &APIError{Status: http.StatusNotFound, Message: msg}
}

func NewConflictError(msg string) *APIError {
	return &APIError{Status: http.StatusConflict, Message: msg}
}

func NewInternalError(msg string, err error) *APIError {
	return &APIError{Status: http.StatusInternalServerError, Message: msg, Err: err}
}

// RespondSuccess writes a success envelope.
func RespondSuccess(c *gin.Context, status int, message string, data any) {
	c.JSON(status, Envelope{Success: true, Message: message, Data: data})
}

// RespondError maps an error onto the envelope. Persistence-layer duplicate
// key and malformed identifier errors are translated into client errors.
func RespondError(c *gin.Context, err error) {
	logger := GetLogger()

	var apiErr *APIError
	switch {
	case errors.As(err, &apiErr):
		// fall through with mapped status
	case errors.Is(err, mongo.ErrNoDocuments):
		apiErr = NewNotFoundError("resource not found")
	case mongo.IsDuplicateKeyError(err):
		apiErr = NewConflictError("duplicate record")
	case errors.Is(err, primitive.ErrInvalidHex):
		apiErr = NewValidationError("malformed identifier")
	default:
		apiErr = NewInternalError("internal server error", err)
	}

	if apiErr.Status >= http.StatusInternalServerError {
		logger.Error("request failed", zap.Error(err))
	} else {
		logger.Warn("request rejected", zap.Int("status", apiErr.Status), zap.String("message", apiErr.Message))
	}

	env := Envelope{Success: false, Message: apiErr.Message}
	if apiErr.Err != nil {
		env.Error = apiErr.Err.Error()
	}
	c.JSON(apiErr.Status, env)
}
