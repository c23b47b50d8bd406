package models

import (
	"fmt"
	"strings"

	"github.com/gofiber/fiber/v2"
)

// Error codes used across the API.
const (
	CodeMissingField    = "MISSING_FIELD"
	CodeValidationError = "VALIDATION_ERROR"
	CodeDuplicatePost   = "DUPLICATE_POST"
	CodeInvalidID       = "INVALID_ID"
	CodeNotFound        = "NOT_FOUND"
	CodeInternalError   = "INTERNAL_ERROR"
)

// ErrorResponse is the standardized API error body: a human-readable message
// plus either a single underlying error string or per-field messages.
type ErrorResponse struct {
	Message string   `json:"message"`
	Error   string   `json:"error,omitempty"`
	Errors  []string `json:"errors,omitempty"`
}

// AppError is a classified application error.
type AppError struct {
	Code    string
	Message string
	Fields  []string
	Err     error
}

func (e *AppError) Error() string {
	switch {
	case e.Err != nil:
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	case len(e.Fields) > 0:
		return fmt.Sprintf("%s: %s", e.Message, strings.Join(e.Fields, "; "))
	default:
		return e.Message
	}
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// NewMissingFieldError reports absent required fields.
func NewMissingFieldError(message string) *AppError {
	return &AppError{Code: CodeMissingField, Message: message}
}

// NewValidationError reports one or more per-field validation failures.
func NewValidationError(fieldMessages ...string) *AppError {
	return &AppError{
		Code:    CodeValidationError,
		Message: "Validation error",
		Fields:  fieldMessages,
	}
}

// NewDuplicatePostError reports a case-insensitive title collision.
func NewDuplicatePostError() *AppError {
	return &AppError{Code: CodeDuplicatePost, Message: "A post with this title already exists"}
}

// NewInvalidIDError reports a malformed post identifier.
func NewInvalidIDError() *AppError {
	return &AppError{Code: CodeInvalidID, Message: "Invalid post ID"}
}

// NewNotFoundError reports an absent post.
func NewNotFoundError() *AppError {
	return &AppError{Code: CodeNotFound, Message: "Post not found"}
}

// NewInternalError wraps an unexpected store or runtime failure.
func NewInternalError(message string, err error) *AppError {
	return &AppError{Code: CodeInternalError, Message: message, Err: err}
}

// StatusCode maps the error code to its HTTP status.
func (e *AppError) StatusCode() int {
	switch e.Code {
	case CodeNotFound:
		return fiber.StatusNotFound
	case CodeMissingField, CodeValidationError, CodeDuplicatePost, CodeInvalidID:
		return fiber.StatusBadRequest
	default:
		return fiber.StatusInternalServerError
	}
}

// RespondWithError writes a standardized error response. Unclassified errors
// become 500s with the underlying failure text included.
func RespondWithError(c *fiber.Ctx, err error) error {
	appErr, ok := err.(*AppError)
	if !ok {
		appErr = NewInternalError("Internal server error", err)
	}

	response := ErrorResponse{Message: appErr.Message}
	switch {
	case len(appErr.Fields) > 0:
		response.Errors = appErr.Fields
	case appErr.Err != nil:
		response.Error = appErr.Err.Error()
	}

	return c.Status(appErr.StatusCode()).JSON(response)
}
