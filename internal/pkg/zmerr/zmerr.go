package zmerr

import (
	"fmt"

	"github.com/gofiber/fiber/v2"
)

const (
	CodeNotFound       = "NOT_FOUND"
	CodeInvalidRequest = "INVALID_REQUEST"
	CodeConflict       = "CONFLICT"
	CodeUnavailable    = "UNAVAILABLE"
	CodeInternalError  = "INTERNAL_ERROR"
)

var (
	// ErrNotFound is returned when a resource is not found.
	ErrNotFound = New(fiber.StatusNotFound, CodeNotFound, "not found")

	// ErrInvalidReq is returned when a request is invalid.
	ErrInvalidReq = New(fiber.StatusUnprocessableEntity, CodeInvalidRequest, "invalid request: some or all request parameters are invalid")

	// ErrConflict is returned when an operation would violate a referential invariant.
	ErrConflict = New(fiber.StatusUnprocessableEntity, CodeConflict, "operation conflicts with existing records")

	// ErrUnavailable is returned when a backing store is unreachable. Safe for the caller to retry.
	ErrUnavailable = New(fiber.StatusServiceUnavailable, CodeUnavailable, "backend temporarily unavailable")

	// ErrInternalError is returned when an internal error occurs.
	ErrInternalError = New(fiber.StatusInternalServerError, CodeInternalError, "internal server error occurred")
)

type Extras map[string]interface{}

// Violation describes one failed per-field constraint.
type Violation struct {
	Field     string `json:"field,omitempty"`
	Violation string `json:"violation"`
	Message   string `json:"message"`
}

type ZoningError struct {
	StatusCode int    `example:"422"`
	ErrorCode  string `example:"INVALID_REQUEST"`
	Message    string `example:"invalid request: some or all request parameters are invalid"`
	Extras     *Extras
}

func New(statusCode int, errorCode string, message string) *ZoningError {
	return &ZoningError{
		StatusCode: statusCode,
		ErrorCode:  errorCode,
		Message:    message,
	}
}

// Msg returns a copy of the error with a formatted message. The receiver is
// a value on purpose so the package-level sentinels stay immutable.
func (e ZoningError) Msg(format string, parts ...interface{}) *ZoningError {
	e.Message = fmt.Sprintf(format, parts...)
	return &e
}

func (e ZoningError) WithExtras(extras Extras) *ZoningError {
	e.Extras = &extras
	return &e
}

func NewInvalidViolations(violations interface{}) *ZoningError {
	e := *ErrInvalidReq
	e.Extras = &Extras{
		"violations": violations,
	}
	return &e
}

func (e *ZoningError) Error() string {
	return fmt.Sprintf("%s: %s", e.ErrorCode, e.Message)
}
