package apperr

import (
	"fmt"

	"github.com/gofiber/fiber/v2"
)

const (
	CodeNotFound             = "NOT_FOUND"
	CodeInvalidRequest       = "INVALID_REQUEST"
	CodeConfirmationRequired = "CONFIRMATION_REQUIRED"
	CodeInternalError        = "INTERNAL_ERROR"
)

var (
	// ErrNotFound is returned when a phase, week or day does not exist in the catalog.
	ErrNotFound = New(fiber.StatusNotFound, CodeNotFound, "resource not found with given parameters")

	// ErrInvalidReq is returned when a request is invalid.
	ErrInvalidReq = New(fiber.StatusBadRequest, CodeInvalidRequest, "invalid request: some or all request parameters are invalid")

	// ErrConfirmationRequired is returned when a destructive operation was not explicitly confirmed.
	ErrConfirmationRequired = New(fiber.StatusPreconditionRequired, CodeConfirmationRequired, "this operation requires explicit confirmation")

	// ErrInternalError is returned when an internal error occurs.
	ErrInternalError = New(fiber.StatusInternalServerError, CodeInternalError, "internal server error occurred")
)

type Extras map[string]any

type AppError struct {
	StatusCode int
	ErrorCode  string
	Message    string
	Extras     *Extras
}

func New(statusCode int, errorCode string, message string) *AppError {
	return &AppError{
		StatusCode: statusCode,
		ErrorCode:  errorCode,
		Message:    message,
	}
}

// Msg returns a copy of e with a formatted message.
func (e AppError) Msg(format string, parts ...any) *AppError {
	e.Message = fmt.Sprintf(format, parts...)
	return &e
}

// WithExtras returns a copy of e carrying extra response fields.
func (e AppError) WithExtras(extras Extras) *AppError {
	e.Extras = &extras
	return &e
}

func NewInvalidViolations(violations any) *AppError {
	return ErrInvalidReq.WithExtras(Extras{
		"violations": violations,
	})
}

func (e *AppError) Error() string {
	return fmt.Sprintf("%s: %s", e.ErrorCode, e.Message)
}

// Is matches errors by code so that errors.Is works on the copies Msg and
// WithExtras produce.
func (e *AppError) Is(target error) bool {
	t, ok := target.(*AppError)
	return ok && t.ErrorCode == e.ErrorCode
}
