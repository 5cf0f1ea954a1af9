package apperror

import (
	"errors"
	"fmt"
)

// Kind classifies application errors so the HTTP layer can map them to a
// status code without inspecting error strings.
type Kind int

const (
	KindUnknown Kind = iota
	KindValidation
	KindAuth
	KindNotFound
	KindConflict
	KindUpstream
)

type AppError struct {
	Kind      Kind
	Message   string
	Retryable bool // only meaningful for KindUpstream
	cause     error
}

func (e *AppError) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.cause)
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.cause
}

func Validation(message string) *AppError {
	return &AppError{Kind: KindValidation, Message: message}
}

func Auth(message string) *AppError {
	return &AppError{Kind: KindAuth, Message: message}
}

func NotFound(message string) *AppError {
	return &AppError{Kind: KindNotFound, Message: message}
}

func Conflict(message string) *AppError {
	return &AppError{Kind: KindConflict, Message: message}
}

// Upstream wraps a failure from the AI provider. Retryable distinguishes
// timeouts and 5xx responses from 4xx and parse failures.
func Upstream(message string, retryable bool, cause error) *AppError {
	return &AppError{Kind: KindUpstream, Message: message, Retryable: retryable, cause: cause}
}

// KindOf extracts the Kind from an error chain, KindUnknown if none.
func KindOf(err error) Kind {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Kind
	}
	return KindUnknown
}

// MessageOf returns the user-facing message of an application error, or a
// generic fallback for unexpected errors so internals never leak to clients.
func MessageOf(err error) string {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Message
	}
	return "An unexpected error occurred"
}
