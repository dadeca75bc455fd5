package model

import (
	"errors"
	"fmt"
)

// Error codes surfaced to HTTP clients. The admin UI branches on CodeReadOnly.
const (
	CodeValidation      = "VALIDATION"
	CodeUnauthenticated = "UNAUTHENTICATED"
	CodeNotConfigured   = "NOT_CONFIGURED"
	CodeNotFound        = "NOT_FOUND"
	CodeReadOnly        = "READ_ONLY"
	CodeUnknownIO       = "UNKNOWN_IO"
)

// Errors
var (
	ErrValidation    = errors.New("invalid content request")
	ErrNotConfigured = errors.New("content store not configured")
	ErrNotFound      = errors.New("content document not found")
	ErrReadOnly      = errors.New("content store is read-only")
	ErrUnknownIO     = errors.New("content store i/o failure")

	// ErrCorrupt marks an UNKNOWN_IO failure whose stored payload could not be decoded.
	ErrCorrupt = errors.New("stored content is not valid JSON")
)

// ContentError carries the taxonomy code, an operator-facing message and,
// for some classes, a remediation hint.
type ContentError struct {
	Code       string
	Message    string
	Suggestion string
	Err        error
}

func (e *ContentError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *ContentError) Unwrap() error { return e.Err }

// Is matches the sentinel for the error's code, so errors.Is(err, ErrReadOnly)
// holds whatever cause was wrapped.
func (e *ContentError) Is(target error) bool {
	return sentinelFor(e.Code) == target
}

func sentinelFor(code string) error {
	switch code {
	case CodeValidation:
		return ErrValidation
	case CodeNotConfigured:
		return ErrNotConfigured
	case CodeNotFound:
		return ErrNotFound
	case CodeReadOnly:
		return ErrReadOnly
	case CodeUnknownIO:
		return ErrUnknownIO
	}
	return nil
}

// Error constructors

func NewValidationError(message string, cause error) *ContentError {
	return &ContentError{Code: CodeValidation, Message: message, Err: cause}
}

func NewNotConfiguredError(message, suggestion string) *ContentError {
	return &ContentError{Code: CodeNotConfigured, Message: message, Suggestion: suggestion}
}

func NewNotFoundError(message, suggestion string, cause error) *ContentError {
	return &ContentError{Code: CodeNotFound, Message: message, Suggestion: suggestion, Err: cause}
}

func NewReadOnlyError(message, suggestion string, cause error) *ContentError {
	return &ContentError{Code: CodeReadOnly, Message: message, Suggestion: suggestion, Err: cause}
}

func NewUnknownIOError(message string, cause error) *ContentError {
	return &ContentError{Code: CodeUnknownIO, Message: message, Err: cause}
}

// NewCorruptError is an UNKNOWN_IO error that also matches ErrCorrupt.
func NewCorruptError(message string, cause error) *ContentError {
	return &ContentError{Code: CodeUnknownIO, Message: message, Err: fmt.Errorf("%w: %w", ErrCorrupt, cause)}
}

// CodeOf returns the taxonomy code of err, or CodeUnknownIO for anything unclassified.
func CodeOf(err error) string {
	var ce *ContentError
	if errors.As(err, &ce) {
		return ce.Code
	}
	return CodeUnknownIO
}
