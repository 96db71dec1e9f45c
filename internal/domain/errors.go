package domain

import "fmt"

// ErrorCode represents a specific type of error in the domain
type ErrorCode string

const (
	// Common errors
	ErrInternal     ErrorCode = "INTERNAL_ERROR"
	ErrInvalidInput ErrorCode = "INVALID_INPUT"
	ErrNotFound     ErrorCode = "NOT_FOUND"

	// Model invocation errors
	ErrModelUnavailable ErrorCode = "MODEL_UNAVAILABLE"
	ErrModelError       ErrorCode = "MODEL_ERROR"

	// Quiz specific errors
	ErrQuizUnparseable ErrorCode = "QUIZ_UNPARSEABLE"
)

// DomainError represents a domain-specific error
type DomainError struct {
	Code    ErrorCode
	Message string
	Err     error
}

func (e *DomainError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *DomainError) Unwrap() error {
	return e.Err
}

// NewError creates a new DomainError
func NewError(code ErrorCode, message string, err error) *DomainError {
	return &DomainError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}

// Helper functions for common errors
func NewNotFoundError(message string) *DomainError {
	return NewError(ErrNotFound, message, nil)
}

func NewInvalidInputError(message string) *DomainError {
	return NewError(ErrInvalidInput, message, nil)
}

func NewInternalError(message string, err error) *DomainError {
	return NewError(ErrInternal, message, err)
}

func NewModelUnavailableError(err error) *DomainError {
	return NewError(ErrModelUnavailable, "Model backend is not reachable", err)
}

func NewModelError(message string, err error) *DomainError {
	return NewError(ErrModelError, message, err)
}

func NewQuizUnparseableError() *DomainError {
	return NewError(ErrQuizUnparseable, "Could not parse a quiz from the model output", nil)
}

// IsCode reports whether err is a DomainError carrying the given code.
func IsCode(err error, code ErrorCode) bool {
	de, ok := err.(*DomainError)
	return ok && de.Code == code
}
