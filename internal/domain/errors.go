package domain

import (
	"fmt"
	"strings"
)

// ErrorCode represents a specific type of error in the domain
type ErrorCode string

const (
	// Common errors
	ErrInternal     ErrorCode = "INTERNAL_ERROR"
	ErrInvalidInput ErrorCode = "INVALID_INPUT"

	// Pipeline specific errors
	ErrArrayNotFound  ErrorCode = "ARRAY_NOT_FOUND"
	ErrInvalidRecord  ErrorCode = "INVALID_RECORD"
	ErrMarkerNotFound ErrorCode = "MARKER_NOT_FOUND"
	ErrInsertLine     ErrorCode = "INSERT_LINE_OUT_OF_RANGE"
	ErrSourceRead     ErrorCode = "SOURCE_READ_FAILED"
	ErrPageRead       ErrorCode = "PAGE_READ_FAILED"
	ErrPageWrite      ErrorCode = "PAGE_WRITE_FAILED"
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

func NewInternalError(message string, err error) *DomainError {
	return NewError(ErrInternal, message, err)
}

func NewInvalidInputError(message string) *DomainError {
	return NewError(ErrInvalidInput, message, nil)
}

// NewArrayNotFoundError reports that the named array literal is absent
// from the source document. This is fatal: nothing downstream may run.
func NewArrayNotFoundError(variable string) *DomainError {
	return NewError(ErrArrayNotFound, fmt.Sprintf("could not find %s array", variable), nil)
}

// NewInvalidRecordError reports a single record fragment that failed to
// parse. Index is 1-based to match the human-facing diagnostics.
func NewInvalidRecordError(index int, err error) *DomainError {
	return NewError(ErrInvalidRecord, fmt.Sprintf("error parsing question %d", index), err)
}

// NewMarkerNotFoundError reports that the insertion sentinel line is
// missing from the destination page.
func NewMarkerNotFoundError(marker string) *DomainError {
	return NewError(ErrMarkerNotFound, fmt.Sprintf("insertion marker %q not found in page", marker), nil)
}

// NewInsertLineError reports a fixed insertion index that falls outside
// the destination page.
func NewInsertLineError(line, lineCount int) *DomainError {
	return NewError(ErrInsertLine, fmt.Sprintf("insert line %d is out of range for a page of %d lines", line, lineCount), nil)
}

func NewSourceReadError(path string, err error) *DomainError {
	return NewError(ErrSourceRead, fmt.Sprintf("failed to read source document %s", path), err)
}

func NewPageReadError(path string, err error) *DomainError {
	return NewError(ErrPageRead, fmt.Sprintf("failed to read page %s", path), err)
}

func NewPageWriteError(path string, err error) *DomainError {
	return NewError(ErrPageWrite, fmt.Sprintf("failed to write page %s", path), err)
}

// ValidationError represents a validation error on a single field
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("%s %s", e.Field, e.Message)
	}
	return e.Message
}

// NewValidationError creates a field-less validation error
func NewValidationError(message string) *ValidationError {
	return &ValidationError{Message: message}
}

func NewMissingFieldError(field string) *ValidationError {
	return &ValidationError{Field: field, Message: "is required"}
}

func NewInvalidFormatError(field, value string) *ValidationError {
	return &ValidationError{Field: field, Message: fmt.Sprintf("has invalid format: %q", value)}
}

func NewOutOfRangeError(field string, value, min, max int) *ValidationError {
	return &ValidationError{Field: field, Message: fmt.Sprintf("value %d is out of range [%d, %d]", value, min, max)}
}

// ValidationErrors collects the validation errors for one record
type ValidationErrors []*ValidationError

func (e ValidationErrors) Error() string {
	msgs := make([]string, len(e))
	for i, ve := range e {
		msgs[i] = ve.Error()
	}
	return strings.Join(msgs, "; ")
}
