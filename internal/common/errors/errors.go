// Package errors provides standardized error handling for the action server.
package errors

import (
	"context"
	stderrors "errors"
	"fmt"
	"net"
	"time"
)

// ==========================
// 1. Standard Error Types
// ==========================

// ErrorCode represents standardized internal error codes.
type ErrorCode string

const (
	ErrCodeRequestParsingFailed    ErrorCode = "REQUEST_PARSING_FAILED"
	ErrCodeRequestValidationFailed ErrorCode = "REQUEST_VALIDATION_FAILED"
	ErrCodeActionNotFound          ErrorCode = "ACTION_NOT_FOUND"
	ErrCodeActionExecutionFailed   ErrorCode = "ACTION_EXECUTION_FAILED"
)

// StandardError represents a structured application error.
type StandardError struct {
	Code      ErrorCode `json:"code"`
	Message   string    `json:"message"`
	Details   string    `json:"details,omitempty"`
	Timestamp time.Time `json:"timestamp"`
}

func (e *StandardError) Error() string {
	return fmt.Sprintf("StandardError[%s]: %s", e.Code, e.Message)
}

// ==========================
// 2. Error Constructors
// ==========================

// NewRequestParsingError marks a webhook body that could not be decoded.
func NewRequestParsingError(details string) *StandardError {
	return &StandardError{
		Code:      ErrCodeRequestParsingFailed,
		Message:   "Failed to parse webhook request",
		Details:   details,
		Timestamp: time.Now(),
	}
}

// NewRequestValidationError marks a webhook body that decoded but failed
// schema validation.
func NewRequestValidationError(details string) *StandardError {
	return &StandardError{
		Code:      ErrCodeRequestValidationFailed,
		Message:   "Webhook request failed schema validation",
		Details:   details,
		Timestamp: time.Now(),
	}
}

// NewActionNotFoundError marks a request naming an unregistered action.
func NewActionNotFoundError(actionName string) *StandardError {
	return &StandardError{
		Code:      ErrCodeActionNotFound,
		Message:   fmt.Sprintf("No registered action found for name '%s'", actionName),
		Timestamp: time.Now(),
	}
}

// NewActionExecutionError wraps an unexpected failure inside an action run.
func NewActionExecutionError(actionName string, err error) *StandardError {
	return &StandardError{
		Code:      ErrCodeActionExecutionFailed,
		Message:   fmt.Sprintf("Action '%s' failed", actionName),
		Details:   err.Error(),
		Timestamp: time.Now(),
	}
}

// CodeOf extracts the error code from an error, falling back to a generic
// execution-failure code.
func CodeOf(err error) ErrorCode {
	var stdErr *StandardError
	if stderrors.As(err, &stdErr) {
		return stdErr.Code
	}
	return ErrCodeActionExecutionFailed
}

// ==========================
// 3. Transport Classification
// ==========================

// IsTimeout reports whether err is a deadline or network timeout. Any other
// transport failure (refused connection, DNS error) is classified as a plain
// connectivity problem by the callers.
func IsTimeout(err error) bool {
	if stderrors.Is(err, context.DeadlineExceeded) {
		return true
	}
	var netErr net.Error
	return stderrors.As(err, &netErr) && netErr.Timeout()
}
