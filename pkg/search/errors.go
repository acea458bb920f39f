package search

import (
	"fmt"
)

// Error codes
const (
	ErrCodeUnsupportedProvider  = "UnsupportedProvider"
	ErrCodeInvalidConfiguration = "InvalidConfiguration"
	ErrCodeNetwork              = "NetworkError"
	ErrCodeRateLimited          = "RateLimitedError"
	ErrCodeServiceUnavailable   = "ServiceUnavailableError"
	ErrCodeInvalidRequest       = "InvalidRequestError"
	ErrCodeUnknown              = "UnknownError"
)

// ProviderError represents an error from a search provider
type ProviderError struct {
	Code      string
	Message   string
	Cause     error
	Retryable bool
}

// Error implements the error interface
func (e *ProviderError) Error() string {
	msg := fmt.Sprintf("%s: %s", e.Code, e.Message)
	if e.Cause != nil {
		msg += fmt.Sprintf(" (caused by: %v)", e.Cause)
	}
	return msg
}

// Unwrap returns the cause of the error
func (e *ProviderError) Unwrap() error {
	return e.Cause
}

// NewProviderError creates a new ProviderError
func NewProviderError(code string, message string, cause error) *ProviderError {
	retryable := false
	switch code {
	case ErrCodeNetwork, ErrCodeRateLimited, ErrCodeServiceUnavailable:
		retryable = true
	}

	return &ProviderError{
		Code:      code,
		Message:   message,
		Cause:     cause,
		Retryable: retryable,
	}
}
