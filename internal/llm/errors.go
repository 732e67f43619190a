package llm

import (
	"errors"
	"fmt"
	"strings"
)

// Service error codes.
const (
	CodeInitFailed       = "LLM_INIT_FAILED"
	CodeGenerationFailed = "GENERATION_FAILED"
	CodeStreamFailed     = "STREAM_FAILED"
	CodeEmptyResponse    = "EMPTY_RESPONSE"
)

// ServiceError indicates a remote LLM call failed, transiently or
// permanently. Check with errors.As; the wrapped provider error is
// preserved for classification.
type ServiceError struct {
	Code    string
	Message string
	Err     error
}

func (e *ServiceError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *ServiceError) Unwrap() error { return e.Err }

// NewServiceError wraps err as a ServiceError with the given code.
func NewServiceError(code, message string, err error) *ServiceError {
	return &ServiceError{Code: code, Message: message, Err: err}
}

// ValidationError indicates caller input or configuration is invalid.
// Validation failures are never retried.
type ValidationError struct {
	Code    string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Code != "" {
		return fmt.Sprintf("%s: %s", e.Code, e.Message)
	}
	return e.Message
}

// NewValidationError creates a ValidationError without a code.
func NewValidationError(message string) *ValidationError {
	return &ValidationError{Message: message}
}

// IsService reports whether err is (or wraps) a ServiceError.
func IsService(err error) bool {
	var se *ServiceError
	return errors.As(err, &se)
}

// IsValidation reports whether err is (or wraps) a ValidationError.
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}

// quotaPatterns mark quota/rate-limit conditions. Quota failures are never
// retried within a single request: immediate retries burn the remaining
// quota without helping the user.
var quotaPatterns = []string{"429", "quota", "rate limit", "resource exhausted", "resource_exhausted"}

// retryablePatterns groups transient error substrings by category, matched
// case-insensitively against err.Error().
//
// NOTE: substring matching is used because LLM provider SDKs do not expose
// typed errors for every transient failure. Provider bindings additionally
// classify structured API errors by status code where available.
var retryablePatterns = [][]string{
	{"500", "502", "503", "504", "unavailable", "internal"}, // transient server errors
	{"connection reset", "timeout", "deadline", "temporary"}, // network errors
	{"aborted"}, // remote call aborted
}

// IsQuota reports whether err looks like a quota or rate-limit failure.
func IsQuota(err error) bool {
	if err == nil {
		return false
	}
	return containsAny(err.Error(), quotaPatterns...)
}

// Retryable reports whether err is transient and a retry may succeed.
// Quota conditions are deliberately retryable here: the one-shot path backs
// off between attempts, which is the correct response to rate limiting.
// Streaming callers must check IsQuota separately and not retry.
func Retryable(err error) bool {
	if err == nil {
		return false
	}
	if IsQuota(err) {
		return true
	}
	errStr := err.Error()
	for _, group := range retryablePatterns {
		if containsAny(errStr, group...) {
			return true
		}
	}
	return false
}

// containsAny checks if s contains any of the substrings (case-insensitive).
func containsAny(s string, substrs ...string) bool {
	lower := strings.ToLower(s)
	for _, sub := range substrs {
		if strings.Contains(lower, strings.ToLower(sub)) {
			return true
		}
	}
	return false
}
