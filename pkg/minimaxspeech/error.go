package minimaxspeech

import (
	"encoding/json"
	"errors"
	"fmt"
)

// statusDescriptions maps business status codes to short descriptions.
var statusDescriptions = map[int64]string{
	1000: "unknown error",
	1001: "timeout",
	1002: "rate limit triggered",
	1004: "authentication failed",
	1039: "TPM rate limit triggered",
	1042: "illegal characters exceeded 10% of input",
	2013: "invalid input format",
	2039: "voice ID already exists",
}

// StatusDescription returns the description for a business status code.
// Unknown codes map to "unknown error".
func StatusDescription(code int64) string {
	if desc, ok := statusDescriptions[code]; ok {
		return desc
	}
	return "unknown error"
}

// Error is an API-level error: the HTTP exchange completed but the service
// reported a failure, either through a non-200 HTTP status or through the
// base_resp envelope.
type Error struct {
	// StatusCode is the business status code from base_resp. Zero when the
	// body carried no envelope.
	StatusCode int64 `json:"status_code"`

	// StatusMsg is the service's status message, or the raw body for
	// responses without an envelope.
	StatusMsg string `json:"status_msg"`

	// HTTPStatus is the HTTP status code of the response.
	HTTPStatus int `json:"-"`

	// Raw is the full response payload, kept for diagnostics.
	Raw json.RawMessage `json:"-"`
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.StatusCode == 0 && e.HTTPStatus != 0 {
		return fmt.Sprintf("minimax: HTTP %d: %s", e.HTTPStatus, e.StatusMsg)
	}
	return fmt.Sprintf("minimax: %s: %s (code=%d)", StatusDescription(e.StatusCode), e.StatusMsg, e.StatusCode)
}

// IsRateLimit returns true for rate limit errors, including TPM limits.
func (e *Error) IsRateLimit() bool {
	return e.StatusCode == 1002 || e.StatusCode == 1039 || e.HTTPStatus == 429
}

// IsAuthFailed returns true when authentication failed.
func (e *Error) IsAuthFailed() bool {
	return e.StatusCode == 1004 || e.HTTPStatus == 401
}

// IsTimeout returns true when the service reported a timeout.
func (e *Error) IsTimeout() bool {
	return e.StatusCode == 1001
}

// IsVoiceExists returns true when a clone targeted an existing voice ID.
func (e *Error) IsVoiceExists() bool {
	return e.StatusCode == 2039
}

// IsServerError returns true for server-side HTTP failures.
func (e *Error) IsServerError() bool {
	return e.HTTPStatus >= 500
}

// Retryable returns true if the request could be retried. The client never
// retries on its own.
func (e *Error) Retryable() bool {
	return e.IsRateLimit() || e.IsTimeout() || e.IsServerError()
}

// AsError extracts *Error from an error.
//
// Example:
//
//	if e, ok := minimaxspeech.AsError(err); ok {
//	    if e.IsRateLimit() {
//	        // Back off
//	    }
//	}
func AsError(err error) (*Error, bool) {
	var e *Error
	if errors.As(err, &e) {
		return e, true
	}
	return nil, false
}

// ValidationError reports a request that failed local validation. No network
// traffic happens for such requests.
type ValidationError struct {
	// Field is the offending request field.
	Field string

	// Message describes the violated rule.
	Message string
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	return "minimax: " + e.Message
}

// AsValidationError extracts *ValidationError from an error.
func AsValidationError(err error) (*ValidationError, bool) {
	var e *ValidationError
	if errors.As(err, &e) {
		return e, true
	}
	return nil, false
}

// TransportError reports a network-level failure before a response was
// received.
type TransportError struct {
	// Op names the operation that failed.
	Op string

	// URL is the request URL.
	URL string

	// Err is the underlying error.
	Err error
}

// Error implements the error interface.
func (e *TransportError) Error() string {
	return fmt.Sprintf("minimax: %s: request failed: %v", e.Op, e.Err)
}

// Unwrap returns the underlying error.
func (e *TransportError) Unwrap() error {
	return e.Err
}

// TimeoutError reports a request that exceeded its deadline. It is kept
// separate from TransportError so callers can retry timeouts specifically.
type TimeoutError struct {
	// Op names the operation that timed out.
	Op string

	// URL is the request URL.
	URL string

	// Err is the underlying error.
	Err error
}

// Error implements the error interface.
func (e *TimeoutError) Error() string {
	return fmt.Sprintf("minimax: %s: request timed out", e.Op)
}

// Unwrap returns the underlying error.
func (e *TimeoutError) Unwrap() error {
	return e.Err
}

// NotFoundError reports a local file that does not exist. It is returned
// before any network traffic.
type NotFoundError struct {
	// Path is the missing file.
	Path string
}

// Error implements the error interface.
func (e *NotFoundError) Error() string {
	return "minimax: file not found: " + e.Path
}
