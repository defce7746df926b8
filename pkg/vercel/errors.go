package vercel

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"
)

// ErrorCode identifies one variant of the client's error taxonomy. The set is
// closed: every failure surfaced by the library carries exactly one of these
// codes.
type ErrorCode string

const (
	ErrorCodeAuthenticationFailed ErrorCode = "authentication_failed"
	ErrorCodeTokenExpired         ErrorCode = "token_expired"
	ErrorCodeRateLimitExceeded    ErrorCode = "rate_limit_exceeded"
	ErrorCodeNetworkError         ErrorCode = "network_error"
	ErrorCodeInvalidResponse      ErrorCode = "invalid_response"
	ErrorCodeAPIError             ErrorCode = "api_error"
	ErrorCodeValidationError      ErrorCode = "validation_error"
	ErrorCodeNotFound             ErrorCode = "not_found"
	ErrorCodeDecodingError        ErrorCode = "decoding_error"
	ErrorCodeUnknown              ErrorCode = "unknown"
)

// TokenExpiredMarker is the structured error code the API uses on 403
// responses when the bearer token has expired.
const TokenExpiredMarker = "token_expired"

// APIError represents a classified failure from the Vercel API client. Code
// selects the taxonomy variant; the remaining fields carry only the data that
// variant needs (Resource for not_found, ResetAt for rate_limit_exceeded,
// APICode for server-supplied error codes).
type APIError struct {
	Code       ErrorCode
	Message    string
	APICode    string
	Resource   string
	ResetAt    time.Time
	HTTPStatus int

	cause error
}

// Error implements the error interface.
func (e *APIError) Error() string {
	switch e.Code {
	case ErrorCodeNotFound:
		return fmt.Sprintf("%s: %s", e.Code, e.Resource)
	case ErrorCodeRateLimitExceeded:
		return fmt.Sprintf("%s: resets at %s", e.Code, e.ResetAt.Format(time.RFC3339))
	case ErrorCodeAPIError:
		return fmt.Sprintf("%s: %s (%s)", e.Code, e.Message, e.APICode)
	default:
		if e.cause != nil {
			return fmt.Sprintf("%s: %v", e.Code, e.cause)
		}

		return fmt.Sprintf("%s: %s", e.Code, e.Message)
	}
}

// Unwrap exposes the underlying cause for errors.Is/errors.As chains.
func (e *APIError) Unwrap() error {
	return e.cause
}

// NewAuthenticationFailedError builds the authentication_failed variant.
func NewAuthenticationFailedError(message string) *APIError {
	return &APIError{Code: ErrorCodeAuthenticationFailed, Message: message}
}

// NewTokenExpiredError builds the token_expired variant.
func NewTokenExpiredError() *APIError {
	return &APIError{Code: ErrorCodeTokenExpired, Message: "token expired"}
}

// NewRateLimitError builds the rate_limit_exceeded variant carrying the time
// at which the quota window resets.
func NewRateLimitError(resetAt time.Time) *APIError {
	return &APIError{Code: ErrorCodeRateLimitExceeded, Message: "rate limit exceeded", ResetAt: resetAt}
}

// NewNetworkError wraps a transport-level failure (DNS, connect, timeout, TLS).
func NewNetworkError(cause error) *APIError {
	return &APIError{Code: ErrorCodeNetworkError, Message: "network error", cause: cause}
}

// NewInvalidResponseError builds the invalid_response variant for responses
// whose shape does not match the documented envelope.
func NewInvalidResponseError(message string) *APIError {
	return &APIError{Code: ErrorCodeInvalidResponse, Message: message}
}

// NewAPIError builds the generic api_error variant from a server-supplied
// code and message.
func NewAPIError(apiCode, message string) *APIError {
	return &APIError{Code: ErrorCodeAPIError, APICode: apiCode, Message: message}
}

// NewValidationError builds the validation_error variant for request-side
// failures such as an unserializable body.
func NewValidationError(message string) *APIError {
	return &APIError{Code: ErrorCodeValidationError, Message: message}
}

// NewNotFoundError builds the not_found variant carrying the requested
// resource path.
func NewNotFoundError(resource string) *APIError {
	return &APIError{Code: ErrorCodeNotFound, Message: "resource not found", Resource: resource}
}

// NewDecodingError wraps a failure to decode a success body into the caller's
// expected type.
func NewDecodingError(cause error) *APIError {
	return &APIError{Code: ErrorCodeDecodingError, Message: "decoding error", cause: cause}
}

// NewUnknownError wraps a failure that fits no other variant.
func NewUnknownError(cause error) *APIError {
	return &APIError{Code: ErrorCodeUnknown, Message: "unknown error", cause: cause}
}

// errorIs reports whether err carries the given taxonomy code.
func errorIs(err error, code ErrorCode) bool {
	apiErr := &APIError{}
	if errors.As(err, &apiErr) {
		return apiErr.Code == code
	}

	return false
}

// IsNotFound checks if the error is a not found error.
func IsNotFound(err error) bool {
	return errorIs(err, ErrorCodeNotFound)
}

// IsAuthenticationFailed checks if the error is an authentication failure.
func IsAuthenticationFailed(err error) bool {
	return errorIs(err, ErrorCodeAuthenticationFailed)
}

// IsTokenExpired checks if the error reports an expired bearer token.
func IsTokenExpired(err error) bool {
	return errorIs(err, ErrorCodeTokenExpired)
}

// IsRateLimited checks if the error is a rate limit rejection.
func IsRateLimited(err error) bool {
	return errorIs(err, ErrorCodeRateLimitExceeded)
}

// IsNetworkError checks if the error is a transport-level failure.
func IsNetworkError(err error) bool {
	return errorIs(err, ErrorCodeNetworkError)
}

// IsDecodingError checks if the error is a response decoding failure.
func IsDecodingError(err error) bool {
	return errorIs(err, ErrorCodeDecodingError)
}

// ErrorDetail is the structured error payload the API wraps failures in.
type ErrorDetail struct {
	Code    string `json:"code"    yaml:"code"`
	Message string `json:"message" yaml:"message"`
}

// errorEnvelope is the wire shape of an API error response.
type errorEnvelope struct {
	Error *ErrorDetail `json:"error"`
}

// ParseErrorEnvelope opportunistically parses an error response body of the
// form {"error":{"code","message"}}. The second return is false when the body
// is empty, not JSON, or lacks the envelope; classification falls back to
// fixed messages in that case and never fails.
func ParseErrorEnvelope(data []byte) (*ErrorDetail, bool) {
	if len(data) == 0 {
		return nil, false
	}

	var envelope errorEnvelope
	if err := json.Unmarshal(data, &envelope); err != nil || envelope.Error == nil {
		return nil, false
	}

	return envelope.Error, true
}

// Static errors for err113 compliance.
var (
	ErrNoMoreItems      = errors.New("no more items")
	ErrConfigRequired   = errors.New("config is required")
	ErrTokenRequired    = errors.New("access token is required")
	ErrEndpointRequired = errors.New("API endpoint is required")
)
