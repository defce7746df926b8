package vercel_test

import (
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fivetwenty-io/vercel-client/pkg/vercel"
)

func TestAPIErrorMessages(t *testing.T) {
	t.Parallel()

	reset := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name     string
		err      *vercel.APIError
		expected string
	}{
		{
			name:     "not found names the resource",
			err:      vercel.NewNotFoundError("/v13/deployments/dpl_404"),
			expected: "not_found: /v13/deployments/dpl_404",
		},
		{
			name:     "rate limit names the reset time",
			err:      vercel.NewRateLimitError(reset),
			expected: "rate_limit_exceeded: resets at 2025-06-01T12:00:00Z",
		},
		{
			name:     "api error carries server code",
			err:      vercel.NewAPIError("internal_error", "Something broke"),
			expected: "api_error: Something broke (internal_error)",
		},
		{
			name:     "authentication failure carries the message",
			err:      vercel.NewAuthenticationFailedError("invalid token"),
			expected: "authentication_failed: invalid token",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.expected, tt.err.Error())
		})
	}
}

func TestAPIErrorUnwrap(t *testing.T) {
	t.Parallel()

	cause := errors.New("connection refused")
	err := vercel.NewNetworkError(cause)

	assert.ErrorIs(t, err, cause)
	assert.Contains(t, err.Error(), "connection refused")
}

func TestErrorPredicates(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		err     error
		matches func(error) bool
	}{
		{name: "not found", err: vercel.NewNotFoundError("/x"), matches: vercel.IsNotFound},
		{name: "authentication failed", err: vercel.NewAuthenticationFailedError("x"), matches: vercel.IsAuthenticationFailed},
		{name: "token expired", err: vercel.NewTokenExpiredError(), matches: vercel.IsTokenExpired},
		{name: "rate limited", err: vercel.NewRateLimitError(time.Now()), matches: vercel.IsRateLimited},
		{name: "network error", err: vercel.NewNetworkError(errors.New("x")), matches: vercel.IsNetworkError},
		{name: "decoding error", err: vercel.NewDecodingError(errors.New("x")), matches: vercel.IsDecodingError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.True(t, tt.matches(tt.err))
			assert.False(t, tt.matches(errors.New("some other error")))
		})
	}
}

func TestErrorPredicatesSeeThroughWrapping(t *testing.T) {
	t.Parallel()

	wrapped := fmt.Errorf("listing projects: %w", vercel.NewNotFoundError("/v9/projects/missing"))

	assert.True(t, vercel.IsNotFound(wrapped))

	apiErr := &vercel.APIError{}
	require.ErrorAs(t, wrapped, &apiErr)
	assert.Equal(t, "/v9/projects/missing", apiErr.Resource)
}

func TestParseErrorEnvelope(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		body     string
		expected *vercel.ErrorDetail
	}{
		{
			name:     "well-formed envelope",
			body:     `{"error":{"code":"forbidden","message":"Not authorized"}}`,
			expected: &vercel.ErrorDetail{Code: "forbidden", Message: "Not authorized"},
		},
		{name: "empty body", body: "", expected: nil},
		{name: "not json", body: "Bad Gateway", expected: nil},
		{name: "json without envelope", body: `{"message":"nope"}`, expected: nil},
		{name: "null error field", body: `{"error":null}`, expected: nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			detail, ok := vercel.ParseErrorEnvelope([]byte(tt.body))
			if tt.expected == nil {
				assert.False(t, ok)

				return
			}

			require.True(t, ok)
			assert.Equal(t, tt.expected, detail)
		})
	}
}
