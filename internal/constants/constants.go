package constants

import "time"

// API endpoints.
const (
	// DefaultAPIEndpoint is the public API host.
	DefaultAPIEndpoint = "https://api.vercel.com"
)

// File and directory permissions.
const (
	// ConfigDirPerm is the permission for configuration directories.
	ConfigDirPerm = 0750

	// ConfigFilePerm is the permission for configuration files.
	ConfigFilePerm = 0600
)

// HTTP and network timeouts.
const (
	// DefaultHTTPTimeout is the default timeout for HTTP requests.
	DefaultHTTPTimeout = 30 * time.Second

	// ShortHTTPTimeout is used for quick operations.
	ShortHTTPTimeout = 10 * time.Second
)

// Retry limits. Transport retries are disabled unless configured.
const (
	// DefaultRetryWaitMin is the minimum wait time between retries.
	DefaultRetryWaitMin = 1 * time.Second

	// DefaultRetryWaitMax is the maximum wait time between retries.
	DefaultRetryWaitMax = 10 * time.Second
)

// Rate limiting.
const (
	// DefaultRateLimitWindow is the reset delay assumed for a 429 response
	// that carries no X-RateLimit-Reset header.
	DefaultRateLimitWindow = 60 * time.Second
)

// Pagination limits.
const (
	// DefaultPageSize is the default number of items per page.
	DefaultPageSize = 20

	// MaxPageSize is the largest page size the API accepts.
	MaxPageSize = 100
)

// Header names.
const (
	// HeaderRateLimitLimit carries the request quota for the current window.
	HeaderRateLimitLimit = "X-RateLimit-Limit"

	// HeaderRateLimitRemaining carries the requests left in the window.
	HeaderRateLimitRemaining = "X-RateLimit-Remaining"

	// HeaderRateLimitReset carries the window reset time in epoch seconds.
	HeaderRateLimitReset = "X-RateLimit-Reset"
)
