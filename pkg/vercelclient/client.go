package vercelclient

import (
	"fmt"
	"strings"

	"github.com/fivetwenty-io/vercel-client/internal/client"
	"github.com/fivetwenty-io/vercel-client/internal/constants"
	"github.com/fivetwenty-io/vercel-client/pkg/vercel"
)

// New creates a new Vercel API client. Construction is the only fail-fast
// point in the library: a nil config or missing token is rejected here, and
// every later failure is returned as a typed error from the operation that
// hit it.
func New(config *vercel.Config) (vercel.Client, error) {
	if config == nil {
		return nil, vercel.ErrConfigRequired
	}

	if config.Token == "" {
		return nil, vercel.ErrTokenRequired
	}

	// Normalize the endpoint.
	endpoint := config.Endpoint
	if endpoint == "" {
		endpoint = constants.DefaultAPIEndpoint
	}

	endpoint = strings.TrimSuffix(endpoint, "/")
	if !strings.HasPrefix(endpoint, "http://") && !strings.HasPrefix(endpoint, "https://") {
		endpoint = "https://" + endpoint
	}

	config.Endpoint = endpoint

	apiClient, err := client.New(config)
	if err != nil {
		return nil, fmt.Errorf("failed to create new client: %w", err)
	}

	return apiClient, nil
}

// NewWithToken creates a new client with just a bearer token against the
// public API host.
func NewWithToken(token string) (vercel.Client, error) {
	return New(&vercel.Config{Token: token})
}

// NewWithTeam creates a new client scoped to a team: every request carries
// the teamId query parameter.
func NewWithTeam(token, teamID string) (vercel.Client, error) {
	return New(&vercel.Config{Token: token, TeamID: teamID})
}
