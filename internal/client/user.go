package client

import (
	"context"
	"fmt"

	"github.com/fivetwenty-io/vercel-client/internal/http"
	"github.com/fivetwenty-io/vercel-client/pkg/vercel"
)

// UserClient implements vercel.UserClient.
type UserClient struct {
	httpClient *http.Client
}

// NewUserClient creates a new user client.
func NewUserClient(httpClient *http.Client) *UserClient {
	return &UserClient{httpClient: httpClient}
}

// userEnvelope is the wire shape of the current-user response.
type userEnvelope struct {
	User vercel.User `json:"user"`
}

// CurrentUser implements vercel.UserClient.CurrentUser.
func (c *UserClient) CurrentUser(ctx context.Context) (*vercel.User, error) {
	envelope, err := getResource[userEnvelope](ctx, c.httpClient, "/v2/user", nil)
	if err != nil {
		return nil, fmt.Errorf("getting current user: %w", err)
	}

	return &envelope.User, nil
}
