package client

import (
	"context"
	"fmt"

	"github.com/fivetwenty-io/vercel-client/internal/http"
	"github.com/fivetwenty-io/vercel-client/pkg/vercel"
)

// TeamsClient implements vercel.TeamsClient.
type TeamsClient struct {
	httpClient *http.Client
}

// NewTeamsClient creates a new teams client.
func NewTeamsClient(httpClient *http.Client) *TeamsClient {
	return &TeamsClient{httpClient: httpClient}
}

// List implements vercel.TeamsClient.List.
func (c *TeamsClient) List(ctx context.Context, opts *vercel.ListOptions) (*vercel.Page[vercel.Team], error) {
	page, err := listResources[vercel.Team](ctx, c.httpClient, "/v2/teams", "teams", opts)
	if err != nil {
		return nil, fmt.Errorf("listing teams: %w", err)
	}

	return page, nil
}

// Iterate implements vercel.TeamsClient.Iterate.
func (c *TeamsClient) Iterate(ctx context.Context, opts *vercel.ListOptions) *vercel.PageIterator[vercel.Team] {
	return vercel.IteratePages(ctx, c.List, opts)
}

// Get implements vercel.TeamsClient.Get.
func (c *TeamsClient) Get(ctx context.Context, teamID string) (*vercel.Team, error) {
	path := fmt.Sprintf("/v2/teams/%s", teamID)

	team, err := getResource[vercel.Team](ctx, c.httpClient, path, nil)
	if err != nil {
		return nil, fmt.Errorf("getting team: %w", err)
	}

	return team, nil
}

// ListMembers implements vercel.TeamsClient.ListMembers.
func (c *TeamsClient) ListMembers(
	ctx context.Context,
	teamID string,
	opts *vercel.ListOptions,
) (*vercel.Page[vercel.TeamMember], error) {
	path := fmt.Sprintf("/v2/teams/%s/members", teamID)

	page, err := listResources[vercel.TeamMember](ctx, c.httpClient, path, "members", opts)
	if err != nil {
		return nil, fmt.Errorf("listing team members: %w", err)
	}

	return page, nil
}

// IterateMembers implements vercel.TeamsClient.IterateMembers.
func (c *TeamsClient) IterateMembers(
	ctx context.Context,
	teamID string,
	opts *vercel.ListOptions,
) *vercel.PageIterator[vercel.TeamMember] {
	return vercel.IteratePages(ctx, func(ctx context.Context, pageOpts *vercel.ListOptions) (*vercel.Page[vercel.TeamMember], error) {
		return c.ListMembers(ctx, teamID, pageOpts)
	}, opts)
}
