package client

import (
	"context"
	"fmt"

	"github.com/fivetwenty-io/vercel-client/internal/http"
	"github.com/fivetwenty-io/vercel-client/pkg/vercel"
)

// AliasesClient implements vercel.AliasesClient.
type AliasesClient struct {
	httpClient *http.Client
}

// NewAliasesClient creates a new aliases client.
func NewAliasesClient(httpClient *http.Client) *AliasesClient {
	return &AliasesClient{httpClient: httpClient}
}

// List implements vercel.AliasesClient.List.
func (c *AliasesClient) List(ctx context.Context, opts *vercel.ListOptions) (*vercel.Page[vercel.Alias], error) {
	page, err := listResources[vercel.Alias](ctx, c.httpClient, "/v4/aliases", "aliases", opts)
	if err != nil {
		return nil, fmt.Errorf("listing aliases: %w", err)
	}

	return page, nil
}

// Iterate implements vercel.AliasesClient.Iterate.
func (c *AliasesClient) Iterate(ctx context.Context, opts *vercel.ListOptions) *vercel.PageIterator[vercel.Alias] {
	return vercel.IteratePages(ctx, c.List, opts)
}

// Get implements vercel.AliasesClient.Get.
func (c *AliasesClient) Get(ctx context.Context, idOrAlias string) (*vercel.Alias, error) {
	path := fmt.Sprintf("/v4/aliases/%s", idOrAlias)

	alias, err := getResource[vercel.Alias](ctx, c.httpClient, path, nil)
	if err != nil {
		return nil, fmt.Errorf("getting alias: %w", err)
	}

	return alias, nil
}

// Assign implements vercel.AliasesClient.Assign.
func (c *AliasesClient) Assign(
	ctx context.Context,
	deploymentID string,
	request *vercel.AliasAssignRequest,
) (*vercel.Alias, error) {
	path := fmt.Sprintf("/v2/deployments/%s/aliases", deploymentID)

	alias, err := postResource[vercel.Alias](ctx, c.httpClient, path, request)
	if err != nil {
		return nil, fmt.Errorf("assigning alias: %w", err)
	}

	return alias, nil
}

// Delete implements vercel.AliasesClient.Delete.
func (c *AliasesClient) Delete(ctx context.Context, aliasID string) error {
	path := fmt.Sprintf("/v4/aliases/%s", aliasID)

	if err := deleteResource(ctx, c.httpClient, path); err != nil {
		return fmt.Errorf("deleting alias: %w", err)
	}

	return nil
}
