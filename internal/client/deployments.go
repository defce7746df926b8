package client

import (
	"context"
	"fmt"

	"github.com/fivetwenty-io/vercel-client/internal/http"
	"github.com/fivetwenty-io/vercel-client/pkg/vercel"
)

// DeploymentsClient implements vercel.DeploymentsClient.
type DeploymentsClient struct {
	httpClient *http.Client
}

// NewDeploymentsClient creates a new deployments client.
func NewDeploymentsClient(httpClient *http.Client) *DeploymentsClient {
	return &DeploymentsClient{httpClient: httpClient}
}

// List implements vercel.DeploymentsClient.List.
func (c *DeploymentsClient) List(ctx context.Context, opts *vercel.ListOptions) (*vercel.Page[vercel.Deployment], error) {
	page, err := listResources[vercel.Deployment](ctx, c.httpClient, "/v6/deployments", "deployments", opts)
	if err != nil {
		return nil, fmt.Errorf("listing deployments: %w", err)
	}

	return page, nil
}

// Iterate implements vercel.DeploymentsClient.Iterate.
func (c *DeploymentsClient) Iterate(ctx context.Context, opts *vercel.ListOptions) *vercel.PageIterator[vercel.Deployment] {
	return vercel.IteratePages(ctx, c.List, opts)
}

// Get implements vercel.DeploymentsClient.Get.
func (c *DeploymentsClient) Get(ctx context.Context, uid string) (*vercel.Deployment, error) {
	path := fmt.Sprintf("/v13/deployments/%s", uid)

	deployment, err := getResource[vercel.Deployment](ctx, c.httpClient, path, nil)
	if err != nil {
		return nil, fmt.Errorf("getting deployment: %w", err)
	}

	return deployment, nil
}

// Cancel implements vercel.DeploymentsClient.Cancel.
func (c *DeploymentsClient) Cancel(ctx context.Context, uid string) (*vercel.Deployment, error) {
	path := fmt.Sprintf("/v13/deployments/%s/cancel", uid)

	deployment, err := patchResource[vercel.Deployment](ctx, c.httpClient, path, nil)
	if err != nil {
		return nil, fmt.Errorf("canceling deployment: %w", err)
	}

	return deployment, nil
}

// Delete implements vercel.DeploymentsClient.Delete.
func (c *DeploymentsClient) Delete(ctx context.Context, uid string) error {
	path := fmt.Sprintf("/v13/deployments/%s", uid)

	if err := deleteResource(ctx, c.httpClient, path); err != nil {
		return fmt.Errorf("deleting deployment: %w", err)
	}

	return nil
}
