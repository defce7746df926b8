package client

import (
	"context"
	"fmt"

	"github.com/fivetwenty-io/vercel-client/internal/http"
	"github.com/fivetwenty-io/vercel-client/pkg/vercel"
)

// SecretsClient implements vercel.SecretsClient.
type SecretsClient struct {
	httpClient *http.Client
}

// NewSecretsClient creates a new secrets client.
func NewSecretsClient(httpClient *http.Client) *SecretsClient {
	return &SecretsClient{httpClient: httpClient}
}

// List implements vercel.SecretsClient.List.
func (c *SecretsClient) List(ctx context.Context, opts *vercel.ListOptions) (*vercel.Page[vercel.Secret], error) {
	page, err := listResources[vercel.Secret](ctx, c.httpClient, "/v3/secrets", "secrets", opts)
	if err != nil {
		return nil, fmt.Errorf("listing secrets: %w", err)
	}

	return page, nil
}

// Iterate implements vercel.SecretsClient.Iterate.
func (c *SecretsClient) Iterate(ctx context.Context, opts *vercel.ListOptions) *vercel.PageIterator[vercel.Secret] {
	return vercel.IteratePages(ctx, c.List, opts)
}

// Get implements vercel.SecretsClient.Get.
func (c *SecretsClient) Get(ctx context.Context, idOrName string) (*vercel.Secret, error) {
	path := fmt.Sprintf("/v3/secrets/%s", idOrName)

	secret, err := getResource[vercel.Secret](ctx, c.httpClient, path, nil)
	if err != nil {
		return nil, fmt.Errorf("getting secret: %w", err)
	}

	return secret, nil
}

// Create implements vercel.SecretsClient.Create.
func (c *SecretsClient) Create(ctx context.Context, request *vercel.SecretCreateRequest) (*vercel.Secret, error) {
	secret, err := postResource[vercel.Secret](ctx, c.httpClient, "/v3/secrets", request)
	if err != nil {
		return nil, fmt.Errorf("creating secret: %w", err)
	}

	return secret, nil
}

// Rename implements vercel.SecretsClient.Rename.
func (c *SecretsClient) Rename(
	ctx context.Context,
	idOrName string,
	request *vercel.SecretRenameRequest,
) (*vercel.Secret, error) {
	path := fmt.Sprintf("/v3/secrets/%s", idOrName)

	secret, err := patchResource[vercel.Secret](ctx, c.httpClient, path, request)
	if err != nil {
		return nil, fmt.Errorf("renaming secret: %w", err)
	}

	return secret, nil
}

// Delete implements vercel.SecretsClient.Delete.
func (c *SecretsClient) Delete(ctx context.Context, idOrName string) error {
	path := fmt.Sprintf("/v3/secrets/%s", idOrName)

	if err := deleteResource(ctx, c.httpClient, path); err != nil {
		return fmt.Errorf("deleting secret: %w", err)
	}

	return nil
}
