package client

import (
	"context"
	"fmt"
	"net/url"

	"github.com/fivetwenty-io/vercel-client/internal/http"
	"github.com/fivetwenty-io/vercel-client/pkg/vercel"
)

// DomainsClient implements vercel.DomainsClient. DNS record operations live
// in dns.go.
type DomainsClient struct {
	httpClient *http.Client
}

// NewDomainsClient creates a new domains client.
func NewDomainsClient(httpClient *http.Client) *DomainsClient {
	return &DomainsClient{httpClient: httpClient}
}

// List implements vercel.DomainsClient.List.
func (c *DomainsClient) List(ctx context.Context, opts *vercel.ListOptions) (*vercel.Page[vercel.Domain], error) {
	page, err := listResources[vercel.Domain](ctx, c.httpClient, "/v5/domains", "domains", opts)
	if err != nil {
		return nil, fmt.Errorf("listing domains: %w", err)
	}

	return page, nil
}

// Iterate implements vercel.DomainsClient.Iterate.
func (c *DomainsClient) Iterate(ctx context.Context, opts *vercel.ListOptions) *vercel.PageIterator[vercel.Domain] {
	return vercel.IteratePages(ctx, c.List, opts)
}

// Get implements vercel.DomainsClient.Get.
func (c *DomainsClient) Get(ctx context.Context, name string) (*vercel.Domain, error) {
	path := fmt.Sprintf("/v5/domains/%s", name)

	domain, err := getResource[vercel.Domain](ctx, c.httpClient, path, nil)
	if err != nil {
		return nil, fmt.Errorf("getting domain: %w", err)
	}

	return domain, nil
}

// Add implements vercel.DomainsClient.Add.
func (c *DomainsClient) Add(ctx context.Context, request *vercel.DomainAddRequest) (*vercel.Domain, error) {
	domain, err := postResource[vercel.Domain](ctx, c.httpClient, "/v5/domains", request)
	if err != nil {
		return nil, fmt.Errorf("adding domain: %w", err)
	}

	return domain, nil
}

// Delete implements vercel.DomainsClient.Delete.
func (c *DomainsClient) Delete(ctx context.Context, name string) error {
	path := fmt.Sprintf("/v5/domains/%s", name)

	if err := deleteResource(ctx, c.httpClient, path); err != nil {
		return fmt.Errorf("deleting domain: %w", err)
	}

	return nil
}

// CheckAvailability implements vercel.DomainsClient.CheckAvailability.
func (c *DomainsClient) CheckAvailability(ctx context.Context, name string) (*vercel.DomainAvailability, error) {
	query := url.Values{}
	query.Set("name", name)

	availability, err := getResource[vercel.DomainAvailability](ctx, c.httpClient, "/v4/domains/status", query)
	if err != nil {
		return nil, fmt.Errorf("checking domain availability: %w", err)
	}

	return availability, nil
}
