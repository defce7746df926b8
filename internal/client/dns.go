package client

import (
	"context"
	"fmt"

	"github.com/fivetwenty-io/vercel-client/pkg/vercel"
)

// DNS record operations, part of vercel.DomainsClient.

// ListRecords implements vercel.DomainsClient.ListRecords.
func (c *DomainsClient) ListRecords(
	ctx context.Context,
	domain string,
	opts *vercel.ListOptions,
) (*vercel.Page[vercel.DNSRecord], error) {
	path := fmt.Sprintf("/v4/domains/%s/records", domain)

	page, err := listResources[vercel.DNSRecord](ctx, c.httpClient, path, "records", opts)
	if err != nil {
		return nil, fmt.Errorf("listing DNS records: %w", err)
	}

	return page, nil
}

// CreateRecord implements vercel.DomainsClient.CreateRecord.
func (c *DomainsClient) CreateRecord(
	ctx context.Context,
	domain string,
	request *vercel.DNSRecordCreateRequest,
) (*vercel.DNSRecord, error) {
	path := fmt.Sprintf("/v4/domains/%s/records", domain)

	record, err := postResource[vercel.DNSRecord](ctx, c.httpClient, path, request)
	if err != nil {
		return nil, fmt.Errorf("creating DNS record: %w", err)
	}

	return record, nil
}

// DeleteRecord implements vercel.DomainsClient.DeleteRecord.
func (c *DomainsClient) DeleteRecord(ctx context.Context, domain, recordID string) error {
	path := fmt.Sprintf("/v4/domains/%s/records/%s", domain, recordID)

	if err := deleteResource(ctx, c.httpClient, path); err != nil {
		return fmt.Errorf("deleting DNS record: %w", err)
	}

	return nil
}
