package client

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"

	"github.com/fivetwenty-io/vercel-client/internal/http"
	"github.com/fivetwenty-io/vercel-client/pkg/vercel"
)

// The per-resource clients all repeat the same fetch-and-decode shape, so the
// shape lives here once, parameterized by path and payload type. A decode
// failure on a success body is always a typed decoding error, never a panic.

// decodeResource unmarshals a success body into the caller's expected type.
func decodeResource[T any](body []byte) (*T, error) {
	var value T
	if err := json.Unmarshal(body, &value); err != nil {
		return nil, vercel.NewDecodingError(err)
	}

	return &value, nil
}

// getResource performs a GET and decodes the response.
func getResource[T any](ctx context.Context, httpClient *http.Client, path string, query url.Values) (*T, error) {
	resp, err := httpClient.Get(ctx, path, query)
	if err != nil {
		return nil, err
	}

	return decodeResource[T](resp.Body)
}

// postResource performs a POST and decodes the response.
func postResource[T any](ctx context.Context, httpClient *http.Client, path string, body interface{}) (*T, error) {
	resp, err := httpClient.Post(ctx, path, body)
	if err != nil {
		return nil, err
	}

	return decodeResource[T](resp.Body)
}

// patchResource performs a PATCH and decodes the response.
func patchResource[T any](ctx context.Context, httpClient *http.Client, path string, body interface{}) (*T, error) {
	resp, err := httpClient.Patch(ctx, path, body)
	if err != nil {
		return nil, err
	}

	return decodeResource[T](resp.Body)
}

// deleteResource performs a DELETE, surfacing only success or failure. Any
// success body is ignored.
func deleteResource(ctx context.Context, httpClient *http.Client, path string) error {
	_, err := httpClient.Delete(ctx, path)

	return err
}

// listResources performs a GET against a list endpoint and unpacks the
// {<key>: [...], "pagination": {...}} envelope into a typed page. A missing
// collection key is an invalid_response; the pagination block is optional
// (non-cursored collection endpoints omit it).
func listResources[T any](
	ctx context.Context,
	httpClient *http.Client,
	path, key string,
	opts *vercel.ListOptions,
) (*vercel.Page[T], error) {
	resp, err := httpClient.Get(ctx, path, opts.ToValues())
	if err != nil {
		return nil, err
	}

	var envelope map[string]json.RawMessage
	if err := json.Unmarshal(resp.Body, &envelope); err != nil {
		return nil, vercel.NewDecodingError(err)
	}

	items, ok := envelope[key]
	if !ok {
		return nil, vercel.NewInvalidResponseError(fmt.Sprintf("missing %q collection in list response", key))
	}

	page := &vercel.Page[T]{}

	if err := json.Unmarshal(items, &page.Items); err != nil {
		return nil, vercel.NewDecodingError(err)
	}

	if pagination, ok := envelope["pagination"]; ok {
		if err := json.Unmarshal(pagination, &page.Pagination); err != nil {
			return nil, vercel.NewDecodingError(err)
		}
	}

	return page, nil
}
