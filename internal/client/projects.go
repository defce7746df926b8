package client

import (
	"context"
	"fmt"

	"github.com/fivetwenty-io/vercel-client/internal/http"
	"github.com/fivetwenty-io/vercel-client/pkg/vercel"
)

// ProjectsClient implements vercel.ProjectsClient.
type ProjectsClient struct {
	httpClient *http.Client
}

// NewProjectsClient creates a new projects client.
func NewProjectsClient(httpClient *http.Client) *ProjectsClient {
	return &ProjectsClient{httpClient: httpClient}
}

// List implements vercel.ProjectsClient.List.
func (c *ProjectsClient) List(ctx context.Context, opts *vercel.ListOptions) (*vercel.Page[vercel.Project], error) {
	page, err := listResources[vercel.Project](ctx, c.httpClient, "/v9/projects", "projects", opts)
	if err != nil {
		return nil, fmt.Errorf("listing projects: %w", err)
	}

	return page, nil
}

// Iterate implements vercel.ProjectsClient.Iterate.
func (c *ProjectsClient) Iterate(ctx context.Context, opts *vercel.ListOptions) *vercel.PageIterator[vercel.Project] {
	return vercel.IteratePages(ctx, c.List, opts)
}

// Get implements vercel.ProjectsClient.Get.
func (c *ProjectsClient) Get(ctx context.Context, idOrName string) (*vercel.Project, error) {
	path := fmt.Sprintf("/v9/projects/%s", idOrName)

	project, err := getResource[vercel.Project](ctx, c.httpClient, path, nil)
	if err != nil {
		return nil, fmt.Errorf("getting project: %w", err)
	}

	return project, nil
}

// Create implements vercel.ProjectsClient.Create.
func (c *ProjectsClient) Create(ctx context.Context, request *vercel.ProjectCreateRequest) (*vercel.Project, error) {
	project, err := postResource[vercel.Project](ctx, c.httpClient, "/v9/projects", request)
	if err != nil {
		return nil, fmt.Errorf("creating project: %w", err)
	}

	return project, nil
}

// Update implements vercel.ProjectsClient.Update.
func (c *ProjectsClient) Update(ctx context.Context, idOrName string, request *vercel.ProjectUpdateRequest) (*vercel.Project, error) {
	path := fmt.Sprintf("/v9/projects/%s", idOrName)

	project, err := patchResource[vercel.Project](ctx, c.httpClient, path, request)
	if err != nil {
		return nil, fmt.Errorf("updating project: %w", err)
	}

	return project, nil
}

// Delete implements vercel.ProjectsClient.Delete.
func (c *ProjectsClient) Delete(ctx context.Context, idOrName string) error {
	path := fmt.Sprintf("/v9/projects/%s", idOrName)

	if err := deleteResource(ctx, c.httpClient, path); err != nil {
		return fmt.Errorf("deleting project: %w", err)
	}

	return nil
}

// ListEnvironmentVariables implements vercel.ProjectsClient.ListEnvironmentVariables.
func (c *ProjectsClient) ListEnvironmentVariables(ctx context.Context, idOrName string) ([]vercel.EnvironmentVariable, error) {
	path := fmt.Sprintf("/v9/projects/%s/env", idOrName)

	page, err := listResources[vercel.EnvironmentVariable](ctx, c.httpClient, path, "envs", nil)
	if err != nil {
		return nil, fmt.Errorf("listing environment variables: %w", err)
	}

	return page.Items, nil
}

// CreateEnvironmentVariable implements vercel.ProjectsClient.CreateEnvironmentVariable.
func (c *ProjectsClient) CreateEnvironmentVariable(
	ctx context.Context,
	idOrName string,
	request *vercel.EnvCreateRequest,
) (*vercel.EnvironmentVariable, error) {
	path := fmt.Sprintf("/v9/projects/%s/env", idOrName)

	envVar, err := postResource[vercel.EnvironmentVariable](ctx, c.httpClient, path, request)
	if err != nil {
		return nil, fmt.Errorf("creating environment variable: %w", err)
	}

	return envVar, nil
}

// DeleteEnvironmentVariable implements vercel.ProjectsClient.DeleteEnvironmentVariable.
func (c *ProjectsClient) DeleteEnvironmentVariable(ctx context.Context, idOrName, envID string) error {
	path := fmt.Sprintf("/v9/projects/%s/env/%s", idOrName, envID)

	if err := deleteResource(ctx, c.httpClient, path); err != nil {
		return fmt.Errorf("deleting environment variable: %w", err)
	}

	return nil
}
