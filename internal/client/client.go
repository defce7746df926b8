package client

import (
	"errors"

	"github.com/fivetwenty-io/vercel-client/internal/auth"
	"github.com/fivetwenty-io/vercel-client/internal/http"
	"github.com/fivetwenty-io/vercel-client/pkg/vercel"
)

// Static errors for err113 compliance.
var (
	ErrEndpointRequired = errors.New("API endpoint is required")
	ErrTokenRequired    = errors.New("access token is required")
)

// Client implements the vercel.Client interface. It owns one HTTP pipeline
// (and with it one rate-limit tracker) for its entire lifetime.
type Client struct {
	httpClient *http.Client
	logger     vercel.Logger

	// Resource clients
	projects    vercel.ProjectsClient
	deployments vercel.DeploymentsClient
	domains     vercel.DomainsClient
	teams       vercel.TeamsClient
	aliases     vercel.AliasesClient
	secrets     vercel.SecretsClient
	user        vercel.UserClient
}

// createHTTPClientOptions builds HTTP client options from config.
func createHTTPClientOptions(config *vercel.Config) []http.Option {
	var httpOpts []http.Option

	if config.TeamID != "" {
		httpOpts = append(httpOpts, http.WithTeamID(config.TeamID))
	}

	if config.Logger != nil {
		httpOpts = append(httpOpts, http.WithLogger(&loggerAdapter{logger: config.Logger}))
	}

	if config.Debug {
		httpOpts = append(httpOpts, http.WithDebug(true))
	}

	if config.UserAgent != "" {
		httpOpts = append(httpOpts, http.WithUserAgent(config.UserAgent))
	}

	if config.HTTPTimeout > 0 {
		httpOpts = append(httpOpts, http.WithHTTPTimeout(config.HTTPTimeout))
	}

	if config.RetryMax > 0 {
		httpOpts = append(httpOpts, http.WithRetryConfig(config.RetryMax, config.RetryWaitMin, config.RetryWaitMax))
	}

	return httpOpts
}

// New creates a new API client from an already-normalized config.
func New(config *vercel.Config) (*Client, error) {
	if config.Endpoint == "" {
		return nil, ErrEndpointRequired
	}

	if config.Token == "" {
		return nil, ErrTokenRequired
	}

	tokenProvider := auth.NewStaticTokenProvider(config.Token)
	httpClient := http.NewClient(config.Endpoint, tokenProvider, createHTTPClientOptions(config)...)

	client := &Client{
		httpClient: httpClient,
		logger:     config.Logger,
	}

	client.initializeResourceClients()

	return client, nil
}

// initializeResourceClients initializes all resource-specific clients.
func (c *Client) initializeResourceClients() {
	c.projects = NewProjectsClient(c.httpClient)
	c.deployments = NewDeploymentsClient(c.httpClient)
	c.domains = NewDomainsClient(c.httpClient)
	c.teams = NewTeamsClient(c.httpClient)
	c.aliases = NewAliasesClient(c.httpClient)
	c.secrets = NewSecretsClient(c.httpClient)
	c.user = NewUserClient(c.httpClient)
}

// Projects implements vercel.Client.Projects.
func (c *Client) Projects() vercel.ProjectsClient {
	return c.projects
}

// Deployments implements vercel.Client.Deployments.
func (c *Client) Deployments() vercel.DeploymentsClient {
	return c.deployments
}

// Domains implements vercel.Client.Domains.
func (c *Client) Domains() vercel.DomainsClient {
	return c.domains
}

// Teams implements vercel.Client.Teams.
func (c *Client) Teams() vercel.TeamsClient {
	return c.teams
}

// Aliases implements vercel.Client.Aliases.
func (c *Client) Aliases() vercel.AliasesClient {
	return c.aliases
}

// Secrets implements vercel.Client.Secrets.
func (c *Client) Secrets() vercel.SecretsClient {
	return c.secrets
}

// User implements vercel.Client.User.
func (c *Client) User() vercel.UserClient {
	return c.user
}

// RateLimit implements vercel.Client.RateLimit.
func (c *Client) RateLimit() (vercel.RateLimit, bool) {
	return c.httpClient.RateLimit()
}

// loggerAdapter adapts vercel.Logger to http.Logger.
type loggerAdapter struct {
	logger vercel.Logger
}

func (l *loggerAdapter) Debug(msg string, fields map[string]interface{}) {
	l.logger.Debug(msg, fields)
}

func (l *loggerAdapter) Info(msg string, fields map[string]interface{}) {
	l.logger.Info(msg, fields)
}

func (l *loggerAdapter) Warn(msg string, fields map[string]interface{}) {
	l.logger.Warn(msg, fields)
}

func (l *loggerAdapter) Error(msg string, fields map[string]interface{}) {
	l.logger.Error(msg, fields)
}
