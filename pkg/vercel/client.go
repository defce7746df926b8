package vercel

import (
	"context"
	"time"
)

// Logger interface for logging.
type Logger interface {
	Debug(msg string, fields map[string]interface{})
	Info(msg string, fields map[string]interface{})
	Warn(msg string, fields map[string]interface{})
	Error(msg string, fields map[string]interface{})
}

// Config represents client configuration for building a vercel.Client.
//
// Token is the only required field: every request carries it as a bearer
// token, and no other authentication flow is supported. TeamID, when set,
// scopes every request to that team via the teamId query parameter.
//
// Transport retries are off by default; the library's only built-in wait is
// the pre-request rate-limit pause. Setting RetryMax > 0 opts in to retrying
// transient transport failures with the given backoff bounds.
type Config struct {
	// Token is the bearer token attached to every request.
	Token string
	// TeamID optionally scopes all operations to a team.
	TeamID string
	// Endpoint is the API base URL. Defaults to the public API host; the
	// constructor normalizes it by trimming a trailing slash and adding
	// "https://" when no scheme is present.
	Endpoint string
	// UserAgent overrides the default User-Agent header.
	UserAgent string
	// HTTPTimeout bounds each underlying HTTP request. Zero uses the default.
	HTTPTimeout time.Duration
	// RetryMax is the maximum number of transport-level retries. Zero disables
	// retrying entirely.
	RetryMax int
	// RetryWaitMin is the minimum backoff between retries when RetryMax > 0.
	RetryWaitMin time.Duration
	// RetryWaitMax is the maximum backoff between retries when RetryMax > 0.
	RetryWaitMax time.Duration
	// Debug enables verbose request/response logging when a Logger is set.
	Debug bool
	// Logger is an optional structured logger used by the HTTP layer.
	Logger Logger
}

// ProjectsClient exposes the project endpoints.
type ProjectsClient interface {
	List(ctx context.Context, opts *ListOptions) (*Page[Project], error)
	Iterate(ctx context.Context, opts *ListOptions) *PageIterator[Project]
	Get(ctx context.Context, idOrName string) (*Project, error)
	Create(ctx context.Context, request *ProjectCreateRequest) (*Project, error)
	Update(ctx context.Context, idOrName string, request *ProjectUpdateRequest) (*Project, error)
	Delete(ctx context.Context, idOrName string) error
	ListEnvironmentVariables(ctx context.Context, idOrName string) ([]EnvironmentVariable, error)
	CreateEnvironmentVariable(ctx context.Context, idOrName string, request *EnvCreateRequest) (*EnvironmentVariable, error)
	DeleteEnvironmentVariable(ctx context.Context, idOrName, envID string) error
}

// DeploymentsClient exposes the deployment endpoints.
type DeploymentsClient interface {
	List(ctx context.Context, opts *ListOptions) (*Page[Deployment], error)
	Iterate(ctx context.Context, opts *ListOptions) *PageIterator[Deployment]
	Get(ctx context.Context, uid string) (*Deployment, error)
	Cancel(ctx context.Context, uid string) (*Deployment, error)
	Delete(ctx context.Context, uid string) error
}

// DomainsClient exposes the domain and DNS record endpoints.
type DomainsClient interface {
	List(ctx context.Context, opts *ListOptions) (*Page[Domain], error)
	Iterate(ctx context.Context, opts *ListOptions) *PageIterator[Domain]
	Get(ctx context.Context, name string) (*Domain, error)
	Add(ctx context.Context, request *DomainAddRequest) (*Domain, error)
	Delete(ctx context.Context, name string) error
	CheckAvailability(ctx context.Context, name string) (*DomainAvailability, error)
	ListRecords(ctx context.Context, domain string, opts *ListOptions) (*Page[DNSRecord], error)
	CreateRecord(ctx context.Context, domain string, request *DNSRecordCreateRequest) (*DNSRecord, error)
	DeleteRecord(ctx context.Context, domain, recordID string) error
}

// TeamsClient exposes the team endpoints.
type TeamsClient interface {
	List(ctx context.Context, opts *ListOptions) (*Page[Team], error)
	Iterate(ctx context.Context, opts *ListOptions) *PageIterator[Team]
	Get(ctx context.Context, teamID string) (*Team, error)
	ListMembers(ctx context.Context, teamID string, opts *ListOptions) (*Page[TeamMember], error)
	IterateMembers(ctx context.Context, teamID string, opts *ListOptions) *PageIterator[TeamMember]
}

// AliasesClient exposes the alias endpoints.
type AliasesClient interface {
	List(ctx context.Context, opts *ListOptions) (*Page[Alias], error)
	Iterate(ctx context.Context, opts *ListOptions) *PageIterator[Alias]
	Get(ctx context.Context, idOrAlias string) (*Alias, error)
	Assign(ctx context.Context, deploymentID string, request *AliasAssignRequest) (*Alias, error)
	Delete(ctx context.Context, aliasID string) error
}

// SecretsClient exposes the secret endpoints.
type SecretsClient interface {
	List(ctx context.Context, opts *ListOptions) (*Page[Secret], error)
	Iterate(ctx context.Context, opts *ListOptions) *PageIterator[Secret]
	Get(ctx context.Context, idOrName string) (*Secret, error)
	Create(ctx context.Context, request *SecretCreateRequest) (*Secret, error)
	Rename(ctx context.Context, idOrName string, request *SecretRenameRequest) (*Secret, error)
	Delete(ctx context.Context, idOrName string) error
}

// UserClient exposes the authenticated account endpoint.
type UserClient interface {
	CurrentUser(ctx context.Context) (*User, error)
}

// Client is the full typed surface of the Vercel API client.
type Client interface {
	Projects() ProjectsClient
	Deployments() DeploymentsClient
	Domains() DomainsClient
	Teams() TeamsClient
	Aliases() AliasesClient
	Secrets() SecretsClient
	User() UserClient

	// RateLimit returns the most recently observed rate-limit state. The
	// second return is false until the first response carrying the
	// X-RateLimit-* headers has arrived.
	RateLimit() (RateLimit, bool)
}
