package vercel

import (
	"time"
)

// Pagination carries the cursor block every list endpoint returns. Next and
// Prev are millisecond epoch timestamps, absent on the last/first page.
type Pagination struct {
	Count int    `json:"count"          yaml:"count"`
	Next  *int64 `json:"next,omitempty" yaml:"next,omitempty"`
	Prev  *int64 `json:"prev,omitempty" yaml:"prev,omitempty"`
}

// Page represents one page of a timestamp-cursored list response.
type Page[T any] struct {
	Items      []T        `json:"items"      yaml:"items"`
	Pagination Pagination `json:"pagination" yaml:"pagination"`
}

// NextCursor returns the cursor for the following page, or nil on the last page.
func (p *Page[T]) NextCursor() *int64 {
	return p.Pagination.Next
}

// RateLimit is the most recently observed quota state, taken from the
// X-RateLimit-* response headers.
type RateLimit struct {
	Limit     int       `json:"limit"     yaml:"limit"`
	Remaining int       `json:"remaining" yaml:"remaining"`
	Reset     time.Time `json:"reset"     yaml:"reset"`
}

// Exceeded reports whether the quota is spent. The server may report a
// negative remaining count, so this is a <= 0 check rather than equality.
func (r RateLimit) Exceeded() bool {
	return r.Remaining <= 0
}

// Project represents a Vercel project.
type Project struct {
	ID          string `json:"id"                     yaml:"id"`
	Name        string `json:"name"                   yaml:"name"`
	AccountID   string `json:"account_id"             yaml:"account_id"`
	Framework   string `json:"framework,omitempty"    yaml:"framework,omitempty"`
	NodeVersion string `json:"node_version,omitempty" yaml:"node_version,omitempty"`
	CreatedAt   int64  `json:"created_at"             yaml:"created_at"`
	UpdatedAt   int64  `json:"updated_at"             yaml:"updated_at"`
}

// ProjectCreateRequest is the payload for creating a project.
type ProjectCreateRequest struct {
	Name      string `json:"name"                yaml:"name"`
	Framework string `json:"framework,omitempty" yaml:"framework,omitempty"`
}

// ProjectUpdateRequest is the payload for updating a project. Nil fields are
// left unchanged.
type ProjectUpdateRequest struct {
	Name      *string `json:"name,omitempty"      yaml:"name,omitempty"`
	Framework *string `json:"framework,omitempty" yaml:"framework,omitempty"`
}

// EnvTarget identifies the deployment environments an environment variable
// applies to.
type EnvTarget string

const (
	EnvTargetProduction  EnvTarget = "production"
	EnvTargetPreview     EnvTarget = "preview"
	EnvTargetDevelopment EnvTarget = "development"
)

// EnvironmentVariable represents one project environment variable.
type EnvironmentVariable struct {
	ID        string      `json:"id"         yaml:"id"`
	Key       string      `json:"key"        yaml:"key"`
	Value     string      `json:"value"      yaml:"value"`
	Target    []EnvTarget `json:"target"     yaml:"target"`
	CreatedAt int64       `json:"created_at" yaml:"created_at"`
	UpdatedAt int64       `json:"updated_at" yaml:"updated_at"`
}

// EnvCreateRequest is the payload for adding a project environment variable.
type EnvCreateRequest struct {
	Key    string      `json:"key"    yaml:"key"`
	Value  string      `json:"value"  yaml:"value"`
	Target []EnvTarget `json:"target" yaml:"target"`
}

// DeploymentState enumerates the lifecycle states a deployment reports.
type DeploymentState string

const (
	DeploymentStateQueued   DeploymentState = "QUEUED"
	DeploymentStateBuilding DeploymentState = "BUILDING"
	DeploymentStateReady    DeploymentState = "READY"
	DeploymentStateError    DeploymentState = "ERROR"
	DeploymentStateCanceled DeploymentState = "CANCELED"
)

// Deployment represents a Vercel deployment.
type Deployment struct {
	UID     string            `json:"uid"              yaml:"uid"`
	Name    string            `json:"name"             yaml:"name"`
	URL     string            `json:"url"              yaml:"url"`
	State   DeploymentState   `json:"state"            yaml:"state"`
	Target  string            `json:"target,omitempty" yaml:"target,omitempty"`
	Created int64             `json:"created"          yaml:"created"`
	Creator DeploymentCreator `json:"creator"          yaml:"creator"`
	Meta    map[string]string `json:"meta,omitempty"   yaml:"meta,omitempty"`
}

// DeploymentCreator identifies who triggered a deployment.
type DeploymentCreator struct {
	UID      string `json:"uid"                yaml:"uid"`
	Username string `json:"username,omitempty" yaml:"username,omitempty"`
}

// Domain represents a domain registered with the account or team.
type Domain struct {
	ID          string   `json:"id"                     yaml:"id"`
	Name        string   `json:"name"                   yaml:"name"`
	ServiceType string   `json:"service_type,omitempty" yaml:"service_type,omitempty"`
	Verified    bool     `json:"verified"               yaml:"verified"`
	Nameservers []string `json:"nameservers,omitempty"  yaml:"nameservers,omitempty"`
	CreatedAt   int64    `json:"created_at"             yaml:"created_at"`
	BoughtAt    *int64   `json:"bought_at,omitempty"    yaml:"bought_at,omitempty"`
	ExpiresAt   *int64   `json:"expires_at,omitempty"   yaml:"expires_at,omitempty"`
}

// DomainAddRequest is the payload for registering a domain.
type DomainAddRequest struct {
	Name string `json:"name" yaml:"name"`
}

// DomainAvailability reports whether a domain name can be registered.
type DomainAvailability struct {
	Available bool `json:"available" yaml:"available"`
}

// DNSRecord represents one DNS record under a domain.
type DNSRecord struct {
	ID        string `json:"id"            yaml:"id"`
	Name      string `json:"name"          yaml:"name"`
	Type      string `json:"type"          yaml:"type"`
	Value     string `json:"value"         yaml:"value"`
	TTL       int    `json:"ttl,omitempty" yaml:"ttl,omitempty"`
	CreatedAt int64  `json:"created_at"    yaml:"created_at"`
}

// DNSRecordCreateRequest is the payload for creating a DNS record.
type DNSRecordCreateRequest struct {
	Name  string `json:"name"          yaml:"name"`
	Type  string `json:"type"          yaml:"type"`
	Value string `json:"value"         yaml:"value"`
	TTL   int    `json:"ttl,omitempty" yaml:"ttl,omitempty"`
}

// Team represents a Vercel team.
type Team struct {
	ID        string `json:"id"               yaml:"id"`
	Slug      string `json:"slug"             yaml:"slug"`
	Name      string `json:"name"             yaml:"name"`
	Avatar    string `json:"avatar,omitempty" yaml:"avatar,omitempty"`
	CreatedAt int64  `json:"created_at"       yaml:"created_at"`
}

// TeamMember represents one member of a team.
type TeamMember struct {
	UID       string `json:"uid"                 yaml:"uid"`
	Role      string `json:"role"                yaml:"role"`
	Email     string `json:"email"               yaml:"email"`
	Username  string `json:"username,omitempty"  yaml:"username,omitempty"`
	Confirmed bool   `json:"confirmed"           yaml:"confirmed"`
	JoinedAt  *int64 `json:"joined_at,omitempty" yaml:"joined_at,omitempty"`
}

// Alias represents an alias pointing at a deployment.
type Alias struct {
	UID          string `json:"uid"           yaml:"uid"`
	Alias        string `json:"alias"         yaml:"alias"`
	DeploymentID string `json:"deployment_id" yaml:"deployment_id"`
	CreatedAt    int64  `json:"created_at"    yaml:"created_at"`
}

// AliasAssignRequest is the payload for assigning an alias to a deployment.
type AliasAssignRequest struct {
	Alias string `json:"alias" yaml:"alias"`
}

// Secret represents a named secret usable in project configuration.
type Secret struct {
	UID       string `json:"uid"               yaml:"uid"`
	Name      string `json:"name"              yaml:"name"`
	TeamID    string `json:"team_id,omitempty" yaml:"team_id,omitempty"`
	UserID    string `json:"user_id,omitempty" yaml:"user_id,omitempty"`
	CreatedAt int64  `json:"created_at"        yaml:"created_at"`
}

// SecretCreateRequest is the payload for creating a secret.
type SecretCreateRequest struct {
	Name  string `json:"name"  yaml:"name"`
	Value string `json:"value" yaml:"value"`
}

// SecretRenameRequest is the payload for renaming a secret.
type SecretRenameRequest struct {
	Name string `json:"name" yaml:"name"`
}

// User represents the authenticated account.
type User struct {
	UID      string `json:"uid"              yaml:"uid"`
	Email    string `json:"email"            yaml:"email"`
	Name     string `json:"name,omitempty"   yaml:"name,omitempty"`
	Username string `json:"username"         yaml:"username"`
	Avatar   string `json:"avatar,omitempty" yaml:"avatar,omitempty"`
}
