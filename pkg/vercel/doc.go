// Package vercel provides types, interfaces, and helpers for working with the
// Vercel deployment platform REST API.
//
// # Overview
//
// The vercel package defines the domain types (e.g., Project, Deployment,
// Domain, Team) and the interfaces for resource-oriented clients (e.g.,
// ProjectsClient, DeploymentsClient). A concrete implementation of these
// clients is provided by the vercelclient package, which wires configuration,
// transport, bearer authentication, and rate-limit tracking. Most consumers
// should import vercelclient to construct a client and then interact with the
// resource client interfaces exposed here.
//
// Getting a client
//
//	import (
//	  "context"
//	  "log"
//
//	  "github.com/fivetwenty-io/vercel-client/pkg/vercel"
//	  "github.com/fivetwenty-io/vercel-client/pkg/vercelclient"
//	)
//
//	func example() {
//	  ctx := context.Background()
//	  cli, err := vercelclient.NewWithToken("my-token")
//	  if err != nil { log.Fatal(err) }
//
//	  // List the first page of projects
//	  projects, err := cli.Projects().List(ctx, vercel.NewListOptions().WithLimit(50))
//	  if err != nil { log.Fatal(err) }
//	  _ = projects
//	}
//
// # Queries and pagination
//
// Use ListOptions to express the common list parameters (limit, since,
// until). List endpoints page backward through millisecond-timestamp cursors;
// PageIterator turns that cursor walk into a single lazy sequence:
//
//	it := cli.Deployments().Iterate(ctx, nil)
//	for it.HasNext() {
//	  deployment, err := it.Next()
//	  if err != nil { break }
//	  _ = deployment
//	}
//
// or collect everything at once with it.All(). Iterators are single-pass;
// build a new one to restart from the beginning.
//
// # Errors
//
// Every failure is returned as a *APIError carrying one variant of a closed
// taxonomy (authentication_failed, token_expired, rate_limit_exceeded,
// network_error, not_found, decoding_error, ...). Helpers such as IsNotFound,
// IsRateLimited, and IsTokenExpired make it easy to branch on common cases.
//
// # Rate limiting
//
// The client records the X-RateLimit-Limit/-Remaining/-Reset headers from
// every response. When the observed remaining count is exhausted, the next
// request waits until the advertised reset time before being sent. This is a
// best-effort throttle shared by all callers of one client instance, not an
// admission-control guarantee; see Client.RateLimit for the current state.
//
// # Interceptors
//
// The package includes request/response interceptor primitives (for logging
// and custom headers). The vercelclient package composes a sensible default
// client; applications with advanced needs can attach their own chain.
package vercel
