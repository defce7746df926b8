// Package vercelclient provides the main entry point for creating Vercel API
// clients.
//
// The package wires the pieces defined in pkg/vercel — configuration, bearer
// authentication, the HTTP pipeline, rate-limit tracking, and the typed
// resource clients — into a ready-to-use vercel.Client:
//
//	cli, err := vercelclient.NewWithToken(os.Getenv("VERCEL_TOKEN"))
//	if err != nil { ... }
//
//	deployments, err := cli.Deployments().List(ctx, nil)
//
// Use New with a vercel.Config for full control over endpoint, team scoping,
// timeouts, and transport retries, or NewWithTeam to scope every request to
// one team.
package vercelclient
