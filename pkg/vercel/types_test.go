package vercel_test

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fivetwenty-io/vercel-client/pkg/vercel"
)

func TestDeploymentWireFormat(t *testing.T) {
	t.Parallel()

	payload := `{
		"uid": "dpl_123",
		"name": "my-app",
		"url": "my-app-abc.vercel.app",
		"state": "READY",
		"target": "production",
		"created": 1717243200000,
		"creator": {"uid": "usr_1", "username": "alice"},
		"meta": {"githubCommitSha": "deadbeef"}
	}`

	var deployment vercel.Deployment
	require.NoError(t, json.Unmarshal([]byte(payload), &deployment))

	assert.Equal(t, "dpl_123", deployment.UID)
	assert.Equal(t, vercel.DeploymentStateReady, deployment.State)
	assert.Equal(t, "production", deployment.Target)
	assert.Equal(t, int64(1717243200000), deployment.Created)
	assert.Equal(t, "alice", deployment.Creator.Username)
	assert.Equal(t, "deadbeef", deployment.Meta["githubCommitSha"])
}

func TestProjectWireFormat(t *testing.T) {
	t.Parallel()

	payload := `{
		"id": "prj_1",
		"name": "my-app",
		"account_id": "acc_1",
		"framework": "nextjs",
		"node_version": "20.x",
		"created_at": 1717243200000,
		"updated_at": 1717246800000
	}`

	var project vercel.Project
	require.NoError(t, json.Unmarshal([]byte(payload), &project))

	assert.Equal(t, "prj_1", project.ID)
	assert.Equal(t, "acc_1", project.AccountID)
	assert.Equal(t, "nextjs", project.Framework)
	assert.Equal(t, int64(1717243200000), project.CreatedAt)

	// The field names going back out stay snake_case.
	encoded, err := json.Marshal(project)
	require.NoError(t, err)
	assert.Contains(t, string(encoded), `"account_id"`)
	assert.Contains(t, string(encoded), `"node_version"`)
	assert.NotContains(t, string(encoded), `"accountId"`)
}

func TestPaginationOptionalCursors(t *testing.T) {
	t.Parallel()

	t.Run("last page has no next cursor", func(t *testing.T) {
		t.Parallel()

		var pagination vercel.Pagination
		require.NoError(t, json.Unmarshal([]byte(`{"count":3,"prev":1700000000000}`), &pagination))

		assert.Equal(t, 3, pagination.Count)
		assert.Nil(t, pagination.Next)
		require.NotNil(t, pagination.Prev)
		assert.Equal(t, int64(1700000000000), *pagination.Prev)
	})

	t.Run("page exposes the next cursor", func(t *testing.T) {
		t.Parallel()

		next := int64(1700000000000)
		page := vercel.Page[vercel.Project]{Pagination: vercel.Pagination{Count: 1, Next: &next}}

		cursor := page.NextCursor()
		require.NotNil(t, cursor)
		assert.Equal(t, next, *cursor)
	})
}

func TestRateLimitExceeded(t *testing.T) {
	t.Parallel()

	reset := time.Now().Add(time.Minute)

	assert.False(t, vercel.RateLimit{Limit: 100, Remaining: 10, Reset: reset}.Exceeded())
	assert.True(t, vercel.RateLimit{Limit: 100, Remaining: 0, Reset: reset}.Exceeded())
	assert.True(t, vercel.RateLimit{Limit: 100, Remaining: -1, Reset: reset}.Exceeded())
}

func TestProjectUpdateRequestOmitsNilFields(t *testing.T) {
	t.Parallel()

	name := "renamed"

	encoded, err := json.Marshal(vercel.ProjectUpdateRequest{Name: &name})
	require.NoError(t, err)
	assert.JSONEq(t, `{"name":"renamed"}`, string(encoded))
}
