package client_test

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fivetwenty-io/vercel-client/pkg/vercel"
)

func TestTeamsList(t *testing.T) {
	t.Parallel()

	apiClient := newTestAPI(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v2/teams", r.URL.Path)

		writeJSON(t, w, http.StatusOK, `{
			"teams": [
				{"id": "team_1", "slug": "acme", "name": "Acme", "created_at": 1},
				{"id": "team_2", "slug": "beta", "name": "Beta Corp", "created_at": 2}
			],
			"pagination": {"count": 2}
		}`)
	}))

	page, err := apiClient.Teams().List(context.Background(), nil)
	require.NoError(t, err)
	require.Len(t, page.Items, 2)
	assert.Equal(t, "acme", page.Items[0].Slug)
	assert.Equal(t, "Beta Corp", page.Items[1].Name)
}

func TestTeamsGet(t *testing.T) {
	t.Parallel()

	apiClient := newTestAPI(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v2/teams/team_1", r.URL.Path)
		writeJSON(t, w, http.StatusOK, `{"id": "team_1", "slug": "acme", "name": "Acme", "created_at": 1}`)
	}))

	team, err := apiClient.Teams().Get(context.Background(), "team_1")
	require.NoError(t, err)
	assert.Equal(t, "acme", team.Slug)
}

func TestTeamsListMembers(t *testing.T) {
	t.Parallel()

	t.Run("returns members", func(t *testing.T) {
		t.Parallel()

		apiClient := newTestAPI(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/v2/teams/team_1/members", r.URL.Path)

			writeJSON(t, w, http.StatusOK, `{
				"members": [
					{"uid": "usr_1", "role": "OWNER", "email": "alice@acme.dev", "username": "alice", "confirmed": true, "joined_at": 1700000000000}
				],
				"pagination": {"count": 1}
			}`)
		}))

		page, err := apiClient.Teams().ListMembers(context.Background(), "team_1", nil)
		require.NoError(t, err)
		require.Len(t, page.Items, 1)
		assert.Equal(t, "OWNER", page.Items[0].Role)
		require.NotNil(t, page.Items[0].JoinedAt)
		assert.Equal(t, int64(1700000000000), *page.Items[0].JoinedAt)
	})

	t.Run("empty member list is not an error", func(t *testing.T) {
		t.Parallel()

		apiClient := newTestAPI(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			writeJSON(t, w, http.StatusOK, `{"members": [], "pagination": {"count": 0}}`)
		}))

		page, err := apiClient.Teams().ListMembers(context.Background(), "team_1", nil)
		require.NoError(t, err)
		assert.Empty(t, page.Items)
	})
}

func TestTeamsIterateMembers(t *testing.T) {
	t.Parallel()

	apiClient := newTestAPI(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v2/teams/team_1/members", r.URL.Path)

		if r.URL.Query().Get("until") == "" {
			writeJSON(t, w, http.StatusOK, `{
				"members": [{"uid": "usr_1", "role": "OWNER", "email": "a@x.dev", "confirmed": true}],
				"pagination": {"count": 1, "next": 500}
			}`)

			return
		}

		writeJSON(t, w, http.StatusOK, `{
			"members": [{"uid": "usr_2", "role": "MEMBER", "email": "b@x.dev", "confirmed": true}],
			"pagination": {"count": 1}
		}`)
	}))

	members, err := apiClient.Teams().IterateMembers(context.Background(), "team_1", nil).All()
	require.NoError(t, err)
	require.Len(t, members, 2)
	assert.Equal(t, "usr_1", members[0].UID)
	assert.Equal(t, "usr_2", members[1].UID)
}
