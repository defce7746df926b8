package client_test

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fivetwenty-io/vercel-client/pkg/vercel"
)

func TestUserCurrentUser(t *testing.T) {
	t.Parallel()

	t.Run("unpacks the user envelope", func(t *testing.T) {
		t.Parallel()

		apiClient := newTestAPI(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/v2/user", r.URL.Path)
			writeJSON(t, w, http.StatusOK, `{"user": {"uid": "usr_1", "email": "alice@acme.dev", "name": "Alice", "username": "alice"}}`)
		}))

		user, err := apiClient.User().CurrentUser(context.Background())
		require.NoError(t, err)
		assert.Equal(t, "usr_1", user.UID)
		assert.Equal(t, "alice", user.Username)
	})

	t.Run("invalid token is a typed authentication failure", func(t *testing.T) {
		t.Parallel()

		apiClient := newTestAPI(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			writeJSON(t, w, http.StatusUnauthorized, `{"error":{"code":"forbidden","message":"Invalid token"}}`)
		}))

		_, err := apiClient.User().CurrentUser(context.Background())
		require.Error(t, err)
		assert.True(t, vercel.IsAuthenticationFailed(err))
	})
}
