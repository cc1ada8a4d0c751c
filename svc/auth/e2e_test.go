package auth_test

import (
	"context"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/threadcraft/platform/pkg/authclient"
	"github.com/threadcraft/platform/pkg/authstate"
	"github.com/threadcraft/platform/svc/auth"
)

// Exercises the whole contract: the dashboard state manager talking through
// the HTTP client to this server, cookie round-trip included.
func TestEndToEnd_SessionLifecycle(t *testing.T) {
	ctx := context.Background()

	svc := newService(t)
	registerUser(t, svc, "pat@threadcraft.io", "s3cret", auth.RoleAdmin)

	srv := httptest.NewServer(auth.NewHandler(svc).Routes())
	defer srv.Close()

	client, err := authclient.New(authclient.WithBaseURL(srv.URL))
	require.NoError(t, err)

	manager := authstate.NewManager(client, authstate.WithMinCheckInterval(0))

	// Cold start: no cookie, so validation resolves to signed out.
	manager.CheckAuth(ctx)
	state := manager.Store().State()
	assert.Nil(t, state.User)
	assert.True(t, state.Initialized)
	assert.Empty(t, state.Err)

	// Wrong password surfaces the server message.
	err = manager.Login(ctx, "pat@threadcraft.io", "wrong")
	require.Error(t, err)
	assert.Equal(t, "Invalid credentials", manager.Store().State().Err)

	// Correct login stores the user and the session cookie.
	require.NoError(t, manager.Login(ctx, "pat@threadcraft.io", "s3cret"))
	state = manager.Store().State()
	require.NotNil(t, state.User)
	assert.Equal(t, auth.RoleAdmin, state.User.Role)
	assert.Equal(t, "pat@threadcraft.io", state.User.Email)
	assert.Empty(t, state.Err)

	// Re-validation rides the cookie.
	manager.CheckAuth(ctx)
	require.NotNil(t, manager.Store().State().User)

	// Logout resets client state and kills the server session.
	manager.Logout(ctx)
	assert.Nil(t, manager.Store().State().User)

	manager.CheckAuth(ctx)
	assert.Nil(t, manager.Store().State().User)
}
