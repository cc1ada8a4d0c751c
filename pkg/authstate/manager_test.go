package authstate_test

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/threadcraft/platform/pkg/authstate"
)

// mockClient implements authstate.Client with injectable behavior and call
// counting for concurrency assertions.
type mockClient struct {
	mu          sync.Mutex
	meCalls     int
	loginCalls  int
	logoutCalls int

	meFn     func(ctx context.Context) (*authstate.User, error)
	loginFn  func(ctx context.Context, email, password string) (*authstate.User, error)
	logoutFn func(ctx context.Context) error
}

func (c *mockClient) Me(ctx context.Context) (*authstate.User, error) {
	c.mu.Lock()
	c.meCalls++
	fn := c.meFn
	c.mu.Unlock()
	if fn == nil {
		return nil, authstate.ErrNoSession
	}
	return fn(ctx)
}

func (c *mockClient) Login(ctx context.Context, email, password string) (*authstate.User, error) {
	c.mu.Lock()
	c.loginCalls++
	fn := c.loginFn
	c.mu.Unlock()
	if fn == nil {
		return nil, &authstate.LoginError{Message: "Login failed"}
	}
	return fn(ctx, email, password)
}

func (c *mockClient) Logout(ctx context.Context) error {
	c.mu.Lock()
	c.logoutCalls++
	fn := c.logoutFn
	c.mu.Unlock()
	if fn == nil {
		return nil
	}
	return fn(ctx)
}

func (c *mockClient) calls() (me, login, logout int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.meCalls, c.loginCalls, c.logoutCalls
}

func TestManager_CheckAuth(t *testing.T) {
	ctx := context.Background()

	t.Run("concurrent calls are single-flight", func(t *testing.T) {
		release := make(chan struct{})
		client := &mockClient{
			meFn: func(context.Context) (*authstate.User, error) {
				<-release
				return &authstate.User{ID: "u1"}, nil
			},
		}
		manager := authstate.NewManager(client, authstate.WithMinCheckInterval(0))

		var wg sync.WaitGroup
		for range 2 {
			wg.Add(1)
			go func() {
				defer wg.Done()
				manager.CheckAuth(ctx)
			}()
		}

		// Give the first call time to take the guard before releasing.
		time.Sleep(50 * time.Millisecond)
		close(release)
		wg.Wait()

		me, _, _ := client.calls()
		assert.Equal(t, 1, me)
	})

	t.Run("calls inside the minimum interval are dropped", func(t *testing.T) {
		client := &mockClient{}
		manager := authstate.NewManager(client, authstate.WithMinCheckInterval(time.Hour))

		manager.CheckAuth(ctx)
		manager.CheckAuth(ctx)

		me, _, _ := client.calls()
		assert.Equal(t, 1, me)
	})

	t.Run("no session is not an error", func(t *testing.T) {
		client := &mockClient{
			meFn: func(context.Context) (*authstate.User, error) {
				return nil, authstate.ErrNoSession
			},
		}
		manager := authstate.NewManager(client)

		manager.CheckAuth(ctx)

		state := manager.Store().State()
		assert.Nil(t, state.User)
		assert.False(t, state.Loading)
		assert.True(t, state.Initialized)
		assert.Empty(t, state.Err)
	})

	t.Run("success stores the user and clears error", func(t *testing.T) {
		client := &mockClient{
			meFn: func(context.Context) (*authstate.User, error) {
				return &authstate.User{ID: "u1", Email: "a@b.com", Role: "customer"}, nil
			},
		}
		manager := authstate.NewManager(client)

		manager.CheckAuth(ctx)

		state := manager.Store().State()
		require.NotNil(t, state.User)
		assert.Equal(t, "u1", state.User.ID)
		assert.True(t, state.Initialized)
		assert.False(t, state.Loading)
	})

	t.Run("transient failure degrades silently", func(t *testing.T) {
		client := &mockClient{
			meFn: func(context.Context) (*authstate.User, error) {
				return nil, errors.New("connection refused")
			},
		}
		manager := authstate.NewManager(client)

		manager.CheckAuth(ctx)

		state := manager.Store().State()
		assert.Nil(t, state.User)
		assert.False(t, state.Loading, "loading must not be left stuck")
		assert.True(t, state.Initialized)
		assert.Empty(t, state.Err, "background failures never surface")
	})

	t.Run("guard is released after a failure", func(t *testing.T) {
		client := &mockClient{
			meFn: func(context.Context) (*authstate.User, error) {
				return nil, errors.New("boom")
			},
		}
		manager := authstate.NewManager(client, authstate.WithMinCheckInterval(0))

		manager.CheckAuth(ctx)
		manager.CheckAuth(ctx)

		me, _, _ := client.calls()
		assert.Equal(t, 2, me)
	})
}

func TestManager_Login(t *testing.T) {
	ctx := context.Background()

	t.Run("success updates the user", func(t *testing.T) {
		client := &mockClient{
			loginFn: func(_ context.Context, email, password string) (*authstate.User, error) {
				assert.Equal(t, "a@b.com", email)
				assert.Equal(t, "pw", password)
				return &authstate.User{ID: "u1", Email: "a@b.com", Role: "customer"}, nil
			},
		}
		manager := authstate.NewManager(client)

		err := manager.Login(ctx, "a@b.com", "pw")
		require.NoError(t, err)

		state := manager.Store().State()
		require.NotNil(t, state.User)
		assert.Equal(t, "u1", state.User.ID)
		assert.True(t, state.Initialized)
		assert.Empty(t, state.Err)
	})

	t.Run("rejected credentials surface the server message", func(t *testing.T) {
		client := &mockClient{
			loginFn: func(context.Context, string, string) (*authstate.User, error) {
				return nil, &authstate.LoginError{Message: "Invalid credentials"}
			},
		}
		manager := authstate.NewManager(client)

		err := manager.Login(ctx, "a@b.com", "wrong")
		require.Error(t, err)
		assert.Equal(t, "Invalid credentials", err.Error())

		state := manager.Store().State()
		assert.Nil(t, state.User)
		assert.False(t, state.Loading)
		assert.Equal(t, "Invalid credentials", state.Err)
	})

	t.Run("transport failure falls back to a generic message", func(t *testing.T) {
		client := &mockClient{
			loginFn: func(context.Context, string, string) (*authstate.User, error) {
				return nil, errors.New("dial tcp: connection refused")
			},
		}
		manager := authstate.NewManager(client)

		err := manager.Login(ctx, "a@b.com", "pw")
		require.Error(t, err)
		assert.Equal(t, "Network error", manager.Store().State().Err)
	})

	t.Run("failure does not touch initialized", func(t *testing.T) {
		client := &mockClient{
			loginFn: func(context.Context, string, string) (*authstate.User, error) {
				return nil, &authstate.LoginError{Message: "Invalid credentials"}
			},
		}
		manager := authstate.NewManager(client)

		require.Error(t, manager.Login(ctx, "a@b.com", "pw"))
		assert.False(t, manager.Store().State().Initialized)
	})

	t.Run("clear error resets the message", func(t *testing.T) {
		client := &mockClient{
			loginFn: func(context.Context, string, string) (*authstate.User, error) {
				return nil, &authstate.LoginError{Message: "Invalid credentials"}
			},
		}
		manager := authstate.NewManager(client)

		require.Error(t, manager.Login(ctx, "a@b.com", "pw"))
		manager.ClearError()
		assert.Empty(t, manager.Store().State().Err)
	})
}

func TestManager_Logout(t *testing.T) {
	ctx := context.Background()

	t.Run("resets state even when the request fails", func(t *testing.T) {
		client := &mockClient{
			meFn: func(context.Context) (*authstate.User, error) {
				return &authstate.User{ID: "u1"}, nil
			},
			logoutFn: func(context.Context) error {
				return errors.New("network down")
			},
		}
		manager := authstate.NewManager(client)
		manager.CheckAuth(ctx)
		require.NotNil(t, manager.Store().State().User)

		manager.Logout(ctx)

		state := manager.Store().State()
		assert.Nil(t, state.User)
		assert.False(t, state.Loading)
		assert.True(t, state.Initialized)
		assert.Empty(t, state.Err)
	})
}

func TestManager_InitializedIsMonotonic(t *testing.T) {
	ctx := context.Background()

	client := &mockClient{}
	client.meFn = func(context.Context) (*authstate.User, error) {
		return nil, authstate.ErrNoSession
	}
	client.loginFn = func(_ context.Context, email, _ string) (*authstate.User, error) {
		if email == "valid@x.com" {
			return &authstate.User{ID: "42", Role: "admin"}, nil
		}
		return nil, &authstate.LoginError{Message: "Invalid credentials"}
	}

	manager := authstate.NewManager(client, authstate.WithMinCheckInterval(0))

	var reverted bool
	var wasInitialized bool
	manager.Store().Subscribe(func(s authstate.Session) {
		if wasInitialized && !s.Initialized {
			reverted = true
		}
		wasInitialized = wasInitialized || s.Initialized
	})

	manager.CheckAuth(ctx)
	_ = manager.Login(ctx, "bad@x.com", "pw")
	_ = manager.Login(ctx, "valid@x.com", "pw")
	manager.CheckAuth(ctx)
	manager.Logout(ctx)

	assert.True(t, wasInitialized)
	assert.False(t, reverted, "initialized must never revert to false")
}
