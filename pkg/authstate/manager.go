package authstate

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"
)

// Client performs the network calls behind the three state-changing
// operations. Implementations map transport-level outcomes to the error
// contract documented on each method.
type Client interface {
	// Me validates the current session. It returns the signed-in user,
	// ErrNoSession when the server confirms no session exists, or any other
	// error for transport and server failures.
	Me(ctx context.Context) (*User, error)

	// Login exchanges credentials for a session. A rejected attempt is
	// reported as *LoginError carrying the server message; any other error
	// indicates a transport failure.
	Login(ctx context.Context, email, password string) (*User, error)

	// Logout terminates the server-side session. Errors are advisory; the
	// caller resets local state regardless.
	Logout(ctx context.Context) error
}

const (
	defaultCheckTimeout     = 5 * time.Second
	defaultMinCheckInterval = 3 * time.Second

	networkErrorMessage = "Network error"
	loginFailedMessage  = "Login failed"
)

// Manager orchestrates CheckAuth, Login and Logout against a Client and
// writes every outcome into its Store. It is safe for concurrent use.
type Manager struct {
	store  *Store
	client Client
	log    *slog.Logger

	checkTimeout     time.Duration
	minCheckInterval time.Duration

	checkInFlight atomic.Bool

	mu            sync.Mutex
	lastCompleted time.Time
}

// NewManager creates a Manager with its own Store. A nil client is a
// programming error and panics to fail fast at bootstrap.
func NewManager(client Client, opts ...Option) *Manager {
	if client == nil {
		panic("authstate: client is required")
	}

	m := &Manager{
		store:            NewStore(),
		client:           client,
		log:              slog.New(slog.DiscardHandler),
		checkTimeout:     defaultCheckTimeout,
		minCheckInterval: defaultMinCheckInterval,
	}

	for _, opt := range opts {
		opt(m)
	}

	return m
}

// Store returns the Store owned by this Manager. The Store is read-only for
// callers; only the Manager mutates it.
func (m *Manager) Store() *Store {
	return m.store
}

// CheckAuth validates the session against the server and updates the Store.
//
// At most one validation is outstanding at any time: a call made while
// another is in flight returns immediately without touching the Store.
// Calls made within the minimum interval since the last completed check are
// likewise dropped, so timer ticks and focus-driven re-checks cannot pile up.
//
// Every failure mode, including HTTP 401 and transport errors, resolves
// silently to the signed-out state; background checks are invisible to the
// user and never populate Session.Err.
func (m *Manager) CheckAuth(ctx context.Context) {
	if !m.checkInFlight.CompareAndSwap(false, true) {
		return
	}
	defer m.checkInFlight.Store(false)

	m.mu.Lock()
	throttled := !m.lastCompleted.IsZero() && time.Since(m.lastCompleted) < m.minCheckInterval
	m.mu.Unlock()
	if throttled {
		return
	}

	m.store.update(func(s *Session) { s.Loading = true })

	ctx, cancel := context.WithTimeout(ctx, m.checkTimeout)
	defer cancel()

	user, err := m.client.Me(ctx)

	m.mu.Lock()
	m.lastCompleted = time.Now()
	m.mu.Unlock()

	switch {
	case err == nil && user != nil:
		m.store.update(func(s *Session) {
			s.User = user
			s.Loading = false
			s.Initialized = true
			s.Err = ""
		})
	case err == nil || errors.Is(err, ErrNoSession):
		m.store.update(func(s *Session) {
			s.User = nil
			s.Loading = false
			s.Initialized = true
		})
	default:
		m.log.WarnContext(ctx, "session validation failed", "error", err)
		m.store.update(func(s *Session) {
			s.User = nil
			s.Loading = false
			s.Initialized = true
		})
	}
}

// Login authenticates with the given credentials. On success the Store holds
// the signed-in user and nil is returned. On failure the Store's Err field
// and the returned *LoginError carry the server message when present, or a
// generic fallback; Initialized is left untouched.
func (m *Manager) Login(ctx context.Context, email, password string) error {
	m.store.update(func(s *Session) {
		s.Loading = true
		s.Err = ""
	})

	user, err := m.client.Login(ctx, email, password)
	if err != nil || user == nil {
		msg := networkErrorMessage
		var loginErr *LoginError
		switch {
		case errors.As(err, &loginErr):
			msg = loginErr.Message
		case err == nil:
			msg = loginFailedMessage
		}
		m.store.update(func(s *Session) {
			s.User = nil
			s.Loading = false
			s.Err = msg
		})
		return &LoginError{Message: msg}
	}

	m.store.update(func(s *Session) {
		s.User = user
		s.Loading = false
		s.Initialized = true
		s.Err = ""
	})
	return nil
}

// Logout terminates the session. The network call is best-effort: a failure
// is logged and the local state is reset regardless, so the worst case is a
// stale server-side session, never a stuck client.
func (m *Manager) Logout(ctx context.Context) {
	m.store.update(func(s *Session) { s.Loading = true })

	if err := m.client.Logout(ctx); err != nil {
		m.log.WarnContext(ctx, "logout request failed", "error", err)
	}

	m.store.update(func(s *Session) {
		s.User = nil
		s.Loading = false
		s.Initialized = true
		s.Err = ""
	})
}

// ClearError discards the last login failure message.
func (m *Manager) ClearError() {
	m.store.update(func(s *Session) { s.Err = "" })
}
