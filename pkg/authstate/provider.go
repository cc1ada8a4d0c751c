package authstate

import (
	"context"
	"time"
)

// Notifier receives user-facing messages, typically rendered as toasts.
type Notifier func(message string)

const defaultPollInterval = 5 * time.Minute

// Provider bridges a Manager into an application lifecycle. It performs the
// initial session validation, keeps the state fresh with a periodic timer
// while a user is signed in, and surfaces login failures through a Notifier.
//
// Construct one Provider at bootstrap and drive it with Run; the four
// operation methods can be called from any goroutine.
type Provider struct {
	manager      *Manager
	store        *Store
	notify       Notifier
	pollInterval time.Duration
}

// NewProvider wraps the given Manager. Panics on a nil manager to fail fast
// at bootstrap.
func NewProvider(manager *Manager, opts ...ProviderOption) *Provider {
	if manager == nil {
		panic("authstate: manager is required")
	}

	p := &Provider{
		manager:      manager,
		store:        manager.Store(),
		pollInterval: defaultPollInterval,
	}

	for _, opt := range opts {
		opt(p)
	}

	return p
}

// Run drives the Provider until ctx is cancelled and returns ctx.Err().
//
// On entry it performs the one initial CheckAuth when the state has never
// been initialized. While a user is present a re-validation ticker runs;
// it is stopped the moment the user signs out and restarted on the next
// sign-in. The store subscription and the ticker are released on return.
func (p *Provider) Run(ctx context.Context) error {
	changes := make(chan struct{}, 1)
	unsubscribe := p.store.Subscribe(func(Session) {
		select {
		case changes <- struct{}{}:
		default:
		}
	})
	defer unsubscribe()

	if !p.store.State().Initialized {
		p.manager.CheckAuth(ctx)
	}

	var (
		ticker *time.Ticker
		tick   <-chan time.Time
	)
	stopTicker := func() {
		if ticker != nil {
			ticker.Stop()
			ticker = nil
			tick = nil
		}
	}
	defer stopTicker()

	syncTicker := func() {
		if p.store.State().IsAuthenticated() {
			if ticker == nil {
				ticker = time.NewTicker(p.pollInterval)
				tick = ticker.C
			}
			return
		}
		stopTicker()
	}
	syncTicker()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-changes:
			syncTicker()
		case <-tick:
			p.manager.CheckAuth(ctx)
		}
	}
}

// State returns the current Session snapshot.
func (p *Provider) State() Session {
	return p.store.State()
}

// Subscribe registers a listener for state changes and returns its
// unsubscribe function.
func (p *Provider) Subscribe(fn Listener) (unsubscribe func()) {
	return p.store.Subscribe(fn)
}

// Login authenticates with the given credentials. On failure the message is
// additionally forwarded to the Notifier.
func (p *Provider) Login(ctx context.Context, email, password string) error {
	err := p.manager.Login(ctx, email, password)
	if err != nil && p.notify != nil {
		p.notify(err.Error())
	}
	return err
}

// Logout signs the user out. Always effective locally.
func (p *Provider) Logout(ctx context.Context) {
	p.manager.Logout(ctx)
}

// CheckAuth triggers a session validation, subject to the Manager's
// single-flight and rate-limit guards.
func (p *Provider) CheckAuth(ctx context.Context) {
	p.manager.CheckAuth(ctx)
}

// ClearError discards the last login failure message.
func (p *Provider) ClearError() {
	p.manager.ClearError()
}
