package authstate

import (
	"log/slog"
	"time"
)

// Option configures a Manager.
type Option func(*Manager)

// WithLogger routes background failure logs through the given logger.
// Nil loggers are ignored; the default discards everything.
func WithLogger(log *slog.Logger) Option {
	return func(m *Manager) {
		if log != nil {
			m.log = log
		}
	}
}

// WithCheckTimeout bounds each session validation request. Non-positive
// values are ignored.
func WithCheckTimeout(d time.Duration) Option {
	return func(m *Manager) {
		if d > 0 {
			m.checkTimeout = d
		}
	}
}

// WithMinCheckInterval sets the minimum time between completed validations;
// CheckAuth calls inside the window are dropped. Zero disables throttling,
// negative values are ignored.
func WithMinCheckInterval(d time.Duration) Option {
	return func(m *Manager) {
		if d >= 0 {
			m.minCheckInterval = d
		}
	}
}

// ProviderOption configures a Provider.
type ProviderOption func(*Provider)

// WithNotifier registers the callback that receives login failure messages
// for user-facing display.
func WithNotifier(fn Notifier) ProviderOption {
	return func(p *Provider) {
		p.notify = fn
	}
}

// WithPollInterval sets the period of the background re-validation timer
// that runs while a user is signed in. Non-positive values are ignored.
func WithPollInterval(d time.Duration) ProviderOption {
	return func(p *Provider) {
		if d > 0 {
			p.pollInterval = d
		}
	}
}
