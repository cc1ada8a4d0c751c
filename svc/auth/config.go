package auth

import "time"

// Config holds auth service settings loadable from the environment.
type Config struct {
	CookieName    string        `env:"AUTH_COOKIE_NAME" envDefault:"tc_session"` // CookieName is the session cookie name.
	SessionTTL    time.Duration `env:"AUTH_SESSION_TTL" envDefault:"720h"`       // SessionTTL is the server-side session lifetime.
	SecureCookies bool          `env:"AUTH_SECURE_COOKIES" envDefault:"false"`   // SecureCookies sets the Secure flag on the session cookie.
	BcryptCost    int           `env:"AUTH_BCRYPT_COST" envDefault:"12"`         // BcryptCost is the bcrypt work factor for new password hashes.

	LoginRateCapacity int           `env:"AUTH_LOGIN_RATE_CAPACITY" envDefault:"10"` // LoginRateCapacity is the login attempt burst per client IP.
	LoginRateInterval time.Duration `env:"AUTH_LOGIN_RATE_INTERVAL" envDefault:"1m"` // LoginRateInterval is how often one attempt is restored.
}

// DefaultConfig returns the defaults used when no environment is loaded.
func DefaultConfig() Config {
	return Config{
		CookieName:        "tc_session",
		SessionTTL:        30 * 24 * time.Hour,
		BcryptCost:        12,
		LoginRateCapacity: 10,
		LoginRateInterval: time.Minute,
	}
}
