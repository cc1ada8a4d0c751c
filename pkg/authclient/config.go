package authclient

import "time"

// Config holds client settings loadable from the environment.
type Config struct {
	BaseURL string        `env:"AUTH_API_URL" envDefault:"http://localhost:8080"` // BaseURL is the root of the ThreadCraft API, without a trailing slash.
	Timeout time.Duration `env:"AUTH_API_TIMEOUT" envDefault:"10s"`               // Timeout bounds every request end to end.
}

// NewFromConfig creates a Client from the provided Config.
// Additional options are applied after the config values.
func NewFromConfig(cfg Config, opts ...Option) (*Client, error) {
	configOpts := make([]Option, 0, 2+len(opts))
	if cfg.BaseURL != "" {
		configOpts = append(configOpts, WithBaseURL(cfg.BaseURL))
	}
	if cfg.Timeout > 0 {
		configOpts = append(configOpts, WithTimeout(cfg.Timeout))
	}
	configOpts = append(configOpts, opts...)

	return New(configOpts...)
}
