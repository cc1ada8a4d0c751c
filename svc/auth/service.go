package auth

import (
	"context"
	"crypto/rand"
	"encoding/base64"
	"errors"
	"log/slog"
	"strings"
)

// Service implements login, logout and session validation over a UserStore
// and a SessionStore.
type Service struct {
	users    UserStore
	sessions SessionStore
	cfg      Config
	log      *slog.Logger
}

// ServiceOption configures a Service.
type ServiceOption func(*Service)

// WithConfig replaces the default service configuration.
func WithConfig(cfg Config) ServiceOption {
	return func(s *Service) { s.cfg = cfg }
}

// WithLogger routes service logs through the given logger. Nil loggers are
// ignored.
func WithLogger(log *slog.Logger) ServiceOption {
	return func(s *Service) {
		if log != nil {
			s.log = log
		}
	}
}

// NewService creates a Service. Nil stores are a programming error and panic
// to fail fast at bootstrap.
func NewService(users UserStore, sessions SessionStore, opts ...ServiceOption) *Service {
	if users == nil {
		panic("auth: user store is required")
	}
	if sessions == nil {
		panic("auth: session store is required")
	}

	s := &Service{
		users:    users,
		sessions: sessions,
		cfg:      DefaultConfig(),
		log:      slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Config returns the service configuration, used by the HTTP layer for
// cookie settings.
func (s *Service) Config() Config {
	return s.cfg
}

// Login verifies the credentials and issues a session token. Unknown emails
// and wrong passwords both come back as ErrInvalidCredentials.
func (s *Service) Login(ctx context.Context, email, password string) (*User, string, error) {
	email = strings.ToLower(strings.TrimSpace(email))

	user, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, ErrUserNotFound) {
			// Burn a bcrypt comparison anyway so response timing does not
			// reveal whether the account exists.
			_ = VerifyPassword("$2a$12$C6UzMDM.H6dfI/f/IKcEeO7p2u8pXT21wI0FKpz1Qkx5hQ6fGfW5a", password)
			return nil, "", ErrInvalidCredentials
		}
		return nil, "", err
	}

	if !VerifyPassword(user.PasswordHash, password) {
		return nil, "", ErrInvalidCredentials
	}

	token, err := generateToken()
	if err != nil {
		return nil, "", err
	}

	if err := s.sessions.Create(ctx, token, user.ID, s.cfg.SessionTTL); err != nil {
		return nil, "", err
	}

	s.log.InfoContext(ctx, "user logged in", "user_id", user.ID, "role", user.Role)
	return user, token, nil
}

// Validate resolves a session token to its user. Expired and unknown tokens
// both come back as ErrSessionNotFound.
func (s *Service) Validate(ctx context.Context, token string) (*User, error) {
	if token == "" {
		return nil, ErrSessionNotFound
	}

	userID, err := s.sessions.Get(ctx, token)
	if err != nil {
		return nil, err
	}

	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, ErrUserNotFound) {
			// The account vanished while the session lived on; kill it.
			_ = s.sessions.Delete(ctx, token)
			return nil, ErrSessionNotFound
		}
		return nil, err
	}

	return user, nil
}

// Logout destroys the session. Unknown tokens succeed silently.
func (s *Service) Logout(ctx context.Context, token string) error {
	if token == "" {
		return nil
	}
	return s.sessions.Delete(ctx, token)
}

// Register creates an account with a freshly hashed password.
func (s *Service) Register(ctx context.Context, user *User, password string) error {
	hash, err := HashPassword(password, s.cfg.BcryptCost)
	if err != nil {
		return err
	}
	user.Email = strings.ToLower(strings.TrimSpace(user.Email))
	user.PasswordHash = hash

	return s.users.Create(ctx, user)
}

// generateToken creates a cryptographically secure opaque session token.
func generateToken() (string, error) {
	b := make([]byte, 32)
	if _, err := rand.Read(b); err != nil {
		return "", errors.Join(ErrTokenGeneration, err)
	}
	return base64.RawURLEncoding.EncodeToString(b), nil
}
