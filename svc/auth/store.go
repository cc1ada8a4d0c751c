package auth

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// UserStore persists account records.
type UserStore interface {
	// GetByEmail returns the user with the given (case-insensitive) email,
	// or ErrUserNotFound.
	GetByEmail(ctx context.Context, email string) (*User, error)

	// GetByID returns the user with the given ID, or ErrUserNotFound.
	GetByID(ctx context.Context, id uuid.UUID) (*User, error)

	// Create stores a new user. Returns ErrEmailTaken on a duplicate email.
	Create(ctx context.Context, user *User) error
}

// SessionStore persists opaque session tokens.
type SessionStore interface {
	// Create stores a token for the user with the given lifetime.
	Create(ctx context.Context, token string, userID uuid.UUID, ttl time.Duration) error

	// Get resolves a token to its user ID, or ErrSessionNotFound for
	// unknown and expired tokens alike.
	Get(ctx context.Context, token string) (uuid.UUID, error)

	// Delete removes the token. Deleting an unknown token is not an error.
	Delete(ctx context.Context, token string) error
}
