package auth

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
)

// MemoryUserStore implements UserStore in process memory. It backs tests and
// local development without a database.
type MemoryUserStore struct {
	mu      sync.RWMutex
	byID    map[uuid.UUID]*User
	byEmail map[string]uuid.UUID
}

// NewMemoryUserStore creates an empty in-memory user store.
func NewMemoryUserStore() *MemoryUserStore {
	return &MemoryUserStore{
		byID:    make(map[uuid.UUID]*User),
		byEmail: make(map[string]uuid.UUID),
	}
}

func (m *MemoryUserStore) GetByEmail(ctx context.Context, email string) (*User, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	id, ok := m.byEmail[strings.ToLower(email)]
	if !ok {
		return nil, ErrUserNotFound
	}
	u := *m.byID[id]
	return &u, nil
}

func (m *MemoryUserStore) GetByID(ctx context.Context, id uuid.UUID) (*User, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	user, ok := m.byID[id]
	if !ok {
		return nil, ErrUserNotFound
	}
	u := *user
	return &u, nil
}

func (m *MemoryUserStore) Create(ctx context.Context, user *User) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	email := strings.ToLower(user.Email)
	if _, exists := m.byEmail[email]; exists {
		return ErrEmailTaken
	}

	if user.ID == uuid.Nil {
		user.ID = uuid.New()
	}
	now := time.Now()
	user.CreatedAt = now
	user.UpdatedAt = now

	u := *user
	m.byID[u.ID] = &u
	m.byEmail[email] = u.ID
	return nil
}

type memorySession struct {
	userID    uuid.UUID
	expiresAt time.Time
}

// MemorySessionStore implements SessionStore in process memory.
type MemorySessionStore struct {
	mu       sync.RWMutex
	sessions map[string]memorySession
}

// NewMemorySessionStore creates an empty in-memory session store.
func NewMemorySessionStore() *MemorySessionStore {
	return &MemorySessionStore{sessions: make(map[string]memorySession)}
}

func (m *MemorySessionStore) Create(ctx context.Context, token string, userID uuid.UUID, ttl time.Duration) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.sessions[token] = memorySession{userID: userID, expiresAt: time.Now().Add(ttl)}
	return nil
}

func (m *MemorySessionStore) Get(ctx context.Context, token string) (uuid.UUID, error) {
	m.mu.RLock()
	sess, ok := m.sessions[token]
	m.mu.RUnlock()

	if !ok {
		return uuid.Nil, ErrSessionNotFound
	}
	if time.Now().After(sess.expiresAt) {
		m.mu.Lock()
		delete(m.sessions, token)
		m.mu.Unlock()
		return uuid.Nil, ErrSessionNotFound
	}
	return sess.userID, nil
}

func (m *MemorySessionStore) Delete(ctx context.Context, token string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	delete(m.sessions, token)
	return nil
}
