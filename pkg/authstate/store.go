package authstate

import "sync"

// Listener receives a Session snapshot after every Store mutation.
type Listener func(Session)

// Store holds the Session value and notifies registered listeners on every
// mutation. It is the single source of truth for authentication state and is
// read-only from outside the package; only a Manager mutates it.
//
// All methods are safe for concurrent use.
type Store struct {
	mu        sync.Mutex
	session   Session
	listeners map[int]Listener
	nextID    int
}

// NewStore creates a Store in the uninitialized, signed-out state.
func NewStore() *Store {
	return &Store{
		listeners: make(map[int]Listener),
	}
}

// State returns a snapshot of the current Session.
func (s *Store) State() Session {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.session.clone()
}

// Subscribe registers a listener and returns a function that removes it.
// The returned function is safe to call multiple times; repeated calls after
// the first are no-ops and never affect other listeners.
func (s *Store) Subscribe(fn Listener) (unsubscribe func()) {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := s.nextID
	s.nextID++
	s.listeners[id] = fn

	return func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		delete(s.listeners, id)
	}
}

// update applies mutate to the Session under the store lock, then invokes
// every listener with the new snapshot. Notification is never skipped, even
// when the mutation turns out to be a no-op; callers pass only actual deltas.
//
// Listeners run synchronously on the mutating goroutine, outside the store
// lock, so a listener may safely call State or Subscribe.
func (s *Store) update(mutate func(*Session)) {
	s.mu.Lock()
	mutate(&s.session)
	snapshot := s.session.clone()
	listeners := make([]Listener, 0, len(s.listeners))
	for _, fn := range s.listeners {
		listeners = append(listeners, fn)
	}
	s.mu.Unlock()

	for _, fn := range listeners {
		fn(snapshot)
	}
}
