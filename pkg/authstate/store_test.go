package authstate

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStore_State(t *testing.T) {
	t.Run("starts uninitialized and signed out", func(t *testing.T) {
		store := NewStore()

		state := store.State()
		assert.Nil(t, state.User)
		assert.False(t, state.Loading)
		assert.False(t, state.Initialized)
		assert.Empty(t, state.Err)
	})

	t.Run("snapshots are independent of store memory", func(t *testing.T) {
		store := NewStore()
		store.update(func(s *Session) {
			s.User = &User{ID: "u1", Email: "a@b.com", VisiblePages: []string{"orders"}}
		})

		snapshot := store.State()
		snapshot.User.Email = "mutated@b.com"
		snapshot.User.VisiblePages[0] = "mutated"

		fresh := store.State()
		assert.Equal(t, "a@b.com", fresh.User.Email)
		assert.Equal(t, []string{"orders"}, fresh.User.VisiblePages)
	})
}

func TestStore_Update(t *testing.T) {
	t.Run("notifies every listener with the new state", func(t *testing.T) {
		store := NewStore()

		var first, second []Session
		store.Subscribe(func(s Session) { first = append(first, s) })
		store.Subscribe(func(s Session) { second = append(second, s) })

		store.update(func(s *Session) { s.Loading = true })

		require.Len(t, first, 1)
		require.Len(t, second, 1)
		assert.True(t, first[0].Loading)
		assert.True(t, second[0].Loading)
	})

	t.Run("notifies even when the mutation is a no-op", func(t *testing.T) {
		store := NewStore()

		calls := 0
		store.Subscribe(func(Session) { calls++ })

		store.update(func(*Session) {})
		store.update(func(*Session) {})

		assert.Equal(t, 2, calls)
	})

	t.Run("listener may read state without deadlocking", func(t *testing.T) {
		store := NewStore()

		var observed Session
		store.Subscribe(func(Session) { observed = store.State() })

		store.update(func(s *Session) { s.Initialized = true })
		assert.True(t, observed.Initialized)
	})
}

func TestStore_Subscribe(t *testing.T) {
	t.Run("unsubscribe removes only its own listener", func(t *testing.T) {
		store := NewStore()

		var kept, removed int
		unsubscribe := store.Subscribe(func(Session) { removed++ })
		store.Subscribe(func(Session) { kept++ })

		unsubscribe()
		store.update(func(*Session) {})

		assert.Equal(t, 0, removed)
		assert.Equal(t, 1, kept)
	})

	t.Run("unsubscribe is idempotent", func(t *testing.T) {
		store := NewStore()

		var kept int
		unsubscribe := store.Subscribe(func(Session) {})
		store.Subscribe(func(Session) { kept++ })

		unsubscribe()
		assert.NotPanics(t, unsubscribe)

		store.update(func(*Session) {})
		assert.Equal(t, 1, kept)
	})
}
