package authstate

import "slices"

// User is the authenticated identity as reported by the ThreadCraft API.
// The record is opaque to this package; consumers interpret Role and
// VisiblePages for their own access-control decisions.
type User struct {
	ID           string   `json:"id"`
	Email        string   `json:"email"`
	Role         string   `json:"role"`
	FirstName    string   `json:"firstName,omitempty"`
	LastName     string   `json:"lastName,omitempty"`
	Username     string   `json:"username,omitempty"`
	IsSuperAdmin bool     `json:"isSuperAdmin,omitempty"`
	VisiblePages []string `json:"visiblePages,omitempty"`
	CustomRole   string   `json:"customRole,omitempty"`
}

// clone returns an independent copy so Store snapshots never share memory
// with the value held under the Store lock.
func (u *User) clone() *User {
	if u == nil {
		return nil
	}
	c := *u
	c.VisiblePages = slices.Clone(u.VisiblePages)
	return &c
}

// Session is the client-side authentication state. A nil User means no
// confirmed server-side session exists.
type Session struct {
	// User is the signed-in identity, or nil when unauthenticated.
	User *User

	// Loading is true while a state-changing network operation is in flight.
	Loading bool

	// Initialized becomes true after the first validation completes,
	// success or failure, and never reverts to false.
	Initialized bool

	// Err holds the human-readable message from the last failed Login.
	// Background validation failures never populate it.
	Err string
}

// IsAuthenticated reports whether a confirmed server-side session exists.
func (s Session) IsAuthenticated() bool {
	return s.User != nil
}

// clone returns a deep copy safe to hand to subscribers and callers.
func (s Session) clone() Session {
	s.User = s.User.clone()
	return s
}
