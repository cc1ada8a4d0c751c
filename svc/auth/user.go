package auth

import (
	"time"

	"github.com/google/uuid"
)

// Built-in roles of the ThreadCraft dashboard. A user may additionally carry
// a free-form CustomRole defined by an admin.
const (
	RoleAdmin        = "admin"
	RoleManager      = "manager"
	RoleCustomer     = "customer"
	RoleManufacturer = "manufacturer"
)

// User is the account record as stored.
type User struct {
	ID           uuid.UUID
	Email        string
	PasswordHash string
	Role         string
	FirstName    string
	LastName     string
	Username     string
	IsSuperAdmin bool
	VisiblePages []string
	CustomRole   string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// Profile is the wire representation of a user, as consumed by the
// dashboard. It never carries the password hash.
type Profile struct {
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

// Profile maps the stored record to its wire shape.
func (u *User) Profile() Profile {
	return Profile{
		ID:           u.ID.String(),
		Email:        u.Email,
		Role:         u.Role,
		FirstName:    u.FirstName,
		LastName:     u.LastName,
		Username:     u.Username,
		IsSuperAdmin: u.IsSuperAdmin,
		VisiblePages: u.VisiblePages,
		CustomRole:   u.CustomRole,
	}
}
