package domain

import "time"

const (
	// RoleAdmin grants full access to the administration endpoints.
	RoleAdmin = "r-admin"
	// RoleUser is the default role for standard accounts.
	RoleUser = "r-user"
)

// User models an account that can authenticate against the system.
type User struct {
	ID           string    `json:"id"`
	Email        string    `json:"email"`
	UserName     string    `json:"userName"`
	FirstName    string    `json:"firstName"`
	LastName     string    `json:"lastName"`
	PasswordHash string    `json:"-"`
	Active       bool      `json:"active"`
	CreatedAt    time.Time `json:"createdAt"`
	// Roles holds the names of every role assigned to the user.
	Roles []string `json:"roles"`
}

// Role is a named capability grouping assignable to users.
// NormalizedName is the uppercase form keyed by the duplicate check.
type Role struct {
	ID             string    `json:"id"`
	Name           string    `json:"name"`
	NormalizedName string    `json:"-"`
	Description    string    `json:"description,omitempty"`
	Active         bool      `json:"active"`
	CreatedAt      time.Time `json:"createdAt"`
}
