package ports

import (
	"context"

	"github.com/abogapp/case-admin/internal/core/domain"
)

// CreateUserInput carries all data needed to create a user account.
// Roles must name existing roles; one unknown name fails the whole creation.
type CreateUserInput struct {
	Email     string
	FirstName string
	LastName  string
	UserName  string
	Password  string
	Active    bool
	Roles     []string
}

// UpdateUserInput carries the mutable profile fields.
type UpdateUserInput struct {
	Email     string
	FirstName string
	LastName  string
	UserName  string
	Active    bool
}

// UserService defines user administration use cases.
type UserService interface {
	List(ctx context.Context) ([]*domain.User, error)
	Get(ctx context.Context, id string) (*domain.User, error)
	Create(ctx context.Context, input CreateUserInput) (*domain.User, error)
	Update(ctx context.Context, id string, input UpdateUserInput) error
	// SetRoles replaces the user's roles with exactly the desired set.
	SetRoles(ctx context.Context, id string, roles []string) error
	ToggleActive(ctx context.Context, id string) error
	// Delete removes the target account. callerID is the authenticated
	// caller; deleting one's own account is rejected.
	Delete(ctx context.Context, callerID, id string) error
}
