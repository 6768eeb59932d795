package ports

import (
	"context"

	"github.com/abogapp/case-admin/internal/core/domain"
)

// UserRepository defines persistence operations for user accounts.
type UserRepository interface {
	// List returns all users ordered by creation time, descending.
	List(ctx context.Context) ([]*domain.User, error)
	FindByID(ctx context.Context, id string) (*domain.User, error)
	// FindByEmail looks a user up by email, case-insensitively.
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	Create(ctx context.Context, user *domain.User) error
	Update(ctx context.Context, user *domain.User) error
	// SetRoles replaces the user's role set with exactly the given names.
	SetRoles(ctx context.Context, id string, roles []string) error
	Delete(ctx context.Context, id string) error
}
