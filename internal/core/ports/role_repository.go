package ports

import (
	"context"

	"github.com/abogapp/case-admin/internal/core/domain"
)

// RoleRepository defines persistence operations for roles.
type RoleRepository interface {
	// List returns all roles ordered by name, ascending.
	List(ctx context.Context) ([]*domain.Role, error)
	FindByID(ctx context.Context, id string) (*domain.Role, error)
	// FindByNormalizedName looks a role up by its uppercase normalized name.
	FindByNormalizedName(ctx context.Context, normalized string) (*domain.Role, error)
	Create(ctx context.Context, role *domain.Role) error
	Update(ctx context.Context, role *domain.Role) error
	Delete(ctx context.Context, id string) error
}
