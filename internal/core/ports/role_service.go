package ports

import (
	"context"

	"github.com/abogapp/case-admin/internal/core/domain"
)

// RoleInput carries the writable fields of a role.
type RoleInput struct {
	Name        string
	Description string
	Active      bool
}

// RoleService defines role administration use cases.
type RoleService interface {
	List(ctx context.Context) ([]*domain.Role, error)
	Get(ctx context.Context, id string) (*domain.Role, error)
	Create(ctx context.Context, input RoleInput) (*domain.Role, error)
	Update(ctx context.Context, id string, input RoleInput) error
	Delete(ctx context.Context, id string) error
}
