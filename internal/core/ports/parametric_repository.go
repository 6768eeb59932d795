package ports

import (
	"context"

	"github.com/abogapp/case-admin/internal/core/domain"
)

// ParametricRepository defines persistence operations for one parametric
// (reference) table. Implementations are scoped to a single kind; name
// uniqueness never crosses kinds.
type ParametricRepository interface {
	// List returns all records ordered by creation time, descending.
	List(ctx context.Context) ([]*domain.Parametric, error)
	FindByID(ctx context.Context, id string) (*domain.Parametric, error)
	// NameTaken reports whether a record other than excludeID already uses the
	// normalized name. Pass excludeID "" when creating.
	NameTaken(ctx context.Context, normalized, excludeID string) (bool, error)
	Create(ctx context.Context, p *domain.Parametric) error
	Update(ctx context.Context, p *domain.Parametric) error
	Delete(ctx context.Context, id string) error
}
