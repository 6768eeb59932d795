package ports

import (
	"context"

	"github.com/abogapp/case-admin/internal/core/domain"
)

// ParametricInput carries the writable fields of a parametric record.
// City is only meaningful for kinds that require it.
type ParametricInput struct {
	Name        string
	Description string
	Active      bool
	City        string
}

// ParametricService defines the generic reference-table use cases. An
// implementation is bound to a single kind.
type ParametricService interface {
	Kind() domain.Kind
	List(ctx context.Context) ([]*domain.Parametric, error)
	Get(ctx context.Context, id string) (*domain.Parametric, error)
	Create(ctx context.Context, input ParametricInput) (*domain.Parametric, error)
	Update(ctx context.Context, id string, input ParametricInput) error
	ToggleActive(ctx context.Context, id string) error
	Delete(ctx context.Context, id string) error
}
