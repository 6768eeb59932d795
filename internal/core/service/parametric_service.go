package service

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/abogapp/case-admin/internal/core/domain"
	"github.com/abogapp/case-admin/internal/core/ports"
)

// ParametricService implements the generic reference-table lifecycle for one
// kind: list, get, create, update, toggle-active, delete, with trimmed,
// case-insensitive name uniqueness scoped to the kind.
type ParametricService struct {
	kind domain.Kind
	repo ports.ParametricRepository
	log  zerolog.Logger
}

func NewParametricService(kind domain.Kind, repo ports.ParametricRepository, log zerolog.Logger) *ParametricService {
	return &ParametricService{kind: kind, repo: repo, log: log}
}

func (s *ParametricService) Kind() domain.Kind { return s.kind }

func (s *ParametricService) List(ctx context.Context) ([]*domain.Parametric, error) {
	return s.repo.List(ctx)
}

func (s *ParametricService) Get(ctx context.Context, id string) (*domain.Parametric, error) {
	return s.repo.FindByID(ctx, id)
}

// Create trims the input, rejects duplicate names, assigns an identifier and
// creation timestamp, and persists the record.
func (s *ParametricService) Create(ctx context.Context, input ports.ParametricInput) (*domain.Parametric, error) {
	name, city, err := s.validate(input)
	if err != nil {
		return nil, err
	}

	taken, err := s.repo.NameTaken(ctx, domain.NormalizeName(name), "")
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, domain.ErrNameTaken
	}

	p := &domain.Parametric{
		ID:          uuid.NewString(),
		Name:        name,
		Description: strings.TrimSpace(input.Description),
		Active:      input.Active,
		CreatedAt:   time.Now().UTC(),
		City:        city,
	}

	// The unique index on the normalized name is the backstop for a
	// concurrent create that slipped past the check above; the repository
	// surfaces it as the same conflict error.
	if err := s.repo.Create(ctx, p); err != nil {
		return nil, err
	}

	s.log.Info().Str("kind", string(s.kind)).Str("id", p.ID).Str("name", p.Name).Msg("parametric created")
	return p, nil
}

// Update overwrites the mutable fields in place. The identifier and creation
// timestamp never change.
func (s *ParametricService) Update(ctx context.Context, id string, input ports.ParametricInput) error {
	name, city, err := s.validate(input)
	if err != nil {
		return err
	}

	p, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return err
	}

	taken, err := s.repo.NameTaken(ctx, domain.NormalizeName(name), id)
	if err != nil {
		return err
	}
	if taken {
		return domain.ErrNameTaken
	}

	p.Name = name
	p.Description = strings.TrimSpace(input.Description)
	p.Active = input.Active
	p.City = city

	return s.repo.Update(ctx, p)
}

// ToggleActive flips the active flag; applying it twice restores the record.
func (s *ParametricService) ToggleActive(ctx context.Context, id string) error {
	p, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return err
	}
	p.Active = !p.Active
	return s.repo.Update(ctx, p)
}

func (s *ParametricService) Delete(ctx context.Context, id string) error {
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		return err
	}
	return s.repo.Delete(ctx, id)
}

func (s *ParametricService) validate(input ports.ParametricInput) (name, city string, err error) {
	name = strings.TrimSpace(input.Name)
	if name == "" {
		return "", "", domain.Invalidf("name is required")
	}
	city = strings.TrimSpace(input.City)
	if s.kind.RequiresCity() && city == "" {
		return "", "", domain.Invalidf("city is required")
	}
	if !s.kind.RequiresCity() {
		city = ""
	}
	return name, city, nil
}
