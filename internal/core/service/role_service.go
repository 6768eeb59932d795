package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/abogapp/case-admin/internal/core/domain"
	"github.com/abogapp/case-admin/internal/core/ports"
)

// RoleService implements role administration. Duplicate detection is keyed
// by the uppercase normalized name stored alongside each role.
type RoleService struct {
	repo ports.RoleRepository
	log  zerolog.Logger
}

func NewRoleService(repo ports.RoleRepository, log zerolog.Logger) *RoleService {
	return &RoleService{repo: repo, log: log}
}

func (s *RoleService) List(ctx context.Context) ([]*domain.Role, error) {
	return s.repo.List(ctx)
}

func (s *RoleService) Get(ctx context.Context, id string) (*domain.Role, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *RoleService) Create(ctx context.Context, input ports.RoleInput) (*domain.Role, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, domain.Invalidf("role name is required")
	}

	normalized := strings.ToUpper(name)
	if _, err := s.repo.FindByNormalizedName(ctx, normalized); err == nil {
		return nil, domain.ErrNameTaken
	} else if !errors.Is(err, domain.ErrRoleNotFound) {
		return nil, err
	}

	role := &domain.Role{
		ID:             uuid.NewString(),
		Name:           name,
		NormalizedName: normalized,
		Description:    input.Description,
		Active:         input.Active,
		CreatedAt:      time.Now().UTC(),
	}

	if err := s.repo.Create(ctx, role); err != nil {
		return nil, err
	}

	s.log.Info().Str("role_id", role.ID).Str("name", role.Name).Msg("role created")
	return role, nil
}

// Update renames and re-describes a role. A rename re-checks uniqueness
// against every other role.
func (s *RoleService) Update(ctx context.Context, id string, input ports.RoleInput) error {
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return domain.Invalidf("role name is required")
	}

	role, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return err
	}

	normalized := strings.ToUpper(name)
	if normalized != role.NormalizedName {
		if existing, err := s.repo.FindByNormalizedName(ctx, normalized); err == nil && existing.ID != id {
			return domain.ErrNameTaken
		} else if err != nil && !errors.Is(err, domain.ErrRoleNotFound) {
			return err
		}
	}

	role.Name = name
	role.NormalizedName = normalized
	role.Description = input.Description
	role.Active = input.Active

	return s.repo.Update(ctx, role)
}

func (s *RoleService) Delete(ctx context.Context, id string) error {
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		return err
	}
	return s.repo.Delete(ctx, id)
}
