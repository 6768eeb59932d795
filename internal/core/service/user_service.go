package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/abogapp/case-admin/internal/core/domain"
	"github.com/abogapp/case-admin/internal/core/ports"
)

// UserService implements user administration.
type UserService struct {
	users ports.UserRepository
	roles ports.RoleRepository
	log   zerolog.Logger
}

func NewUserService(users ports.UserRepository, roles ports.RoleRepository, log zerolog.Logger) *UserService {
	return &UserService{users: users, roles: roles, log: log}
}

func (s *UserService) List(ctx context.Context) ([]*domain.User, error) {
	return s.users.List(ctx)
}

func (s *UserService) Get(ctx context.Context, id string) (*domain.User, error) {
	return s.users.FindByID(ctx, id)
}

// Create registers a user. Every requested role must already exist; one
// unknown role name fails the whole call before anything is persisted.
func (s *UserService) Create(ctx context.Context, input ports.CreateUserInput) (*domain.User, error) {
	if err := validateUserFields(input.Email, input.FirstName, input.LastName, input.UserName); err != nil {
		return nil, err
	}
	if strings.TrimSpace(input.Password) == "" {
		return nil, domain.Invalidf("password is required")
	}

	email := strings.ToLower(strings.TrimSpace(input.Email))

	if _, err := s.users.FindByEmail(ctx, email); err == nil {
		return nil, domain.ErrEmailTaken
	} else if !errors.Is(err, domain.ErrUserNotFound) {
		return nil, err
	}

	roleNames, err := s.resolveRoles(ctx, input.Roles)
	if err != nil {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := &domain.User{
		ID:           uuid.NewString(),
		Email:        email,
		UserName:     strings.TrimSpace(input.UserName),
		FirstName:    input.FirstName,
		LastName:     input.LastName,
		PasswordHash: string(hash),
		Active:       input.Active,
		CreatedAt:    time.Now().UTC(),
		Roles:        roleNames,
	}

	if err := s.users.Create(ctx, user); err != nil {
		return nil, err
	}

	s.log.Info().Str("user_id", user.ID).Str("email", user.Email).Msg("user created")
	return user, nil
}

// Update overwrites the profile fields. A changed email re-checks uniqueness
// against every other user.
func (s *UserService) Update(ctx context.Context, id string, input ports.UpdateUserInput) error {
	if err := validateUserFields(input.Email, input.FirstName, input.LastName, input.UserName); err != nil {
		return err
	}

	user, err := s.users.FindByID(ctx, id)
	if err != nil {
		return err
	}

	email := strings.ToLower(strings.TrimSpace(input.Email))
	if email != user.Email {
		if existing, err := s.users.FindByEmail(ctx, email); err == nil && existing.ID != id {
			return domain.ErrEmailTaken
		} else if err != nil && !errors.Is(err, domain.ErrUserNotFound) {
			return err
		}
	}

	user.Email = email
	user.FirstName = input.FirstName
	user.LastName = input.LastName
	user.UserName = strings.TrimSpace(input.UserName)
	user.Active = input.Active

	return s.users.Update(ctx, user)
}

// SetRoles replaces the user's role set with exactly the desired names.
// The change is applied as a diff against the current set; an unknown role
// name fails the whole call with no mutation.
func (s *UserService) SetRoles(ctx context.Context, id string, roles []string) error {
	user, err := s.users.FindByID(ctx, id)
	if err != nil {
		return err
	}

	desired, err := s.resolveRoles(ctx, roles)
	if err != nil {
		return err
	}

	toAdd, toRemove := diffRoles(user.Roles, desired)
	if len(toAdd) == 0 && len(toRemove) == 0 {
		return nil
	}

	if err := s.users.SetRoles(ctx, id, desired); err != nil {
		return err
	}

	s.log.Info().
		Str("user_id", id).
		Strs("added", toAdd).
		Strs("removed", toRemove).
		Msg("user roles updated")
	return nil
}

func (s *UserService) ToggleActive(ctx context.Context, id string) error {
	user, err := s.users.FindByID(ctx, id)
	if err != nil {
		return err
	}
	user.Active = !user.Active
	return s.users.Update(ctx, user)
}

// Delete removes the target account unless it belongs to the caller.
func (s *UserService) Delete(ctx context.Context, callerID, id string) error {
	if callerID == id {
		return domain.ErrSelfDelete
	}
	if _, err := s.users.FindByID(ctx, id); err != nil {
		return err
	}
	return s.users.Delete(ctx, id)
}

// resolveRoles trims, dedupes (case-insensitively), and canonicalizes role
// names against the role store. Any unknown name aborts the whole call.
func (s *UserService) resolveRoles(ctx context.Context, names []string) ([]string, error) {
	seen := make(map[string]struct{}, len(names))
	resolved := make([]string, 0, len(names))
	for _, n := range names {
		n = strings.TrimSpace(n)
		if n == "" {
			continue
		}
		normalized := strings.ToUpper(n)
		if _, ok := seen[normalized]; ok {
			continue
		}
		seen[normalized] = struct{}{}

		role, err := s.roles.FindByNormalizedName(ctx, normalized)
		if err != nil {
			if errors.Is(err, domain.ErrRoleNotFound) {
				return nil, domain.Invalidf("invalid role: %s", n)
			}
			return nil, err
		}
		resolved = append(resolved, role.Name)
	}
	return resolved, nil
}

// diffRoles computes the declarative role assignment as a pair of sets:
// names in desired but not current, and names in current but not desired.
// Comparison is case-insensitive.
func diffRoles(current, desired []string) (toAdd, toRemove []string) {
	currentSet := make(map[string]struct{}, len(current))
	for _, r := range current {
		currentSet[strings.ToUpper(r)] = struct{}{}
	}
	desiredSet := make(map[string]struct{}, len(desired))
	for _, r := range desired {
		desiredSet[strings.ToUpper(r)] = struct{}{}
	}

	for _, r := range desired {
		if _, ok := currentSet[strings.ToUpper(r)]; !ok {
			toAdd = append(toAdd, r)
		}
	}
	for _, r := range current {
		if _, ok := desiredSet[strings.ToUpper(r)]; !ok {
			toRemove = append(toRemove, r)
		}
	}
	return toAdd, toRemove
}

func validateUserFields(email, firstName, lastName, userName string) error {
	switch {
	case strings.TrimSpace(email) == "":
		return domain.Invalidf("email is required")
	case strings.TrimSpace(firstName) == "":
		return domain.Invalidf("firstName is required")
	case strings.TrimSpace(lastName) == "":
		return domain.Invalidf("lastName is required")
	case strings.TrimSpace(userName) == "":
		return domain.Invalidf("userName is required")
	}
	return nil
}
