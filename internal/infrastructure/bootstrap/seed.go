// Package bootstrap seeds the reference data the application expects at
// first start: the built-in roles, one admin and one standard account, and
// the initial parametric rows. Every step is an upsert-if-absent with a
// case-insensitive existence check, so re-running it is a no-op.
package bootstrap

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/mongo"
	"golang.org/x/crypto/bcrypt"

	"github.com/abogapp/case-admin/internal/core/domain"
	mongodb "github.com/abogapp/case-admin/internal/infrastructure/db/mongo"
)

type seedUser struct {
	email     string
	password  string
	firstName string
	lastName  string
	role      string
}

var seedRoles = []domain.Role{
	{Name: domain.RoleAdmin, Description: "System administrator"},
	{Name: domain.RoleUser, Description: "Standard user"},
}

var seedUsers = []seedUser{
	{email: "admin@abogapp.com", password: "Admin123!", firstName: "admin", lastName: "abogapp", role: domain.RoleAdmin},
	{email: "user@abogapp.com", password: "User123!", firstName: "user", lastName: "abogapp", role: domain.RoleUser},
}

var seedParametrics = map[domain.Kind][]string{
	domain.KindObligationType: {"PAGARE", "CONTRATO", "LETRA"},
	domain.KindProcessType: {
		"EJECUTIVO SINGULAR",
		"EJECUTIVO HIPOTECARIO",
		"MIXTO",
		"PRENDARIO",
		"RESTITUCIÓN",
		"LEASING",
	},
}

var seedCourts = []struct {
	name string
	city string
}{
	{"Juzgado 01 Civil Municipal", "Bogotá"},
	{"Juzgado 10 Civil del Circuito", "Bogotá"},
}

// Run ensures indexes and seeds the initial data set.
func Run(ctx context.Context, db *mongo.Database, log zerolog.Logger) error {
	userRepo := mongodb.NewUserRepository(db)
	roleRepo := mongodb.NewRoleRepository(db)

	if err := userRepo.EnsureIndexes(ctx); err != nil {
		return fmt.Errorf("bootstrap: user indexes: %w", err)
	}
	if err := roleRepo.EnsureIndexes(ctx); err != nil {
		return fmt.Errorf("bootstrap: role indexes: %w", err)
	}

	if err := ensureRoles(ctx, roleRepo, log); err != nil {
		return err
	}
	if err := ensureUsers(ctx, userRepo, log); err != nil {
		return err
	}
	return ensureParametrics(ctx, db, log)
}

func ensureRoles(ctx context.Context, repo *mongodb.RoleRepository, log zerolog.Logger) error {
	for _, seed := range seedRoles {
		normalized := strings.ToUpper(seed.Name)
		_, err := repo.FindByNormalizedName(ctx, normalized)
		if err == nil {
			continue
		}
		if !errors.Is(err, domain.ErrRoleNotFound) {
			return fmt.Errorf("bootstrap: role lookup: %w", err)
		}

		role := &domain.Role{
			ID:             uuid.NewString(),
			Name:           seed.Name,
			NormalizedName: normalized,
			Description:    seed.Description,
			Active:         true,
			CreatedAt:      time.Now().UTC(),
		}
		if err := repo.Create(ctx, role); err != nil {
			return fmt.Errorf("bootstrap: create role %s: %w", seed.Name, err)
		}
		log.Info().Str("role", seed.Name).Msg("seeded role")
	}
	return nil
}

func ensureUsers(ctx context.Context, repo *mongodb.UserRepository, log zerolog.Logger) error {
	for _, seed := range seedUsers {
		_, err := repo.FindByEmail(ctx, seed.email)
		if err == nil {
			continue
		}
		if !errors.Is(err, domain.ErrUserNotFound) {
			return fmt.Errorf("bootstrap: user lookup: %w", err)
		}

		hash, err := bcrypt.GenerateFromPassword([]byte(seed.password), bcrypt.DefaultCost)
		if err != nil {
			return fmt.Errorf("bootstrap: hash password: %w", err)
		}

		user := &domain.User{
			ID:           uuid.NewString(),
			Email:        seed.email,
			UserName:     seed.email,
			FirstName:    seed.firstName,
			LastName:     seed.lastName,
			PasswordHash: string(hash),
			Active:       true,
			CreatedAt:    time.Now().UTC(),
			Roles:        []string{seed.role},
		}
		if err := repo.Create(ctx, user); err != nil {
			return fmt.Errorf("bootstrap: create user %s: %w", seed.email, err)
		}
		log.Info().Str("email", seed.email).Msg("seeded user")
	}
	return nil
}

func ensureParametrics(ctx context.Context, db *mongo.Database, log zerolog.Logger) error {
	for kind, names := range seedParametrics {
		repo := mongodb.NewParametricRepository(db, kind)
		if err := repo.EnsureIndexes(ctx); err != nil {
			return fmt.Errorf("bootstrap: %s indexes: %w", kind, err)
		}
		for _, name := range names {
			if err := ensureParametric(ctx, repo, kind, name, "", log); err != nil {
				return err
			}
		}
	}

	courtRepo := mongodb.NewParametricRepository(db, domain.KindCourt)
	if err := courtRepo.EnsureIndexes(ctx); err != nil {
		return fmt.Errorf("bootstrap: court indexes: %w", err)
	}
	for _, court := range seedCourts {
		if err := ensureParametric(ctx, courtRepo, domain.KindCourt, court.name, court.city, log); err != nil {
			return err
		}
	}
	return nil
}

func ensureParametric(ctx context.Context, repo *mongodb.ParametricRepository, kind domain.Kind, name, city string, log zerolog.Logger) error {
	taken, err := repo.NameTaken(ctx, domain.NormalizeName(name), "")
	if err != nil {
		return fmt.Errorf("bootstrap: %s lookup: %w", kind, err)
	}
	if taken {
		return nil
	}

	p := &domain.Parametric{
		ID:          uuid.NewString(),
		Name:        name,
		Description: name,
		Active:      true,
		CreatedAt:   time.Now().UTC(),
		City:        city,
	}
	if err := repo.Create(ctx, p); err != nil {
		return fmt.Errorf("bootstrap: create %s %s: %w", kind, name, err)
	}
	log.Info().Str("kind", string(kind)).Str("name", name).Msg("seeded parametric")
	return nil
}
