package service

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"

	"github.com/abogapp/case-admin/internal/core/domain"
	"github.com/abogapp/case-admin/internal/core/ports"
)

func TestRoleService_Create(t *testing.T) {
	repo := newStubRoleRepo()
	svc := NewRoleService(repo, zerolog.Nop())

	role, err := svc.Create(context.Background(), ports.RoleInput{
		Name:        " r-audit ",
		Description: "read-only auditor",
		Active:      true,
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if role.Name != "r-audit" {
		t.Fatalf("expected trimmed name, got %q", role.Name)
	}
	if role.NormalizedName != "R-AUDIT" {
		t.Fatalf("expected uppercase normalized name, got %q", role.NormalizedName)
	}
	if role.ID == "" || role.CreatedAt.IsZero() {
		t.Fatalf("expected id and timestamp assigned: %+v", role)
	}
}

func TestRoleService_Create_BlankName(t *testing.T) {
	svc := NewRoleService(newStubRoleRepo(), zerolog.Nop())

	if _, err := svc.Create(context.Background(), ports.RoleInput{Name: "  "}); !domain.IsValidation(err) {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestRoleService_Create_DuplicateCaseInsensitive(t *testing.T) {
	svc := NewRoleService(newStubRoleRepo("r-admin"), zerolog.Nop())

	if _, err := svc.Create(context.Background(), ports.RoleInput{Name: "R-Admin"}); !errors.Is(err, domain.ErrNameTaken) {
		t.Fatalf("expected ErrNameTaken, got %v", err)
	}
}

func TestRoleService_Update_Rename(t *testing.T) {
	repo := newStubRoleRepo("r-admin", "r-user")
	svc := NewRoleService(repo, zerolog.Nop())

	// Renaming onto another role conflicts.
	err := svc.Update(context.Background(), "role-r-user", ports.RoleInput{Name: "R-ADMIN"})
	if !errors.Is(err, domain.ErrNameTaken) {
		t.Fatalf("expected ErrNameTaken, got %v", err)
	}

	// Same normalized name is not a conflict: only casing and metadata change.
	if err := svc.Update(context.Background(), "role-r-user", ports.RoleInput{Name: "R-User", Description: "standard", Active: true}); err != nil {
		t.Fatalf("self-rename: %v", err)
	}
	got, err := repo.FindByNormalizedName(context.Background(), "R-USER")
	if err != nil {
		t.Fatalf("role lost after rename: %v", err)
	}
	if got.Name != "R-User" || got.Description != "standard" {
		t.Fatalf("update not applied: %+v", got)
	}
}

func TestRoleService_Update_NotFound(t *testing.T) {
	svc := NewRoleService(newStubRoleRepo(), zerolog.Nop())

	if err := svc.Update(context.Background(), "missing", ports.RoleInput{Name: "x"}); !errors.Is(err, domain.ErrRoleNotFound) {
		t.Fatalf("expected ErrRoleNotFound, got %v", err)
	}
}

func TestRoleService_Delete(t *testing.T) {
	repo := newStubRoleRepo("r-audit")
	svc := NewRoleService(repo, zerolog.Nop())

	if err := svc.Delete(context.Background(), "role-r-audit"); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if err := svc.Delete(context.Background(), "role-r-audit"); !errors.Is(err, domain.ErrRoleNotFound) {
		t.Fatalf("expected ErrRoleNotFound on second delete, got %v", err)
	}
}
