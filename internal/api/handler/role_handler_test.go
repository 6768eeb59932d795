package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"github.com/abogapp/case-admin/internal/core/domain"
	"github.com/abogapp/case-admin/internal/core/ports"
)

type stubRoleService struct {
	roles     []*domain.Role
	created   *domain.Role
	createErr error
	updateErr error
	deleteErr error
}

func (s *stubRoleService) List(context.Context) ([]*domain.Role, error) { return s.roles, nil }

func (s *stubRoleService) Get(_ context.Context, id string) (*domain.Role, error) {
	for _, r := range s.roles {
		if r.ID == id {
			return r, nil
		}
	}
	return nil, domain.ErrRoleNotFound
}

func (s *stubRoleService) Create(context.Context, ports.RoleInput) (*domain.Role, error) {
	return s.created, s.createErr
}

func (s *stubRoleService) Update(context.Context, string, ports.RoleInput) error {
	return s.updateErr
}

func (s *stubRoleService) Delete(context.Context, string) error { return s.deleteErr }

func TestRoleHandler_List(t *testing.T) {
	svc := &stubRoleService{
		roles: []*domain.Role{
			{ID: "r-1", Name: domain.RoleAdmin, Active: true, CreatedAt: time.Now().UTC()},
			{ID: "r-2", Name: domain.RoleUser, Active: true, CreatedAt: time.Now().UTC()},
		},
	}
	h := NewRoleHandler(svc)

	c, rec := newTestContext(t, http.MethodGet, "/roles", "")
	if err := h.List(c); err != nil {
		t.Fatalf("List: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp []roleResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if len(resp) != 2 {
		t.Fatalf("unexpected body: %s", rec.Body.String())
	}
}

func TestRoleHandler_Create_Conflict(t *testing.T) {
	h := NewRoleHandler(&stubRoleService{createErr: domain.ErrNameTaken})

	c, rec := newTestContext(t, http.MethodPost, "/roles", `{"name":"R-Admin","active":true}`)
	if err := h.Create(c); err != nil {
		t.Fatalf("Create: %v", err)
	}
	if rec.Code != http.StatusConflict {
		t.Fatalf("expected 409, got %d", rec.Code)
	}
}

func TestRoleHandler_Update_NotFound(t *testing.T) {
	h := NewRoleHandler(&stubRoleService{updateErr: domain.ErrRoleNotFound})

	c, rec := newTestContext(t, http.MethodPut, "/roles/missing", `{"name":"r-x","active":true}`)
	c.SetParamNames("id")
	c.SetParamValues("missing")
	if err := h.Update(c); err != nil {
		t.Fatalf("Update: %v", err)
	}
	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}
}

func TestRoleHandler_Delete(t *testing.T) {
	h := NewRoleHandler(&stubRoleService{})

	c, rec := newTestContext(t, http.MethodDelete, "/roles/r-1", "")
	c.SetParamNames("id")
	c.SetParamValues("r-1")
	if err := h.Delete(c); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if rec.Code != http.StatusNoContent {
		t.Fatalf("expected 204, got %d", rec.Code)
	}
}
