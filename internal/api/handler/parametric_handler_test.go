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

type stubParametricService struct {
	kind      domain.Kind
	items     []*domain.Parametric
	created   *domain.Parametric
	createErr error
	updateErr error
	toggleErr error
	deleteErr error
	getErr    error
	lastInput ports.ParametricInput
}

func (s *stubParametricService) Kind() domain.Kind { return s.kind }

func (s *stubParametricService) List(context.Context) ([]*domain.Parametric, error) {
	return s.items, nil
}

func (s *stubParametricService) Get(_ context.Context, id string) (*domain.Parametric, error) {
	if s.getErr != nil {
		return nil, s.getErr
	}
	for _, p := range s.items {
		if p.ID == id {
			return p, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (s *stubParametricService) Create(_ context.Context, input ports.ParametricInput) (*domain.Parametric, error) {
	s.lastInput = input
	return s.created, s.createErr
}

func (s *stubParametricService) Update(_ context.Context, _ string, input ports.ParametricInput) error {
	s.lastInput = input
	return s.updateErr
}

func (s *stubParametricService) ToggleActive(context.Context, string) error { return s.toggleErr }
func (s *stubParametricService) Delete(context.Context, string) error       { return s.deleteErr }

func TestParametricHandler_List(t *testing.T) {
	svc := &stubParametricService{
		kind: domain.KindCourt,
		items: []*domain.Parametric{
			{ID: "c-1", Name: "Juzgado 01 Civil Municipal", Active: true, CreatedAt: time.Now().UTC(), City: "Bogotá"},
		},
	}
	h := NewParametricHandler(svc)

	c, rec := newTestContext(t, http.MethodGet, "/courts", "")
	if err := h.List(c); err != nil {
		t.Fatalf("List: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp []parametricResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if len(resp) != 1 || resp[0].City != "Bogotá" {
		t.Fatalf("unexpected body: %s", rec.Body.String())
	}
}

func TestParametricHandler_Get_NotFound(t *testing.T) {
	h := NewParametricHandler(&stubParametricService{kind: domain.KindClaimant})

	c, rec := newTestContext(t, http.MethodGet, "/claimants/missing", "")
	c.SetParamNames("id")
	c.SetParamValues("missing")
	if err := h.Get(c); err != nil {
		t.Fatalf("Get: %v", err)
	}
	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}
}

func TestParametricHandler_Create(t *testing.T) {
	svc := &stubParametricService{
		kind:    domain.KindObligationType,
		created: &domain.Parametric{ID: "o-1", Name: "PAGARE", Active: true, CreatedAt: time.Now().UTC()},
	}
	h := NewParametricHandler(svc)

	c, rec := newTestContext(t, http.MethodPost, "/obligation-types", `{"name":"PAGARE","active":true}`)
	if err := h.Create(c); err != nil {
		t.Fatalf("Create: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if svc.lastInput.Name != "PAGARE" || !svc.lastInput.Active {
		t.Fatalf("input not forwarded: %+v", svc.lastInput)
	}

	var resp parametricResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if resp.ID != "o-1" {
		t.Fatalf("unexpected body: %s", rec.Body.String())
	}
}

func TestParametricHandler_Create_Conflict(t *testing.T) {
	h := NewParametricHandler(&stubParametricService{kind: domain.KindCourt, createErr: domain.ErrNameTaken})

	c, rec := newTestContext(t, http.MethodPost, "/courts", `{"name":"Juzgado 01","city":"Bogotá","active":true}`)
	if err := h.Create(c); err != nil {
		t.Fatalf("Create: %v", err)
	}
	if rec.Code != http.StatusConflict {
		t.Fatalf("expected 409, got %d", rec.Code)
	}
}

func TestParametricHandler_Create_ValidationError(t *testing.T) {
	h := NewParametricHandler(&stubParametricService{kind: domain.KindCourt, createErr: domain.Invalidf("city is required")})

	c, rec := newTestContext(t, http.MethodPost, "/courts", `{"name":"Juzgado 02","active":true}`)
	if err := h.Create(c); err != nil {
		t.Fatalf("Create: %v", err)
	}
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}

func TestParametricHandler_Update(t *testing.T) {
	h := NewParametricHandler(&stubParametricService{kind: domain.KindProcessType})

	c, rec := newTestContext(t, http.MethodPut, "/process-types/p-1", `{"name":"EJECUTIVO","active":true}`)
	c.SetParamNames("id")
	c.SetParamValues("p-1")
	if err := h.Update(c); err != nil {
		t.Fatalf("Update: %v", err)
	}
	if rec.Code != http.StatusNoContent {
		t.Fatalf("expected 204, got %d", rec.Code)
	}
}

func TestParametricHandler_Update_NotFound(t *testing.T) {
	h := NewParametricHandler(&stubParametricService{kind: domain.KindProcessType, updateErr: domain.ErrNotFound})

	c, rec := newTestContext(t, http.MethodPut, "/process-types/missing", `{"name":"EJECUTIVO","active":true}`)
	c.SetParamNames("id")
	c.SetParamValues("missing")
	if err := h.Update(c); err != nil {
		t.Fatalf("Update: %v", err)
	}
	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}
}

func TestParametricHandler_ToggleActive(t *testing.T) {
	h := NewParametricHandler(&stubParametricService{kind: domain.KindClaimant})

	c, rec := newTestContext(t, http.MethodPatch, "/claimants/c-1/toggle-active", "")
	c.SetParamNames("id")
	c.SetParamValues("c-1")
	if err := h.ToggleActive(c); err != nil {
		t.Fatalf("ToggleActive: %v", err)
	}
	if rec.Code != http.StatusNoContent {
		t.Fatalf("expected 204, got %d", rec.Code)
	}
}

func TestParametricHandler_Delete(t *testing.T) {
	h := NewParametricHandler(&stubParametricService{kind: domain.KindClaimant})

	c, rec := newTestContext(t, http.MethodDelete, "/claimants/c-1", "")
	c.SetParamNames("id")
	c.SetParamValues("c-1")
	if err := h.Delete(c); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if rec.Code != http.StatusNoContent {
		t.Fatalf("expected 204, got %d", rec.Code)
	}
}

func TestParametricHandler_Delete_NotFound(t *testing.T) {
	h := NewParametricHandler(&stubParametricService{kind: domain.KindClaimant, deleteErr: domain.ErrNotFound})

	c, rec := newTestContext(t, http.MethodDelete, "/claimants/missing", "")
	c.SetParamNames("id")
	c.SetParamValues("missing")
	if err := h.Delete(c); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}
}
