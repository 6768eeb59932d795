package handler

import (
	"errors"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/abogapp/case-admin/internal/api/metrics"
	"github.com/abogapp/case-admin/internal/core/domain"
	"github.com/abogapp/case-admin/internal/core/ports"
)

// RoleHandler serves the role administration endpoints.
type RoleHandler struct {
	service ports.RoleService
}

func NewRoleHandler(service ports.RoleService) *RoleHandler {
	return &RoleHandler{service: service}
}

type roleRequest struct {
	Name        string `json:"name" validate:"required"`
	Description string `json:"description"`
	Active      bool   `json:"active"`
}

type roleResponse struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
	Active      bool      `json:"active"`
	CreatedAt   time.Time `json:"createdAt"`
}

// List returns all roles ordered by name.
//
// @Summary      List roles
// @Tags         roles
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}  roleResponse
// @Router       /roles [get]
func (h *RoleHandler) List(c echo.Context) error {
	roles, err := h.service.List(c.Request().Context())
	if err != nil {
		return err
	}

	resp := make([]roleResponse, 0, len(roles))
	for _, r := range roles {
		resp = append(resp, toRoleResponse(r))
	}
	return c.JSON(http.StatusOK, resp)
}

// Get returns a single role by id.
//
// @Summary      Get a role
// @Tags         roles
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Role id"
// @Success      200  {object}  roleResponse
// @Failure      404  {object}  errorResponse
// @Router       /roles/{id} [get]
func (h *RoleHandler) Get(c echo.Context) error {
	role, err := h.service.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return h.mapError(c, err)
	}
	return c.JSON(http.StatusOK, toRoleResponse(role))
}

// Create adds a role.
//
// @Summary      Create a role
// @Tags         roles
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      roleRequest  true  "Role fields"
// @Success      200   {object}  roleResponse
// @Failure      400   {object}  errorResponse
// @Failure      409   {object}  errorResponse
// @Router       /roles [post]
func (h *RoleHandler) Create(c echo.Context) error {
	var req roleRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid payload"})
	}

	role, err := h.service.Create(c.Request().Context(), ports.RoleInput{
		Name:        req.Name,
		Description: req.Description,
		Active:      req.Active,
	})
	if err != nil {
		return h.mapError(c, err)
	}

	metrics.AdminMutationsTotal.WithLabelValues("role", "create").Inc()
	return c.JSON(http.StatusOK, toRoleResponse(role))
}

// Update renames or re-describes a role.
//
// @Summary      Update a role
// @Tags         roles
// @Accept       json
// @Security     BearerAuth
// @Param        id    path  string       true  "Role id"
// @Param        body  body  roleRequest  true  "Role fields"
// @Success      204
// @Failure      400  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Failure      409  {object}  errorResponse
// @Router       /roles/{id} [put]
func (h *RoleHandler) Update(c echo.Context) error {
	var req roleRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid payload"})
	}

	err := h.service.Update(c.Request().Context(), c.Param("id"), ports.RoleInput{
		Name:        req.Name,
		Description: req.Description,
		Active:      req.Active,
	})
	if err != nil {
		return h.mapError(c, err)
	}

	metrics.AdminMutationsTotal.WithLabelValues("role", "update").Inc()
	return c.NoContent(http.StatusNoContent)
}

// Delete removes a role.
//
// @Summary      Delete a role
// @Tags         roles
// @Security     BearerAuth
// @Param        id  path  string  true  "Role id"
// @Success      204
// @Failure      404  {object}  errorResponse
// @Router       /roles/{id} [delete]
func (h *RoleHandler) Delete(c echo.Context) error {
	if err := h.service.Delete(c.Request().Context(), c.Param("id")); err != nil {
		return h.mapError(c, err)
	}
	metrics.AdminMutationsTotal.WithLabelValues("role", "delete").Inc()
	return c.NoContent(http.StatusNoContent)
}

func (h *RoleHandler) mapError(c echo.Context, err error) error {
	switch {
	case domain.IsValidation(err):
		return c.JSON(http.StatusBadRequest, errorResponse{Error: err.Error()})
	case errors.Is(err, domain.ErrNameTaken):
		return c.JSON(http.StatusConflict, errorResponse{Error: domain.ErrNameTaken.Error()})
	case errors.Is(err, domain.ErrRoleNotFound):
		return c.JSON(http.StatusNotFound, errorResponse{Error: domain.ErrRoleNotFound.Error()})
	}
	return err
}

func toRoleResponse(r *domain.Role) roleResponse {
	return roleResponse{
		ID:          r.ID,
		Name:        r.Name,
		Description: r.Description,
		Active:      r.Active,
		CreatedAt:   r.CreatedAt,
	}
}
