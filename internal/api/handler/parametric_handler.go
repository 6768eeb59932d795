package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/abogapp/case-admin/internal/api/metrics"
	"github.com/abogapp/case-admin/internal/core/domain"
	"github.com/abogapp/case-admin/internal/core/ports"
)

// ParametricHandler serves one reference table. The same handler type backs
// courts, claimants, obligation types, and process types; only the bound
// service differs.
type ParametricHandler struct {
	service ports.ParametricService
}

func NewParametricHandler(service ports.ParametricService) *ParametricHandler {
	return &ParametricHandler{service: service}
}

// List returns every record, newest first.
//
// @Summary      List records of a parametric type
// @Tags         parametrics
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   parametricResponse
// @Router       /{type} [get]
func (h *ParametricHandler) List(c echo.Context) error {
	items, err := h.service.List(c.Request().Context())
	if err != nil {
		return err
	}

	resp := make([]parametricResponse, 0, len(items))
	for _, p := range items {
		resp = append(resp, toParametricResponse(p))
	}
	return c.JSON(http.StatusOK, resp)
}

// Get returns a single record by id.
//
// @Summary      Get a parametric record
// @Tags         parametrics
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Record id"
// @Success      200  {object}  parametricResponse
// @Failure      404  {object}  errorResponse
// @Router       /{type}/{id} [get]
func (h *ParametricHandler) Get(c echo.Context) error {
	p, err := h.service.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return h.mapError(c, err)
	}
	return c.JSON(http.StatusOK, toParametricResponse(p))
}

// Create inserts a new record.
//
// @Summary      Create a parametric record
// @Tags         parametrics
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      parametricRequest  true  "Record fields"
// @Success      200   {object}  parametricResponse
// @Failure      400   {object}  errorResponse
// @Failure      409   {object}  errorResponse
// @Router       /{type} [post]
func (h *ParametricHandler) Create(c echo.Context) error {
	var req parametricRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid payload"})
	}

	p, err := h.service.Create(c.Request().Context(), ports.ParametricInput{
		Name:        req.Name,
		Description: req.Description,
		Active:      req.Active,
		City:        req.City,
	})
	if err != nil {
		return h.mapError(c, err)
	}

	metrics.AdminMutationsTotal.WithLabelValues(string(h.service.Kind()), "create").Inc()
	return c.JSON(http.StatusOK, toParametricResponse(p))
}

// Update overwrites the mutable fields of a record.
//
// @Summary      Update a parametric record
// @Tags         parametrics
// @Accept       json
// @Security     BearerAuth
// @Param        id    path  string             true  "Record id"
// @Param        body  body  parametricRequest  true  "Record fields"
// @Success      204
// @Failure      400  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Failure      409  {object}  errorResponse
// @Router       /{type}/{id} [put]
func (h *ParametricHandler) Update(c echo.Context) error {
	var req parametricRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid payload"})
	}

	err := h.service.Update(c.Request().Context(), c.Param("id"), ports.ParametricInput{
		Name:        req.Name,
		Description: req.Description,
		Active:      req.Active,
		City:        req.City,
	})
	if err != nil {
		return h.mapError(c, err)
	}

	metrics.AdminMutationsTotal.WithLabelValues(string(h.service.Kind()), "update").Inc()
	return c.NoContent(http.StatusNoContent)
}

// ToggleActive flips the active flag.
//
// @Summary      Toggle the active flag
// @Tags         parametrics
// @Security     BearerAuth
// @Param        id  path  string  true  "Record id"
// @Success      204
// @Failure      404  {object}  errorResponse
// @Router       /{type}/{id}/toggle-active [patch]
func (h *ParametricHandler) ToggleActive(c echo.Context) error {
	if err := h.service.ToggleActive(c.Request().Context(), c.Param("id")); err != nil {
		return h.mapError(c, err)
	}
	metrics.AdminMutationsTotal.WithLabelValues(string(h.service.Kind()), "toggle").Inc()
	return c.NoContent(http.StatusNoContent)
}

// Delete removes a record.
//
// @Summary      Delete a parametric record
// @Tags         parametrics
// @Security     BearerAuth
// @Param        id  path  string  true  "Record id"
// @Success      204
// @Failure      404  {object}  errorResponse
// @Router       /{type}/{id} [delete]
func (h *ParametricHandler) Delete(c echo.Context) error {
	if err := h.service.Delete(c.Request().Context(), c.Param("id")); err != nil {
		return h.mapError(c, err)
	}
	metrics.AdminMutationsTotal.WithLabelValues(string(h.service.Kind()), "delete").Inc()
	return c.NoContent(http.StatusNoContent)
}

func (h *ParametricHandler) mapError(c echo.Context, err error) error {
	switch {
	case domain.IsValidation(err):
		return c.JSON(http.StatusBadRequest, errorResponse{Error: err.Error()})
	case errors.Is(err, domain.ErrNameTaken):
		return c.JSON(http.StatusConflict, errorResponse{Error: domain.ErrNameTaken.Error()})
	case errors.Is(err, domain.ErrNotFound):
		return c.JSON(http.StatusNotFound, errorResponse{Error: domain.ErrNotFound.Error()})
	}
	return err
}

func toParametricResponse(p *domain.Parametric) parametricResponse {
	return parametricResponse{
		ID:          p.ID,
		Name:        p.Name,
		Description: p.Description,
		Active:      p.Active,
		CreatedAt:   p.CreatedAt,
		City:        p.City,
	}
}
