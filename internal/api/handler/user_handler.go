package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/abogapp/case-admin/internal/api/metrics"
	"github.com/abogapp/case-admin/internal/core/domain"
	"github.com/abogapp/case-admin/internal/core/ports"
)

// UserHandler serves the user administration endpoints.
type UserHandler struct {
	service ports.UserService
}

func NewUserHandler(service ports.UserService) *UserHandler {
	return &UserHandler{service: service}
}

// List returns all users with their roles, newest first.
//
// @Summary      List users
// @Tags         users
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}  userResponse
// @Router       /users [get]
func (h *UserHandler) List(c echo.Context) error {
	users, err := h.service.List(c.Request().Context())
	if err != nil {
		return err
	}

	resp := make([]userResponse, 0, len(users))
	for _, u := range users {
		resp = append(resp, toUserResponse(u))
	}
	return c.JSON(http.StatusOK, resp)
}

// Get returns a single user by id.
//
// @Summary      Get a user
// @Tags         users
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "User id"
// @Success      200  {object}  userResponse
// @Failure      404  {object}  errorResponse
// @Router       /users/{id} [get]
func (h *UserHandler) Get(c echo.Context) error {
	user, err := h.service.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return h.mapError(c, err)
	}
	return c.JSON(http.StatusOK, toUserResponse(user))
}

// Create registers a user, optionally with an initial role set. One unknown
// role name fails the whole call.
//
// @Summary      Create a user
// @Tags         users
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createUserRequest  true  "User fields"
// @Success      200   {object}  userResponse
// @Failure      400   {object}  errorResponse
// @Failure      409   {object}  errorResponse
// @Router       /users [post]
func (h *UserHandler) Create(c echo.Context) error {
	var req createUserRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: err.Error()})
	}

	user, err := h.service.Create(c.Request().Context(), ports.CreateUserInput{
		Email:     req.Email,
		FirstName: req.FirstName,
		LastName:  req.LastName,
		UserName:  req.UserName,
		Password:  req.Password,
		Active:    req.Active,
		Roles:     req.Roles,
	})
	if err != nil {
		return h.mapError(c, err)
	}

	metrics.AdminMutationsTotal.WithLabelValues("user", "create").Inc()
	return c.JSON(http.StatusOK, toUserResponse(user))
}

// Update overwrites a user's profile fields.
//
// @Summary      Update a user
// @Tags         users
// @Accept       json
// @Security     BearerAuth
// @Param        id    path  string             true  "User id"
// @Param        body  body  updateUserRequest  true  "User fields"
// @Success      204
// @Failure      400  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Failure      409  {object}  errorResponse
// @Router       /users/{id} [put]
func (h *UserHandler) Update(c echo.Context) error {
	var req updateUserRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: err.Error()})
	}

	err := h.service.Update(c.Request().Context(), c.Param("id"), ports.UpdateUserInput{
		Email:     req.Email,
		FirstName: req.FirstName,
		LastName:  req.LastName,
		UserName:  req.UserName,
		Active:    req.Active,
	})
	if err != nil {
		return h.mapError(c, err)
	}

	metrics.AdminMutationsTotal.WithLabelValues("user", "update").Inc()
	return c.NoContent(http.StatusNoContent)
}

// SetRoles replaces the user's role set with exactly the requested names.
//
// @Summary      Set a user's roles
// @Tags         users
// @Accept       json
// @Security     BearerAuth
// @Param        id    path  string               true  "User id"
// @Param        body  body  setUserRolesRequest  true  "Desired role names"
// @Success      204
// @Failure      400  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Router       /users/{id}/roles [put]
func (h *UserHandler) SetRoles(c echo.Context) error {
	var req setUserRolesRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid payload"})
	}

	if err := h.service.SetRoles(c.Request().Context(), c.Param("id"), req.Roles); err != nil {
		return h.mapError(c, err)
	}

	metrics.AdminMutationsTotal.WithLabelValues("user", "set_roles").Inc()
	return c.NoContent(http.StatusNoContent)
}

// ToggleActive flips a user's active flag.
//
// @Summary      Toggle a user's active flag
// @Tags         users
// @Security     BearerAuth
// @Param        id  path  string  true  "User id"
// @Success      204
// @Failure      404  {object}  errorResponse
// @Router       /users/{id}/toggle-active [patch]
func (h *UserHandler) ToggleActive(c echo.Context) error {
	if err := h.service.ToggleActive(c.Request().Context(), c.Param("id")); err != nil {
		return h.mapError(c, err)
	}
	metrics.AdminMutationsTotal.WithLabelValues("user", "toggle").Inc()
	return c.NoContent(http.StatusNoContent)
}

// Delete removes a user account. Deleting the caller's own account is
// rejected before any store mutation.
//
// @Summary      Delete a user
// @Tags         users
// @Security     BearerAuth
// @Param        id  path  string  true  "User id"
// @Success      204
// @Failure      400  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Router       /users/{id} [delete]
func (h *UserHandler) Delete(c echo.Context) error {
	caller, err := callerID(c)
	if err != nil {
		return err
	}

	if err := h.service.Delete(c.Request().Context(), caller, c.Param("id")); err != nil {
		return h.mapError(c, err)
	}

	metrics.AdminMutationsTotal.WithLabelValues("user", "delete").Inc()
	return c.NoContent(http.StatusNoContent)
}

func (h *UserHandler) mapError(c echo.Context, err error) error {
	switch {
	case domain.IsValidation(err):
		return c.JSON(http.StatusBadRequest, errorResponse{Error: err.Error()})
	case errors.Is(err, domain.ErrSelfDelete):
		return c.JSON(http.StatusBadRequest, errorResponse{Error: domain.ErrSelfDelete.Error()})
	case errors.Is(err, domain.ErrEmailTaken):
		return c.JSON(http.StatusConflict, errorResponse{Error: domain.ErrEmailTaken.Error()})
	case errors.Is(err, domain.ErrUserNotFound):
		return c.JSON(http.StatusNotFound, errorResponse{Error: domain.ErrUserNotFound.Error()})
	}
	return err
}

func toUserResponse(u *domain.User) userResponse {
	roles := u.Roles
	if roles == nil {
		roles = []string{}
	}
	return userResponse{
		ID:        u.ID,
		Email:     u.Email,
		FirstName: u.FirstName,
		LastName:  u.LastName,
		UserName:  u.UserName,
		Active:    u.Active,
		CreatedAt: u.CreatedAt,
		Roles:     roles,
	}
}
