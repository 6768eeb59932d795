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

// AuthHandler handles login and identity endpoints.
type AuthHandler struct {
	authService ports.AuthService
}

func NewAuthHandler(authService ports.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

type loginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type userSummary struct {
	ID       string `json:"id"`
	Email    string `json:"email"`
	UserName string `json:"userName"`
}

type loginResponse struct {
	AccessToken string      `json:"accessToken"`
	ExpiresIn   int         `json:"expiresIn"`
	User        userSummary `json:"user"`
	Roles       []string    `json:"roles"`
}

// Login authenticates a user and returns a signed bearer token.
//
// @Summary      Login
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      loginRequest  true  "Credentials"
// @Success      200   {object}  loginResponse
// @Failure      400   {object}  map[string]string
// @Failure      401   {object}  map[string]string
// @Router       /auth/login [post]
func (h *AuthHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	}

	result, err := h.authService.Login(c.Request().Context(), req.Email, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrAccountLocked):
			metrics.LoginAttemptsTotal.WithLabelValues("locked").Inc()
			return c.JSON(http.StatusUnauthorized, map[string]string{"error": domain.ErrAccountLocked.Error()})
		case errors.Is(err, domain.ErrInvalidCredentials):
			metrics.LoginAttemptsTotal.WithLabelValues("invalid").Inc()
			return c.JSON(http.StatusUnauthorized, map[string]string{"error": domain.ErrInvalidCredentials.Error()})
		}
		return err
	}

	metrics.LoginAttemptsTotal.WithLabelValues("success").Inc()

	return c.JSON(http.StatusOK, loginResponse{
		AccessToken: result.AccessToken,
		ExpiresIn:   result.ExpiresIn,
		User: userSummary{
			ID:       result.User.ID,
			Email:    result.User.Email,
			UserName: result.User.UserName,
		},
		Roles: result.Roles,
	})
}

// Me returns the authenticated caller's profile and roles.
//
// @Summary      Current user profile
// @Tags         auth
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  map[string]any
// @Failure      401  {object}  map[string]string
// @Router       /auth/me [get]
func (h *AuthHandler) Me(c echo.Context) error {
	id, err := callerID(c)
	if err != nil {
		return err
	}

	user, err := h.authService.Me(c.Request().Context(), id)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return c.JSON(http.StatusUnauthorized, map[string]string{"error": "unknown user"})
		}
		return err
	}

	return c.JSON(http.StatusOK, map[string]any{
		"id":       user.ID,
		"email":    user.Email,
		"userName": user.UserName,
		"roles":    user.Roles,
	})
}

// Ping is an anonymous liveness check for the auth surface.
//
// @Summary      Ping
// @Tags         auth
// @Produce      json
// @Success      200  {object}  map[string]any
// @Router       /auth/ping [get]
func (h *AuthHandler) Ping(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]any{
		"ok": true,
		"at": time.Now().UTC(),
	})
}

// WhoAmI echoes the claims of any valid token without touching the store.
//
// @Summary      Token claims
// @Tags         auth
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  map[string]any
// @Failure      401  {object}  map[string]string
// @Router       /auth/whoami [get]
func (h *AuthHandler) WhoAmI(c echo.Context) error {
	roles, _ := c.Get("roles").([]string)
	return c.JSON(http.StatusOK, map[string]any{
		"userId": c.Get("user_id"),
		"email":  c.Get("email"),
		"name":   c.Get("name"),
		"roles":  roles,
	})
}
