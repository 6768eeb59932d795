package ports

import (
	"context"

	"github.com/abogapp/case-admin/internal/core/domain"
)

// LoginResult is returned on successful authentication.
type LoginResult struct {
	AccessToken string
	// ExpiresIn is the token lifetime in seconds from issuance.
	ExpiresIn int
	User      *domain.User
	Roles     []string
}

// AuthService defines the authentication use cases.
type AuthService interface {
	Login(ctx context.Context, email, password string) (*LoginResult, error)
	// Me returns the profile and roles for an authenticated user id.
	Me(ctx context.Context, userID string) (*domain.User, error)
}
