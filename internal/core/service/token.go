package service

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/abogapp/case-admin/internal/core/domain"
)

const defaultExpiresMinutes = 60

// TokenConfig is the process-wide signing configuration, loaded once at
// startup and passed explicitly into the issuer and the auth middleware.
type TokenConfig struct {
	Issuer         string
	Audience       string
	Key            string
	ExpiresMinutes int
}

// Claims is the token payload: subject id and email always, one roles entry
// per role the user holds.
type Claims struct {
	Email string   `json:"email"`
	Name  string   `json:"name"`
	Roles []string `json:"roles"`
	jwt.RegisteredClaims
}

// TokenIssuer builds signed, time-bounded HS256 tokens.
type TokenIssuer struct {
	cfg TokenConfig
}

// NewTokenIssuer validates the signing configuration. An empty key is a
// startup configuration error; signing must never fall through to an empty
// secret.
func NewTokenIssuer(cfg TokenConfig) (*TokenIssuer, error) {
	if cfg.Key == "" {
		return nil, errors.New("token issuer: signing key is not configured")
	}
	if cfg.ExpiresMinutes <= 0 {
		cfg.ExpiresMinutes = defaultExpiresMinutes
	}
	return &TokenIssuer{cfg: cfg}, nil
}

// Issue signs a token for the user and returns it with its lifetime in seconds.
func (i *TokenIssuer) Issue(user *domain.User) (string, int, error) {
	now := time.Now().UTC()
	lifetime := time.Duration(i.cfg.ExpiresMinutes) * time.Minute

	name := user.UserName
	if name == "" {
		name = user.Email
	}

	claims := Claims{
		Email: user.Email,
		Name:  name,
		Roles: user.Roles,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   user.ID,
			Issuer:    i.cfg.Issuer,
			Audience:  jwt.ClaimStrings{i.cfg.Audience},
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(lifetime)),
		},
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(i.cfg.Key))
	if err != nil {
		return "", 0, err
	}
	return token, int(lifetime.Seconds()), nil
}
