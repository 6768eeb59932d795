package service

import (
	"context"
	"errors"
	"strings"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/abogapp/case-admin/internal/core/domain"
	"github.com/abogapp/case-admin/internal/core/ports"
)

const defaultLockoutThreshold = 5

// AuthService implements credential verification and token issuance.
type AuthService struct {
	users     ports.UserRepository
	lockout   ports.LockoutTracker
	issuer    *TokenIssuer
	threshold int
	log       zerolog.Logger
}

// NewAuthService wires the credential store, lockout tracker, and token
// issuer. threshold <= 0 falls back to the default of 5 failed attempts.
func NewAuthService(users ports.UserRepository, lockout ports.LockoutTracker, issuer *TokenIssuer, threshold int, log zerolog.Logger) *AuthService {
	if threshold <= 0 {
		threshold = defaultLockoutThreshold
	}
	return &AuthService{users: users, lockout: lockout, issuer: issuer, threshold: threshold, log: log}
}

// Login checks the credentials and returns a signed token on success.
// Once the failure counter reaches the threshold, every attempt is rejected
// as locked until the window lapses, regardless of the password offered.
func (s *AuthService) Login(ctx context.Context, email, password string) (*ports.LoginResult, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" || password == "" {
		return nil, domain.ErrInvalidCredentials
	}

	failures, err := s.lockout.Failures(ctx, email)
	if err != nil {
		// Lockout store outage must not take logins down with it.
		s.log.Warn().Err(err).Msg("lockout check failed, continuing")
	} else if failures >= s.threshold {
		s.log.Warn().Str("email", email).Int("failures", failures).Msg("login rejected, account locked")
		return nil, domain.ErrAccountLocked
	}

	user, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return nil, domain.ErrInvalidCredentials
		}
		return nil, err
	}
	if !user.Active {
		s.log.Warn().Str("email", email).Msg("login rejected, account inactive")
		return nil, domain.ErrInvalidCredentials
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		if n, err := s.lockout.RecordFailure(ctx, email); err != nil {
			s.log.Warn().Err(err).Msg("failed to record login failure")
		} else if n >= s.threshold {
			s.log.Warn().Str("email", email).Int("failures", n).Msg("account locked")
		}
		return nil, domain.ErrInvalidCredentials
	}

	if err := s.lockout.Clear(ctx, email); err != nil {
		s.log.Warn().Err(err).Msg("failed to clear lockout counter")
	}

	token, expiresIn, err := s.issuer.Issue(user)
	if err != nil {
		return nil, err
	}

	s.log.Info().Str("user_id", user.ID).Msg("login succeeded")

	return &ports.LoginResult{
		AccessToken: token,
		ExpiresIn:   expiresIn,
		User:        user,
		Roles:       user.Roles,
	}, nil
}

// Me resolves the authenticated caller's profile.
func (s *AuthService) Me(ctx context.Context, userID string) (*domain.User, error) {
	if userID == "" {
		return nil, domain.ErrUserNotFound
	}
	return s.users.FindByID(ctx, userID)
}
