package service

import (
	"sort"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/abogapp/case-admin/internal/core/domain"
)

func TestNewTokenIssuer_EmptyKey(t *testing.T) {
	if _, err := NewTokenIssuer(TokenConfig{Issuer: "iss", Audience: "aud"}); err == nil {
		t.Fatalf("expected error for empty signing key")
	}
}

func TestTokenIssuer_RoundTrip(t *testing.T) {
	issuer, err := NewTokenIssuer(TokenConfig{
		Issuer:         "case-admin",
		Audience:       "case-admin-clients",
		Key:            "secret",
		ExpiresMinutes: 60,
	})
	if err != nil {
		t.Fatalf("NewTokenIssuer: %v", err)
	}

	user := &domain.User{
		ID:       "u-1",
		Email:    "alice@example.com",
		UserName: "alice",
		Roles:    []string{"r-admin", "r-user"},
	}

	token, expiresIn, err := issuer.Issue(user)
	if err != nil {
		t.Fatalf("Issue: %v", err)
	}
	if expiresIn != 3600 {
		t.Fatalf("expected expiresIn 3600, got %d", expiresIn)
	}

	claims := &Claims{}
	parsed, err := jwt.ParseWithClaims(token, claims, func(*jwt.Token) (interface{}, error) {
		return []byte("secret"), nil
	}, jwt.WithIssuer("case-admin"), jwt.WithAudience("case-admin-clients"))
	if err != nil || !parsed.Valid {
		t.Fatalf("token invalid: %v", err)
	}

	if claims.Subject != "u-1" {
		t.Fatalf("unexpected subject: %s", claims.Subject)
	}
	if claims.Email != "alice@example.com" {
		t.Fatalf("unexpected email claim: %s", claims.Email)
	}
	if claims.Name != "alice" {
		t.Fatalf("unexpected name claim: %s", claims.Name)
	}

	got := append([]string(nil), claims.Roles...)
	want := []string{"r-admin", "r-user"}
	sort.Strings(got)
	if len(got) != len(want) || got[0] != want[0] || got[1] != want[1] {
		t.Fatalf("role claims mismatch: got %v, want %v", got, want)
	}

	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		t.Fatalf("missing expiry: %v", err)
	}
	iat, err := claims.GetIssuedAt()
	if err != nil || iat == nil {
		t.Fatalf("missing issued-at: %v", err)
	}
	if lifetime := exp.Sub(iat.Time); lifetime != time.Hour {
		t.Fatalf("expected 1h lifetime, got %v", lifetime)
	}
}

func TestTokenIssuer_DefaultLifetime(t *testing.T) {
	issuer, err := NewTokenIssuer(TokenConfig{Issuer: "iss", Audience: "aud", Key: "secret"})
	if err != nil {
		t.Fatalf("NewTokenIssuer: %v", err)
	}

	_, expiresIn, err := issuer.Issue(&domain.User{ID: "u-1", Email: "a@example.com"})
	if err != nil {
		t.Fatalf("Issue: %v", err)
	}
	if expiresIn != 3600 {
		t.Fatalf("expected default lifetime of 60 minutes, got %d seconds", expiresIn)
	}
}

func TestTokenIssuer_NameFallsBackToEmail(t *testing.T) {
	issuer, _ := NewTokenIssuer(TokenConfig{Issuer: "iss", Audience: "aud", Key: "secret"})

	token, _, err := issuer.Issue(&domain.User{ID: "u-1", Email: "bob@example.com"})
	if err != nil {
		t.Fatalf("Issue: %v", err)
	}

	claims := &Claims{}
	if _, err := jwt.ParseWithClaims(token, claims, func(*jwt.Token) (interface{}, error) {
		return []byte("secret"), nil
	}); err != nil {
		t.Fatalf("parse: %v", err)
	}
	if claims.Name != "bob@example.com" {
		t.Fatalf("expected name to fall back to email, got %q", claims.Name)
	}
}
