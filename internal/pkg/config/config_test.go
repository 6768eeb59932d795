package config

import (
	"context"
	"testing"
	"time"
)

func TestLoad(t *testing.T) {
	t.Setenv("JWT_KEY", "secret")
	t.Setenv("MONGO_URI", "mongodb://localhost:27017")

	cfg, err := Load(context.Background())
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Port != "8080" {
		t.Fatalf("expected default port, got %q", cfg.Port)
	}
	if cfg.JWT.ExpiresMinutes != 60 {
		t.Fatalf("expected default token lifetime, got %d", cfg.JWT.ExpiresMinutes)
	}
	if cfg.Lockout.Threshold != 5 || cfg.Lockout.Window() != 15*time.Minute {
		t.Fatalf("unexpected lockout defaults: %+v", cfg.Lockout)
	}
}

func TestLoad_MissingKey(t *testing.T) {
	t.Setenv("JWT_KEY", "")
	t.Setenv("MONGO_URI", "mongodb://localhost:27017")

	if _, err := Load(context.Background()); err == nil {
		t.Fatalf("expected error for missing JWT_KEY")
	}
}

func TestLoad_MissingMongoURI(t *testing.T) {
	t.Setenv("JWT_KEY", "secret")
	t.Setenv("MONGO_URI", "")

	if _, err := Load(context.Background()); err == nil {
		t.Fatalf("expected error for missing MONGO_URI")
	}
}

func TestTokenConfig(t *testing.T) {
	cfg := &Config{JWT: JWTConfig{Issuer: "iss", Audience: "aud", Key: "k", ExpiresMinutes: 30}}

	tc := cfg.TokenConfig()
	if tc.Issuer != "iss" || tc.Audience != "aud" || tc.Key != "k" || tc.ExpiresMinutes != 30 {
		t.Fatalf("unexpected token config: %+v", tc)
	}
}
