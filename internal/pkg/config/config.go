package config

import (
	"context"
	"errors"
	"time"

	"github.com/sethvargo/go-envconfig"

	"github.com/abogapp/case-admin/internal/core/service"
)

// Config is the process-wide configuration, read once at startup and treated
// as read-only thereafter.
type Config struct {
	Port     string `env:"PORT,     default=8080"`
	Env      string `env:"ENV,      default=development"`
	LogLevel string `env:"LOG_LEVEL, default=info"`

	JWT     JWTConfig
	Mongo   MongoConfig
	Redis   RedisConfig
	CORS    CORSConfig
	Lockout LockoutConfig
}

// JWTConfig mirrors the token-signing settings: issuer, audience, symmetric
// key, and lifetime in minutes.
type JWTConfig struct {
	Issuer         string `env:"JWT_ISSUER,   default=case-admin"`
	Audience       string `env:"JWT_AUDIENCE, default=case-admin-clients"`
	Key            string `env:"JWT_KEY"`
	ExpiresMinutes int    `env:"JWT_EXPIRES_MINUTES, default=60"`
}

type MongoConfig struct {
	URI      string `env:"MONGO_URI"`
	Database string `env:"MONGO_DB, default=case_admin"`
}

type RedisConfig struct {
	Addr string `env:"REDIS_ADDR, default=localhost:6379"`
	DB   int    `env:"REDIS_DB,   default=0"`
}

type CORSConfig struct {
	AllowedOrigins []string `env:"CORS_ALLOWED_ORIGINS, default=http://localhost:5173"`
}

type LockoutConfig struct {
	Threshold     int `env:"LOCKOUT_THRESHOLD,      default=5"`
	WindowMinutes int `env:"LOCKOUT_WINDOW_MINUTES, default=15"`
}

// Window returns the lockout window as a duration.
func (l LockoutConfig) Window() time.Duration {
	return time.Duration(l.WindowMinutes) * time.Minute
}

// TokenConfig adapts the JWT section into the issuer/guard configuration value.
func (c *Config) TokenConfig() service.TokenConfig {
	return service.TokenConfig{
		Issuer:         c.JWT.Issuer,
		Audience:       c.JWT.Audience,
		Key:            c.JWT.Key,
		ExpiresMinutes: c.JWT.ExpiresMinutes,
	}
}

// Load reads configuration from environment variables using go-envconfig and
// validates the startup invariants. A missing signing key or store URI is a
// configuration error the process must not serve past.
func Load(ctx context.Context) (*Config, error) {
	var cfg Config
	if err := envconfig.Process(ctx, &cfg); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate enforces the required settings.
func (c *Config) Validate() error {
	if c.JWT.Key == "" {
		return errors.New("config: JWT_KEY is required")
	}
	if c.Mongo.URI == "" {
		return errors.New("config: MONGO_URI is required")
	}
	return nil
}
