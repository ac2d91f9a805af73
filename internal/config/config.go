// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

// Package config loads the menu builder configuration from the environment.
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
)

// knownWeakSecrets contains default/example secrets that must be rejected.
var knownWeakSecrets = []string{
	"change-me-to-32-byte-secret-key!",
	"REPLACE_WITH_YOUR_OWN_SECRET_KEY!",
}

// Config holds the application configuration loaded from environment variables.
type Config struct {
	DBPath        string `env:"MENUS_DB_PATH" envDefault:"./data/menus.db"`
	DBDriver      string `env:"MENUS_DB_DRIVER" envDefault:"sqlite"` // "sqlite" (pure Go) or "sqlite3" (cgo)
	SessionSecret string `env:"MENUS_SESSION_SECRET,required"`
	ServerHost    string `env:"MENUS_SERVER_HOST" envDefault:"localhost"`
	ServerPort    int    `env:"MENUS_SERVER_PORT" envDefault:"8080"`
	Env           string `env:"MENUS_ENV" envDefault:"development"`
	LogLevel      string `env:"MENUS_LOG_LEVEL" envDefault:"info"`

	RequestTimeout time.Duration `env:"MENUS_REQUEST_TIMEOUT" envDefault:"30s"`

	// Seeding configuration
	DoSeed        bool   `env:"MENUS_DO_SEED" envDefault:"false"`
	SeedDemo      bool   `env:"MENUS_SEED_DEMO" envDefault:"false"` // Demo pages and a sample menu
	AdminUsername string `env:"MENUS_ADMIN_USERNAME" envDefault:"admin"`
	AdminPassword string `env:"MENUS_ADMIN_PASSWORD"`
}

// IsDevelopment returns true if the application is running in development mode.
func (c Config) IsDevelopment() bool {
	return c.Env == "development"
}

// ServerAddr returns the full server address in host:port format.
func (c Config) ServerAddr() string {
	return fmt.Sprintf("%s:%d", c.ServerHost, c.ServerPort)
}

// MinSessionSecretLength is the minimum required length for the session secret.
const MinSessionSecretLength = 32

// MinAdminPasswordLength is the minimum length of the seeded admin password.
const MinAdminPasswordLength = 8

// Load parses environment variables and returns a Config struct.
func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}

	if len(cfg.SessionSecret) < MinSessionSecretLength {
		return nil, fmt.Errorf("MENUS_SESSION_SECRET must be at least %d bytes long, got %d bytes; "+
			"generate a secure secret with: openssl rand -base64 32",
			MinSessionSecretLength, len(cfg.SessionSecret))
	}

	for _, weak := range knownWeakSecrets {
		if cfg.SessionSecret == weak {
			return nil, errors.New("MENUS_SESSION_SECRET is a known default value and must not be used; " +
				"generate a secure secret with: openssl rand -base64 32")
		}
	}

	if !hasMinimumEntropy(cfg.SessionSecret) {
		slog.Warn("MENUS_SESSION_SECRET has low character diversity; " +
			"consider generating a random secret with: openssl rand -base64 32")
	}

	switch cfg.DBDriver {
	case "sqlite", "sqlite3":
	default:
		return nil, fmt.Errorf("MENUS_DB_DRIVER must be \"sqlite\" or \"sqlite3\", got %q", cfg.DBDriver)
	}

	if cfg.DoSeed && len(cfg.AdminPassword) < MinAdminPasswordLength {
		return nil, fmt.Errorf("MENUS_ADMIN_PASSWORD must be at least %d characters when MENUS_DO_SEED is enabled",
			MinAdminPasswordLength)
	}

	return cfg, nil
}

// hasMinimumEntropy checks that a secret contains at least 3 character classes
// (lowercase, uppercase, digits, special characters).
func hasMinimumEntropy(s string) bool {
	charTypes := 0
	if strings.ContainsAny(s, "abcdefghijklmnopqrstuvwxyz") {
		charTypes++
	}
	if strings.ContainsAny(s, "ABCDEFGHIJKLMNOPQRSTUVWXYZ") {
		charTypes++
	}
	if strings.ContainsAny(s, "0123456789") {
		charTypes++
	}
	if strings.ContainsAny(s, "!@#$%^&*()-_=+[]{}|;:,.<>?/~`'\"\\") {
		charTypes++
	}
	return charTypes >= 3
}
