package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"time"
)

// DefaultAdminUsername is used when no admin username is configured.
const DefaultAdminUsername = "admin"

// Seed creates the staff account if no user with that username exists.
// The password must already be hashed. It reports whether a user was created.
func Seed(ctx context.Context, db *sql.DB, username, passwordHash string) (bool, error) {
	if username == "" {
		username = DefaultAdminUsername
	}
	queries := New(db)

	// Check if admin user already exists
	_, err := queries.GetUserByUsername(ctx, username)
	if err == nil {
		slog.Info("admin user already exists, skipping seed", "username", username)
		return false, nil
	}
	if !errors.Is(err, sql.ErrNoRows) {
		return false, fmt.Errorf("checking for admin user: %w", err)
	}

	user, err := queries.CreateUser(ctx, CreateUserParams{
		Username:     username,
		PasswordHash: passwordHash,
		CreatedAt:    time.Now(),
	})
	if err != nil {
		return false, fmt.Errorf("creating admin user: %w", err)
	}

	slog.Info("created admin user", "id", user.ID, "username", user.Username)
	return true, nil
}
