// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

// Package testutil provides shared test helpers for the menu builder.
package testutil

import (
	"context"
	"database/sql"
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/olegiv/ocms-menus/internal/store"
)

// TestLogger creates a test logger that only outputs warnings and errors.
func TestLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelWarn,
	}))
}

// TestDB creates a temporary migrated database that is closed when the test ends.
func TestDB(t *testing.T) *sql.DB {
	t.Helper()

	dbPath := filepath.Join(t.TempDir(), "menus-test.db")

	db, err := store.NewDB(dbPath)
	if err != nil {
		t.Fatalf("NewDB: %v", err)
	}
	t.Cleanup(func() {
		_ = db.Close()
	})

	if err := store.Migrate(db); err != nil {
		t.Fatalf("Migrate: %v", err)
	}

	return db
}

// CreatePage inserts a live content page.
func CreatePage(t *testing.T, db *sql.DB, title, slug string) store.Page {
	t.Helper()

	page, err := store.New(db).CreatePage(context.Background(), store.CreatePageParams{
		Title:     title,
		Slug:      slug,
		UrlPath:   "/" + slug + "/",
		Live:      true,
		CreatedAt: time.Now(),
	})
	if err != nil {
		t.Fatalf("CreatePage: %v", err)
	}
	return page
}

// CreateUser inserts a staff account with an already hashed password.
func CreateUser(t *testing.T, db *sql.DB, username, passwordHash string) store.User {
	t.Helper()

	user, err := store.New(db).CreateUser(context.Background(), store.CreateUserParams{
		Username:     username,
		PasswordHash: passwordHash,
		CreatedAt:    time.Now(),
	})
	if err != nil {
		t.Fatalf("CreateUser: %v", err)
	}
	return user
}
