// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package auth

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/olegiv/ocms-menus/internal/store"
)

// ErrInvalidCredentials is returned for an unknown username or a wrong password.
var ErrInvalidCredentials = errors.New("invalid username or password")

// Authenticator checks staff credentials against the users table.
type Authenticator struct {
	queries *store.Queries

	dummyOnce sync.Once
	dummyHash string
}

// NewAuthenticator creates an Authenticator backed by db.
func NewAuthenticator(db *sql.DB) *Authenticator {
	return &Authenticator{queries: store.New(db)}
}

// Authenticate returns the user for valid credentials and records the login time.
// Unknown usernames still pay for one hash comparison so both failure modes take
// about the same time.
func (a *Authenticator) Authenticate(ctx context.Context, username, password string) (store.User, error) {
	user, err := a.queries.GetUserByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			_, _ = CheckPassword(password, a.dummy())
			return store.User{}, ErrInvalidCredentials
		}
		return store.User{}, fmt.Errorf("loading user: %w", err)
	}

	ok, err := CheckPassword(password, user.PasswordHash)
	if err != nil {
		return store.User{}, fmt.Errorf("checking password: %w", err)
	}
	if !ok {
		return store.User{}, ErrInvalidCredentials
	}

	now := time.Now()
	if err := a.queries.UpdateUserLastLogin(ctx, store.UpdateUserLastLoginParams{
		LastLoginAt: sql.NullTime{Time: now, Valid: true},
		ID:          user.ID,
	}); err != nil {
		return store.User{}, fmt.Errorf("recording login: %w", err)
	}
	user.LastLoginAt = sql.NullTime{Time: now, Valid: true}

	return user, nil
}

func (a *Authenticator) dummy() string {
	a.dummyOnce.Do(func() {
		a.dummyHash, _ = HashPassword("not-a-real-password")
	})
	return a.dummyHash
}
