// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package handler

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/olegiv/ocms-menus/internal/auth"
	"github.com/olegiv/ocms-menus/internal/middleware"
	"github.com/olegiv/ocms-menus/internal/testutil"
)

const testPassword = "correct-horse-battery"

func newTestAuthHandler(t *testing.T, env *testEnv, lp *middleware.LoginProtection) *AuthHandler {
	t.Helper()
	hash, err := auth.HashPassword(testPassword)
	require.NoError(t, err)
	testutil.CreateUser(t, env.db, "admin", hash)
	return NewAuthHandler(auth.NewAuthenticator(env.db), env.renderer, env.sm, lp)
}

func TestLoginForm(t *testing.T) {
	env := newTestEnv(t)
	h := newTestAuthHandler(t, env, nil)

	req := env.request(t, http.MethodGet, "/login/?next=%2Fmenus%2F1%2Fedit%2F", nil, nil)
	rec := httptest.NewRecorder()
	h.LoginForm(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `name="next" value="/menus/1/edit/"`)
}

func TestLoginFormRedirectsLoggedInUser(t *testing.T) {
	env := newTestEnv(t)
	h := newTestAuthHandler(t, env, nil)

	req := env.request(t, http.MethodGet, "/login/", nil, nil)
	env.sm.Put(req.Context(), middleware.SessionKeyUserID, env.user.ID)
	rec := httptest.NewRecorder()
	h.LoginForm(rec, req)

	assert.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, redirectAfterLogin, rec.Header().Get("Location"))
}

func TestLogin(t *testing.T) {
	tests := []struct {
		name         string
		next         string
		wantLocation string
	}{
		{name: "default destination", next: "", wantLocation: redirectAfterLogin},
		{name: "local next", next: "/menus/3/edit/", wantLocation: "/menus/3/edit/"},
		{name: "external next ignored", next: "https://evil.example.com/", wantLocation: redirectAfterLogin},
		{name: "protocol-relative next ignored", next: "//evil.example.com", wantLocation: redirectAfterLogin},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := newTestEnv(t)
			h := newTestAuthHandler(t, env, nil)

			form := url.Values{"username": {"admin"}, "password": {testPassword}, "next": {tt.next}}
			req := env.request(t, http.MethodPost, "/login/", form, nil)
			rec := httptest.NewRecorder()
			h.Login(rec, req)

			assert.Equal(t, http.StatusSeeOther, rec.Code)
			assert.Equal(t, tt.wantLocation, rec.Header().Get("Location"))
			assert.NotZero(t, env.sm.GetInt64(req.Context(), middleware.SessionKeyUserID))
		})
	}
}

func TestLoginInvalidCredentials(t *testing.T) {
	env := newTestEnv(t)
	h := newTestAuthHandler(t, env, nil)

	form := url.Values{"username": {"admin"}, "password": {"wrong"}, "next": {"/dashboard/"}}
	req := env.request(t, http.MethodPost, "/login/", form, nil)
	rec := httptest.NewRecorder()
	h.Login(rec, req)

	assert.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "/login/?next=%2Fdashboard%2F", rec.Header().Get("Location"))
	assert.Equal(t, msgInvalidLogin, env.flash(req))
	assert.Zero(t, env.sm.GetInt64(req.Context(), middleware.SessionKeyUserID))
}

func TestLoginLocksAccount(t *testing.T) {
	env := newTestEnv(t)
	lp := middleware.NewLoginProtection(middleware.LoginProtectionConfig{
		IPRateLimit:       100,
		IPBurst:           100,
		MaxFailedAttempts: 2,
		LockoutDuration:   time.Minute,
		AttemptWindow:     time.Minute,
	})
	h := newTestAuthHandler(t, env, lp)

	for range 2 {
		form := url.Values{"username": {"admin"}, "password": {"wrong"}}
		h.Login(httptest.NewRecorder(), env.request(t, http.MethodPost, "/login/", form, nil))
	}

	// Correct password is refused while locked
	form := url.Values{"username": {"admin"}, "password": {testPassword}}
	req := env.request(t, http.MethodPost, "/login/", form, nil)
	rec := httptest.NewRecorder()
	h.Login(rec, req)

	assert.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Contains(t, env.flash(req), "Too many failed attempts")
	assert.Zero(t, env.sm.GetInt64(req.Context(), middleware.SessionKeyUserID))
}

func TestLogout(t *testing.T) {
	env := newTestEnv(t)
	h := newTestAuthHandler(t, env, nil)

	req := env.request(t, http.MethodPost, "/logout/", url.Values{}, nil)
	env.sm.Put(req.Context(), middleware.SessionKeyUserID, env.user.ID)
	rec := httptest.NewRecorder()
	h.Logout(rec, req)

	assert.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, redirectLogin, rec.Header().Get("Location"))
	assert.Equal(t, msgLoggedOut, env.flash(req))
	assert.Zero(t, env.sm.GetInt64(req.Context(), middleware.SessionKeyUserID))
}

func TestFormatDuration(t *testing.T) {
	tests := []struct {
		d    time.Duration
		want string
	}{
		{30 * time.Second, "30 seconds"},
		{time.Minute, "1 minute"},
		{15 * time.Minute, "15 minutes"},
		{time.Hour, "1 hour"},
		{5 * time.Hour, "5 hours"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, formatDuration(tt.d))
		})
	}
}
