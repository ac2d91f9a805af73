// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package handler

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/alexedwards/scs/v2"

	"github.com/olegiv/ocms-menus/internal/auth"
	"github.com/olegiv/ocms-menus/internal/middleware"
	"github.com/olegiv/ocms-menus/internal/render"
	"github.com/olegiv/ocms-menus/internal/util"
)

// AuthHandler handles staff login and logout.
type AuthHandler struct {
	pageRenderer
	authenticator   *auth.Authenticator
	sessionManager  *scs.SessionManager
	loginProtection *middleware.LoginProtection
}

// NewAuthHandler creates a new AuthHandler. lp may be nil to disable account lockout.
func NewAuthHandler(authenticator *auth.Authenticator, renderer *render.Renderer, sm *scs.SessionManager, lp *middleware.LoginProtection) *AuthHandler {
	return &AuthHandler{
		pageRenderer:    pageRenderer{renderer: renderer},
		authenticator:   authenticator,
		sessionManager:  sm,
		loginProtection: lp,
	}
}

// LoginData holds data for the login template.
type LoginData struct {
	Username string
	Next     string
}

// loginURL returns the login page URL keeping a local next target.
func loginURL(next string) string {
	if next == "" {
		return redirectLogin
	}
	return redirectLogin + "?next=" + url.QueryEscape(next)
}

// LoginForm handles GET /login/ - displays the login form.
// Logged in users are sent on to their destination.
func (h *AuthHandler) LoginForm(w http.ResponseWriter, r *http.Request) {
	next := util.SafeRedirectPath(r.URL.Query().Get("next"), "")

	if h.sessionManager.GetInt64(r.Context(), middleware.SessionKeyUserID) > 0 {
		http.Redirect(w, r, util.SafeRedirectPath(next, redirectAfterLogin), http.StatusSeeOther)
		return
	}

	h.render(w, r, http.StatusOK, "auth/login", render.TemplateData{
		Title: "Log in",
		Data:  LoginData{Next: next},
	})
}

// Login handles POST /login/ - verifies credentials and starts a session.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	username := strings.TrimSpace(r.PostFormValue("username"))
	password := r.PostFormValue("password")
	next := util.SafeRedirectPath(r.PostFormValue("next"), "")
	if next == "" {
		next = util.SafeRedirectPath(r.URL.Query().Get("next"), "")
	}
	failURL := loginURL(next)

	if username == "" || password == "" {
		flashError(w, r, h.renderer, failURL, msgInvalidLogin)
		return
	}

	if h.loginProtection != nil {
		if locked, remaining := h.loginProtection.IsAccountLocked(username); locked {
			slog.Warn("login attempt on locked account", "category", "auth",
				"username", username, "ip", middleware.GetClientIP(r))
			flashError(w, r, h.renderer, failURL, fmt.Sprintf(msgTooManyAttempts, formatDuration(remaining)))
			return
		}
	}

	user, err := h.authenticator.Authenticate(r.Context(), username, password)
	if err != nil {
		if !errors.Is(err, auth.ErrInvalidCredentials) {
			h.serverError(w, r, "login failed", err)
			return
		}

		slog.Warn("login failed", "category", "auth", "username", username, "ip", middleware.GetClientIP(r))
		if h.loginProtection != nil {
			if locked, lockDuration := h.loginProtection.RecordFailedAttempt(username); locked {
				flashError(w, r, h.renderer, failURL, fmt.Sprintf(msgTooManyAttempts, formatDuration(lockDuration)))
				return
			}
		}
		flashError(w, r, h.renderer, failURL, msgInvalidLogin)
		return
	}

	if h.loginProtection != nil {
		h.loginProtection.RecordSuccessfulLogin(username)
	}

	// Regenerate session ID to prevent session fixation
	if err := h.sessionManager.RenewToken(r.Context()); err != nil {
		logAndInternalError(w, "session renewal error", "error", err)
		return
	}
	h.sessionManager.Put(r.Context(), middleware.SessionKeyUserID, user.ID)

	slog.Info("user logged in", "category", "auth", "user_id", user.ID, "username", user.Username)
	http.Redirect(w, r, util.SafeRedirectPath(next, redirectAfterLogin), http.StatusSeeOther)
}

// Logout handles POST /logout/ - destroys the session.
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	userID := h.sessionManager.GetInt64(r.Context(), middleware.SessionKeyUserID)
	username := middleware.GetUsername(r)

	if err := h.sessionManager.Destroy(r.Context()); err != nil {
		slog.Error("session destroy error", "error", err)
	}

	slog.Info("user logged out", "category", "auth", "user_id", userID, "username", username)
	flashSuccess(w, r, h.renderer, redirectLogin, msgLoggedOut)
}

// formatDuration formats a duration into a human-readable string.
func formatDuration(d time.Duration) string {
	if d < time.Minute {
		return fmt.Sprintf("%d seconds", int(d.Seconds()))
	}
	if d < time.Hour {
		mins := int(d.Minutes())
		if mins == 1 {
			return "1 minute"
		}
		return fmt.Sprintf("%d minutes", mins)
	}
	hours := int(d.Hours())
	if hours == 1 {
		return "1 hour"
	}
	return fmt.Sprintf("%d hours", hours)
}
