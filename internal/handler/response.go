// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package handler

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/olegiv/ocms-menus/internal/middleware"
	"github.com/olegiv/ocms-menus/internal/render"
	"github.com/olegiv/ocms-menus/internal/service"
)

// flashAndRedirect sets a flash message and redirects to the given URL.
// Uses http.StatusSeeOther (303) for POST redirects.
func flashAndRedirect(w http.ResponseWriter, r *http.Request, renderer *render.Renderer, url, message, messageType string) {
	renderer.SetFlash(r, message, messageType)
	http.Redirect(w, r, url, http.StatusSeeOther)
}

// flashError sets an error flash message and redirects to the given URL.
func flashError(w http.ResponseWriter, r *http.Request, renderer *render.Renderer, url, message string) {
	flashAndRedirect(w, r, renderer, url, message, flashTypeError)
}

// flashSuccess sets a success flash message and redirects to the given URL.
func flashSuccess(w http.ResponseWriter, r *http.Request, renderer *render.Renderer, url, message string) {
	flashAndRedirect(w, r, renderer, url, message, flashTypeSuccess)
}

// logAndHTTPError logs an error and writes an HTTP error response.
func logAndHTTPError(w http.ResponseWriter, message string, statusCode int, logMsg string, args ...any) {
	slog.Error(logMsg, args...)
	http.Error(w, message, statusCode)
}

// logAndInternalError logs an error and writes a 500 Internal Server Error response.
func logAndInternalError(w http.ResponseWriter, logMsg string, args ...any) {
	logAndHTTPError(w, msgInternalError, http.StatusInternalServerError, logMsg, args...)
}

// actor groups the signed-in user for audit log lines.
func actor(r *http.Request) slog.Attr {
	return slog.Group("actor", "user_id", middleware.GetUserID(r), "username", middleware.GetUsername(r))
}

// menuEditURL returns the edit page URL for a menu.
func menuEditURL(menuID int64) string {
	return fmt.Sprintf(redirectMenuEdit, menuID)
}

// parseIDParam reads a positive int64 URL parameter.
func parseIDParam(r *http.Request, name string) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, name), 10, 64)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}

// pageRenderer renders full pages and the error pages shared by the HTML handlers.
type pageRenderer struct {
	renderer *render.Renderer
}

// render renders a page and falls back to a plain 500 when rendering fails.
func (p pageRenderer) render(w http.ResponseWriter, r *http.Request, status int, name string, data render.TemplateData) {
	data.User = middleware.GetUser(r)
	if err := p.renderer.RenderStatus(w, r, status, name, data); err != nil {
		logAndInternalError(w, "render error", "template", name, "error", err)
	}
}

// notFound renders the 404 page.
func (p pageRenderer) notFound(w http.ResponseWriter, r *http.Request) {
	p.render(w, r, http.StatusNotFound, templateNotFound, render.TemplateData{Title: "Not found"})
}

// serverError logs err and renders the 500 page.
func (p pageRenderer) serverError(w http.ResponseWriter, r *http.Request, logMsg string, err error, args ...any) {
	slog.Error(logMsg, append(args, "error", err)...)
	p.render(w, r, http.StatusInternalServerError, templateServerError, render.TemplateData{Title: "Error"})
}

// serviceError maps service errors to 404 or 500 pages.
func (p pageRenderer) serviceError(w http.ResponseWriter, r *http.Request, logMsg string, err error, args ...any) {
	if errors.Is(err, service.ErrNotFound) {
		p.notFound(w, r)
		return
	}
	p.serverError(w, r, logMsg, err, args...)
}

// NotFound returns the router's 404 handler.
func NotFound(renderer *render.Renderer) http.HandlerFunc {
	return pageRenderer{renderer: renderer}.notFound
}
