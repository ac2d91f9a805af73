// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/olegiv/ocms-menus/internal/service"
)

func menuParams(id int64) map[string]string {
	return map[string]string{paramID: strconv.FormatInt(id, 10)}
}

func TestMenusList(t *testing.T) {
	env := newTestEnv(t)
	h := NewMenusHandler(env.menus, env.renderer)
	env.createMenu(t, "Footer")
	env.createMenu(t, "Header")

	rec := httptest.NewRecorder()
	h.List(rec, env.request(t, http.MethodGet, "/menus/", nil, nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, "Footer")
	assert.Contains(t, body, "Header")
	assert.Less(t, strings.Index(body, "Footer"), strings.Index(body, "Header"), "menus are listed by title")
}

func TestMenusCreate(t *testing.T) {
	env := newTestEnv(t)
	h := NewMenusHandler(env.menus, env.renderer)

	req := env.request(t, http.MethodPost, "/menus/create/", url.Values{"title": {"Main Menu"}}, nil)
	rec := httptest.NewRecorder()
	h.Create(rec, req)

	require.Equal(t, http.StatusSeeOther, rec.Code)
	menu, err := env.menus.GetMenuBySlug(context.Background(), "main-menu")
	require.NoError(t, err)
	require.NotNil(t, menu)
	assert.Equal(t, menuEditURL(menu.ID), rec.Header().Get("Location"))
	assert.Equal(t, `Menu "Main Menu" created successfully!`, env.flash(req))
}

func TestMenusCreateDuplicateRerendersForm(t *testing.T) {
	env := newTestEnv(t)
	h := NewMenusHandler(env.menus, env.renderer)
	env.createMenu(t, "Main Menu")

	req := env.request(t, http.MethodPost, "/menus/create/", url.Values{"title": {"Main Menu"}, "slug": {"other"}}, nil)
	rec := httptest.NewRecorder()
	h.Create(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Menu with this Title already exists.")
	assert.Contains(t, rec.Body.String(), msgCorrectErrors)

	menus, err := env.menus.ListMenus(context.Background())
	require.NoError(t, err)
	assert.Len(t, menus, 1)
}

func TestMenusCreateRequiresTitle(t *testing.T) {
	env := newTestEnv(t)
	h := NewMenusHandler(env.menus, env.renderer)

	rec := httptest.NewRecorder()
	h.Create(rec, env.request(t, http.MethodPost, "/menus/create/", url.Values{"title": {"  "}}, nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "This field is required.")
}

func TestMenusEditForm(t *testing.T) {
	env := newTestEnv(t)
	h := NewMenusHandler(env.menus, env.renderer)
	menu := env.createMenu(t, "Main Menu")
	parent := env.addItem(t, menu.ID, "About", 0)
	env.addItem(t, menu.ID, "Team", parent.ID)

	rec := httptest.NewRecorder()
	h.EditForm(rec, env.request(t, http.MethodGet, "/", nil, menuParams(menu.ID)))

	assert.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, "Edit Menu: Main Menu")
	assert.Contains(t, body, "under About")
	assert.Contains(t, body, `data-reorder-url="/menus/`+strconv.FormatInt(menu.ID, 10)+`/reorder/"`)
}

func TestMenusNotFound(t *testing.T) {
	env := newTestEnv(t)
	h := NewMenusHandler(env.menus, env.renderer)

	tests := []struct {
		name string
		id   string
	}{
		{"unknown id", "999"},
		{"non-numeric id", "abc"},
		{"negative id", "-1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			h.EditForm(rec, env.request(t, http.MethodGet, "/", nil, map[string]string{paramID: tt.id}))
			assert.Equal(t, http.StatusNotFound, rec.Code)
			assert.Contains(t, rec.Body.String(), "Page not found")
		})
	}
}

func TestMenusUpdate(t *testing.T) {
	env := newTestEnv(t)
	h := NewMenusHandler(env.menus, env.renderer)
	menu := env.createMenu(t, "Main Menu")

	form := url.Values{"menu_form": {"1"}, "title": {"Primary"}, "slug": {"primary"}}
	req := env.request(t, http.MethodPost, "/", form, menuParams(menu.ID))
	rec := httptest.NewRecorder()
	h.Update(rec, req)

	require.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, `Menu "Primary" updated successfully!`, env.flash(req))

	updated, err := env.menus.GetMenu(context.Background(), menu.ID)
	require.NoError(t, err)
	assert.Equal(t, "primary", updated.Slug)
}

func TestMenusUpdateWithoutMenuFormIgnoresFields(t *testing.T) {
	env := newTestEnv(t)
	h := NewMenusHandler(env.menus, env.renderer)
	menu := env.createMenu(t, "Main Menu")

	rec := httptest.NewRecorder()
	h.Update(rec, env.request(t, http.MethodPost, "/", url.Values{"title": {"Changed"}}, menuParams(menu.ID)))

	assert.Equal(t, http.StatusSeeOther, rec.Code)
	unchanged, err := env.menus.GetMenu(context.Background(), menu.ID)
	require.NoError(t, err)
	assert.Equal(t, "Main Menu", unchanged.Title)
}

func TestMenusUpdateDuplicateSlug(t *testing.T) {
	env := newTestEnv(t)
	h := NewMenusHandler(env.menus, env.renderer)
	env.createMenu(t, "Footer")
	menu := env.createMenu(t, "Header")

	form := url.Values{"menu_form": {"1"}, "title": {"Header"}, "slug": {"footer"}}
	rec := httptest.NewRecorder()
	h.Update(rec, env.request(t, http.MethodPost, "/", form, menuParams(menu.ID)))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Menu with this Slug already exists.")
}

func TestMenusPreview(t *testing.T) {
	env := newTestEnv(t)
	h := NewMenusHandler(env.menus, env.renderer)
	menu := env.createMenu(t, "Main Menu")
	parent := env.addItem(t, menu.ID, "About", 0)
	env.addItem(t, menu.ID, "Team", parent.ID)

	rec := httptest.NewRecorder()
	h.Preview(rec, env.request(t, http.MethodGet, "/", nil, menuParams(menu.ID)))

	assert.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, `class="menu menu-main-menu"`)
	assert.Contains(t, body, "https://example.com/Team")
	assert.Contains(t, body, `renderMenu "main-menu"`)
}

func TestMenusDelete(t *testing.T) {
	env := newTestEnv(t)
	h := NewMenusHandler(env.menus, env.renderer)
	menu := env.createMenu(t, "Main Menu")
	env.addItem(t, menu.ID, "Home", 0)

	rec := httptest.NewRecorder()
	h.DeleteConfirm(rec, env.request(t, http.MethodGet, "/", nil, menuParams(menu.ID)))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Its 1 item(s) will be deleted as well.")

	req := env.request(t, http.MethodPost, "/", url.Values{}, menuParams(menu.ID))
	rec = httptest.NewRecorder()
	h.Delete(rec, req)

	assert.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, redirectMenus, rec.Header().Get("Location"))
	assert.Equal(t, `Menu "Main Menu" deleted successfully!`, env.flash(req))

	_, err := env.menus.GetMenu(context.Background(), menu.ID)
	assert.ErrorIs(t, err, service.ErrNotFound)
}
