// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package session

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/olegiv/ocms-menus/internal/testutil"
)

func TestNew(t *testing.T) {
	db := testutil.TestDB(t)

	sm := New(db, true)

	if sm == nil {
		t.Fatal("expected session manager to be non-nil")
	}
	if sm.Cookie.Name != CookieName {
		t.Errorf("Cookie.Name = %q, want %q", sm.Cookie.Name, CookieName)
	}
	if sm.Lifetime != Lifetime {
		t.Errorf("Lifetime = %v, want %v", sm.Lifetime, Lifetime)
	}
	if sm.IdleTimeout != IdleTimeout {
		t.Errorf("IdleTimeout = %v, want %v", sm.IdleTimeout, IdleTimeout)
	}
	if !sm.Cookie.HttpOnly {
		t.Error("expected HttpOnly to be true")
	}
	if sm.Cookie.SameSite != http.SameSiteLaxMode {
		t.Errorf("SameSite = %v, want %v", sm.Cookie.SameSite, http.SameSiteLaxMode)
	}
}

func TestNew_SecureCookie(t *testing.T) {
	db := testutil.TestDB(t)

	if New(db, true).Cookie.Secure {
		t.Error("expected Secure to be false in dev mode")
	}
	if !New(db, false).Cookie.Secure {
		t.Error("expected Secure to be true in production mode")
	}
}

func TestSessionPersistsAcrossRequests(t *testing.T) {
	db := testutil.TestDB(t)
	sm := New(db, true)

	mux := http.NewServeMux()
	mux.HandleFunc("/put", func(w http.ResponseWriter, r *http.Request) {
		sm.Put(r.Context(), "user_id", int64(7))
	})
	mux.HandleFunc("/get", func(w http.ResponseWriter, r *http.Request) {
		if got := sm.GetInt64(r.Context(), "user_id"); got != 7 {
			t.Errorf("user_id = %d, want 7", got)
		}
	})
	handler := sm.LoadAndSave(mux)

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/put", nil))

	cookies := rec.Result().Cookies()
	if len(cookies) == 0 {
		t.Fatal("expected a session cookie")
	}

	req := httptest.NewRequest(http.MethodGet, "/get", nil)
	req.AddCookie(cookies[0])
	handler.ServeHTTP(httptest.NewRecorder(), req)
}
