// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/olegiv/ocms-menus/internal/testutil"
	"github.com/olegiv/ocms-menus/internal/version"
)

func TestHealthAnonymous(t *testing.T) {
	db := testutil.TestDB(t)
	h := NewHealthHandler(db, version.Info{Version: "v1.0.0"})

	rec := httptest.NewRecorder()
	h.Health(rec, httptest.NewRequest(http.MethodGet, "/health", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, map[string]any{"status": statusHealthy}, body)
}

func TestHealthAuthenticated(t *testing.T) {
	env := newTestEnv(t)
	h := NewHealthHandler(env.db, version.Info{Version: "v1.0.0", GitCommit: "abc1234"})

	rec := httptest.NewRecorder()
	h.Health(rec, env.request(t, http.MethodGet, "/health?verbose=true", nil, nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	var status HealthStatus
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &status))
	assert.Equal(t, statusHealthy, status.Status)
	assert.Equal(t, "v1.0.0 (abc1234)", status.Version)
	assert.Equal(t, statusHealthy, status.Checks["database"].Status)
	require.NotNil(t, status.System)
	assert.NotEmpty(t, status.System.GoVersion)
}

func TestHealthDatabaseDown(t *testing.T) {
	db := testutil.TestDB(t)
	h := NewHealthHandler(db, version.Info{})
	require.NoError(t, db.Close())

	rec := httptest.NewRecorder()
	h.Health(rec, httptest.NewRequest(http.MethodGet, "/health", nil))

	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	assert.Contains(t, rec.Body.String(), statusDegraded)
}

func TestFormatBytes(t *testing.T) {
	assert.Equal(t, "512 B", formatBytes(512))
	assert.Equal(t, "1.0 KB", formatBytes(1024))
	assert.Equal(t, "1.5 MB", formatBytes(1536*1024))
}
