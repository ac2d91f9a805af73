package handler

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDashboard(t *testing.T) {
	env := newTestEnv(t)
	h := NewDashboardHandler(env.menus, env.renderer)

	rec := httptest.NewRecorder()
	h.Dashboard(rec, env.request(t, http.MethodGet, "/dashboard/", nil, nil))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "No menus yet.")

	menu := env.createMenu(t, "Footer Links")

	rec = httptest.NewRecorder()
	h.Dashboard(rec, env.request(t, http.MethodGet, "/dashboard/", nil, nil))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Footer Links")
	assert.Contains(t, rec.Body.String(), menuEditURL(menu.ID))
}
