// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package handler

import (
	"net/http"

	"github.com/olegiv/ocms-menus/internal/render"
	"github.com/olegiv/ocms-menus/internal/service"
)

// DashboardHandler renders the statistics dashboard.
type DashboardHandler struct {
	pageRenderer
	menus *service.MenuService
}

// NewDashboardHandler creates a new DashboardHandler.
func NewDashboardHandler(menus *service.MenuService, renderer *render.Renderer) *DashboardHandler {
	return &DashboardHandler{
		pageRenderer: pageRenderer{renderer: renderer},
		menus:        menus,
	}
}

// Dashboard handles GET /dashboard/.
func (h *DashboardHandler) Dashboard(w http.ResponseWriter, r *http.Request) {
	stats, err := h.menus.Stats(r.Context())
	if err != nil {
		h.serverError(w, r, "failed to load dashboard stats", err)
		return
	}

	h.render(w, r, http.StatusOK, "admin/dashboard", render.TemplateData{
		Title: "Dashboard",
		Data:  stats,
		Breadcrumbs: []render.Breadcrumb{
			{Label: "Dashboard", URL: RouteDashboard, Active: true},
		},
	})
}
