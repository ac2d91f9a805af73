// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package handler

import (
	"database/sql"
	"encoding/json"
	"net/http"
	"slices"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/olegiv/ocms-menus/internal/logging"
	"github.com/olegiv/ocms-menus/internal/render"
	"github.com/olegiv/ocms-menus/internal/store"
)

// EventsPerPage is the number of events to display per page.
const EventsPerPage = 25

// detailsLengthThreshold is the max chars before details are collapsible
const detailsLengthThreshold = 80

var (
	eventLevels     = []string{logging.EventLevelInfo, logging.EventLevelWarning, logging.EventLevelError}
	eventCategories = []string{
		logging.EventCategoryAuth,
		logging.EventCategoryMenu,
		logging.EventCategoryItem,
		logging.EventCategoryConfig,
		logging.EventCategorySystem,
	}
)

// EventsHandler serves the persisted event log.
type EventsHandler struct {
	pageRenderer
	queries *store.Queries
}

// NewEventsHandler creates a new EventsHandler.
func NewEventsHandler(db *sql.DB, renderer *render.Renderer) *EventsHandler {
	return &EventsHandler{
		pageRenderer: pageRenderer{renderer: renderer},
		queries:      store.New(db),
	}
}

// EventRow is an event prepared for display.
type EventRow struct {
	ID          int64
	Level       string
	Category    string
	Message     string
	Details     string
	DetailsLong bool
	CreatedAt   time.Time
}

// EventsListData holds data for the events list template.
type EventsListData struct {
	Events     []EventRow
	Level      string
	Category   string
	Levels     []string
	Categories []string
	Pagination Pagination
}

// formatMetadata converts JSON metadata to readable text.
// Example: {"path":"/menus/","error":"not found"} -> "error: not found, path: /menus/"
func formatMetadata(metadata string) string {
	if metadata == "" || metadata == "{}" {
		return ""
	}

	var data map[string]any
	if err := json.Unmarshal([]byte(metadata), &data); err != nil {
		return metadata
	}

	keys := make([]string, 0, len(data))
	for key := range data {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	parts := make([]string, 0, len(keys))
	for _, key := range keys {
		var value string
		switch v := data[key].(type) {
		case string:
			value = v
		case float64:
			value = strconv.FormatFloat(v, 'f', -1, 64)
		case bool:
			value = strconv.FormatBool(v)
		case nil:
			value = "null"
		default:
			if b, err := json.Marshal(v); err == nil {
				value = string(b)
			}
		}
		parts = append(parts, key+": "+value)
	}

	return strings.Join(parts, ", ")
}

// List handles GET /events/ - a paginated, filterable list of events.
func (h *EventsHandler) List(w http.ResponseWriter, r *http.Request) {
	level := r.URL.Query().Get("level")
	if !slices.Contains(eventLevels, level) {
		level = ""
	}
	category := r.URL.Query().Get("category")
	if !slices.Contains(eventCategories, category) {
		category = ""
	}

	total, err := h.queries.CountEvents(r.Context(), store.CountEventsParams{Level: level, Category: category})
	if err != nil {
		h.serverError(w, r, "failed to count events", err)
		return
	}

	pagination := buildPagination(parsePageParam(r), total, EventsPerPage, RouteEvents, r.URL.Query())

	events, err := h.queries.ListEventsPage(r.Context(), store.ListEventsPageParams{
		Level:    level,
		Category: category,
		Limit:    EventsPerPage,
		Offset:   pagination.Offset(),
	})
	if err != nil {
		h.serverError(w, r, "failed to list events", err)
		return
	}

	rows := make([]EventRow, len(events))
	for i, e := range events {
		details := formatMetadata(e.Metadata)
		rows[i] = EventRow{
			ID:          e.ID,
			Level:       e.Level,
			Category:    e.Category,
			Message:     e.Message,
			Details:     details,
			DetailsLong: len(details) > detailsLengthThreshold,
			CreatedAt:   e.CreatedAt,
		}
	}

	h.render(w, r, http.StatusOK, "admin/events", render.TemplateData{
		Title: "Event log",
		Data: EventsListData{
			Events:     rows,
			Level:      level,
			Category:   category,
			Levels:     eventLevels,
			Categories: eventCategories,
			Pagination: pagination,
		},
		Breadcrumbs: []render.Breadcrumb{
			{Label: "Dashboard", URL: RouteDashboard},
			{Label: "Event log", URL: RouteEvents, Active: true},
		},
	})
}
