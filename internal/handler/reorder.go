// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package handler

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"github.com/olegiv/ocms-menus/internal/service"
)

var errTrailingJSON = errors.New("unexpected data after JSON body")

// FlexibleID is a menu item id that decodes from a JSON number or a numeric string.
type FlexibleID int64

// UnmarshalJSON implements json.Unmarshaler.
func (id *FlexibleID) UnmarshalJSON(data []byte) error {
	s := strings.TrimSpace(string(data))
	if unquoted, err := strconv.Unquote(s); err == nil {
		s = strings.TrimSpace(unquoted)
	}

	n, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return fmt.Errorf("invalid item id %s", string(data))
	}
	*id = FlexibleID(n)
	return nil
}

// ReorderRequest is the JSON body of the reorder endpoint.
type ReorderRequest struct {
	ItemIDs []FlexibleID `json:"item_ids"`
}

// IDs returns the submitted ids in order.
func (req ReorderRequest) IDs() []int64 {
	ids := make([]int64, len(req.ItemIDs))
	for i, id := range req.ItemIDs {
		ids[i] = int64(id)
	}
	return ids
}

// Reorder handles POST /menus/{id}/reorder/ - assigns sort_order by list position.
// Ids that are not items of the menu are skipped.
func (h *MenusHandler) Reorder(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeJSONError(w, http.StatusMethodNotAllowed, msgInvalidMethod)
		return
	}

	menuID, ok := parseIDParam(r, paramID)
	if !ok {
		writeJSONError(w, http.StatusNotFound, "Menu not found")
		return
	}

	var req ReorderRequest
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxReorderBodyBytes))
	if err := dec.Decode(&req); err != nil {
		writeJSONError(w, http.StatusBadRequest, err.Error())
		return
	}
	// The body must hold exactly one JSON value.
	if err := dec.Decode(&json.RawMessage{}); !errors.Is(err, io.EOF) {
		if err == nil {
			err = errTrailingJSON
		}
		writeJSONError(w, http.StatusBadRequest, err.Error())
		return
	}

	result, err := h.menus.Reorder(r.Context(), menuID, req.IDs())
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			writeJSONError(w, http.StatusNotFound, "Menu not found")
			return
		}
		slog.Error("failed to reorder menu items", "error", err, "menu_id", menuID)
		writeJSONError(w, http.StatusInternalServerError, msgInternalError)
		return
	}

	slog.Info("menu items reordered", "category", "menu",
		"menu_id", menuID, "updated", result.Updated, "skipped", result.Skipped, actor(r))
	writeJSONSuccess(w, nil)
}
