// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package handler

import (
	"database/sql"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/olegiv/ocms-menus/internal/render"
	"github.com/olegiv/ocms-menus/internal/service"
	"github.com/olegiv/ocms-menus/internal/store"
	"github.com/olegiv/ocms-menus/internal/util"
)

// ItemFormData holds data for the menu item add/edit template.
type ItemFormData struct {
	Heading string
	Action  string
	Menu    store.Menu
	Item    *store.MenuItem
	Form    service.ItemInput
	Parents []store.MenuItem
	Pages   []store.Page
}

// ItemDeleteData holds data for the menu item delete confirmation.
type ItemDeleteData struct {
	Menu store.Menu
	Item store.MenuItem
}

const msgInvalidChoice = "Select a valid choice."

// itemInputFromForm reads the menu item form fields.
// open_in_new_tab is a checkbox and is absent when unchecked.
// A select value that is neither empty nor a positive id is returned as a
// field error; it is never read as "none".
func itemInputFromForm(r *http.Request) (service.ItemInput, map[string]string) {
	in := service.ItemInput{
		Title:        r.PostFormValue("title"),
		LinkURL:      r.PostFormValue("link_url"),
		OpenInNewTab: r.PostFormValue("open_in_new_tab") != "",
		CSSClass:     r.PostFormValue("css_class"),
	}

	var errs map[string]string
	for _, field := range []struct {
		name string
		dst  *sql.NullInt64
	}{
		{"link_page_id", &in.LinkPageID},
		{"parent_id", &in.ParentID},
	} {
		v, ok := util.ParseNullInt64Choice(r.PostFormValue(field.name))
		if !ok {
			if errs == nil {
				errs = make(map[string]string)
			}
			errs[field.name] = msgInvalidChoice
			continue
		}
		*field.dst = v
	}
	return in, errs
}

// itemInputFromItem fills the form with a stored item.
func itemInputFromItem(item store.MenuItem) service.ItemInput {
	return service.ItemInput{
		Title:        item.Title,
		LinkURL:      item.LinkUrl,
		LinkPageID:   item.LinkPageID,
		ParentID:     item.ParentID,
		OpenInNewTab: item.OpenInNewTab,
		CSSClass:     item.CssClass,
	}
}

// AddItemForm handles GET /menus/{id}/items/add/ - displays the new item form.
func (h *MenusHandler) AddItemForm(w http.ResponseWriter, r *http.Request) {
	menu, ok := h.requireMenu(w, r)
	if !ok {
		return
	}

	h.renderItemForm(w, r, menu, nil, service.ItemInput{}, nil)
}

// AddItem handles POST /menus/{id}/items/add/ - appends an item to the menu.
func (h *MenusHandler) AddItem(w http.ResponseWriter, r *http.Request) {
	menu, ok := h.requireMenu(w, r)
	if !ok {
		return
	}

	in, formErrs := itemInputFromForm(r)
	if formErrs != nil {
		h.renderItemForm(w, r, menu, nil, in, formErrs)
		return
	}
	item, err := h.menus.AddItem(r.Context(), menu.ID, in)
	if err != nil {
		if ve, ok := service.AsValidationError(err); ok {
			h.renderItemForm(w, r, menu, nil, in, ve.Fields)
			return
		}
		h.serviceError(w, r, "failed to add menu item", err, "menu_id", menu.ID)
		return
	}

	slog.Info("menu item added", "category", "menu_item", "menu_id", menu.ID, "item_id", item.ID, actor(r))
	flashSuccess(w, r, h.renderer, menuEditURL(menu.ID), fmt.Sprintf("Menu item \"%s\" added successfully!", item.Title))
}

// EditItemForm handles GET /menus/{id}/items/{item_id}/edit/ - displays the item form.
func (h *MenusHandler) EditItemForm(w http.ResponseWriter, r *http.Request) {
	menu, item, ok := h.requireItem(w, r)
	if !ok {
		return
	}

	h.renderItemForm(w, r, menu, &item, itemInputFromItem(item), nil)
}

// EditItem handles POST /menus/{id}/items/{item_id}/edit/ - updates the item.
func (h *MenusHandler) EditItem(w http.ResponseWriter, r *http.Request) {
	menu, item, ok := h.requireItem(w, r)
	if !ok {
		return
	}

	in, formErrs := itemInputFromForm(r)
	if formErrs != nil {
		h.renderItemForm(w, r, menu, &item, in, formErrs)
		return
	}
	updated, err := h.menus.EditItem(r.Context(), menu.ID, item.ID, in)
	if err != nil {
		if ve, ok := service.AsValidationError(err); ok {
			h.renderItemForm(w, r, menu, &item, in, ve.Fields)
			return
		}
		h.serviceError(w, r, "failed to update menu item", err, "menu_id", menu.ID, "item_id", item.ID)
		return
	}

	slog.Info("menu item updated", "category", "menu_item", "menu_id", menu.ID, "item_id", updated.ID, actor(r))
	flashSuccess(w, r, h.renderer, menuEditURL(menu.ID), fmt.Sprintf("Menu item \"%s\" updated successfully!", updated.Title))
}

// DeleteItemConfirm handles GET /menus/{id}/items/{item_id}/delete/ - asks for confirmation.
func (h *MenusHandler) DeleteItemConfirm(w http.ResponseWriter, r *http.Request) {
	menu, item, ok := h.requireItem(w, r)
	if !ok {
		return
	}

	h.render(w, r, http.StatusOK, "admin/menu_item_delete", render.TemplateData{
		Title: "Delete " + item.Title,
		Data:  ItemDeleteData{Menu: menu, Item: item},
		Breadcrumbs: menusBreadcrumbs(
			render.Breadcrumb{Label: menu.Title, URL: menuEditURL(menu.ID)},
			render.Breadcrumb{Label: "Delete " + item.Title},
		),
	})
}

// DeleteItem handles POST /menus/{id}/items/{item_id}/delete/ - deletes the item and its subtree.
func (h *MenusHandler) DeleteItem(w http.ResponseWriter, r *http.Request) {
	menu, item, ok := h.requireItem(w, r)
	if !ok {
		return
	}

	if err := h.menus.DeleteItem(r.Context(), menu.ID, item.ID); err != nil {
		h.serviceError(w, r, "failed to delete menu item", err, "menu_id", menu.ID, "item_id", item.ID)
		return
	}

	slog.Info("menu item deleted", "category", "menu_item", "menu_id", menu.ID, "item_id", item.ID, actor(r))
	flashSuccess(w, r, h.renderer, menuEditURL(menu.ID), fmt.Sprintf("Menu item \"%s\" deleted successfully!", item.Title))
}

// requireItem loads the menu and the item named by the URL parameters.
// An item of another menu is reported as not found.
func (h *MenusHandler) requireItem(w http.ResponseWriter, r *http.Request) (store.Menu, store.MenuItem, bool) {
	menu, ok := h.requireMenu(w, r)
	if !ok {
		return store.Menu{}, store.MenuItem{}, false
	}

	itemID, ok := parseIDParam(r, paramItemID)
	if !ok {
		h.notFound(w, r)
		return store.Menu{}, store.MenuItem{}, false
	}

	item, err := h.menus.GetItem(r.Context(), menu.ID, itemID)
	if err != nil {
		h.serviceError(w, r, "failed to get menu item", err, "menu_id", menu.ID, "item_id", itemID)
		return store.Menu{}, store.MenuItem{}, false
	}
	return menu, item, true
}

// renderItemForm renders the add form when item is nil and the edit form otherwise.
func (h *MenusHandler) renderItemForm(w http.ResponseWriter, r *http.Request, menu store.Menu, item *store.MenuItem, form service.ItemInput, errs map[string]string) {
	var excludeID int64
	data := ItemFormData{
		Heading: fmt.Sprintf("Add Menu Item to \"%s\"", menu.Title),
		Action:  "Add",
		Menu:    menu,
		Item:    item,
		Form:    form,
	}
	if item != nil {
		excludeID = item.ID
		data.Heading = "Edit Menu Item: " + item.Title
		data.Action = "Update"
	}

	var err error
	if data.Parents, err = h.menus.ParentChoices(r.Context(), menu.ID, excludeID); err != nil {
		h.serverError(w, r, "failed to list parent choices", err, "menu_id", menu.ID)
		return
	}
	if data.Pages, err = h.menus.PageChoices(r.Context()); err != nil {
		h.serverError(w, r, "failed to list pages", err)
		return
	}

	td := render.TemplateData{
		Title:  data.Heading,
		Data:   data,
		Errors: errs,
		Breadcrumbs: menusBreadcrumbs(
			render.Breadcrumb{Label: menu.Title, URL: menuEditURL(menu.ID)},
			render.Breadcrumb{Label: data.Action + " item"},
		),
	}
	if len(errs) > 0 {
		td.Flash = msgCorrectErrors
		td.FlashType = flashTypeError
	}

	h.render(w, r, http.StatusOK, "admin/menu_item_form", td)
}
