// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package handler

import (
	"fmt"
	"log/slog"
	"net/http"

	"github.com/olegiv/ocms-menus/internal/render"
	"github.com/olegiv/ocms-menus/internal/service"
	"github.com/olegiv/ocms-menus/internal/store"
)

// MenusHandler handles menu management routes.
type MenusHandler struct {
	pageRenderer
	menus *service.MenuService
}

// NewMenusHandler creates a new MenusHandler.
func NewMenusHandler(menus *service.MenuService, renderer *render.Renderer) *MenusHandler {
	return &MenusHandler{
		pageRenderer: pageRenderer{renderer: renderer},
		menus:        menus,
	}
}

// MenuListData holds data for the menu list template.
type MenuListData struct {
	Menus []store.Menu
}

// MenuFormData holds data for the menu create/edit template.
type MenuFormData struct {
	Heading string
	Action  string
	Form    service.MenuInput
	Menu    *store.Menu
	Items   []ItemRow
}

// ItemRow is a menu item as listed on the menu edit page.
type ItemRow struct {
	Item        store.MenuItem
	ParentTitle string
	Link        string
}

// MenuPreviewData holds data for the menu preview template.
type MenuPreviewData struct {
	View service.MenuView
}

// MenuDeleteData holds data for the menu delete confirmation.
type MenuDeleteData struct {
	Menu      store.Menu
	ItemCount int
}

// menuInputFromForm reads the menu form fields.
func menuInputFromForm(r *http.Request) service.MenuInput {
	return service.MenuInput{
		Title: r.PostFormValue("title"),
		Slug:  r.PostFormValue("slug"),
	}
}

func menusBreadcrumbs(extra ...render.Breadcrumb) []render.Breadcrumb {
	crumbs := []render.Breadcrumb{{Label: "Menus", URL: RouteMenus}}
	crumbs = append(crumbs, extra...)
	crumbs[len(crumbs)-1].Active = true
	return crumbs
}

// List handles GET / and GET /menus/ - displays all menus ordered by title.
func (h *MenusHandler) List(w http.ResponseWriter, r *http.Request) {
	menus, err := h.menus.ListMenus(r.Context())
	if err != nil {
		h.serverError(w, r, "failed to list menus", err)
		return
	}

	h.render(w, r, http.StatusOK, "public/menu_list", render.TemplateData{
		Title: "Menus",
		Data:  MenuListData{Menus: menus},
	})
}

// NewForm handles GET /menus/create/ - displays the menu creation form.
func (h *MenusHandler) NewForm(w http.ResponseWriter, r *http.Request) {
	h.renderMenuForm(w, r, http.StatusOK, MenuFormData{
		Heading: "Create New Menu",
		Action:  "Create",
	}, nil)
}

// Create handles POST /menus/create/ - creates a new menu.
func (h *MenusHandler) Create(w http.ResponseWriter, r *http.Request) {
	in := menuInputFromForm(r)

	menu, err := h.menus.CreateMenu(r.Context(), in)
	if err != nil {
		if ve, ok := service.AsValidationError(err); ok {
			h.renderMenuForm(w, r, http.StatusOK, MenuFormData{
				Heading: "Create New Menu",
				Action:  "Create",
				Form:    in,
			}, ve.Fields)
			return
		}
		h.serverError(w, r, "failed to create menu", err)
		return
	}

	slog.Info("menu created", "category", "menu", "menu_id", menu.ID, "slug", menu.Slug, actor(r))
	flashSuccess(w, r, h.renderer, menuEditURL(menu.ID), fmt.Sprintf("Menu \"%s\" created successfully!", menu.Title))
}

// EditForm handles GET /menus/{id}/edit/ - displays the menu form with its items.
func (h *MenusHandler) EditForm(w http.ResponseWriter, r *http.Request) {
	menu, ok := h.requireMenu(w, r)
	if !ok {
		return
	}

	h.renderEditPage(w, r, menu, service.MenuInput{Title: menu.Title, Slug: menu.Slug}, nil)
}

// Update handles POST /menus/{id}/edit/ - updates the menu title and slug.
func (h *MenusHandler) Update(w http.ResponseWriter, r *http.Request) {
	menu, ok := h.requireMenu(w, r)
	if !ok {
		return
	}

	// Only the menu form posts to this route; anything else just reloads the page.
	if r.PostFormValue("menu_form") == "" {
		http.Redirect(w, r, menuEditURL(menu.ID), http.StatusSeeOther)
		return
	}

	in := menuInputFromForm(r)
	updated, err := h.menus.UpdateMenu(r.Context(), menu.ID, in)
	if err != nil {
		if ve, ok := service.AsValidationError(err); ok {
			h.renderEditPage(w, r, menu, in, ve.Fields)
			return
		}
		h.serviceError(w, r, "failed to update menu", err, "menu_id", menu.ID)
		return
	}

	slog.Info("menu updated", "category", "menu", "menu_id", updated.ID, "slug", updated.Slug, actor(r))
	flashSuccess(w, r, h.renderer, menuEditURL(updated.ID), fmt.Sprintf("Menu \"%s\" updated successfully!", updated.Title))
}

// Preview handles GET /menus/{id}/preview/ - shows the rendered menu tree.
func (h *MenusHandler) Preview(w http.ResponseWriter, r *http.Request) {
	menu, ok := h.requireMenu(w, r)
	if !ok {
		return
	}

	tree, err := h.menus.Tree(r.Context(), menu.ID)
	if err != nil {
		h.serverError(w, r, "failed to build menu tree", err, "menu_id", menu.ID)
		return
	}

	h.render(w, r, http.StatusOK, "admin/menu_preview", render.TemplateData{
		Title: "Preview: " + menu.Title,
		Data:  MenuPreviewData{View: service.MenuView{Menu: &menu, Items: tree}},
		Breadcrumbs: menusBreadcrumbs(
			render.Breadcrumb{Label: menu.Title, URL: menuEditURL(menu.ID)},
			render.Breadcrumb{Label: "Preview"},
		),
	})
}

// DeleteConfirm handles GET /menus/{id}/delete/ - asks for confirmation.
func (h *MenusHandler) DeleteConfirm(w http.ResponseWriter, r *http.Request) {
	menu, ok := h.requireMenu(w, r)
	if !ok {
		return
	}

	items, err := h.menus.ListItems(r.Context(), menu.ID)
	if err != nil {
		h.serverError(w, r, "failed to list menu items", err, "menu_id", menu.ID)
		return
	}

	h.render(w, r, http.StatusOK, "admin/menu_delete", render.TemplateData{
		Title: "Delete " + menu.Title,
		Data:  MenuDeleteData{Menu: menu, ItemCount: len(items)},
		Breadcrumbs: menusBreadcrumbs(
			render.Breadcrumb{Label: menu.Title, URL: menuEditURL(menu.ID)},
			render.Breadcrumb{Label: "Delete"},
		),
	})
}

// Delete handles POST /menus/{id}/delete/ - deletes the menu and all of its items.
func (h *MenusHandler) Delete(w http.ResponseWriter, r *http.Request) {
	menu, ok := h.requireMenu(w, r)
	if !ok {
		return
	}

	if err := h.menus.DeleteMenu(r.Context(), menu.ID); err != nil {
		h.serviceError(w, r, "failed to delete menu", err, "menu_id", menu.ID)
		return
	}

	slog.Info("menu deleted", "category", "menu", "menu_id", menu.ID, "slug", menu.Slug, actor(r))
	flashSuccess(w, r, h.renderer, redirectMenus, fmt.Sprintf("Menu \"%s\" deleted successfully!", menu.Title))
}

// requireMenu loads the menu named by the id URL parameter or renders a 404.
func (h *MenusHandler) requireMenu(w http.ResponseWriter, r *http.Request) (store.Menu, bool) {
	id, ok := parseIDParam(r, paramID)
	if !ok {
		h.notFound(w, r)
		return store.Menu{}, false
	}

	menu, err := h.menus.GetMenu(r.Context(), id)
	if err != nil {
		h.serviceError(w, r, "failed to get menu", err, "menu_id", id)
		return store.Menu{}, false
	}
	return menu, true
}

func (h *MenusHandler) renderMenuForm(w http.ResponseWriter, r *http.Request, status int, data MenuFormData, errs map[string]string) {
	td := render.TemplateData{
		Title:  data.Heading,
		Data:   data,
		Errors: errs,
	}
	if len(errs) > 0 {
		td.Flash = msgCorrectErrors
		td.FlashType = flashTypeError
	}
	if data.Menu == nil {
		td.Breadcrumbs = menusBreadcrumbs(render.Breadcrumb{Label: "Create"})
	} else {
		td.Breadcrumbs = menusBreadcrumbs(render.Breadcrumb{Label: data.Menu.Title})
	}

	h.render(w, r, status, "admin/menu_form", td)
}

// renderEditPage renders the edit form together with the menu's items.
func (h *MenusHandler) renderEditPage(w http.ResponseWriter, r *http.Request, menu store.Menu, form service.MenuInput, errs map[string]string) {
	rows, err := h.itemRows(r, menu.ID)
	if err != nil {
		h.serverError(w, r, "failed to list menu items", err, "menu_id", menu.ID)
		return
	}

	h.renderMenuForm(w, r, http.StatusOK, MenuFormData{
		Heading: "Edit Menu: " + menu.Title,
		Action:  "Update",
		Form:    form,
		Menu:    &menu,
		Items:   rows,
	}, errs)
}

// itemRows lists a menu's items in sort order with their parent title and link.
func (h *MenusHandler) itemRows(r *http.Request, menuID int64) ([]ItemRow, error) {
	items, err := h.menus.ListItems(r.Context(), menuID)
	if err != nil {
		return nil, err
	}
	pages, err := h.menus.PageChoices(r.Context())
	if err != nil {
		return nil, err
	}

	titles := make(map[int64]string, len(items))
	for _, item := range items {
		titles[item.ID] = item.Title
	}
	pageURLs := make(map[int64]string, len(pages))
	for _, page := range pages {
		pageURLs[page.ID] = page.UrlPath
	}

	rows := make([]ItemRow, 0, len(items))
	for _, item := range items {
		row := ItemRow{Item: item, Link: item.LinkUrl}
		if item.ParentID.Valid {
			row.ParentTitle = titles[item.ParentID.Int64]
		}
		if item.LinkPageID.Valid {
			if u, ok := pageURLs[item.LinkPageID.Int64]; ok && u != "" {
				row.Link = u
			}
		}
		if row.Link == "" {
			row.Link = "#"
		}
		rows = append(rows, row)
	}
	return rows, nil
}
