// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package service

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/olegiv/ocms-menus/internal/store"
)

// MenuItemNode is a menu item with its resolved link and nested children.
type MenuItemNode struct {
	ID           int64
	MenuID       int64
	ParentID     sql.NullInt64
	Title        string
	LinkURL      string
	PageID       sql.NullInt64
	PageTitle    string
	PageURL      string
	OpenInNewTab bool
	CSSClass     string
	SortOrder    int64
	Children     []*MenuItemNode
}

// URL resolves the link target: the linked page, else the link URL, else "#".
func (n *MenuItemNode) URL() string {
	if n.PageID.Valid && n.PageURL != "" {
		return n.PageURL
	}
	if n.LinkURL != "" {
		return n.LinkURL
	}
	return "#"
}

// Target returns the anchor target attribute value.
func (n *MenuItemNode) Target() string {
	if n.OpenInNewTab {
		return "_blank"
	}
	return "_self"
}

// HasChildren reports whether the node has nested items.
func (n *MenuItemNode) HasChildren() bool {
	return len(n.Children) > 0
}

// MenuView is the value handed to templates rendering a menu by slug.
// Menu is nil and Items empty when the slug does not resolve.
type MenuView struct {
	Menu     *store.Menu
	Items    []*MenuItemNode
	CSSClass string
}

// Found reports whether the slug resolved to a menu.
func (v MenuView) Found() bool {
	return v.Menu != nil
}

// Tree returns the items of a menu as nested nodes in sort order.
func (s *MenuService) Tree(ctx context.Context, menuID int64) ([]*MenuItemNode, error) {
	rows, err := s.queries.ListMenuItemsWithPage(ctx, menuID)
	if err != nil {
		return nil, fmt.Errorf("listing menu items: %w", err)
	}
	return buildTree(rows), nil
}

// buildTree nests rows under their parents. Rows arrive in sort order, so
// appending keeps siblings ordered. Rows whose parent is not in the set are
// dropped along with their subtree.
func buildTree(rows []store.ListMenuItemsWithPageRow) []*MenuItemNode {
	nodes := make(map[int64]*MenuItemNode, len(rows))
	for _, row := range rows {
		nodes[row.ID] = &MenuItemNode{
			ID:           row.ID,
			MenuID:       row.MenuID,
			ParentID:     row.ParentID,
			Title:        row.Title,
			LinkURL:      row.LinkUrl,
			PageID:       row.LinkPageID,
			PageTitle:    row.PageTitle.String,
			PageURL:      row.PageUrlPath.String,
			OpenInNewTab: row.OpenInNewTab,
			CSSClass:     row.CssClass,
			SortOrder:    row.SortOrder,
		}
	}

	var roots []*MenuItemNode
	for _, row := range rows {
		node := nodes[row.ID]
		if !row.ParentID.Valid {
			roots = append(roots, node)
			continue
		}
		if parent, ok := nodes[row.ParentID.Int64]; ok && parent.MenuID == node.MenuID {
			parent.Children = append(parent.Children, node)
		}
	}
	return roots
}

// RenderMenu resolves slug to a menu and its item tree. An unknown slug
// yields an empty view rather than an error.
func (s *MenuService) RenderMenu(ctx context.Context, slug, cssClass string) (MenuView, error) {
	view := MenuView{CSSClass: cssClass}

	menu, err := s.GetMenuBySlug(ctx, slug)
	if err != nil || menu == nil {
		return view, err
	}

	items, err := s.Tree(ctx, menu.ID)
	if err != nil {
		return view, err
	}
	view.Menu = menu
	view.Items = items
	return view, nil
}
