// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/olegiv/ocms-menus/internal/store"
	"github.com/olegiv/ocms-menus/internal/util"
)

// ItemInput holds the editable fields of a menu item.
// At least one of LinkURL and LinkPageID must be set.
type ItemInput struct {
	Title        string        `form:"title" validate:"required,max=255"`
	LinkURL      string        `form:"link_url" validate:"max=500"`
	LinkPageID   sql.NullInt64 `form:"link_page_id" validate:"-"`
	ParentID     sql.NullInt64 `form:"parent_id" validate:"-"`
	OpenInNewTab bool          `form:"open_in_new_tab"`
	CSSClass     string        `form:"css_class" validate:"max=255"`
}

// ReorderResult reports how many of the submitted ids were applied.
type ReorderResult struct {
	Updated int
	Skipped int
}

// Validation messages for menu items.
const (
	msgLinkRequired    = "Either 'Link URL' or 'Link Page' must be provided."
	msgUnsafeLink      = "Enter a valid URL."
	msgInvalidPage     = "Select a valid page."
	msgSelfParent      = "A menu item cannot be its own parent."
	msgInvalidParent   = "Select a valid parent item."
	msgForeignParent   = "The parent item must belong to the same menu."
	msgDescendantCycle = "A menu item cannot be nested under one of its own children."
	msgInvalidCSSClass = "Enter CSS class names without markup."
)

func normalizeItemInput(in ItemInput) ItemInput {
	in.Title = strings.TrimSpace(in.Title)
	in.LinkURL = strings.TrimSpace(in.LinkURL)
	in.CSSClass = cleanCSSClass(in.CSSClass)
	return in
}

// validateItem checks an item write. itemID is zero for a new item.
func validateItem(ctx context.Context, q *store.Queries, menuID, itemID int64, in ItemInput) error {
	ve := newValidationError()
	if err := collectFieldErrors(in, ve); err != nil {
		return err
	}

	if containsMarkup(in.CSSClass) {
		ve.Add("css_class", msgInvalidCSSClass)
	}

	if in.LinkURL == "" && !in.LinkPageID.Valid {
		ve.Add("link_url", msgLinkRequired)
	} else if in.LinkURL != "" && !isSafeLink(in.LinkURL) {
		ve.Add("link_url", msgUnsafeLink)
	}

	if in.LinkPageID.Valid {
		_, err := q.GetPageByID(ctx, in.LinkPageID.Int64)
		if errors.Is(err, sql.ErrNoRows) {
			ve.Add("link_page_id", msgInvalidPage)
		} else if err != nil {
			return fmt.Errorf("loading page %d: %w", in.LinkPageID.Int64, err)
		}
	}

	if in.ParentID.Valid {
		if err := validateParent(ctx, q, menuID, itemID, in.ParentID.Int64, ve); err != nil {
			return err
		}
	}

	return ve.err()
}

// validateParent rejects a parent that is the item itself, lives in another
// menu, or sits below the item in the tree.
func validateParent(ctx context.Context, q *store.Queries, menuID, itemID, parentID int64, ve *ValidationError) error {
	if itemID > 0 && parentID == itemID {
		ve.Add("parent_id", msgSelfParent)
		return nil
	}

	parent, err := q.GetMenuItemByID(ctx, parentID)
	if errors.Is(err, sql.ErrNoRows) {
		ve.Add("parent_id", msgInvalidParent)
		return nil
	}
	if err != nil {
		return fmt.Errorf("loading parent item %d: %w", parentID, err)
	}
	if parent.MenuID != menuID {
		ve.Add("parent_id", msgForeignParent)
		return nil
	}

	if itemID > 0 {
		items, err := q.ListMenuItems(ctx, menuID)
		if err != nil {
			return fmt.Errorf("listing menu items: %w", err)
		}
		if descendantIDs(items, itemID)[parentID] {
			ve.Add("parent_id", msgDescendantCycle)
		}
	}
	return nil
}

// descendantIDs returns the ids of every item below rootID.
func descendantIDs(items []store.MenuItem, rootID int64) map[int64]bool {
	children := make(map[int64][]int64)
	for _, item := range items {
		if item.ParentID.Valid {
			children[item.ParentID.Int64] = append(children[item.ParentID.Int64], item.ID)
		}
	}

	seen := make(map[int64]bool)
	queue := []int64{rootID}
	for len(queue) > 0 {
		id := queue[0]
		queue = queue[1:]
		for _, child := range children[id] {
			if child == rootID || seen[child] {
				continue
			}
			seen[child] = true
			queue = append(queue, child)
		}
	}
	return seen
}

// AddItem validates and appends a new item at the end of the menu.
func (s *MenuService) AddItem(ctx context.Context, menuID int64, in ItemInput) (store.MenuItem, error) {
	in = normalizeItemInput(in)

	var item store.MenuItem
	err := s.inTx(ctx, func(q *store.Queries) error {
		if _, err := getMenu(ctx, q, menuID); err != nil {
			return err
		}
		if err := validateItem(ctx, q, menuID, 0, in); err != nil {
			return err
		}

		maxOrder, err := q.GetMaxMenuItemSortOrder(ctx, menuID)
		if err != nil {
			return fmt.Errorf("reading sort order: %w", err)
		}

		now := time.Now()
		item, err = q.CreateMenuItem(ctx, store.CreateMenuItemParams{
			MenuID:       menuID,
			ParentID:     in.ParentID,
			Title:        in.Title,
			LinkUrl:      in.LinkURL,
			LinkPageID:   in.LinkPageID,
			OpenInNewTab: in.OpenInNewTab,
			CssClass:     in.CSSClass,
			SortOrder:    maxOrder + 1,
			CreatedAt:    now,
			UpdatedAt:    now,
		})
		if err != nil {
			return fmt.Errorf("creating menu item: %w", err)
		}
		return nil
	})
	return item, err
}

// EditItem validates and saves an item, keeping its sort order.
func (s *MenuService) EditItem(ctx context.Context, menuID, itemID int64, in ItemInput) (store.MenuItem, error) {
	in = normalizeItemInput(in)

	var item store.MenuItem
	err := s.inTx(ctx, func(q *store.Queries) error {
		if _, err := getItem(ctx, q, menuID, itemID); err != nil {
			return err
		}
		if err := validateItem(ctx, q, menuID, itemID, in); err != nil {
			return err
		}

		var err error
		item, err = q.UpdateMenuItem(ctx, store.UpdateMenuItemParams{
			ParentID:     in.ParentID,
			Title:        in.Title,
			LinkUrl:      in.LinkURL,
			LinkPageID:   in.LinkPageID,
			OpenInNewTab: in.OpenInNewTab,
			CssClass:     in.CSSClass,
			UpdatedAt:    time.Now(),
			ID:           itemID,
		})
		if err != nil {
			return fmt.Errorf("updating menu item %d: %w", itemID, err)
		}
		return nil
	})
	return item, err
}

// DeleteItem removes an item and, through the foreign key cascade, its subtree.
func (s *MenuService) DeleteItem(ctx context.Context, menuID, itemID int64) error {
	if _, err := getItem(ctx, s.queries, menuID, itemID); err != nil {
		return err
	}
	if _, err := s.queries.DeleteMenuItem(ctx, itemID); err != nil {
		return fmt.Errorf("deleting menu item %d: %w", itemID, err)
	}
	return nil
}

// GetItem returns the item with itemID inside menuID or ErrNotFound.
func (s *MenuService) GetItem(ctx context.Context, menuID, itemID int64) (store.MenuItem, error) {
	return getItem(ctx, s.queries, menuID, itemID)
}

func getItem(ctx context.Context, q *store.Queries, menuID, itemID int64) (store.MenuItem, error) {
	item, err := q.GetMenuItemInMenu(ctx, store.GetMenuItemInMenuParams{ID: itemID, MenuID: menuID})
	if errors.Is(err, sql.ErrNoRows) {
		return store.MenuItem{}, ErrNotFound
	}
	if err != nil {
		return store.MenuItem{}, fmt.Errorf("loading menu item %d: %w", itemID, err)
	}
	return item, nil
}

// GetRootItems returns the items of a menu that have no parent, in sort order.
func (s *MenuService) GetRootItems(ctx context.Context, menuID int64) ([]store.MenuItem, error) {
	items, err := s.queries.ListRootMenuItems(ctx, menuID)
	if err != nil {
		return nil, fmt.Errorf("listing root items: %w", err)
	}
	return items, nil
}

// GetChildren returns the direct children of item that belong to the same menu.
func (s *MenuService) GetChildren(ctx context.Context, item store.MenuItem) ([]store.MenuItem, error) {
	items, err := s.queries.ListChildMenuItems(ctx, store.ListChildMenuItemsParams{
		ParentID: util.NullInt64FromValue(item.ID),
		MenuID:   item.MenuID,
	})
	if err != nil {
		return nil, fmt.Errorf("listing children of item %d: %w", item.ID, err)
	}
	return items, nil
}

// ListItems returns every item of a menu in sort order.
func (s *MenuService) ListItems(ctx context.Context, menuID int64) ([]store.MenuItem, error) {
	items, err := s.queries.ListMenuItems(ctx, menuID)
	if err != nil {
		return nil, fmt.Errorf("listing menu items: %w", err)
	}
	return items, nil
}

// ParentChoices returns the items of menuID that may become the parent of
// excludeID: everything except the item itself and its descendants.
// Pass zero for a new item.
func (s *MenuService) ParentChoices(ctx context.Context, menuID, excludeID int64) ([]store.MenuItem, error) {
	choices, err := s.queries.ListParentChoices(ctx, store.ListParentChoicesParams{MenuID: menuID, ID: excludeID})
	if err != nil {
		return nil, fmt.Errorf("listing parent choices: %w", err)
	}
	if excludeID == 0 {
		return choices, nil
	}

	all, err := s.queries.ListMenuItems(ctx, menuID)
	if err != nil {
		return nil, fmt.Errorf("listing menu items: %w", err)
	}
	below := descendantIDs(all, excludeID)

	filtered := choices[:0]
	for _, c := range choices {
		if !below[c.ID] {
			filtered = append(filtered, c)
		}
	}
	return filtered, nil
}

// PageChoices returns the live pages an item may link to.
func (s *MenuService) PageChoices(ctx context.Context) ([]store.Page, error) {
	pages, err := s.queries.ListLivePages(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing pages: %w", err)
	}
	return pages, nil
}

// Reorder assigns sort_order = position to each id in ids. Ids that do not
// belong to the menu are skipped. All updates share one transaction.
func (s *MenuService) Reorder(ctx context.Context, menuID int64, ids []int64) (ReorderResult, error) {
	var result ReorderResult
	err := s.inTx(ctx, func(q *store.Queries) error {
		if _, err := getMenu(ctx, q, menuID); err != nil {
			return err
		}

		now := time.Now()
		for i, id := range ids {
			rows, err := q.UpdateMenuItemSortOrder(ctx, store.UpdateMenuItemSortOrderParams{
				SortOrder: int64(i),
				UpdatedAt: now,
				ID:        id,
				MenuID:    menuID,
			})
			if err != nil {
				return fmt.Errorf("updating sort order of item %d: %w", id, err)
			}
			if rows == 0 {
				result.Skipped++
				continue
			}
			result.Updated++
		}
		return nil
	})
	if err != nil {
		return ReorderResult{}, err
	}
	return result, nil
}
