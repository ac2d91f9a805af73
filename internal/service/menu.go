// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

// Package service provides the menu builder business logic: menu and
// menu item persistence rules, tree views and reordering.
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

// Dashboard list sizes.
const (
	recentMenusLimit  = 5
	recentEventsLimit = 10
)

// MenuInput holds the editable fields of a menu.
type MenuInput struct {
	Title string `form:"title" validate:"required,max=255"`
	Slug  string `form:"slug" validate:"max=255"`
}

// DashboardStats holds the counters shown on the dashboard.
type DashboardStats struct {
	TotalMenus   int64
	TotalUsers   int64
	TotalPages   int64
	RecentMenus  []store.Menu
	RecentEvents []store.Event
}

// MenuService provides menu and menu item operations backed by the store.
type MenuService struct {
	db      *sql.DB
	queries *store.Queries
}

// NewMenuService creates a new MenuService.
func NewMenuService(db *sql.DB) *MenuService {
	return &MenuService{
		db:      db,
		queries: store.New(db),
	}
}

// inTx runs fn with queries bound to a transaction, committing when fn succeeds.
func (s *MenuService) inTx(ctx context.Context, fn func(q *store.Queries) error) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to start transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	if err := fn(s.queries.WithTx(tx)); err != nil {
		return err
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}

// normalizeMenuInput trims the title and derives or normalises the slug.
func normalizeMenuInput(in MenuInput) (MenuInput, *ValidationError) {
	ve := newValidationError()

	in.Title = strings.TrimSpace(in.Title)
	rawSlug := strings.TrimSpace(in.Slug)
	if rawSlug == "" {
		in.Slug = util.Slugify(in.Title)
	} else {
		in.Slug = util.NormalizeSlug(rawSlug)
		if strings.Trim(in.Slug, "-") == "" {
			ve.Add("slug", "Enter a valid slug consisting of letters, numbers or hyphens.")
		}
	}
	if in.Title != "" && in.Slug == "" {
		ve.Add("slug", "Enter a valid slug consisting of letters, numbers or hyphens.")
	}
	return in, ve
}

// checkMenuUnique records duplicate title or slug errors, ignoring excludeID.
func checkMenuUnique(ctx context.Context, q *store.Queries, in MenuInput, excludeID int64, ve *ValidationError) error {
	var titleCount, slugCount int64
	var err error

	if excludeID > 0 {
		titleCount, err = q.MenuTitleExistsExcluding(ctx, store.MenuTitleExistsExcludingParams{Title: in.Title, ID: excludeID})
	} else {
		titleCount, err = q.MenuTitleExists(ctx, in.Title)
	}
	if err != nil {
		return fmt.Errorf("checking menu title: %w", err)
	}
	if titleCount > 0 {
		ve.Add("title", "Menu with this Title already exists.")
	}

	if excludeID > 0 {
		slugCount, err = q.MenuSlugExistsExcluding(ctx, store.MenuSlugExistsExcludingParams{Slug: in.Slug, ID: excludeID})
	} else {
		slugCount, err = q.MenuSlugExists(ctx, in.Slug)
	}
	if err != nil {
		return fmt.Errorf("checking menu slug: %w", err)
	}
	if slugCount > 0 {
		ve.Add("slug", "Menu with this Slug already exists.")
	}
	return nil
}

func (s *MenuService) validateMenu(ctx context.Context, q *store.Queries, in MenuInput, excludeID int64) (MenuInput, error) {
	in, ve := normalizeMenuInput(in)
	if err := collectFieldErrors(in, ve); err != nil {
		return in, err
	}
	if in.Title != "" && in.Slug != "" {
		if err := checkMenuUnique(ctx, q, in, excludeID, ve); err != nil {
			return in, err
		}
	}
	return in, ve.err()
}

// CreateMenu validates and inserts a new menu.
// Duplicate titles or slugs fail with *ValidationError and insert nothing.
func (s *MenuService) CreateMenu(ctx context.Context, in MenuInput) (store.Menu, error) {
	var menu store.Menu
	err := s.inTx(ctx, func(q *store.Queries) error {
		clean, err := s.validateMenu(ctx, q, in, 0)
		if err != nil {
			return err
		}

		now := time.Now()
		menu, err = q.CreateMenu(ctx, store.CreateMenuParams{
			Title:     clean.Title,
			Slug:      clean.Slug,
			CreatedAt: now,
			UpdatedAt: now,
		})
		if isUniqueViolation(err) {
			ve := newValidationError()
			ve.Add("slug", "Menu with this Title or Slug already exists.")
			return ve
		}
		if err != nil {
			return fmt.Errorf("creating menu: %w", err)
		}
		return nil
	})
	return menu, err
}

// UpdateMenu validates and saves the title and slug of an existing menu.
func (s *MenuService) UpdateMenu(ctx context.Context, id int64, in MenuInput) (store.Menu, error) {
	var menu store.Menu
	err := s.inTx(ctx, func(q *store.Queries) error {
		if _, err := getMenu(ctx, q, id); err != nil {
			return err
		}

		clean, err := s.validateMenu(ctx, q, in, id)
		if err != nil {
			return err
		}

		menu, err = q.UpdateMenu(ctx, store.UpdateMenuParams{
			Title:     clean.Title,
			Slug:      clean.Slug,
			UpdatedAt: time.Now(),
			ID:        id,
		})
		if isUniqueViolation(err) {
			ve := newValidationError()
			ve.Add("slug", "Menu with this Title or Slug already exists.")
			return ve
		}
		if err != nil {
			return fmt.Errorf("updating menu %d: %w", id, err)
		}
		return nil
	})
	return menu, err
}

// DeleteMenu removes a menu together with all of its items.
func (s *MenuService) DeleteMenu(ctx context.Context, id int64) error {
	rows, err := s.queries.DeleteMenu(ctx, id)
	if err != nil {
		return fmt.Errorf("deleting menu %d: %w", id, err)
	}
	if rows == 0 {
		return ErrNotFound
	}
	return nil
}

// GetMenu returns the menu with the given id or ErrNotFound.
func (s *MenuService) GetMenu(ctx context.Context, id int64) (store.Menu, error) {
	return getMenu(ctx, s.queries, id)
}

func getMenu(ctx context.Context, q *store.Queries, id int64) (store.Menu, error) {
	menu, err := q.GetMenuByID(ctx, id)
	if errors.Is(err, sql.ErrNoRows) {
		return store.Menu{}, ErrNotFound
	}
	if err != nil {
		return store.Menu{}, fmt.Errorf("loading menu %d: %w", id, err)
	}
	return menu, nil
}

// GetMenuBySlug returns the menu with the given slug, or nil when none exists.
// A slug that is not in normalised form cannot belong to any menu and is
// answered without a query.
func (s *MenuService) GetMenuBySlug(ctx context.Context, slug string) (*store.Menu, error) {
	if !util.IsValidSlug(slug) {
		return nil, nil
	}
	menu, err := s.queries.GetMenuBySlug(ctx, slug)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("loading menu %q: %w", slug, err)
	}
	return &menu, nil
}

// ListMenus returns all menus ordered by title.
func (s *MenuService) ListMenus(ctx context.Context) ([]store.Menu, error) {
	menus, err := s.queries.ListMenus(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing menus: %w", err)
	}
	return menus, nil
}

// Stats reads the dashboard counters directly from the store.
func (s *MenuService) Stats(ctx context.Context) (DashboardStats, error) {
	var stats DashboardStats
	var err error

	if stats.TotalMenus, err = s.queries.CountMenus(ctx); err != nil {
		return stats, fmt.Errorf("counting menus: %w", err)
	}
	if stats.TotalUsers, err = s.queries.CountUsers(ctx); err != nil {
		return stats, fmt.Errorf("counting users: %w", err)
	}
	if stats.TotalPages, err = s.queries.CountLivePages(ctx); err != nil {
		return stats, fmt.Errorf("counting pages: %w", err)
	}
	if stats.RecentMenus, err = s.queries.ListRecentMenus(ctx, recentMenusLimit); err != nil {
		return stats, fmt.Errorf("listing recent menus: %w", err)
	}
	if stats.RecentEvents, err = s.queries.ListEvents(ctx, recentEventsLimit); err != nil {
		return stats, fmt.Errorf("listing recent events: %w", err)
	}
	return stats, nil
}
