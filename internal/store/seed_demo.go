// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package store

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"time"
)

// DemoMenuSlug is the slug of the menu created by SeedDemo.
const DemoMenuSlug = "main-menu"

type demoPage struct {
	Title string
	Slug  string
}

type demoItem struct {
	Title    string
	URL      string
	PageSlug string
	Parent   string
	NewTab   bool
}

// SeedDemo creates a few content pages and a nested main menu linking to them.
// It does nothing when menus or live pages already exist.
func SeedDemo(ctx context.Context, db *sql.DB) error {
	queries := New(db)

	menuCount, err := queries.CountMenus(ctx)
	if err != nil {
		return fmt.Errorf("counting menus: %w", err)
	}
	pageCount, err := queries.CountLivePages(ctx)
	if err != nil {
		return fmt.Errorf("counting pages: %w", err)
	}
	if menuCount > 0 || pageCount > 0 {
		slog.Info("content already exists, skipping demo seed")
		return nil
	}

	slog.Info("seeding demo content")

	pageIDs, err := seedDemoPages(ctx, queries)
	if err != nil {
		return fmt.Errorf("seeding demo pages: %w", err)
	}

	if err := seedDemoMenu(ctx, queries, pageIDs); err != nil {
		return fmt.Errorf("seeding demo menu: %w", err)
	}

	slog.Info("demo content seeded successfully")
	return nil
}

func getDemoPages() []demoPage {
	return []demoPage{
		{Title: "About Us", Slug: "about"},
		{Title: "Our Team", Slug: "team"},
		{Title: "Services", Slug: "services"},
		{Title: "Contact", Slug: "contact"},
	}
}

func getDemoItems() []demoItem {
	return []demoItem{
		{Title: "Home", URL: "/"},
		{Title: "About", PageSlug: "about"},
		{Title: "Team", PageSlug: "team", Parent: "About"},
		{Title: "Services", PageSlug: "services"},
		{Title: "Blog", URL: "https://blog.example.com/", NewTab: true},
		{Title: "Contact", PageSlug: "contact"},
	}
}

func seedDemoPages(ctx context.Context, queries *Queries) (map[string]int64, error) {
	now := time.Now()
	ids := make(map[string]int64)

	for _, p := range getDemoPages() {
		page, err := queries.CreatePage(ctx, CreatePageParams{
			Title:     p.Title,
			Slug:      p.Slug,
			UrlPath:   "/" + p.Slug + "/",
			Live:      true,
			CreatedAt: now,
		})
		if err != nil {
			return nil, fmt.Errorf("creating page %s: %w", p.Slug, err)
		}
		ids[p.Slug] = page.ID
	}

	slog.Info("seeded demo pages", "count", len(ids))
	return ids, nil
}

func seedDemoMenu(ctx context.Context, queries *Queries, pageIDs map[string]int64) error {
	now := time.Now()
	menu, err := queries.CreateMenu(ctx, CreateMenuParams{
		Title:     "Main Menu",
		Slug:      DemoMenuSlug,
		CreatedAt: now,
		UpdatedAt: now,
	})
	if err != nil {
		return fmt.Errorf("creating menu: %w", err)
	}

	itemIDs := make(map[string]int64)
	for i, item := range getDemoItems() {
		params := CreateMenuItemParams{
			MenuID:       menu.ID,
			Title:        item.Title,
			LinkUrl:      item.URL,
			OpenInNewTab: item.NewTab,
			SortOrder:    int64(i),
			CreatedAt:    now,
			UpdatedAt:    now,
		}
		if item.PageSlug != "" {
			params.LinkPageID = sql.NullInt64{Int64: pageIDs[item.PageSlug], Valid: true}
		}
		if item.Parent != "" {
			params.ParentID = sql.NullInt64{Int64: itemIDs[item.Parent], Valid: true}
		}

		created, err := queries.CreateMenuItem(ctx, params)
		if err != nil {
			return fmt.Errorf("creating menu item %s: %w", item.Title, err)
		}
		itemIDs[item.Title] = created.ID
	}

	slog.Info("seeded demo menu", "slug", menu.Slug, "items", len(itemIDs))
	return nil
}
