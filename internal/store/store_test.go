package store

import (
	"context"
	"database/sql"
	"path/filepath"
	"testing"
	"time"
)

// testDB creates a temporary test database.
func testDB(t *testing.T) *sql.DB {
	t.Helper()

	db, err := NewDB(filepath.Join(t.TempDir(), "store-test.db"))
	if err != nil {
		t.Fatalf("NewDB: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	if err := Migrate(db); err != nil {
		t.Fatalf("Migrate: %v", err)
	}
	return db
}

func createTestMenu(t *testing.T, q *Queries, title, slug string) Menu {
	t.Helper()
	now := time.Now()
	menu, err := q.CreateMenu(context.Background(), CreateMenuParams{
		Title: title, Slug: slug, CreatedAt: now, UpdatedAt: now,
	})
	if err != nil {
		t.Fatalf("CreateMenu: %v", err)
	}
	return menu
}

func createTestItem(t *testing.T, q *Queries, menuID int64, parentID sql.NullInt64, title string, sortOrder int64) MenuItem {
	t.Helper()
	now := time.Now()
	item, err := q.CreateMenuItem(context.Background(), CreateMenuItemParams{
		MenuID:    menuID,
		ParentID:  parentID,
		Title:     title,
		LinkUrl:   "/" + title + "/",
		SortOrder: sortOrder,
		CreatedAt: now,
		UpdatedAt: now,
	})
	if err != nil {
		t.Fatalf("CreateMenuItem: %v", err)
	}
	return item
}

func TestNewDBWithConfig_UnsupportedDriver(t *testing.T) {
	cfg := DefaultDBConfig()
	cfg.Driver = "mysql"

	if _, err := NewDBWithConfig(filepath.Join(t.TempDir(), "x.db"), cfg); err == nil {
		t.Fatal("expected error for unsupported driver")
	}
}

func TestNewDBWithConfig_CgoDriver(t *testing.T) {
	cfg := DefaultDBConfig()
	cfg.Driver = DriverCgo

	db, err := NewDBWithConfig(filepath.Join(t.TempDir(), "cgo.db"), cfg)
	if err != nil {
		t.Fatalf("NewDBWithConfig: %v", err)
	}
	defer func() { _ = db.Close() }()

	var fk int
	if err := db.QueryRow("PRAGMA foreign_keys").Scan(&fk); err != nil {
		t.Fatalf("PRAGMA foreign_keys: %v", err)
	}
	if fk != 1 {
		t.Errorf("foreign_keys = %d, want 1", fk)
	}
}

func TestDSN(t *testing.T) {
	tests := []struct {
		driver string
		path   string
		want   string
	}{
		{DriverModernc, "menus.db", "menus.db?_pragma=foreign_keys(1)&_pragma=busy_timeout(5000)"},
		{DriverCgo, "menus.db", "menus.db?_foreign_keys=on&_busy_timeout=5000"},
		{DriverCgo, "file:menus.db?cache=shared", "file:menus.db?cache=shared&_foreign_keys=on&_busy_timeout=5000"},
	}

	for _, tt := range tests {
		if got := dsn(tt.driver, tt.path); got != tt.want {
			t.Errorf("dsn(%q, %q) = %q, want %q", tt.driver, tt.path, got, tt.want)
		}
	}
}

func TestMigrate_Idempotent(t *testing.T) {
	db := testDB(t)
	if err := Migrate(db); err != nil {
		t.Fatalf("second Migrate: %v", err)
	}
}

func TestMenuSlugAndTitleExists(t *testing.T) {
	db := testDB(t)
	ctx := context.Background()
	q := New(db)

	menu := createTestMenu(t, q, "Main", "main")

	if n, _ := q.MenuSlugExists(ctx, "main"); n != 1 {
		t.Errorf("MenuSlugExists = %d, want 1", n)
	}
	if n, _ := q.MenuTitleExists(ctx, "Main"); n != 1 {
		t.Errorf("MenuTitleExists = %d, want 1", n)
	}
	n, err := q.MenuSlugExistsExcluding(ctx, MenuSlugExistsExcludingParams{Slug: "main", ID: menu.ID})
	if err != nil {
		t.Fatalf("MenuSlugExistsExcluding: %v", err)
	}
	if n != 0 {
		t.Errorf("MenuSlugExistsExcluding = %d, want 0", n)
	}

	now := time.Now()
	_, err = q.CreateMenu(ctx, CreateMenuParams{Title: "Other", Slug: "main", CreatedAt: now, UpdatedAt: now})
	if err == nil {
		t.Error("expected unique constraint error for duplicate slug")
	}
}

func TestMenuItemOrdering(t *testing.T) {
	db := testDB(t)
	ctx := context.Background()
	q := New(db)

	menu := createTestMenu(t, q, "Main", "main")

	maxOrder, err := q.GetMaxMenuItemSortOrder(ctx, menu.ID)
	if err != nil {
		t.Fatalf("GetMaxMenuItemSortOrder: %v", err)
	}
	if maxOrder != -1 {
		t.Errorf("empty menu max sort order = %d, want -1", maxOrder)
	}

	b := createTestItem(t, q, menu.ID, sql.NullInt64{}, "b", 1)
	a := createTestItem(t, q, menu.ID, sql.NullInt64{}, "a", 0)
	child := createTestItem(t, q, menu.ID, sql.NullInt64{Int64: a.ID, Valid: true}, "child", 5)

	roots, err := q.ListRootMenuItems(ctx, menu.ID)
	if err != nil {
		t.Fatalf("ListRootMenuItems: %v", err)
	}
	if len(roots) != 2 || roots[0].ID != a.ID || roots[1].ID != b.ID {
		t.Errorf("roots = %+v, want [a b]", roots)
	}

	children, err := q.ListChildMenuItems(ctx, ListChildMenuItemsParams{
		ParentID: sql.NullInt64{Int64: a.ID, Valid: true},
		MenuID:   menu.ID,
	})
	if err != nil {
		t.Fatalf("ListChildMenuItems: %v", err)
	}
	if len(children) != 1 || children[0].ID != child.ID {
		t.Errorf("children = %+v, want [child]", children)
	}

	maxOrder, _ = q.GetMaxMenuItemSortOrder(ctx, menu.ID)
	if maxOrder != 5 {
		t.Errorf("max sort order = %d, want 5", maxOrder)
	}
}

func TestUpdateMenuItemSortOrder_ScopedToMenu(t *testing.T) {
	db := testDB(t)
	ctx := context.Background()
	q := New(db)

	main := createTestMenu(t, q, "Main", "main")
	footer := createTestMenu(t, q, "Footer", "footer")
	item := createTestItem(t, q, footer.ID, sql.NullInt64{}, "legal", 3)

	rows, err := q.UpdateMenuItemSortOrder(ctx, UpdateMenuItemSortOrderParams{
		SortOrder: 0, UpdatedAt: time.Now(), ID: item.ID, MenuID: main.ID,
	})
	if err != nil {
		t.Fatalf("UpdateMenuItemSortOrder: %v", err)
	}
	if rows != 0 {
		t.Errorf("rows = %d, want 0", rows)
	}
}

func TestCascades(t *testing.T) {
	db := testDB(t)
	ctx := context.Background()
	q := New(db)

	menu := createTestMenu(t, q, "Main", "main")
	parent := createTestItem(t, q, menu.ID, sql.NullInt64{}, "parent", 0)
	createTestItem(t, q, menu.ID, sql.NullInt64{Int64: parent.ID, Valid: true}, "child", 1)

	if _, err := q.DeleteMenuItem(ctx, parent.ID); err != nil {
		t.Fatalf("DeleteMenuItem: %v", err)
	}
	if n, _ := q.CountMenuItems(ctx, menu.ID); n != 0 {
		t.Errorf("items after parent delete = %d, want 0", n)
	}

	createTestItem(t, q, menu.ID, sql.NullInt64{}, "again", 0)
	rows, err := q.DeleteMenu(ctx, menu.ID)
	if err != nil {
		t.Fatalf("DeleteMenu: %v", err)
	}
	if rows != 1 {
		t.Errorf("DeleteMenu rows = %d, want 1", rows)
	}
	if n, _ := q.CountMenuItems(ctx, menu.ID); n != 0 {
		t.Errorf("items after menu delete = %d, want 0", n)
	}
}

func TestSeed(t *testing.T) {
	db := testDB(t)
	ctx := context.Background()
	q := New(db)

	created, err := Seed(ctx, db, "", "hashed")
	if err != nil {
		t.Fatalf("Seed: %v", err)
	}
	if !created {
		t.Error("first Seed should create the admin user")
	}

	user, err := q.GetUserByUsername(ctx, DefaultAdminUsername)
	if err != nil {
		t.Fatalf("GetUserByUsername: %v", err)
	}
	if user.PasswordHash != "hashed" {
		t.Errorf("PasswordHash = %q, want %q", user.PasswordHash, "hashed")
	}

	created, err = Seed(ctx, db, "", "other")
	if err != nil {
		t.Fatalf("second Seed: %v", err)
	}
	if created {
		t.Error("second Seed should not create a user")
	}
	if n, _ := q.CountUsers(ctx); n != 1 {
		t.Errorf("user count = %d, want 1", n)
	}
}

func TestSeedDemo(t *testing.T) {
	db := testDB(t)
	ctx := context.Background()
	q := New(db)

	if err := SeedDemo(ctx, db); err != nil {
		t.Fatalf("SeedDemo: %v", err)
	}

	menu, err := q.GetMenuBySlug(ctx, DemoMenuSlug)
	if err != nil {
		t.Fatalf("GetMenuBySlug: %v", err)
	}

	rows, err := q.ListMenuItemsWithPage(ctx, menu.ID)
	if err != nil {
		t.Fatalf("ListMenuItemsWithPage: %v", err)
	}
	if len(rows) != len(getDemoItems()) {
		t.Fatalf("item count = %d, want %d", len(rows), len(getDemoItems()))
	}
	for _, row := range rows {
		if row.LinkPageID.Valid && !row.PageUrlPath.Valid {
			t.Errorf("item %q links page %d without url path", row.Title, row.LinkPageID.Int64)
		}
	}

	if n, _ := q.CountLivePages(ctx); n != int64(len(getDemoPages())) {
		t.Errorf("page count = %d, want %d", n, len(getDemoPages()))
	}

	// Second run is a no-op.
	if err := SeedDemo(ctx, db); err != nil {
		t.Fatalf("second SeedDemo: %v", err)
	}
	if n, _ := q.CountMenus(ctx); n != 1 {
		t.Errorf("menu count = %d, want 1", n)
	}
}
