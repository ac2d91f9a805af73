package handler

import (
	"context"
	"database/sql"
	"io/fs"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/alexedwards/scs/v2"
	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/require"

	"github.com/olegiv/ocms-menus/internal/middleware"
	"github.com/olegiv/ocms-menus/internal/render"
	"github.com/olegiv/ocms-menus/internal/service"
	"github.com/olegiv/ocms-menus/internal/session"
	"github.com/olegiv/ocms-menus/internal/store"
	"github.com/olegiv/ocms-menus/internal/testutil"
	"github.com/olegiv/ocms-menus/web"
)

// testEnv bundles the dependencies shared by handler tests.
type testEnv struct {
	db       *sql.DB
	sm       *scs.SessionManager
	menus    *service.MenuService
	renderer *render.Renderer
	user     store.User
}

// newTestEnv creates a migrated database, session manager, renderer and a staff user.
func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	db := testutil.TestDB(t)
	sm := session.New(db, true)
	menus := service.NewMenuService(db)

	templates, err := fs.Sub(web.Templates, "templates")
	require.NoError(t, err)

	renderer, err := render.New(render.Config{
		TemplatesFS:    templates,
		SessionManager: sm,
		Menus:          menus,
		IsDev:          true,
	})
	require.NoError(t, err)

	return &testEnv{
		db:       db,
		sm:       sm,
		menus:    menus,
		renderer: renderer,
		user:     testutil.CreateUser(t, db, "editor", "unused-hash"),
	}
}

// request builds a request with a loaded session, the staff user in context
// and the given chi URL parameters. A non-nil form is sent url-encoded.
func (e *testEnv) request(t *testing.T, method, target string, form url.Values, params map[string]string) *http.Request {
	t.Helper()

	var req *http.Request
	if form != nil {
		req = httptest.NewRequest(method, target, strings.NewReader(form.Encode()))
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	} else {
		req = httptest.NewRequest(method, target, nil)
	}

	req = requestWithSession(t, e.sm, req)
	req = requestWithURLParams(req, params)
	return req.WithContext(context.WithValue(req.Context(), middleware.ContextKeyUser, e.user))
}

// flash returns the flash message stored in the request's session.
func (e *testEnv) flash(req *http.Request) string {
	return e.sm.GetString(req.Context(), "flash")
}

// requestWithURLParams adds chi URL parameters to a request.
func requestWithURLParams(r *http.Request, params map[string]string) *http.Request {
	rctx := chi.NewRouteContext()
	for key, value := range params {
		rctx.URLParams.Add(key, value)
	}
	return r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, rctx))
}

// requestWithSession wraps a request with session context.
func requestWithSession(t *testing.T, sm *scs.SessionManager, r *http.Request) *http.Request {
	t.Helper()
	ctx, err := sm.Load(r.Context(), "")
	require.NoError(t, err)
	return r.WithContext(ctx)
}

// createMenu creates a menu through the service.
func (e *testEnv) createMenu(t *testing.T, title string) store.Menu {
	t.Helper()
	menu, err := e.menus.CreateMenu(context.Background(), service.MenuInput{Title: title})
	require.NoError(t, err)
	return menu
}

// addItem adds an item linking to an external URL.
func (e *testEnv) addItem(t *testing.T, menuID int64, title string, parentID int64) store.MenuItem {
	t.Helper()
	in := service.ItemInput{Title: title, LinkURL: "https://example.com/" + title}
	if parentID > 0 {
		in.ParentID = sql.NullInt64{Int64: parentID, Valid: true}
	}
	item, err := e.menus.AddItem(context.Background(), menuID, in)
	require.NoError(t, err)
	return item
}
