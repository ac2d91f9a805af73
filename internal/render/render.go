// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

// Package render parses the embedded html/template pages and renders them
// with flash messages and the menu template functions.
package render

import (
	"bytes"
	"context"
	"fmt"
	"html/template"
	"io/fs"
	"log/slog"
	"net/http"
	"path"
	"strings"
	"time"

	"github.com/alexedwards/scs/v2"

	"github.com/olegiv/ocms-menus/internal/service"
	"github.com/olegiv/ocms-menus/internal/store"
	"github.com/olegiv/ocms-menus/internal/util"
)

// Session keys for flash messages.
const (
	flashKey     = "flash"
	flashTypeKey = "flash_type"
)

const (
	baseLayout   = "layouts/base.html"
	menuPartial  = "partials/menu.html"
	menuTemplate = "menu"
)

// pageDirs are the directories holding page templates. Each page is
// registered as "<dir>/<name>".
var pageDirs = []string{"admin", "auth", "public", "errors"}

// MenuSource provides the menus used by the renderMenu and getMenu functions.
type MenuSource interface {
	RenderMenu(ctx context.Context, slug, cssClass string) (service.MenuView, error)
	GetMenuBySlug(ctx context.Context, slug string) (*store.Menu, error)
}

// Renderer handles template rendering with caching.
type Renderer struct {
	templates      map[string]*template.Template
	menuTmpl       *template.Template
	sessionManager *scs.SessionManager
	menus          MenuSource
	isDev          bool
}

// Config holds renderer configuration.
type Config struct {
	TemplatesFS    fs.FS
	SessionManager *scs.SessionManager
	Menus          MenuSource
	IsDev          bool
}

// New creates a new Renderer with parsed templates.
func New(cfg Config) (*Renderer, error) {
	r := &Renderer{
		templates:      make(map[string]*template.Template),
		sessionManager: cfg.SessionManager,
		menus:          cfg.Menus,
		isDev:          cfg.IsDev,
	}

	if err := r.parseTemplates(cfg.TemplatesFS); err != nil {
		return nil, err
	}

	return r, nil
}

// parseTemplates parses all templates from the filesystem.
func (r *Renderer) parseTemplates(templatesFS fs.FS) error {
	partials, err := getTemplateFiles(templatesFS, "partials")
	if err != nil {
		return fmt.Errorf("getting partials: %w", err)
	}

	menuTmpl, err := template.New("").Funcs(r.TemplateFuncs()).ParseFS(templatesFS, menuPartial)
	if err != nil {
		return fmt.Errorf("parsing menu partial: %w", err)
	}
	r.menuTmpl = menuTmpl

	for _, dir := range pageDirs {
		pages, err := getTemplateFiles(templatesFS, dir)
		if err != nil {
			return fmt.Errorf("getting %s templates: %w", dir, err)
		}

		for _, tmplPath := range pages {
			name := dir + "/" + strings.TrimSuffix(path.Base(tmplPath), ".html")

			// Parse in order: base layout, partials, page template
			files := []string{baseLayout}
			files = append(files, partials...)
			files = append(files, tmplPath)

			tmpl, err := template.New("").Funcs(r.TemplateFuncs()).ParseFS(templatesFS, files...)
			if err != nil {
				return fmt.Errorf("parsing template %s: %w", name, err)
			}

			r.templates[name] = tmpl
		}
	}

	return nil
}

// getTemplateFiles returns all .html files in a directory.
func getTemplateFiles(templatesFS fs.FS, dir string) ([]string, error) {
	entries, err := fs.ReadDir(templatesFS, dir)
	if err != nil {
		return nil, err
	}

	var files []string
	for _, entry := range entries {
		if !entry.IsDir() && strings.HasSuffix(entry.Name(), ".html") {
			files = append(files, path.Join(dir, entry.Name()))
		}
	}

	return files, nil
}

// TemplateFuncs returns the template functions available at parse time.
// renderMenu and getMenu are rebound per request so they see its context.
func (r *Renderer) TemplateFuncs() template.FuncMap {
	funcs := template.FuncMap{
		"formatDate": func(t time.Time) string {
			return t.Format("Jan 2, 2006")
		},
		"formatDateTime": func(t time.Time) string {
			return t.Format("Jan 2, 2006 3:04 PM")
		},
		"truncate": func(s string, length int) string {
			runes := []rune(s)
			if len(runes) <= length {
				return s
			}
			return string(runes[:length]) + "..."
		},
		"add": func(a, b int) int {
			return a + b
		},
		"fieldError": func(errs map[string]string, field string) string {
			return errs[field]
		},
		// nullID renders an optional id as a select value.
		"nullID":     util.FormatNullInt64,
		"renderMenu": r.menuRenderer(context.Background()),
		"getMenu":    r.menuGetter(context.Background()),
	}
	return funcs
}

// requestFuncs returns the functions that depend on the request context.
func (r *Renderer) requestFuncs(ctx context.Context) template.FuncMap {
	return template.FuncMap{
		"renderMenu": r.menuRenderer(ctx),
		"getMenu":    r.menuGetter(ctx),
	}
}

// menuRenderer returns the renderMenu function: renderMenu "slug" ["css-class"].
// An unknown slug renders nothing.
func (r *Renderer) menuRenderer(ctx context.Context) func(slug string, cssClass ...string) (template.HTML, error) {
	return func(slug string, cssClass ...string) (template.HTML, error) {
		if r.menus == nil {
			return "", nil
		}

		class := ""
		if len(cssClass) > 0 {
			class = cssClass[0]
		}

		view, err := r.menus.RenderMenu(ctx, slug, class)
		if err != nil {
			return "", fmt.Errorf("rendering menu %q: %w", slug, err)
		}
		return r.RenderMenuHTML(view)
	}
}

// menuGetter returns the getMenu function. It yields nil for an unknown slug.
func (r *Renderer) menuGetter(ctx context.Context) func(slug string) (*store.Menu, error) {
	return func(slug string) (*store.Menu, error) {
		if r.menus == nil {
			return nil, nil
		}
		return r.menus.GetMenuBySlug(ctx, slug)
	}
}

// RenderMenuHTML renders a menu tree with the menu partial.
func (r *Renderer) RenderMenuHTML(view service.MenuView) (template.HTML, error) {
	if !view.Found() || r.menuTmpl == nil {
		return "", nil
	}

	var buf bytes.Buffer
	if err := r.menuTmpl.ExecuteTemplate(&buf, menuTemplate, view); err != nil {
		return "", fmt.Errorf("executing menu template: %w", err)
	}
	// #nosec G203 -- produced by html/template, already escaped
	return template.HTML(buf.String()), nil
}

// TemplateData holds data passed to templates.
type TemplateData struct {
	Title       string
	Data        any
	Errors      map[string]string
	Flash       string
	FlashType   string
	CurrentYear int
	CurrentPath string
	User        *store.User
	Breadcrumbs []Breadcrumb
}

// Breadcrumb represents a breadcrumb navigation item.
type Breadcrumb struct {
	Label  string
	URL    string
	Active bool
}

// IsActive returns true if the given path matches the current path.
func (d TemplateData) IsActive(p string) bool {
	return d.CurrentPath == p
}

// HasPrefix returns true if the current path starts with the given prefix.
func (d TemplateData) HasPrefix(prefix string) bool {
	return strings.HasPrefix(d.CurrentPath, prefix)
}

// UserInitial returns the first character of the username for the avatar.
func (d TemplateData) UserInitial() string {
	if d.User == nil || d.User.Username == "" {
		return "?"
	}
	return strings.ToUpper(string([]rune(d.User.Username)[0]))
}

// RenderStatus renders a template with the given data and status code.
func (r *Renderer) RenderStatus(w http.ResponseWriter, req *http.Request, status int, name string, data TemplateData) error {
	tmpl, ok := r.templates[name]
	if !ok {
		return fmt.Errorf("template %s not found", name)
	}

	tmpl, err := tmpl.Clone()
	if err != nil {
		return fmt.Errorf("cloning template %s: %w", name, err)
	}
	tmpl.Funcs(r.requestFuncs(req.Context()))

	data.CurrentYear = time.Now().Year()
	data.CurrentPath = req.URL.Path

	if r.sessionManager != nil {
		if flash := r.sessionManager.PopString(req.Context(), flashKey); flash != "" {
			data.Flash = flash
			data.FlashType = r.sessionManager.PopString(req.Context(), flashTypeKey)
			if data.FlashType == "" {
				data.FlashType = "info"
			}
		}
	}

	// Render to buffer first to catch errors
	buf := new(bytes.Buffer)
	if err := tmpl.ExecuteTemplate(buf, "base", data); err != nil {
		return fmt.Errorf("executing template %s: %w", name, err)
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	if _, err := buf.WriteTo(w); err != nil {
		slog.Debug("writing response", "template", name, "error", err)
	}
	return nil
}

// SetFlash sets a flash message in the session.
func (r *Renderer) SetFlash(req *http.Request, message, flashType string) {
	if r.sessionManager != nil {
		r.sessionManager.Put(req.Context(), flashKey, message)
		r.sessionManager.Put(req.Context(), flashTypeKey, flashType)
	}
}
