// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package middleware

import (
	"net/http"
	"path"
	"slices"
	"strings"
)

// AppendTrailingSlash redirects GET and HEAD requests for paths without a
// trailing slash to the slashed equivalent (HTTP 301). Paths in exclude and
// paths whose last segment has a file extension are served as is.
func AppendTrailingSlash(exclude ...string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			p := r.URL.Path
			if strings.HasSuffix(p, "/") ||
				(r.Method != http.MethodGet && r.Method != http.MethodHead) ||
				slices.Contains(exclude, p) ||
				path.Ext(p) != "" {
				next.ServeHTTP(w, r)
				return
			}

			newURL := p + "/"
			if r.URL.RawQuery != "" {
				newURL += "?" + r.URL.RawQuery
			}
			http.Redirect(w, r, newURL, http.StatusMovedPermanently)
		})
	}
}
