// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package util

import (
	"database/sql"
	"strconv"
	"strings"
)

// NullInt64FromValue creates a valid sql.NullInt64 from an int64 value.
func NullInt64FromValue(val int64) sql.NullInt64 {
	return sql.NullInt64{Int64: val, Valid: true}
}

// ParseNullInt64Choice parses an optional id chosen from a form select.
// An empty value is a valid "none" choice and yields NULL. A positive integer
// yields that id. Anything else reports ok=false so the caller can reject it
// instead of treating it as "none".
func ParseNullInt64Choice(s string) (n sql.NullInt64, ok bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return sql.NullInt64{}, true
	}
	val, err := strconv.ParseInt(s, 10, 64)
	if err != nil || val <= 0 {
		return sql.NullInt64{}, false
	}
	return sql.NullInt64{Int64: val, Valid: true}, true
}

// FormatNullInt64 renders a sql.NullInt64 as a form value, empty when NULL.
func FormatNullInt64(n sql.NullInt64) string {
	if !n.Valid {
		return ""
	}
	return strconv.FormatInt(n.Int64, 10)
}
