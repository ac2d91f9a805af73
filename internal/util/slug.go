// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

// Package util provides general-purpose utility functions including
// menu slug normalisation and generation.
package util

import (
	"regexp"
	"strings"
	"unicode"

	"github.com/mozillazg/go-unidecode"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// multipleHyphens matches multiple consecutive hyphens
var multipleHyphens = regexp.MustCompile(`-{2,}`)

// NormalizeSlug applies the slug rule used on every menu write: trim, lowercase,
// replace spaces with hyphens, then drop every rune that is not a letter, a number
// or a hyphen. Any Unicode number counts, not only decimal digits. The result is
// stable under repeated application.
func NormalizeSlug(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	s = strings.ReplaceAll(s, " ", "-")

	return strings.Map(func(r rune) rune {
		if r == '-' || unicode.IsLetter(r) || unicode.IsNumber(r) {
			return r
		}
		return -1
	}, s)
}

// Slugify derives an ASCII slug from a title. Accents are stripped, other scripts
// are transliterated, and runs of hyphens are collapsed.
func Slugify(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	result, _, _ := transform.String(t, s)

	result = unidecode.Unidecode(result)
	result = NormalizeSlug(result)
	result = multipleHyphens.ReplaceAllString(result, "-")

	return strings.Trim(result, "-")
}

// IsValidSlug reports whether s is already in normalised form and non-empty.
func IsValidSlug(s string) bool {
	if s == "" || strings.Trim(s, "-") == "" {
		return false
	}
	return NormalizeSlug(s) == s
}
