// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package slug turns project names into file-name-safe slugs for exports.
package slug

import (
	"regexp"
	"strings"
)

// Fallback is used when a name produces an empty slug.
const Fallback = "flexiui-component"

// MaxLength bounds the slug part of an export file name.
const MaxLength = 60

var (
	// nonAlphanumeric matches anything that isn't a letter, digit, whitespace or hyphen.
	nonAlphanumeric = regexp.MustCompile(`[^a-z0-9\s-]`)
	// whitespace matches runs of any whitespace.
	whitespace = regexp.MustCompile(`\s+`)
	// multipleHyphens collapses consecutive hyphens into one.
	multipleHyphens = regexp.MustCompile(`-{2,}`)
)

// Generate creates a URL-friendly slug from the given string.
// Example: "Neon Button (v2)!" → "neon-button-v2"
func Generate(s string) string {
	result := strings.ToLower(strings.TrimSpace(s))
	result = nonAlphanumeric.ReplaceAllString(result, "")
	result = whitespace.ReplaceAllString(result, "-")
	result = multipleHyphens.ReplaceAllString(result, "-")
	result = strings.Trim(result, "-")
	return result
}

// Truncate shortens a slug to at most max bytes, cutting at the last hyphen
// inside the limit when there is one.
func Truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	s = s[:max]
	if i := strings.LastIndex(s, "-"); i > 0 {
		s = s[:i]
	}
	return strings.Trim(s, "-")
}

// Filename returns the export file name for a project name, e.g.
// "Dark Navbar" → "dark-navbar.html".
func Filename(name string) string {
	s := Truncate(Generate(name), MaxLength)
	if s == "" {
		s = Fallback
	}
	return s + ".html"
}
