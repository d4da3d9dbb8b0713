// Copyright (c) 2026 The World. All rights reserved.
// Author: aman-SINGH7999

// Package slug generates URL slugs for topics from arbitrary Unicode strings.
//
// # Usage
//
// Slugs are the public, human-readable identifiers of topics (e.g., "ancient-rome").
// The output is ASCII-only and stable under repeated application.
package slug

import (
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

var (
	// disallowed matches anything that is not a word character, whitespace, or hyphen.
	disallowed = regexp.MustCompile(`[^\w\s-]`)
	// whitespace matches runs of whitespace.
	whitespace = regexp.MustCompile(`\s+`)
	// multiHyphen collapses multiple consecutive hyphens into one.
	multiHyphen = regexp.MustCompile(`-{2,}`)
)

// From converts an arbitrary Unicode string into a URL-safe ASCII slug.
//
// # Transformation Pipeline
//
// 1. Normalizes to NFD and removes combining marks (é → e).
// 2. Lowercases and trims surrounding whitespace.
// 3. Strips every character that is not a word character, whitespace, or hyphen.
// 4. Replaces each whitespace run with a single hyphen.
// 5. Collapses consecutive hyphens.
//
// Leading or trailing hyphens present in the input are kept. Empty and
// all-punctuation inputs yield "", which callers must reject.
func From(s string) string {
	// 1. Fold accents
	t := transform.Chain(norm.NFD, transform.RemoveFunc(isMn))
	result, _, err := transform.String(t, s)
	if err != nil {
		result = s
	}

	// 2. Lowercase and trim
	result = strings.TrimSpace(strings.ToLower(result))

	// 3. Strip disallowed characters
	result = disallowed.ReplaceAllString(result, "")

	// 4. Hyphenate whitespace
	result = whitespace.ReplaceAllString(result, "-")

	// 5. Clean up hyphenation
	return multiHyphen.ReplaceAllString(result, "-")
}

// isMn reports whether r is a Unicode non-spacing mark (e.g., accents).
func isMn(r rune) bool {
	return unicode.Is(unicode.Mn, r)
}
