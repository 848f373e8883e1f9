// Copyright (c) 2026 Hailey Portfolio. All rights reserved.

// Package sanitize turns arbitrary client-supplied file names into safe
// ASCII object-store key segments.
//
// # Usage
//
// Uploaded files keep a recognizable trace of their original name inside the
// store key ("artworks/1735689600000-sunset-over-marsh.jpg"). This package
// handles normalization, accent removal, and character sanitization.
package sanitize

import (
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

var (
	// multiHyphen collapses multiple consecutive hyphens into one.
	multiHyphen = regexp.MustCompile(`-{2,}`)
)

// Filename converts an arbitrary Unicode file name (without extension) into
// a safe ASCII key segment.
//
// # Transformation Pipeline
//
// 1. Normalizes to NFD (decomposes accented chars: é → e + combining acute).
// 2. Removes combining marks (accents).
// 3. Converts to lowercase.
// 4. Replaces non-alphanumeric characters with hyphens.
// 5. Collapses multiple hyphens and trims leading/trailing hyphens.
//
// An input with no salvageable characters yields "image" so keys never end
// with a bare timestamp.
func Filename(name string) string {
	// 1. Normalize and remove accents
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	result, _, _ := transform.String(t, name)

	// 2. Lowercase
	result = strings.ToLower(result)

	// 3. Replace whitespace and special chars with hyphens
	result = strings.Map(func(r rune) rune {
		if r >= 'a' && r <= 'z' || r >= '0' && r <= '9' {
			return r
		}
		return '-'
	}, result)

	// 4. Clean up hyphenation
	result = multiHyphen.ReplaceAllString(result, "-")
	result = strings.Trim(result, "-")

	if result == "" {
		return "image"
	}
	return result
}
