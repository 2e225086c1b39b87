// SPDX-License-Identifier: GPL-3.0-or-later

// Package detection holds the text normalizer and the advisory signal
// extractors (keywords, links, headers, entropy). The extractors are
// independent of the statistical classifier: their output is never fed
// into the model's feature space, only reported alongside its result.
// Wiring them into the classifier would silently change model behavior.
package detection

import (
	"regexp"
	"strings"
)

var (
	markupPattern     = regexp.MustCompile(`<[^>]+>`)
	specialPattern    = regexp.MustCompile(`[^a-zA-Z0-9\s]`)
	whitespacePattern = regexp.MustCompile(`\s+`)
)

// StripMarkup replaces tag-delimited markup with whitespace.
func StripMarkup(text string) string {
	return markupPattern.ReplaceAllString(text, " ")
}

// RemoveSpecialChars replaces every character outside [A-Za-z0-9 \t\n]
// with a space.
func RemoveSpecialChars(text string) string {
	return specialPattern.ReplaceAllString(text, " ")
}

// CleanText strips markup, removes special characters, collapses runs
// of whitespace to a single space and trims the ends. It is idempotent
// and is the sole normalization applied before vectorizing, at both
// train and predict time.
func CleanText(text string) string {
	text = StripMarkup(text)
	text = RemoveSpecialChars(text)
	return strings.TrimSpace(whitespacePattern.ReplaceAllString(text, " "))
}
