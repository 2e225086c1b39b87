// SPDX-License-Identifier: GPL-3.0-or-later
package detection

import "strings"

// KeywordFrequencies counts each keyword's occurrences in the cleaned,
// lower-cased text. Counting is substring based: a keyword appearing
// inside a longer word still counts.
func KeywordFrequencies(text string, keywords []string) map[string]int {
	cleaned := strings.ToLower(CleanText(text))

	freq := make(map[string]int, len(keywords))
	for _, kw := range keywords {
		kwLower := strings.ToLower(kw)
		freq[kwLower] = strings.Count(cleaned, kwLower)
	}
	return freq
}

// KeywordScore sums the keyword frequencies. A tie-break or explanation
// value, not a classifier feature.
func KeywordScore(text string, keywords []string) int {
	score := 0
	for _, count := range KeywordFrequencies(text, keywords) {
		score += count
	}
	return score
}
