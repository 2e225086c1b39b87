// SPDX-License-Identifier: GPL-3.0-or-later
package detection

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKeywordFrequencies(t *testing.T) {
	keywords := []string{"urgent", "verify", "account"}

	freqs := KeywordFrequencies("URGENT: please verify your account. Your account was locked.", keywords)

	assert.Equal(t, 1, freqs["urgent"])
	assert.Equal(t, 1, freqs["verify"])
	assert.Equal(t, 2, freqs["account"])
}

func TestKeywordFrequenciesNoMatches(t *testing.T) {
	freqs := KeywordFrequencies("meeting tomorrow at noon", []string{"urgent", "password"})

	assert.Equal(t, map[string]int{"urgent": 0, "password": 0}, freqs)
}

func TestKeywordScore(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		keywords []string
		expected int
	}{
		{"empty text", "", []string{"urgent"}, 0},
		{"no keywords", "urgent urgent", nil, 0},
		{"sums all hits", "urgent: verify urgent", []string{"urgent", "verify"}, 3},
		{"case insensitive", "URGENT Verify", []string{"urgent", "verify"}, 2},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, KeywordScore(tc.text, tc.keywords))
		})
	}
}
