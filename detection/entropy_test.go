// SPDX-License-Identifier: GPL-3.0-or-later
package detection

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestShannonEntropy(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected float64
	}{
		{"empty", "", 0.0},
		{"single char repeated", "aaaa", 0.0},
		{"two even chars", "abab", 1.0},
		{"four distinct chars", "abcd", 2.0},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.InDelta(t, tc.expected, ShannonEntropy(tc.input), 1e-9)
		})
	}
}

func TestShannonEntropyOrdering(t *testing.T) {
	low := ShannonEntropy("aaaaaaaaab")
	high := ShannonEntropy("x8!kQ2#mZp")

	assert.Less(t, low, high, "more varied text should have higher entropy")
}

func TestWordEntropy(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected float64
	}{
		{"empty", "", 0.0},
		{"whitespace only", "   ", 0.0},
		{"repeated word", "spam spam spam", 0.0},
		{"two even words", "click here click here", 1.0},
		{"four distinct words", "verify your account now", 2.0},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.InDelta(t, tc.expected, WordEntropy(tc.input), 1e-9)
		})
	}
}
