// SPDX-License-Identifier: GPL-3.0-or-later
package detection

import (
	"math"
	"strings"
)

// ShannonEntropy computes the character-level Shannon entropy of the
// text in bits. Empty input yields 0. High values hint at obfuscated or
// encoded payloads.
func ShannonEntropy(text string) float64 {
	if text == "" {
		return 0.0
	}

	counts := make(map[rune]int)
	n := 0
	for _, r := range text {
		counts[r]++
		n++
	}

	return entropyOf(counts, n)
}

// WordEntropy computes Shannon entropy over whitespace-delimited tokens
// instead of characters.
func WordEntropy(text string) float64 {
	words := strings.Fields(text)
	if len(words) == 0 {
		return 0.0
	}

	counts := make(map[string]int)
	for _, w := range words {
		counts[w]++
	}

	return entropyOfStrings(counts, len(words))
}

func entropyOf(counts map[rune]int, n int) float64 {
	entropy := 0.0
	for _, count := range counts {
		p := float64(count) / float64(n)
		entropy -= p * math.Log2(p)
	}
	return entropy
}

func entropyOfStrings(counts map[string]int, n int) float64 {
	entropy := 0.0
	for _, count := range counts {
		p := float64(count) / float64(n)
		entropy -= p * math.Log2(p)
	}
	return entropy
}
