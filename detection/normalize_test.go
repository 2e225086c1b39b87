// SPDX-License-Identifier: GPL-3.0-or-later
package detection

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCleanText(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"empty", "", ""},
		{"whitespace only", " \t\n ", ""},
		{"plain text unchanged", "hello world", "hello world"},
		{"markup stripped", "<p>Click <b>here</b></p>", "Click here"},
		{"special chars removed", "win $$$ now!!!", "win now"},
		{"whitespace collapsed", "a  b\t\tc\n\nd", "a b c d"},
		{"mixed", "<a href='http'>Verify</a> your account, NOW!", "Verify your account NOW"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, CleanText(tc.input))
		})
	}
}

func TestCleanTextIdempotent(t *testing.T) {
	inputs := []string{
		"<div>Urgent: verify your account!</div>",
		"plain text",
		"  padded   text  ",
	}
	for _, input := range inputs {
		once := CleanText(input)
		assert.Equal(t, once, CleanText(once), "cleaning cleaned text should be a no-op")
	}
}

func TestStripMarkup(t *testing.T) {
	assert.Equal(t, " hi ", StripMarkup("<html>hi</html>"))
	assert.Equal(t, "no tags", StripMarkup("no tags"))
}

func TestRemoveSpecialChars(t *testing.T) {
	assert.Equal(t, "a b 1", RemoveSpecialChars("a&b*1"))
	assert.Equal(t, "keep spaces here", RemoveSpecialChars("keep spaces here"))
}
