// SPDX-License-Identifier: GPL-3.0-or-later
package detection

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

const (
	mailNoReplyTo = "From: Alice <alice@example.com>\r\n" +
		"To: bob@example.com\r\n" +
		"Subject: Hello\r\n" +
		"\r\n" +
		"Body text\r\n"

	mailMismatchedReplyTo = "From: Support <support@bank.com>\r\n" +
		"Reply-To: b@y.com\r\n" +
		"Subject: Account locked\r\n" +
		"\r\n" +
		"Body text\r\n"

	mailMatchingReplyTo = "From: Alice <alice@example.com>\r\n" +
		"Reply-To: Alice <ALICE@example.com>\r\n" +
		"Subject: Hello\r\n" +
		"\r\n" +
		"Body text\r\n"
)

func TestAnalyzeHeadersNoReplyTo(t *testing.T) {
	analysis := AnalyzeHeaders(mailNoReplyTo)

	assert.Equal(t, "Alice <alice@example.com>", analysis.FromAddr)
	assert.Equal(t, "alice@example.com", analysis.FromEmail)
	assert.False(t, analysis.HasReplyTo)
	assert.False(t, analysis.FromReplyMismatch, "missing Reply-To is never a mismatch")
}

func TestAnalyzeHeadersMismatch(t *testing.T) {
	analysis := AnalyzeHeaders(mailMismatchedReplyTo)

	assert.Equal(t, "support@bank.com", analysis.FromEmail)
	assert.Equal(t, "b@y.com", analysis.ReplyToEmail)
	assert.True(t, analysis.HasReplyTo)
	assert.True(t, analysis.FromReplyMismatch)
}

func TestAnalyzeHeadersMatchingReplyTo(t *testing.T) {
	analysis := AnalyzeHeaders(mailMatchingReplyTo)

	assert.True(t, analysis.HasReplyTo)
	assert.False(t, analysis.FromReplyMismatch, "case differences in the address are not a mismatch")
}

func TestExtractHeader(t *testing.T) {
	tests := []struct {
		name     string
		raw      string
		header   string
		expected string
	}{
		{"simple", "Subject: Hello\r\n\r\nbody", "Subject", "Hello"},
		{"case insensitive name", "subject: Hello\r\n\r\nbody", "Subject", "Hello"},
		{"folded continuation", "Subject: A very\r\n long subject\r\n\r\nbody", "Subject", "A very long subject"},
		{"first occurrence wins", "Subject: First\r\nSubject: Second\r\n\r\nbody", "Subject", "First"},
		{"missing", "Subject: Hi\r\n\r\nbody", "Reply-To", ""},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, ExtractHeader(tc.raw, tc.header))
		})
	}
}
