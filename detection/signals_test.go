// SPDX-License-Identifier: GPL-3.0-or-later
package detection

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtractSignals(t *testing.T) {
	raw := "From: support@bank.com\r\n" +
		"Reply-To: attacker@evil.com\r\n" +
		"Subject: Urgent account notice\r\n" +
		"\r\n" +
		"Urgent, verify your account at http://192.168.0.1/login now.\r\n"

	signals := ExtractSignals(raw, []string{"urgent", "verify", "account"})

	assert.Equal(t, 2, signals.KeywordFrequencies["urgent"])
	assert.Equal(t, 1, signals.KeywordFrequencies["verify"])
	assert.Equal(t, 5, signals.KeywordScore)

	assert.Equal(t, 1, signals.Links.URLCount)
	assert.Equal(t, 1, signals.Links.SuspiciousCount)

	assert.True(t, signals.Headers.FromReplyMismatch)

	assert.Greater(t, signals.Entropy, 0.0)
	assert.Greater(t, signals.WordEntropy, 0.0)
}

func TestExtractSignalsEmptyInput(t *testing.T) {
	signals := ExtractSignals("", nil)

	assert.Empty(t, signals.KeywordFrequencies)
	assert.Equal(t, 0, signals.KeywordScore)
	assert.Equal(t, 0, signals.Links.URLCount)
	assert.False(t, signals.Headers.FromReplyMismatch)
	assert.Equal(t, 0.0, signals.Entropy)
	assert.Equal(t, 0.0, signals.WordEntropy)
}
