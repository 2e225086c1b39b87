// SPDX-License-Identifier: GPL-3.0-or-later
package detection

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtractURLs(t *testing.T) {
	text := "Visit http://example.com and also https://test.org/login for details"

	urls := ExtractURLs(text)

	assert.Equal(t, []string{"http://example.com", "https://test.org/login"}, urls)
}

func TestAnalyzeLinksCountsAllURLs(t *testing.T) {
	analysis := AnalyzeLinks("See http://example.com then https://test.org now")

	assert.Equal(t, 2, analysis.URLCount)
	assert.Len(t, analysis.URLs, 2)
	assert.Equal(t, 0, analysis.SuspiciousCount)
	assert.Empty(t, analysis.SuspiciousURLs)
}

func TestAnalyzeLinksNoURLs(t *testing.T) {
	analysis := AnalyzeLinks("no links in here")

	assert.Equal(t, 0, analysis.URLCount)
	assert.Empty(t, analysis.URLs)
}

func TestSuspiciousURLs(t *testing.T) {
	tests := []struct {
		name       string
		url        string
		suspicious bool
	}{
		{"plain domain", "http://example.com/page", false},
		{"raw ip host", "http://192.168.12.33/login", true},
		{"ip host with port", "http://10.0.0.1:8080/verify", true},
		{"suspicious tld tk", "http://free-prizes.tk", true},
		{"suspicious tld xyz", "https://login-update.xyz/account", true},
		{"very long host", "http://" + longHost(60) + "/x", true},
		{"uppercase scheme", "HTTP://example.org", false},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			analysis := AnalyzeLinks("check " + tc.url + " please")

			assert.Equal(t, 1, analysis.URLCount)
			if tc.suspicious {
				assert.Equal(t, 1, analysis.SuspiciousCount)
				assert.Equal(t, []string{tc.url}, analysis.SuspiciousURLs)
			} else {
				assert.Equal(t, 0, analysis.SuspiciousCount)
			}
		})
	}
}

func longHost(length int) string {
	host := make([]byte, length)
	for i := range host {
		host[i] = 'a'
	}
	return string(host) + ".com"
}
