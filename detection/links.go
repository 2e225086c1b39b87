// SPDX-License-Identifier: GPL-3.0-or-later
package detection

import (
	"net/url"
	"regexp"
	"strings"
)

var (
	urlPattern  = regexp.MustCompile(`(?i)https?://[^\s<>"']+`)
	ipv4Pattern = regexp.MustCompile(`^\d{1,3}\.\d{1,3}\.\d{1,3}\.\d{1,3}$`)
)

// Hosts under these TLDs show up disproportionately in phishing links.
var suspiciousTLDs = []string{".tk", ".ml", ".ga", ".cf", ".gq", ".xyz"}

type LinkAnalysis struct {
	URLs            []string `json:"urls"`
	URLCount        int      `json:"url_count"`
	SuspiciousCount int      `json:"suspicious_count"`
	SuspiciousURLs  []string `json:"suspicious_urls"`
}

// ExtractURLs returns all http(s) URLs in the text. A URL token runs
// until whitespace, a quote or an angle bracket.
func ExtractURLs(text string) []string {
	return urlPattern.FindAllString(text, -1)
}

// AnalyzeLinks extracts URLs and flags the suspicious subset.
func AnalyzeLinks(text string) *LinkAnalysis {
	urls := ExtractURLs(text)
	suspicious := []string{}
	for _, u := range urls {
		if isSuspiciousURL(u) {
			suspicious = append(suspicious, u)
		}
	}

	return &LinkAnalysis{
		URLs:            urls,
		URLCount:        len(urls),
		SuspiciousCount: len(suspicious),
		SuspiciousURLs:  suspicious,
	}
}

// isSuspiciousURL flags dotted-quad hosts, very long hosts and
// low-trust TLDs. Malformed URLs are never suspicious.
func isSuspiciousURL(rawURL string) bool {
	parsed, err := url.Parse(rawURL)
	if err != nil {
		return false
	}

	host := parsed.Host
	if host == "" {
		host = parsed.Path
	}
	host = strings.ToLower(strings.SplitN(host, "/", 2)[0])
	if h, _, found := strings.Cut(host, ":"); found {
		host = h
	}
	if host == "" {
		return false
	}

	if ipv4Pattern.MatchString(host) {
		return true
	}
	if len(host) > 50 {
		return true
	}
	for _, tld := range suspiciousTLDs {
		if strings.HasSuffix(host, tld) {
			return true
		}
	}

	return false
}
