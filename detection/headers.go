// SPDX-License-Identifier: GPL-3.0-or-later
package detection

import (
	"bufio"
	"regexp"
	"strings"
)

var emailAddrPattern = regexp.MustCompile(`[\w.+-]+@[\w.-]+\.\w+`)

type HeaderAnalysis struct {
	FromAddr          string `json:"from_addr"`
	ReplyTo           string `json:"reply_to"`
	FromEmail         string `json:"from_email"`
	ReplyToEmail      string `json:"reply_to_email"`
	FromReplyMismatch bool   `json:"from_reply_mismatch"`
	HasReplyTo        bool   `json:"has_reply_to"`
}

// AnalyzeHeaders extracts the first From and Reply-To header values from
// a raw email and flags a spoofing indicator: a Reply-To whose embedded
// address differs from the From address. A missing Reply-To is never a
// mismatch.
func AnalyzeHeaders(rawEmail string) *HeaderAnalysis {
	fromAddr := ExtractHeader(rawEmail, "From")
	replyTo := ExtractHeader(rawEmail, "Reply-To")

	fromEmail := extractEmail(fromAddr)
	replyEmail := extractEmail(replyTo)
	mismatch := replyTo != "" && fromEmail != replyEmail

	return &HeaderAnalysis{
		FromAddr:          fromAddr,
		ReplyTo:           replyTo,
		FromEmail:         fromEmail,
		ReplyToEmail:      replyEmail,
		FromReplyMismatch: mismatch,
		HasReplyTo:        replyTo != "",
	}
}

// ExtractHeader returns the first value of the named header,
// case-insensitive, including folded continuation lines.
func ExtractHeader(raw, name string) string {
	prefix := strings.ToLower(name) + ":"

	scanner := bufio.NewScanner(strings.NewReader(raw))
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	value := ""
	found := false
	for scanner.Scan() {
		line := scanner.Text()
		if found {
			// Continuation lines start with whitespace.
			if strings.HasPrefix(line, " ") || strings.HasPrefix(line, "\t") {
				value += " " + strings.TrimSpace(line)
				continue
			}
			break
		}
		if strings.HasPrefix(strings.ToLower(line), prefix) {
			value = strings.TrimSpace(line[len(prefix):])
			found = true
		}
	}

	return strings.TrimSpace(value)
}

// extractEmail pulls the address out of a header value like
// "Name <user@domain.com>", lower-cased for comparison. Values without
// a recognizable address fall back to the whole trimmed value.
func extractEmail(headerValue string) string {
	if headerValue == "" {
		return ""
	}
	if m := emailAddrPattern.FindString(headerValue); m != "" {
		return strings.ToLower(m)
	}
	return strings.ToLower(strings.TrimSpace(headerValue))
}
