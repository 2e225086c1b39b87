// SPDX-License-Identifier: GPL-3.0-or-later
package domain

import "strings"

// ParsedMessage is the structured form of one email. RawText is the
// canonical classifier input: subject, blank line, body, trimmed.
type ParsedMessage struct {
	Subject string
	Body    string
	Sender  string
	RawText string
}

func NewParsedMessage(subject, body, sender string) *ParsedMessage {
	return &ParsedMessage{
		Subject: subject,
		Body:    body,
		Sender:  sender,
		RawText: strings.TrimSpace(subject + "\n\n" + body),
	}
}
