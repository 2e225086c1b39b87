// SPDX-License-Identifier: GPL-3.0-or-later
package mail

import (
	"bytes"
	"encoding/base64"
	"io"
	"mime"
	"mime/multipart"
	"mime/quotedprintable"
	stdmail "net/mail"
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/KarlapudiPrashanthi/phishingemailclassifier/domain"

	"github.com/emersion/go-message/charset"
)

var (
	fromPattern    = regexp.MustCompile(`(?im)^From:[ \t]*(.+)$`)
	subjectPattern = regexp.MustCompile(`(?im)^Subject:[ \t]*(.+)$`)
	blankLine      = regexp.MustCompile(`\r?\n\r?\n`)
)

// ParseRaw parses a raw text blob into a message: case-insensitive
// regex header extraction (first match wins), body after the first
// blank line, or the whole blob when there is none.
func ParseRaw(raw string) *domain.ParsedMessage {
	subject, sender := "", ""
	if m := subjectPattern.FindStringSubmatch(raw); m != nil {
		subject = strings.TrimSpace(m[1])
	}
	if m := fromPattern.FindStringSubmatch(raw); m != nil {
		sender = strings.TrimSpace(m[1])
	}

	body := strings.TrimSpace(raw)
	if parts := blankLine.Split(raw, 2); len(parts) == 2 {
		body = strings.TrimSpace(parts[1])
	}

	return domain.NewParsedMessage(subject, body, sender)
}

// ParseMessage parses a full RFC822 message fetched from the mailbox.
// The body favors text/plain over text/html across all multipart
// levels, matching what the classifier was trained on.
func ParseMessage(rawMail []byte) (*domain.ParsedMessage, error) {
	msg, err := stdmail.ReadMessage(bytes.NewReader(rawMail))
	if err != nil {
		// Headerless blobs still get classified via the raw parser.
		return ParseRaw(string(rawMail)), nil
	}

	dec := &mime.WordDecoder{
		CharsetReader: charset.Reader,
	}

	subject := msg.Header.Get("Subject")
	if decoded, err := dec.DecodeHeader(subject); err == nil {
		subject = decoded
	}
	sender := msg.Header.Get("From")
	if decoded, err := dec.DecodeHeader(sender); err == nil {
		sender = decoded
	}

	plain, html := textParts(msg.Header.Get("Content-Type"), msg.Header.Get("Content-Transfer-Encoding"), msg.Body)
	body := plain
	if body == "" {
		body = html
	}

	return domain.NewParsedMessage(strings.TrimSpace(subject), strings.TrimSpace(body), strings.TrimSpace(sender)), nil
}

// textParts walks the message structure and returns the first
// text/plain and text/html bodies it finds.
func textParts(contentType, encoding string, r io.Reader) (plain, html string) {
	mediaType, params, err := mime.ParseMediaType(contentType)
	if err != nil {
		mediaType = "text/plain"
		params = nil
	}

	if strings.HasPrefix(mediaType, "multipart/") {
		mr := multipart.NewReader(r, params["boundary"])
		for {
			part, err := mr.NextPart()
			if err != nil {
				return plain, html
			}

			partPlain, partHtml := textParts(
				part.Header.Get("Content-Type"),
				part.Header.Get("Content-Transfer-Encoding"),
				part,
			)
			if plain == "" && partPlain != "" {
				plain = partPlain
			}
			if html == "" && partHtml != "" {
				html = partHtml
			}
			if plain != "" {
				return plain, html
			}
		}
	}

	text := decodeBody(r, encoding, params["charset"])
	if strings.HasPrefix(mediaType, "text/html") {
		return "", text
	}
	return text, ""
}

// decodeBody applies the transfer encoding and charset, best effort.
func decodeBody(r io.Reader, encoding, charsetName string) string {
	switch strings.ToLower(strings.TrimSpace(encoding)) {
	case "base64":
		r = base64.NewDecoder(base64.StdEncoding, r)
	case "quoted-printable":
		r = quotedprintable.NewReader(r)
	}

	if charsetName != "" && !strings.EqualFold(charsetName, "utf-8") && !strings.EqualFold(charsetName, "us-ascii") {
		converted, err := charset.Reader(charsetName, r)
		if err == nil {
			r = converted
		}
	}

	body, err := io.ReadAll(r)
	if err != nil && len(body) == 0 {
		return ""
	}
	return strings.TrimSpace(string(body))
}

// ShortSubject truncates a subject for log lines.
func ShortSubject(subject string) string {
	if utf8.RuneCountInString(subject) > 30 {
		subject = Truncate(subject, 30) + "..."
	}
	return subject
}

// Preview flattens text to a single line of at most max characters, the
// shape persisted with every classification result. CRLF collapses to a
// single space.
func Preview(text string, max int) string {
	text = strings.ReplaceAll(text, "\r\n", " ")
	text = strings.ReplaceAll(strings.ReplaceAll(text, "\r", " "), "\n", " ")
	return Truncate(text, max)
}

// Truncate cuts text to at most max characters on a rune boundary so a
// cut never produces invalid UTF-8.
func Truncate(text string, max int) string {
	if utf8.RuneCountInString(text) <= max {
		return text
	}
	return string([]rune(text)[:max])
}
