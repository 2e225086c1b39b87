// SPDX-License-Identifier: GPL-3.0-or-later

//go:generate mockgen -destination=mocks/mail.go -package=mocks . MailFetcher,MailSender
package domain

// MailFetcher retrieves up to maxCount of the most recent unread
// messages from each of the given folders, newest first within a
// folder. It never fails: an unreachable or unauthenticated mailbox
// yields an empty slice with the cause logged.
type MailFetcher interface {
	FetchRecent(maxCount int, folders ...string) []*ParsedMessage
}

// MailSender delivers one message and reports success. Transport
// failures and missing credentials are logged and reported as false,
// never raised.
type MailSender interface {
	Send(subject, body, to string) bool
}
