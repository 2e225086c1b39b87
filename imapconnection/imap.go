// SPDX-License-Identifier: GPL-3.0-or-later
package imapconnection

import (
	"fmt"
	"io"

	"github.com/KarlapudiPrashanthi/phishingemailclassifier/domain"
	"github.com/KarlapudiPrashanthi/phishingemailclassifier/log"
	"github.com/KarlapudiPrashanthi/phishingemailclassifier/mail"

	"github.com/emersion/go-imap"
	"github.com/emersion/go-imap/client"
	"github.com/sirupsen/logrus"
)

// Fetcher pulls unread mails over IMAP. Each FetchRecent call dials a
// fresh connection so a long-running monitor survives dropped sessions;
// every failure degrades to an empty result with the cause logged.
type Fetcher struct {
	server, user, password string

	l *logrus.Logger
}

func NewFetcher(server, user, password string) *Fetcher {
	return &Fetcher{
		server:   server,
		user:     user,
		password: password,
		l:        log.Logger(log.LOG_IMAP),
	}
}

// FetchRecent returns up to maxCount of the most recent unseen mails
// from each folder, newest first within a folder. Folder order is
// fixed; results are not merged by time across folders.
func (f *Fetcher) FetchRecent(maxCount int, folders ...string) []*domain.ParsedMessage {
	result := []*domain.ParsedMessage{}

	if f.user == "" || f.password == "" {
		f.l.Warn("Imap user or password not set, cannot connect to mailbox")
		return result
	}

	conn, err := client.DialTLS(f.server, nil)
	if err != nil {
		f.l.WithFields(logrus.Fields{"server": f.server, "error": err}).Warn("Could not dial to imap")
		return result
	}
	defer conn.Logout()

	err = conn.Login(f.user, f.password)
	if err != nil {
		f.l.WithFields(logrus.Fields{"server": f.server, "error": err}).Warn("Could not login to imap")
		return result
	}

	for _, folder := range folders {
		mails, err := f.fetchFolder(conn, folder, maxCount)
		if err != nil {
			f.l.WithFields(logrus.Fields{"folder": folder, "error": err}).Debug("Could not fetch folder")
			continue
		}
		result = append(result, mails...)
	}

	f.l.WithField("count", len(result)).Info("Fetched unseen mails from monitored folders")
	return result
}

func (f *Fetcher) fetchFolder(conn *client.Client, folder string, maxCount int) ([]*domain.ParsedMessage, error) {
	_, err := conn.Select(folder, true)
	if err != nil {
		return nil, fmt.Errorf("could not select folder: %w", err)
	}

	criteria := imap.NewSearchCriteria()
	criteria.WithoutFlags = []string{imap.SeenFlag}
	uids, err := conn.UidSearch(criteria)
	if err != nil {
		return nil, fmt.Errorf("could not search for unseen mails: %w", err)
	}

	if len(uids) == 0 {
		return nil, nil
	}

	// Uids come back oldest first; keep the newest maxCount. The seq-set
	// is normalized server-side and responses stream in mailbox order, so
	// the newest-first ordering is applied to the parsed results below.
	uids = keepNewest(uids, maxCount)

	seqset := &imap.SeqSet{}
	seqset.AddNum(uids...)

	fullBodySection := &imap.BodySectionName{
		Peek: true,
	}
	fetchItems := []imap.FetchItem{imap.FetchUid, fullBodySection.FetchItem()}

	messages := make(chan *imap.Message, 10)
	done := make(chan error, 1)
	go func() {
		done <- conn.UidFetch(seqset, fetchItems, messages)
	}()

	mails := []*domain.ParsedMessage{}
	for msg := range messages {
		r := msg.GetBody(fullBodySection)
		if r == nil {
			f.l.WithFields(logrus.Fields{"folder": folder, "uid": msg.Uid}).Debug("Mail has no body section, skipping")
			continue
		}

		rawBody, err := io.ReadAll(r)
		if err != nil {
			f.l.WithFields(logrus.Fields{"folder": folder, "uid": msg.Uid, "error": err}).Debug("Could not read mail body, skipping")
			continue
		}

		parsed, err := mail.ParseMessage(rawBody)
		if err != nil {
			f.l.WithFields(logrus.Fields{"folder": folder, "uid": msg.Uid, "error": err}).Debug("Could not parse mail, skipping")
			continue
		}
		mails = append(mails, parsed)
	}

	err = <-done
	if err != nil {
		return mails, fmt.Errorf("could not fetch mails: %w", err)
	}

	reverseMails(mails)
	return mails, nil
}

// keepNewest keeps the trailing max entries of an oldest-first uid list.
func keepNewest(uids []uint32, max int) []uint32 {
	if len(uids) > max {
		return uids[len(uids)-max:]
	}
	return uids
}

// reverseMails flips a mailbox-ordered (oldest first) result in place
// so callers see the newest mail first.
func reverseMails(mails []*domain.ParsedMessage) {
	for i, j := 0, len(mails)-1; i < j; i, j = i+1, j-1 {
		mails[i], mails[j] = mails[j], mails[i]
	}
}
