// SPDX-License-Identifier: GPL-3.0-or-later

// Package monitor runs the unattended polling loop: fetch unread mails,
// skip already-processed subjects, drive the checker pipeline, sleep,
// repeat. Dedup state lives in memory only, so the guarantee is
// at-most-once per subject per process lifetime; a restart rescans
// whatever the mailbox still reports as unread.
package monitor

import (
	"context"
	"time"

	"github.com/KarlapudiPrashanthi/phishingemailclassifier/checker"
	"github.com/KarlapudiPrashanthi/phishingemailclassifier/domain"
	"github.com/KarlapudiPrashanthi/phishingemailclassifier/log"

	"github.com/sirupsen/logrus"
)

// Pipeline is the slice of the checker the loop drives.
type Pipeline interface {
	CheckMessages(ctx context.Context, messages []*domain.ParsedMessage) (*checker.Summary, error)
}

type Monitor struct {
	fetcher  domain.MailFetcher
	pipeline Pipeline

	folders  []string
	fetchMax int
	interval time.Duration

	// seen holds subjects processed in this run. Subjects are the dedup
	// key, so distinct mails sharing a subject are skipped after the
	// first.
	seen map[string]struct{}

	l *logrus.Logger
}

func New(fetcher domain.MailFetcher, pipeline Pipeline, folders []string, fetchMax int, interval time.Duration) *Monitor {
	return &Monitor{
		fetcher:  fetcher,
		pipeline: pipeline,
		folders:  folders,
		fetchMax: fetchMax,
		interval: interval,
		seen:     map[string]struct{}{},
		l:        log.Logger(log.LOG_MONITOR),
	}
}

// Run polls until the context is cancelled. A failing cycle never
// terminates the loop; it is logged and the next cycle starts after the
// usual sleep, with no backoff.
func (m *Monitor) Run(ctx context.Context) {
	m.l.WithFields(logrus.Fields{"folders": m.folders, "interval": m.interval}).Info("Automatic mailbox monitoring started")

	for {
		m.RunCycle(ctx)

		select {
		case <-ctx.Done():
			m.l.Info("Monitoring stopped")
			return
		case <-time.After(m.interval):
		}
	}
}

// RunCycle performs one fetch-dedup-check pass.
func (m *Monitor) RunCycle(ctx context.Context) {
	defer func() {
		if r := recover(); r != nil {
			m.l.WithField("error", r).Error("Unexpected error while checking mail")
		}
	}()

	m.l.Debug("Checking for new mails")

	fetched := m.fetcher.FetchRecent(m.fetchMax, m.folders...)

	fresh := []*domain.ParsedMessage{}
	for _, msg := range fetched {
		if _, ok := m.seen[msg.Subject]; ok {
			continue
		}
		fresh = append(fresh, msg)
	}

	if len(fresh) == 0 {
		m.l.Info("No new mails")
		return
	}

	m.l.WithField("newmails", len(fresh)).Info("New mails detected")

	summary, err := m.pipeline.CheckMessages(ctx, fresh)
	if err != nil {
		m.l.WithField("error", err).Error("Could not check mails, retrying next cycle")
		return
	}

	// Every processed subject is marked seen, phishing or not, so a
	// later fetch of the same subject never reclassifies it.
	for _, msg := range fresh {
		m.seen[msg.Subject] = struct{}{}
	}

	m.l.WithFields(logrus.Fields{"checked": summary.Checked, "phishing": summary.Phishing}).Info("Finished mail check cycle")
}
