// SPDX-License-Identifier: GPL-3.0-or-later

//go:generate mockgen -destination=mocks/persistence.go -package=mocks . ResultStore
package domain

import "time"

// ResultRecord is one persisted classification outcome. Records are
// append-only; there are no updates or deletes.
type ResultRecord struct {
	Id          int64
	Preview     string
	Label       int
	Probability float64
	CreatedAt   time.Time
}

type ResultStore interface {
	Append(preview string, label int, probability float64) error
	Recent(limit int) ([]*ResultRecord, error)
	Close() error
}
