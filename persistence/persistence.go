// SPDX-License-Identifier: GPL-3.0-or-later
package persistence

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/KarlapudiPrashanthi/phishingemailclassifier/domain"
	"github.com/KarlapudiPrashanthi/phishingemailclassifier/log"
	"github.com/KarlapudiPrashanthi/phishingemailclassifier/mail"

	"github.com/jmoiron/sqlx"
	_ "github.com/mattn/go-sqlite3"
	migrate "github.com/rubenv/sql-migrate"
	"github.com/sirupsen/logrus"
)

const previewLimit = 500

var migrations = &migrate.MemoryMigrationSource{
	Migrations: []*migrate.Migration{
		{
			Id: "1_create_predictions",
			Up: []string{
				`CREATE TABLE predictions (
					id INTEGER PRIMARY KEY AUTOINCREMENT,
					preview TEXT NOT NULL,
					label INTEGER NOT NULL,
					probability REAL NOT NULL,
					created_at TIMESTAMP NOT NULL
				)`,
			},
			Down: []string{`DROP TABLE predictions`},
		},
	},
}

// Persistence is the append-only store of classification results.
type Persistence struct {
	db *sqlx.DB
	l  *logrus.Logger
}

func NewPersistence(datasource string) (*Persistence, error) {
	if dir := filepath.Dir(datasource); dir != "." && datasource != ":memory:" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("could not create database directory: %w", err)
		}
	}

	db, err := sqlx.Connect("sqlite3", datasource)
	if err != nil {
		return nil, fmt.Errorf("could not open db: %w", err)
	}
	db.SetMaxOpenConns(1)

	l := log.Logger(log.LOG_PERSISTENCE)
	l.WithField("file", datasource).Info("Connected")

	_, err = db.Exec(`PRAGMA journal_mode=WAL`)
	if err != nil {
		return nil, fmt.Errorf("could not set journal mode: %w", err)
	}
	_, err = db.Exec(`PRAGMA synchronous=normal`)
	if err != nil {
		return nil, fmt.Errorf("could not set synchronous mode: %w", err)
	}

	appliedMigrations, err := migrate.Exec(db.DB, "sqlite3", migrations, migrate.Up)
	if err != nil {
		return nil, fmt.Errorf("could not migrate to newest version: %w", err)
	}

	l.WithField("migrations", appliedMigrations).Debug("Executed migrations")

	return &Persistence{
		db: db,
		l:  l,
	}, nil
}

func (p *Persistence) Close() error {
	err := p.db.Close()
	if err != nil {
		return fmt.Errorf("could not close db: %w", err)
	}
	p.l.Info("Disconnected")
	return nil
}

// Append inserts one result record. Previews are capped at 500 chars;
// records are never updated or deleted.
func (p *Persistence) Append(preview string, label int, probability float64) error {
	preview = mail.Truncate(preview, previewLimit)

	_, err := p.db.Exec(
		"INSERT INTO predictions (preview, label, probability, created_at) VALUES (?, ?, ?, ?)",
		preview,
		label,
		probability,
		time.Now().UTC(),
	)
	if err != nil {
		return fmt.Errorf("could not save result: %w", err)
	}

	p.l.WithFields(logrus.Fields{"label": label, "probability": probability}).Debug("Persisted result")
	return nil
}

// Recent returns up to limit records, newest first.
func (p *Persistence) Recent(limit int) ([]*domain.ResultRecord, error) {
	dbRecords := []struct {
		Id          int64     `db:"id"`
		Preview     string    `db:"preview"`
		Label       int       `db:"label"`
		Probability float64   `db:"probability"`
		CreatedAt   time.Time `db:"created_at"`
	}{}

	err := p.db.Select(
		&dbRecords,
		`SELECT id, preview, label, probability, created_at FROM predictions ORDER BY id DESC LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("could not query db: %w", err)
	}

	records := []*domain.ResultRecord{}
	for _, r := range dbRecords {
		records = append(
			records,
			&domain.ResultRecord{
				Id:          r.Id,
				Preview:     r.Preview,
				Label:       r.Label,
				Probability: r.Probability,
				CreatedAt:   r.CreatedAt,
			},
		)
	}

	return records, nil
}
