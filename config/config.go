// SPDX-License-Identifier: GPL-3.0-or-later
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/BurntSushi/toml"
)

type Config struct {
	Database  string
	ModelPath string

	// TrainingData points at a CSV with named "text" and "label"
	// columns. Only consulted when the model artifact is missing; a
	// missing file is filled with a generated synthetic dataset.
	TrainingData string

	RedisAddr string

	ImapHost string
	User     string
	Password string

	SmtpHost      string
	AlertTo       string
	AlertsEnabled bool

	CheckFolders []string
	FetchMax     int

	CheckIntervalSeconds int

	DisplayThreshold float64
	AlertThreshold   float64

	CacheTTLSeconds int
	MaxEmailLength  int

	SuspiciousKeywords []string

	Loglevel *string
}

func ReadConfig(filename string) (*Config, error) {
	config := &Config{
		Database:             "data/results.db",
		ModelPath:            "data/phishing_model.gob",
		TrainingData:         "data/training_data.csv",
		RedisAddr:            "localhost:6379",
		CheckFolders:         []string{"INBOX", "[Gmail]/Spam"},
		FetchMax:             10,
		CheckIntervalSeconds: 60,
		DisplayThreshold:     0.5,
		AlertThreshold:       0.9,
		CacheTTLSeconds:      3600,
		MaxEmailLength:       100000,
		SuspiciousKeywords:   DefaultKeywords(),
	}

	_, err := toml.DecodeFile(filename, config)
	if err != nil {
		return nil, fmt.Errorf("could not read config file: %w", err)
	}

	err = config.validate()
	if err != nil {
		return nil, err
	}

	return config, nil
}

// DefaultKeywords is the stock suspicious-keyword list used when the
// config file does not provide one.
func DefaultKeywords() []string {
	return []string{
		"urgent", "verify", "account", "suspended", "password", "click here",
		"confirm", "winner", "prize", "free", "limited time", "act now",
		"verify identity", "bank", "ssn", "credit card",
	}
}

func (c *Config) validate() error {
	if err := validateNonEmptyStringField(c.Database, "Database name must not be empty, set to a filename for the sqlite database"); err != nil {
		return err
	}

	if err := validateNonEmptyStringField(c.ModelPath, "ModelPath must not be empty, set to a filename for the model artifact"); err != nil {
		return err
	}

	if len(c.CheckFolders) == 0 {
		return errors.New("CheckFolders must contain at least one mailbox folder")
	}

	if c.FetchMax <= 0 {
		return errors.New("FetchMax must be positive")
	}

	if c.CheckIntervalSeconds <= 0 {
		return errors.New("CheckIntervalSeconds must be positive")
	}

	if c.DisplayThreshold < 0 || c.DisplayThreshold > 1 {
		return errors.New("DisplayThreshold must be in [0, 1]")
	}

	if c.AlertThreshold < 0 || c.AlertThreshold > 1 {
		return errors.New("AlertThreshold must be in [0, 1]")
	}

	if c.AlertThreshold < c.DisplayThreshold {
		return errors.New("AlertThreshold must not be below DisplayThreshold")
	}

	if c.MaxEmailLength <= 0 {
		return errors.New("MaxEmailLength must be positive")
	}

	if c.AlertsEnabled {
		if err := validateNonEmptyStringField(c.SmtpHost, "SmtpHost must not be empty when AlertsEnabled is set"); err != nil {
			return err
		}
	}

	return nil
}

func validateNonEmptyStringField(field string, err string) error {
	if len(strings.TrimSpace(field)) == 0 {
		return errors.New(err)
	}

	return nil
}
