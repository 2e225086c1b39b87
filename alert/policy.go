// SPDX-License-Identifier: GPL-3.0-or-later

// Package alert decides when a classification becomes a human-facing
// notification and builds/dispatches the notification itself. Alert
// firing keys on the probability alone, never on the model label: the
// label is the model argmax and can in principle disagree with a pure
// threshold view at the margin.
package alert

import (
	"math"

	"github.com/KarlapudiPrashanthi/phishingemailclassifier/mail"
)

const alertPreviewLimit = 300

// Policy holds the two independent probability cutoffs: the display
// threshold behind the human-facing label and the strictly higher
// alert threshold gating notifications.
type Policy struct {
	DisplayThreshold float64
	AlertThreshold   float64
}

// ShouldAlert reports whether the probability warrants a notification.
func (p Policy) ShouldAlert(phishingProbability float64) bool {
	return phishingProbability >= p.AlertThreshold
}

// Payload is the alert body handed to consumers. Pure data, no side
// effects.
type Payload struct {
	Triggered    bool    `json:"triggered"`
	Reason       string  `json:"reason"`
	Probability  float64 `json:"probability"`
	Threshold    float64 `json:"threshold"`
	EmailPreview string  `json:"email_preview"`
}

// CreateAlert builds an alert payload for a high-confidence phishing
// classification.
func (p Policy) CreateAlert(emailText string, probability float64) *Payload {
	preview := mail.Truncate(emailText, alertPreviewLimit)

	return &Payload{
		Triggered:    true,
		Reason:       "phishing_probability_above_threshold",
		Probability:  math.Round(probability*10000) / 10000,
		Threshold:    p.AlertThreshold,
		EmailPreview: preview,
	}
}
