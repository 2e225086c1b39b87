// SPDX-License-Identifier: GPL-3.0-or-later
package alert

import (
	"fmt"

	"github.com/KarlapudiPrashanthi/phishingemailclassifier/domain"
	"github.com/KarlapudiPrashanthi/phishingemailclassifier/log"
	"github.com/KarlapudiPrashanthi/phishingemailclassifier/mail"

	"github.com/sirupsen/logrus"
)

// Dispatcher composes the fixed-template notification and hands it to
// the mail-send collaborator. Dispatch never raises: disabled alerting,
// a missing recipient or a transport failure all report false.
type Dispatcher struct {
	sender  domain.MailSender
	enabled bool
	to      string

	l *logrus.Logger
}

func NewDispatcher(sender domain.MailSender, enabled bool, to string) *Dispatcher {
	return &Dispatcher{
		sender:  sender,
		enabled: enabled,
		to:      to,
		l:       log.Logger(log.LOG_CHECKER),
	}
}

// NotifyUnsafeMail sends one "unsafe email detected" notification.
func (d *Dispatcher) NotifyUnsafeMail(subject, sender, preview string, probability float64) bool {
	if !d.enabled {
		d.l.Info("Alerting disabled, skipping notification")
		return false
	}

	body := fmt.Sprintf(
		"The phishing checker has detected a potentially unsafe (phishing) email.\r\n"+
			"\r\n"+
			"Subject: %s\r\n"+
			"From: %s\r\n"+
			"Phishing probability: %.1f%%\r\n"+
			"\r\n"+
			"Preview:\r\n%s\r\n"+
			"\r\n"+
			"Do not click links or share personal information. Delete or report if suspicious.",
		mail.Truncate(subject, 200),
		mail.Truncate(sender, 200),
		probability*100,
		mail.Truncate(preview, 500),
	)

	sent := d.sender.Send("Phishing Alert: Unsafe email detected in your inbox", body, d.to)
	if sent {
		d.l.WithFields(logrus.Fields{"subject": mail.ShortSubject(subject), "probability": probability}).Info("Alert dispatched")
	} else {
		d.l.WithFields(logrus.Fields{"subject": mail.ShortSubject(subject), "probability": probability}).Warn("Alert dispatch failed")
	}
	return sent
}
