// SPDX-License-Identifier: GPL-3.0-or-later
package smtpconnection

import (
	"fmt"
	"strings"

	"github.com/KarlapudiPrashanthi/phishingemailclassifier/log"

	"github.com/emersion/go-sasl"
	"github.com/emersion/go-smtp"
	"github.com/sirupsen/logrus"
)

// Sender delivers alert mails over SMTP with PLAIN auth. All transport
// failures are logged and reported as false, never raised.
type Sender struct {
	server, user, password string

	l *logrus.Logger
}

func NewSender(server, user, password string) *Sender {
	return &Sender{
		server:   server,
		user:     user,
		password: password,
		l:        log.Logger(log.LOG_SMTP),
	}
}

func (s *Sender) Send(subject, body, to string) bool {
	if s.user == "" || s.password == "" {
		s.l.Info("Smtp credentials missing, skipping send")
		return false
	}
	if to == "" {
		to = s.user
	}
	to = strings.TrimSpace(to)
	if to == "" {
		s.l.Warn("No recipient configured, cannot send mail")
		return false
	}

	msg := strings.NewReader(
		"From: " + s.user + "\r\n" +
			"To: " + to + "\r\n" +
			"Subject: " + subject + "\r\n" +
			"MIME-Version: 1.0\r\n" +
			`Content-Type: text/plain; charset="utf-8"` + "\r\n" +
			"\r\n" +
			body + "\r\n",
	)

	auth := sasl.NewPlainClient("", s.user, s.password)
	err := smtp.SendMail(s.server, auth, s.user, []string{to}, msg)
	if err != nil {
		s.l.WithFields(logrus.Fields{"server": s.server, "to": to, "error": fmt.Sprintf("%v", err)}).Error("Could not send mail")
		return false
	}

	s.l.WithField("to", to).Info("Mail sent")
	return true
}
