// SPDX-License-Identifier: GPL-3.0-or-later

// Package checker is the classification pipeline: normalize-classify,
// memoize, persist, decide on alerting. The monitoring loop drives it
// directly; an external HTTP layer can consume the same Response shape.
package checker

import (
	"context"
	"strings"
	"time"

	"github.com/KarlapudiPrashanthi/phishingemailclassifier/alert"
	"github.com/KarlapudiPrashanthi/phishingemailclassifier/detection"
	"github.com/KarlapudiPrashanthi/phishingemailclassifier/domain"
	"github.com/KarlapudiPrashanthi/phishingemailclassifier/log"
	"github.com/KarlapudiPrashanthi/phishingemailclassifier/mail"

	"github.com/sirupsen/logrus"
)

// CacheNamespace prefixes every classification cache key.
const CacheNamespace = "classify"

const storedPreviewLimit = 500

type Service struct {
	classifier domain.TextClassifier
	cache      domain.ResultCache
	store      domain.ResultStore
	dispatcher *alert.Dispatcher
	policy     alert.Policy
	keywords   []string
	cacheTTL   time.Duration

	l *logrus.Logger
}

func NewService(
	classifier domain.TextClassifier,
	cache domain.ResultCache,
	store domain.ResultStore,
	dispatcher *alert.Dispatcher,
	policy alert.Policy,
	keywords []string,
	cacheTTL time.Duration,
) *Service {
	return &Service{
		classifier: classifier,
		cache:      cache,
		store:      store,
		dispatcher: dispatcher,
		policy:     policy,
		keywords:   keywords,
		cacheTTL:   cacheTTL,
		l:          log.Logger(log.LOG_CHECKER),
	}
}

// Response is the classification output consumed by the external HTTP
// layer. Label is the model argmax; Threshold is the display cutoff the
// UI applies to the probability. The two are reported independently and
// can disagree at the margin.
type Response struct {
	Label               int                       `json:"label"`
	LabelName           string                    `json:"label_name"`
	PhishingProbability float64                   `json:"phishing_probability"`
	Threshold           float64                   `json:"threshold"`
	Alert               *alert.Payload            `json:"alert,omitempty"`
	Signals             *detection.FeatureSignals `json:"signals,omitempty"`
}

// Classify runs the pipeline on one free-text input: cache lookup,
// classification on miss, cache fill, result record append and alert
// payload when the probability clears the alert threshold. The advisory
// signals ride along for explanation only.
func (s *Service) Classify(ctx context.Context, text string) (*Response, error) {
	if strings.TrimSpace(text) == "" {
		return nil, domain.ErrEmptyInput
	}

	result := s.cache.Get(ctx, CacheNamespace, text)
	if result == nil {
		label, probability, err := s.classifier.PredictSingle(text)
		if err != nil {
			return nil, err
		}
		result = &domain.ClassificationResult{Label: label, Probability: probability}
		s.cache.Put(ctx, CacheNamespace, text, result, s.cacheTTL)
	} else {
		s.l.Debug("Classification served from cache")
	}

	err := s.store.Append(mail.Preview(text, storedPreviewLimit), result.Label, result.Probability)
	if err != nil {
		s.l.WithField("error", err).Warn("Could not persist result record")
	}

	response := &Response{
		Label:               result.Label,
		LabelName:           labelName(result.Label),
		PhishingProbability: result.Probability,
		Threshold:           s.policy.DisplayThreshold,
		Signals:             detection.ExtractSignals(text, s.keywords),
	}
	if s.policy.ShouldAlert(result.Probability) {
		response.Alert = s.policy.CreateAlert(text, result.Probability)
	}

	return response, nil
}

// MessageResult is the per-message outcome of one monitoring pass.
type MessageResult struct {
	Subject     string  `json:"subject"`
	From        string  `json:"from"`
	Label       int     `json:"label"`
	Probability float64 `json:"probability"`
	IsPhishing  bool    `json:"is_phishing"`
	AlertSent   bool    `json:"alert_sent"`
}

type Summary struct {
	Checked  int
	Phishing int
	Results  []*MessageResult
}

// CheckMessages classifies fetched mails and drives alerting. A mail is
// unsafe when the model label is 1 or the probability meets the display
// threshold, a deliberately broader condition than the label alone.
// Every scanned mail gets a result record regardless of outcome.
func (s *Service) CheckMessages(ctx context.Context, messages []*domain.ParsedMessage) (*Summary, error) {
	summary := &Summary{Results: []*MessageResult{}}

	for _, m := range messages {
		label, probability, err := s.classifier.PredictSingle(m.RawText)
		if err != nil {
			return summary, err
		}

		isPhishing := label == 1 || probability >= s.policy.DisplayThreshold

		err = s.store.Append(mail.Preview(m.RawText, storedPreviewLimit), label, probability)
		if err != nil {
			s.l.WithField("error", err).Warn("Could not persist result record")
		}

		alertSent := false
		if isPhishing {
			summary.Phishing++
			if s.policy.ShouldAlert(probability) {
				alertSent = s.dispatcher.NotifyUnsafeMail(m.Subject, m.Sender, mail.Preview(m.RawText, storedPreviewLimit), probability)
			}
		}

		summary.Checked++
		summary.Results = append(
			summary.Results,
			&MessageResult{
				Subject:     m.Subject,
				From:        m.Sender,
				Label:       label,
				Probability: probability,
				IsPhishing:  isPhishing,
				AlertSent:   alertSent,
			},
		)

		s.l.WithFields(logrus.Fields{"subject": mail.ShortSubject(m.Subject), "isPhishing": isPhishing, "probability": probability}).Debug("Checked mail")
	}

	s.l.WithFields(logrus.Fields{"checked": summary.Checked, "phishing": summary.Phishing}).Info("Checked mails")
	return summary, nil
}

func labelName(label int) string {
	if label == 1 {
		return "phishing"
	}
	return "legitimate"
}
