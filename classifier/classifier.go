// SPDX-License-Identifier: GPL-3.0-or-later

// Package classifier implements the probabilistic phishing classifier:
// a term-weighting vectorizer composed with logistic regression,
// persisted as a single opaque artifact.
package classifier

import (
	"encoding/gob"
	"fmt"
	"os"
	"path/filepath"
	"sync/atomic"

	"github.com/KarlapudiPrashanthi/phishingemailclassifier/detection"
	"github.com/KarlapudiPrashanthi/phishingemailclassifier/domain"
	"github.com/KarlapudiPrashanthi/phishingemailclassifier/log"
	"github.com/KarlapudiPrashanthi/phishingemailclassifier/mail"

	"github.com/sirupsen/logrus"
)

// fittedModel is the complete trained pipeline. Published as one value
// so retraining swaps it atomically and in-flight predictions never see
// a partially-updated model.
type fittedModel struct {
	Vectorizer *tfidfVectorizer
	Regression *logisticRegression
}

type PhishingClassifier struct {
	modelPath string
	maxLength int

	model atomic.Pointer[fittedModel]

	l *logrus.Logger
}

// New returns an untrained classifier. Predictions fail with
// domain.ErrNotReady until Fit or Load has succeeded.
func New(modelPath string, maxLength int) *PhishingClassifier {
	return &PhishingClassifier{
		modelPath: modelPath,
		maxLength: maxLength,
		l:         log.Logger(log.LOG_CLASSIFIER),
	}
}

func (c *PhishingClassifier) Ready() bool {
	return c.model.Load() != nil
}

// prepare applies the identical normalization used at both train and
// predict time: clean, then truncate to the configured maximum length
// keeping the leading slice.
func (c *PhishingClassifier) prepare(text string) string {
	cleaned := detection.CleanText(text)
	if c.maxLength > 0 {
		return mail.Truncate(cleaned, c.maxLength)
	}
	return cleaned
}

// Fit trains the vectorizer and regression on texts with binary labels
// (0=legitimate, 1=phishing) and publishes the new model.
func (c *PhishingClassifier) Fit(texts []string, labels []int) error {
	if len(texts) != len(labels) {
		return fmt.Errorf("got %d texts but %d labels", len(texts), len(labels))
	}
	for i, label := range labels {
		if label != 0 && label != 1 {
			return fmt.Errorf("label at index %d is %d, must be 0 or 1", i, label)
		}
	}

	cleaned := make([]string, len(texts))
	for i, t := range texts {
		cleaned[i] = c.prepare(t)
	}

	vectorizer := &tfidfVectorizer{}
	vectorizer.fit(cleaned)

	samples := make([]map[int]float64, len(cleaned))
	for i, t := range cleaned {
		samples[i] = vectorizer.transform(t)
	}

	regression := &logisticRegression{}
	regression.fit(samples, labels, vectorizer.dimensions())

	c.model.Store(&fittedModel{Vectorizer: vectorizer, Regression: regression})
	c.l.WithFields(logrus.Fields{"samples": len(texts), "features": vectorizer.dimensions()}).Info("Model fitted")
	return nil
}

// Predict returns the argmax label for each input text.
func (c *PhishingClassifier) Predict(texts []string) ([]int, error) {
	probas, err := c.PredictProba(texts)
	if err != nil {
		return nil, err
	}

	labels := make([]int, len(probas))
	for i, p := range probas {
		if p[1] > p[0] {
			labels[i] = 1
		}
	}
	return labels, nil
}

// PredictProba returns [P(legitimate), P(phishing)] for each input.
func (c *PhishingClassifier) PredictProba(texts []string) ([][2]float64, error) {
	m := c.model.Load()
	if m == nil {
		return nil, domain.ErrNotReady
	}

	probas := make([][2]float64, len(texts))
	for i, t := range texts {
		pPhish := m.Regression.decision(m.Vectorizer.transform(c.prepare(t)))
		probas[i] = [2]float64{1 - pPhish, pPhish}
	}
	return probas, nil
}

// PredictSingle classifies one text. The returned probability is
// P(phishing), the authoritative value consumed by the cache, the alert
// policy and the result store.
func (c *PhishingClassifier) PredictSingle(text string) (int, float64, error) {
	probas, err := c.PredictProba([]string{text})
	if err != nil {
		return 0, 0, err
	}

	label := 0
	if probas[0][1] > probas[0][0] {
		label = 1
	}
	return label, probas[0][1], nil
}

// Save serializes the fitted pipeline to one file. An empty path uses
// the configured model path.
func (c *PhishingClassifier) Save(path string) error {
	m := c.model.Load()
	if m == nil {
		return domain.ErrNotReady
	}
	if path == "" {
		path = c.modelPath
	}

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("could not create model directory: %w", err)
		}
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("could not create model file: %w", err)
	}
	defer f.Close()

	if err := gob.NewEncoder(f).Encode(m); err != nil {
		return fmt.Errorf("could not encode model: %w", err)
	}

	c.l.WithField("path", path).Info("Model saved")
	return nil
}

// Load deserializes a previously saved pipeline. A missing file is
// reported as domain.ErrModelNotFound so callers can distinguish an
// untrained system from a corrupt artifact.
func (c *PhishingClassifier) Load(path string) error {
	if path == "" {
		path = c.modelPath
	}

	f, err := os.Open(path)
	if os.IsNotExist(err) {
		return fmt.Errorf("%w: %s", domain.ErrModelNotFound, path)
	}
	if err != nil {
		return fmt.Errorf("could not open model file: %w", err)
	}
	defer f.Close()

	m := &fittedModel{}
	if err := gob.NewDecoder(f).Decode(m); err != nil {
		return fmt.Errorf("could not decode model: %w", err)
	}
	if m.Vectorizer == nil || m.Regression == nil {
		return fmt.Errorf("model file %s is incomplete", path)
	}

	c.model.Store(m)
	c.l.WithField("path", path).Info("Model loaded")
	return nil
}
