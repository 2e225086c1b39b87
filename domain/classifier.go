// SPDX-License-Identifier: GPL-3.0-or-later

//go:generate mockgen -destination=mocks/classifier.go -package=mocks . TextClassifier
package domain

import "errors"

var (
	// ErrNotReady is returned when predictions are requested before the
	// classifier has been trained or loaded.
	ErrNotReady = errors.New("classifier is not trained or loaded")

	// ErrModelNotFound is returned when loading a model artifact from a
	// path that does not exist. Callers can treat it as "untrained
	// system" and prompt for training instead of failing generically.
	ErrModelNotFound = errors.New("model file not found")

	// ErrEmptyInput rejects classification requests with no text.
	ErrEmptyInput = errors.New("input text is empty")
)

// ClassificationResult is the authoritative output of the classifier.
// Probability is P(label=1), the model's own calibrated value for the
// phishing class. Label is the model argmax, not a thresholded view of
// Probability.
type ClassificationResult struct {
	Label       int     `json:"label"`
	Probability float64 `json:"probability"`
}

type TextClassifier interface {
	PredictSingle(text string) (label int, phishingProbability float64, err error)
}
