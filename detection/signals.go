// SPDX-License-Identifier: GPL-3.0-or-later
package detection

// FeatureSignals bundles the advisory extractor outputs for one input.
// Computed fresh per call, never cached or persisted on its own, and
// never consumed by the classifier.
type FeatureSignals struct {
	KeywordFrequencies map[string]int  `json:"keyword_frequencies"`
	KeywordScore       int             `json:"keyword_score"`
	Links              *LinkAnalysis   `json:"links"`
	Headers            *HeaderAnalysis `json:"headers"`
	Entropy            float64         `json:"entropy"`
	WordEntropy        float64         `json:"word_entropy"`
}

// ExtractSignals runs all extractors over the raw text. Best effort:
// malformed input degrades to neutral or empty results, never an error.
func ExtractSignals(raw string, keywords []string) *FeatureSignals {
	freqs := KeywordFrequencies(raw, keywords)
	score := 0
	for _, count := range freqs {
		score += count
	}

	return &FeatureSignals{
		KeywordFrequencies: freqs,
		KeywordScore:       score,
		Links:              AnalyzeLinks(raw),
		Headers:            AnalyzeHeaders(raw),
		Entropy:            ShannonEntropy(raw),
		WordEntropy:        WordEntropy(raw),
	}
}
