// SPDX-License-Identifier: GPL-3.0-or-later
package classifier

import (
	"encoding/csv"
	"fmt"
	"math/rand"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/KarlapudiPrashanthi/phishingemailclassifier/domain"
)

// Fixed generation seed; a regenerated dataset is identical run to run.
const syntheticSeed = 42

type mailTemplate struct {
	subject, body string
}

var legitimateTemplates = []mailTemplate{
	{"Meeting tomorrow", "Hi,\n\nReminder: we have a meeting tomorrow at 10am in conference room B.\n\nBest regards"},
	{"Project update", "Hello,\n\nHere is the weekly project update. All tasks are on track.\n\nRegards"},
	{"Invoice attached", "Please find the attached invoice for your records. Let me know if you have questions."},
	{"Your subscription", "Your subscription to our service has been renewed. Thank you for your business."},
}

var phishingTemplates = []mailTemplate{
	{"Urgent: Verify your account", "Your account has been suspended. Click here to verify your identity immediately or you will lose access."},
	{"You have won a prize", "Congratulations! You have been selected to receive a free prize. Confirm your details now to claim."},
	{"Password reset required", "We detected unusual activity. Reset your password by clicking the link below within 24 hours."},
	{"Limited time offer", "Act now! This offer expires soon. Enter your credit card to claim your reward."},
}

// GenerateSyntheticDataset builds a balanced labeled corpus from the
// stock templates, half legitimate and half phishing, with one to three
// suspicious keywords injected into each phishing body. When path is
// non-empty the dataset is also written as a text/label CSV so later
// runs can reload it.
func GenerateSyntheticDataset(samples int, keywords []string, path string) ([]string, []int, error) {
	if samples <= 0 {
		return nil, nil, fmt.Errorf("sample count must be positive, got %d", samples)
	}

	rng := rand.New(rand.NewSource(syntheticSeed))

	texts := make([]string, 0, samples)
	labels := make([]int, 0, samples)

	legit := samples / 2
	for i := 0; i < legit; i++ {
		tpl := legitimateTemplates[rng.Intn(len(legitimateTemplates))]
		texts = append(texts, domain.NewParsedMessage(tpl.subject, tpl.body, "noreply@company.com").RawText)
		labels = append(labels, 0)
	}
	for i := legit; i < samples; i++ {
		tpl := phishingTemplates[rng.Intn(len(phishingTemplates))]
		body := injectKeywords(rng, tpl.body, keywords, 1+rng.Intn(3))
		texts = append(texts, domain.NewParsedMessage(tpl.subject, body, "alert@secure-verify.com").RawText)
		labels = append(labels, 1)
	}

	rng.Shuffle(samples, func(i, j int) {
		texts[i], texts[j] = texts[j], texts[i]
		labels[i], labels[j] = labels[j], labels[i]
	})

	if path != "" {
		if err := writeTrainingCSV(path, texts, labels); err != nil {
			return nil, nil, err
		}
	}

	return texts, labels, nil
}

// injectKeywords inserts count keywords at random word positions.
func injectKeywords(rng *rand.Rand, text string, keywords []string, count int) string {
	if len(keywords) == 0 {
		return text
	}
	if count > len(keywords) {
		count = len(keywords)
	}

	words := strings.Split(text, " ")
	for i := 0; i < count; i++ {
		kw := keywords[rng.Intn(len(keywords))]
		pos := rng.Intn(len(words) + 1)
		words = append(words[:pos], append([]string{kw}, words[pos:]...)...)
	}
	return strings.Join(words, " ")
}

func writeTrainingCSV(path string, texts []string, labels []int) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("could not create training data directory: %w", err)
		}
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("could not create training data file: %w", err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write([]string{"text", "label"}); err != nil {
		return fmt.Errorf("could not write training data: %w", err)
	}
	for i, text := range texts {
		if err := w.Write([]string{text, strconv.Itoa(labels[i])}); err != nil {
			return fmt.Errorf("could not write training data: %w", err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return fmt.Errorf("could not write training data: %w", err)
	}

	return nil
}
