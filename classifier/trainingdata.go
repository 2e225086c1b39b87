// SPDX-License-Identifier: GPL-3.0-or-later
package classifier

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

// LoadTrainingCSV reads a training table with named free-text and
// binary-label columns. A missing column is a configuration error, not
// a recoverable condition.
func LoadTrainingCSV(path, textColumn, labelColumn string) ([]string, []int, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, fmt.Errorf("could not open training data: %w", err)
	}
	defer f.Close()

	reader := csv.NewReader(f)
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err != nil {
		return nil, nil, fmt.Errorf("could not read training data header: %w", err)
	}

	textIdx, labelIdx := -1, -1
	for i, name := range header {
		switch strings.TrimSpace(strings.ToLower(name)) {
		case strings.ToLower(textColumn):
			textIdx = i
		case strings.ToLower(labelColumn):
			labelIdx = i
		}
	}
	if textIdx < 0 {
		return nil, nil, fmt.Errorf("training data is missing required column %q", textColumn)
	}
	if labelIdx < 0 {
		return nil, nil, fmt.Errorf("training data is missing required column %q", labelColumn)
	}

	texts := []string{}
	labels := []int{}
	line := 1
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, nil, fmt.Errorf("could not parse training data: %w", err)
		}
		line++
		if textIdx >= len(record) || labelIdx >= len(record) {
			return nil, nil, fmt.Errorf("training data row %d has too few columns", line)
		}

		label, err := strconv.Atoi(strings.TrimSpace(record[labelIdx]))
		if err != nil || (label != 0 && label != 1) {
			return nil, nil, fmt.Errorf("training data row %d has invalid label %q, must be 0 or 1", line, record[labelIdx])
		}

		texts = append(texts, record[textIdx])
		labels = append(labels, label)
	}

	if len(texts) == 0 {
		return nil, nil, fmt.Errorf("training data %s contains no rows", path)
	}

	return texts, labels, nil
}
