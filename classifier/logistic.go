// SPDX-License-Identifier: GPL-3.0-or-later
package classifier

import (
	"math"
	"sort"
)

const (
	// MaxIterations bounds the gradient-descent optimization.
	MaxIterations = 500

	learningRate   = 2.0
	regularization = 1e-4
)

// logisticRegression is a binary linear classifier over sparse vectors.
// Training is full-batch gradient descent from zero-initialized weights
// in a fixed sample order, so fitting is fully deterministic.
type logisticRegression struct {
	Weights []float64
	Bias    float64
}

func (lr *logisticRegression) fit(samples []map[int]float64, labels []int, dimensions int) {
	lr.Weights = make([]float64, dimensions)
	lr.Bias = 0

	n := float64(len(samples))
	grad := make([]float64, dimensions)

	for iter := 0; iter < MaxIterations; iter++ {
		for i := range grad {
			grad[i] = 0
		}
		gradBias := 0.0

		for i, x := range samples {
			err := lr.decision(x) - float64(labels[i])
			for idx, val := range x {
				grad[idx] += err * val
			}
			gradBias += err
		}

		for i := range lr.Weights {
			lr.Weights[i] -= learningRate * (grad[i]/n + regularization*lr.Weights[i])
		}
		lr.Bias -= learningRate * gradBias / n
	}
}

// decision returns P(label=1) for one sparse vector. The dot product
// accumulates in ascending index order so repeated evaluations of the
// same vector produce bit-identical results.
func (lr *logisticRegression) decision(x map[int]float64) float64 {
	z := lr.Bias
	for _, idx := range sortedIndices(x) {
		if idx < len(lr.Weights) {
			z += lr.Weights[idx] * x[idx]
		}
	}
	return sigmoid(z)
}

func sortedIndices(x map[int]float64) []int {
	indices := make([]int, 0, len(x))
	for idx := range x {
		indices = append(indices, idx)
	}
	sort.Ints(indices)
	return indices
}

func sigmoid(z float64) float64 {
	return 1 / (1 + math.Exp(-z))
}
