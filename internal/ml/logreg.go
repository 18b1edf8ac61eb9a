package ml

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
)

// LogisticRegression is a binary L2-regularised logistic regression over sparse count vectors.
// Class 0 is ham and class 1 is spam.
type LogisticRegression struct {
	Coef      []float64 `json:"coef"`
	Intercept float64   `json:"intercept"`
	Classes   []string  `json:"classes"`
}

// FitOptions controls gradient descent
type FitOptions struct {
	Iterations   int
	LearningRate float64
	// C is the inverse regularisation strength
	C float64
}

// DefaultFitOptions mirrors the service's training defaults
func DefaultFitOptions() FitOptions {
	return FitOptions{Iterations: 1000, LearningRate: 0.5, C: 1.0}
}

// FitLogisticRegression fits weights with full-batch gradient descent from zero.
// The result is deterministic for a given input.
func FitLogisticRegression(x []SparseVector, y []int, dim int, opts FitOptions) (*LogisticRegression, error) {
	if len(x) == 0 {
		return nil, errors.New("no training samples")
	}
	if len(x) != len(y) {
		return nil, fmt.Errorf("sample count mismatch: %d vectors, %d labels", len(x), len(y))
	}
	if opts.Iterations <= 0 || opts.LearningRate <= 0 || opts.C <= 0 {
		return nil, fmt.Errorf("invalid fit options: %+v", opts)
	}
	var positives int
	for _, label := range y {
		if label != 0 && label != 1 {
			return nil, fmt.Errorf("label %d is not binary", label)
		}
		positives += label
	}
	if positives == 0 || positives == len(y) {
		return nil, errors.New("training data must contain both classes")
	}

	n := float64(len(x))
	lambda := 1 / (opts.C * n)
	w := make([]float64, dim)
	grad := make([]float64, dim)
	var b float64

	for iter := 0; iter < opts.Iterations; iter++ {
		for j := range grad {
			grad[j] = lambda * w[j]
		}
		var gradB float64
		for i, vec := range x {
			residual := (sigmoid(dot(w, vec)+b) - float64(y[i])) / n
			for k, idx := range vec.Indices {
				grad[idx] += residual * vec.Values[k]
			}
			gradB += residual
		}
		for j := range w {
			w[j] -= opts.LearningRate * grad[j]
		}
		b -= opts.LearningRate * gradB
	}

	return &LogisticRegression{Coef: w, Intercept: b, Classes: []string{"ham", "spam"}}, nil
}

// PredictProba returns [P(ham), P(spam)]
func (m *LogisticRegression) PredictProba(vec SparseVector) [2]float64 {
	p := sigmoid(dot(m.Coef, vec) + m.Intercept)
	return [2]float64{1 - p, p}
}

// Predict returns 1 for spam and 0 for ham
func (m *LogisticRegression) Predict(vec SparseVector) int {
	if proba := m.PredictProba(vec); proba[1] > proba[0] {
		return 1
	}
	return 0
}

// UnmarshalLogisticRegression decodes and validates persisted weights
func UnmarshalLogisticRegression(data []byte) (*LogisticRegression, error) {
	var m LogisticRegression
	if err := json.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("failed to decode logistic regression: %w", err)
	}
	if len(m.Coef) == 0 {
		return nil, errors.New("logistic regression has no coefficients")
	}
	for _, c := range append([]float64{m.Intercept}, m.Coef...) {
		if math.IsNaN(c) || math.IsInf(c, 0) {
			return nil, errors.New("logistic regression has non-finite weights")
		}
	}
	return &m, nil
}

func dot(w []float64, vec SparseVector) float64 {
	var s float64
	for k, idx := range vec.Indices {
		if idx < len(w) {
			s += w[idx] * vec.Values[k]
		}
	}
	return s
}

func sigmoid(z float64) float64 {
	if z >= 0 {
		return 1 / (1 + math.Exp(-z))
	}
	e := math.Exp(z)
	return e / (1 + e)
}
