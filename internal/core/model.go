package core

import (
	"math"
	"time"
)

// Label is the class assigned to a text
type Label string

const (
	// LabelHam marks legitimate text
	LabelHam Label = "ham"
	// LabelSpam marks unsolicited text
	LabelSpam Label = "spam"
)

// Int returns the numeric class used on the wire (0 = ham, 1 = spam)
func (l Label) Int() int {
	if l == LabelSpam {
		return 1
	}
	return 0
}

// Valid reports whether l is one of the known labels
func (l Label) Valid() bool {
	return l == LabelHam || l == LabelSpam
}

// Distribution is a probability distribution over {ham, spam}
type Distribution struct {
	Ham  float64
	Spam float64
}

// Argmax returns the most probable label and its probability.
// Ties resolve to ham.
func (d Distribution) Argmax() (Label, float64) {
	if d.Spam > d.Ham {
		return LabelSpam, d.Spam
	}
	return LabelHam, d.Ham
}

// Valid reports whether both probabilities are finite, lie in [0,1] and sum to one
func (d Distribution) Valid() bool {
	for _, p := range []float64{d.Ham, d.Spam} {
		if math.IsNaN(p) || p < 0 || p > 1 {
			return false
		}
	}
	return math.Abs(d.Ham+d.Spam-1) < 1e-6
}

// PredictionResult is the outcome of classifying one text
type PredictionResult struct {
	Text       string
	Label      Label
	Confidence float64
	TextLength int
	WordCount  int
	Timestamp  time.Time
}

// IsSpam reports whether the text was classified as spam
func (r PredictionResult) IsSpam() bool {
	return r.Label == LabelSpam
}

// BatchItem is one element of a batch classification, in input order.
// Exactly one of Result and Err is meaningful.
type BatchItem struct {
	Index  int
	Result PredictionResult
	Err    error
}

// AnalyticsSnapshot summarises the prediction history at one point in time
type AnalyticsSnapshot struct {
	Total             int
	SpamCount         int
	HamCount          int
	SpamPercentage    float64
	AverageConfidence float64
	AverageTextLength float64
	AverageWordCount  float64
	Recent            []PredictionResult
}
