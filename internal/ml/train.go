package ml

import (
	"context"
	"fmt"
	"math/rand"
	"strings"

	"github.com/Wasim1024/spamDetectionApp/internal/core"
)

// TrainOptions are the hyperparameters for Train
type TrainOptions struct {
	MaxFeatures int
	Fit         FitOptions
}

// DefaultTrainOptions returns the defaults used by the service
func DefaultTrainOptions() TrainOptions {
	return TrainOptions{MaxFeatures: 5000, Fit: DefaultFitOptions()}
}

// Train fits a vectorizer and a regression on samples
func Train(samples []Sample, opts TrainOptions) (*Model, error) {
	docs := make([]string, len(samples))
	labels := make([]int, len(samples))
	for i, s := range samples {
		if !s.Label.Valid() {
			return nil, fmt.Errorf("sample %d has unknown label %q", i, s.Label)
		}
		docs[i] = s.Text
		labels[i] = s.Label.Int()
	}

	vectorizer := NewCountVectorizer(opts.MaxFeatures)
	if err := vectorizer.Fit(docs); err != nil {
		return nil, fmt.Errorf("failed to fit vectorizer: %w", err)
	}

	x := make([]SparseVector, len(docs))
	for i, doc := range docs {
		x[i] = vectorizer.Transform(doc)
	}

	regression, err := FitLogisticRegression(x, labels, vectorizer.Dim(), opts.Fit)
	if err != nil {
		return nil, fmt.Errorf("failed to fit logistic regression: %w", err)
	}

	return NewModel(vectorizer, regression)
}

// Split partitions samples into train and test sets, stratified by label.
// The same seed always yields the same split.
func Split(samples []Sample, testFraction float64, seed int64) (train, test []Sample) {
	rng := rand.New(rand.NewSource(seed))
	for _, label := range []core.Label{core.LabelHam, core.LabelSpam} {
		var group []Sample
		for _, s := range samples {
			if s.Label == label {
				group = append(group, s)
			}
		}
		rng.Shuffle(len(group), func(i, j int) { group[i], group[j] = group[j], group[i] })

		nTest := int(float64(len(group))*testFraction + 0.5)
		if nTest >= len(group) && len(group) > 0 {
			nTest = len(group) - 1
		}
		test = append(test, group[:nTest]...)
		train = append(train, group[nTest:]...)
	}
	return train, test
}

// ClassMetrics are the per-label precision, recall and F1 of an evaluation
type ClassMetrics struct {
	Precision float64
	Recall    float64
	F1        float64
	Support   int
}

// Report summarises a model evaluation
type Report struct {
	Accuracy float64
	Classes  map[core.Label]ClassMetrics
	Total    int
}

// Evaluate scores classifier against labeled samples
func Evaluate(ctx context.Context, classifier core.Classifier, samples []Sample) (*Report, error) {
	type tally struct{ tp, fp, fn, support int }
	tallies := map[core.Label]*tally{core.LabelHam: {}, core.LabelSpam: {}}
	correct := 0

	for _, s := range samples {
		dist, err := classifier.Predict(ctx, s.Text)
		if err != nil {
			return nil, fmt.Errorf("failed to classify %q: %w", s.Text, err)
		}
		predicted, _ := dist.Argmax()
		tallies[s.Label].support++
		if predicted == s.Label {
			correct++
			tallies[s.Label].tp++
		} else {
			tallies[predicted].fp++
			tallies[s.Label].fn++
		}
	}

	report := &Report{Classes: make(map[core.Label]ClassMetrics), Total: len(samples)}
	if len(samples) > 0 {
		report.Accuracy = float64(correct) / float64(len(samples))
	}
	for label, t := range tallies {
		m := ClassMetrics{
			Precision: ratio(t.tp, t.tp+t.fp),
			Recall:    ratio(t.tp, t.tp+t.fn),
			Support:   t.support,
		}
		if m.Precision+m.Recall > 0 {
			m.F1 = 2 * m.Precision * m.Recall / (m.Precision + m.Recall)
		}
		report.Classes[label] = m
	}
	return report, nil
}

// String renders the report as a small table
func (r *Report) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%-8s %9s %9s %9s %9s\n", "", "precision", "recall", "f1-score", "support")
	for _, label := range []core.Label{core.LabelHam, core.LabelSpam} {
		m := r.Classes[label]
		fmt.Fprintf(&b, "%-8s %9.2f %9.2f %9.2f %9d\n", label, m.Precision, m.Recall, m.F1, m.Support)
	}
	fmt.Fprintf(&b, "\naccuracy %.3f (%d samples)\n", r.Accuracy, r.Total)
	return b.String()
}

func ratio(num, den int) float64 {
	if den == 0 {
		return 0
	}
	return float64(num) / float64(den)
}
