package ml

import (
	"context"
	"errors"
	"fmt"

	"github.com/Wasim1024/spamDetectionApp/internal/core"
)

// ModelName identifies the local model in logs and health output
const ModelName = "count_vectorizer+logistic_regression"

// Model chains a fitted vectorizer and a fitted regression. It implements core.Classifier.
type Model struct {
	vectorizer *CountVectorizer
	regression *LogisticRegression
}

// NewModel pairs a vectorizer with a regression trained on its feature space
func NewModel(vectorizer *CountVectorizer, regression *LogisticRegression) (*Model, error) {
	if vectorizer == nil || regression == nil {
		return nil, errors.New("model requires both a vectorizer and a regression")
	}
	if vectorizer.Dim() != len(regression.Coef) {
		return nil, fmt.Errorf("feature mismatch: vectorizer has %d features, regression expects %d",
			vectorizer.Dim(), len(regression.Coef))
	}
	return &Model{vectorizer: vectorizer, regression: regression}, nil
}

// Predict vectorizes text and returns the class distribution
func (m *Model) Predict(ctx context.Context, text string) (core.Distribution, error) {
	if err := ctx.Err(); err != nil {
		return core.Distribution{}, err
	}
	proba := m.regression.PredictProba(m.vectorizer.Transform(text))
	return core.Distribution{Ham: proba[0], Spam: proba[1]}, nil
}

// Name returns ModelName
func (m *Model) Name() string {
	return ModelName
}

// Vectorizer returns the fitted vectorizer
func (m *Model) Vectorizer() *CountVectorizer {
	return m.vectorizer
}

// Regression returns the fitted regression
func (m *Model) Regression() *LogisticRegression {
	return m.regression
}
