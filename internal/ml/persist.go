package ml

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/Wasim1024/spamDetectionApp/internal/core"
)

// LoadModel reads both artifacts from store and rebuilds the model
func LoadModel(ctx context.Context, store core.ModelStore, vectorizerName, classifierName string) (*Model, error) {
	vecBlob, err := store.Load(ctx, vectorizerName)
	if err != nil {
		return nil, fmt.Errorf("failed to load vectorizer %s: %w", vectorizerName, err)
	}
	vectorizer, err := UnmarshalVectorizer(vecBlob)
	if err != nil {
		return nil, err
	}

	clfBlob, err := store.Load(ctx, classifierName)
	if err != nil {
		return nil, fmt.Errorf("failed to load classifier %s: %w", classifierName, err)
	}
	regression, err := UnmarshalLogisticRegression(clfBlob)
	if err != nil {
		return nil, err
	}

	return NewModel(vectorizer, regression)
}

// SaveModel writes both artifacts of m to store
func SaveModel(ctx context.Context, store core.ModelStore, m *Model, vectorizerName, classifierName string) error {
	vecBlob, err := json.Marshal(m.vectorizer)
	if err != nil {
		return fmt.Errorf("failed to encode vectorizer: %w", err)
	}
	clfBlob, err := json.Marshal(m.regression)
	if err != nil {
		return fmt.Errorf("failed to encode classifier: %w", err)
	}

	if err := store.Save(ctx, vectorizerName, vecBlob); err != nil {
		return fmt.Errorf("failed to save vectorizer %s: %w", vectorizerName, err)
	}
	if err := store.Save(ctx, classifierName, clfBlob); err != nil {
		return fmt.Errorf("failed to save classifier %s: %w", classifierName, err)
	}
	return nil
}
