package core

import (
	"context"
	"time"
)

// Classifier maps raw text to a probability distribution over {ham, spam}.
// Implementations are immutable after construction and safe for concurrent use.
type Classifier interface {
	// Predict returns the label distribution for text
	Predict(ctx context.Context, text string) (Distribution, error)

	// Name identifies the model backing the classifier
	Name() string
}

// PredictionCache stores label distributions keyed by text fingerprint
type PredictionCache interface {
	// Get retrieves a cached distribution
	Get(ctx context.Context, key string) (Distribution, bool)

	// Set stores a distribution for ttl
	Set(ctx context.Context, key string, dist Distribution, ttl time.Duration)
}

// ModelStore persists fitted model artifacts as named blobs
type ModelStore interface {
	// Load returns the blob stored under name, or ErrArtifactNotFound
	Load(ctx context.Context, name string) ([]byte, error)

	// Save stores blob under name, replacing any previous value
	Save(ctx context.Context, name string, blob []byte) error

	// Close releases the underlying resources
	Close() error
}

// CacheSettings controls the prediction cache in front of the classifier
type CacheSettings struct {
	Enabled bool
	TTL     time.Duration
}
