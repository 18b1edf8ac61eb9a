package core

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"go.uber.org/zap"
)

// InferencePipeline turns raw text into PredictionResults.
// It never touches the history; callers decide what to record.
type InferencePipeline struct {
	classifier Classifier
	cache      PredictionCache
	cacheCfg   CacheSettings
	logger     *zap.Logger
	now        func() time.Time
}

// NewInferencePipeline creates a new inference pipeline
func NewInferencePipeline(
	classifier Classifier,
	cache PredictionCache,
	cacheCfg CacheSettings,
	logger *zap.Logger,
) *InferencePipeline {
	if cache == nil {
		cacheCfg.Enabled = false
	}
	return &InferencePipeline{
		classifier: classifier,
		cache:      cache,
		cacheCfg:   cacheCfg,
		logger:     logger,
		now:        time.Now,
	}
}

// ModelName returns the name of the classifier in use
func (p *InferencePipeline) ModelName() string {
	return p.classifier.Name()
}

// Ready reports ErrModelUnavailable when the model failed to load
func (p *InferencePipeline) Ready() error {
	if r, ok := p.classifier.(interface{ Ready() error }); ok {
		return r.Ready()
	}
	return nil
}

// Classify classifies a single text. Empty text is valid and yields zero counts.
func (p *InferencePipeline) Classify(ctx context.Context, text string) (PredictionResult, error) {
	if err := p.Ready(); err != nil {
		return PredictionResult{}, err
	}

	dist, err := p.predict(ctx, text)
	if err != nil {
		return PredictionResult{}, err
	}

	label, confidence := dist.Argmax()
	length, words := TextStats(text)

	return PredictionResult{
		Text:       text,
		Label:      label,
		Confidence: confidence,
		TextLength: length,
		WordCount:  words,
		Timestamp:  p.now(),
	}, nil
}

// ClassifyBatch classifies every text independently, preserving input order.
// A failing element carries its own error and does not affect the others.
func (p *InferencePipeline) ClassifyBatch(ctx context.Context, texts []string) []BatchItem {
	items := make([]BatchItem, len(texts))
	for i, text := range texts {
		result, err := p.Classify(ctx, text)
		items[i] = BatchItem{Index: i, Result: result, Err: err}
		if err != nil {
			p.logger.Warn("Batch element failed",
				zap.Int("index", i),
				zap.Error(err))
		}
	}
	return items
}

// predict consults the cache, then the classifier, normalising every failure to ErrInference
func (p *InferencePipeline) predict(ctx context.Context, text string) (dist Distribution, err error) {
	var key string
	if p.cacheCfg.Enabled {
		key = p.cacheKey(text)
		if cached, ok := p.cache.Get(ctx, key); ok {
			p.logger.Debug("Prediction cache hit", zap.String("key", key))
			return cached, nil
		}
	}

	defer func() {
		if rec := recover(); rec != nil {
			p.logger.Error("Classifier panicked", zap.Any("panic", rec))
			dist, err = Distribution{}, fmt.Errorf("%w: classifier panic: %v", ErrInference, rec)
		}
	}()

	dist, err = p.classifier.Predict(ctx, text)
	if err != nil {
		if errors.Is(err, ErrModelUnavailable) {
			return Distribution{}, err
		}
		return Distribution{}, fmt.Errorf("%w: %v", ErrInference, err)
	}
	if !dist.Valid() {
		return Distribution{}, fmt.Errorf("%w: invalid distribution ham=%v spam=%v", ErrInference, dist.Ham, dist.Spam)
	}

	if p.cacheCfg.Enabled {
		p.cache.Set(ctx, key, dist, p.cacheCfg.TTL)
	}
	return dist, nil
}

func (p *InferencePipeline) cacheKey(text string) string {
	sum := sha256.Sum256([]byte(p.classifier.Name() + "\x00" + text))
	return hex.EncodeToString(sum[:])
}

// TextStats returns the character count and the number of whitespace-delimited words
func TextStats(text string) (length int, words int) {
	return utf8.RuneCountInString(text), len(strings.Fields(text))
}
