package core

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type fakeClassifier struct {
	PredictFunc func(ctx context.Context, text string) (Distribution, error)
	calls       int
	mu          sync.Mutex
}

func (f *fakeClassifier) Predict(ctx context.Context, text string) (Distribution, error) {
	f.mu.Lock()
	f.calls++
	f.mu.Unlock()
	return f.PredictFunc(ctx, text)
}

func (f *fakeClassifier) Name() string { return "fake" }

type mapCache struct {
	mu      sync.Mutex
	entries map[string]Distribution
}

func (m *mapCache) Get(_ context.Context, key string) (Distribution, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	d, ok := m.entries[key]
	return d, ok
}

func (m *mapCache) Set(_ context.Context, key string, d Distribution, _ time.Duration) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.entries[key] = d
}

func fixed(d Distribution) *fakeClassifier {
	return &fakeClassifier{PredictFunc: func(context.Context, string) (Distribution, error) { return d, nil }}
}

func newPipeline(c Classifier) *InferencePipeline {
	return NewInferencePipeline(c, nil, CacheSettings{}, zap.NewNop())
}

func TestClassifyShapesResult(t *testing.T) {
	p := newPipeline(fixed(Distribution{Ham: 0.2, Spam: 0.8}))
	stamp := time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC)
	p.now = func() time.Time { return stamp }

	res, err := p.Classify(context.Background(), "  win  a prize\tnow ")
	require.NoError(t, err)
	assert.Equal(t, LabelSpam, res.Label)
	assert.InDelta(t, 0.8, res.Confidence, 1e-9)
	assert.Equal(t, 19, res.TextLength)
	assert.Equal(t, 4, res.WordCount)
	assert.Equal(t, stamp, res.Timestamp)
	assert.Equal(t, "  win  a prize\tnow ", res.Text)
}

func TestClassifyEmptyText(t *testing.T) {
	p := newPipeline(fixed(Distribution{Ham: 0.6, Spam: 0.4}))

	res, err := p.Classify(context.Background(), "")
	require.NoError(t, err)
	assert.Equal(t, LabelHam, res.Label)
	assert.Zero(t, res.TextLength)
	assert.Zero(t, res.WordCount)
}

func TestTextStatsCountsRunes(t *testing.T) {
	length, words := TextStats("héllo wörld ✓")
	assert.Equal(t, 13, length)
	assert.Equal(t, 3, words)
}

func TestClassifyModelUnavailable(t *testing.T) {
	p := newPipeline(NewUnavailableClassifier(errors.New("missing blob")))

	_, err := p.Classify(context.Background(), "hello")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrModelUnavailable)
	assert.Contains(t, err.Error(), "missing blob")
	assert.ErrorIs(t, p.Ready(), ErrModelUnavailable)
}

func TestClassifyWrapsClassifierFailure(t *testing.T) {
	p := newPipeline(&fakeClassifier{PredictFunc: func(context.Context, string) (Distribution, error) {
		return Distribution{}, errors.New("boom")
	}})

	_, err := p.Classify(context.Background(), "hello")
	assert.ErrorIs(t, err, ErrInference)
}

func TestClassifyRecoversPanic(t *testing.T) {
	p := newPipeline(&fakeClassifier{PredictFunc: func(context.Context, string) (Distribution, error) {
		panic("index out of range")
	}})

	_, err := p.Classify(context.Background(), "hello")
	assert.ErrorIs(t, err, ErrInference)
}

func TestClassifyRejectsInvalidDistribution(t *testing.T) {
	p := newPipeline(fixed(Distribution{Ham: 0.9, Spam: 0.9}))

	_, err := p.Classify(context.Background(), "hello")
	assert.ErrorIs(t, err, ErrInference)
}

func TestClassifyBatchIsolatesFailures(t *testing.T) {
	p := newPipeline(&fakeClassifier{PredictFunc: func(_ context.Context, text string) (Distribution, error) {
		if text == "bad" {
			return Distribution{}, errors.New("cannot vectorize")
		}
		return Distribution{Ham: 0.7, Spam: 0.3}, nil
	}})

	items := p.ClassifyBatch(context.Background(), []string{"a", "bad", "c d"})
	require.Len(t, items, 3)

	assert.NoError(t, items[0].Err)
	assert.Equal(t, "a", items[0].Result.Text)
	assert.ErrorIs(t, items[1].Err, ErrInference)
	assert.Equal(t, 1, items[1].Index)
	assert.NoError(t, items[2].Err)
	assert.Equal(t, "c d", items[2].Result.Text)
	assert.Equal(t, 2, items[2].Result.WordCount)
}

func TestClassifyUsesCache(t *testing.T) {
	clf := fixed(Distribution{Ham: 0.1, Spam: 0.9})
	cache := &mapCache{entries: map[string]Distribution{}}
	p := NewInferencePipeline(clf, cache, CacheSettings{Enabled: true, TTL: time.Minute}, zap.NewNop())

	first, err := p.Classify(context.Background(), "same text")
	require.NoError(t, err)
	second, err := p.Classify(context.Background(), "same text")
	require.NoError(t, err)

	assert.Equal(t, 1, clf.calls)
	assert.Equal(t, first.Label, second.Label)
	assert.Equal(t, first.Confidence, second.Confidence)
	assert.Len(t, cache.entries, 1)
}

func TestNilCacheDisablesCaching(t *testing.T) {
	clf := fixed(Distribution{Ham: 0.1, Spam: 0.9})
	p := NewInferencePipeline(clf, nil, CacheSettings{Enabled: true, TTL: time.Minute}, zap.NewNop())

	for i := 0; i < 2; i++ {
		_, err := p.Classify(context.Background(), "x")
		require.NoError(t, err)
	}
	assert.Equal(t, 2, clf.calls)
}

func TestArgmaxTieIsHam(t *testing.T) {
	label, p := Distribution{Ham: 0.5, Spam: 0.5}.Argmax()
	assert.Equal(t, LabelHam, label)
	assert.Equal(t, 0.5, p)
}
