package factory

import (
	"fmt"

	"github.com/Wasim1024/spamDetectionApp/internal/adapters/cache"
	"github.com/Wasim1024/spamDetectionApp/internal/config"
	"github.com/Wasim1024/spamDetectionApp/internal/core"
	"go.uber.org/zap"
)

// CacheFactory creates the prediction cache based on configuration
type CacheFactory struct {
	cfg    *config.Config
	logger *zap.Logger
}

// NewCacheFactory creates a new cache factory
func NewCacheFactory(cfg *config.Config, logger *zap.Logger) *CacheFactory {
	return &CacheFactory{
		cfg:    cfg,
		logger: logger,
	}
}

// CreatePredictionCache creates the in-memory prediction cache, or nil when caching is disabled
func (f *CacheFactory) CreatePredictionCache() (core.PredictionCache, error) {
	if !f.cfg.GetBool("cache.enabled") {
		return nil, nil
	}
	cleanupFreq, err := f.cfg.GetDuration("cache.cleanup_frequency")
	if err != nil {
		return nil, fmt.Errorf("invalid cache cleanup frequency: %w", err)
	}
	return cache.NewMemoryCache(f.logger.Named("cache"), cleanupFreq), nil
}

// GetCacheSettings returns whether caching is enabled and for how long entries live
func (f *CacheFactory) GetCacheSettings() (core.CacheSettings, error) {
	ttl, err := f.cfg.GetDuration("cache.ttl")
	if err != nil {
		return core.CacheSettings{}, err
	}
	return core.CacheSettings{
		Enabled: f.cfg.GetBool("cache.enabled"),
		TTL:     ttl,
	}, nil
}
