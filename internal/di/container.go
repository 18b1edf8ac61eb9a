package di

import (
	"go.uber.org/dig"
	"go.uber.org/zap"

	apihttp "github.com/Wasim1024/spamDetectionApp/internal/adapters/http"
	"github.com/Wasim1024/spamDetectionApp/internal/config"
	"github.com/Wasim1024/spamDetectionApp/internal/core"
	"github.com/Wasim1024/spamDetectionApp/internal/factory"
	"github.com/Wasim1024/spamDetectionApp/internal/logging"
	"github.com/Wasim1024/spamDetectionApp/internal/utils"
)

// BuildContainer creates and configures a dependency injection container for the API server
func BuildContainer() (*dig.Container, error) {
	container := dig.New()

	// Register configuration
	if err := container.Provide(config.New); err != nil {
		return nil, err
	}

	// Register logger
	if err := container.Provide(logging.InitLogger); err != nil {
		return nil, err
	}

	if err := provideInference(container); err != nil {
		return nil, err
	}

	// Register prediction cache
	if err := container.Provide(func(f *factory.CacheFactory) (core.PredictionCache, error) {
		return f.CreatePredictionCache()
	}); err != nil {
		return nil, err
	}
	if err := container.Provide(func(f *factory.CacheFactory) (core.CacheSettings, error) {
		return f.GetCacheSettings()
	}); err != nil {
		return nil, err
	}

	// Register history and analytics
	if err := container.Provide(core.NewHistory); err != nil {
		return nil, err
	}
	if err := container.Provide(func(cfg *config.Config, history *core.History) *core.Analytics {
		return core.NewAnalytics(history, cfg.GetInt("analytics.recent_limit"))
	}); err != nil {
		return nil, err
	}

	// Register HTTP handler and server
	if err := container.Provide(func(
		cfg *config.Config,
		pipeline *core.InferencePipeline,
		history *core.History,
		analytics *core.Analytics,
		logger *zap.Logger,
	) *apihttp.Handler {
		return apihttp.NewHandler(
			pipeline,
			history,
			analytics,
			cfg.GetInt("history.default_limit"),
			cfg.GetProvider(),
			logger.Named("http"),
		)
	}); err != nil {
		return nil, err
	}
	if err := container.Provide(func(
		cfg *config.Config,
		handler *apihttp.Handler,
		logger *zap.Logger,
	) (*apihttp.Server, error) {
		serverCfg, err := cfg.GetServer()
		if err != nil {
			return nil, err
		}
		router := apihttp.NewRouter(handler, serverCfg.CORSOrigins, logger.Named("http"))
		return apihttp.NewServer(serverCfg, router, logger.Named("server")), nil
	}); err != nil {
		return nil, err
	}

	return container, nil
}

// provideInference registers the factories, classifier and pipeline shared by every binary
func provideInference(container *dig.Container) error {
	// Register factories
	for _, constructor := range []any{
		factory.NewTextProcessorFactory,
		factory.NewModelStoreFactory,
		factory.NewCacheFactory,
		factory.NewClassifierFactory,
	} {
		if err := container.Provide(constructor); err != nil {
			return err
		}
	}

	// Register text processor
	if err := container.Provide(func(f *factory.TextProcessorFactory) *utils.TextProcessor {
		return f.CreateTextProcessor()
	}); err != nil {
		return err
	}

	// Register classifier
	if err := container.Provide(func(f *factory.ClassifierFactory) (core.Classifier, error) {
		return f.CreateClassifier()
	}); err != nil {
		return err
	}

	// Register inference pipeline
	return container.Provide(func(
		classifier core.Classifier,
		cache core.PredictionCache,
		cacheCfg core.CacheSettings,
		logger *zap.Logger,
	) *core.InferencePipeline {
		return core.NewInferencePipeline(classifier, cache, cacheCfg, logger.Named("pipeline"))
	})
}
