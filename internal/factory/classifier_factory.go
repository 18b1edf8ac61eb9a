package factory

import (
	"context"
	"errors"
	"fmt"

	"github.com/Wasim1024/spamDetectionApp/internal/config"
	"github.com/Wasim1024/spamDetectionApp/internal/core"
	"github.com/Wasim1024/spamDetectionApp/internal/ml"
	"github.com/Wasim1024/spamDetectionApp/internal/utils"
	"go.uber.org/zap"
)

// ClassifierFactory creates the classifier selected by classifier.provider
type ClassifierFactory struct {
	cfg           *config.Config
	logger        *zap.Logger
	stores        *ModelStoreFactory
	textProcessor *utils.TextProcessor
}

// NewClassifierFactory creates a new classifier factory
func NewClassifierFactory(
	cfg *config.Config,
	logger *zap.Logger,
	stores *ModelStoreFactory,
	textProcessor *utils.TextProcessor,
) *ClassifierFactory {
	return &ClassifierFactory{
		cfg:           cfg,
		logger:        logger,
		stores:        stores,
		textProcessor: textProcessor,
	}
}

// CreateClassifier creates the configured classifier. A local model that fails to load
// does not fail startup: it yields a classifier reporting core.ErrModelUnavailable.
func (f *ClassifierFactory) CreateClassifier() (core.Classifier, error) {
	provider := f.cfg.GetProvider()

	switch provider {
	case "local":
		model, err := f.LoadLocalModel(context.Background())
		if err != nil {
			f.logger.Error("Failed to load model artifacts, predictions are unavailable",
				zap.Error(err))
			return core.NewUnavailableClassifier(err), nil
		}
		return model, nil
	case "bedrock":
		return NewBedrockFactory(f.cfg, f.logger, f.textProcessor).CreateClassifier()
	case "gemini":
		return NewGeminiFactory(f.cfg, f.logger, f.textProcessor).CreateClassifier()
	case "openai":
		return NewOpenAIFactory(f.cfg, f.logger, f.textProcessor).CreateClassifier()
	default:
		return nil, fmt.Errorf("unsupported classifier provider: %s", provider)
	}
}

// LoadLocalModel loads both artifacts from the model store, training and saving
// a fresh model first when they are missing and model.auto_train is set
func (f *ClassifierFactory) LoadLocalModel(ctx context.Context) (*ml.Model, error) {
	modelCfg := f.cfg.GetModel()

	store, err := f.stores.CreateModelStore()
	if err != nil {
		return nil, err
	}
	defer func() {
		if err := store.Close(); err != nil {
			f.logger.Warn("Failed to close model store", zap.Error(err))
		}
	}()

	model, err := ml.LoadModel(ctx, store, modelCfg.VectorizerName, modelCfg.ClassifierName)
	if err == nil {
		f.logger.Info("Loaded model artifacts",
			zap.String("store", modelCfg.Store),
			zap.Int("features", model.Vectorizer().Dim()))
		return model, nil
	}
	if !errors.Is(err, core.ErrArtifactNotFound) || !modelCfg.AutoTrain {
		return nil, err
	}

	f.logger.Info("Model artifacts missing, training from built-in corpus")
	model, err = ml.Train(ml.Corpus(), TrainOptions(f.cfg.GetTraining()))
	if err != nil {
		return nil, err
	}
	if err := ml.SaveModel(ctx, store, model, modelCfg.VectorizerName, modelCfg.ClassifierName); err != nil {
		// the freshly trained model is still usable for this process
		f.logger.Error("Failed to save trained model", zap.Error(err))
	}
	return model, nil
}

// TrainOptions converts training configuration into ml options
func TrainOptions(cfg config.TrainingConfig) ml.TrainOptions {
	return ml.TrainOptions{
		MaxFeatures: cfg.MaxFeatures,
		Fit: ml.FitOptions{
			Iterations:   cfg.Iterations,
			LearningRate: cfg.LearningRate,
			C:            cfg.C,
		},
	}
}
