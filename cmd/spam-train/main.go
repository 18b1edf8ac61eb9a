package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/Wasim1024/spamDetectionApp/internal/config"
	"github.com/Wasim1024/spamDetectionApp/internal/factory"
	"github.com/Wasim1024/spamDetectionApp/internal/logging"
	"github.com/Wasim1024/spamDetectionApp/internal/ml"
	"go.uber.org/zap"
)

var (
	configFile = flag.String("config", "", "Path to config file")
	dryRun     = flag.Bool("dry-run", false, "Evaluate only, do not save the model")
	verbose    = flag.Bool("verbose", false, "Enable verbose logging")
	jsonLog    = flag.Bool("json-log", false, "Output logs in JSON format")
)

var sampleMessages = []string{
	"Hello, how are you doing today?",
	"URGENT! You have won $1000000! Click here now!",
	"Thank you for your email, I'll respond soon.",
	"FREE MONEY! Act now before it expires!",
}

func main() {
	flag.Parse()

	logger, err := logging.InitConsoleLogger(*verbose, *jsonLog)
	if err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	var cfg *config.Config
	if *configFile != "" {
		cfg, err = config.NewFromFile(*configFile)
	} else {
		cfg, err = config.New()
	}
	if err != nil {
		logger.Fatal("Failed to load configuration", zap.Error(err))
	}

	if err := train(context.Background(), cfg, logger); err != nil {
		logger.Fatal("Training failed", zap.Error(err))
	}
}

func train(ctx context.Context, cfg *config.Config, logger *zap.Logger) error {
	trainingCfg := cfg.GetTraining()
	opts := factory.TrainOptions(trainingCfg)
	corpus := ml.Corpus()

	trainSet, testSet := ml.Split(corpus, trainingCfg.TestFraction, trainingCfg.Seed)
	logger.Info("Split corpus",
		zap.Int("total", len(corpus)),
		zap.Int("train", len(trainSet)),
		zap.Int("test", len(testSet)))

	model, err := ml.Train(trainSet, opts)
	if err != nil {
		return err
	}
	logger.Info("Trained evaluation model", zap.Int("features", model.Vectorizer().Dim()))

	report, err := ml.Evaluate(ctx, model, testSet)
	if err != nil {
		return err
	}
	fmt.Printf("\n=== Evaluation ===\n%s\n", report)

	// Refit on every sample for the deployed model
	model, err = ml.Train(corpus, opts)
	if err != nil {
		return err
	}

	fmt.Printf("=== Sample predictions ===\n")
	for _, msg := range sampleMessages {
		dist, err := model.Predict(ctx, msg)
		if err != nil {
			return err
		}
		label, confidence := dist.Argmax()
		fmt.Printf("Message: %s\nPrediction: %d (%s, confidence: %.3f)\n\n", msg, label.Int(), label, confidence)
	}

	if *dryRun {
		logger.Info("Dry run, model not saved")
		return nil
	}

	modelCfg := cfg.GetModel()
	store, err := factory.NewModelStoreFactory(cfg, logger).CreateModelStore()
	if err != nil {
		return err
	}
	defer store.Close()

	if err := ml.SaveModel(ctx, store, model, modelCfg.VectorizerName, modelCfg.ClassifierName); err != nil {
		return err
	}
	logger.Info("Saved model",
		zap.String("store", modelCfg.Store),
		zap.String("vectorizer", modelCfg.VectorizerName),
		zap.String("classifier", modelCfg.ClassifierName))
	return nil
}
