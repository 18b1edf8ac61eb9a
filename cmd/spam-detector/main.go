package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/Wasim1024/spamDetectionApp/internal/core"
	"github.com/Wasim1024/spamDetectionApp/internal/di"
	"go.uber.org/zap"
)

func main() {
	flags := di.ParseFlags()

	// Build the dependency injection container
	container, err := di.BuildCLIContainer(flags)
	if err != nil {
		fmt.Printf("Failed to build dependency container: %v\n", err)
		os.Exit(1)
	}

	if err := container.Invoke(run); err != nil {
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}
}

func run(
	flags *di.CLIFlags,
	logger *zap.Logger,
	pipeline *core.InferencePipeline,
	classifier core.Classifier,
) error {
	defer logger.Sync()

	// Close any resources that need closing
	defer func() {
		if closer, ok := classifier.(interface{ Close() error }); ok {
			if err := closer.Close(); err != nil {
				logger.Error("Failed to close classifier", zap.Error(err))
			}
		}
	}()

	text, err := readInput(flags, logger)
	if err != nil {
		return err
	}

	startTime := time.Now()
	result, err := pipeline.Classify(context.Background(), text)
	if err != nil {
		return fmt.Errorf("failed to classify text: %w", err)
	}
	duration := time.Since(startTime)

	fmt.Printf("\n=== Results ===\n")
	fmt.Printf("Prediction: %d\n", result.Label.Int())
	fmt.Printf("Result: %s\n", result.Label)
	fmt.Printf("Confidence: %.4f\n", result.Confidence)
	fmt.Printf("Text length: %d\n", result.TextLength)
	fmt.Printf("Word count: %d\n", result.WordCount)
	fmt.Printf("Model used: %s\n", pipeline.ModelName())
	fmt.Printf("Processing time: %v\n", duration)
	return nil
}

// readInput returns the -text flag, else the contents of -file, else stdin
func readInput(flags *di.CLIFlags, logger *zap.Logger) (string, error) {
	if flags.Text != "" {
		return flags.Text, nil
	}

	var reader io.Reader
	if flags.InputFile != "" {
		file, err := os.Open(flags.InputFile)
		if err != nil {
			return "", fmt.Errorf("failed to open input file: %w", err)
		}
		defer file.Close()
		reader = file
		logger.Info("Reading text from file", zap.String("file", flags.InputFile))
	} else {
		reader = os.Stdin
		logger.Info("Reading text from stdin")
	}

	data, err := io.ReadAll(reader)
	if err != nil {
		return "", fmt.Errorf("failed to read input: %w", err)
	}
	return string(data), nil
}
