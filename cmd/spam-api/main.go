package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	apihttp "github.com/Wasim1024/spamDetectionApp/internal/adapters/http"
	"github.com/Wasim1024/spamDetectionApp/internal/core"
	"github.com/Wasim1024/spamDetectionApp/internal/di"
	"go.uber.org/zap"
)

func main() {
	// Build the dependency injection container
	container, err := di.BuildContainer()
	if err != nil {
		fmt.Printf("Failed to build dependency container: %v\n", err)
		os.Exit(1)
	}

	// Run the application
	if err := container.Invoke(run); err != nil {
		fmt.Printf("Application error: %v\n", err)
		os.Exit(1)
	}
}

// run is the main application function that gets all dependencies injected
func run(
	logger *zap.Logger,
	server *apihttp.Server,
	pipeline *core.InferencePipeline,
	classifier core.Classifier,
	cache core.PredictionCache,
) error {
	defer logger.Sync()

	if err := pipeline.Ready(); err != nil {
		logger.Warn("Serving without a model", zap.Error(err))
	} else {
		logger.Info("Classifier ready", zap.String("model", pipeline.ModelName()))
	}

	// Start the server
	if err := server.Start(); err != nil {
		logger.Error("Failed to start server", zap.Error(err))
		return err
	}

	// Handle graceful shutdown
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	var serveErr error
	select {
	case <-sigCh:
		logger.Info("Shutting down...")
	case serveErr = <-server.Errors():
		logger.Error("Server stopped unexpectedly", zap.Error(serveErr))
	}

	// Stop the server
	if err := server.Stop(); err != nil {
		logger.Error("Failed to stop server", zap.Error(err))
	}

	// Close any resources that need closing
	if closer, ok := classifier.(interface{ Close() error }); ok {
		if err := closer.Close(); err != nil {
			logger.Error("Failed to close classifier", zap.Error(err))
		}
	}

	// Stop the cache if needed
	if stopper, ok := cache.(interface{ Stop() }); ok {
		stopper.Stop()
	}

	logger.Info("Shutdown complete")
	return serveErr
}
