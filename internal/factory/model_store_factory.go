package factory

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/Wasim1024/spamDetectionApp/internal/adapters/modelstore"
	"github.com/Wasim1024/spamDetectionApp/internal/config"
	"github.com/Wasim1024/spamDetectionApp/internal/core"
	"go.uber.org/zap"
)

// ModelStoreFactory creates model artifact stores based on configuration
type ModelStoreFactory struct {
	cfg    *config.Config
	logger *zap.Logger
}

// NewModelStoreFactory creates a new model store factory
func NewModelStoreFactory(cfg *config.Config, logger *zap.Logger) *ModelStoreFactory {
	return &ModelStoreFactory{
		cfg:    cfg,
		logger: logger,
	}
}

// CreateModelStore creates a model store based on the configuration
func (f *ModelStoreFactory) CreateModelStore() (core.ModelStore, error) {
	modelCfg := f.cfg.GetModel()
	logger := f.logger.Named("modelstore")

	switch modelCfg.Store {
	case "file":
		return modelstore.NewFileStore(modelCfg.Dir, logger)
	case "sqlite":
		// Ensure directory exists
		if err := os.MkdirAll(filepath.Dir(modelCfg.SQLitePath), 0o755); err != nil {
			return nil, fmt.Errorf("failed to create SQLite directory: %w", err)
		}
		return modelstore.NewSQLiteStore(modelCfg.SQLitePath, logger)
	case "mysql":
		return modelstore.NewMySQLStore(modelCfg.MySQLDSN, logger)
	default:
		return nil, fmt.Errorf("unsupported model store: %s", modelCfg.Store)
	}
}
