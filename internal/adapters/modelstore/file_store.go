package modelstore

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/Wasim1024/spamDetectionApp/internal/core"
	"go.uber.org/zap"
)

// FileStore keeps each artifact as a file in one directory
type FileStore struct {
	dir    string
	logger *zap.Logger
}

// NewFileStore creates a file store rooted at dir, creating it if needed
func NewFileStore(dir string, logger *zap.Logger) (*FileStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create model directory: %w", err)
	}
	return &FileStore{dir: dir, logger: logger}, nil
}

// Load reads the artifact called name
func (s *FileStore) Load(ctx context.Context, name string) ([]byte, error) {
	path, err := s.path(name)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", core.ErrArtifactNotFound, path)
		}
		return nil, fmt.Errorf("failed to read model artifact: %w", err)
	}
	s.logger.Debug("Loaded model artifact", zap.String("path", path), zap.Int("bytes", len(data)))
	return data, nil
}

// Save writes the artifact atomically through a temporary file
func (s *FileStore) Save(ctx context.Context, name string, blob []byte) error {
	path, err := s.path(name)
	if err != nil {
		return err
	}
	tmp, err := os.CreateTemp(s.dir, "."+name+".*")
	if err != nil {
		return fmt.Errorf("failed to create temporary artifact: %w", err)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(blob); err != nil {
		tmp.Close()
		return fmt.Errorf("failed to write model artifact: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("failed to write model artifact: %w", err)
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		return fmt.Errorf("failed to store model artifact: %w", err)
	}
	s.logger.Info("Saved model artifact", zap.String("path", path), zap.Int("bytes", len(blob)))
	return nil
}

// Close is a no-op for the file store
func (s *FileStore) Close() error {
	return nil
}

func (s *FileStore) path(name string) (string, error) {
	if name == "" || strings.ContainsAny(name, `/\`) || name == "." || name == ".." {
		return "", fmt.Errorf("invalid artifact name %q", name)
	}
	return filepath.Join(s.dir, name), nil
}
