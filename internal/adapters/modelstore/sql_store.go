package modelstore

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Wasim1024/spamDetectionApp/internal/core"
	"go.uber.org/zap"
)

// sqlStore keeps artifacts as rows of a model_artifacts table.
// The SQLite and MySQL stores differ only in DDL and upsert syntax.
type sqlStore struct {
	db         *sql.DB
	logger     *zap.Logger
	upsertStmt string
}

// Load reads the artifact called name
func (s *sqlStore) Load(ctx context.Context, name string) ([]byte, error) {
	var blob []byte
	err := s.db.QueryRowContext(ctx, `
		SELECT content FROM model_artifacts WHERE name = ?
	`, name).Scan(&blob)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("%w: %s", core.ErrArtifactNotFound, name)
		}
		return nil, fmt.Errorf("failed to query model artifact: %w", err)
	}
	s.logger.Debug("Loaded model artifact", zap.String("name", name), zap.Int("bytes", len(blob)))
	return blob, nil
}

// Save inserts or replaces the artifact called name
func (s *sqlStore) Save(ctx context.Context, name string, blob []byte) error {
	if _, err := s.db.ExecContext(ctx, s.upsertStmt, name, blob); err != nil {
		return fmt.Errorf("failed to store model artifact: %w", err)
	}
	s.logger.Info("Saved model artifact", zap.String("name", name), zap.Int("bytes", len(blob)))
	return nil
}

// Close closes the database connection
func (s *sqlStore) Close() error {
	return s.db.Close()
}
