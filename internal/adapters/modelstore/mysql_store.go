package modelstore

import (
	"database/sql"
	"fmt"

	_ "github.com/go-sql-driver/mysql"
	"go.uber.org/zap"
)

// MySQLStore is a MySQL implementation of core.ModelStore
type MySQLStore struct {
	sqlStore
}

// NewMySQLStore connects to dsn and ensures the artifact table exists
func NewMySQLStore(dsn string, logger *zap.Logger) (*MySQLStore, error) {
	db, err := sql.Open("mysql", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open MySQL database: %w", err)
	}

	// Test the connection
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to connect to MySQL database: %w", err)
	}

	_, err = db.Exec(`
		CREATE TABLE IF NOT EXISTS model_artifacts (
			name VARCHAR(255) PRIMARY KEY,
			content LONGBLOB NOT NULL,
			updated_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP ON UPDATE CURRENT_TIMESTAMP
		)
	`)
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to create table: %w", err)
	}

	return &MySQLStore{sqlStore{
		db:     db,
		logger: logger,
		upsertStmt: `
			INSERT INTO model_artifacts (name, content)
			VALUES (?, ?)
			ON DUPLICATE KEY UPDATE content = VALUES(content)
		`,
	}}, nil
}
