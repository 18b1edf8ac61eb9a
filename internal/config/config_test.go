package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaults(t *testing.T) {
	cfg := NewFromViper(NewEmptyViper())

	server, err := cfg.GetServer()
	require.NoError(t, err)
	assert.Equal(t, "0.0.0.0:8000", server.ListenAddress)
	assert.Equal(t, 5*time.Second, server.ShutdownTimeout)
	assert.Equal(t, []string{"*"}, server.CORSOrigins)

	assert.Equal(t, "local", cfg.GetProvider())

	model := cfg.GetModel()
	assert.Equal(t, "file", model.Store)
	assert.Equal(t, "count_vectorizer.json", model.VectorizerName)
	assert.Equal(t, "logistic_regression_model.json", model.ClassifierName)
	assert.False(t, model.AutoTrain)

	training := cfg.GetTraining()
	assert.Equal(t, 5000, training.MaxFeatures)
	assert.Equal(t, int64(42), training.Seed)
	assert.InDelta(t, 1.0, training.C, 1e-9)

	assert.Equal(t, 10, cfg.GetInt("history.default_limit"))
	assert.Equal(t, 10, cfg.GetInt("analytics.recent_limit"))
}

func TestProviderSections(t *testing.T) {
	v := NewEmptyViper()
	v.Set("openai.api_key", "sk-test")
	v.Set("bedrock.region", "eu-west-1")
	cfg := NewFromViper(v)

	openai := cfg.GetOpenAI()
	assert.Equal(t, "sk-test", openai.APIKey)
	assert.Equal(t, "gpt-4", openai.ModelName)
	assert.Equal(t, 4096, openai.MaxTextSize)

	bedrock := cfg.GetBedrock()
	assert.Equal(t, "eu-west-1", bedrock.Region)
	assert.Equal(t, "anthropic.claude-v2", bedrock.ModelName)

	assert.Equal(t, "gemini-pro", cfg.GetGemini().ModelName)
}

func TestInvalidDuration(t *testing.T) {
	v := NewEmptyViper()
	v.Set("server.read_timeout", "soon")
	cfg := NewFromViper(v)

	_, err := cfg.GetServer()
	assert.Error(t, err)
}

func TestNewFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	data := []byte("server:\n  listen_address: 127.0.0.1:9090\nmodel:\n  store: sqlite\n  auto_train: true\n")
	require.NoError(t, os.WriteFile(path, data, 0o644))

	cfg, err := NewFromFile(path)
	require.NoError(t, err)

	server, err := cfg.GetServer()
	require.NoError(t, err)
	assert.Equal(t, "127.0.0.1:9090", server.ListenAddress)
	assert.Equal(t, "sqlite", cfg.GetModel().Store)
	assert.True(t, cfg.GetModel().AutoTrain)
	// untouched keys keep their defaults
	assert.Equal(t, "local", cfg.GetProvider())
}

func TestNewFromFileMissing(t *testing.T) {
	_, err := NewFromFile(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}
