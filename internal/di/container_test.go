package di

import (
	"context"
	"flag"
	"testing"

	"github.com/Wasim1024/spamDetectionApp/internal/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func parseTestFlags(t *testing.T, args ...string) *CLIFlags {
	t.Helper()
	flags := &CLIFlags{}
	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	RegisterFlags(fs, flags)
	require.NoError(t, fs.Parse(args))
	return flags
}

func TestConfigFromFlags(t *testing.T) {
	flags := parseTestFlags(t, "-provider", "openai", "-openai-api-key", "sk-1", "-max-tokens", "50")
	cfg := ConfigFromFlags(flags)

	assert.Equal(t, "openai", cfg.GetProvider())
	assert.Equal(t, "sk-1", cfg.GetOpenAI().APIKey)
	assert.Equal(t, 50, cfg.GetOpenAI().MaxTokens)
	// other providers keep their defaults
	assert.Equal(t, 200, cfg.GetGemini().MaxTokens)
}

func TestCLIContainerWithoutArtifacts(t *testing.T) {
	flags := parseTestFlags(t, "-model-dir", t.TempDir())
	container, err := BuildCLIContainer(flags)
	require.NoError(t, err)

	err = container.Invoke(func(pipeline *core.InferencePipeline) {
		assert.ErrorIs(t, pipeline.Ready(), core.ErrModelUnavailable)

		_, err := pipeline.Classify(context.Background(), "hello")
		assert.ErrorIs(t, err, core.ErrModelUnavailable)
	})
	require.NoError(t, err)
}

func TestCLIContainerUnsupportedProvider(t *testing.T) {
	flags := parseTestFlags(t, "-provider", "carrier-pigeon")
	container, err := BuildCLIContainer(flags)
	require.NoError(t, err)

	err = container.Invoke(func(pipeline *core.InferencePipeline) {})
	assert.Error(t, err)
}
