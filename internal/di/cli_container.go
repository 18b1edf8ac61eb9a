package di

import (
	"flag"

	"go.uber.org/dig"
	"go.uber.org/zap"

	"github.com/Wasim1024/spamDetectionApp/internal/config"
	"github.com/Wasim1024/spamDetectionApp/internal/core"
	"github.com/Wasim1024/spamDetectionApp/internal/logging"
)

// CLIFlags contains all command line flags for the CLI applications
type CLIFlags struct {
	// Classifier flags
	Provider    string
	MaxTokens   int
	Temperature float64
	TopP        float64
	MaxTextSize int

	// Model store flags
	ModelStore string
	ModelDir   string

	// Bedrock flags
	BedrockRegion  string
	BedrockModelID string

	// Gemini flags
	GeminiAPIKey    string
	GeminiModelName string

	// OpenAI flags
	OpenAIAPIKey    string
	OpenAIModelName string

	// Input flags
	Text       string
	InputFile  string
	Verbose    bool
	JSONLog    bool
	ConfigFile string
}

// ParseFlags parses command line flags and returns a CLIFlags struct
func ParseFlags() *CLIFlags {
	flags := &CLIFlags{}
	RegisterFlags(flag.CommandLine, flags)
	flag.Parse()
	return flags
}

// RegisterFlags binds every CLI flag to fs
func RegisterFlags(fs *flag.FlagSet, flags *CLIFlags) {
	// Classifier flags
	fs.StringVar(&flags.Provider, "provider", "local", "Classifier provider (local, bedrock, gemini, openai)")
	fs.IntVar(&flags.MaxTokens, "max-tokens", 200, "Maximum tokens for LLM response")
	fs.Float64Var(&flags.Temperature, "temperature", 0.0, "Temperature for LLM generation")
	fs.Float64Var(&flags.TopP, "top-p", 0.9, "Top-p for LLM generation")
	fs.IntVar(&flags.MaxTextSize, "max-text-size", 4096, "Maximum text size to send to LLM")

	// Model store flags
	fs.StringVar(&flags.ModelStore, "store", "file", "Model store (file, sqlite, mysql)")
	fs.StringVar(&flags.ModelDir, "model-dir", "./models", "Directory holding the model artifacts")

	// Bedrock flags
	fs.StringVar(&flags.BedrockRegion, "bedrock-region", "us-east-1", "AWS region for Bedrock")
	fs.StringVar(&flags.BedrockModelID, "bedrock-model", "anthropic.claude-v2", "Bedrock model ID")

	// Gemini flags
	fs.StringVar(&flags.GeminiAPIKey, "gemini-api-key", "", "API key for Google Gemini")
	fs.StringVar(&flags.GeminiModelName, "gemini-model", "gemini-pro", "Gemini model name")

	// OpenAI flags
	fs.StringVar(&flags.OpenAIAPIKey, "openai-api-key", "", "API key for OpenAI")
	fs.StringVar(&flags.OpenAIModelName, "openai-model", "gpt-4", "OpenAI model name")

	// Input flags
	fs.StringVar(&flags.Text, "text", "", "Text to classify")
	fs.StringVar(&flags.InputFile, "file", "", "Input text file (use stdin if neither -text nor -file is given)")
	fs.BoolVar(&flags.Verbose, "verbose", false, "Enable verbose logging")
	fs.BoolVar(&flags.JSONLog, "json-log", false, "Output logs in JSON format")
	fs.StringVar(&flags.ConfigFile, "config", "", "Path to config file (overrides command line flags)")
}

// BuildCLIContainer creates and configures a dependency injection container for the CLI applications
func BuildCLIContainer(flags *CLIFlags) (*dig.Container, error) {
	container := dig.New()

	// Register flags
	if err := container.Provide(func() *CLIFlags { return flags }); err != nil {
		return nil, err
	}

	// Register logger
	if err := container.Provide(func(flags *CLIFlags) (*zap.Logger, error) {
		return logging.InitConsoleLogger(flags.Verbose, flags.JSONLog)
	}); err != nil {
		return nil, err
	}

	// Register configuration
	if err := container.Provide(func(flags *CLIFlags, logger *zap.Logger) (*config.Config, error) {
		if flags.ConfigFile != "" {
			cfg, err := config.NewFromFile(flags.ConfigFile)
			if err != nil {
				return nil, err
			}
			logger.Info("Loaded configuration from file", zap.String("file", flags.ConfigFile))
			return cfg, nil
		}

		// Create config from command line flags
		return ConfigFromFlags(flags), nil
	}); err != nil {
		return nil, err
	}

	// No cache for CLI
	if err := container.Provide(func() core.PredictionCache { return nil }); err != nil {
		return nil, err
	}
	if err := container.Provide(func() core.CacheSettings { return core.CacheSettings{} }); err != nil {
		return nil, err
	}

	if err := provideInference(container); err != nil {
		return nil, err
	}

	return container, nil
}

// ConfigFromFlags creates a configuration from command line flags
func ConfigFromFlags(flags *CLIFlags) *config.Config {
	v := config.NewEmptyViper()

	v.Set("classifier.provider", flags.Provider)
	v.Set("model.store", flags.ModelStore)
	v.Set("model.dir", flags.ModelDir)

	// Set provider-specific configuration
	switch flags.Provider {
	case "bedrock":
		v.Set("bedrock.region", flags.BedrockRegion)
		v.Set("bedrock.model_id", flags.BedrockModelID)
		v.Set("bedrock.max_tokens", flags.MaxTokens)
		v.Set("bedrock.temperature", flags.Temperature)
		v.Set("bedrock.top_p", flags.TopP)
		v.Set("bedrock.max_text_size", flags.MaxTextSize)
	case "gemini":
		v.Set("gemini.api_key", flags.GeminiAPIKey)
		v.Set("gemini.model_name", flags.GeminiModelName)
		v.Set("gemini.max_tokens", flags.MaxTokens)
		v.Set("gemini.temperature", flags.Temperature)
		v.Set("gemini.top_p", flags.TopP)
		v.Set("gemini.max_text_size", flags.MaxTextSize)
	case "openai":
		v.Set("openai.api_key", flags.OpenAIAPIKey)
		v.Set("openai.model_name", flags.OpenAIModelName)
		v.Set("openai.max_tokens", flags.MaxTokens)
		v.Set("openai.temperature", flags.Temperature)
		v.Set("openai.top_p", flags.TopP)
		v.Set("openai.max_text_size", flags.MaxTextSize)
	}

	return config.NewFromViper(v)
}
