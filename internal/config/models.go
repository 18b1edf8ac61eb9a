package config

import "time"

// ServerConfig represents the HTTP server configuration
type ServerConfig struct {
	ListenAddress   string
	ReadTimeout     time.Duration
	WriteTimeout    time.Duration
	ShutdownTimeout time.Duration
	CORSOrigins     []string
}

// ModelConfig represents where the fitted model artifacts live
type ModelConfig struct {
	Store          string
	Dir            string
	SQLitePath     string
	MySQLDSN       string
	VectorizerName string
	ClassifierName string
	AutoTrain      bool
}

// TrainingConfig represents the hyperparameters used to fit the local model
type TrainingConfig struct {
	MaxFeatures  int
	Iterations   int
	LearningRate float64
	C            float64
	TestFraction float64
	Seed         int64
}

// LLMConfig represents the settings shared by the hosted model providers
type LLMConfig struct {
	APIKey      string
	ModelName   string
	MaxTokens   int
	Temperature float32
	TopP        float32
	MaxTextSize int
}

// BedrockConfig represents the configuration for Amazon Bedrock
type BedrockConfig struct {
	Region string
	LLMConfig
}

// GetServer returns the HTTP server configuration
func (c *Config) GetServer() (ServerConfig, error) {
	readTimeout, err := c.GetDuration("server.read_timeout")
	if err != nil {
		return ServerConfig{}, err
	}
	writeTimeout, err := c.GetDuration("server.write_timeout")
	if err != nil {
		return ServerConfig{}, err
	}
	shutdownTimeout, err := c.GetDuration("server.shutdown_timeout")
	if err != nil {
		return ServerConfig{}, err
	}
	return ServerConfig{
		ListenAddress:   c.GetString("server.listen_address"),
		ReadTimeout:     readTimeout,
		WriteTimeout:    writeTimeout,
		ShutdownTimeout: shutdownTimeout,
		CORSOrigins:     c.GetStringSlice("server.cors_origins"),
	}, nil
}

// GetProvider returns the configured classifier provider
func (c *Config) GetProvider() string {
	return c.GetString("classifier.provider")
}

// GetModel returns the model store configuration
func (c *Config) GetModel() ModelConfig {
	return ModelConfig{
		Store:          c.GetString("model.store"),
		Dir:            c.GetString("model.dir"),
		SQLitePath:     c.GetString("model.sqlite_path"),
		MySQLDSN:       c.GetString("model.mysql_dsn"),
		VectorizerName: c.GetString("model.vectorizer_name"),
		ClassifierName: c.GetString("model.classifier_name"),
		AutoTrain:      c.GetBool("model.auto_train"),
	}
}

// GetTraining returns the training hyperparameters
func (c *Config) GetTraining() TrainingConfig {
	return TrainingConfig{
		MaxFeatures:  c.GetInt("training.max_features"),
		Iterations:   c.GetInt("training.iterations"),
		LearningRate: c.GetFloat64("training.learning_rate"),
		C:            c.GetFloat64("training.c"),
		TestFraction: c.GetFloat64("training.test_fraction"),
		Seed:         c.GetInt64("training.seed"),
	}
}

// GetBedrock returns the Bedrock configuration
func (c *Config) GetBedrock() BedrockConfig {
	return BedrockConfig{
		Region:    c.GetString("bedrock.region"),
		LLMConfig: c.llmConfig("bedrock", "model_id"),
	}
}

// GetGemini returns the Gemini configuration
func (c *Config) GetGemini() LLMConfig {
	return c.llmConfig("gemini", "model_name")
}

// GetOpenAI returns the OpenAI configuration
func (c *Config) GetOpenAI() LLMConfig {
	return c.llmConfig("openai", "model_name")
}

func (c *Config) llmConfig(prefix, modelKey string) LLMConfig {
	return LLMConfig{
		APIKey:      c.GetString(prefix + ".api_key"),
		ModelName:   c.GetString(prefix + "." + modelKey),
		MaxTokens:   c.GetInt(prefix + ".max_tokens"),
		Temperature: float32(c.GetFloat64(prefix + ".temperature")),
		TopP:        float32(c.GetFloat64(prefix + ".top_p")),
		MaxTextSize: c.GetInt(prefix + ".max_text_size"),
	}
}
