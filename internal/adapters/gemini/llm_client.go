package gemini

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/Wasim1024/spamDetectionApp/internal/core"
	"github.com/Wasim1024/spamDetectionApp/internal/utils"
	"github.com/google/generative-ai-go/genai"
	"go.uber.org/zap"
	"google.golang.org/api/option"
)

// GeminiClassifier classifies text by asking a Gemini model for a spam probability
type GeminiClassifier struct {
	client        *genai.Client
	model         *genai.GenerativeModel
	modelName     string
	maxTextSize   int
	logger        *zap.Logger
	textProcessor *utils.TextProcessor
}

// NewGeminiClassifier creates a new Gemini-backed classifier
func NewGeminiClassifier(
	ctx context.Context,
	apiKey string,
	modelName string,
	maxTokens int,
	temperature float32,
	topP float32,
	maxTextSize int,
	logger *zap.Logger,
	textProcessor *utils.TextProcessor,
) (*GeminiClassifier, error) {
	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	model := client.GenerativeModel(modelName)
	model.SetTemperature(temperature)
	model.SetTopP(topP)
	model.SetMaxOutputTokens(int32(maxTokens))
	model.ResponseMIMEType = "application/json"

	return &GeminiClassifier{
		client:        client,
		model:         model,
		modelName:     modelName,
		maxTextSize:   maxTextSize,
		logger:        logger,
		textProcessor: textProcessor,
	}, nil
}

// Close closes the Gemini client
func (c *GeminiClassifier) Close() error {
	if c.client != nil {
		return c.client.Close()
	}
	return nil
}

// Name returns the Gemini model name
func (c *GeminiClassifier) Name() string {
	return "gemini:" + c.modelName
}

// Predict returns the spam distribution reported by the model
func (c *GeminiClassifier) Predict(ctx context.Context, text string) (core.Distribution, error) {
	prompt := c.textProcessor.BuildPrompt(text, c.maxTextSize)

	resp, err := c.model.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return core.Distribution{}, fmt.Errorf("failed to generate content with Gemini: %w", err)
	}

	reply, err := responseText(resp)
	if err != nil {
		return core.Distribution{}, err
	}

	p, err := utils.ParseSpamProbability(reply)
	if err != nil {
		return core.Distribution{}, err
	}

	c.logger.Debug("Gemini classification",
		zap.String("model", c.modelName),
		zap.Float64("spam_probability", p))

	return core.Distribution{Ham: 1 - p, Spam: p}, nil
}

// responseText concatenates the text parts of the first candidate
func responseText(resp *genai.GenerateContentResponse) (string, error) {
	if resp == nil || len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return "", errors.New("empty response from Gemini")
	}
	var b strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if text, ok := part.(genai.Text); ok {
			b.WriteString(string(text))
		}
	}
	if b.Len() == 0 {
		return "", errors.New("Gemini response has no text parts")
	}
	return b.String(), nil
}
