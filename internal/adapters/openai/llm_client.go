package openai

import (
	"context"
	"errors"
	"fmt"

	"github.com/Wasim1024/spamDetectionApp/internal/core"
	"github.com/Wasim1024/spamDetectionApp/internal/utils"
	"github.com/sashabaranov/go-openai"
	"go.uber.org/zap"
)

// ChatCompleter is the subset of the OpenAI client used for classification
type ChatCompleter interface {
	CreateChatCompletion(ctx context.Context, req openai.ChatCompletionRequest) (openai.ChatCompletionResponse, error)
}

// OpenAIClassifier classifies text by asking an OpenAI chat model for a spam probability
type OpenAIClassifier struct {
	client        ChatCompleter
	modelName     string
	maxTokens     int
	temperature   float32
	topP          float32
	maxTextSize   int
	logger        *zap.Logger
	textProcessor *utils.TextProcessor
}

// NewOpenAIClassifier creates a new OpenAI-backed classifier
func NewOpenAIClassifier(
	client ChatCompleter,
	modelName string,
	maxTokens int,
	temperature float32,
	topP float32,
	maxTextSize int,
	logger *zap.Logger,
	textProcessor *utils.TextProcessor,
) *OpenAIClassifier {
	return &OpenAIClassifier{
		client:        client,
		modelName:     modelName,
		maxTokens:     maxTokens,
		temperature:   temperature,
		topP:          topP,
		maxTextSize:   maxTextSize,
		logger:        logger,
		textProcessor: textProcessor,
	}
}

// Name returns the OpenAI model name
func (c *OpenAIClassifier) Name() string {
	return "openai:" + c.modelName
}

// Predict returns the spam distribution reported by the model
func (c *OpenAIClassifier) Predict(ctx context.Context, text string) (core.Distribution, error) {
	req := openai.ChatCompletionRequest{
		Model: c.modelName,
		Messages: []openai.ChatCompletionMessage{
			{
				Role:    openai.ChatMessageRoleSystem,
				Content: "You are a spam detection system. Respond only with JSON.",
			},
			{
				Role:    openai.ChatMessageRoleUser,
				Content: c.textProcessor.BuildPrompt(text, c.maxTextSize),
			},
		},
		MaxTokens:   c.maxTokens,
		Temperature: c.temperature,
		TopP:        c.topP,
		ResponseFormat: &openai.ChatCompletionResponseFormat{
			Type: openai.ChatCompletionResponseFormatTypeJSONObject,
		},
	}

	resp, err := c.client.CreateChatCompletion(ctx, req)
	if err != nil {
		return core.Distribution{}, fmt.Errorf("failed to create chat completion with OpenAI: %w", err)
	}
	if len(resp.Choices) == 0 {
		return core.Distribution{}, errors.New("empty response from OpenAI")
	}

	p, err := utils.ParseSpamProbability(resp.Choices[0].Message.Content)
	if err != nil {
		return core.Distribution{}, err
	}

	c.logger.Debug("OpenAI classification",
		zap.String("model", c.modelName),
		zap.String("response_id", resp.ID),
		zap.Float64("spam_probability", p))

	return core.Distribution{Ham: 1 - p, Spam: p}, nil
}
