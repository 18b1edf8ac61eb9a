package utils

import (
	"encoding/json"
	"fmt"
	"strings"
	"unicode/utf8"

	"go.uber.org/zap"
)

const truncationMarker = "\n[... Content truncated due to size limits ...]"

// classificationPrompt asks a hosted model for a spam probability
const classificationPrompt = `You are a spam detection system. Decide whether the following message is spam.
Respond with a JSON object containing:
- spam_probability: number between 0 and 1 (higher means more likely to be spam)

Message:
%s

Respond only with the JSON object and nothing else.`

// TextProcessor prepares user text before it is sent to a hosted model
type TextProcessor struct {
	logger *zap.Logger
}

// NewTextProcessor creates a new TextProcessor
func NewTextProcessor(logger *zap.Logger) *TextProcessor {
	return &TextProcessor{
		logger: logger,
	}
}

// TruncateText cuts text to at most maxSize bytes without splitting a UTF-8 sequence
func (tp *TextProcessor) TruncateText(text string, maxSize int) string {
	if maxSize <= 0 || len(text) <= maxSize {
		return text
	}

	truncated := text[:maxSize]
	for !utf8.ValidString(truncated) && len(truncated) > 0 {
		truncated = truncated[:len(truncated)-1]
	}

	tp.logger.Debug("Text truncated",
		zap.Int("original_size", len(text)),
		zap.Int("truncated_size", len(truncated)),
		zap.Int("max_size", maxSize))

	return truncated + truncationMarker
}

// SanitizeUTF8 drops invalid UTF-8 bytes
func (tp *TextProcessor) SanitizeUTF8(text string) string {
	if utf8.ValidString(text) {
		return text
	}

	sanitized := strings.ToValidUTF8(text, "")

	tp.logger.Debug("Text sanitized",
		zap.Int("original_size", len(text)),
		zap.Int("sanitized_size", len(sanitized)))

	return sanitized
}

// ProcessText sanitizes and truncates text in one operation
func (tp *TextProcessor) ProcessText(text string, maxSize int) string {
	return tp.TruncateText(tp.SanitizeUTF8(text), maxSize)
}

// BuildPrompt renders the classification prompt for text, limited to maxSize bytes of input
func (tp *TextProcessor) BuildPrompt(text string, maxSize int) string {
	return fmt.Sprintf(classificationPrompt, tp.ProcessText(text, maxSize))
}

// SpamProbabilityResponse is the JSON object hosted models are asked to return
type SpamProbabilityResponse struct {
	SpamProbability *float64 `json:"spam_probability"`
}

// ParseSpamProbability extracts spam_probability from a model reply,
// tolerating prose or code fences around the JSON object
func ParseSpamProbability(reply string) (float64, error) {
	var resp SpamProbabilityResponse
	if err := json.Unmarshal([]byte(reply), &resp); err != nil {
		start := strings.Index(reply, "{")
		end := strings.LastIndex(reply, "}")
		if start < 0 || end <= start {
			return 0, fmt.Errorf("failed to extract JSON from model response: %w", err)
		}
		if err := json.Unmarshal([]byte(reply[start:end+1]), &resp); err != nil {
			return 0, fmt.Errorf("failed to parse model response as JSON: %w", err)
		}
	}

	if resp.SpamProbability == nil {
		return 0, fmt.Errorf("model response has no spam_probability")
	}
	p := *resp.SpamProbability
	if p < 0 || p > 1 {
		return 0, fmt.Errorf("spam_probability %v out of range", p)
	}
	return p, nil
}
