package bedrock

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/Wasim1024/spamDetectionApp/internal/utils"
	"github.com/aws/aws-sdk-go-v2/service/bedrockruntime"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type fakeInvoker struct {
	body  []byte
	err   error
	input *bedrockruntime.InvokeModelInput
}

func (f *fakeInvoker) InvokeModel(_ context.Context, in *bedrockruntime.InvokeModelInput, _ ...func(*bedrockruntime.Options)) (*bedrockruntime.InvokeModelOutput, error) {
	f.input = in
	if f.err != nil {
		return nil, f.err
	}
	return &bedrockruntime.InvokeModelOutput{Body: f.body}, nil
}

func newClassifier(f *fakeInvoker, modelID string) *BedrockClassifier {
	logger := zap.NewNop()
	return NewBedrockClassifier(f, modelID, 100, 0, 0.9, 256, logger, utils.NewTextProcessor(logger))
}

func TestPredictClaude(t *testing.T) {
	f := &fakeInvoker{body: []byte(`{"completion": " {\"spam_probability\": 0.75}"}`)}
	c := newClassifier(f, "anthropic.claude-v2")

	dist, err := c.Predict(context.Background(), "Claim your prize")
	require.NoError(t, err)
	assert.InDelta(t, 0.75, dist.Spam, 1e-9)

	var sent map[string]interface{}
	require.NoError(t, json.Unmarshal(f.input.Body, &sent))
	assert.Contains(t, sent["prompt"], "Claim your prize")
	assert.Contains(t, sent, "max_tokens_to_sample")
	assert.Equal(t, "anthropic.claude-v2", *f.input.ModelId)
}

func TestPredictTitan(t *testing.T) {
	f := &fakeInvoker{body: []byte(`{"results":[{"outputText":"{\"spam_probability\":0.05}"}]}`)}
	c := newClassifier(f, "amazon.titan-text-express-v1")

	dist, err := c.Predict(context.Background(), "See you at lunch")
	require.NoError(t, err)
	assert.InDelta(t, 0.95, dist.Ham, 1e-9)

	var sent map[string]interface{}
	require.NoError(t, json.Unmarshal(f.input.Body, &sent))
	assert.Contains(t, sent, "textGenerationConfig")
}

func TestPredictGenericModel(t *testing.T) {
	f := &fakeInvoker{body: []byte(`{"output":"{\"spam_probability\":0.5}"}`)}
	dist, err := newClassifier(f, "meta.llama").Predict(context.Background(), "x")
	require.NoError(t, err)
	assert.InDelta(t, 0.5, dist.Spam, 1e-9)
}

func TestPredictErrors(t *testing.T) {
	_, err := newClassifier(&fakeInvoker{err: errors.New("throttled")}, "anthropic.claude-v2").Predict(context.Background(), "x")
	assert.Error(t, err)

	_, err = newClassifier(&fakeInvoker{body: []byte(`{"results":[]}`)}, "amazon.titan-text").Predict(context.Background(), "x")
	assert.Error(t, err)
}
