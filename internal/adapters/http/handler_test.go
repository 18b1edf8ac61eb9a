package http

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/Wasim1024/spamDetectionApp/internal/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type stubClassifier struct {
	predict func(text string) (core.Distribution, error)
}

func (s *stubClassifier) Predict(ctx context.Context, text string) (core.Distribution, error) {
	return s.predict(text)
}

func (s *stubClassifier) Name() string {
	return "stub"
}

func keywordClassifier() *stubClassifier {
	return &stubClassifier{predict: func(text string) (core.Distribution, error) {
		if strings.Contains(strings.ToLower(text), "free") {
			return core.Distribution{Ham: 0.1, Spam: 0.9}, nil
		}
		return core.Distribution{Ham: 0.8, Spam: 0.2}, nil
	}}
}

type testAPI struct {
	router  http.Handler
	history *core.History
}

func newTestAPI(t *testing.T, classifier core.Classifier) *testAPI {
	t.Helper()
	logger := zap.NewNop()
	history := core.NewHistory()
	pipeline := core.NewInferencePipeline(classifier, nil, core.CacheSettings{}, logger)
	handler := NewHandler(pipeline, history, core.NewAnalytics(history, 10), 10, "local", logger)
	return &testAPI{
		router:  NewRouter(handler, []string{"*"}, logger),
		history: history,
	}
}

func (a *testAPI) do(t *testing.T, method, path, body string) (*httptest.ResponseRecorder, map[string]any) {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	a.router.ServeHTTP(rec, req)

	var payload map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &payload), rec.Body.String())
	return rec, payload
}

func TestRootAndHealth(t *testing.T) {
	api := newTestAPI(t, keywordClassifier())

	rec, body := api.do(t, http.MethodGet, "/", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "healthy", body["status"])
	assert.NotEmpty(t, rec.Header().Get("X-Request-Id"))

	rec, body = api.do(t, http.MethodGet, "/health", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "healthy", body["status"])
	assert.Equal(t, true, body["model_loaded"])
	assert.Contains(t, body, "timestamp")
}

func TestPredict(t *testing.T) {
	api := newTestAPI(t, keywordClassifier())

	rec, body := api.do(t, http.MethodPost, "/predict", `{"text":"Get it free now"}`)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, float64(1), body["prediction"])
	assert.Equal(t, "spam", body["result"])
	assert.InDelta(t, 0.9, body["confidence"], 1e-9)
	assert.Equal(t, "Get it free now", body["text"])
	assert.Equal(t, float64(15), body["text_length"])
	assert.Equal(t, float64(4), body["word_count"])
	assert.Equal(t, 1, api.history.Len())
}

func TestPredictValidation(t *testing.T) {
	api := newTestAPI(t, keywordClassifier())

	tests := []struct {
		name string
		body string
		code string
	}{
		{"empty text", `{"text":""}`, "invalid_input"},
		{"missing text", `{}`, "invalid_input"},
		{"malformed json", `{"text":`, "invalid_json"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec, body := api.do(t, http.MethodPost, "/predict", tt.body)
			assert.Equal(t, http.StatusBadRequest, rec.Code)
			assert.Equal(t, "error", body["status"])
			assert.Equal(t, tt.code, body["code"])
			assert.NotEmpty(t, body["request_id"])
		})
	}
	assert.Equal(t, 0, api.history.Len())
}

func TestPredictModelUnavailable(t *testing.T) {
	api := newTestAPI(t, core.NewUnavailableClassifier(errors.New("missing artifacts")))

	rec, body := api.do(t, http.MethodPost, "/predict", `{"text":"hello"}`)
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	assert.Equal(t, "model_unavailable", body["code"])

	rec, body = api.do(t, http.MethodPost, "/predict-batch", `{"texts":["a"]}`)
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	assert.Equal(t, "model_unavailable", body["code"])

	rec, body = api.do(t, http.MethodGet, "/health", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, false, body["model_loaded"])
	assert.Equal(t, 0, api.history.Len())
}

func TestPredictInferenceError(t *testing.T) {
	api := newTestAPI(t, &stubClassifier{predict: func(string) (core.Distribution, error) {
		return core.Distribution{}, errors.New("boom")
	}})

	rec, body := api.do(t, http.MethodPost, "/predict", `{"text":"hello"}`)
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, "inference_error", body["code"])
	assert.Equal(t, 0, api.history.Len())
}

func TestPredictBatchPreservesOrder(t *testing.T) {
	api := newTestAPI(t, keywordClassifier())

	rec, body := api.do(t, http.MethodPost, "/predict-batch", `{"texts":["a","b"]}`)
	require.Equal(t, http.StatusOK, rec.Code)
	results := body["results"].([]any)
	require.Len(t, results, 2)
	assert.Equal(t, "a", results[0].(map[string]any)["text"])
	assert.Equal(t, "b", results[1].(map[string]any)["text"])
	assert.Equal(t, float64(2), body["total_processed"])
	assert.Equal(t, 2, api.history.Len())
}

func TestPredictBatchIsolatesFailures(t *testing.T) {
	api := newTestAPI(t, &stubClassifier{predict: func(text string) (core.Distribution, error) {
		if text == "bad" {
			return core.Distribution{}, errors.New("cannot vectorize")
		}
		return core.Distribution{Ham: 0.7, Spam: 0.3}, nil
	}})

	rec, body := api.do(t, http.MethodPost, "/predict-batch", `{"texts":["ok","bad","fine"]}`)
	require.Equal(t, http.StatusOK, rec.Code)
	results := body["results"].([]any)
	require.Len(t, results, 3)
	failed := results[1].(map[string]any)
	assert.Equal(t, "error", failed["status"])
	assert.Equal(t, "inference_error", failed["code"])
	assert.Equal(t, float64(1), failed["index"])
	assert.Equal(t, float64(2), body["total_processed"])
	assert.Equal(t, float64(1), body["failed"])
	assert.Equal(t, 2, api.history.Len())
}

func TestPredictBatchRejectsEmptyList(t *testing.T) {
	api := newTestAPI(t, keywordClassifier())

	rec, body := api.do(t, http.MethodPost, "/predict-batch", `{"texts":[]}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "invalid_input", body["code"])
}

func TestAnalytics(t *testing.T) {
	api := newTestAPI(t, keywordClassifier())

	rec, body := api.do(t, http.MethodGet, "/analytics", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "No predictions available", body["message"])
	assert.Equal(t, float64(0), body["total_predictions"])

	api.do(t, http.MethodPost, "/predict", `{"text":"free prize"}`)
	api.do(t, http.MethodPost, "/predict", `{"text":"see you at lunch"}`)

	rec, body = api.do(t, http.MethodGet, "/analytics", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, float64(2), body["total_predictions"])
	assert.Equal(t, float64(1), body["spam_count"])
	assert.Equal(t, float64(1), body["ham_count"])
	assert.InDelta(t, 50.0, body["spam_percentage"], 1e-9)
	assert.InDelta(t, 0.85, body["average_confidence"], 1e-9)
	assert.Len(t, body["recent_predictions"], 2)
}

func TestHistoryLimit(t *testing.T) {
	api := newTestAPI(t, keywordClassifier())
	for _, text := range []string{"one", "two", "three"} {
		api.do(t, http.MethodPost, "/predict", `{"text":"`+text+`"}`)
	}

	rec, body := api.do(t, http.MethodGet, "/history?limit=2", "")
	require.Equal(t, http.StatusOK, rec.Code)
	history := body["history"].([]any)
	require.Len(t, history, 2)
	assert.Equal(t, "two", history[0].(map[string]any)["text"])
	assert.Equal(t, "three", history[1].(map[string]any)["text"])
	assert.Equal(t, float64(3), body["total_count"])

	rec, body = api.do(t, http.MethodGet, "/history", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Len(t, body["history"], 3)

	for _, limit := range []string{"0", "-1", "abc"} {
		rec, body = api.do(t, http.MethodGet, "/history?limit="+limit, "")
		assert.Equal(t, http.StatusBadRequest, rec.Code, limit)
		assert.Equal(t, "invalid_input", body["code"])
	}
}

func TestClearHistory(t *testing.T) {
	api := newTestAPI(t, keywordClassifier())
	for i := 0; i < 3; i++ {
		api.do(t, http.MethodPost, "/predict", `{"text":"free"}`)
	}

	rec, body := api.do(t, http.MethodDelete, "/history", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, float64(3), body["count"])

	_, body = api.do(t, http.MethodGet, "/analytics", "")
	assert.Equal(t, "No predictions available", body["message"])
}

func TestRecoverMiddleware(t *testing.T) {
	api := newTestAPI(t, keywordClassifier())
	router := recoverMiddleware(zap.NewNop())(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		panic("handler bug")
	}))

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Equal(t, http.StatusInternalServerError, rec.Code)

	// the API keeps serving afterwards
	rec2, _ := api.do(t, http.MethodGet, "/", "")
	assert.Equal(t, http.StatusOK, rec2.Code)
}

func TestUnknownRoute(t *testing.T) {
	api := newTestAPI(t, keywordClassifier())

	rec, body := api.do(t, http.MethodGet, "/nope", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "not_found", body["code"])
}

func TestCORSPreflight(t *testing.T) {
	api := newTestAPI(t, keywordClassifier())

	req := httptest.NewRequest(http.MethodOptions, "/predict", nil)
	req.Header.Set("Origin", "http://localhost:3000")
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)
	rec := httptest.NewRecorder()
	api.router.ServeHTTP(rec, req)

	assert.NotEmpty(t, rec.Header().Get("Access-Control-Allow-Origin"))
}
