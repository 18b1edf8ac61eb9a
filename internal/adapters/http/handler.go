package http

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/Wasim1024/spamDetectionApp/internal/core"
	"go.uber.org/zap"
)

const maxRequestBody = 1 << 20

// Handler translates HTTP requests into pipeline, history and analytics calls
type Handler struct {
	pipeline     *core.InferencePipeline
	history      *core.History
	analytics    *core.Analytics
	defaultLimit int
	provider     string
	logger       *zap.Logger
	now          func() time.Time
}

// NewHandler creates a new HTTP handler
func NewHandler(
	pipeline *core.InferencePipeline,
	history *core.History,
	analytics *core.Analytics,
	defaultLimit int,
	provider string,
	logger *zap.Logger,
) *Handler {
	return &Handler{
		pipeline:     pipeline,
		history:      history,
		analytics:    analytics,
		defaultLimit: defaultLimit,
		provider:     provider,
		logger:       logger,
		now:          time.Now,
	}
}

type predictRequest struct {
	Text *string `json:"text"`
}

type batchRequest struct {
	Texts []string `json:"texts"`
}

type predictionResponse struct {
	Prediction int       `json:"prediction"`
	Result     string    `json:"result"`
	Confidence float64   `json:"confidence"`
	Text       string    `json:"text"`
	Timestamp  time.Time `json:"timestamp"`
	TextLength int       `json:"text_length"`
	WordCount  int       `json:"word_count"`
}

type batchErrorResponse struct {
	Index   int    `json:"index"`
	Status  string `json:"status"`
	Code    string `json:"code"`
	Message string `json:"message"`
}

func toResponse(r core.PredictionResult) predictionResponse {
	return predictionResponse{
		Prediction: r.Label.Int(),
		Result:     string(r.Label),
		Confidence: r.Confidence,
		Text:       r.Text,
		Timestamp:  r.Timestamp,
		TextLength: r.TextLength,
		WordCount:  r.WordCount,
	}
}

func toResponses(results []core.PredictionResult) []predictionResponse {
	out := make([]predictionResponse, len(results))
	for i, r := range results {
		out[i] = toResponse(r)
	}
	return out
}

func (h *Handler) root(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"message": "Spam Detection API is running!",
		"status":  "healthy",
	})
}

func (h *Handler) health(w http.ResponseWriter, r *http.Request) {
	status := "healthy"
	modelLoaded := true
	if err := h.pipeline.Ready(); err != nil {
		status = "degraded"
		modelLoaded = false
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"status":       status,
		"timestamp":    h.now().UTC(),
		"model_loaded": modelLoaded,
		"provider":     h.provider,
		"model":        h.pipeline.ModelName(),
	})
}

func (h *Handler) predict(w http.ResponseWriter, r *http.Request) {
	var req predictRequest
	if !h.decode(w, r, &req) {
		return
	}
	if req.Text == nil || *req.Text == "" {
		writeDomainError(w, r, fmt.Errorf("%w: text is required", core.ErrInvalidInput))
		return
	}

	result, err := h.pipeline.Classify(r.Context(), *req.Text)
	if err != nil {
		h.logger.Error("Prediction failed",
			zap.String("request_id", requestIDFromContext(r.Context())),
			zap.Error(err))
		writeDomainError(w, r, err)
		return
	}
	h.history.Append(result)

	writeJSON(w, http.StatusOK, toResponse(result))
}

func (h *Handler) predictBatch(w http.ResponseWriter, r *http.Request) {
	var req batchRequest
	if !h.decode(w, r, &req) {
		return
	}
	if len(req.Texts) == 0 {
		writeDomainError(w, r, fmt.Errorf("%w: texts must not be empty", core.ErrInvalidInput))
		return
	}
	if err := h.pipeline.Ready(); err != nil {
		writeDomainError(w, r, err)
		return
	}

	items := h.pipeline.ClassifyBatch(r.Context(), req.Texts)
	results := make([]any, len(items))
	succeeded := make([]core.PredictionResult, 0, len(items))
	for i, item := range items {
		if item.Err != nil {
			_, code, message := mapDomainError(item.Err)
			results[i] = batchErrorResponse{Index: item.Index, Status: "error", Code: code, Message: message}
			continue
		}
		succeeded = append(succeeded, item.Result)
		results[i] = toResponse(item.Result)
	}
	h.history.Append(succeeded...)

	writeJSON(w, http.StatusOK, map[string]any{
		"results":         results,
		"total_processed": len(succeeded),
		"failed":          len(items) - len(succeeded),
	})
}

func (h *Handler) getAnalytics(w http.ResponseWriter, r *http.Request) {
	snap, err := h.analytics.Snapshot()
	if errors.Is(err, core.ErrNoData) {
		writeJSON(w, http.StatusOK, map[string]any{
			"message":           "No predictions available",
			"total_predictions": 0,
		})
		return
	}
	if err != nil {
		writeDomainError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"total_predictions":   snap.Total,
		"spam_count":          snap.SpamCount,
		"ham_count":           snap.HamCount,
		"spam_percentage":     snap.SpamPercentage,
		"average_confidence":  snap.AverageConfidence,
		"average_text_length": snap.AverageTextLength,
		"average_word_count":  snap.AverageWordCount,
		"recent_predictions":  toResponses(snap.Recent),
	})
}

func (h *Handler) getHistory(w http.ResponseWriter, r *http.Request) {
	limit := h.defaultLimit
	if raw := r.URL.Query().Get("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n <= 0 {
			writeDomainError(w, r, fmt.Errorf("%w: limit must be a positive integer", core.ErrInvalidInput))
			return
		}
		limit = n
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"history":     toResponses(h.history.Recent(limit)),
		"total_count": h.history.Len(),
	})
}

func (h *Handler) clearHistory(w http.ResponseWriter, r *http.Request) {
	count := h.history.Clear()
	h.logger.Info("Cleared prediction history", zap.Int("count", count))

	writeJSON(w, http.StatusOK, map[string]any{
		"message": fmt.Sprintf("Cleared %d predictions", count),
		"count":   count,
	})
}

// decode reads a JSON body, writing the error response itself on failure
func (h *Handler) decode(w http.ResponseWriter, r *http.Request, dst any) bool {
	r.Body = http.MaxBytesReader(w, r.Body, maxRequestBody)
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		var maxErr *http.MaxBytesError
		if errors.As(err, &maxErr) {
			writeError(w, r, http.StatusRequestEntityTooLarge, "payload_too_large", "request body too large")
			return false
		}
		writeError(w, r, http.StatusBadRequest, "invalid_json", "request body must be valid JSON")
		return false
	}
	return true
}
