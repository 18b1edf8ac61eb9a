package core

import "sync"

// History is the in-process, insertion-ordered log of prediction results
type History struct {
	mu      sync.RWMutex
	entries []PredictionResult
}

// NewHistory creates an empty history
func NewHistory() *History {
	return &History{}
}

// Append records results in order under a single lock acquisition
func (h *History) Append(results ...PredictionResult) {
	if len(results) == 0 {
		return
	}
	h.mu.Lock()
	defer h.mu.Unlock()
	h.entries = append(h.entries, results...)
}

// Recent returns up to the last n results, oldest first
func (h *History) Recent(n int) []PredictionResult {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return tail(h.entries, n)
}

// All returns a copy of the whole history
func (h *History) All() []PredictionResult {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return tail(h.entries, len(h.entries))
}

// Len returns the number of recorded results
func (h *History) Len() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.entries)
}

// Clear empties the history and returns how many results were removed
func (h *History) Clear() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	n := len(h.entries)
	h.entries = nil
	return n
}

func tail(entries []PredictionResult, n int) []PredictionResult {
	if n <= 0 {
		return []PredictionResult{}
	}
	if n > len(entries) {
		n = len(entries)
	}
	out := make([]PredictionResult, n)
	copy(out, entries[len(entries)-n:])
	return out
}
