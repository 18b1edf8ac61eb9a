package core

// Analytics computes summary statistics over a History on demand
type Analytics struct {
	history     *History
	recentLimit int
}

// NewAnalytics creates an aggregator reporting the last recentLimit results
func NewAnalytics(history *History, recentLimit int) *Analytics {
	return &Analytics{history: history, recentLimit: recentLimit}
}

// Snapshot summarises the full history. It returns ErrNoData when the history is empty.
func (a *Analytics) Snapshot() (*AnalyticsSnapshot, error) {
	entries := a.history.All()
	if len(entries) == 0 {
		return nil, ErrNoData
	}

	snap := &AnalyticsSnapshot{Total: len(entries)}
	var confidence, length, words float64
	for _, e := range entries {
		if e.IsSpam() {
			snap.SpamCount++
		} else {
			snap.HamCount++
		}
		confidence += e.Confidence
		length += float64(e.TextLength)
		words += float64(e.WordCount)
	}

	total := float64(snap.Total)
	snap.SpamPercentage = 100 * float64(snap.SpamCount) / total
	snap.AverageConfidence = confidence / total
	snap.AverageTextLength = length / total
	snap.AverageWordCount = words / total
	snap.Recent = tail(entries, a.recentLimit)

	return snap, nil
}
