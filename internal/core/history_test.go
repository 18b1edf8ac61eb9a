package core

import (
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func result(text string, label Label) PredictionResult {
	return PredictionResult{Text: text, Label: label, Confidence: 0.9}
}

func TestHistoryRecentOrder(t *testing.T) {
	h := NewHistory()
	for i := 0; i < 5; i++ {
		h.Append(result(fmt.Sprint(i), LabelHam))
	}

	recent := h.Recent(3)
	assert.Equal(t, []string{"2", "3", "4"}, texts(recent))
	assert.Len(t, h.Recent(50), 5)
	assert.Empty(t, h.Recent(0))
	assert.Empty(t, h.Recent(-1))
	assert.Equal(t, 5, h.Len())
}

func TestHistoryReturnsCopies(t *testing.T) {
	h := NewHistory()
	h.Append(result("original", LabelSpam))

	all := h.All()
	all[0].Text = "mutated"

	assert.Equal(t, "original", h.All()[0].Text)
}

func TestHistoryClear(t *testing.T) {
	h := NewHistory()
	h.Append(result("a", LabelHam), result("b", LabelSpam), result("c", LabelHam))

	assert.Equal(t, 3, h.Clear())
	assert.Zero(t, h.Len())
	assert.Zero(t, h.Clear())
}

func TestHistoryConcurrentAppendAndClear(t *testing.T) {
	h := NewHistory()
	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(2)
		go func(i int) {
			defer wg.Done()
			h.Append(result(fmt.Sprint(i), LabelHam))
		}(i)
		go func() {
			defer wg.Done()
			_ = h.Recent(5)
		}()
	}
	wg.Wait()
	assert.Equal(t, 50, h.Len())

	cleared := make(chan int)
	go func() { cleared <- h.Clear() }()
	h.Append(result("late", LabelSpam))
	n := <-cleared

	// either the append landed before the clear or it survived it
	switch h.Len() {
	case 0:
		assert.Equal(t, 51, n)
	case 1:
		assert.Equal(t, 50, n)
		assert.Equal(t, "late", h.All()[0].Text)
	default:
		t.Fatalf("torn history: %d entries", h.Len())
	}
}

func texts(rs []PredictionResult) []string {
	out := make([]string, len(rs))
	for i, r := range rs {
		out[i] = r.Text
	}
	return out
}
