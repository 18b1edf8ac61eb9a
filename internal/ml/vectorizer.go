package ml

import (
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/unicode/norm"
)

// ErrEmptyVocabulary is returned when fitting finds no usable terms
var ErrEmptyVocabulary = errors.New("empty vocabulary: documents contain only stop words or short tokens")

// SparseVector holds the non-zero term counts of one document, indices ascending
type SparseVector struct {
	Indices []int
	Values  []float64
}

// Len returns the number of non-zero entries
func (s SparseVector) Len() int {
	return len(s.Indices)
}

// CountVectorizer maps text to term counts over a fitted vocabulary.
// A fitted vectorizer is read-only and safe for concurrent use.
type CountVectorizer struct {
	Vocabulary  map[string]int `json:"vocabulary"`
	MaxFeatures int            `json:"max_features"`
	Lowercase   bool           `json:"lowercase"`
	StopWords   bool           `json:"stop_words"`
}

// NewCountVectorizer creates an unfitted vectorizer that lowercases and drops English stop words.
// maxFeatures <= 0 keeps every term.
func NewCountVectorizer(maxFeatures int) *CountVectorizer {
	return &CountVectorizer{
		MaxFeatures: maxFeatures,
		Lowercase:   true,
		StopWords:   true,
	}
}

// Tokenize splits text into terms of two or more letters, digits or underscores
func (v *CountVectorizer) Tokenize(text string) []string {
	text = norm.NFKC.String(text)
	if v.Lowercase {
		// Casers are stateful; one per call
		text = cases.Fold().String(text)
	}

	var tokens []string
	start := -1
	flush := func(end int) {
		if start < 0 {
			return
		}
		tok := text[start:end]
		start = -1
		if utf8.RuneCountInString(tok) < 2 {
			return
		}
		if v.StopWords {
			if _, stop := englishStopWords[tok]; stop {
				return
			}
		}
		tokens = append(tokens, tok)
	}

	for i, r := range text {
		if unicode.IsLetter(r) || unicode.IsDigit(r) || r == '_' {
			if start < 0 {
				start = i
			}
			continue
		}
		flush(i)
	}
	flush(len(text))

	return tokens
}

// Fit learns the vocabulary from docs. When MaxFeatures is set, the most frequent
// terms are kept (ties broken alphabetically). Feature indices follow alphabetical order.
func (v *CountVectorizer) Fit(docs []string) error {
	counts := make(map[string]int)
	for _, doc := range docs {
		for _, tok := range v.Tokenize(doc) {
			counts[tok]++
		}
	}
	if len(counts) == 0 {
		return ErrEmptyVocabulary
	}

	terms := make([]string, 0, len(counts))
	for term := range counts {
		terms = append(terms, term)
	}

	if v.MaxFeatures > 0 && len(terms) > v.MaxFeatures {
		sort.Slice(terms, func(i, j int) bool {
			if counts[terms[i]] != counts[terms[j]] {
				return counts[terms[i]] > counts[terms[j]]
			}
			return terms[i] < terms[j]
		})
		terms = terms[:v.MaxFeatures]
	}

	sort.Strings(terms)
	v.Vocabulary = make(map[string]int, len(terms))
	for i, term := range terms {
		v.Vocabulary[term] = i
	}
	return nil
}

// Transform returns the term counts of text. Unknown terms are ignored.
func (v *CountVectorizer) Transform(text string) SparseVector {
	counts := make(map[int]float64)
	for _, tok := range v.Tokenize(text) {
		if idx, ok := v.Vocabulary[tok]; ok {
			counts[idx]++
		}
	}

	vec := SparseVector{
		Indices: make([]int, 0, len(counts)),
		Values:  make([]float64, 0, len(counts)),
	}
	for idx := range counts {
		vec.Indices = append(vec.Indices, idx)
	}
	sort.Ints(vec.Indices)
	for _, idx := range vec.Indices {
		vec.Values = append(vec.Values, counts[idx])
	}
	return vec
}

// Dim returns the number of features
func (v *CountVectorizer) Dim() int {
	return len(v.Vocabulary)
}

// FeatureNames returns the vocabulary in feature-index order
func (v *CountVectorizer) FeatureNames() []string {
	names := make([]string, len(v.Vocabulary))
	for term, idx := range v.Vocabulary {
		names[idx] = term
	}
	return names
}

// UnmarshalVectorizer decodes and validates a persisted vectorizer
func UnmarshalVectorizer(data []byte) (*CountVectorizer, error) {
	var v CountVectorizer
	if err := json.Unmarshal(data, &v); err != nil {
		return nil, fmt.Errorf("failed to decode vectorizer: %w", err)
	}
	if len(v.Vocabulary) == 0 {
		return nil, ErrEmptyVocabulary
	}
	seen := make([]bool, len(v.Vocabulary))
	for term, idx := range v.Vocabulary {
		if idx < 0 || idx >= len(seen) || seen[idx] {
			return nil, fmt.Errorf("vectorizer has invalid index %d for term %q", idx, term)
		}
		seen[idx] = true
	}
	return &v, nil
}
