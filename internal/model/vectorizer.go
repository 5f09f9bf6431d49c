package model

import (
	"math"
	"regexp"
	"strings"
)

// tokenRegex matches runs of at least two word characters. Input is
// lowercased before matching, mirroring the tokenization the vectorizer was
// fitted with.
var tokenRegex = regexp.MustCompile(`[a-z0-9_]{2,}`)

// TfidfVectorizer is a pre-fitted term-weighting vectorizer: a fixed
// vocabulary mapping terms to vector indices and the matching idf weights.
type TfidfVectorizer struct {
	Vocabulary map[string]int `json:"vocabulary"`
	Idf        []float64      `json:"idf"`
}

// Transform turns text into an L2-normalized tf-idf vector over the fitted
// vocabulary. Out-of-vocabulary terms contribute nothing; text with no known
// terms yields the zero vector.
func (v *TfidfVectorizer) Transform(text string) []float64 {
	vec := make([]float64, len(v.Idf))

	for _, token := range tokenRegex.FindAllString(strings.ToLower(text), -1) {
		idx, ok := v.Vocabulary[token]
		if !ok || idx < 0 || idx >= len(v.Idf) {
			continue
		}
		vec[idx] += v.Idf[idx]
	}

	norm := 0.0
	for _, x := range vec {
		norm += x * x
	}
	if norm == 0 {
		return vec
	}
	norm = math.Sqrt(norm)
	for i := range vec {
		vec[i] /= norm
	}
	return vec
}

// CosineSimilarity of two L2-normalized vectors reduces to their dot product.
func CosineSimilarity(a, b []float64) float64 {
	n := len(a)
	if len(b) < n {
		n = len(b)
	}
	dot := 0.0
	for i := 0; i < n; i++ {
		dot += a[i] * b[i]
	}
	return dot
}

// IsZero reports whether the vector carries no signal at all.
func IsZero(vec []float64) bool {
	for _, x := range vec {
		if x != 0 {
			return false
		}
	}
	return true
}
