package textutil

import (
	"math"
	"slices"
)

// Expander maps a token to the terms it contributes to, including itself.
type Expander func(token string) []string

// Fingerprint represents a term-frequency vector for text similarity comparison.
type Fingerprint struct {
	counts map[string]float64
	terms  []string
	norm   float64
}

// NewFingerprint builds a fingerprint from a token sequence. Each occurrence
// of a token adds one to every term returned by expand; a nil expand counts the
// token alone. Returns nil when tokens is empty.
func NewFingerprint(tokens []string, expand Expander) *Fingerprint {
	if len(tokens) == 0 {
		return nil
	}
	counts := make(map[string]float64, len(tokens))
	for _, token := range tokens {
		if expand == nil {
			counts[token]++
			continue
		}
		for _, term := range expand(token) {
			counts[term]++
		}
	}
	if len(counts) == 0 {
		return nil
	}
	terms := make([]string, 0, len(counts))
	for term := range counts {
		terms = append(terms, term)
	}
	slices.Sort(terms)

	var norm float64
	for _, term := range terms {
		c := counts[term]
		norm += c * c
	}
	return &Fingerprint{
		counts: counts,
		terms:  terms,
		norm:   math.Sqrt(norm),
	}
}

// TokenCount returns the number of unique terms in the fingerprint.
func (f *Fingerprint) TokenCount() int {
	if f == nil {
		return 0
	}
	return len(f.terms)
}

// Terms returns the fingerprint's terms in sorted order.
func (f *Fingerprint) Terms() []string {
	if f == nil {
		return nil
	}
	return slices.Clone(f.terms)
}

// Count returns the weight recorded for term.
func (f *Fingerprint) Count(term string) float64 {
	if f == nil {
		return 0
	}
	return f.counts[term]
}

// Vector projects the fingerprint onto vocab, one component per term.
func (f *Fingerprint) Vector(vocab []string) []float64 {
	vec := make([]float64, len(vocab))
	if f == nil {
		return vec
	}
	for i, term := range vocab {
		vec[i] = f.counts[term]
	}
	return vec
}

// Vocabulary returns the sorted union of the terms of every fingerprint.
func Vocabulary(fps ...*Fingerprint) []string {
	var vocab []string
	for _, fp := range fps {
		if fp == nil {
			continue
		}
		vocab = append(vocab, fp.terms...)
	}
	slices.Sort(vocab)
	return slices.Compact(vocab)
}
