package similarity

import (
	"math"
	"unicode/utf8"

	"github.com/agnivade/levenshtein"

	"plagcheck/internal/textutil"
	"plagcheck/internal/thesaurus"
)

// FrequencyMatch returns the fraction of candidate tokens that can be matched,
// left to right, against unused occurrences of the same token in original.
// Each original occurrence matches at most once. Returns 0 when either side is
// empty.
func FrequencyMatch(original, candidate []string) float64 {
	if len(original) == 0 || len(candidate) == 0 {
		return 0
	}
	remaining := make(map[string]int, len(original))
	for _, token := range original {
		remaining[token]++
	}
	matched := 0
	for _, token := range candidate {
		if remaining[token] > 0 {
			matched++
			remaining[token]--
		}
	}
	return clamp(float64(matched) / float64(len(candidate)))
}

// Cosine returns the cosine similarity of the two token sequences after each
// occurrence is expanded to its synonym set. A nil lookup disables expansion.
// Returns 0 when either side is empty.
func Cosine(original, candidate []string, lookup thesaurus.Lookup) float64 {
	if len(original) == 0 || len(candidate) == 0 {
		return 0
	}
	if lookup == nil {
		lookup = thesaurus.Identity{}
	}
	expand := textutil.Expander(lookup.Synonyms)
	a := textutil.NewFingerprint(original, expand)
	b := textutil.NewFingerprint(candidate, expand)
	return clamp(textutil.CosineSimilarity(a, b))
}

// EditDistance returns 1 - d/max(len(a), len(b)) where d is the Levenshtein
// distance between a and b counted in runes. Returns 0 when either side is
// empty.
func EditDistance(a, b string) float64 {
	if a == "" || b == "" {
		return 0
	}
	longest := max(utf8.RuneCountInString(a), utf8.RuneCountInString(b))
	distance := levenshtein.ComputeDistance(a, b)
	return clamp(1 - float64(distance)/float64(longest))
}

func clamp(v float64) float64 {
	if math.IsNaN(v) || v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
