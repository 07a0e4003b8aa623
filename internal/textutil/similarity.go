package textutil

import "math"

// CosineSimilarity computes the cosine similarity between two fingerprints
// over their shared vocabulary. Returns 0 if either fingerprint is nil or has
// zero norm.
func CosineSimilarity(a, b *Fingerprint) float64 {
	if a == nil || b == nil || a.norm == 0 || b.norm == 0 {
		return 0
	}
	vocab := Vocabulary(a, b)
	va := a.Vector(vocab)
	vb := b.Vector(vocab)

	var dot, normA, normB float64
	for i := range vocab {
		dot += va[i] * vb[i]
		normA += va[i] * va[i]
		normB += vb[i] * vb[i]
	}
	if dot == 0 || normA == 0 || normB == 0 {
		return 0
	}
	return dot / math.Sqrt(normA*normB)
}
