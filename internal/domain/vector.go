package domain

import "math"

// CosineSimilarity computes the cosine similarity between two vectors.
// Returns 0.0 when either vector is empty or has zero magnitude, so callers
// can treat a missing embedding as "no match" without a special case.
// The result is not clamped; floating noise slightly above 1.0 is possible.
func CosineSimilarity(a, b []float32) float64 {
	if len(a) == 0 || len(b) == 0 {
		return 0.0
	}

	n := len(a)
	if len(b) < n {
		n = len(b)
	}

	var dot, normA, normB float64
	for i := 0; i < n; i++ {
		dot += float64(a[i]) * float64(b[i])
		normA += float64(a[i]) * float64(a[i])
		normB += float64(b[i]) * float64(b[i])
	}

	if normA == 0 || normB == 0 {
		return 0.0
	}

	return dot / (math.Sqrt(normA) * math.Sqrt(normB))
}
