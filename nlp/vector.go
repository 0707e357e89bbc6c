package nlp

import "math"

// Vector is a bag-of-words count vector indexed by a Vocabulary.
type Vector []int

// ToVector counts the in-vocabulary tokens. Out-of-vocabulary tokens are ignored.
func ToVector(tokens []string, vocab Vocabulary) Vector {
	vec := make(Vector, vocab.Size())
	for _, t := range tokens {
		if i, ok := vocab.Index(t); ok {
			vec[i]++
		}
	}
	return vec
}

// CosineSim returns the cosine of the angle between a and b.
// Empty vectors, length mismatches and zero-norm vectors score exactly 0.
// Rounding is clamped so the result stays within [0, 1].
func CosineSim(a, b Vector) float64 {
	if len(a) == 0 || len(b) == 0 || len(a) != len(b) {
		return 0
	}
	var dot, na2, nb2 float64
	for i := range a {
		va, vb := float64(a[i]), float64(b[i])
		dot += va * vb
		na2 += va * va
		nb2 += vb * vb
	}
	if na2 == 0 || nb2 == 0 {
		return 0
	}
	return math.Min(1, dot/(math.Sqrt(na2)*math.Sqrt(nb2)))
}
