package nlp

// FindBest scans kb in order and returns the index and score of the most
// similar vector. A later vector must score strictly higher to win, so ties
// keep the earliest entry. ok is true only when score >= threshold.
// index is -1 when no vector scored above zero.
func FindBest(query Vector, kb []Vector, threshold float64) (index int, score float64, ok bool) {
	index = -1
	for i, v := range kb {
		if s := CosineSim(query, v); s > score {
			score, index = s, i
		}
	}
	return index, score, index >= 0 && score >= threshold
}
