package nlp

// Vocabulary maps distinct tokens to dense indices [0, Size()) in first-seen order.
// It is read-only once built.
type Vocabulary struct {
	index map[string]int
	terms []string
}

// BuildVocabulary walks the documents in order and assigns the next index to
// every token not seen before. Empty documents and empty tokens are skipped.
func BuildVocabulary(documents [][]string) Vocabulary {
	v := Vocabulary{index: make(map[string]int)}
	for _, doc := range documents {
		for _, t := range doc {
			if t == "" {
				continue
			}
			if _, ok := v.index[t]; ok {
				continue
			}
			v.index[t] = len(v.terms)
			v.terms = append(v.terms, t)
		}
	}
	return v
}

func (v Vocabulary) Size() int {
	return len(v.terms)
}

func (v Vocabulary) Index(token string) (int, bool) {
	i, ok := v.index[token]
	return i, ok
}

// Terms returns the tokens ordered by index.
func (v Vocabulary) Terms() []string {
	out := make([]string, len(v.terms))
	copy(out, v.terms)
	return out
}
