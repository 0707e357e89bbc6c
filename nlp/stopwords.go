package nlp

import (
	"strings"

	"github.com/blugelabs/bluge/analysis"
)

// Stopwords is a fixed set of function words dropped before vectorization.
type Stopwords struct {
	tokens analysis.TokenMap
}

func NewStopwords(words []string) Stopwords {
	tokens := analysis.NewTokenMap()
	for _, w := range words {
		if w = strings.ToLower(strings.TrimSpace(w)); w != "" {
			tokens.AddToken(w)
		}
	}
	return Stopwords{tokens: tokens}
}

func (s Stopwords) Contains(token string) bool {
	return s.tokens[token]
}

func (s Stopwords) Len() int {
	return len(s.tokens)
}
