package runtime

import (
	"chat-bot/domain"
	"chat-bot/errors"
	"chat-bot/nlp"
	"fmt"
	"log/slog"
	"slices"

	"github.com/samber/lo"
)

const DefaultThreshold = 0.2

// Engine holds the knowledge base vectors and the vocabulary they were built from.
// Nothing in it changes after NewEngine returns, so it can serve concurrent queries.
type Engine struct {
	entries      []domain.KnowledgeEntry
	vectors      []nlp.Vector
	vocabulary   nlp.Vocabulary
	preprocessor *nlp.Preprocessor
	log          *slog.Logger
}

// NewEngine tokenizes every question, builds the vocabulary over all of them
// in declaration order and vectorizes each question against it.
func NewEngine(pairs []domain.KnowledgePair, preprocessor *nlp.Preprocessor, log *slog.Logger) (*Engine, error) {
	if len(pairs) == 0 {
		return nil, errors.ErrEmptyKnowledgeBase
	}

	documents := lo.Map(pairs, func(p domain.KnowledgePair, _ int) []string {
		return preprocessor.Preprocess(p.Question)
	})

	vocabulary := nlp.BuildVocabulary(documents)
	if vocabulary.Size() == 0 {
		return nil, errors.ErrEmptyVocabulary
	}

	vectors := lo.Map(documents, func(tokens []string, _ int) nlp.Vector {
		return nlp.ToVector(tokens, vocabulary)
	})
	if len(vectors) != len(pairs) {
		return nil, fmt.Errorf("%w: %d vectors for %d entries", errors.ErrVectorCountMismatch, len(vectors), len(pairs))
	}

	entries := make([]domain.KnowledgeEntry, len(pairs))
	for i, p := range pairs {
		entries[i] = domain.KnowledgeEntry{
			Question: p.Question,
			Tokens:   documents[i],
			Vector:   vectors[i],
			Answer:   p.Answer,
		}
	}

	log.Info("Knowledge base vectorized", "entries", len(entries), "vocabulary", vocabulary.Size())
	return &Engine{
		entries:      entries,
		vectors:      vectors,
		vocabulary:   vocabulary,
		preprocessor: preprocessor,
		log:          log,
	}, nil
}

// FindBestAnswer returns the best knowledge base answer for text.
// Match.OK is false when the best score stays below threshold; Score is still reported.
func (e *Engine) FindBestAnswer(text string, threshold float64) domain.Match {
	tokens := e.preprocessor.Preprocess(text)
	if len(tokens) == 0 {
		return domain.Match{Index: -1}
	}

	query := nlp.ToVector(tokens, e.vocabulary)
	index, score, ok := nlp.FindBest(query, e.vectors, threshold)
	e.log.Debug("Similarity ranking", "tokens", tokens, "index", index, "score", score, "threshold", threshold)

	match := domain.Match{Index: index, Score: score, OK: ok}
	if ok {
		match.Answer = e.entries[index].Answer
	}
	return match
}

// Entries returns a deep copy of the vectorized knowledge base.
func (e *Engine) Entries() []domain.KnowledgeEntry {
	return lo.Map(e.entries, func(entry domain.KnowledgeEntry, _ int) domain.KnowledgeEntry {
		entry.Tokens = slices.Clone(entry.Tokens)
		entry.Vector = slices.Clone(entry.Vector)
		return entry
	})
}

func (e *Engine) Vocabulary() nlp.Vocabulary {
	return e.vocabulary
}

func (e *Engine) VocabularySize() int {
	return e.vocabulary.Size()
}
