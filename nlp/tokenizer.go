//go:generate go run go.uber.org/mock/mockgen -source=tokenizer.go -destination=../mocks/mock_tokenizer.go -package=mocks
package nlp

import (
	"chat-bot/errors"
	"fmt"
	"log/slog"
	"regexp"
	"strings"

	"github.com/blugelabs/bluge/analysis"
	"github.com/blugelabs/bluge/analysis/tokenizer"
	"github.com/samber/lo"
)

// wordPattern matches runs of word characters: letters, digits and underscore.
var wordPattern = regexp.MustCompile(`[\p{L}\p{N}_]+`)

// Tokenizer splits raw text into lowercase word tokens.
type Tokenizer interface {
	Tokenize(text string) ([]string, error)
}

// RegexpTokenizer lowercases the text and keeps every run of word characters.
// The whole string is lowercased before splitting.
type RegexpTokenizer struct {
	analyzer *analysis.Analyzer
}

func NewRegexpTokenizer() *RegexpTokenizer {
	return &RegexpTokenizer{
		analyzer: &analysis.Analyzer{
			Tokenizer: tokenizer.NewRegexpTokenizer(wordPattern),
		},
	}
}

func (t *RegexpTokenizer) Tokenize(text string) ([]string, error) {
	return terms(t.analyzer.Analyze([]byte(strings.ToLower(text)))), nil
}

// SegmentTokenizer relies on Unicode word segmentation (UAX#29).
// Segments such as "don't" are split again on non-word characters.
type SegmentTokenizer struct {
	analyzer *analysis.Analyzer
}

func NewSegmentTokenizer() *SegmentTokenizer {
	return &SegmentTokenizer{
		analyzer: &analysis.Analyzer{
			Tokenizer: tokenizer.NewUnicodeTokenizer(),
		},
	}
}

func (t *SegmentTokenizer) Tokenize(text string) ([]string, error) {
	segments := terms(t.analyzer.Analyze([]byte(strings.ToLower(text))))
	return lo.FlatMap(segments, func(segment string, _ int) []string {
		return wordPattern.FindAllString(segment, -1)
	}), nil
}

// FallbackTokenizer degrades to Fallback whenever Primary errors or panics.
type FallbackTokenizer struct {
	Primary  Tokenizer
	Fallback Tokenizer
	log      *slog.Logger
}

func NewFallbackTokenizer(primary, fallback Tokenizer, log *slog.Logger) *FallbackTokenizer {
	return &FallbackTokenizer{Primary: primary, Fallback: fallback, log: log}
}

func (t *FallbackTokenizer) Tokenize(text string) ([]string, error) {
	tokens, err := safeTokenize(t.Primary, text)
	if err == nil {
		return tokens, nil
	}
	t.log.Warn("Primary tokenizer failed, using fallback", "error", err)
	return t.Fallback.Tokenize(text)
}

func safeTokenize(t Tokenizer, text string) (tokens []string, err error) {
	defer func() {
		if r := recover(); r != nil {
			tokens, err = nil, fmt.Errorf("%w: %v", errors.ErrTokenizeFailed, r)
		}
	}()
	return t.Tokenize(text)
}

func terms(stream analysis.TokenStream) []string {
	out := make([]string, 0, len(stream))
	for _, tok := range stream {
		if len(tok.Term) > 0 {
			out = append(out, string(tok.Term))
		}
	}
	return out
}
