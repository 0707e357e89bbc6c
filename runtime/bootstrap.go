package runtime

import (
	"chat-bot/domain"
	"chat-bot/errors"
	"chat-bot/nlp"
	"fmt"
	"log/slog"
	"strings"
)

const (
	TokenizerRegexp  = "regexp"
	TokenizerSegment = "segment"

	LemmatizerNone     = "none"
	LemmatizerPorter   = "porter"
	LemmatizerSnowball = "snowball"
)

// Options selects the pluggable text capabilities once, at startup.
type Options struct {
	Tokenizer  string
	Lemmatizer string
}

// NewTokenizer resolves a tokenizer by name.
// The segment tokenizer always degrades to the regexp one.
func NewTokenizer(name string, log *slog.Logger) (nlp.Tokenizer, error) {
	switch strings.ToLower(name) {
	case "", TokenizerRegexp:
		return nlp.NewRegexpTokenizer(), nil
	case TokenizerSegment:
		return nlp.NewFallbackTokenizer(nlp.NewSegmentTokenizer(), nlp.NewRegexpTokenizer(), log), nil
	default:
		return nil, fmt.Errorf("%w: %q", errors.ErrUnknownTokenizer, name)
	}
}

// NewLemmatizer resolves a lemmatizer by name.
func NewLemmatizer(name string) (nlp.Lemmatizer, error) {
	switch strings.ToLower(name) {
	case "", LemmatizerNone:
		return nlp.IdentityLemmatizer{}, nil
	case LemmatizerPorter:
		return nlp.PorterLemmatizer{}, nil
	case LemmatizerSnowball:
		return nlp.SnowballLemmatizer{}, nil
	default:
		return nil, fmt.Errorf("%w: %q", errors.ErrUnknownLemmatizer, name)
	}
}

// NewPreprocessor wires the selected capabilities with the embedded stopword lists.
func NewPreprocessor(opts Options, log *slog.Logger) (*nlp.Preprocessor, error) {
	tokenizer, err := NewTokenizer(opts.Tokenizer, log)
	if err != nil {
		return nil, err
	}
	lemmatizer, err := NewLemmatizer(opts.Lemmatizer)
	if err != nil {
		return nil, err
	}

	data, err := NewStopwordLoader(stopwordsFolder).LoadAll("stopwords")
	if err != nil {
		return nil, fmt.Errorf("loading stopwords: %w", err)
	}
	log.Info(fmt.Sprintf("%d stopwords loaded [%s]", len(data.Words), strings.Join(data.Languages, ",")))

	return nlp.NewPreprocessor(tokenizer, lemmatizer, nlp.NewStopwords(data.Words), log), nil
}

// Build prepares the preprocessor and vectorizes the knowledge base.
func Build(opts Options, pairs []domain.KnowledgePair, log *slog.Logger) (*Engine, error) {
	preprocessor, err := NewPreprocessor(opts, log)
	if err != nil {
		return nil, err
	}
	return NewEngine(pairs, preprocessor, log)
}
