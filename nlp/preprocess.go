package nlp

import (
	"log/slog"
	"strings"
)

// Preprocessor turns raw text into normalized tokens:
// split, drop stopwords, lemmatize.
type Preprocessor struct {
	tokenizer  Tokenizer
	lemmatizer Lemmatizer
	stopwords  Stopwords
	log        *slog.Logger
}

func NewPreprocessor(tokenizer Tokenizer, lemmatizer Lemmatizer, stopwords Stopwords, log *slog.Logger) *Preprocessor {
	return &Preprocessor{
		tokenizer:  tokenizer,
		lemmatizer: lemmatizer,
		stopwords:  stopwords,
		log:        log,
	}
}

// Preprocess returns the normalized tokens of text.
// When every token is a stopword, the first one is kept so that short
// queries like "how are you" still produce a non-zero vector.
// The result is empty only if text has no word characters at all.
func (p *Preprocessor) Preprocess(text string) []string {
	if strings.TrimSpace(text) == "" {
		return nil
	}

	raw, err := p.tokenizer.Tokenize(text)
	if err != nil {
		p.log.Warn("Tokenizer failed, splitting on non-word characters", "error", err)
		raw = wordPattern.FindAllString(strings.ToLower(text), -1)
	}

	var out []string
	firstStopword := ""
	for _, t := range raw {
		if t == "" {
			continue
		}
		if p.stopwords.Contains(t) {
			if firstStopword == "" {
				firstStopword = t
			}
			continue
		}
		out = append(out, p.lemmatize(t))
	}

	if len(out) == 0 && firstStopword != "" {
		out = append(out, p.lemmatize(firstStopword))
	}
	return out
}

func (p *Preprocessor) lemmatize(token string) string {
	lemma, err := p.lemmatizer.Lemmatize(token)
	if err != nil {
		p.log.Debug("Keeping token unchanged", "token", token, "error", err)
		return token
	}
	return lemma
}
