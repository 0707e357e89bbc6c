//go:generate go run go.uber.org/mock/mockgen -source=lemmatizer.go -destination=../mocks/mock_lemmatizer.go -package=mocks
package nlp

import (
	"chat-bot/errors"
	"fmt"

	porterstemmer "github.com/blevesearch/go-porterstemmer"
	"github.com/blevesearch/snowballstem"
	"github.com/blevesearch/snowballstem/english"
)

// Lemmatizer reduces a token to its base form.
// An error means the token should be kept unchanged.
type Lemmatizer interface {
	Lemmatize(token string) (string, error)
}

// IdentityLemmatizer returns tokens untouched.
type IdentityLemmatizer struct{}

func (IdentityLemmatizer) Lemmatize(token string) (string, error) {
	return token, nil
}

// PorterLemmatizer applies the classic Porter stemming algorithm.
type PorterLemmatizer struct{}

func (PorterLemmatizer) Lemmatize(token string) (lemma string, err error) {
	defer recoverLemma(token, &err)
	lemma = porterstemmer.StemString(token)
	if lemma == "" {
		return "", fmt.Errorf("%w: %q stemmed to nothing", errors.ErrLemmatizeFailed, token)
	}
	return lemma, nil
}

// SnowballLemmatizer applies the English (Porter2) snowball stemmer.
type SnowballLemmatizer struct{}

func (SnowballLemmatizer) Lemmatize(token string) (lemma string, err error) {
	defer recoverLemma(token, &err)
	env := snowballstem.NewEnv(token)
	english.Stem(env)
	lemma = env.Current()
	if lemma == "" {
		return "", fmt.Errorf("%w: %q stemmed to nothing", errors.ErrLemmatizeFailed, token)
	}
	return lemma, nil
}

// recoverLemma turns a stemmer panic into ErrLemmatizeFailed.
func recoverLemma(token string, err *error) {
	if r := recover(); r != nil {
		*err = fmt.Errorf("%w: %q: %v", errors.ErrLemmatizeFailed, token, r)
	}
}
