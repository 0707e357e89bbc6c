package nlp

import (
	"chat-bot/errors"
	"chat-bot/mocks"
	"log/slog"
	"testing"

	"github.com/mama165/sdk-go/logs"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var testStopwords = []string{"a", "is", "the", "you", "how", "are", "what", "your", "to", "can", "do", "me", "this"}

func newTestPreprocessor(lemmatizer Lemmatizer) *Preprocessor {
	log := logs.GetLoggerFromLevel(slog.LevelDebug)
	return NewPreprocessor(NewRegexpTokenizer(), lemmatizer, NewStopwords(testStopwords), log)
}

func TestPreprocessor_Preprocess(t *testing.T) {
	req := require.New(t)
	p := newTestPreprocessor(IdentityLemmatizer{})

	tests := []struct {
		name     string
		input    string
		expected []string
	}{
		{"Stopwords are removed", "What is AI?", []string{"ai"}},
		{"All stopwords keep the first one", "how are you", []string{"how"}},
		{"All stopwords with punctuation", "Are you... the?", []string{"are"}},
		{"Content words keep their order", "tell me a joke", []string{"tell", "joke"}},
		{"Empty input", "", nil},
		{"Whitespace only", "   \t ", nil},
		{"No word characters", "?!", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req.Equal(tt.expected, p.Preprocess(tt.input))
		})
	}
}

func TestPreprocessor_LemmatizesSurvivingTokens(t *testing.T) {
	req := require.New(t)
	p := newTestPreprocessor(PorterLemmatizer{})

	req.Equal([]string{"tell", "joke"}, p.Preprocess("tell me jokes"))
	req.Equal([]string{"run"}, p.Preprocess("running"))
}

func TestPreprocessor_LemmatizerFailureKeepsToken(t *testing.T) {
	req := require.New(t)
	ctrl := gomock.NewController(t)
	lemmatizer := mocks.NewMockLemmatizer(ctrl)

	// Given a lemmatizer failing on "machines" only
	lemmatizer.EXPECT().Lemmatize("machines").Return("", errors.ErrLemmatizeFailed)
	lemmatizer.EXPECT().Lemmatize("learning").Return("learn", nil)

	p := newTestPreprocessor(lemmatizer)

	// Then the failing token is kept as is
	req.Equal([]string{"machines", "learn"}, p.Preprocess("machines learning"))
}

func TestPreprocessor_RecoveredStopwordIsLemmatized(t *testing.T) {
	req := require.New(t)
	ctrl := gomock.NewController(t)
	lemmatizer := mocks.NewMockLemmatizer(ctrl)
	lemmatizer.EXPECT().Lemmatize("are").Return("be", nil).Times(1)

	p := newTestPreprocessor(lemmatizer)
	req.Equal([]string{"be"}, p.Preprocess("are you"))
}

func TestPreprocessor_TokenizerErrorFallsBackToSplit(t *testing.T) {
	req := require.New(t)
	ctrl := gomock.NewController(t)
	tokenizer := mocks.NewMockTokenizer(ctrl)
	tokenizer.EXPECT().Tokenize(gomock.Any()).Return(nil, errors.ErrTokenizeFailed)

	log := logs.GetLoggerFromLevel(slog.LevelDebug)
	p := NewPreprocessor(tokenizer, IdentityLemmatizer{}, NewStopwords(testStopwords), log)

	req.Equal([]string{"python"}, p.Preprocess("What is Python?"))
}
