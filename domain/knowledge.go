// Package domain contains the core concepts of the chatbot.
// Knowledge entries are built once at startup and never mutated afterwards.
package domain

// KnowledgePair is a raw question/answer couple as supplied by a knowledge source.
type KnowledgePair struct {
	Question string `yaml:"question" json:"question" validate:"required"`
	Answer   string `yaml:"answer" json:"answer" validate:"required"`
}

// KnowledgeEntry pairs a question with its precomputed tokens and vector.
type KnowledgeEntry struct {
	Question string
	Tokens   []string
	Vector   []int
	Answer   string
}

// Match is the outcome of a similarity lookup.
// Index is -1 when nothing scored above zero; OK reports whether Score reached the threshold.
type Match struct {
	Index  int
	Answer string
	Score  float64
	OK     bool
}
