package internal

import (
	"chat-bot/errors"
	"fmt"
)

type Config struct {
	LogLevel            string  `env:"LOG_LEVEL,default=INFO"`
	ConfidenceThreshold float64 `env:"CONFIDENCE_THRESHOLD,default=0.2"`
	Tokenizer           string  `env:"TOKENIZER,default=regexp"`
	Lemmatizer          string  `env:"LEMMATIZER,default=porter"`
	KnowledgeFile       string  `env:"KNOWLEDGE_FILE"`
	BadgerFilepath      string  `env:"BADGER_FILEPATH"`
	Colours             bool    `env:"COLOURS,default=true"`
}

// Validate checks the values go-env cannot express as tags.
func (c Config) Validate() error {
	if c.ConfidenceThreshold < 0 || c.ConfidenceThreshold > 1 {
		return fmt.Errorf("%w, got %v", errors.ErrInvalidThreshold, c.ConfidenceThreshold)
	}
	return nil
}
