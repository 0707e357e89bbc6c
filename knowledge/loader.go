// Package knowledge supplies the static question/answer pairs the chatbot matches against.
package knowledge

import (
	"chat-bot/domain"
	"chat-bot/domain/mimetypes"
	"chat-bot/errors"
	_ "embed"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/gabriel-vasile/mimetype"
	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

//go:embed default.yaml
var defaultKnowledge []byte

var validate = validator.New()

// Default returns the embedded sample knowledge base.
func Default() ([]domain.KnowledgePair, error) {
	return Parse(defaultKnowledge)
}

// LoadFile reads a YAML or JSON list of {question, answer} objects.
func LoadFile(path string) ([]domain.KnowledgePair, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	pairs, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return pairs, nil
}

// Parse sniffs the content type: JSON is decoded as JSON, any other text as YAML.
// Every pair must have a non-blank question and answer.
func Parse(data []byte) ([]domain.KnowledgePair, error) {
	detected := mimetype.Detect(data).String()

	var pairs []domain.KnowledgePair
	switch {
	case isMIME(detected, mimetypes.ApplicationJSON):
		if err := json.Unmarshal(data, &pairs); err != nil {
			return nil, fmt.Errorf("%w: %v", errors.ErrUnsupportedKnowledgeFile, err)
		}
	case mimetypes.IsText(detected):
		if err := yaml.Unmarshal(data, &pairs); err != nil {
			return nil, fmt.Errorf("%w: %v", errors.ErrUnsupportedKnowledgeFile, err)
		}
	default:
		return nil, fmt.Errorf("%w: detected %s", errors.ErrUnsupportedKnowledgeFile, detected)
	}

	if len(pairs) == 0 {
		return nil, errors.ErrEmptyKnowledgeBase
	}
	for i := range pairs {
		pairs[i].Question = strings.TrimSpace(pairs[i].Question)
		pairs[i].Answer = strings.TrimSpace(pairs[i].Answer)
		if err := validate.Struct(pairs[i]); err != nil {
			return nil, fmt.Errorf("%w: entry %d: %v", errors.ErrInvalidKnowledgePair, i, err)
		}
	}
	return pairs, nil
}

func isMIME(detected string, expected mimetypes.MIME) bool {
	_, ok := mimetypes.Matches(detected, expected)
	return ok
}
