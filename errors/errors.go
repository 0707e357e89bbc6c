package errors

import "fmt"

var (
	ErrEmptyKnowledgeBase       = fmt.Errorf("knowledge base is empty")
	ErrEmptyVocabulary          = fmt.Errorf("vocabulary built from knowledge base is empty")
	ErrVectorCountMismatch      = fmt.Errorf("vector count does not match knowledge base entries")
	ErrEmptyWords               = fmt.Errorf("no words have been found")
	ErrInvalidKnowledgePair     = fmt.Errorf("invalid knowledge pair")
	ErrUnsupportedKnowledgeFile = fmt.Errorf("unsupported knowledge file")
	ErrUnknownTokenizer         = fmt.Errorf("unknown tokenizer")
	ErrUnknownLemmatizer        = fmt.Errorf("unknown lemmatizer")
	ErrInvalidThreshold         = fmt.Errorf("confidence threshold must be within [0, 1]")
	ErrTokenizeFailed           = fmt.Errorf("tokenization failed")
	ErrLemmatizeFailed          = fmt.Errorf("lemmatization failed")
)
