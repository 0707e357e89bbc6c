package services

import (
	"chat-bot/domain"
	"chat-bot/knowledge"
	"chat-bot/repositories"
	"fmt"
	"log/slog"
)

// Knowledge base origins, reported for logging.
const (
	SourceFile     = "file"
	SourceStore    = "store"
	SourceEmbedded = "embedded"
)

type IKnowledgeService interface {
	Import(path string) (int, error)
	Resolve(path string) ([]domain.KnowledgePair, string, error)
}

type KnowledgeService struct {
	log        *slog.Logger
	repository repositories.IKnowledgeRepository
}

// NewKnowledgeService accepts a nil repository when no store is configured.
func NewKnowledgeService(log *slog.Logger, repository repositories.IKnowledgeRepository) *KnowledgeService {
	return &KnowledgeService{log: log, repository: repository}
}

// Import loads a knowledge file and replaces the stored knowledge base with it.
func (s *KnowledgeService) Import(path string) (int, error) {
	if s.repository == nil {
		return 0, fmt.Errorf("import %s: no knowledge store configured", path)
	}

	// 1. Parse and validate before touching the store
	pairs, err := knowledge.LoadFile(path)
	if err != nil {
		return 0, err
	}

	// 2. Replace the previous content
	if err = s.repository.StorePairs(pairs); err != nil {
		return 0, fmt.Errorf("storing knowledge: %w", err)
	}
	s.log.Info("Knowledge base imported", "path", path, "pairs", len(pairs))
	return len(pairs), nil
}

// Resolve picks the knowledge base used at startup:
// an explicit file first, then a non-empty store, then the embedded sample.
func (s *KnowledgeService) Resolve(path string) ([]domain.KnowledgePair, string, error) {
	if path != "" {
		pairs, err := knowledge.LoadFile(path)
		return pairs, SourceFile, err
	}

	if s.repository != nil {
		pairs, err := s.repository.GetPairs()
		if err != nil {
			return nil, SourceStore, fmt.Errorf("reading stored knowledge: %w", err)
		}
		if len(pairs) > 0 {
			return pairs, SourceStore, nil
		}
		s.log.Debug("Knowledge store is empty, using embedded knowledge base")
	}

	pairs, err := knowledge.Default()
	return pairs, SourceEmbedded, err
}
