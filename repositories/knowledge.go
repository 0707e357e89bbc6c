//go:generate go run go.uber.org/mock/mockgen -source=knowledge.go -destination=../mocks/mock_knowledge_repository.go -package=mocks
package repositories

import (
	"chat-bot/domain"
	"fmt"
	"log/slog"
	"os"

	"github.com/dgraph-io/badger/v4"
	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/types/known/structpb"
)

const knowledgePrefix = "kb:"

type IKnowledgeRepository interface {
	StorePairs(pairs []domain.KnowledgePair) error
	GetPairs() ([]domain.KnowledgePair, error)
	Count() (int, error)
	Clear() error
}

type KnowledgeRepository struct {
	db  *badger.DB
	log *slog.Logger
}

func NewKnowledgeRepository(db *badger.DB, log *slog.Logger) KnowledgeRepository {
	return KnowledgeRepository{db: db, log: log}
}

// StorePairs replaces the stored knowledge base.
// Keys are "kb:{index}" with a 10-digit zero padding so that a prefix scan
// returns the pairs in declaration order, for up to 10^10 pairs.
func (k KnowledgeRepository) StorePairs(pairs []domain.KnowledgePair) error {
	if err := k.Clear(); err != nil {
		return err
	}

	wb := k.db.NewWriteBatch()
	for i, p := range pairs {
		bytes, err := marshalPair(p)
		if err != nil {
			wb.Cancel()
			return err
		}
		if err = wb.Set([]byte(knowledgeKey(i)), bytes); err != nil {
			wb.Cancel()
			return err
		}
	}
	if err := wb.Flush(); err != nil {
		return err
	}
	k.log.Debug(fmt.Sprintf("%d knowledge pairs stored", len(pairs)))
	return nil
}

// GetPairs returns every stored pair in declaration order.
func (k KnowledgeRepository) GetPairs() ([]domain.KnowledgePair, error) {
	var pairs []domain.KnowledgePair
	err := k.db.View(func(txn *badger.Txn) error {
		it := txn.NewIterator(badger.DefaultIteratorOptions)
		defer it.Close()

		prefix := []byte(knowledgePrefix)
		for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
			err := it.Item().Value(func(val []byte) error {
				pair, err := unmarshalPair(val)
				if err != nil {
					return fmt.Errorf("key %s: %w", it.Item().Key(), err)
				}
				pairs = append(pairs, pair)
				return nil
			})
			if err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return pairs, nil
}

func (k KnowledgeRepository) Count() (int, error) {
	count := 0
	err := k.db.View(func(txn *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.PrefetchValues = false
		it := txn.NewIterator(opts)
		defer it.Close()

		prefix := []byte(knowledgePrefix)
		for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
			count++
		}
		return nil
	})
	return count, err
}

// Clear removes every stored pair.
func (k KnowledgeRepository) Clear() error {
	if err := k.db.DropPrefix([]byte(knowledgePrefix)); err != nil {
		return fmt.Errorf("dropping knowledge: %w", err)
	}
	return nil
}

func knowledgeKey(index int) string {
	return fmt.Sprintf("%s%010d", knowledgePrefix, index)
}

func marshalPair(pair domain.KnowledgePair) ([]byte, error) {
	s, err := structpb.NewStruct(map[string]any{
		"question": pair.Question,
		"answer":   pair.Answer,
	})
	if err != nil {
		return nil, err
	}
	return proto.Marshal(s)
}

func unmarshalPair(val []byte) (domain.KnowledgePair, error) {
	var s structpb.Struct
	if err := proto.Unmarshal(val, &s); err != nil {
		return domain.KnowledgePair{}, err
	}
	return domain.KnowledgePair{
		Question: s.GetFields()["question"].GetStringValue(),
		Answer:   s.GetFields()["answer"].GetStringValue(),
	}, nil
}

// OpenKnowledgeStore opens the Badger store at path.
// In read-only mode a missing store is not an error: the repository is nil.
func OpenKnowledgeStore(path string, readOnly bool, log *slog.Logger) (IKnowledgeRepository, func(), error) {
	if readOnly {
		if _, err := os.Stat(path); os.IsNotExist(err) {
			log.Debug("No knowledge store", "path", path)
			return nil, func() {}, nil
		}
	}

	db, err := badger.Open(badger.DefaultOptions(path).
		WithReadOnly(readOnly).
		WithLoggingLevel(badger.ERROR))
	if err != nil {
		return nil, nil, fmt.Errorf("database opening failed: %w", err)
	}
	closeFn := func() {
		log.Debug("Closing BadgerDB...")
		_ = db.Close()
	}
	return NewKnowledgeRepository(db, log), closeFn, nil
}
