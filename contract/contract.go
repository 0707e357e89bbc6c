//go:generate go run go.uber.org/mock/mockgen -source=contract.go -destination=../mocks/mock_contract.go -package=mocks
package contract

import (
	"chat-bot/domain"
)

// IMatcher finds the knowledge base answer closest to a query.
type IMatcher interface {
	FindBestAnswer(text string, threshold float64) domain.Match
}

// IIntentDetector classifies text into a conversational intent.
type IIntentDetector interface {
	Detect(text string) domain.Intent
}
