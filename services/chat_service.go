//go:generate go run go.uber.org/mock/mockgen -source=chat_service.go -destination=../mocks/mock_chat_service.go -package=mocks
package services

import (
	"chat-bot/contract"
	"chat-bot/domain"
	"context"
	"log/slog"
	"strings"

	"github.com/abadojack/whatlanggo"
	"github.com/google/uuid"
)

// IntentResponses are the canned answers for short-circuiting intents.
var IntentResponses = map[domain.Intent]string{
	domain.IntentGreeting: "Hello! How can I help you today?",
	domain.IntentGoodbye:  "Goodbye!",
	domain.IntentThanks:   "You're welcome!",
}

type IChatService interface {
	Respond(ctx context.Context, text string) domain.Reply
}

type ChatService struct {
	log       *slog.Logger
	matcher   contract.IMatcher
	detector  contract.IIntentDetector
	threshold float64
}

func NewChatService(log *slog.Logger, matcher contract.IMatcher, detector contract.IIntentDetector, threshold float64) *ChatService {
	return &ChatService{log: log, matcher: matcher, detector: detector, threshold: threshold}
}

// Respond answers one line of user input.
// Greeting, goodbye and thanks intents are answered without touching the matcher.
func (s *ChatService) Respond(ctx context.Context, text string) domain.Reply {
	reply := domain.Reply{ID: uuid.New(), Input: text, Intent: domain.IntentNone}
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return reply
	}

	reply.Intent = s.detector.Detect(trimmed)
	if reply.Intent.ShortCircuits() {
		reply.Answer = IntentResponses[reply.Intent]
		s.log.DebugContext(ctx, "Intent detected", "id", reply.ID, "intent", reply.Intent)
		return reply
	}

	match := s.matcher.FindBestAnswer(trimmed, s.threshold)
	reply.Score = match.Score
	reply.Matched = match.OK
	reply.Answer = match.Answer

	// Language is a diagnostic only, detected when debug logs are on.
	if s.log.Enabled(ctx, slog.LevelDebug) {
		info := whatlanggo.Detect(trimmed)
		reply.Lang = info.Lang.Iso6391()
		s.log.DebugContext(ctx, "Knowledge lookup",
			"id", reply.ID,
			"matched", match.OK,
			"index", match.Index,
			"score", match.Score,
			"lang", reply.Lang,
			"lang_confidence", info.Confidence)
	}
	return reply
}
