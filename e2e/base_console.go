package e2e

import (
	"bytes"
	"chat-bot/client"
	"chat-bot/intent"
	"chat-bot/runtime"
	"chat-bot/services"
	"context"
	"fmt"
	"log/slog"
	"strings"
	"testing"
	"time"

	"github.com/gookit/color"
	"github.com/mama165/sdk-go/logs"
	"github.com/stretchr/testify/suite"
)

type BaseConsoleSuite struct {
	suite.Suite
	Config  Config
	Service *services.ChatService
	log     *slog.Logger
}

// SetupSuite builds the matching state once, the way the chatbot binary does at startup.
func (s *BaseConsoleSuite) SetupSuite() {
	var err error
	s.Config, err = LoadConfig()
	s.Require().NoError(err)

	level := slog.LevelWarn
	if s.Config.Debug {
		level = slog.LevelDebug
	}
	s.log = logs.GetLoggerFromLevel(level)

	pairs, _, err := services.NewKnowledgeService(s.log, nil).Resolve(s.Config.KnowledgeFile)
	s.Require().NoError(err)

	engine, err := runtime.Build(runtime.Options{
		Tokenizer:  s.Config.Tokenizer,
		Lemmatizer: s.Config.Lemmatizer,
	}, pairs, s.log)
	s.Require().NoError(err)

	detector, err := intent.NewDefaultDetector()
	s.Require().NoError(err)

	s.Service = services.NewChatService(s.log, engine, detector, runtime.DefaultThreshold)
}

// Converse feeds lines to a fresh console and returns the bot lines it printed.
func (s *BaseConsoleSuite) Converse(t *testing.T, name string, lines ...string) []string {
	header := fmt.Sprintf("  ====== %s ======", name)
	if s.Config.Colours {
		header = color.New(color.BgBlack, color.FgGreen).Render(header)
	}
	t.Log(header)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	var out bytes.Buffer
	input := strings.NewReader(strings.Join(lines, "\n") + "\n")
	console := client.NewConsole(input, &out, s.Service, s.log, false)

	start := time.Now()
	s.Require().NoError(console.Run(ctx))
	t.Logf("conversation of %d lines in %v", len(lines), time.Since(start))

	var replies []string
	for _, line := range strings.Split(out.String(), "\n") {
		if i := strings.Index(line, "Bot: "); i >= 0 {
			replies = append(replies, line[i+len("Bot: "):])
		}
	}
	return replies
}
