package client

import (
	"bytes"
	"chat-bot/domain"
	"chat-bot/mocks"
	"context"
	"io"
	"log/slog"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func runConsole(t *testing.T, service *mocks.MockIChatService, input string) string {
	var out bytes.Buffer
	console := NewConsole(strings.NewReader(input), &out, service, slog.Default(), false)
	require.NoError(t, console.Run(context.Background()))
	return out.String()
}

func TestConsole_ExitDoesNotCallService(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"exit", "exit\nwhat is ai\n"},
		{"quit upper case", "  QUIT  \n"},
		{"after blank lines", "\n   \nExit\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := require.New(t)
			ctrl := gomock.NewController(t)
			service := mocks.NewMockIChatService(ctrl)
			service.EXPECT().Respond(gomock.Any(), gomock.Any()).Times(0)

			out := runConsole(t, service, tt.input)
			req.Contains(out, "NLP Chatbot")
			req.Contains(out, "Type 'exit' or 'quit' to stop")
			req.Contains(out, "Bot: Goodbye — have a nice day!")
		})
	}
}

func TestConsole_Transcript(t *testing.T) {
	req := require.New(t)
	ctrl := gomock.NewController(t)
	service := mocks.NewMockIChatService(ctrl)

	// Given a service answering each kind of reply
	gomock.InOrder(
		service.EXPECT().Respond(gomock.Any(), "hello").
			Return(domain.Reply{Intent: domain.IntentGreeting, Answer: "Hello! How can I help you today?"}),
		service.EXPECT().Respond(gomock.Any(), "what is ai").
			Return(domain.Reply{Intent: domain.IntentNone, Answer: "AI is...", Score: 0.8660254, Matched: true}),
		service.EXPECT().Respond(gomock.Any(), "xyzzy plugh").
			Return(domain.Reply{Intent: domain.IntentNone}),
		service.EXPECT().Respond(gomock.Any(), "thanks").
			Return(domain.Reply{Intent: domain.IntentThanks, Answer: "You're welcome!"}),
		service.EXPECT().Respond(gomock.Any(), "see you").
			Return(domain.Reply{Intent: domain.IntentGoodbye, Answer: "Goodbye!"}),
	)

	// When the user types a conversation ending with a goodbye
	out := runConsole(t, service, "hello\nwhat is ai\nxyzzy plugh\nthanks\nsee you\nnever read\n")

	// Then every reply is printed in order and the console stops on goodbye
	expected := []string{
		"Bot: Hello! How can I help you today?",
		"Bot: AI is... (confidence=0.87)",
		"Bot: I'm not sure about that. You can extend the knowledge base file.",
		"Bot: You're welcome!",
		"Bot: Goodbye!",
	}
	last := 0
	for _, line := range expected {
		i := strings.Index(out[last:], line)
		req.GreaterOrEqual(i, 0, "missing %q in %q", line, out)
		last += i + len(line)
	}
}

func TestConsole_EOFSaysGoodbye(t *testing.T) {
	req := require.New(t)
	ctrl := gomock.NewController(t)
	service := mocks.NewMockIChatService(ctrl)
	service.EXPECT().Respond(gomock.Any(), "what is go").
		Return(domain.Reply{Answer: "Go is...", Score: 1, Matched: true})

	out := runConsole(t, service, "what is go")
	req.Contains(out, "Bot: Go is... (confidence=1.00)")
	req.True(strings.HasSuffix(out, "Bot: Goodbye!\n"))
}

func TestConsole_CancelledContext(t *testing.T) {
	req := require.New(t)
	ctrl := gomock.NewController(t)
	service := mocks.NewMockIChatService(ctrl)
	service.EXPECT().Respond(gomock.Any(), gomock.Any()).Times(0)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	var out bytes.Buffer
	blocking, writer := io.Pipe()
	defer writer.Close()
	req.NoError(NewConsole(blocking, &out, service, slog.Default(), true).Run(ctx))
	req.Contains(out.String(), "Goodbye!")
}

func TestConsole_CancelWhileInputPending(t *testing.T) {
	for i := 0; i < 40; i++ {
		req := require.New(t)
		ctrl := gomock.NewController(t)
		service := mocks.NewMockIChatService(ctrl)

		ctx, cancel := context.WithCancel(context.Background())
		// Given a signal arriving while the reader already holds the next line
		service.EXPECT().Respond(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, _ string) domain.Reply {
				cancel()
				time.Sleep(5 * time.Millisecond)
				return domain.Reply{}
			}).AnyTimes()

		done := make(chan error, 1)
		go func() {
			var out bytes.Buffer
			done <- NewConsole(strings.NewReader("first\nsecond\nthird\n"), &out, service, slog.Default(), false).Run(ctx)
		}()

		// Then Run returns instead of waiting for the reader
		select {
		case err := <-done:
			req.NoError(err)
		case <-time.After(2 * time.Second):
			req.FailNow("console did not stop after cancellation", "run %d", i)
		}
		cancel()
	}
}

func TestConsole_LongLineDoesNotEndSession(t *testing.T) {
	req := require.New(t)
	ctrl := gomock.NewController(t)
	service := mocks.NewMockIChatService(ctrl)

	longLine := strings.TrimSpace(strings.Repeat("word ", 20000))
	gomock.InOrder(
		service.EXPECT().Respond(gomock.Any(), longLine).Return(domain.Reply{Intent: domain.IntentNone}),
		service.EXPECT().Respond(gomock.Any(), "what is ai").
			Return(domain.Reply{Answer: "AI is...", Score: 1, Matched: true}),
	)

	out := runConsole(t, service, longLine+"\nwhat is ai\n")
	req.Contains(out, "Bot: I'm not sure about that. You can extend the knowledge base file.")
	req.Contains(out, "Bot: AI is... (confidence=1.00)")
	req.True(strings.HasSuffix(out, "Bot: Goodbye!\n"))
}

type failingReader struct{}

func (failingReader) Read([]byte) (int, error) { return 0, io.ErrUnexpectedEOF }

func TestConsole_ReadErrorIsReturned(t *testing.T) {
	req := require.New(t)
	ctrl := gomock.NewController(t)
	service := mocks.NewMockIChatService(ctrl)

	var out bytes.Buffer
	err := NewConsole(failingReader{}, &out, service, slog.Default(), false).Run(context.Background())
	req.ErrorIs(err, io.ErrUnexpectedEOF)
}
