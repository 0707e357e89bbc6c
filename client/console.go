// Package client is the interactive terminal surface of the chatbot.
package client

import (
	"bufio"
	"chat-bot/domain"
	"chat-bot/services"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/gookit/color"
)

const (
	farewell = "Goodbye — have a nice day!"
	unknown  = "I'm not sure about that. You can extend the knowledge base file."
)

type Console struct {
	in      io.Reader
	out     io.Writer
	service services.IChatService
	log     *slog.Logger
	colours bool
}

func NewConsole(in io.Reader, out io.Writer, service services.IChatService, log *slog.Logger, colours bool) *Console {
	return &Console{in: in, out: out, service: service, log: log, colours: colours}
}

// Run reads one question per line until exit, a goodbye intent, EOF or ctx cancellation.
// Lines have no length limit.
func (c *Console) Run(ctx context.Context) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	c.banner()

	lines := make(chan string)
	readErr := make(chan error, 1)
	go func() {
		defer close(lines)
		reader := bufio.NewReader(c.in)
		for {
			line, err := reader.ReadString('\n')
			if line != "" {
				select {
				case lines <- line:
				case <-ctx.Done():
					return
				}
			}
			if err != nil {
				if !errors.Is(err, io.EOF) {
					readErr <- err
				}
				return
			}
		}
	}()

	for {
		c.prompt()
		select {
		case <-ctx.Done():
			c.say("Goodbye!")
			return nil
		case line, ok := <-lines:
			if !ok {
				c.say("Goodbye!")
				select {
				case err := <-readErr:
					return fmt.Errorf("reading input: %w", err)
				default:
					return nil
				}
			}
			if stop := c.handle(ctx, line); stop {
				return nil
			}
		}
	}
}

func (c *Console) handle(ctx context.Context, line string) (stop bool) {
	text := strings.TrimSpace(line)
	if text == "" {
		return false
	}
	if lower := strings.ToLower(text); lower == "exit" || lower == "quit" {
		c.say(farewell)
		return true
	}

	reply := c.service.Respond(ctx, text)
	switch {
	case reply.Intent.ShortCircuits():
		c.say(reply.Answer)
		return reply.Intent == domain.IntentGoodbye
	case reply.Matched:
		c.say(fmt.Sprintf("%s (confidence=%.2f)", reply.Answer, reply.Score))
	default:
		c.log.Debug("No answer above threshold", "input", text, "score", reply.Score)
		c.say(unknown)
	}
	return false
}

func (c *Console) banner() {
	title := "NLP Chatbot"
	if c.colours {
		title = color.New(color.FgGreen, color.OpBold).Render(title)
	}
	_, _ = fmt.Fprintln(c.out, title)
	_, _ = fmt.Fprintln(c.out, "Type 'exit' or 'quit' to stop")
}

func (c *Console) prompt() {
	_, _ = fmt.Fprint(c.out, "You: ")
}

func (c *Console) say(text string) {
	prefix := "Bot:"
	if c.colours {
		prefix = color.New(color.FgCyan).Render(prefix)
	}
	_, _ = fmt.Fprintf(c.out, "%s %s\n", prefix, text)
}
