package main

import (
	"chat-bot/client"
	"chat-bot/intent"
	"chat-bot/internal"
	"chat-bot/repositories"
	"chat-bot/runtime"
	"chat-bot/services"
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/Netflix/go-env"
	"github.com/joho/godotenv"
	"github.com/mama165/sdk-go/logs"
)

const (
	exitOK      = 0
	exitRuntime = 1
	exitConfig  = 2
)

func main() {
	code, err := run()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Chatbot error: %v\n", err)
	}
	os.Exit(code)
}

// run builds the matching state once, then hands the terminal to the console.
// Every startup failure is a configuration error; nothing is retried.
func run() (int, error) {
	// 1. Configuration & Logger
	_ = godotenv.Load()
	var config internal.Config
	if _, err := env.UnmarshalFromEnviron(&config); err != nil {
		return exitConfig, fmt.Errorf("config error: %w", err)
	}
	if err := config.Validate(); err != nil {
		return exitConfig, err
	}
	log := logs.GetLoggerFromString(config.LogLevel)

	// 2. Optional knowledge store, skipped when it does not exist yet
	var repository repositories.IKnowledgeRepository
	if config.BadgerFilepath != "" {
		store, closeStore, err := repositories.OpenKnowledgeStore(config.BadgerFilepath, true, log)
		if err != nil {
			return exitConfig, err
		}
		defer closeStore()
		repository = store
	}

	// 3. Knowledge base & matching state
	pairs, source, err := services.NewKnowledgeService(log, repository).Resolve(config.KnowledgeFile)
	if err != nil {
		return exitConfig, fmt.Errorf("loading knowledge base: %w", err)
	}
	log.Info("Knowledge base loaded", "source", source, "pairs", len(pairs))

	engine, err := runtime.Build(runtime.Options{
		Tokenizer:  config.Tokenizer,
		Lemmatizer: config.Lemmatizer,
	}, pairs, log)
	if err != nil {
		return exitConfig, fmt.Errorf("building matcher: %w", err)
	}

	detector, err := intent.NewDefaultDetector()
	if err != nil {
		return exitConfig, fmt.Errorf("building intent detector: %w", err)
	}

	// 4. Context & Signals
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// 5. Conversation loop
	service := services.NewChatService(log, engine, detector, config.ConfidenceThreshold)
	console := client.NewConsole(os.Stdin, os.Stdout, service, log, config.Colours)
	if err = console.Run(ctx); err != nil {
		return exitRuntime, err
	}
	return exitOK, nil
}
