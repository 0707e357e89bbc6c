package main

import (
	"chat-bot/internal"
	"chat-bot/repositories"
	"chat-bot/runtime"
	"chat-bot/services"
	"log/slog"

	"github.com/mama165/sdk-go/logs"
	"github.com/spf13/cobra"
)

// app carries what every subcommand needs once flags are parsed.
type app struct {
	config Config
	log    *slog.Logger
}

func newRootCmd(config Config) *cobra.Command {
	a := &app{config: config}

	rootCmd := &cobra.Command{
		Use:           "kbtool",
		Short:         "Manage and query the chatbot knowledge base",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if err := (internal.Config{ConfidenceThreshold: a.config.ConfidenceThreshold}).Validate(); err != nil {
				return err
			}
			a.log = logs.GetLoggerFromString(a.config.LogLevel)
			return nil
		},
	}

	rootCmd.PersistentFlags().StringVar(&a.config.BadgerFilepath, "db", config.BadgerFilepath, "path to the Badger knowledge store")
	rootCmd.PersistentFlags().StringVar(&a.config.KnowledgeFile, "file", config.KnowledgeFile, "knowledge file used instead of the store")
	rootCmd.PersistentFlags().Float64Var(&a.config.ConfidenceThreshold, "threshold", config.ConfidenceThreshold, "minimum similarity to accept an answer")

	rootCmd.AddCommand(
		a.newImportCmd(),
		a.newListCmd(),
		a.newAskCmd(),
		a.newInspectCmd(),
	)
	return rootCmd
}

// openStore opens the Badger store; in read-only mode a missing store yields a nil repository.
func (a *app) openStore(readOnly bool) (repositories.IKnowledgeRepository, func(), error) {
	return repositories.OpenKnowledgeStore(a.config.BadgerFilepath, readOnly, a.log)
}

// buildEngine resolves the knowledge base and vectorizes it.
func (a *app) buildEngine() (*runtime.Engine, string, error) {
	repository, closeStore, err := a.openStore(true)
	if err != nil {
		return nil, "", err
	}
	defer closeStore()

	pairs, source, err := services.NewKnowledgeService(a.log, repository).Resolve(a.config.KnowledgeFile)
	if err != nil {
		return nil, source, err
	}

	engine, err := runtime.Build(runtime.Options{
		Tokenizer:  a.config.Tokenizer,
		Lemmatizer: a.config.Lemmatizer,
	}, pairs, a.log)
	return engine, source, err
}
