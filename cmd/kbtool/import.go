package main

import (
	"chat-bot/services"
	"fmt"

	"github.com/spf13/cobra"
)

func (a *app) newImportCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "import <file>",
		Short: "Replace the stored knowledge base with a YAML or JSON file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			repository, closeStore, err := a.openStore(false)
			if err != nil {
				return err
			}
			defer closeStore()

			count, err := services.NewKnowledgeService(a.log, repository).Import(args[0])
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Imported %d pairs into %s\n", count, a.config.BadgerFilepath)
			return nil
		},
	}
}
