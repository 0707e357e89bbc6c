package main

import (
	"chat-bot/internal"

	"github.com/spf13/cobra"
)

func (a *app) newInspectCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "inspect",
		Short: "Serve an HTML view of the vectorized knowledge base",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			engine, _, err := a.buildEngine()
			if err != nil {
				return err
			}
			handler := internal.NewInspectHandler(engine, a.config.ConfidenceThreshold)
			return internal.StartInspectServer(cmd.Context(), a.config.InspectAddr, handler, a.log)
		},
	}
	cmd.Flags().StringVar(&a.config.InspectAddr, "addr", a.config.InspectAddr, "listen address")
	return cmd
}
