package main

import (
	"chat-bot/intent"
	"chat-bot/services"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

func (a *app) newAskCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "ask <text...>",
		Short: "Answer a single question and print its similarity score",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			engine, _, err := a.buildEngine()
			if err != nil {
				return err
			}
			detector, err := intent.NewDefaultDetector()
			if err != nil {
				return err
			}

			service := services.NewChatService(a.log, engine, detector, a.config.ConfidenceThreshold)
			reply := service.Respond(cmd.Context(), strings.Join(args, " "))

			out := cmd.OutOrStdout()
			switch {
			case reply.Intent.ShortCircuits():
				_, _ = fmt.Fprintf(out, "%s (intent=%s)\n", reply.Answer, reply.Intent)
			case reply.Matched:
				_, _ = fmt.Fprintf(out, "%s (confidence=%.2f)\n", reply.Answer, reply.Score)
			default:
				_, _ = fmt.Fprintf(out, "No answer (best score=%.2f, threshold=%.2f)\n", reply.Score, a.config.ConfidenceThreshold)
			}
			return nil
		},
	}
}
