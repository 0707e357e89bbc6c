package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
)

func (a *app) newListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "Print the knowledge base with its normalized tokens",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			engine, source, err := a.buildEngine()
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			table := tablewriter.NewWriter(out)
			table.SetHeader([]string{"#", "Question", "Tokens", "Answer"})
			table.SetAutoWrapText(false)
			table.SetAutoFormatHeaders(true)
			table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
			table.SetAlignment(tablewriter.ALIGN_LEFT)
			table.SetCenterSeparator("")
			table.SetColumnSeparator("")
			table.SetRowSeparator("")
			table.SetHeaderLine(false)
			table.SetBorder(false)
			table.SetTablePadding("\t")

			for i, entry := range engine.Entries() {
				table.Append([]string{
					strconv.Itoa(i),
					entry.Question,
					strings.Join(entry.Tokens, " "),
					entry.Answer,
				})
			}
			table.Render()

			_, _ = fmt.Fprintf(out, "\n%d entries from %s knowledge base, %d vocabulary terms\n",
				len(engine.Entries()), source, engine.VocabularySize())
			return a.printStoreCount(cmd)
		},
	}
}

func (a *app) printStoreCount(cmd *cobra.Command) error {
	repository, closeStore, err := a.openStore(true)
	if err != nil {
		return err
	}
	defer closeStore()
	if repository == nil {
		return nil
	}

	count, err := repository.Count()
	if err != nil {
		return err
	}
	_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%d pairs in store %s\n", count, a.config.BadgerFilepath)
	return nil
}
