// ABOUTME: Accounts command listing discovered NetNewsWire accounts
// ABOUTME: Renders a terminal table with subscription and database paths

package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"
	"github.com/spf13/cobra"
)

var accountsCmd = &cobra.Command{
	Use:     "accounts",
	Aliases: []string{"acct"},
	Short:   "List discovered NetNewsWire accounts",
	Long:    "List the NetNewsWire accounts found in the accounts directory, the same set the MCP tools resolve against.",
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()
		bold := color.New(color.Bold).SprintFunc()
		faint := color.New(color.Faint).SprintFunc()

		fmt.Fprintf(out, "%s %s\n\n", bold("Accounts in"), faint(registry.BaseDir()))

		table := tablewriter.NewTable(out,
			tablewriter.WithConfig(tablewriter.Config{
				Row: tw.CellConfig{
					Formatting: tw.CellFormatting{AutoWrap: tw.WrapNone},
					Alignment:  tw.CellAlignment{Global: tw.AlignLeft},
				},
				Header: tw.CellConfig{
					Formatting: tw.CellFormatting{AutoFormat: tw.On},
					Alignment:  tw.CellAlignment{Global: tw.AlignLeft},
				},
			}),
			tablewriter.WithRendition(tw.Rendition{
				Borders: tw.BorderNone,
				Settings: tw.Settings{
					Separators: tw.Separators{ShowHeader: tw.Off},
				},
			}),
		)
		table.Header([]string{"name", "opml", "database"})

		for _, a := range registry.List() {
			opml := "no"
			if a.HasOPML() {
				opml = "yes"
			}
			if err := table.Append([]string{a.Name, opml, a.DBPath}); err != nil {
				return fmt.Errorf("failed to render accounts: %w", err)
			}
		}

		if err := table.Render(); err != nil {
			return fmt.Errorf("failed to render accounts: %w", err)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(accountsCmd)
}
