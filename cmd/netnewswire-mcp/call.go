// ABOUTME: Call command that runs one MCP tool from the terminal
// ABOUTME: Renders the markdown result with glamour, or plain text with --raw

package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/fatih/color"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"

	"github.com/harper/netnewswire-mcp/internal/mcp"
)

var callCmd = &cobra.Command{
	Use:   "call <tool> [json-args]",
	Short: "Run one MCP tool and print its result",
	Long: `Run a single MCP tool through the same dispatcher the server uses.

Arguments are passed as a JSON object, for example:

  netnewswire-mcp call list_starred_articles '{"limit": 5}'
  netnewswire-mcp call get_article '{"article_id": "abc123", "markdown": true}'

Tools: ` + strings.Join([]string{
		mcp.ToolListAccounts,
		mcp.ToolListFeeds,
		mcp.ToolListStarredArticles,
		mcp.ToolListRecentArticles,
		mcp.ToolGetArticle,
		mcp.ToolSearchArticles,
		mcp.ToolGetArticleCount,
	}, ", "),
	Args: cobra.RangeArgs(1, 2),
	RunE: func(cmd *cobra.Command, args []string) error {
		raw, _ := cmd.Flags().GetBool("raw")

		toolArgs := mcp.Args{}
		if len(args) == 2 && strings.TrimSpace(args[1]) != "" {
			if err := json.Unmarshal([]byte(args[1]), &toolArgs); err != nil {
				return fmt.Errorf("arguments must be a JSON object: %w", err)
			}
		}

		dispatcher := mcp.NewDispatcher(registry, store,
			mcp.WithLogger(logger),
			mcp.WithMetrics(mcp.NewMetrics(prometheus.NewRegistry())),
		)
		result := dispatcher.Call(cmd.Context(), args[0], toolArgs)
		if result.IsError {
			return errors.New(result.Text)
		}

		out := cmd.OutOrStdout()
		if raw {
			fmt.Fprintln(out, result.Text)
			return nil
		}

		rendered, err := glamour.Render(result.Text, "dark")
		if err != nil {
			faint := color.New(color.Faint).SprintFunc()
			fmt.Fprintln(out, faint("(markdown rendering unavailable, showing plain text)"))
			fmt.Fprintln(out, result.Text)
			return nil
		}
		fmt.Fprint(out, rendered)
		return nil
	},
}

func init() {
	callCmd.Flags().Bool("raw", false, "print the markdown result without terminal rendering")
	rootCmd.AddCommand(callCmd)
}
