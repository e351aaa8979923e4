// ABOUTME: MCP prompt templates for reading workflows over NetNewsWire data
// ABOUTME: Prompts only describe which tools to call; they never touch storage

package mcp

import (
	"context"
	"fmt"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"
)

// Prompt names
const (
	PromptStarredDigest = "starred-digest"
	PromptResearchTopic = "research-topic"
)

func (s *Server) registerPrompts() {
	s.mcpServer.AddPrompt(
		mcp.Prompt{
			Name:        PromptStarredDigest,
			Description: "Summarize the articles you starred in NetNewsWire, grouped by theme",
			Arguments: []mcp.PromptArgument{
				{
					Name:        "account",
					Description: "Account name to read from. Defaults to the first account.",
					Required:    false,
				},
			},
		},
		s.handleStarredDigest,
	)

	s.mcpServer.AddPrompt(
		mcp.Prompt{
			Name:        PromptResearchTopic,
			Description: "Search your NetNewsWire articles for a topic and synthesize what you have read about it",
			Arguments: []mcp.PromptArgument{
				{
					Name:        "topic",
					Description: "Topic or full-text query to research",
					Required:    true,
				},
				{
					Name:        "account",
					Description: "Account name to read from. Defaults to the first account.",
					Required:    false,
				},
			},
		},
		s.handleResearchTopic,
	)
}

// accountClause renders the account argument hint for prompt text.
func accountClause(account string) string {
	if strings.TrimSpace(account) == "" {
		return ""
	}
	return fmt.Sprintf(` with account="%s"`, account)
}

func (s *Server) handleStarredDigest(_ context.Context, req mcp.GetPromptRequest) (*mcp.GetPromptResult, error) {
	acct := accountClause(req.Params.Arguments["account"])

	text := fmt.Sprintf(`# Starred Digest

Build a digest of the articles I have starred in NetNewsWire.

## Steps

1. Call %[1]s%[2]s to see what is starred. Note the article IDs.
2. For the most recent starred articles (up to 10), call %[3]s%[2]s with markdown=true.
3. Group the articles by theme. For each group give a two or three sentence summary and list the article titles with their URLs.
4. Finish with anything that looks time-sensitive or worth revisiting.

Only read data. Do not guess at article content you have not fetched.`,
		ToolListStarredArticles, acct, ToolGetArticle)

	return &mcp.GetPromptResult{
		Description: "Digest of starred NetNewsWire articles",
		Messages: []mcp.PromptMessage{
			{
				Role:    mcp.RoleUser,
				Content: mcp.TextContent{Type: "text", Text: text},
			},
		},
	}, nil
}

func (s *Server) handleResearchTopic(_ context.Context, req mcp.GetPromptRequest) (*mcp.GetPromptResult, error) {
	topic := strings.TrimSpace(req.Params.Arguments["topic"])
	if topic == "" {
		return nil, &MissingParameterError{Key: "topic"}
	}
	acct := accountClause(req.Params.Arguments["account"])

	text := fmt.Sprintf(`# Research: %[1]s

Find out what I have read in NetNewsWire about "%[1]s".

## Steps

1. Call %[2]s with query="%[1]s"%[3]s. If nothing matches, retry with simpler keywords.
2. Open the most relevant results with %[4]s%[3]s and markdown=true.
3. Summarize the main points, where sources agree or disagree, and cite each article by title and URL.
4. Call %[5]s%[3]s if it helps to place the results in context of the whole library.`,
		topic, ToolSearchArticles, acct, ToolGetArticle, ToolGetArticleCount)

	return &mcp.GetPromptResult{
		Description: fmt.Sprintf("Research %q across NetNewsWire articles", topic),
		Messages: []mcp.PromptMessage{
			{
				Role:    mcp.RoleUser,
				Content: mcp.TextContent{Type: "text", Text: text},
			},
		},
	}, nil
}
