// ABOUTME: MCP tool definitions for browsing NetNewsWire accounts, feeds, and articles
// ABOUTME: Every tool is read-only and hands its arguments to the Dispatcher

package mcp

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"
)

// accountProperty is shared by every tool that reads an account.
var accountProperty = map[string]interface{}{
	"type":        "string",
	"description": "Account name (e.g. 'OnMyMac', '2_iCloud'). Matching is case-insensitive. Defaults to the first account.",
}

var feedIDProperty = map[string]interface{}{
	"type":        "string",
	"description": "Optional feed ID to restrict results to one feed. NetNewsWire feed IDs are usually the feed URL. Example: 'https://daringfireball.net/feeds/main'",
}

func limitProperty(def int) map[string]interface{} {
	return map[string]interface{}{
		"type":        "integer",
		"description": "Maximum number of articles to return. Must be positive.",
		"default":     def,
	}
}

// readOnly marks a tool as a side-effect-free query over local data.
func readOnly(title string) mcp.ToolAnnotation {
	return mcp.ToolAnnotation{
		Title:           title,
		ReadOnlyHint:    mcp.ToBoolPtr(true),
		DestructiveHint: mcp.ToBoolPtr(false),
		IdempotentHint:  mcp.ToBoolPtr(true),
		OpenWorldHint:   mcp.ToBoolPtr(false),
	}
}

// toolDefinitions lists every tool the server registers.
func toolDefinitions() []mcp.Tool {
	return []mcp.Tool{
		{
			Name:        ToolListAccounts,
			Description: "List the NetNewsWire accounts found on this machine, with their paths and whether a subscriptions list exists. Use this first to learn valid account names.",
			InputSchema: mcp.ToolInputSchema{
				Type:       "object",
				Properties: map[string]interface{}{},
			},
			Annotations: readOnly("List accounts"),
		},
		{
			Name:        ToolListFeeds,
			Description: "List subscribed feeds for an account from its Subscriptions.opml, including folder and feed URL.",
			InputSchema: mcp.ToolInputSchema{
				Type: "object",
				Properties: map[string]interface{}{
					"account": accountProperty,
				},
			},
			Annotations: readOnly("List feeds"),
		},
		{
			Name:        ToolListStarredArticles,
			Description: "List starred articles, newest first by published date (falling back to arrival date). Returns a table with article IDs for use with get_article.",
			InputSchema: mcp.ToolInputSchema{
				Type: "object",
				Properties: map[string]interface{}{
					"account": accountProperty,
					"feed_id": feedIDProperty,
					"limit":   limitProperty(100),
				},
			},
			Annotations: readOnly("List starred articles"),
		},
		{
			Name:        ToolListRecentArticles,
			Description: "List the most recently arrived articles, newest first. Optionally restrict to one feed or to starred articles.",
			InputSchema: mcp.ToolInputSchema{
				Type: "object",
				Properties: map[string]interface{}{
					"account": accountProperty,
					"feed_id": feedIDProperty,
					"limit":   limitProperty(50),
					"starred_only": map[string]interface{}{
						"type":        "boolean",
						"description": "If true, only starred articles are listed. Default: false",
					},
				},
			},
			Annotations: readOnly("List recent articles"),
		},
		{
			Name:        ToolGetArticle,
			Description: "Get full details for one article: metadata, authors, summary, and content. Set markdown=true to convert HTML content to Markdown.",
			InputSchema: mcp.ToolInputSchema{
				Type: "object",
				Properties: map[string]interface{}{
					"account": accountProperty,
					"article_id": map[string]interface{}{
						"type":        "string",
						"description": "The article ID from a listing or search result.",
					},
					"markdown": map[string]interface{}{
						"type":        "boolean",
						"description": "If true, HTML content is converted to Markdown. Default: false",
					},
				},
				Required: []string{"article_id"},
			},
			Annotations: readOnly("Get article"),
		},
		{
			Name:        ToolSearchArticles,
			Description: "Full-text search over article titles and bodies using the NetNewsWire search index. The query uses SQLite FTS syntax, e.g. 'swift AND concurrency' or '\"exact phrase\"'.",
			InputSchema: mcp.ToolInputSchema{
				Type: "object",
				Properties: map[string]interface{}{
					"account": accountProperty,
					"query": map[string]interface{}{
						"type":        "string",
						"description": "Full-text search query.",
					},
					"limit": limitProperty(50),
				},
				Required: []string{"query"},
			},
			Annotations: readOnly("Search articles"),
		},
		{
			Name:        ToolGetArticleCount,
			Description: "Get total, starred, and unread article counts for an account.",
			InputSchema: mcp.ToolInputSchema{
				Type: "object",
				Properties: map[string]interface{}{
					"account": accountProperty,
				},
			},
			Annotations: readOnly("Get article counts"),
		},
	}
}

func (s *Server) registerTools() {
	for _, tool := range toolDefinitions() {
		s.mcpServer.AddTool(tool, s.handleTool)
	}
}

// handleTool adapts an MCP tool call to the dispatcher.
func (s *Server) handleTool(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	result := s.dispatcher.Call(ctx, req.Params.Name, Args(req.GetArguments()))
	if result.IsError {
		return mcp.NewToolResultError(result.Text), nil
	}
	return mcp.NewToolResultText(result.Text), nil
}
