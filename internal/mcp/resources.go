// ABOUTME: MCP resources exposing read-only NetNewsWire views
// ABOUTME: The accounts resource renders the same markdown as list_accounts

package mcp

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/harper/netnewswire-mcp/internal/format"
)

// AccountsResourceURI identifies the discovered-accounts resource.
const AccountsResourceURI = "netnewswire://accounts"

func (s *Server) registerResources() {
	s.mcpServer.AddResource(
		mcp.Resource{
			URI:         AccountsResourceURI,
			Name:        "NetNewsWire Accounts",
			Description: "Accounts discovered in the NetNewsWire data directory, with paths and subscription list availability",
			MIMEType:    "text/markdown",
		},
		s.handleAccountsResource,
	)
}

func (s *Server) handleAccountsResource(_ context.Context, req mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
	return []mcp.ResourceContents{
		&mcp.TextResourceContents{
			URI:      req.Params.URI,
			MIMEType: "text/markdown",
			Text:     format.AccountList(s.dispatcher.Registry().List()),
		},
	}, nil
}
