// ABOUTME: MCP server for netnewswire-mcp over stdio or streamable HTTP
// ABOUTME: Registers read-only tools, the accounts resource, and workflow prompts

package mcp

import (
	"net/http"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/mark3labs/mcp-go/server"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// ServerName is reported to clients during initialization.
const ServerName = "netnewswire-mcp"

// HTTP routes served in HTTP mode
const (
	MCPPath     = "/mcp"
	HealthPath  = "/healthz"
	MetricsPath = "/metrics"
)

// Server wraps the MCP server with the tool dispatcher.
type Server struct {
	mcpServer  *server.MCPServer
	dispatcher *Dispatcher
	logger     *log.Logger
}

// NewServer creates a new MCP server instance.
func NewServer(dispatcher *Dispatcher, version string, logger *log.Logger) *Server {
	s := &Server{
		dispatcher: dispatcher,
		logger:     logger,
	}

	s.mcpServer = server.NewMCPServer(
		ServerName,
		version,
		server.WithToolCapabilities(false),
		server.WithResourceCapabilities(false, false),
		server.WithPromptCapabilities(false),
		server.WithRecovery(),
	)

	s.registerTools()
	s.registerResources()
	s.registerPrompts()

	return s
}

// MCPServer exposes the underlying server for in-process clients.
func (s *Server) MCPServer() *server.MCPServer {
	return s.mcpServer
}

// ServeStdio serves JSON-RPC on stdin/stdout. Logs must go to stderr.
func (s *Server) ServeStdio() error {
	return server.ServeStdio(s.mcpServer, server.WithErrorLogger(s.logger.StandardLog()))
}

// HTTPHandler routes streamable HTTP MCP traffic plus health and metrics endpoints.
func (s *Server) HTTPHandler(gatherer prometheus.Gatherer) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)

	r.Get(HealthPath, func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		_, _ = w.Write([]byte("ok\n"))
	})
	r.Handle(MetricsPath, promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{}))

	streamable := server.NewStreamableHTTPServer(s.mcpServer, server.WithEndpointPath(MCPPath))
	r.Handle(MCPPath, streamable)

	return r
}
