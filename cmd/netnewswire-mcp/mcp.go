// ABOUTME: MCP server command for the netnewswire-mcp CLI
// ABOUTME: Serves on stdio by default or on streamable HTTP with --http

package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/spf13/cobra"

	"github.com/harper/netnewswire-mcp/internal/config"
	"github.com/harper/netnewswire-mcp/internal/mcp"
)

var mcpCmd = &cobra.Command{
	Use:     "mcp",
	Aliases: []string{"serve"},
	Short:   "Start MCP server for AI agents",
	Long: `Start the Model Context Protocol (MCP) server.

By default the server communicates via JSON-RPC on stdin/stdout, which is
what desktop agents expect when they launch it as a subprocess. With
--http it instead serves streamable HTTP at /mcp, plus /healthz and
/metrics.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		metricsRegistry := prometheus.NewRegistry()
		metricsRegistry.MustRegister(
			collectors.NewGoCollector(),
			collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		)

		server := newServer(metricsRegistry)

		if cfg.HTTPAddr == "" {
			logger.Info("serving MCP on stdio")
			if err := server.ServeStdio(); err != nil {
				return fmt.Errorf("MCP server error: %w", err)
			}
			return nil
		}

		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()
		return serveHTTP(ctx, cfg.HTTPAddr, server.HTTPHandler(metricsRegistry))
	},
}

func init() {
	mcpCmd.Flags().String("http", "", "serve streamable HTTP on this address (e.g. 127.0.0.1:8080) instead of stdio")
	_ = v.BindPFlag(config.KeyHTTPAddr, mcpCmd.Flags().Lookup("http"))

	rootCmd.AddCommand(mcpCmd)
}

// newServer wires the dispatcher into an MCP server, recording metrics in reg.
func newServer(reg prometheus.Registerer) *mcp.Server {
	dispatcher := mcp.NewDispatcher(registry, store,
		mcp.WithLogger(logger),
		mcp.WithMetrics(mcp.NewMetrics(reg)),
	)
	return mcp.NewServer(dispatcher, Version, logger)
}

// serveHTTP runs handler on addr until ctx is cancelled, then shuts down gracefully.
func serveHTTP(ctx context.Context, addr string, handler http.Handler) error {
	httpServer := &http.Server{
		Addr:              addr,
		Handler:           handler,
		ReadHeaderTimeout: config.ReadHeaderTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("serving MCP over HTTP", "addr", addr, "endpoint", mcp.MCPPath)
		errCh <- httpServer.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("HTTP server error: %w", err)
	case <-ctx.Done():
	}

	logger.Info("shutting down HTTP server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), config.DefaultShutdownTimeout)
	defer cancel()
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("HTTP shutdown error: %w", err)
	}
	return nil
}
