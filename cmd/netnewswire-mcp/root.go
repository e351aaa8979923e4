// ABOUTME: Root Cobra command, global flags, and shared process setup
// ABOUTME: Loads config, builds the logger, discovers accounts, and opens the read-only store

package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/harper/netnewswire-mcp/internal/accounts"
	"github.com/harper/netnewswire-mcp/internal/config"
	"github.com/harper/netnewswire-mcp/internal/storage"
)

// skipSetup marks commands that run without discovering accounts.
const skipSetup = "skip-setup"

var (
	cfgFile  string
	v        = viper.New()
	cfg      *config.Config
	logger   *log.Logger
	registry *accounts.Registry
	store    *storage.SQLiteStore
)

var rootCmd = &cobra.Command{
	Use:   "netnewswire-mcp",
	Short: "Read-only MCP server for NetNewsWire",
	Long: `netnewswire-mcp exposes your local NetNewsWire accounts to AI agents
over the Model Context Protocol.

Agents can list accounts and subscribed feeds, browse starred and recent
articles, run full-text searches, and read full article details. The
NetNewsWire databases are opened read-only and never modified.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if cmd.Annotations[skipSetup] != "" {
			return nil
		}
		return setup(cmd.ErrOrStderr())
	},
	PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
		if store != nil {
			if err := store.Close(); err != nil {
				return fmt.Errorf("failed to close databases: %w", err)
			}
			store = nil
		}
		return nil
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default: $XDG_CONFIG_HOME/netnewswire-mcp/config.yaml)")
	rootCmd.PersistentFlags().String("accounts-dir", "", "NetNewsWire Accounts directory (default: NetNewsWire sandbox container)")
	rootCmd.PersistentFlags().String("log-level", "", "log level: debug, info, warn, error (default: info)")

	_ = v.BindPFlag(config.KeyAccountsDir, rootCmd.PersistentFlags().Lookup("accounts-dir"))
	_ = v.BindPFlag(config.KeyLogLevel, rootCmd.PersistentFlags().Lookup("log-level"))
}

// setup loads configuration and discovers accounts. Logs go to w, never stdout,
// because stdout carries JSON-RPC in stdio mode.
func setup(w io.Writer) error {
	var err error

	cfg, err = config.Load(v, cfgFile)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	logger, err = newLogger(w, cfg.LogLevel)
	if err != nil {
		return err
	}

	accountsDir := cfg.GetAccountsDir()
	logger.Debug("configuration loaded", "accounts_dir", accountsDir, "http_addr", cfg.HTTPAddr)

	registry, err = accounts.NewRegistry(accountsDir)
	if err != nil {
		return err
	}
	logger.Infof("Found %d account(s): %s", len(registry.List()), strings.Join(registry.Names(), ", "))

	if store != nil {
		_ = store.Close()
	}
	store = storage.NewSQLiteStore()
	return nil
}

func newLogger(w io.Writer, level string) (*log.Logger, error) {
	lvl, err := log.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("invalid log level %q: %w", level, err)
	}
	return log.NewWithOptions(w, log.Options{
		Prefix:          config.AppName,
		ReportTimestamp: true,
		Level:           lvl,
	}), nil
}
