// ABOUTME: Centralized configuration defaults for netnewswire-mcp
// ABOUTME: Names, environment prefix, and fallback values shared by config and commands

package config

import "time"

// AppName is used for the config directory and log prefix.
const AppName = "netnewswire-mcp"

// Config file settings
const (
	ConfigName = "config"
	ConfigType = "yaml"
	EnvPrefix  = "NNW_MCP"
)

// Keys shared between viper, flags, and environment variables
const (
	KeyAccountsDir = "accounts_dir"
	KeyLogLevel    = "log_level"
	KeyHTTPAddr    = "http_addr"
)

// Logging settings
const (
	DefaultLogLevel = "info"
)

// HTTP settings
const (
	DefaultShutdownTimeout = 10 * time.Second
	ReadHeaderTimeout      = 10 * time.Second
)

// validLogLevels are the levels charmbracelet/log understands.
var validLogLevels = []string{"debug", "info", "warn", "error"}
