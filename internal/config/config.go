// ABOUTME: Viper-backed configuration loaded from file, environment, and flags
// ABOUTME: Resolves the NetNewsWire accounts directory, log level, and optional HTTP address

package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/spf13/viper"

	"github.com/harper/netnewswire-mcp/internal/accounts"
)

// Config stores netnewswire-mcp settings.
type Config struct {
	// AccountsDir is the NetNewsWire Accounts directory. Supports ~ expansion.
	AccountsDir string `mapstructure:"accounts_dir"`

	// LogLevel is one of debug, info, warn, error.
	LogLevel string `mapstructure:"log_level"`

	// HTTPAddr serves MCP over streamable HTTP when set; stdio otherwise.
	HTTPAddr string `mapstructure:"http_addr"`
}

// GetAccountsDir returns the accounts directory with ~ expanded.
func (c *Config) GetAccountsDir() string {
	if c.AccountsDir == "" {
		return accounts.DefaultBaseDir()
	}
	return ExpandPath(c.AccountsDir)
}

// ExpandPath expands a leading ~ to the user's home directory.
func ExpandPath(path string) string {
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(home, strings.TrimPrefix(path[1:], "/"))
}

// GetConfigDir returns the directory searched for config.yaml.
func GetConfigDir() string {
	configDir := os.Getenv("XDG_CONFIG_HOME")
	if configDir == "" {
		homeDir, _ := os.UserHomeDir()
		configDir = filepath.Join(homeDir, ".config")
	}
	return filepath.Join(configDir, AppName)
}

// SetDefaults registers default values on v.
func SetDefaults(v *viper.Viper) {
	v.SetDefault(KeyAccountsDir, accounts.DefaultBaseDir())
	v.SetDefault(KeyLogLevel, DefaultLogLevel)
	v.SetDefault(KeyHTTPAddr, "")
}

// Load reads configuration into v and returns the validated result.
// cfgFile overrides the search path; a missing default config file is not an error.
// Flags must already be bound to v by the caller.
func Load(v *viper.Viper, cfgFile string) (*Config, error) {
	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		v.SetConfigName(ConfigName)
		v.SetConfigType(ConfigType)
		v.AddConfigPath(GetConfigDir())
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	SetDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("reading config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshaling config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("validating config: %w", err)
	}

	return &cfg, nil
}

// Validate normalizes and checks the loaded settings.
func (c *Config) Validate() error {
	c.LogLevel = strings.ToLower(strings.TrimSpace(c.LogLevel))
	if c.LogLevel == "" {
		c.LogLevel = DefaultLogLevel
	}
	if !slices.Contains(validLogLevels, c.LogLevel) {
		return fmt.Errorf("invalid log level %q: must be one of %s", c.LogLevel, strings.Join(validLogLevels, ", "))
	}
	return nil
}
