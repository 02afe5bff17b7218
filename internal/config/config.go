// Package config manages application configuration using Viper.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"

	"github.com/Veraticus/cc-cleanup/internal/hooks"
)

// Analysis providers.
const (
	ProviderCLI  = "cli"
	ProviderAPI  = "api"
	ProviderNone = "none"
)

// Config represents the application configuration.
type Config struct {
	Env      EnvConfig      `mapstructure:"env"`
	Cleanup  CleanupConfig  `mapstructure:"cleanup"`
	Analysis AnalysisConfig `mapstructure:"analysis"`
}

// EnvConfig names the environment variables the hook reads its input from.
type EnvConfig struct {
	FilePaths  string `mapstructure:"file_paths"`
	ToolOutput string `mapstructure:"tool_output"`
	ProjectDir string `mapstructure:"project_dir"`
}

// CleanupConfig represents whitespace stripping and formatter settings.
type CleanupConfig struct {
	StripCommand   string `mapstructure:"strip_command"`
	RustFormatter  string `mapstructure:"rust_formatter"`
	SedDialect     string `mapstructure:"sed_dialect"`
	TimeoutSeconds int    `mapstructure:"timeout_seconds"`
}

// AnalysisConfig represents the remote assistant settings.
type AnalysisConfig struct {
	Provider       string `mapstructure:"provider"`
	Command        string `mapstructure:"command"`
	Model          string `mapstructure:"model"`
	APIKey         string `mapstructure:"api_key"`
	BaseURL        string `mapstructure:"base_url"`
	MaxTokens      int    `mapstructure:"max_tokens"`
	TimeoutSeconds int    `mapstructure:"timeout_seconds"`
}

// SetDefaults registers the default value of every key on v.
func SetDefaults(v *viper.Viper) {
	names := hooks.DefaultEnvNames()
	v.SetDefault("env.file_paths", names.FilePaths)
	v.SetDefault("env.tool_output", names.ToolOutput)
	v.SetDefault("env.project_dir", names.ProjectDir)

	opts := hooks.DefaultOptions()
	v.SetDefault("cleanup.strip_command", opts.StripCommand)
	v.SetDefault("cleanup.rust_formatter", opts.RustFormatter)
	v.SetDefault("cleanup.sed_dialect", opts.SedDialect)
	v.SetDefault("cleanup.timeout_seconds", opts.TimeoutSecs)

	v.SetDefault("analysis.provider", ProviderCLI)
	v.SetDefault("analysis.command", "claude")
	v.SetDefault("analysis.model", "")
	v.SetDefault("analysis.api_key", "")
	v.SetDefault("analysis.base_url", "https://api.anthropic.com")
	v.SetDefault("analysis.max_tokens", 1024)
	v.SetDefault("analysis.timeout_seconds", 0)
}

// Defaults returns the configuration with every key at its default value.
// Environment variables are not consulted.
func Defaults() *Config {
	v := viper.New()
	SetDefaults(v)
	var cfg Config
	_ = v.Unmarshal(&cfg)
	return &cfg
}

// Load loads configuration from files and environment variables.
// It searches for config files in the following order:
// 1. /etc/cc-cleanup/config.{toml,yaml,yml}
// 2. $XDG_CONFIG_HOME/cc-cleanup/config.{toml,yaml,yml} (or ~/.config/cc-cleanup/)
//
// The working directory is never searched: the hook runs inside arbitrary
// projects whose own config files are not ours.
//
// When configFile is non-empty only that file is read, and it must exist.
//
// Environment variables override file settings using the prefix CC_CLEANUP_
// For example: CC_CLEANUP_ANALYSIS_PROVIDER
func Load(configFile string) (*Config, error) {
	v := viper.New()
	SetDefaults(v)

	if configFile != "" {
		v.SetConfigFile(configFile)
	} else {
		v.SetConfigName("config")
		v.AddConfigPath("/etc/cc-cleanup/")
		if xdg := getXDGConfigPath(); xdg != "" {
			v.AddConfigPath(xdg)
		}
	}

	v.SetEnvPrefix("CC_CLEANUP")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if configFile != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read config file: %w", err)
		}
		// Config file not found is OK, we'll use defaults and env vars
	}

	return LoadWithViper(v)
}

// LoadWithViper loads configuration using a provided Viper instance.
// This is useful for testing or when you want to configure Viper differently.
func LoadWithViper(v *viper.Viper) (*Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}
	return &cfg, nil
}

// Flatten returns the configuration as display key/value pairs.
// Secrets are masked.
func (c *Config) Flatten() map[string]string {
	apiKey := ""
	if c.Analysis.APIKey != "" {
		apiKey = "********"
	}
	return map[string]string{
		"env.file_paths":           c.Env.FilePaths,
		"env.tool_output":          c.Env.ToolOutput,
		"env.project_dir":          c.Env.ProjectDir,
		"cleanup.strip_command":    c.Cleanup.StripCommand,
		"cleanup.rust_formatter":   c.Cleanup.RustFormatter,
		"cleanup.sed_dialect":      c.Cleanup.SedDialect,
		"cleanup.timeout_seconds":  fmt.Sprintf("%d", c.Cleanup.TimeoutSeconds),
		"analysis.provider":        c.Analysis.Provider,
		"analysis.command":         c.Analysis.Command,
		"analysis.model":           c.Analysis.Model,
		"analysis.api_key":         apiKey,
		"analysis.base_url":        c.Analysis.BaseURL,
		"analysis.max_tokens":      fmt.Sprintf("%d", c.Analysis.MaxTokens),
		"analysis.timeout_seconds": fmt.Sprintf("%d", c.Analysis.TimeoutSeconds),
	}
}

// getXDGConfigPath returns the XDG config directory for cc-cleanup, or ""
// when neither XDG_CONFIG_HOME nor the home directory is known.
func getXDGConfigPath() string {
	if xdgConfig := os.Getenv("XDG_CONFIG_HOME"); xdgConfig != "" {
		return filepath.Join(xdgConfig, "cc-cleanup")
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return ""
	}

	return filepath.Join(homeDir, ".config", "cc-cleanup")
}
