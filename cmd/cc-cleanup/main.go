// Package main implements the cc-cleanup PostToolUse hook.
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/Veraticus/cc-cleanup/internal/analysis"
	"github.com/Veraticus/cc-cleanup/internal/config"
	"github.com/Veraticus/cc-cleanup/internal/hooks"
	"github.com/Veraticus/cc-cleanup/internal/logging"
	"github.com/Veraticus/cc-cleanup/internal/output"
	"github.com/Veraticus/cc-cleanup/internal/shared"
)

const version = "v0.1.0"

// exitError carries a process exit code out of a cobra command.
type exitError struct {
	code int
}

func (e *exitError) Error() string {
	return fmt.Sprintf("exit code %d", e.code)
}

type rootFlags struct {
	debug      bool
	configFile string
}

func main() {
	cmd := newRootCommand(hooks.NewDefaultDependencies())
	if err := cmd.Execute(); err != nil {
		var exitErr *exitError
		if errors.As(err, &exitErr) {
			os.Exit(exitErr.code)
		}
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(hooks.ExitCodeFatal)
	}
}

func newRootCommand(deps *hooks.Dependencies) *cobra.Command {
	flags := &rootFlags{}

	root := &cobra.Command{
		Use:   "cc-cleanup",
		Short: "Claude Code PostToolUse hook that tidies and reviews edited files",
		Long: `cc-cleanup strips trailing whitespace from the files listed in
CLAUDE_FILE_PATHS, runs rustfmt on Rust sources and, when CLAUDE_TOOL_OUTPUT
is set, asks Claude to review each change.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runHook(cmd, flags, deps)
		},
	}
	root.SetOut(deps.Stdout)
	root.SetErr(deps.Stderr)

	root.PersistentFlags().BoolVar(&flags.debug, "debug", false, "write debug logs to stderr (or set CLAUDE_HOOKS_DEBUG=1)")
	root.PersistentFlags().StringVar(&flags.configFile, "config", "", "config file (default searches /etc/cc-cleanup and $XDG_CONFIG_HOME/cc-cleanup)")

	root.AddCommand(
		&cobra.Command{
			Use:   "run",
			Short: "Run the hook (default)",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, _ []string) error {
				return runHook(cmd, flags, deps)
			},
		},
		&cobra.Command{
			Use:   "config",
			Short: "Print the effective configuration",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, _ []string) error {
				return showConfig(cmd, flags)
			},
		},
		&cobra.Command{
			Use:   "version",
			Short: "Print version information",
			Args:  cobra.NoArgs,
			Run: func(cmd *cobra.Command, _ []string) {
				cmd.Printf("cc-cleanup %s\n", version)
			},
		},
	)

	return root
}

func runHook(cmd *cobra.Command, flags *rootFlags, deps *hooks.Dependencies) error {
	lookupEnv := func(key string) string {
		value, _ := deps.Env.LookupEnv(key)
		return value
	}

	logger := logging.New(flags.debug || logging.DebugEnabled(lookupEnv), deps.Stderr)
	defer func() {
		_ = logger.Sync()
	}()

	cfg, err := loadHookConfig(flags.configFile, deps)
	if err != nil {
		return err
	}
	logger.Debug("configuration loaded", zap.String("provider", cfg.Analysis.Provider))

	analyzer, err := analysis.New(cfg.Analysis, deps.Runner, lookupEnv)
	if err != nil {
		_, _ = fmt.Fprintln(deps.Stderr, shared.WarningStyle.Render(
			fmt.Sprintf("⚠️  Analysis disabled: %v", err)))
	}

	names := hooks.EnvNames{
		FilePaths:  cfg.Env.FilePaths,
		ToolOutput: cfg.Env.ToolOutput,
		ProjectDir: cfg.Env.ProjectDir,
	}
	opts := &hooks.Options{
		StripCommand:  cfg.Cleanup.StripCommand,
		RustFormatter: cfg.Cleanup.RustFormatter,
		TimeoutSecs:   cfg.Cleanup.TimeoutSeconds,
		SedDialect:    cfg.Cleanup.SedDialect,
		Logger:        logger,
	}

	if code := hooks.RunPostToolUseHook(cmd.Context(), names, analyzer, opts, deps); code != 0 {
		return &exitError{code: code}
	}
	return nil
}

// loadHookConfig reads the configuration for a hook run. A file named with
// --config must load; a broken file found on the search path is reported and
// the defaults are used instead so the hook still cleans up.
func loadHookConfig(configFile string, deps *hooks.Dependencies) (*config.Config, error) {
	cfg, err := config.Load(configFile)
	if err == nil {
		return cfg, nil
	}
	if configFile != "" {
		return nil, fmt.Errorf("load config: %w", err)
	}

	_, _ = fmt.Fprintln(deps.Stderr, shared.WarningStyle.Render("⚠️  Ignoring config file:"), err)
	return config.Defaults(), nil
}

func showConfig(cmd *cobra.Command, flags *rootFlags) error {
	cfg, err := config.Load(flags.configFile)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	cmd.Print(output.NewListRenderer().RenderMap("cc-cleanup configuration", cfg.Flatten()))
	return nil
}
