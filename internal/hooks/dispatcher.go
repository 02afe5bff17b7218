package hooks

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/Veraticus/cc-cleanup/internal/shared"
)

const (
	// ExitCodeFatal is returned when the hook environment is unusable.
	ExitCodeFatal = 1
)

// Options configures the cleanup steps.
type Options struct {
	StripCommand  string
	RustFormatter string
	TimeoutSecs   int
	// SedDialect is one of the SedDialect constants. Empty means auto.
	SedDialect string
	Logger     *zap.Logger
}

// DefaultOptions returns the options used when no configuration is given.
func DefaultOptions() *Options {
	return &Options{
		StripCommand:  "sed",
		RustFormatter: "rustfmt",
		SedDialect:    SedDialectAuto,
	}
}

// Runner processes edited files one at a time.
type Runner struct {
	analyzer Analyzer
	executor *CommandExecutor
	opts     *Options
	dialect  string
	logger   *zap.Logger
	deps     *Dependencies
}

// NewRunner creates a runner. A nil analyzer disables analysis.
func NewRunner(analyzer Analyzer, opts *Options, deps *Dependencies) *Runner {
	if deps == nil {
		deps = NewDefaultDependencies()
	}
	resolved := *DefaultOptions()
	if opts != nil {
		resolved = *opts
	}
	if resolved.StripCommand == "" {
		resolved.StripCommand = "sed"
	}
	if resolved.RustFormatter == "" {
		resolved.RustFormatter = "rustfmt"
	}
	if resolved.SedDialect == "" {
		resolved.SedDialect = SedDialectAuto
	}
	opts = &resolved

	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	return &Runner{
		analyzer: analyzer,
		executor: NewCommandExecutor(opts.TimeoutSecs, deps),
		opts:     opts,
		logger:   logger,
		deps:     deps,
	}
}

// Run processes every file in snapshot in order and returns the exit code.
// Per-file failures are printed and never change the result.
func (r *Runner) Run(ctx context.Context, snapshot *Snapshot) int {
	_, _ = fmt.Fprintln(r.deps.Stdout, shared.HeaderStyle.Render("🔧 Claude Code PostToolUse Hook"))
	_, _ = fmt.Fprintf(r.deps.Stdout, "📁 Project Directory: %s\n", snapshot.ProjectDir)

	if len(snapshot.FilePaths) == 0 {
		_, _ = fmt.Fprintln(r.deps.Stderr, shared.WarningStyle.Render("⚠️  No file paths provided"))
		return 0
	}

	analyze := snapshot.ToolOutput != "" && r.analyzer != nil
	r.logger.Debug("processing files",
		zap.Int("count", len(snapshot.FilePaths)),
		zap.Bool("analyze", analyze))

	for _, filePath := range snapshot.FilePaths {
		_, _ = fmt.Fprintf(r.deps.Stdout, "\n📄 Processing: %s\n", filePath)

		r.cleanupFile(ctx, filePath)

		if analyze {
			r.analyzeFile(ctx, filePath, snapshot.ToolOutput)
		}
	}

	_, _ = fmt.Fprintln(r.deps.Stdout, "\n"+shared.SuccessStyle.Render("✅ Enhanced hook processed successfully"))
	return 0
}

// RunPostToolUseHook is the main entry point for the cleanup hook. It reads
// the hook input from the environment and processes every listed file.
func RunPostToolUseHook(
	ctx context.Context,
	names EnvNames,
	analyzer Analyzer,
	opts *Options,
	deps *Dependencies,
) int {
	if deps == nil {
		deps = NewDefaultDependencies()
	}

	snapshot, err := ReadSnapshot(deps.Env, deps.Dir, names)
	if err != nil {
		_, _ = fmt.Fprintln(deps.Stderr, shared.ErrorStyle.Render(fmt.Sprintf("⛔ %v", err)))
		return ExitCodeFatal
	}

	return NewRunner(analyzer, opts, deps).Run(ctx, snapshot)
}
