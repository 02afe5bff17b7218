package hooks

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/Veraticus/cc-cleanup/internal/shared"
)

// trailingBlankPattern deletes runs of spaces and tabs at the end of a line.
const trailingBlankPattern = "s/[[:blank:]]*$//"

// Sed dialects accepted by Options.SedDialect.
const (
	SedDialectAuto = "auto"
	SedDialectGNU  = "gnu"
	SedDialectBSD  = "bsd"
)

// StripArgs returns the in-place sed arguments for path. BSD sed takes the
// backup suffix as a separate argument.
func StripArgs(dialect, path string) []string {
	if dialect == SedDialectBSD {
		return []string{"-i", "", trailingBlankPattern, path}
	}
	return []string{"-i", trailingBlankPattern, path}
}

// sedDialect returns the in-place syntax the strip command accepts. Auto
// detection runs once per Runner.
func (r *Runner) sedDialect(ctx context.Context) string {
	if r.dialect != "" {
		return r.dialect
	}

	switch r.opts.SedDialect {
	case SedDialectGNU, SedDialectBSD:
		r.dialect = r.opts.SedDialect
	default:
		r.dialect = r.detectSedDialect(ctx)
	}
	return r.dialect
}

// detectSedDialect asks the strip command for its version. GNU sed answers;
// BSD sed rejects the flag. A command that cannot be started is left as GNU,
// the strip step reports it.
func (r *Runner) detectSedDialect(ctx context.Context) string {
	cmd := &Command{Name: r.opts.StripCommand, Args: []string{"--version"}}
	result := r.executor.Execute(ctx, cmd)

	dialect := SedDialectGNU
	if result.Launched && !result.Success && !result.TimedOut {
		dialect = SedDialectBSD
	}
	r.logger.Debug("detected sed dialect",
		zap.String("command", r.opts.StripCommand),
		zap.String("dialect", dialect))
	return dialect
}

// cleanupFile strips trailing whitespace from filePath and runs the formatter
// for its type. Every failure is reported and swallowed.
func (r *Runner) cleanupFile(ctx context.Context, filePath string) {
	r.stripWhitespace(ctx, filePath)

	switch shared.DetectFileType(filePath) {
	case shared.FileTypeRust:
		r.formatRust(ctx, filePath)
	case shared.FileTypeJSON:
		_, _ = fmt.Fprintln(r.deps.Stdout, shared.InfoStyle.Render("📋 JSON file detected"))
	}
}

func (r *Runner) stripWhitespace(ctx context.Context, filePath string) {
	cmd := &Command{Name: r.opts.StripCommand, Args: StripArgs(r.sedDialect(ctx), filePath)}
	r.logger.Debug("running command", zap.Stringer("command", cmd))

	result := r.executor.Execute(ctx, cmd)
	switch {
	case result.Success:
		_, _ = fmt.Fprintln(r.deps.Stdout, shared.SuccessStyle.Render("🧹 Removed trailing whitespace"))
	case !result.Launched:
		_, _ = fmt.Fprintln(r.deps.Stderr, shared.WarningStyle.Render(
			fmt.Sprintf("⚠️  Failed to run %s:", r.opts.StripCommand)), result.Error)
	default:
		_, _ = fmt.Fprintln(r.deps.Stderr, shared.WarningStyle.Render(
			fmt.Sprintf("⚠️  %s failed:", r.opts.StripCommand)), result.FailureText())
	}
}

// formatRust runs the Rust formatter in place. A formatter that is not
// installed is skipped quietly.
func (r *Runner) formatRust(ctx context.Context, filePath string) {
	if _, err := r.deps.Runner.LookPath(r.opts.RustFormatter); err != nil {
		r.logger.Debug("formatter not installed", zap.String("formatter", r.opts.RustFormatter), zap.Error(err))
		return
	}

	cmd := &Command{Name: r.opts.RustFormatter, Args: []string{filePath}}
	r.logger.Debug("running command", zap.Stringer("command", cmd))

	result := r.executor.Execute(ctx, cmd)
	switch {
	case result.Success:
		_, _ = fmt.Fprintln(r.deps.Stdout, shared.SuccessStyle.Render("🦀 Applied rustfmt formatting"))
	case !result.Launched:
		r.logger.Debug("formatter could not be launched", zap.String("formatter", r.opts.RustFormatter), zap.Error(result.Error))
	default:
		_, _ = fmt.Fprintln(r.deps.Stderr, shared.WarningStyle.Render(
			fmt.Sprintf("⚠️  %s failed:", r.opts.RustFormatter)), result.FailureText())
	}
}
