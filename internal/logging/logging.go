// Package logging builds the debug logger shared by cc-cleanup commands.
package logging

import (
	"io"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/Veraticus/cc-cleanup/internal/shared"
)

// New returns a human-readable console logger writing to w when debug is
// enabled, and a no-op logger otherwise.
func New(debug bool, w io.Writer) *zap.Logger {
	if !debug {
		return zap.NewNop()
	}

	config := zap.NewDevelopmentEncoderConfig()
	config.TimeKey = ""
	config.CallerKey = ""
	config.StacktraceKey = ""
	config.EncodeLevel = styledLevelEncoder

	core := zapcore.NewCore(
		zapcore.NewConsoleEncoder(config),
		zapcore.Lock(zapcore.AddSync(w)),
		zapcore.DebugLevel,
	)
	return zap.New(core).Named("cc-cleanup")
}

// styledLevelEncoder writes the capitalized level in the hook's palette.
func styledLevelEncoder(level zapcore.Level, enc zapcore.PrimitiveArrayEncoder) {
	style := shared.InfoStyle
	switch {
	case level == zapcore.DebugLevel:
		style = shared.DebugStyle
	case level == zapcore.WarnLevel:
		style = shared.WarningStyle
	case level >= zapcore.ErrorLevel:
		style = shared.ErrorStyle
	}
	enc.AppendString(style.Render(level.CapitalString()))
}

// DebugEnabled reports whether debug logging was requested through the
// environment.
func DebugEnabled(lookup func(string) string) bool {
	return lookup("CLAUDE_HOOKS_DEBUG") == "1"
}
