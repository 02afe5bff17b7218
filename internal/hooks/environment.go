package hooks

import (
	"fmt"
	"path/filepath"
	"strings"
)

// EnvNames names the environment variables that carry hook input.
type EnvNames struct {
	FilePaths  string
	ToolOutput string
	ProjectDir string
}

// DefaultEnvNames returns the variable names Claude Code exports to hooks.
func DefaultEnvNames() EnvNames {
	return EnvNames{
		FilePaths:  "CLAUDE_FILE_PATHS",
		ToolOutput: "CLAUDE_TOOL_OUTPUT",
		ProjectDir: "CLAUDE_PROJECT_DIR",
	}
}

// Snapshot is the hook input, read once at startup.
type Snapshot struct {
	FilePaths  []string
	ToolOutput string
	ProjectDir string
}

// ReadSnapshot reads the hook input from the environment. Unset variables
// default to empty, except the project directory which falls back to the
// absolute working directory. Failing to resolve that directory is the only
// error.
func ReadSnapshot(env EnvReader, dir WorkingDir, names EnvNames) (*Snapshot, error) {
	filePaths, _ := env.LookupEnv(names.FilePaths)
	toolOutput, _ := env.LookupEnv(names.ToolOutput)

	projectDir, ok := env.LookupEnv(names.ProjectDir)
	if !ok {
		wd, err := dir.Getwd()
		if err != nil {
			return nil, fmt.Errorf("resolve project directory: %w", err)
		}
		abs, err := filepath.Abs(wd)
		if err != nil {
			return nil, fmt.Errorf("resolve project directory: %w", err)
		}
		projectDir = abs
	}

	return &Snapshot{
		FilePaths:  SplitFilePaths(filePaths),
		ToolOutput: toolOutput,
		ProjectDir: projectDir,
	}, nil
}

// SplitFilePaths splits a whitespace separated path list, dropping empty
// tokens and keeping order.
func SplitFilePaths(s string) []string {
	return strings.Fields(s)
}
