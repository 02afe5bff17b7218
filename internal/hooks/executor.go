package hooks

import (
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strings"
	"time"
)

// Command is an external program invocation.
type Command struct {
	Name       string
	Args       []string
	WorkingDir string
}

// String returns the command line as it would be typed in a shell.
func (c *Command) String() string {
	if len(c.Args) == 0 {
		return c.Name
	}
	return c.Name + " " + strings.Join(c.Args, " ")
}

// ExecutorResult represents the result of executing a command.
type ExecutorResult struct {
	Success  bool
	Launched bool
	ExitCode int
	Stdout   string
	Stderr   string
	Error    error
	TimedOut bool
}

// CommandExecutor runs external commands through the injected runner.
type CommandExecutor struct {
	timeout time.Duration
	deps    *Dependencies
}

// NewCommandExecutor creates a new command executor. A timeoutSecs of zero
// or less leaves commands unbounded.
func NewCommandExecutor(timeoutSecs int, deps *Dependencies) *CommandExecutor {
	if deps == nil {
		deps = NewDefaultDependencies()
	}
	return &CommandExecutor{
		timeout: time.Duration(timeoutSecs) * time.Second,
		deps:    deps,
	}
}

// Execute runs cmd and waits for it to finish.
func (ce *CommandExecutor) Execute(ctx context.Context, cmd *Command) *ExecutorResult {
	if cmd == nil {
		return &ExecutorResult{
			Success: false,
			Error:   fmt.Errorf("no command to execute"),
		}
	}

	if ce.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, ce.timeout)
		defer cancel()
	}

	output, err := ce.deps.Runner.RunContext(ctx, cmd.WorkingDir, cmd.Name, cmd.Args...)

	// A nil output means the process never started
	if output == nil && err != nil {
		return &ExecutorResult{
			Success:  false,
			Launched: false,
			ExitCode: -1,
			Error:    err,
		}
	}

	var stdout, stderr string
	if output != nil {
		stdout = string(output.Stdout)
		stderr = string(output.Stderr)
	}

	if ce.timeout > 0 && errors.Is(ctx.Err(), context.DeadlineExceeded) {
		return &ExecutorResult{
			Success:  false,
			Launched: true,
			ExitCode: -1,
			Stdout:   stdout,
			Stderr:   stderr,
			Error:    fmt.Errorf("command timed out after %v", ce.timeout),
			TimedOut: true,
		}
	}

	exitCode := 0
	if err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			exitCode = exitErr.ExitCode()
		} else {
			exitCode = -1
		}
	}

	return &ExecutorResult{
		Success:  err == nil,
		Launched: true,
		ExitCode: exitCode,
		Stdout:   stdout,
		Stderr:   stderr,
		Error:    err,
	}
}

// FailureText returns the most useful description of a failed run: the
// command's stderr when it wrote any, otherwise the error.
func (r *ExecutorResult) FailureText() string {
	if text := strings.TrimSpace(r.Stderr); text != "" {
		return text
	}
	if r.Error != nil {
		return r.Error.Error()
	}
	return fmt.Sprintf("exit status %d", r.ExitCode)
}
