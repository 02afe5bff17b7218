package hooks

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os"
	"os/exec"
)

// CommandOutput holds the captured streams of a finished command.
type CommandOutput struct {
	Stdout []byte
	Stderr []byte
}

// CommandRunner executes external commands.
type CommandRunner interface {
	// RunContext runs name with args and waits for it to exit. A non-nil
	// output is returned whenever the process was started.
	RunContext(ctx context.Context, dir, name string, args ...string) (*CommandOutput, error)
	LookPath(file string) (string, error)
}

// EnvReader reads environment variables.
type EnvReader interface {
	LookupEnv(key string) (string, bool)
}

// WorkingDir resolves the process working directory.
type WorkingDir interface {
	Getwd() (string, error)
}

// OutputWriter writes output to various destinations.
type OutputWriter interface {
	io.Writer
}

// Dependencies holds all external dependencies.
type Dependencies struct {
	Runner CommandRunner
	Env    EnvReader
	Dir    WorkingDir
	Stdout OutputWriter
	Stderr OutputWriter
}

// Production implementations

type realCommandRunner struct{}

func (r *realCommandRunner) RunContext(ctx context.Context, dir, name string, args ...string) (*CommandOutput, error) {
	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Dir = dir

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Start(); err != nil {
		return nil, fmt.Errorf("start command %s: %w", name, err)
	}
	err := cmd.Wait()
	output := &CommandOutput{Stdout: stdout.Bytes(), Stderr: stderr.Bytes()}
	if err != nil {
		return output, fmt.Errorf("run command %s: %w", name, err)
	}
	return output, nil
}

func (r *realCommandRunner) LookPath(file string) (string, error) {
	path, err := exec.LookPath(file)
	if err != nil {
		return "", fmt.Errorf("look path %s: %w", file, err)
	}
	return path, nil
}

type osEnvReader struct{}

func (o *osEnvReader) LookupEnv(key string) (string, bool) {
	return os.LookupEnv(key)
}

type osWorkingDir struct{}

func (o *osWorkingDir) Getwd() (string, error) {
	dir, err := os.Getwd()
	if err != nil {
		return "", fmt.Errorf("get working directory: %w", err)
	}
	return dir, nil
}

// NewDefaultDependencies creates production dependencies.
func NewDefaultDependencies() *Dependencies {
	return &Dependencies{
		Runner: &realCommandRunner{},
		Env:    &osEnvReader{},
		Dir:    &osWorkingDir{},
		Stdout: os.Stdout,
		Stderr: os.Stderr,
	}
}
