// Package analysis provides the remote assistant backends used to review
// edited files.
package analysis

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/Veraticus/cc-cleanup/internal/hooks"
)

// ErrEmptyResponse is returned when the assistant replies with no text.
var ErrEmptyResponse = errors.New("empty response from assistant")

// CLIClient submits prompts through the claude command line in print mode.
type CLIClient struct {
	runner  hooks.CommandRunner
	command string
	model   string
	timeout time.Duration
}

// NewCLIClient creates a client that runs command (normally "claude").
func NewCLIClient(runner hooks.CommandRunner, command, model string, timeoutSecs int) *CLIClient {
	return &CLIClient{
		runner:  runner,
		command: command,
		model:   model,
		timeout: time.Duration(timeoutSecs) * time.Second,
	}
}

// Args returns the arguments passed to the command for prompt.
func (c *CLIClient) Args(prompt string) []string {
	args := []string{"--print"}
	if c.model != "" {
		args = append(args, "--model", c.model)
	}
	return append(args, prompt)
}

// Analyze runs the command with prompt and returns its standard output.
func (c *CLIClient) Analyze(ctx context.Context, prompt string) (string, error) {
	if c.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}

	output, err := c.runner.RunContext(ctx, "", c.command, c.Args(prompt)...)
	if err != nil {
		if output != nil {
			if stderr := strings.TrimSpace(string(output.Stderr)); stderr != "" {
				return "", fmt.Errorf("%s: %w: %s", c.command, err, stderr)
			}
		}
		return "", fmt.Errorf("%s: %w", c.command, err)
	}

	text := strings.TrimRight(string(output.Stdout), "\n")
	if strings.TrimSpace(text) == "" {
		return "", ErrEmptyResponse
	}
	return text, nil
}
