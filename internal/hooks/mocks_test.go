package hooks

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
)

var errMockNotFound = errors.New("mock: executable not found")

type commandCall struct {
	dir  string
	name string
	args []string
}

func (c commandCall) String() string {
	return c.name + " " + strings.Join(c.args, " ")
}

func (c commandCall) isVersionQuery() bool {
	return len(c.args) == 1 && c.args[0] == "--version"
}

// mockCommandRunner implements CommandRunner for testing.
type mockCommandRunner struct {
	runFunc      func(ctx context.Context, dir, name string, args ...string) (*CommandOutput, error)
	lookPathFunc func(file string) (string, error)
	calls        []commandCall
	mu           sync.Mutex
}

func (m *mockCommandRunner) RunContext(ctx context.Context, dir, name string, args ...string) (*CommandOutput, error) {
	m.mu.Lock()
	m.calls = append(m.calls, commandCall{dir: dir, name: name, args: append([]string{}, args...)})
	m.mu.Unlock()

	if m.runFunc != nil {
		return m.runFunc(ctx, dir, name, args...)
	}
	return &CommandOutput{}, nil
}

func (m *mockCommandRunner) LookPath(file string) (string, error) {
	if m.lookPathFunc != nil {
		return m.lookPathFunc(file)
	}
	return "/usr/bin/" + file, nil
}

func (m *mockCommandRunner) getCalls() []commandCall {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]commandCall{}, m.calls...)
}

// callsTo returns the calls to name, leaving out sed dialect detection.
func (m *mockCommandRunner) callsTo(name string) []commandCall {
	var matched []commandCall
	for _, call := range m.getCalls() {
		if call.name == name && !call.isVersionQuery() {
			matched = append(matched, call)
		}
	}
	return matched
}

// versionQueries returns the "--version" calls made to name.
func (m *mockCommandRunner) versionQueries(name string) []commandCall {
	var matched []commandCall
	for _, call := range m.getCalls() {
		if call.name == name && call.isVersionQuery() {
			matched = append(matched, call)
		}
	}
	return matched
}

// mockEnvReader implements EnvReader for testing.
type mockEnvReader struct {
	vars map[string]string
}

func (m *mockEnvReader) LookupEnv(key string) (string, bool) {
	value, ok := m.vars[key]
	return value, ok
}

// mockWorkingDir implements WorkingDir for testing.
type mockWorkingDir struct {
	getwdFunc func() (string, error)
}

func (m *mockWorkingDir) Getwd() (string, error) {
	if m.getwdFunc != nil {
		return m.getwdFunc()
	}
	return "/work", nil
}

// mockAnalyzer implements Analyzer for testing.
type mockAnalyzer struct {
	analyzeFunc func(ctx context.Context, prompt string) (string, error)
	prompts     []string
	mu          sync.Mutex
}

func (m *mockAnalyzer) Analyze(ctx context.Context, prompt string) (string, error) {
	m.mu.Lock()
	m.prompts = append(m.prompts, prompt)
	m.mu.Unlock()

	if m.analyzeFunc != nil {
		return m.analyzeFunc(ctx, prompt)
	}
	return "looks good", nil
}

func (m *mockAnalyzer) getPrompts() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]string{}, m.prompts...)
}

// testDependencies bundles the mocks behind a Dependencies value.
type testDependencies struct {
	*Dependencies
	MockRunner *mockCommandRunner
	MockEnv    *mockEnvReader
	MockDir    *mockWorkingDir
	Stdout     *bytes.Buffer
	Stderr     *bytes.Buffer
}

func createTestDependencies() *testDependencies {
	runner := &mockCommandRunner{}
	env := &mockEnvReader{vars: map[string]string{}}
	dir := &mockWorkingDir{}
	stdout := &bytes.Buffer{}
	stderr := &bytes.Buffer{}

	return &testDependencies{
		Dependencies: &Dependencies{
			Runner: runner,
			Env:    env,
			Dir:    dir,
			Stdout: stdout,
			Stderr: stderr,
		},
		MockRunner: runner,
		MockEnv:    env,
		MockDir:    dir,
		Stdout:     stdout,
		Stderr:     stderr,
	}
}

// failingRun returns a runFunc that fails name for the given file while
// letting every other invocation succeed.
func failingRun(name, file, stderr string) func(context.Context, string, string, ...string) (*CommandOutput, error) {
	return func(_ context.Context, _, cmdName string, args ...string) (*CommandOutput, error) {
		if cmdName == name && len(args) > 0 && args[len(args)-1] == file {
			return &CommandOutput{Stderr: []byte(stderr)}, fmt.Errorf("run command %s: exit status 4", name)
		}
		return &CommandOutput{}, nil
	}
}
