package hooks

import (
	"context"
	"reflect"
	"strings"
	"testing"
)

func TestStripArgs(t *testing.T) {
	tests := []struct {
		dialect string
		want    []string
	}{
		{SedDialectGNU, []string{"-i", "s/[[:blank:]]*$//", "a.rs"}},
		{SedDialectBSD, []string{"-i", "", "s/[[:blank:]]*$//", "a.rs"}},
	}

	for _, tt := range tests {
		t.Run(tt.dialect, func(t *testing.T) {
			if got := StripArgs(tt.dialect, "a.rs"); !reflect.DeepEqual(got, tt.want) {
				t.Errorf("StripArgs(%q) = %q, want %q", tt.dialect, got, tt.want)
			}
		})
	}
}

func TestSedDialect(t *testing.T) {
	gnuArgs := "-i s/[[:blank:]]*$// lib.rs"
	bsdArgs := "-i  s/[[:blank:]]*$// lib.rs"

	t.Run("auto uses GNU form when sed answers --version", func(t *testing.T) {
		testDeps := createTestDependencies()
		testDeps.MockRunner.runFunc = func(_ context.Context, _, _ string, args ...string) (*CommandOutput, error) {
			if len(args) == 1 && args[0] == "--version" {
				return &CommandOutput{Stdout: []byte("gsed (GNU sed) 4.9")}, nil
			}
			return &CommandOutput{}, nil
		}
		opts := &Options{StripCommand: "gsed", RustFormatter: "rustfmt", SedDialect: SedDialectAuto}
		runner := NewRunner(nil, opts, testDeps.Dependencies)

		runner.cleanupFile(context.Background(), "lib.rs")
		runner.cleanupFile(context.Background(), "lib.rs")

		calls := testDeps.MockRunner.callsTo("gsed")
		if len(calls) != 2 {
			t.Fatalf("Expected 2 strip calls, got %v", calls)
		}
		if got := strings.Join(calls[0].args, " "); got != gnuArgs {
			t.Errorf("Expected GNU arguments %q, got %q", gnuArgs, got)
		}
		if queries := testDeps.MockRunner.versionQueries("gsed"); len(queries) != 1 {
			t.Errorf("Expected dialect detected once, got %d queries", len(queries))
		}
	})

	t.Run("auto uses BSD form when sed rejects --version", func(t *testing.T) {
		testDeps := createTestDependencies()
		testDeps.MockRunner.runFunc = failingRun("sed", "--version", "sed: illegal option -- -")
		opts := &Options{StripCommand: "sed", RustFormatter: "rustfmt"}
		runner := NewRunner(nil, opts, testDeps.Dependencies)

		runner.cleanupFile(context.Background(), "lib.rs")

		calls := testDeps.MockRunner.callsTo("sed")
		if len(calls) != 1 {
			t.Fatalf("Expected 1 strip call, got %v", calls)
		}
		if got := strings.Join(calls[0].args, " "); got != bsdArgs {
			t.Errorf("Expected BSD arguments %q, got %q", bsdArgs, got)
		}
		if !strings.Contains(testDeps.Stdout.String(), "Removed trailing whitespace") {
			t.Errorf("Expected confirmation, got %q", testDeps.Stdout.String())
		}
	})

	t.Run("explicit dialect skips detection", func(t *testing.T) {
		testDeps := createTestDependencies()
		opts := &Options{StripCommand: "sed", RustFormatter: "rustfmt", SedDialect: SedDialectBSD}
		runner := NewRunner(nil, opts, testDeps.Dependencies)

		runner.cleanupFile(context.Background(), "lib.rs")

		if queries := testDeps.MockRunner.versionQueries("sed"); len(queries) != 0 {
			t.Errorf("Expected no detection, got %v", queries)
		}
		calls := testDeps.MockRunner.callsTo("sed")
		if len(calls) != 1 || strings.Join(calls[0].args, " ") != bsdArgs {
			t.Errorf("Expected BSD arguments, got %v", calls)
		}
	})

	t.Run("missing sed falls back to GNU form and reports the failure", func(t *testing.T) {
		testDeps := createTestDependencies()
		testDeps.MockRunner.runFunc = func(_ context.Context, _, name string, _ ...string) (*CommandOutput, error) {
			if name == "sed" {
				return nil, errMockNotFound
			}
			return &CommandOutput{}, nil
		}
		runner := NewRunner(nil, &Options{StripCommand: "sed", RustFormatter: "rustfmt"}, testDeps.Dependencies)

		runner.cleanupFile(context.Background(), "lib.rs")

		calls := testDeps.MockRunner.callsTo("sed")
		if len(calls) != 1 || strings.Join(calls[0].args, " ") != gnuArgs {
			t.Errorf("Expected GNU arguments, got %v", calls)
		}
		if !strings.Contains(testDeps.Stderr.String(), "Failed to run sed") {
			t.Errorf("Expected launch diagnostic, got %q", testDeps.Stderr.String())
		}
	})
}

func TestCleanupFile(t *testing.T) {
	gnu := func() *Options {
		return &Options{StripCommand: "sed", RustFormatter: "rustfmt", SedDialect: SedDialectGNU}
	}

	t.Run("strips whitespace in place", func(t *testing.T) {
		testDeps := createTestDependencies()
		runner := NewRunner(nil, gnu(), testDeps.Dependencies)

		runner.cleanupFile(context.Background(), "notes.txt")

		calls := testDeps.MockRunner.getCalls()
		if len(calls) != 1 {
			t.Fatalf("Expected 1 call, got %v", calls)
		}
		if calls[0].String() != "sed -i s/[[:blank:]]*$// notes.txt" {
			t.Errorf("Unexpected sed invocation: %s", calls[0])
		}
		if !strings.Contains(testDeps.Stdout.String(), "Removed trailing whitespace") {
			t.Errorf("Expected confirmation, got %q", testDeps.Stdout.String())
		}
	})

	t.Run("reports sed that cannot be launched", func(t *testing.T) {
		testDeps := createTestDependencies()
		testDeps.MockRunner.runFunc = func(_ context.Context, _, name string, _ ...string) (*CommandOutput, error) {
			if name == "sed" {
				return nil, errMockNotFound
			}
			return &CommandOutput{}, nil
		}
		runner := NewRunner(nil, gnu(), testDeps.Dependencies)

		runner.cleanupFile(context.Background(), "main.rs")

		if !strings.Contains(testDeps.Stderr.String(), "Failed to run sed: mock: executable not found") {
			t.Errorf("Expected launch diagnostic, got %q", testDeps.Stderr.String())
		}
		if len(testDeps.MockRunner.callsTo("rustfmt")) != 1 {
			t.Error("Expected formatter to run after sed launch failure")
		}
	})

	t.Run("runs rustfmt for Rust files", func(t *testing.T) {
		testDeps := createTestDependencies()
		runner := NewRunner(nil, gnu(), testDeps.Dependencies)

		runner.cleanupFile(context.Background(), "src/main.rs")

		calls := testDeps.MockRunner.callsTo("rustfmt")
		if len(calls) != 1 || calls[0].String() != "rustfmt src/main.rs" {
			t.Fatalf("Expected rustfmt src/main.rs, got %v", calls)
		}
		if !strings.Contains(testDeps.Stdout.String(), "Applied rustfmt formatting") {
			t.Errorf("Expected formatter confirmation, got %q", testDeps.Stdout.String())
		}
	})

	t.Run("formatter only for Rust files", func(t *testing.T) {
		for _, path := range []string{"index.js", "app.ts", "script.py", "data.json", "Cargo.toml", "README.md", "Makefile"} {
			testDeps := createTestDependencies()
			runner := NewRunner(nil, gnu(), testDeps.Dependencies)

			runner.cleanupFile(context.Background(), path)

			if calls := testDeps.MockRunner.callsTo("rustfmt"); len(calls) != 0 {
				t.Errorf("%s: expected no formatter call, got %v", path, calls)
			}
		}
	})

	t.Run("missing formatter is skipped silently", func(t *testing.T) {
		testDeps := createTestDependencies()
		testDeps.MockRunner.lookPathFunc = func(string) (string, error) { return "", errMockNotFound }
		runner := NewRunner(nil, gnu(), testDeps.Dependencies)

		runner.cleanupFile(context.Background(), "main.rs")

		if len(testDeps.MockRunner.callsTo("rustfmt")) != 0 {
			t.Error("Expected rustfmt not to be run")
		}
		if testDeps.Stderr.Len() != 0 {
			t.Errorf("Expected no diagnostic, got %q", testDeps.Stderr.String())
		}
	})

	t.Run("failing formatter is reported", func(t *testing.T) {
		testDeps := createTestDependencies()
		testDeps.MockRunner.runFunc = failingRun("rustfmt", "main.rs", "error: expected one of `;`")
		runner := NewRunner(nil, gnu(), testDeps.Dependencies)

		runner.cleanupFile(context.Background(), "main.rs")

		if !strings.Contains(testDeps.Stderr.String(), "rustfmt failed: error: expected one of `;`") {
			t.Errorf("Expected formatter diagnostic, got %q", testDeps.Stderr.String())
		}
		if strings.Contains(testDeps.Stdout.String(), "Applied rustfmt formatting") {
			t.Error("Expected no formatter confirmation on failure")
		}
	})

	t.Run("JSON files get a notice only", func(t *testing.T) {
		testDeps := createTestDependencies()
		runner := NewRunner(nil, gnu(), testDeps.Dependencies)

		runner.cleanupFile(context.Background(), "data.json")

		if !strings.Contains(testDeps.Stdout.String(), "JSON file detected") {
			t.Errorf("Expected JSON notice, got %q", testDeps.Stdout.String())
		}
		if calls := testDeps.MockRunner.getCalls(); len(calls) != 1 {
			t.Errorf("Expected only the sed call, got %v", calls)
		}
	})

	t.Run("custom commands", func(t *testing.T) {
		testDeps := createTestDependencies()
		opts := &Options{StripCommand: "gsed", RustFormatter: "/opt/bin/rustfmt"}
		runner := NewRunner(nil, opts, testDeps.Dependencies)

		runner.cleanupFile(context.Background(), "lib.rs")

		calls := testDeps.MockRunner.callsTo("gsed")
		if len(calls) != 1 {
			t.Fatalf("Expected configured strip command, got %v", calls)
		}
		if got := calls[0].String(); got != "gsed -i s/[[:blank:]]*$// lib.rs" {
			t.Errorf("Expected GNU invocation for gsed, got %q", got)
		}
		if len(testDeps.MockRunner.callsTo("/opt/bin/rustfmt")) != 1 {
			t.Error("Expected configured formatter")
		}
	})
}

func TestBuildPrompt(t *testing.T) {
	got := BuildPrompt("Rust", "edited 3 lines", "foo.rs")
	want := "Analyze this Rust file change for code quality and suggest improvements:\n\nTool Output: edited 3 lines\nFile: foo.rs"
	if got != want {
		t.Errorf("BuildPrompt() = %q, want %q", got, want)
	}
}
