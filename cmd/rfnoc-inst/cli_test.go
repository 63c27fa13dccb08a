// Where: rfnoc-inst/cmd/rfnoc-inst/cli_test.go
// What: Tests for CLI dependency wiring.
// Why: Ensure buildDependencies wires real implementations.
package main

import (
	"bytes"
	"context"
	"testing"

	"github.com/poruru/rfnoc-inst/internal/infra/build"
	"github.com/poruru/rfnoc-inst/internal/infra/interaction"
)

func TestBuildDependencies(t *testing.T) {
	origGetwd := getwd
	origStdout := stdout
	t.Cleanup(func() {
		getwd = origGetwd
		stdout = origStdout
	})

	getwd = func() (string, error) {
		return "/fpga/top/x300", nil
	}
	var out bytes.Buffer
	stdout = &out

	deps := buildDependencies(context.Background())
	if deps.Out != &out {
		t.Fatalf("expected stdout writer to be wired")
	}
	wd, err := deps.Getwd()
	if err != nil || wd != "/fpga/top/x300" {
		t.Fatalf("unexpected getwd: %q, %v", wd, err)
	}
	if _, ok := deps.Prompter.(interaction.HuhPrompter); !ok {
		t.Fatalf("expected huh prompter, got %T", deps.Prompter)
	}
	builder, ok := deps.Builder.(build.Builder)
	if !ok {
		t.Fatalf("expected build.Builder, got %T", deps.Builder)
	}
	runner, ok := builder.Runner.(build.ExecRunner)
	if !ok || runner.Stdout != &out {
		t.Fatalf("expected exec runner streaming to stdout, got %#v", builder.Runner)
	}
	if deps.Context == nil {
		t.Fatalf("expected context")
	}
}
