// Where: rfnoc-inst/cmd/rfnoc-inst/cli.go
// What: CLI dependency wiring helpers.
// Why: Centralize construction for testability.
package main

import (
	"context"
	"io"
	"os"

	"github.com/poruru/rfnoc-inst/internal/command"
	"github.com/poruru/rfnoc-inst/internal/infra/build"
	"github.com/poruru/rfnoc-inst/internal/infra/interaction"
)

var (
	getwd            = os.Getwd
	stdout io.Writer = os.Stdout
	stderr io.Writer = os.Stderr
)

// buildDependencies constructs the runtime dependencies of the CLI.
// The build streams make output to the process stdout and stderr.
func buildDependencies(ctx context.Context) command.Dependencies {
	return command.Dependencies{
		Out:      stdout,
		ErrOut:   stderr,
		In:       os.Stdin,
		Prompter: interaction.HuhPrompter{},
		Builder:  build.NewBuilder(build.ExecRunner{Stdout: stdout, Stderr: stderr}),
		Getwd:    getwd,
		Context:  ctx,
	}
}
