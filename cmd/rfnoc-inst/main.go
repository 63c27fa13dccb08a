// Where: rfnoc-inst/cmd/rfnoc-inst/main.go
// What: CLI entrypoint.
// Why: Execute rfnoc-inst commands with configured dependencies.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/poruru/rfnoc-inst/internal/command"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	code := command.Run(os.Args[1:], buildDependencies(ctx))
	stop()
	os.Exit(code)
}
