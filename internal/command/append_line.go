// Where: rfnoc-inst/internal/command/append_line.go
// What: append-line command over srclist.AppendLineSequence.
// Why: Patch Makefile-style lists from scripts without an editor.
package command

import (
	"fmt"

	"github.com/poruru/rfnoc-inst/internal/infra/srclist"
)

// AppendLineCmd defines the append-line command arguments.
type AppendLineCmd struct {
	File    string `arg:"" help:"File to patch (created when missing)"`
	Pattern string `arg:"" help:"Regular expression locating the anchor line"`
	Line    string `arg:"" help:"Line to insert after the last anchor line"`
}

func runAppendLine(cli CLI, deps Dependencies) int {
	cmd := cli.AppendLine
	changed, err := srclist.AppendLineSequence(cmd.File, cmd.Pattern, cmd.Line)
	if err != nil {
		return exitWithError(deps.Out, err)
	}
	if !changed {
		newUI(deps.Out).Info(fmt.Sprintf("%s already contains the line", cmd.File))
		return 0
	}
	newUI(deps.Out).Success(fmt.Sprintf("Updated %s", cmd.File))
	return 0
}
