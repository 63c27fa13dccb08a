// Where: rfnoc-inst/internal/command/output.go
// What: Output helpers for command adapters.
// Why: Centralize UserInterface construction.
package command

import (
	"io"

	"github.com/poruru/rfnoc-inst/internal/infra/ui"
)

func newUI(out io.Writer) ui.UserInterface {
	return ui.NewUI(out)
}
