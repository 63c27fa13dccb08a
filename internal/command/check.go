// Where: rfnoc-inst/internal/command/check.go
// What: Check command: count block instantiations in a generated file.
// Why: Verify a generated or hand-edited file before a long build.
package command

import (
	"errors"
	"fmt"
	"strings"

	"github.com/poruru/rfnoc-inst/internal/hdlscan"
	"github.com/poruru/rfnoc-inst/internal/infra/fileops"
	"github.com/poruru/rfnoc-inst/internal/infra/ui"
)

var (
	errDuplicateInstances = errors.New("duplicate instance names")
	errBlockCountMismatch = errors.New("block count mismatch")
	errSlotsExceeded      = errors.New("more blocks than NUM_CE slots")
)

// CheckCmd defines the check command flags.
type CheckCmd struct {
	File   string `arg:"" help:"Generated instantiation file"`
	Expect int    `name:"expect" default:"-1" help:"Fail unless exactly N named blocks are instantiated"`
}

func runCheck(cli CLI, deps Dependencies) int {
	cmd := cli.Check
	out := deps.Out

	src, err := fileops.ReadFile(cmd.File)
	if err != nil {
		return exitWithError(out, err)
	}
	report, err := hdlscan.Scan(src)
	if err != nil {
		return exitWithError(out, err)
	}

	named := report.Named()
	rows := make([]ui.KeyValue, 0, len(report.Instances)+1)
	rows = append(rows, ui.KeyValue{Key: "NUM_CE", Value: report.NumCE})
	for _, inst := range report.Instances {
		rows = append(rows, ui.KeyValue{
			Key:   "slot " + inst.Slot,
			Value: fmt.Sprintf("%s%s %s (line %d)", hdlscan.BlockPrefix, inst.Block, inst.Name, inst.Line),
		})
	}
	newUI(out).Block("🔎", fmt.Sprintf("%s: %d block(s)", cmd.File, len(named)), rows)

	if dups := report.DuplicateNames(); len(dups) > 0 {
		return exitWithError(out, fmt.Errorf("%w: %s", errDuplicateInstances, strings.Join(dups, ", ")))
	}
	if report.NumCE > 0 && len(named) > report.NumCE {
		return exitWithError(out, fmt.Errorf("%w: %d blocks, NUM_CE = %d", errSlotsExceeded, len(named), report.NumCE))
	}
	if cmd.Expect >= 0 && len(named) != cmd.Expect {
		return exitWithError(out, fmt.Errorf("%w: found %d, expected %d", errBlockCountMismatch, len(named), cmd.Expect))
	}
	newUI(out).Success(fmt.Sprintf("%d block(s) instantiated", len(named)))
	return 0
}
