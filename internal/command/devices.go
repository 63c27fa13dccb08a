// Where: rfnoc-inst/internal/command/devices.go
// What: Devices command: list or export the device table.
// Why: Show which devices, build directories and targets are known.
package command

import (
	"fmt"

	"github.com/poruru/rfnoc-inst/internal/infra/config"
	"github.com/poruru/rfnoc-inst/internal/infra/ui"
)

// DevicesCmd defines the devices command flags.
type DevicesCmd struct {
	Export string `name:"export" help:"Write the built-in device table to this YAML file"`
}

func runDevices(cli CLI, deps Dependencies) int {
	out := deps.Out

	if path := cli.Devices.Export; path != "" {
		file, err := config.DefaultDeviceTableFile()
		if err != nil {
			return exitWithError(out, err)
		}
		if err := config.SaveDeviceTable(path, file); err != nil {
			return exitWithError(out, err)
		}
		newUI(out).Success(fmt.Sprintf("Device table written to %s", path))
		return 0
	}

	source := devicesFilePath(cli)
	table, err := config.LoadDeviceTable(source)
	if err != nil {
		return exitWithError(out, err)
	}
	if source == "" {
		source = "built-in"
	}

	rows := make([]ui.KeyValue, 0, len(table.Names()))
	for _, dev := range table.Devices() {
		target := dev.DefaultTarget
		if target == "" {
			target = "(none, pass --target)"
		}
		value := fmt.Sprintf("top/%s  %s", dev.BuildDir, target)
		if dev.MaxBlocks > 0 {
			value += fmt.Sprintf("  max %d blocks", dev.MaxBlocks)
		}
		rows = append(rows, ui.KeyValue{Key: dev.Name, Value: value})
	}
	newUI(out).Block("📟", fmt.Sprintf("Devices (%s)", source), rows)
	return 0
}
