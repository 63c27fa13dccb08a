// Where: rfnoc-inst/internal/command/generate.go
// What: Generate command: render, write, merge OOT sources, build.
// Why: Drive the whole instantiation flow from one handler.
package command

import (
	"errors"
	"fmt"
	"strings"

	"github.com/poruru/rfnoc-inst/internal/constants"
	"github.com/poruru/rfnoc-inst/internal/domain/device"
	"github.com/poruru/rfnoc-inst/internal/generator"
	"github.com/poruru/rfnoc-inst/internal/infra/build"
	"github.com/poruru/rfnoc-inst/internal/infra/config"
	"github.com/poruru/rfnoc-inst/internal/infra/envutil"
	"github.com/poruru/rfnoc-inst/internal/infra/fileops"
	"github.com/poruru/rfnoc-inst/internal/infra/interaction"
	"github.com/poruru/rfnoc-inst/internal/infra/srclist"
	"github.com/poruru/rfnoc-inst/internal/infra/ui"
)

// GenerateCmd defines the generate command flags.
type GenerateCmd struct {
	IncludeDirs   []string `short:"I" name:"include-dir" sep:"," help:"OOT directory with *.v sources and a Makefile.srcs (repeatable or comma-separated)"`
	MaxNumBlocks  int      `short:"m" name:"max-num-blocks" default:"10" help:"Maximum number of blocks"`
	FillWithFIFOs bool     `name:"fill-with-fifos" help:"Fill remaining crossbar slots with loopback FIFOs"`
	Outfile       string   `short:"o" name:"outfile" help:"Output file; the image is not built when set"`
	Device        string   `short:"d" help:"Target device (x300, x310, e300, e310; default x310)"`
	Target        string   `short:"t" help:"Build target (default: the device's default target)"`
	GUI           bool     `short:"g" name:"gui" aliases:"GUI" help:"Open the Vivado GUI during the build"`
	Interactive   bool     `name:"interactive" help:"Select the device interactively"`
	DryRun        bool     `name:"dry-run" help:"Print the build command instead of running it"`
	Blocks        []string `arg:"" optional:"" help:"Block names to instantiate"`
}

func runGenerate(cli CLI, deps Dependencies) int {
	cmd := cli.Generate
	out := deps.Out
	ui := newUI(out)

	table, err := config.LoadDeviceTable(devicesFilePath(cli))
	if err != nil {
		return exitWithError(out, err)
	}
	deviceName, err := resolveDeviceName(cmd, table, deps, ui)
	if err != nil {
		return exitWithError(out, err)
	}
	dev, err := table.Lookup(deviceName)
	if err != nil {
		return exitWithError(out, err)
	}
	if dev.MaxBlocks > 0 && cmd.MaxNumBlocks > dev.MaxBlocks {
		ui.Warn(fmt.Sprintf("%s crossbar has %d slots; --max-num-blocks %d may not fit", dev.Name, dev.MaxBlocks, cmd.MaxNumBlocks))
	}

	content, err := generator.Render(cmd.Blocks, generator.Options{
		MaxBlocks:     cmd.MaxNumBlocks,
		FillWithFIFOs: cmd.FillWithFIFOs,
	})
	if err != nil {
		return exitWithError(out, err)
	}
	ui.Info("--Using the following blocks to generate image:")
	for _, block := range cmd.Blocks {
		ui.Info("    * " + block)
	}

	building := strings.TrimSpace(cmd.Outfile) == ""
	var target string
	if building {
		if target, err = dev.Target(cmd.Target); err != nil {
			return exitWithError(out, err)
		}
	}

	var root string
	if building || len(cmd.IncludeDirs) > 0 {
		if root, err = resolveRoot(cli, deps); err != nil {
			return exitWithError(out, err)
		}
	}

	for _, dir := range cmd.IncludeDirs {
		if _, err := srclist.CheckIncludeDir(dir); err != nil {
			return exitWithError(out, err)
		}
		ui.Info("Verilog sources found!")
	}

	// WriteFile creates missing parents, so the build dir must be checked first.
	if building {
		if buildDir := dev.BuildPath(root); !fileops.DirExists(buildDir) {
			return exitWithError(out, fmt.Errorf("%w: %s", build.ErrBuildDirMissing, buildDir))
		}
	}

	path := cmd.Outfile
	if building {
		path = dev.InstFilePath(root, deviceName)
	}
	if cli.Verbose {
		ui.Block("🔧", "Configuration", configRows(dev, root, target, path, cmd))
	}

	ui.Info(fmt.Sprintf("Adding CE instantiation file for '%s'", deviceName))
	if err := fileops.WriteFile(path, content); err != nil {
		return exitWithError(out, err)
	}

	for _, dir := range cmd.IncludeDirs {
		mergeIncludeDir(ui, dev.SrcsFilePath(root), dir)
	}

	if !building {
		ui.Info(fmt.Sprintf("Instantiation file generated at %s", cmd.Outfile))
		return 0
	}
	return runBuild(deps, ui, dev.BuildPath(root), target, cmd)
}

// resolveDeviceName picks the device from the prompt, --device, RFNOC_DEVICE
// or the default, in that order.
func resolveDeviceName(cmd GenerateCmd, table device.Table, deps Dependencies, ui ui.UserInterface) (string, error) {
	if cmd.Interactive {
		if interaction.IsTerminal(deps.In) {
			selected, err := deps.Prompter.SelectValue("Select the target device", deviceOptions(table))
			if err != nil {
				return "", err
			}
			if selected != "" {
				return selected, nil
			}
		} else {
			ui.Warn("--interactive needs a terminal; using --device")
		}
	}
	if name := strings.TrimSpace(cmd.Device); name != "" {
		return name, nil
	}
	if name := envutil.GetHostEnv(constants.HostSuffixDevice); name != "" {
		return name, nil
	}
	return device.DefaultDevice, nil
}

func deviceOptions(table device.Table) []interaction.SelectOption {
	devices := table.Devices()
	options := make([]interaction.SelectOption, 0, len(devices))
	for _, dev := range devices {
		label := dev.Name
		if dev.DefaultTarget != "" {
			label = fmt.Sprintf("%s (%s)", dev.Name, dev.DefaultTarget)
		}
		options = append(options, interaction.SelectOption{Label: label, Value: dev.Name})
	}
	return options
}

func resolveRoot(cli CLI, deps Dependencies) (string, error) {
	wd, err := deps.Getwd()
	if err != nil {
		return "", fmt.Errorf("get working directory: %w", err)
	}
	return config.ResolveFPGARoot(cli.FPGARoot, wd)
}

// mergeIncludeDir merges one OOT source list and reports the outcome.
// Failures leave the destination untouched and do not stop the flow.
func mergeIncludeDir(ui ui.UserInterface, destFile, includeDir string) {
	result, err := srclist.MergeInclude(destFile, includeDir)
	switch {
	case errors.Is(err, srclist.ErrAnchorNotFound):
		ui.Warn(fmt.Sprintf("Pattern %q not found. Could not write %s", strings.TrimSpace(srclist.OOTAnchor()), destFile))
	case err != nil:
		ui.Warn(err.Error())
	case result.Changed:
		ui.Info(fmt.Sprintf("Added %d source line(s) from %s to %s", len(result.Inserted), includeDir, destFile))
	default:
		ui.Info(fmt.Sprintf("Sources from %s already listed in %s", includeDir, destFile))
	}
}

func runBuild(deps Dependencies, ui ui.UserInterface, buildDir, target string, cmd GenerateCmd) int {
	if cmd.DryRun {
		ui.Info(fmt.Sprintf("Would run in %s:", buildDir))
		ui.Info("  " + build.MakeCommand(target, cmd.GUI))
		return 0
	}
	if cmd.Interactive && interaction.IsTerminal(deps.In) {
		ok, err := deps.Prompter.Confirm(fmt.Sprintf("Build %s now?", target))
		if err != nil {
			return exitWithError(deps.Out, err)
		}
		if !ok {
			ui.Info("Build skipped.")
			return 0
		}
	}

	if deps.Builder == nil {
		return exitWithError(deps.Out, errBuilderNotConfigured)
	}
	ui.Info(fmt.Sprintf("Building %s in %s", target, buildDir))
	err := deps.Builder.Build(deps.Context, build.BuildRequest{
		BuildDir: buildDir,
		Target:   target,
		GUI:      cmd.GUI,
	})
	if err != nil {
		code := exitWithError(deps.Out, err)
		if errors.Is(err, build.ErrBuildFailed) {
			code = build.ExitCode(err)
		}
		return code
	}
	ui.Success(fmt.Sprintf("Build %s finished", target))
	return 0
}

func configRows(dev device.Device, root, target, path string, cmd GenerateCmd) []ui.KeyValue {
	rows := []ui.KeyValue{
		{Key: "Device", Value: dev.Name},
		{Key: "Max blocks", Value: cmd.MaxNumBlocks},
		{Key: "Fill with FIFOs", Value: cmd.FillWithFIFOs},
		{Key: "Output", Value: path},
	}
	if root != "" {
		rows = append(rows, ui.KeyValue{Key: "FPGA root", Value: root})
	}
	if target != "" {
		rows = append(rows, ui.KeyValue{Key: "Target", Value: target})
	}
	if len(cmd.IncludeDirs) > 0 {
		rows = append(rows, ui.KeyValue{Key: "Include dirs", Value: strings.Join(cmd.IncludeDirs, ", ")})
	}
	return rows
}
