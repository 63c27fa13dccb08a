// Where: rfnoc-inst/internal/command/app.go
// What: CLI entrypoint logic.
// Why: Provide a testable command dispatcher.
package command

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/alecthomas/kong"
	"github.com/joho/godotenv"
	"github.com/poruru/rfnoc-inst/internal/constants"
	"github.com/poruru/rfnoc-inst/internal/infra/build"
	"github.com/poruru/rfnoc-inst/internal/infra/envutil"
	"github.com/poruru/rfnoc-inst/internal/infra/interaction"
	"github.com/poruru/rfnoc-inst/internal/meta"
	"github.com/poruru/rfnoc-inst/internal/version"
)

// Dependencies holds all injected dependencies required for CLI command execution.
type Dependencies struct {
	Out      io.Writer
	ErrOut   io.Writer
	In       *os.File
	Prompter interaction.Prompter
	Builder  Builder
	Getwd    func() (string, error)
	Context  context.Context
}

var errBuilderNotConfigured = errors.New("no builder configured")

// Builder runs the FPGA build for a prepared build directory.
type Builder interface {
	Build(ctx context.Context, req build.BuildRequest) error
}

// CLI defines the command-line interface structure parsed by Kong.
// It contains global flags and all subcommand definitions.
type CLI struct {
	EnvFile     string `name:"env-file" help:"Path to .env file"`
	FPGARoot    string `name:"fpga-root" help:"FPGA tree root (holds top/ and tools/)"`
	DevicesFile string `name:"devices-file" help:"Device table YAML overriding the built-in table"`
	Verbose     bool   `short:"v" help:"Verbose output"`

	Generate   GenerateCmd   `cmd:"" default:"withargs" help:"Generate the CE instantiation file and build the image"`
	Check      CheckCmd      `cmd:"" help:"Count block instantiations in a generated file"`
	Devices    DevicesCmd    `cmd:"" help:"List or export the device table"`
	AppendLine AppendLineCmd `cmd:"" name:"append-line" help:"Insert a line after the last line matching a pattern"`
	Version    VersionCmd    `cmd:"" help:"Show version information"`
}

type VersionCmd struct{}

// Run is the main entry point for CLI command execution.
// It parses the command-line arguments, identifies the requested command,
// and dispatches to the appropriate handler. Returns the process exit code.
func Run(args []string, deps Dependencies) int {
	out := deps.Out
	if out == nil {
		out = os.Stdout
		deps.Out = out
	}
	if deps.ErrOut == nil {
		deps.ErrOut = os.Stderr
	}
	if deps.In == nil {
		deps.In = os.Stdin
	}
	if deps.Prompter == nil {
		deps.Prompter = interaction.HuhPrompter{}
	}
	if deps.Getwd == nil {
		deps.Getwd = os.Getwd
	}
	if deps.Context == nil {
		deps.Context = context.Background()
	}

	cli := CLI{}
	parser, err := kong.New(&cli,
		kong.Name(meta.AppName),
		kong.Description("Generate RFNoC computation engine instantiations and build FPGA images."),
		kong.Writers(out, deps.ErrOut),
	)
	if err != nil {
		return exitWithError(out, err)
	}

	ctx, err := parser.Parse(args)
	if err != nil {
		return handleParseError(err, out)
	}

	loadEnvFile(cli.EnvFile, out)

	command := ctx.Command()
	if exitCode, handled := dispatchCommand(command, cli, deps); handled {
		return exitCode
	}

	newUI(out).Warn("unknown command")
	return 1
}

// loadEnvFile loads --env-file, or .env in the current directory when present.
func loadEnvFile(path string, out io.Writer) {
	ui := newUI(out)
	if path != "" {
		if err := godotenv.Load(path); err != nil {
			ui.Warn(fmt.Sprintf("failed to load env file %s: %v", path, err))
		}
		return
	}
	if _, err := os.Stat(".env"); err == nil {
		if err := godotenv.Load(); err != nil {
			ui.Warn(fmt.Sprintf("failed to load .env: %v", err))
		}
	}
}

type commandHandler func(CLI, Dependencies) int

// dispatchCommand routes on the command word; kong appends positional
// placeholders such as "<blocks>" to the command path.
func dispatchCommand(command string, cli CLI, deps Dependencies) (int, bool) {
	handlers := map[string]commandHandler{
		"generate":    runGenerate,
		"check":       runCheck,
		"devices":     runDevices,
		"append-line": runAppendLine,
		"version":     runVersion,
	}
	fields := strings.Fields(command)
	if len(fields) == 0 {
		return 1, false
	}
	if handler, ok := handlers[fields[0]]; ok {
		return handler(cli, deps), true
	}
	return 1, false
}

// runVersion prints the version information of the CLI.
func runVersion(_ CLI, deps Dependencies) int {
	newUI(deps.Out).Info(fmt.Sprintf("%s %s", meta.AppName, version.GetVersion()))
	return 0
}

// devicesFilePath returns --devices-file, else RFNOC_DEVICES_FILE.
func devicesFilePath(cli CLI) string {
	if path := strings.TrimSpace(cli.DevicesFile); path != "" {
		return path
	}
	return envutil.GetHostEnv(constants.HostSuffixDevicesFile)
}

// handleParseError provides user-friendly error messages for parse failures.
func handleParseError(err error, out io.Writer) int {
	msg := err.Error()
	ui := newUI(out)
	if strings.Contains(msg, "--max-num-blocks") {
		ui.Warn("`-m/--max-num-blocks` expects an integer.")
		ui.Info(fmt.Sprintf("Example: %s -m 8 fir fft", meta.AppName))
		return 1
	}
	if strings.Contains(msg, "expected string value") {
		switch {
		case strings.Contains(msg, "--devices-file"):
			ui.Warn("`--devices-file` expects a value. Provide a YAML file path.")
			ui.Info(fmt.Sprintf("Export the built-in table: %s devices --export devices.yaml", meta.AppName))
			return 1
		case strings.Contains(msg, "--device"):
			ui.Warn("`-d/--device` expects a device name.")
			ui.Info(fmt.Sprintf("Example: %s -d x300 fir fft", meta.AppName))
			ui.Info(fmt.Sprintf("Known devices: %s devices", meta.AppName))
			return 1
		case strings.Contains(msg, "--target"):
			ui.Warn("`-t/--target` expects a build target.")
			ui.Info(fmt.Sprintf("Example: %s -d x310 -t X310_RFNOC_XG fir", meta.AppName))
			return 1
		case strings.Contains(msg, "--env-file"):
			ui.Warn("`--env-file` expects a value. Provide a file path.")
			ui.Info(fmt.Sprintf("Example: %s --env-file .env.lab fir", meta.AppName))
			return 1
		}
	}
	return exitWithError(out, err)
}
