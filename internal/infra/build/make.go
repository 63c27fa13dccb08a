// Where: rfnoc-inst/internal/infra/build/make.go
// What: FPGA image build through the vendor environment script and make.
// Why: Isolate the shell invocation from command handling.
package build

import (
	"context"
	"fmt"
	"strings"

	"github.com/poruru/rfnoc-inst/internal/infra/fileops"
	"github.com/poruru/rfnoc-inst/internal/meta"
)

const defaultShell = "bash"

// Builder runs make for a device build directory.
type Builder struct {
	Runner CommandRunner
	// Shell runs the command line; defaults to bash since setupenv.sh is sourced.
	Shell string
}

// NewBuilder returns a Builder backed by runner.
func NewBuilder(runner CommandRunner) Builder {
	return Builder{Runner: runner, Shell: defaultShell}
}

// MakeCommand returns the shell command line run inside the build directory.
func MakeCommand(target string, gui bool) string {
	cmd := fmt.Sprintf("source ./%s && make %s", meta.SetupEnvScript, target)
	if gui {
		cmd += " GUI=1"
	}
	return cmd
}

// Build runs the make command in req.BuildDir. The working directory of the
// calling process is not changed. Use ExitCode on the returned error to get
// the build's exit status.
func (b Builder) Build(ctx context.Context, req BuildRequest) error {
	if b.Runner == nil {
		return errCommandRunnerNil
	}
	if strings.TrimSpace(req.Target) == "" {
		return errTargetRequired
	}
	if !fileops.DirExists(req.BuildDir) {
		return fmt.Errorf("%w: %s", ErrBuildDirMissing, req.BuildDir)
	}

	shell := b.Shell
	if shell == "" {
		shell = defaultShell
	}
	if err := b.Runner.Run(ctx, req.BuildDir, shell, "-c", MakeCommand(req.Target, req.GUI)); err != nil {
		return fmt.Errorf("%w: %w", ErrBuildFailed, err)
	}
	return nil
}
