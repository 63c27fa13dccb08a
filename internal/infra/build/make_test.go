// Where: rfnoc-inst/internal/infra/build/make_test.go
// What: Tests for the make invocation.
// Why: The command line and exit status must match what the FPGA tree expects.
package build

import (
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

type exitErr struct{ code int }

func (e exitErr) Error() string { return "exit status" }
func (e exitErr) ExitCode() int { return e.code }

func TestMakeCommand(t *testing.T) {
	if got := MakeCommand("X310_RFNOC_HG", false); got != "source ./setupenv.sh && make X310_RFNOC_HG" {
		t.Fatalf("MakeCommand() = %q", got)
	}
	if got := MakeCommand("E310_RFNOC_HLS", true); got != "source ./setupenv.sh && make E310_RFNOC_HLS GUI=1" {
		t.Fatalf("MakeCommand() with gui = %q", got)
	}
}

func TestBuildRunsInBuildDir(t *testing.T) {
	buildDir := t.TempDir()
	runner := &fakeRunner{}
	before, _ := os.Getwd()

	err := NewBuilder(runner).Build(context.Background(), BuildRequest{BuildDir: buildDir, Target: "X300_RFNOC_HG", GUI: true})
	if err != nil {
		t.Fatalf("build: %v", err)
	}
	if runner.dir != buildDir || runner.name != "bash" {
		t.Fatalf("unexpected invocation: %#v", runner)
	}
	wantArgs := []string{"-c", "source ./setupenv.sh && make X300_RFNOC_HG GUI=1"}
	if !reflect.DeepEqual(runner.args, wantArgs) {
		t.Fatalf("args = %q, want %q", runner.args, wantArgs)
	}
	if after, _ := os.Getwd(); after != before {
		t.Fatalf("working directory changed from %s to %s", before, after)
	}
}

func TestBuildMissingDir(t *testing.T) {
	runner := &fakeRunner{}
	err := NewBuilder(runner).Build(context.Background(), BuildRequest{BuildDir: filepath.Join(t.TempDir(), "top", "x300"), Target: "X"})
	if !errors.Is(err, ErrBuildDirMissing) {
		t.Fatalf("expected ErrBuildDirMissing, got %v", err)
	}
	if runner.calls != 0 {
		t.Fatalf("runner must not be called")
	}
}

func TestBuildRequiresTargetAndRunner(t *testing.T) {
	if err := NewBuilder(&fakeRunner{}).Build(context.Background(), BuildRequest{BuildDir: t.TempDir()}); !errors.Is(err, errTargetRequired) {
		t.Fatalf("expected errTargetRequired, got %v", err)
	}
	if err := (Builder{}).Build(context.Background(), BuildRequest{BuildDir: t.TempDir(), Target: "X"}); !errors.Is(err, errCommandRunnerNil) {
		t.Fatalf("expected errCommandRunnerNil, got %v", err)
	}
}

func TestBuildPropagatesExitStatus(t *testing.T) {
	runner := &fakeRunner{runErr: exitErr{code: 2}}
	err := NewBuilder(runner).Build(context.Background(), BuildRequest{BuildDir: t.TempDir(), Target: "X"})
	if !errors.Is(err, ErrBuildFailed) {
		t.Fatalf("expected ErrBuildFailed, got %v", err)
	}
	if code := ExitCode(err); code != 2 {
		t.Fatalf("ExitCode() = %d, want 2", code)
	}
}

func TestExitCode(t *testing.T) {
	if ExitCode(nil) != 0 {
		t.Fatalf("nil error must map to 0")
	}
	if ExitCode(errors.New("boom")) != 1 {
		t.Fatalf("plain error must map to 1")
	}
	if ExitCode(exitErr{code: -1}) != 1 {
		t.Fatalf("signal exit must map to 1")
	}
}

func TestExecRunnerExitCode(t *testing.T) {
	if _, err := os.Stat("/bin/sh"); err != nil {
		t.Skip("no /bin/sh")
	}
	err := ExecRunner{Stdout: io.Discard, Stderr: io.Discard}.Run(context.Background(), t.TempDir(), "/bin/sh", "-c", "exit 3")
	if code := ExitCode(err); code != 3 {
		t.Fatalf("ExitCode() = %d, want 3 (err=%v)", code, err)
	}
}
