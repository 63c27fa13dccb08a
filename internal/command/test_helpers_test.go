package command

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/poruru/rfnoc-inst/internal/infra/build"
	"github.com/poruru/rfnoc-inst/internal/infra/interaction"
)

const testSrcs = `RFNOC_SRCS = \
noc_shell.v \

RFNOC_OOT_SRCS = \

`

type fakeBuilder struct {
	requests []build.BuildRequest
	err      error
}

func (f *fakeBuilder) Build(_ context.Context, req build.BuildRequest) error {
	f.requests = append(f.requests, req)
	return f.err
}

// recordingRunner counts make invocations without running anything.
type recordingRunner struct {
	calls int
	dirs  []string
}

func (r *recordingRunner) Run(_ context.Context, dir, _ string, _ ...string) error {
	r.calls++
	r.dirs = append(r.dirs, dir)
	return nil
}

type fakePrompter struct {
	selectValue   string
	confirm       bool
	selectTitles  []string
	selectOptions []interaction.SelectOption
	confirmCalls  int
}

func (f *fakePrompter) SelectValue(title string, options []interaction.SelectOption) (string, error) {
	f.selectTitles = append(f.selectTitles, title)
	f.selectOptions = append([]interaction.SelectOption{}, options...)
	return f.selectValue, nil
}

func (f *fakePrompter) Confirm(string) (bool, error) {
	f.confirmCalls++
	return f.confirm, nil
}

type exitCodeError struct{ code int }

func (e exitCodeError) Error() string { return fmt.Sprintf("exit status %d", e.code) }

func (e exitCodeError) ExitCode() int { return e.code }

// isolateEnv clears variables that would steer resolution away from the test tree.
func isolateEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		"ENV_PREFIX",
		"RFNOC_FPGA_ROOT",
		"RFNOC_DEVICE",
		"RFNOC_DEVICES_FILE",
		"RFNOC_NO_EMOJI",
	} {
		t.Setenv(key, "")
	}
}

// makeFPGATree creates <root>/top/{x300,e300}/Makefile.srcs and <root>/tools.
func makeFPGATree(t *testing.T) string {
	t.Helper()
	root := t.TempDir()
	for _, dir := range []string{"x300", "e300"} {
		writeTestFile(t, filepath.Join(root, "top", dir, "Makefile.srcs"), testSrcs)
	}
	if err := os.MkdirAll(filepath.Join(root, "tools"), 0o755); err != nil {
		t.Fatalf("mkdir tools: %v", err)
	}
	return root
}

// makeIncludeDir creates an OOT directory with one Verilog source and its list.
func makeIncludeDir(t *testing.T) string {
	t.Helper()
	dir := filepath.Join(t.TempDir(), "oot")
	writeTestFile(t, filepath.Join(dir, "noc_block_foo.v"), "module noc_block_foo();\nendmodule\n")
	writeTestFile(t, filepath.Join(dir, "Makefile.srcs"), "$(addprefix "+dir+", \\\nnoc_block_foo.v \\\n)\n")
	return dir
}

func writeTestFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir %s: %v", path, err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
}

func readTestFile(t *testing.T, path string) string {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read %s: %v", path, err)
	}
	return string(data)
}

func stubTerminal(t *testing.T, terminal bool) {
	t.Helper()
	orig := interaction.IsTerminal
	t.Cleanup(func() { interaction.IsTerminal = orig })
	interaction.IsTerminal = func(*os.File) bool { return terminal }
}

func runCLI(t *testing.T, args []string, deps Dependencies) (int, string) {
	t.Helper()
	var out bytes.Buffer
	deps.Out = &out
	deps.ErrOut = &out
	if deps.Getwd == nil {
		cwd := t.TempDir()
		deps.Getwd = func() (string, error) { return cwd, nil }
	}
	code := Run(args, deps)
	return code, out.String()
}

func assertContains(t *testing.T, output string, wants ...string) {
	t.Helper()
	for _, want := range wants {
		if !strings.Contains(output, want) {
			t.Fatalf("expected output to contain %q, got:\n%s", want, output)
		}
	}
}
