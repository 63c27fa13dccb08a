package command

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/poruru/rfnoc-inst/internal/generator"
)

func writeGenerated(t *testing.T, blocks []string, opts generator.Options) string {
	t.Helper()
	content, err := generator.Render(blocks, opts)
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	path := filepath.Join(t.TempDir(), "ce.v")
	writeTestFile(t, path, content)
	return path
}

func TestCheckCountsBlocks(t *testing.T) {
	isolateEnv(t)
	path := writeGenerated(t, []string{"fir", "fft", "fir"}, generator.Options{MaxBlocks: 6, FillWithFIFOs: true})

	code, out := runCLI(t, []string{"check", path, "--expect", "3"}, Dependencies{})
	if code != 0 {
		t.Fatalf("expected exit 0, got %d:\n%s", code, out)
	}
	assertContains(t, out,
		": 3 block(s)",
		"NUM_CE:",
		"noc_block_fir inst_fir2",
		"slot n:",
		"[ok] 3 block(s) instantiated",
	)
}

func TestCheckExpectMismatch(t *testing.T) {
	isolateEnv(t)
	path := writeGenerated(t, []string{"fir"}, generator.Options{MaxBlocks: 2})

	code, out := runCLI(t, []string{"check", "--expect", "2", path}, Dependencies{})
	if code != 1 {
		t.Fatalf("expected exit 1, got %d", code)
	}
	assertContains(t, out, "✗ block count mismatch: found 1, expected 2")
}

func TestCheckDuplicateNames(t *testing.T) {
	isolateEnv(t)
	path := writeGenerated(t, []string{"fir", "fft"}, generator.Options{MaxBlocks: 2})
	edited := strings.Replace(readTestFile(t, path), "inst_fft", "inst_fir", 1)
	writeTestFile(t, path, edited)

	code, out := runCLI(t, []string{"check", path}, Dependencies{})
	if code != 1 {
		t.Fatalf("expected exit 1, got %d", code)
	}
	assertContains(t, out, "duplicate instance names: inst_fir")
}

func TestCheckMissingFile(t *testing.T) {
	isolateEnv(t)
	code, _ := runCLI(t, []string{"check", filepath.Join(t.TempDir(), "missing.v")}, Dependencies{})
	if code != 1 {
		t.Fatalf("expected exit 1, got %d", code)
	}
}
