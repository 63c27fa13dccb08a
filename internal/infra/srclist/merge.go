// Where: rfnoc-inst/internal/infra/srclist/merge.go
// What: Merge out-of-tree source lists into a device Makefile.srcs.
// Why: Re-running the tool must not duplicate entries in the build tree.
package srclist

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/poruru/rfnoc-inst/internal/infra/fileops"
	"github.com/poruru/rfnoc-inst/internal/meta"
)

// MergeResult reports what a merge did to the destination file.
type MergeResult struct {
	// Inserted holds the inserted lines, newline-terminated as in the source list.
	Inserted []string
	Changed  bool
}

// OOTAnchor is the line after which new out-of-tree lists are inserted.
func OOTAnchor() string {
	return meta.OOTSrcsVar + " = \\\n"
}

// PrefixLine is the line an out-of-tree list for includeDir starts with
// once it has been merged.
func PrefixLine(includeDir string) string {
	return "$(addprefix " + includeDir + ", \\\n"
}

// CheckIncludeDir reports whether includeDir holds at least one *.v file.
func CheckIncludeDir(includeDir string) ([]string, error) {
	if !fileops.DirExists(includeDir) {
		return nil, fmt.Errorf("%w: %s", ErrIncludeDirMissing, includeDir)
	}
	files, err := fileops.GlobFiles(includeDir, "*.v")
	if err != nil {
		return nil, fmt.Errorf("glob verilog sources: %w", err)
	}
	if len(files) == 0 {
		return nil, fmt.Errorf("%w: %s", ErrNoVerilogSources, includeDir)
	}
	return files, nil
}

// MergeInclude merges <includeDir>/Makefile.srcs into destFile.
// A missing anchor is returned as ErrAnchorNotFound and destFile is left untouched.
func MergeInclude(destFile, includeDir string) (MergeResult, error) {
	oot, err := fileops.ReadFile(filepath.Join(includeDir, meta.SrcsFile))
	if err != nil {
		return MergeResult{}, fmt.Errorf("read include source list: %w", err)
	}
	dest, err := fileops.ReadFile(destFile)
	if err != nil {
		return MergeResult{}, fmt.Errorf("read destination source list: %w", err)
	}

	merged, inserted, err := MergeContent(dest, oot, includeDir)
	if err != nil {
		return MergeResult{}, fmt.Errorf("%s: %w", destFile, err)
	}
	if len(inserted) == 0 {
		return MergeResult{}, nil
	}
	if err := fileops.WriteFile(destFile, merged); err != nil {
		return MergeResult{}, fmt.Errorf("write destination source list: %w", err)
	}
	return MergeResult{Inserted: inserted, Changed: true}, nil
}

// MergeContent is the pure form of MergeInclude.
//
// When dest already has the $(addprefix <includeDir>, \ line, only oot lines
// missing from dest are inserted after its last occurrence. Otherwise the
// whole oot list goes after the last RFNOC_OOT_SRCS anchor, unless dest
// already contains it verbatim.
func MergeContent(dest, oot, includeDir string) (string, []string, error) {
	if oot == "" {
		return dest, nil, nil
	}

	if prefix := PrefixLine(includeDir); strings.Contains(dest, prefix) {
		missing := MissingLines(SplitLines(oot), SplitLines(dest))
		if len(missing) == 0 {
			return dest, nil, nil
		}
		return insertAfterLast(dest, prefix, strings.Join(missing, "")), missing, nil
	}

	if strings.Contains(dest, oot) {
		return dest, nil, nil
	}

	anchor := OOTAnchor()
	if !strings.Contains(dest, anchor) {
		return dest, nil, fmt.Errorf("%w: %q", ErrAnchorNotFound, anchor)
	}
	return insertAfterLast(dest, anchor, oot), SplitLines(oot), nil
}

// MissingLines returns the lines of src that do not appear anywhere in dest.
func MissingLines(src, dest []string) []string {
	present := make(map[string]struct{}, len(dest))
	for _, line := range dest {
		present[line] = struct{}{}
	}
	var missing []string
	for _, line := range src {
		if _, ok := present[line]; !ok {
			missing = append(missing, line)
		}
	}
	return missing
}

// SplitLines splits content into lines, keeping line terminators.
func SplitLines(content string) []string {
	if content == "" {
		return nil
	}
	lines := strings.SplitAfter(content, "\n")
	if lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	return lines
}

func insertAfterLast(content, marker, insert string) string {
	idx := strings.LastIndex(content, marker) + len(marker)
	return content[:idx] + insert + content[idx:]
}
