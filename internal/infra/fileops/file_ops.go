// Where: rfnoc-inst/internal/infra/fileops/file_ops.go
// What: Shared filesystem operations for generation and source-list patching.
// Why: Keep behavior consistent and avoid duplicated I/O helper implementations.
package fileops

import (
	"os"
	"path/filepath"
	"sort"
)

func EnsureDir(path string) error {
	return os.MkdirAll(path, 0o755)
}

// WriteFile replaces path with content, creating parent directories.
// Existing files keep their mode.
func WriteFile(path, content string) error {
	if err := EnsureDir(filepath.Dir(path)); err != nil {
		return err
	}
	return os.WriteFile(path, []byte(content), 0o644)
}

// ReadFile returns the file content as a string.
func ReadFile(path string) (string, error) {
	payload, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}
	return string(payload), nil
}

// GlobFiles returns the sorted regular files in dir matching pattern.
func GlobFiles(dir, pattern string) ([]string, error) {
	matches, err := filepath.Glob(filepath.Join(dir, pattern))
	if err != nil {
		return nil, err
	}
	files := matches[:0]
	for _, match := range matches {
		if FileExists(match) {
			files = append(files, match)
		}
	}
	sort.Strings(files)
	return files, nil
}

func FileExists(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return !info.IsDir()
}

func DirExists(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return info.IsDir()
}
