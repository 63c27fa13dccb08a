// Where: rfnoc-inst/internal/infra/config/root.go
// What: FPGA tree root discovery.
// Why: Locate top/<device> from a flag, the environment, or the working directory.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/poruru/rfnoc-inst/internal/constants"
	"github.com/poruru/rfnoc-inst/internal/infra/envutil"
	"github.com/poruru/rfnoc-inst/internal/meta"
)

var (
	errFPGARootNotFound   = errors.New("FPGA tree root not found")
	errFPGARootNotFoundAt = errors.New("not an FPGA tree root")
)

// ResolveFPGARoot determines the FPGA tree root (the directory holding top/ and tools/).
// Priority order.
// 1. explicit path (the --fpga-root flag), validated as root or searched upward.
// 2. <PREFIX>_FPGA_ROOT environment variable, validated as root or searched upward.
// 3. Upward search from startDir.
func ResolveFPGARoot(explicit, startDir string) (string, error) {
	if path := strings.TrimSpace(explicit); path != "" {
		if root, ok := findFPGARoot(path); ok {
			return root, nil
		}
		return "", fmt.Errorf("%w: %s", errFPGARootNotFoundAt, path)
	}

	if env := envutil.GetHostEnv(constants.HostSuffixFPGARoot); env != "" {
		if root, ok := findFPGARoot(env); ok {
			return root, nil
		}
		return "", fmt.Errorf("%w: %s=%s", errFPGARootNotFoundAt, envutil.HostEnvKey(constants.HostSuffixFPGARoot), env)
	}

	if startDir != "" {
		if root, ok := findFPGARoot(startDir); ok {
			return root, nil
		}
	}

	return "", fmt.Errorf(
		"%w: run from the FPGA tree, pass --fpga-root, or set %s",
		errFPGARootNotFound,
		envutil.HostEnvKey(constants.HostSuffixFPGARoot),
	)
}

// findFPGARoot searches upward from the given path for a directory
// containing both top/ and tools/.
func findFPGARoot(path string) (string, bool) {
	dir, err := filepath.Abs(path)
	if err != nil {
		return "", false
	}

	markers := []string{meta.TopDir, "tools"}

	for {
		if hasDirs(dir, markers) {
			return dir, true
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}
	return "", false
}

func hasDirs(dir string, names []string) bool {
	for _, name := range names {
		info, err := os.Stat(filepath.Join(dir, name))
		if err != nil || !info.IsDir() {
			return false
		}
	}
	return true
}
