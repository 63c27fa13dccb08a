// Package envutil provides helper functions for environment variable handling.
package envutil

import (
	"os"
	"strings"

	"github.com/poruru/rfnoc-inst/internal/meta"
)

// HostEnvKey constructs a host-level environment variable name
// by combining ENV_PREFIX (default meta.EnvPrefix) with the given suffix.
// Example: HostEnvKey("FPGA_ROOT") returns "RFNOC_FPGA_ROOT".
func HostEnvKey(suffix string) string {
	prefix := strings.TrimSpace(os.Getenv("ENV_PREFIX"))
	if prefix == "" {
		prefix = meta.EnvPrefix
	}
	return prefix + "_" + suffix
}

// GetHostEnv retrieves a trimmed host-level environment variable.
// Example: GetHostEnv("DEVICE") returns the value of RFNOC_DEVICE.
func GetHostEnv(suffix string) string {
	return strings.TrimSpace(os.Getenv(HostEnvKey(suffix)))
}
