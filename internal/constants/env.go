// Where: rfnoc-inst/internal/constants/env.go
// What: Environment variable naming constants.
// Why: Centralize environment variable names to avoid typos and inconsistencies.
package constants

// Suffixes joined to the host prefix by envutil.HostEnvKey (RFNOC_FPGA_ROOT, ...).
const (
	HostSuffixFPGARoot    = "FPGA_ROOT"
	HostSuffixDevicesFile = "DEVICES_FILE"
	HostSuffixDevice      = "DEVICE"
	HostSuffixNoEmoji     = "NO_EMOJI"
)
