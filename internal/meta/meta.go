// Where: rfnoc-inst/internal/meta/meta.go
// What: Tool identity and FPGA tree layout constants.
// Why: Keep names shared by the generator, patcher, and build runner in one place.
package meta

const (
	// Tool Identity
	AppName   = "rfnoc-inst"
	EnvPrefix = "RFNOC"

	// FPGA Tree Layout
	TopDir         = "top"
	SrcsFile       = "Makefile.srcs"
	SetupEnvScript = "setupenv.sh"
	InstFilePrefix = "rfnoc_ce_auto_inst_"
	InstFileExt    = ".v"

	// Source List Anchors
	OOTSrcsVar = "RFNOC_OOT_SRCS"
)
