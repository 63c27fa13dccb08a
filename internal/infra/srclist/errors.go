// Where: rfnoc-inst/internal/infra/srclist/errors.go
// What: Shared error definitions for source-list patching.
package srclist

import "errors"

var (
	ErrAnchorNotFound    = errors.New("anchor pattern not found")
	ErrNoVerilogSources  = errors.New("no verilog files found in the given directory")
	ErrIncludeDirMissing = errors.New("include directory not found")
	errLinePatternEmpty  = errors.New("line pattern is required")
)
