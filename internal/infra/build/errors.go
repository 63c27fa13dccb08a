// Where: rfnoc-inst/internal/infra/build/errors.go
// What: Shared error definitions for build infra.
// Why: Ensure consistent error wrapping without dynamic error creation.
package build

import "errors"

var (
	ErrBuildDirMissing  = errors.New("build directory not found")
	ErrBuildFailed      = errors.New("build failed")
	errCommandRunnerNil = errors.New("command runner is nil")
	errTargetRequired   = errors.New("build target is required")
)
