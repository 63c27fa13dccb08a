// Where: rfnoc-inst/internal/infra/build/build_request.go
// What: Build request parameters.
package build

// BuildRequest contains parameters for a build operation.
type BuildRequest struct {
	BuildDir string
	Target   string
	GUI      bool
}
