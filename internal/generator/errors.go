// Where: rfnoc-inst/internal/generator/errors.go
// What: Validation errors for block lists.
package generator

import "errors"

var (
	ErrNoBlocks      = errors.New("no blocks specified")
	ErrTooManyBlocks = errors.New("too many blocks")
)
