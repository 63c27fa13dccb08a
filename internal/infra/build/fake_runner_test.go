package build

import (
	"context"
)

type fakeRunner struct {
	dir    string
	name   string
	args   []string
	calls  int
	runErr error
}

func (f *fakeRunner) Run(_ context.Context, dir, name string, args ...string) error {
	f.dir = dir
	f.name = name
	f.args = args
	f.calls++
	return f.runErr
}
