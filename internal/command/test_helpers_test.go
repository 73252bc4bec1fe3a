package command

import (
	"bytes"
	"context"
	"testing"

	"github.com/poruru-code/hostenv/internal/infra/logging"
)

type testEnv struct {
	dir    string
	out    *bytes.Buffer
	errOut *bytes.Buffer
	deps   Dependencies
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	dir := t.TempDir()
	out := &bytes.Buffer{}
	errOut := &bytes.Buffer{}
	logger := logging.Nop()
	return &testEnv{
		dir:    dir,
		out:    out,
		errOut: errOut,
		deps: Dependencies{
			Out:            out,
			ErrOut:         errOut,
			Getwd:          func() (string, error) { return dir, nil },
			LookupHostname: func() (string, bool) { return "", false },
			Interactive:    func() bool { return false },
			Logger:         &logger,
			SignalContext: func() (context.Context, context.CancelFunc) {
				return context.WithCancel(context.Background())
			},
		},
	}
}

func (e *testEnv) run(t *testing.T, args ...string) int {
	t.Helper()
	e.out.Reset()
	return Run(args, e.deps)
}

type stubPrompter struct {
	value string
	err   error
	calls int
}

func (p *stubPrompter) Input(string, []string) (string, error) {
	p.calls++
	return p.value, p.err
}
