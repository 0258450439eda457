package toolchain

import (
	"bytes"
	"context"
	"os/exec"
	"strings"
	"sync"
	"time"

	"github.com/mlorenz/buildstamp/pkg/errors"
)

// Runner executes the toolchain's self-reporting command and returns its
// standard output. Implementations must be safe for concurrent use.
type Runner interface {
	Run(ctx context.Context, name string, args ...string) (string, error)
}

// ExecRunner is the production Runner. It executes real commands via os/exec
// with a bounded timeout so a wedged toolchain cannot hang the build.
type ExecRunner struct {
	// Timeout bounds each command. Zero means defaultTimeout.
	Timeout time.Duration
}

// defaultTimeout is generous for a local version query; `go version`
// completes in milliseconds.
const defaultTimeout = 10 * time.Second

// Run executes name with args and returns trimmed stdout.
func (r ExecRunner) Run(ctx context.Context, name string, args ...string) (string, error) {
	timeout := r.Timeout
	if timeout == 0 {
		timeout = defaultTimeout
	}
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	var stdout, stderr bytes.Buffer
	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		msg := strings.TrimSpace(stderr.String())
		if msg == "" {
			msg = err.Error()
		}
		return "", errors.Wrap(errors.ErrCodeToolchainUnreadable, err, "run %s %s: %s", name, strings.Join(args, " "), msg)
	}
	return strings.TrimSpace(stdout.String()), nil
}

// MockRunner is a test Runner that records calls and returns a canned
// response. It is safe for concurrent use.
type MockRunner struct {
	mu     sync.Mutex
	output string
	err    error
	calls  []MockCall
}

// MockCall records one invocation of the mock runner.
type MockCall struct {
	Name string
	Args []string
}

// NewMockRunner creates a mock runner that replies with output, or with err
// when err is non-nil.
func NewMockRunner(output string, err error) *MockRunner {
	return &MockRunner{output: output, err: err}
}

// Run records the call and returns the configured response.
func (m *MockRunner) Run(_ context.Context, name string, args ...string) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.calls = append(m.calls, MockCall{Name: name, Args: append([]string(nil), args...)})
	if m.err != nil {
		return "", m.err
	}
	return m.output, nil
}

// Calls returns a copy of all recorded calls.
func (m *MockRunner) Calls() []MockCall {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]MockCall(nil), m.calls...)
}
