package ci

import (
	"bytes"
	"context"
	"os"
	"os/exec"
	"time"

	"github.com/aleister1102/siteguard/internal/common"
)

// ProcessRunner executes one scanner and returns its standard output
type ProcessRunner interface {
	Run(ctx context.Context, args ...string) ([]byte, error)
}

// ExecRunner re-executes a binary, by default the running one.
// ExtraArgs are appended to every invocation.
type ExecRunner struct {
	Binary    string
	ExtraArgs []string
	Timeout   time.Duration
}

// NewExecRunner creates a runner for the current executable
func NewExecRunner(timeout time.Duration) (*ExecRunner, error) {
	exe, err := os.Executable()
	if err != nil {
		return nil, common.WrapError(err, "failed to resolve current executable")
	}
	return &ExecRunner{Binary: exe, Timeout: timeout}, nil
}

// Run executes the binary with args; stderr is folded into the returned error
func (r *ExecRunner) Run(ctx context.Context, args ...string) ([]byte, error) {
	if r.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, r.Timeout)
		defer cancel()
	}

	args = append(append([]string(nil), args...), r.ExtraArgs...)

	var stdout, stderr bytes.Buffer
	cmd := exec.CommandContext(ctx, r.Binary, args...)
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		if ctx.Err() != nil {
			return stdout.Bytes(), common.WrapErrorf(ctx.Err(), "%s %v did not finish within %s", r.Binary, args, r.Timeout)
		}
		return stdout.Bytes(), common.WrapErrorf(err, "%s %v failed: %s", r.Binary, args, bytes.TrimSpace(stderr.Bytes()))
	}
	return stdout.Bytes(), nil
}
