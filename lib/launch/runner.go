package launch

import (
	"context"
	"errors"
	"io"
	"io/fs"
	"os"
	"os/exec"

	"github.com/onkernel/runqemu/lib/logger"
)

// Exit codes used when no emulator exit status is available.
const (
	ExitUsage       = 2
	ExitLaunch      = 1
	ExitNotRunnable = 126
	ExitNotFound    = 127
)

// Runner executes an emulator command and reports its exit status.
type Runner interface {
	Run(ctx context.Context, cmd Command) (int, error)
}

// ProcessRunner runs the command as a child process in the foreground.
type ProcessRunner struct {
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer
}

// NewProcessRunner creates a runner bound to the given streams. Passing the
// process's own *os.File streams lets the child inherit them directly.
func NewProcessRunner(stdin io.Reader, stdout, stderr io.Writer) *ProcessRunner {
	return &ProcessRunner{
		Stdin:  stdin,
		Stdout: stdout,
		Stderr: stderr,
	}
}

// Run starts cmd and blocks until it exits. A non-zero exit is returned as
// the code with a nil error; only a failure to start is an error (*LaunchError).
// Cancelling ctx sends SIGTERM to the child and Run keeps waiting for it.
func (r *ProcessRunner) Run(ctx context.Context, cmd Command) (int, error) {
	log := logger.FromContext(ctx)

	if cmd.Program() == "" {
		return ExitLaunch, &LaunchError{Err: errors.New("empty command")}
	}

	c := exec.CommandContext(ctx, cmd.Program(), cmd.Args()...)
	c.Stdin = r.Stdin
	c.Stdout = r.Stdout
	c.Stderr = r.Stderr
	c.Cancel = func() error {
		log.InfoContext(ctx, "interrupted, stopping emulator", "pid", c.Process.Pid)
		return terminate(c.Process)
	}

	if err := c.Start(); err != nil {
		return FailureExitCode(err), &LaunchError{Program: cmd.Program(), Err: err}
	}
	log.DebugContext(ctx, "emulator started", "program", cmd.Program(), "pid", c.Process.Pid)

	// Wait also reports I/O copy errors and context cancellation; once the
	// child has been reaped its status is authoritative.
	if err := c.Wait(); err != nil && c.ProcessState == nil {
		return ExitLaunch, &LaunchError{Program: cmd.Program(), Err: err}
	}

	code := exitStatus(ctx, c.ProcessState)
	log.DebugContext(ctx, "emulator exited", "pid", c.Process.Pid, "code", code)
	return code, nil
}

// FailureExitCode maps a start error to a shell-style exit code.
func FailureExitCode(err error) int {
	switch {
	case errors.Is(err, exec.ErrNotFound), errors.Is(err, fs.ErrNotExist):
		return ExitNotFound
	case errors.Is(err, fs.ErrPermission):
		return ExitNotRunnable
	default:
		return ExitLaunch
	}
}

// exitStatusFallback is used where the platform wait status is unavailable.
func exitStatusFallback(state *os.ProcessState) int {
	if code := state.ExitCode(); code >= 0 {
		return code
	}
	return ExitLaunch
}
