//go:build unix

package launch

import (
	"context"
	"os"
	"syscall"

	"github.com/onkernel/runqemu/lib/logger"
	"golang.org/x/sys/unix"
)

func terminate(p *os.Process) error {
	return p.Signal(unix.SIGTERM)
}

// exitStatus returns the child's exit code, or 128+signo when it was killed
// by a signal.
func exitStatus(ctx context.Context, state *os.ProcessState) int {
	ws, ok := state.Sys().(syscall.WaitStatus)
	if !ok || !ws.Signaled() {
		return exitStatusFallback(state)
	}
	sig := ws.Signal()
	logger.FromContext(ctx).InfoContext(ctx, "emulator terminated by signal",
		"signal", unix.SignalName(sig), "signo", int(sig))
	return 128 + int(sig)
}
