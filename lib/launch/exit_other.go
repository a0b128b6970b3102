//go:build !unix

package launch

import (
	"context"
	"os"
)

func terminate(p *os.Process) error {
	return p.Kill()
}

func exitStatus(_ context.Context, state *os.ProcessState) int {
	return exitStatusFallback(state)
}
