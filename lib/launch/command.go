package launch

import (
	"strconv"

	"github.com/kballard/go-shellquote"
)

// Command is the emulator invocation: program name followed by its arguments.
// Token order is significant.
type Command []string

// Program returns the executable name.
func (c Command) Program() string {
	if len(c) == 0 {
		return ""
	}
	return c[0]
}

// Args returns the arguments after the program name.
func (c Command) Args() []string {
	if len(c) < 2 {
		return nil
	}
	return c[1:]
}

// String renders the command as a single shell-quoted line.
func (c Command) String() string {
	return shellquote.Join(c...)
}

// Build maps cfg to the emulator command line. It is a pure function of its
// inputs. Presence-only options are omitted entirely when off, and the
// -kernel pair always comes last.
func Build(cfg LaunchConfig, emu Emulator) Command {
	cmd := Command{emu.Program, "-M", emu.Machine}
	cmd = append(cmd, "-m", cfg.MemSize)
	cmd = append(cmd, "-cpu", cfg.CPU)
	cmd = append(cmd, "-smp", "cores="+strconv.Itoa(cfg.Cores))
	if !cfg.Graphics {
		cmd = append(cmd, "-nographic")
	}
	if cfg.Debug {
		// -s: gdbserver on tcp::1234, -S: do not start the CPU at reset
		cmd = append(cmd, "-s", "-S")
	}
	if cfg.DTB != "" {
		cmd = append(cmd, "-dtb", cfg.DTB)
	}
	cmd = append(cmd, "-kernel", cfg.Image)
	return cmd
}
