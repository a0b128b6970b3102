package launch

import "github.com/samber/lo"

const (
	// DefaultProgram is the emulator binary for the ARM virt platform
	DefaultProgram = "qemu-system-aarch64"

	// DefaultMachine selects QEMU's generic ARM virtual board
	DefaultMachine = "virt"

	DefaultMemSize = "512M"
	DefaultCPU     = "cortex-a53"
	DefaultCores   = 1
)

// KnownCPUModels lists the CPU models documented for the virt platform.
// Other values are still forwarded to the emulator unchanged.
var KnownCPUModels = []string{"cortex-a53", "cortex-a57", "cortex-a72"}

// Emulator identifies the external program and the board it emulates.
type Emulator struct {
	Program string
	Machine string
}

// Defaults holds the values applied to flags the user leaves out.
type Defaults struct {
	Emulator Emulator
	MemSize  string
	CPU      string
	Cores    int
}

// DefaultDefaults returns the built-in defaults.
func DefaultDefaults() Defaults {
	return Defaults{
		Emulator: Emulator{
			Program: DefaultProgram,
			Machine: DefaultMachine,
		},
		MemSize: DefaultMemSize,
		CPU:     DefaultCPU,
		Cores:   DefaultCores,
	}
}

// LaunchConfig is the resolved set of launch parameters for one invocation.
// It is built once by Resolve and passed by value afterwards.
type LaunchConfig struct {
	Image    string
	Debug    bool
	MemSize  string
	CPU      string
	Cores    int
	Graphics bool
	DTB      string

	// Tool behaviour, not forwarded to the emulator
	DryRun  bool
	Verbose bool
}

// KnownCPU reports whether CPU is one of KnownCPUModels.
func (c LaunchConfig) KnownCPU() bool {
	return lo.Contains(KnownCPUModels, c.CPU)
}
