package launch

import (
	"fmt"
	"io"
	"strings"
	"unicode"

	"github.com/c2h5oh/datasize"
)

// Report writes the human-readable launch summary to w.
func Report(w io.Writer, cfg LaunchConfig, cmd Command) error {
	var b strings.Builder
	fmt.Fprintf(&b, "Running QEMU ARM Virt platform with command-line: %s\n", cmd)
	fmt.Fprintf(&b, "CPU: %s CORES: %d\n", cfg.CPU, cfg.Cores)
	fmt.Fprintf(&b, "RAM SIZE: %s\n", describeMemSize(cfg.MemSize))
	if cfg.Graphics {
		b.WriteString("Running with graphics enabled\n")
	}
	if cfg.Debug {
		b.WriteString("Running with GDB mode enabled. Execution halted by QEMU. " +
			"You will need to use GDB to continue running the code.\n")
	}
	_, err := io.WriteString(w, b.String())
	return err
}

// describeMemSize annotates a suffixed size literal with its byte count.
// QEMU reads a bare number as MiB, so only literals with a unit suffix are
// annotated; anything unparseable is returned verbatim.
func describeMemSize(literal string) string {
	if literal == "" || !unicode.IsLetter(rune(literal[len(literal)-1])) {
		return literal
	}
	var size datasize.ByteSize
	if err := size.UnmarshalText([]byte(literal)); err != nil {
		return literal
	}
	return fmt.Sprintf("%s (%d bytes)", literal, size.Bytes())
}
