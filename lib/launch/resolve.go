package launch

import (
	"bytes"
	"flag"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// ProgramName is shown in the generated usage text.
const ProgramName = "runqemu"

// presenceFlag is a boolean flag that is switched on by its name alone.
type presenceFlag struct {
	dst *bool
}

func (f *presenceFlag) String() string {
	if f == nil || f.dst == nil {
		return "false"
	}
	return strconv.FormatBool(*f.dst)
}

func (f *presenceFlag) Set(string) error {
	*f.dst = true
	return nil
}

func (f *presenceFlag) IsBoolFlag() bool { return true }

// textFlag holds a verbatim, non-empty string value.
type textFlag struct {
	dst *string
}

func (f *textFlag) String() string {
	if f == nil || f.dst == nil {
		return ""
	}
	return *f.dst
}

func (f *textFlag) Set(s string) error {
	if strings.TrimSpace(s) == "" {
		return fmt.Errorf("%w: must not be empty", ErrInvalidValue)
	}
	*f.dst = s
	return nil
}

// pathFlag holds an optional path; empty means "not given".
type pathFlag struct {
	dst *string
}

func (f *pathFlag) String() string {
	if f == nil || f.dst == nil {
		return ""
	}
	return *f.dst
}

func (f *pathFlag) Set(s string) error {
	*f.dst = s
	return nil
}

// positiveIntFlag accepts base-10 integers greater than zero.
type positiveIntFlag struct {
	dst *int
}

func (f *positiveIntFlag) String() string {
	if f == nil || f.dst == nil {
		return "0"
	}
	return strconv.Itoa(*f.dst)
}

func (f *positiveIntFlag) Set(s string) error {
	v, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return fmt.Errorf("%w: %q is not a number", ErrInvalidValue, s)
	}
	if v <= 0 {
		return fmt.Errorf("%w: %d must be greater than zero", ErrInvalidValue, v)
	}
	*f.dst = v
	return nil
}

// newFlagSet declares every flag on cfg. The flag set is used as the schema
// for lookups and usage text; tokens are walked by Resolve itself so the
// image path may appear before or after the flags.
func newFlagSet(cfg *LaunchConfig) *flag.FlagSet {
	fs := flag.NewFlagSet(ProgramName, flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	fs.Var(&presenceFlag{&cfg.Debug}, "debug", "Enable QEMU GDB mode and halt execution after reset")
	fs.Var(&textFlag{&cfg.MemSize}, "memsize", "RAM `size`")
	fs.Var(&textFlag{&cfg.CPU}, "cpu", "Type of CPU `model`. Select from: "+strings.Join(KnownCPUModels, ", "))
	fs.Var(&positiveIntFlag{&cfg.Cores}, "cores", "Number of `n` cores to emulate")
	fs.Var(&presenceFlag{&cfg.Graphics}, "graphics", "Enable graphical mode (i.e. display)")
	fs.Var(&pathFlag{&cfg.DTB}, "dtb", "Use the given DeviceTree blob `file`")
	fs.Var(&presenceFlag{&cfg.DryRun}, "dry-run", "Print the emulator command without running it")
	fs.Var(&presenceFlag{&cfg.Verbose}, "v", "Verbose diagnostic logging")

	fs.Usage = func() {
		fmt.Fprintf(fs.Output(), "Usage: %s [flags] <image>\n\n", ProgramName)
		fmt.Fprint(fs.Output(), "Run a kernel image on the QEMU ARM virt platform.\n\n")
		fmt.Fprint(fs.Output(), "Arguments:\n  image\n    \tKernel binary image to load\n\nFlags:\n")
		fs.PrintDefaults()
	}
	return fs
}

// Usage returns the generated help text for the given defaults.
func Usage(defaults Defaults) string {
	cfg := LaunchConfig{
		MemSize: defaults.MemSize,
		CPU:     defaults.CPU,
		Cores:   defaults.Cores,
	}
	fs := newFlagSet(&cfg)
	var buf bytes.Buffer
	fs.SetOutput(&buf)
	fs.Usage()
	return buf.String()
}

// Resolve turns raw command-line tokens (without the program name) into a
// LaunchConfig. Flags and the image path may be interleaved; "--" ends flag
// processing. All failures are *UsageError except ErrHelp.
func Resolve(args []string, defaults Defaults) (LaunchConfig, error) {
	cfg := LaunchConfig{
		MemSize: defaults.MemSize,
		CPU:     defaults.CPU,
		Cores:   defaults.Cores,
	}
	fs := newFlagSet(&cfg)

	usageErr := func(token string, err error) error {
		return &UsageError{Token: token, Err: err, Usage: Usage(defaults)}
	}

	var positional []string
	for i := 0; i < len(args); i++ {
		arg := args[i]

		if arg == "--" {
			positional = append(positional, args[i+1:]...)
			break
		}
		if len(arg) < 2 || arg[0] != '-' {
			positional = append(positional, arg)
			continue
		}

		name := strings.TrimPrefix(strings.TrimPrefix(arg, "-"), "-")
		value, hasValue := "", false
		if idx := strings.IndexByte(name, '='); idx >= 0 {
			name, value, hasValue = name[:idx], name[idx+1:], true
		}

		if name == "h" || name == "help" {
			return LaunchConfig{}, ErrHelp
		}

		f := fs.Lookup(name)
		if f == nil {
			return LaunchConfig{}, usageErr(arg, ErrUnknownFlag)
		}

		if bf, ok := f.Value.(interface{ IsBoolFlag() bool }); ok && bf.IsBoolFlag() {
			if hasValue {
				return LaunchConfig{}, usageErr(arg, fmt.Errorf("%w: -%s takes no value", ErrInvalidValue, name))
			}
			_ = f.Value.Set("")
			continue
		}

		if !hasValue {
			if i+1 >= len(args) || namesFlag(fs, args[i+1]) {
				return LaunchConfig{}, usageErr(arg, ErrMissingValue)
			}
			i++
			value = args[i]
		}
		if err := f.Value.Set(value); err != nil {
			return LaunchConfig{}, usageErr(arg, err)
		}
	}

	switch {
	case len(positional) == 0:
		return LaunchConfig{}, usageErr("", ErrMissingImage)
	case len(positional) > 1:
		return LaunchConfig{}, usageErr(positional[1], ErrUnexpectedArg)
	case positional[0] == "":
		return LaunchConfig{}, usageErr("", ErrMissingImage)
	}
	cfg.Image = positional[0]

	return cfg, nil
}

// namesFlag reports whether token is "--", a help request or one of the
// flags in fs. Values such as "-3" or "-board.dtb" do not name a flag.
func namesFlag(fs *flag.FlagSet, token string) bool {
	if token == "--" {
		return true
	}
	if len(token) < 2 || token[0] != '-' {
		return false
	}
	name := strings.TrimPrefix(strings.TrimPrefix(token, "-"), "-")
	if idx := strings.IndexByte(name, '='); idx >= 0 {
		name = name[:idx]
	}
	return name == "h" || name == "help" || fs.Lookup(name) != nil
}
