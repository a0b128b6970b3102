// Command runqemu boots a kernel image on the QEMU ARM virt platform.
//
//	runqemu [-debug] [-memsize 512M] [-cpu cortex-a53] [-cores 1] [-graphics] [-dtb board.dtb] <image>
package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/onkernel/runqemu/lib/launch"
)

func main() {
	app, cleanup, err := initializeApp()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(launch.ExitLaunch)
	}

	code := run(app, os.Args[1:], os.Stdout, os.Stderr)
	cleanup()
	os.Exit(code)
}

// run resolves args, prints the launch report and runs the emulator. It
// returns the process exit code: the emulator's own status once started.
func run(app *application, args []string, stdout, stderr io.Writer) int {
	ctx := app.Ctx
	log := app.Logger

	cfg, err := launch.Resolve(args, app.Defaults)
	if errors.Is(err, launch.ErrHelp) {
		fmt.Fprint(stdout, launch.Usage(app.Defaults))
		return 0
	}
	var usageErr *launch.UsageError
	if errors.As(err, &usageErr) {
		fmt.Fprintf(stderr, "Error: %v\n\n%s", usageErr, usageErr.Usage)
		return launch.ExitUsage
	}
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return launch.ExitUsage
	}

	if cfg.Verbose {
		app.LogLevel.Set(slog.LevelDebug)
	}
	if !cfg.KnownCPU() {
		log.WarnContext(ctx, "cpu model is not one of the documented models, passing it through",
			"cpu", cfg.CPU, "known", launch.KnownCPUModels)
	}

	cmd := launch.Build(cfg, app.Defaults.Emulator)
	log.DebugContext(ctx, "built emulator command", "program", cmd.Program(), "args", cmd.Args())

	if err := launch.Report(stdout, cfg, cmd); err != nil {
		log.ErrorContext(ctx, "failed to write launch report", "error", err)
	}

	if cfg.DryRun {
		return 0
	}

	code, err := app.Runner.Run(ctx, cmd)
	if err != nil {
		log.ErrorContext(ctx, "failed to launch emulator", "program", cmd.Program(), "error", err)
		fmt.Fprintf(stderr, "Error: %v\n", err)
	}
	return code
}
