package providers

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/nrednav/cuid2"
	"github.com/onkernel/runqemu/cmd/runqemu/config"
	"github.com/onkernel/runqemu/lib/launch"
	"github.com/onkernel/runqemu/lib/logger"
)

// ProvideConfig provides the application configuration
func ProvideConfig() *config.Config {
	return config.Load()
}

// ProvideLogLevel provides the adjustable log level, seeded from config
func ProvideLogLevel(cfg *config.Config) *slog.LevelVar {
	level := new(slog.LevelVar)
	level.Set(logger.ParseLevel(cfg.LogLevel))
	return level
}

// ProvideLogger provides a structured logger on stderr. Every record carries
// a launch id so one invocation can be picked out of collected output.
func ProvideLogger(level *slog.LevelVar) *slog.Logger {
	log := logger.New(os.Stderr, level).With("launch_id", cuid2.Generate())
	slog.SetDefault(log)
	return log
}

// ProvideContext provides a base context that is cancelled on SIGINT/SIGTERM
func ProvideContext(log *slog.Logger) (context.Context, func()) {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	return logger.AddToContext(ctx, log), stop
}

// ProvideDefaults provides the launch defaults with the emulator from config
func ProvideDefaults(cfg *config.Config) launch.Defaults {
	defaults := launch.DefaultDefaults()
	defaults.Emulator = launch.Emulator{
		Program: cfg.QemuBinary,
		Machine: cfg.Machine,
	}
	return defaults
}

// ProvideRunner provides a runner that hands the process's stdio to the emulator
func ProvideRunner() launch.Runner {
	return launch.NewProcessRunner(os.Stdin, os.Stdout, os.Stderr)
}
