//go:build wireinject

package main

import (
	"context"
	"log/slog"

	"github.com/google/wire"
	"github.com/onkernel/runqemu/cmd/runqemu/config"
	"github.com/onkernel/runqemu/lib/launch"
	"github.com/onkernel/runqemu/lib/providers"
)

// application struct to hold initialized components
type application struct {
	Ctx      context.Context
	Logger   *slog.Logger
	LogLevel *slog.LevelVar
	Config   *config.Config
	Defaults launch.Defaults
	Runner   launch.Runner
}

// initializeApp is the injector function
func initializeApp() (*application, func(), error) {
	panic(wire.Build(
		providers.ProvideConfig,
		providers.ProvideLogLevel,
		providers.ProvideLogger,
		providers.ProvideContext,
		providers.ProvideDefaults,
		providers.ProvideRunner,
		wire.Struct(new(application), "*"),
	))
}
