package config

import (
	"log/slog"

	"go.uber.org/fx"
)

// Module creates an Fx module providing a *Configuration read from paths.
// Nil paths read the default configuration files. The *slog.Logger from the
// container is used for diagnostics.
//
//nolint:ireturn // fx.Option is the standard return type for Fx modules
func Module(paths []string, opts ...Option) fx.Option {
	return fx.Module("config",
		fx.Provide(func(logger *slog.Logger) *Configuration {
			cfg := New(append([]Option{WithLogger(logger)}, opts...)...)
			cfg.Read(paths...)

			return cfg
		}),
	)
}
