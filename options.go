package linkcfg

import (
	"io"

	"github.com/0xalexb/linkcfg/config"

	"go.uber.org/fx"
)

// Options holds configuration settings for the application.
type Options struct {
	Modules   []fx.Option
	LogLevel  string
	LogFormat string
	LogOutput io.Writer

	// ConfigFiles are read in order. Empty means the system wide and then the
	// per user configuration file.
	ConfigFiles   []string
	ConfigOptions []config.Option
}

// Option defines a function type for applying configuration options.
type Option func(*Options)

// WithModules adds Fx modules to the application.
func WithModules(modules ...fx.Option) Option {
	return func(opts *Options) {
		opts.Modules = append(opts.Modules, modules...)
	}
}

// WithLogLevel sets the log level for the application.
// Valid levels are: "debug", "info", "warn", "error".
// If not set or invalid, defaults to "info".
func WithLogLevel(level string) Option {
	return func(opts *Options) {
		opts.LogLevel = level
	}
}

// WithLogFormat selects the diagnostics format, "json" (default) or "text".
func WithLogFormat(format string) Option {
	return func(opts *Options) {
		opts.LogFormat = format
	}
}

// WithLogOutput sets where diagnostics are written. Defaults to os.Stderr.
func WithLogOutput(w io.Writer) Option {
	return func(opts *Options) {
		opts.LogOutput = w
	}
}

// WithConfigFiles adds configuration files to read, in order.
func WithConfigFiles(paths ...string) Option {
	return func(opts *Options) {
		opts.ConfigFiles = append(opts.ConfigFiles, paths...)
	}
}

// WithConfigOptions passes options to config.New.
func WithConfigOptions(options ...config.Option) Option {
	return func(opts *Options) {
		opts.ConfigOptions = append(opts.ConfigOptions, options...)
	}
}
