package config

import (
	"io"
	"log/slog"

	"github.com/0xalexb/linkcfg/pattern"
)

// Option defines a function type for configuring a Configuration.
type Option func(*Configuration)

// WithLogger sets the logger used for diagnostics while reading and writing.
// A nil logger keeps slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(c *Configuration) {
		if logger != nil {
			c.log = logger
		}
	}
}

// WithCompiler replaces the pattern compiler used for authentication and
// filter entries.
func WithCompiler(compiler pattern.Compiler) Option {
	return func(c *Configuration) {
		if compiler != nil {
			c.compiler = compiler
		}
	}
}

// WithOutput sets the writer of the built-in output loggers.
func WithOutput(w io.Writer) Option {
	return func(c *Configuration) {
		c.outputWriter = w
	}
}

// WithDefaultFiles replaces the files read when Read is called without paths.
func WithDefaultFiles(paths ...string) Option {
	return func(c *Configuration) {
		c.defaultPaths = append([]string(nil), paths...)
	}
}
