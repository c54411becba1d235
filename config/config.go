package config

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"regexp"
	"sort"

	"github.com/0xalexb/linkcfg/auth"
	"github.com/0xalexb/linkcfg/config/document"
	"github.com/0xalexb/linkcfg/filter"
	"github.com/0xalexb/linkcfg/output"
	"github.com/0xalexb/linkcfg/pattern"
)

// Default configuration file locations. The system wide file is read first so
// that per user settings are layered on top of it.
const (
	SystemConfigFile = "/etc/linkchecker/linkcheckerrc"
	UserConfigFile   = "~/.linkchecker/linkcheckerrc"
)

// ErrUnknownOption is returned when getting or setting a key outside the schema.
var ErrUnknownOption = errors.New("unknown option")

// ErrOptionType is returned when setting a key to a value of the wrong type.
var ErrOptionType = errors.New("invalid option type")

// Parser defines an interface for parsing raw configuration data into a section document.
type Parser interface {
	Parse(data []byte) (*document.Document, error)
}

// DataFetcher defines an interface for reading configuration data.
type DataFetcher interface {
	Fetch() ([]byte, error)
}

// Configuration holds every recognized option of the link checker.
//
// A Configuration is built and mutated only during initialization: New seeds
// the defaults, Read layers configuration files on top. Afterwards it is
// treated as read-only by its consumers.
type Configuration struct {
	// output section
	Verbose     bool
	Quiet       bool
	Status      bool
	Warnings    bool
	Interactive bool
	Logger      output.Logger
	FileOutput  []output.Logger

	// checking section
	Threads         int
	Anchors         bool
	AnchorCaching   bool
	RecursionLevel  int
	ExternStrictAll bool
	WarningRegex    *regexp.Regexp
	WarnSizeBytes   int
	NNTPServer      string
	Debug           []string

	// authentication section
	Authentication *auth.Rules

	// filtering section
	Links     *filter.Links
	DenyAllow bool

	// not read from configuration files
	Proxy   map[string]string
	Wait    int
	Cookies bool

	loggers      *output.Registry
	compiler     pattern.Compiler
	log          *slog.Logger
	env          environment
	defaultPaths []string
	outputWriter io.Writer
}

// New creates a Configuration holding the default value of every option.
func New(opts ...Option) *Configuration {
	cfg := &Configuration{
		compiler:     pattern.NewRegexp(),
		log:          slog.Default(),
		defaultPaths: []string{SystemConfigFile, UserConfigFile},
	}

	for _, apply := range opts {
		apply(cfg)
	}

	cfg.loggers = output.NewRegistry(cfg.outputWriter)

	env, err := loadEnvironment()
	if err != nil {
		cfg.log.Debug("ignoring environment", slog.Any("error", err))
	}

	cfg.env = env

	for _, opt := range schema {
		opt.reset(cfg)
	}

	return cfg
}

// Loggers returns the output logger registry.
func (c *Configuration) Loggers() *output.Registry {
	return c.loggers
}

// NewLogger instantiates an output logger of the given type with the type's
// current options merged with overrides.
//
//nolint:ireturn // output.Logger is the collaborator contract.
func (c *Configuration) NewLogger(loggerType string, overrides output.Options) (output.Logger, error) {
	logger, err := c.loggers.Instantiate(loggerType, overrides)
	if err != nil {
		return nil, fmt.Errorf("instantiating logger: %w", err)
	}

	return logger, nil
}

// AddLogger registers a new output logger type together with its default options.
func (c *Configuration) AddLogger(loggerType string, constructor output.Constructor, defaults output.Options) error {
	err := c.loggers.Register(loggerType, constructor, defaults)
	if err != nil {
		return fmt.Errorf("registering logger: %w", err)
	}

	return nil
}

// Compiler returns the pattern compiler used for authentication and filter entries.
//
//nolint:ireturn // pattern.Compiler is the collaborator contract.
func (c *Configuration) Compiler() pattern.Compiler {
	return c.compiler
}

// Keys returns every option name in sorted order.
func Keys() []string {
	keys := make([]string, 0, len(schema))
	for _, opt := range schema {
		keys = append(keys, opt.key)
	}

	sort.Strings(keys)

	return keys
}

// Get returns the value of an option by name.
func (c *Configuration) Get(key string) (any, error) {
	opt, ok := lookup(key)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownOption, key)
	}

	return opt.get(c), nil
}

// Set replaces the value of an option by name. The value must have the
// option's Go type.
func (c *Configuration) Set(key string, value any) error {
	opt, ok := lookup(key)
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnknownOption, key)
	}

	return opt.set(c, value)
}

func (c *Configuration) logAt(level slog.Level, msg string, attrs ...slog.Attr) {
	c.log.LogAttrs(context.Background(), level, msg, attrs...)
}
