package config

import (
	"errors"
	"fmt"
	"log/slog"
	"maps"
	"reflect"
	"regexp"
	"slices"
	"strconv"
	"strings"

	"github.com/0xalexb/linkcfg/auth"
	"github.com/0xalexb/linkcfg/filter"
	"github.com/0xalexb/linkcfg/output"
)

// Section names of the configuration document.
const (
	SectionOutput         = "output"
	SectionChecking       = "checking"
	SectionAuthentication = "authentication"
	SectionFiltering      = "filtering"
)

var (
	errInvalidBool    = errors.New("invalid boolean")
	errEmptyValue     = errors.New("empty value")
	errUnknownLogger  = errors.New("invalid log option")
	errNilValue       = errors.New("value must not be nil")
	errUnknownOutputs = errors.New("unknown fileoutput types")
	errMissingEntry   = errors.New("entry not found")
	errMalformedEntry = errors.New("malformed entry")
)

// option is one row of the schema table. Options with an empty section are
// part of the store but are never read from configuration files.
type option struct {
	key     string
	section string
	// failLevel is the diagnostic level used when parse fails.
	failLevel slog.Level
	reset     func(c *Configuration)
	get       func(c *Configuration) any
	set       func(c *Configuration, value any) error
	parse     func(c *Configuration, raw string) error
	// format returns the textual value and whether it should be written.
	format func(c *Configuration) (string, bool)
}

// schema lists every option in reading order. Order matters inside a section:
// verbose is read before warnings and log before fileoutput.
//
//nolint:gochecknoglobals // the schema is a fixed table.
var schema = []option{
	scalar(SectionOutput, "log", loggerDefault, loggerField, parseLogger, formatLogger).withFailLevel(slog.LevelWarn),
	scalar(SectionOutput, "verbose", constant(false), func(c *Configuration) *bool { return &c.Verbose },
		parseBool, formatBool).withAfter(enableWarnings),
	boolOption(SectionOutput, "quiet", false, func(c *Configuration) *bool { return &c.Quiet }),
	boolOption(SectionOutput, "status", false, func(c *Configuration) *bool { return &c.Status }),
	boolOption(SectionOutput, "warnings", false, func(c *Configuration) *bool { return &c.Warnings }),
	fileOutputOption(),
	boolOption(SectionOutput, "interactive", false, func(c *Configuration) *bool { return &c.Interactive }),

	intOption(SectionChecking, "threads", 10, func(c *Configuration) *int { return &c.Threads }),
	boolOption(SectionChecking, "anchors", false, func(c *Configuration) *bool { return &c.Anchors }),
	listOption(SectionChecking, "debug", func(c *Configuration) *[]string { return &c.Debug }),
	intOption(SectionChecking, "recursionlevel", -1, func(c *Configuration) *int { return &c.RecursionLevel }),
	boolOption(SectionChecking, "externstrictall", false, func(c *Configuration) *bool { return &c.ExternStrictAll }),
	scalar(SectionChecking, "warningregex", constant[*regexp.Regexp](nil),
		func(c *Configuration) **regexp.Regexp { return &c.WarningRegex }, parseRegexp, formatRegexp),
	intOption(SectionChecking, "warnsizebytes", 0, func(c *Configuration) *int { return &c.WarnSizeBytes }),
	scalar(SectionChecking, "nntpserver", func(c *Configuration) string { return c.env.NNTPServer },
		func(c *Configuration) *string { return &c.NNTPServer }, parseString, formatString),
	boolOption(SectionChecking, "anchorcaching", true, func(c *Configuration) *bool { return &c.AnchorCaching }),

	referenceOption("authentication", func(c *Configuration) **auth.Rules { return &c.Authentication }, auth.NewRules),

	referenceOption("links", func(c *Configuration) **filter.Links { return &c.Links }, filter.NewLinks),
	boolOption(SectionFiltering, "denyallow", false, func(c *Configuration) *bool { return &c.DenyAllow }),

	proxyOption(),
	intOption("", "wait", 0, func(c *Configuration) *int { return &c.Wait }),
	boolOption("", "cookies", false, func(c *Configuration) *bool { return &c.Cookies }),
}

func lookup(key string) (option, bool) {
	for _, opt := range schema {
		if opt.key == key {
			return opt, true
		}
	}

	return option{}, false
}

func constant[T any](value T) func(*Configuration) T {
	return func(*Configuration) T { return value }
}

// scalar builds a schema row for a field of type T. parse may be nil for
// options that are never read from configuration files.
func scalar[T any](
	section, key string,
	def func(*Configuration) T,
	field func(*Configuration) *T,
	parse func(c *Configuration, raw string) (T, error),
	format func(value T) (string, bool),
) option {
	opt := option{
		key:       key,
		section:   section,
		failLevel: slog.LevelDebug,
		reset:     func(c *Configuration) { *field(c) = def(c) },
		get:       func(c *Configuration) any { return *field(c) },
		set: func(c *Configuration, value any) error {
			typed, ok := value.(T)
			if !ok {
				return fmt.Errorf("%w: %q expects %v, got %T", ErrOptionType, key, reflect.TypeOf((*T)(nil)).Elem(), value)
			}

			*field(c) = typed

			return nil
		},
	}

	if parse != nil {
		opt.parse = func(c *Configuration, raw string) error {
			value, err := parse(c, raw)
			if err != nil {
				return err
			}

			*field(c) = value

			return nil
		}
	}

	if format != nil {
		opt.format = func(c *Configuration) (string, bool) { return format(*field(c)) }
	}

	return opt
}

func (o option) withFailLevel(level slog.Level) option {
	o.failLevel = level

	return o
}

// withAfter runs hook after a successful parse.
func (o option) withAfter(hook func(c *Configuration)) option {
	parse := o.parse
	o.parse = func(c *Configuration, raw string) error {
		err := parse(c, raw)
		if err != nil {
			return err
		}

		hook(c)

		return nil
	}

	return o
}

func boolOption(section, key string, def bool, field func(*Configuration) *bool) option {
	return scalar(section, key, constant(def), field, parseBool, formatBool)
}

func intOption(section, key string, def int, field func(*Configuration) *int) option {
	return scalar(section, key, constant(def), field, parseInt, formatInt)
}

func listOption(section, key string, field func(*Configuration) *[]string) option {
	opt := scalar(section, key, constant[[]string](nil), field, parseList, formatList)
	opt.get = func(c *Configuration) any { return slices.Clone(*field(c)) }

	return opt
}

// referenceOption is a store entry holding a pointer built by section readers.
func referenceOption[T any](key string, field func(*Configuration) **T, create func() *T) option {
	opt := scalar("", key, func(*Configuration) *T { return create() }, field, nil, nil)
	set := opt.set
	opt.set = func(c *Configuration, value any) error {
		if typed, ok := value.(*T); ok && typed == nil {
			return fmt.Errorf("%q: %w", key, errNilValue)
		}

		return set(c, value)
	}

	return opt
}

func fileOutputOption() option {
	field := func(c *Configuration) *[]output.Logger { return &c.FileOutput }
	opt := scalar(SectionOutput, "fileoutput", constant[[]output.Logger](nil), field, nil, formatLoggers)
	opt.get = func(c *Configuration) any { return slices.Clone(c.FileOutput) }
	opt.parse = parseFileOutput

	return opt
}

func proxyOption() option {
	opt := scalar("", "proxy", func(c *Configuration) map[string]string { return c.env.proxies() },
		func(c *Configuration) *map[string]string { return &c.Proxy }, nil, nil)
	opt.get = func(c *Configuration) any { return maps.Clone(c.Proxy) }

	return opt
}

// parseBool accepts the textual boolean forms of configuration files.
func parseBool(_ *Configuration, raw string) (bool, error) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "1", "yes", "true", "on":
		return true, nil
	case "0", "no", "false", "off":
		return false, nil
	default:
		return false, fmt.Errorf("%w: %q", errInvalidBool, raw)
	}
}

func formatBool(value bool) (string, bool) {
	return strconv.FormatBool(value), true
}

func parseInt(_ *Configuration, raw string) (int, error) {
	value, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return 0, fmt.Errorf("parsing integer: %w", err)
	}

	return value, nil
}

func formatInt(value int) (string, bool) {
	return strconv.Itoa(value), true
}

func parseString(_ *Configuration, raw string) (string, error) {
	return raw, nil
}

func formatString(value string) (string, bool) {
	return value, value != ""
}

func parseList(_ *Configuration, raw string) ([]string, error) {
	return output.SplitList(raw), nil
}

func formatList(value []string) (string, bool) {
	return strings.Join(value, ","), len(value) > 0
}

func parseRegexp(_ *Configuration, raw string) (*regexp.Regexp, error) {
	if raw == "" {
		return nil, errEmptyValue
	}

	re, err := regexp.Compile(raw)
	if err != nil {
		return nil, fmt.Errorf("compiling warningregex: %w", err)
	}

	return re, nil
}

func formatRegexp(value *regexp.Regexp) (string, bool) {
	if value == nil {
		return "", false
	}

	return value.String(), true
}

func enableWarnings(c *Configuration) {
	if c.Verbose {
		c.Warnings = true
	}
}

func loggerField(c *Configuration) *output.Logger {
	return &c.Logger
}

//nolint:ireturn // output.Logger is the collaborator contract.
func loggerDefault(c *Configuration) output.Logger {
	logger, err := c.loggers.Instantiate(output.TextType, nil)
	if err != nil {
		c.log.Error("creating default logger", slog.Any("error", err))

		return nil
	}

	return logger
}

//nolint:ireturn // output.Logger is the collaborator contract.
func parseLogger(c *Configuration, raw string) (output.Logger, error) {
	name := strings.TrimSpace(raw)
	if !c.loggers.Has(name) {
		return nil, fmt.Errorf("%w %q", errUnknownLogger, raw)
	}

	return c.NewLogger(name, nil)
}

func formatLogger(value output.Logger) (string, bool) {
	if value == nil {
		return "", false
	}

	return value.Type(), true
}

// parseFileOutput appends one file output logger per recognized type.
// Unknown types are skipped and reported once all known types are added.
func parseFileOutput(c *Configuration, raw string) error {
	var unknown []string

	for _, name := range output.SplitList(raw) {
		if name == output.BlacklistType || name == output.NoneType {
			continue
		}

		if !c.loggers.Has(name) {
			unknown = append(unknown, name)

			continue
		}

		logger, err := c.NewLogger(name, output.Options{output.FileOutputOption: "1"})
		if err != nil {
			unknown = append(unknown, name)

			continue
		}

		c.FileOutput = append(c.FileOutput, logger)
	}

	if len(unknown) > 0 {
		return fmt.Errorf("%w: %s", errUnknownOutputs, strings.Join(unknown, ", "))
	}

	return nil
}

func formatLoggers(value []output.Logger) (string, bool) {
	names := make([]string, 0, len(value))
	for _, logger := range value {
		names = append(names, logger.Type())
	}

	return strings.Join(names, ","), len(names) > 0
}
