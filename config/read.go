package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"path/filepath"
	"slices"
	"strconv"
	"strings"

	"github.com/0xalexb/linkcfg/auth"
	"github.com/0xalexb/linkcfg/config/document"
	filefetcher "github.com/0xalexb/linkcfg/config/fetcher/file"
	iniparser "github.com/0xalexb/linkcfg/config/parser/ini"
	yamlparser "github.com/0xalexb/linkcfg/config/parser/yaml"
	"github.com/0xalexb/linkcfg/filter"
	"github.com/0xalexb/linkcfg/output"
)

const (
	authEntryPrefix   = "entry"
	externEntryPrefix = "extern"
	internLinksKey    = "internlinks"
)

// Read layers the given configuration files on top of the current values,
// in order. Without paths the system wide and then the per user file are read.
//
// Read never fails: missing files are skipped, unreadable or unparsable files
// are logged and ignored, and a bad option keeps its previous value.
func (c *Configuration) Read(paths ...string) {
	if len(paths) == 0 {
		paths = c.defaultPaths
	}

	c.log.Debug("reading configuration", slog.Any("files", paths))

	for _, path := range paths {
		c.readFile(path)
	}
}

func (c *Configuration) readFile(path string) {
	fetcher, err := filefetcher.NewFetcher(path)()
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			c.log.Debug("skipping missing configuration file", slog.String("file", path))

			return
		}

		c.log.Warn("skipping unreadable configuration file", slog.String("file", path), slog.Any("error", err))

		return
	}

	err = c.Load(fetcher, parserFor(fetcher.Path()))
	if err != nil {
		c.log.Warn("ignoring configuration file", slog.String("file", fetcher.Path()), slog.Any("error", err))
	}
}

// parserFor selects the YAML parser for .yaml and .yml files and the INI
// parser for everything else.
//
//nolint:ireturn // Parser is chosen at runtime.
func parserFor(path string) Parser {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return yamlparser.NewParser()
	default:
		return iniparser.NewParser()
	}
}

// Load fetches and parses a single configuration source and merges it.
// Nothing is merged when fetching or parsing fails.
func (c *Configuration) Load(fetcher DataFetcher, parser Parser) error {
	data, err := fetcher.Fetch()
	if err != nil {
		return fmt.Errorf("reading data error: %w", err)
	}

	doc, err := parser.Parse(data)
	if err != nil {
		return fmt.Errorf("parsing error: %w", err)
	}

	c.Merge(doc)

	return nil
}

// Merge applies every recognized section of doc.
func (c *Configuration) Merge(doc *document.Document) {
	c.readLoggerSections(doc)
	c.readSection(doc, SectionOutput)

	if c.Quiet {
		c.silence()
	}

	c.readSection(doc, SectionChecking)
	c.readAuthentication(doc)
	c.readSection(doc, SectionFiltering)
	c.readFiltering(doc)
}

func (c *Configuration) silence() {
	logger, err := c.NewLogger(output.NoneType, nil)
	if err != nil {
		c.log.Debug("creating quiet logger", slog.Any("error", err))

		return
	}

	c.Logger = logger
}

// readSection applies every schema option of a section that is present in doc.
func (c *Configuration) readSection(doc *document.Document, name string) {
	sec, ok := doc.Section(name)
	if !ok {
		return
	}

	for _, opt := range schema {
		if opt.section != name || opt.parse == nil {
			continue
		}

		raw, ok := sec.Get(opt.key)
		if !ok {
			continue
		}

		err := opt.parse(c, raw)
		if err != nil {
			c.logAt(opt.failLevel, "ignoring option",
				slog.String("section", name),
				slog.String("key", opt.key),
				slog.Any("error", err),
			)
		}
	}
}

// readLoggerSections copies the options of every section named after a
// registered logger type into that type's defaults.
func (c *Configuration) readLoggerSections(doc *document.Document) {
	for _, name := range c.loggers.Names() {
		sec, ok := doc.Section(name)
		if !ok {
			continue
		}

		keys := make([]string, 0, len(sec))
		for key := range sec {
			keys = append(keys, key)
		}

		slices.Sort(keys)

		for _, key := range keys {
			value := sec[key]
			if key == output.FieldsOption {
				value = strings.Join(output.SplitList(value), ",")
			}

			err := c.loggers.SetOption(name, key, value)
			if err != nil {
				c.log.Debug("ignoring logger option",
					slog.String("section", name),
					slog.String("key", key),
					slog.Any("error", err),
				)
			}
		}
	}
}

// readAuthentication reads entry1, entry2, ... and prepends each entry to the
// rule list. Scanning stops at the first missing or malformed entry.
func (c *Configuration) readAuthentication(doc *document.Document) {
	sec, ok := doc.Section(SectionAuthentication)
	if !ok {
		return
	}

	for i := 1; ; i++ {
		key := authEntryPrefix + strconv.Itoa(i)

		entry, err := c.parseAuthEntry(sec, key)
		if err != nil {
			c.log.Debug("end of authentication entries",
				slog.String("key", key),
				slog.Any("error", err),
			)

			return
		}

		c.Authentication.Prepend(entry)
	}
}

func (c *Configuration) parseAuthEntry(sec document.Section, key string) (auth.Entry, error) {
	raw, ok := sec.Get(key)
	if !ok {
		return auth.Entry{}, errMissingEntry
	}

	tokens := strings.Fields(raw)
	if len(tokens) != 3 {
		return auth.Entry{}, fmt.Errorf("%w: want pattern, user and password, got %d tokens", errMalformedEntry, len(tokens))
	}

	matcher, err := c.compiler.Compile(tokens[0], false)
	if err != nil {
		return auth.Entry{}, fmt.Errorf("%w: %w", errMalformedEntry, err)
	}

	return auth.Entry{Pattern: tokens[0], Matcher: matcher, User: tokens[1], Password: tokens[2]}, nil
}

// readFiltering reads extern1, extern2, ... in order and the internlinks key.
func (c *Configuration) readFiltering(doc *document.Document) {
	sec, ok := doc.Section(SectionFiltering)
	if !ok {
		return
	}

	for i := 1; ; i++ {
		key := externEntryPrefix + strconv.Itoa(i)

		entry, err := c.parseExternEntry(sec, key)
		if errors.Is(err, errMissingEntry) {
			c.log.Debug("end of extern entries", slog.String("key", key))

			break
		}

		if err != nil {
			c.log.Error("syntax error in extern entry", slog.String("key", key), slog.Any("error", err))

			break
		}

		c.Links.AddExtern(entry)
	}

	raw, ok := sec.Get(internLinksKey)
	if !ok {
		return
	}

	matcher, err := c.compiler.Compile(raw, false)
	if err != nil {
		c.log.Debug("ignoring option",
			slog.String("section", SectionFiltering),
			slog.String("key", internLinksKey),
			slog.Any("error", err),
		)

		return
	}

	c.Links.SetIntern(filter.Entry{Pattern: raw, Matcher: matcher})
}

func (c *Configuration) parseExternEntry(sec document.Section, key string) (filter.Entry, error) {
	raw, ok := sec.Get(key)
	if !ok {
		return filter.Entry{}, errMissingEntry
	}

	tokens := strings.Fields(raw)
	if len(tokens) != 2 {
		return filter.Entry{}, fmt.Errorf("%w: want pattern and strictness, got %q", errMalformedEntry, raw)
	}

	strictness, err := strconv.Atoi(tokens[1])
	if err != nil {
		return filter.Entry{}, fmt.Errorf("%w: strictness %q: %w", errMalformedEntry, tokens[1], err)
	}

	strict := strictness != 0

	matcher, err := c.compiler.Compile(tokens[0], strict)
	if err != nil {
		return filter.Entry{}, fmt.Errorf("%w: %w", errMalformedEntry, err)
	}

	return filter.Entry{Pattern: tokens[0], Matcher: matcher, Strict: strict}, nil
}
