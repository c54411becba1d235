package config

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"slices"
	"strconv"
	"strings"

	filefetcher "github.com/0xalexb/linkcfg/config/fetcher/file"
	iniparser "github.com/0xalexb/linkcfg/config/parser/ini"

	"gopkg.in/ini.v1"
)

// ErrWriteDestination is returned when the destination cannot be opened for writing.
var ErrWriteDestination = errors.New("cannot open configuration destination")

// Write serializes the configuration into destination. An empty destination
// means the per user configuration file.
func (c *Configuration) Write(destination string) error {
	if destination == "" {
		destination = UserConfigFile
	}

	path := filefetcher.NormalizePath(destination)
	c.log.Debug("writing configuration", slog.String("file", path))

	file, err := os.Create(path) // #nosec G304 -- path is cleaned, destination is chosen by the caller
	if err != nil {
		return fmt.Errorf("%w %q: %w", ErrWriteDestination, path, err)
	}

	_, err = c.WriteTo(file)
	closeErr := file.Close()

	if err != nil {
		return err
	}

	if closeErr != nil {
		return fmt.Errorf("closing %q: %w", path, closeErr)
	}

	return nil
}

// WriteTo writes the configuration document to w. Reading the written
// document into a fresh Configuration reproduces every option read from
// configuration files.
func (c *Configuration) WriteTo(w io.Writer) (int64, error) {
	file := ini.Empty(iniparser.LoadOptions)

	steps := []func(*ini.File) error{
		func(f *ini.File) error { return c.writeSection(f, SectionOutput) },
		func(f *ini.File) error { return c.writeSection(f, SectionChecking) },
		c.writeAuthentication,
		c.writeFiltering,
		c.writeLoggerSections,
	}

	for _, step := range steps {
		err := step(file)
		if err != nil {
			return 0, err
		}
	}

	written, err := file.WriteTo(w)
	if err != nil {
		return written, fmt.Errorf("writing configuration: %w", err)
	}

	return written, nil
}

func (c *Configuration) writeSection(file *ini.File, name string) error {
	sec, err := file.NewSection(name)
	if err != nil {
		return fmt.Errorf("creating section %q: %w", name, err)
	}

	for _, opt := range schema {
		if opt.section != name || opt.format == nil {
			continue
		}

		value, ok := opt.format(c)
		if !ok {
			continue
		}

		err := c.newKey(sec, opt.key, value)
		if err != nil {
			return err
		}
	}

	return nil
}

// writeAuthentication numbers the rules in reverse match order, so that
// prepending them while reading restores the current order.
func (c *Configuration) writeAuthentication(file *ini.File) error {
	sec, err := file.NewSection(SectionAuthentication)
	if err != nil {
		return fmt.Errorf("creating section %q: %w", SectionAuthentication, err)
	}

	var values []string

	for _, entry := range c.Authentication.Entries() {
		if !singleTokens(entry.Pattern, entry.User, entry.Password) {
			c.log.Warn("authentication entry cannot be written", slog.String("pattern", entry.Pattern))

			continue
		}

		values = append(values, strings.Join([]string{entry.Pattern, entry.User, entry.Password}, " "))
	}

	slices.Reverse(values)

	return c.writeNumbered(sec, authEntryPrefix, values)
}

func (c *Configuration) writeFiltering(file *ini.File) error {
	err := c.writeSection(file, SectionFiltering)
	if err != nil {
		return err
	}

	sec := file.Section(SectionFiltering)

	var values []string

	for _, entry := range c.Links.Extern() {
		if !singleTokens(entry.Pattern) {
			c.log.Warn("extern entry cannot be written", slog.String("pattern", entry.Pattern))

			continue
		}

		strictness := 0
		if entry.Strict {
			strictness = 1
		}

		values = append(values, entry.Pattern+" "+strconv.Itoa(strictness))
	}

	err = c.writeNumbered(sec, externEntryPrefix, values)
	if err != nil {
		return err
	}

	intern, ok := c.Links.Intern()
	if !ok {
		return nil
	}

	return c.newKey(sec, internLinksKey, intern.Pattern)
}

func (c *Configuration) writeLoggerSections(file *ini.File) error {
	for _, name := range c.loggers.Names() {
		opts, ok := c.loggers.Options(name)
		if !ok || len(opts) == 0 {
			continue
		}

		sec, err := file.NewSection(name)
		if err != nil {
			return fmt.Errorf("creating section %q: %w", name, err)
		}

		keys := make([]string, 0, len(opts))
		for key := range opts {
			keys = append(keys, key)
		}

		slices.Sort(keys)

		for _, key := range keys {
			err := c.newKey(sec, key, opts[key])
			if err != nil {
				return err
			}
		}
	}

	return nil
}

func (c *Configuration) writeNumbered(sec *ini.Section, prefix string, values []string) error {
	for i, value := range values {
		err := c.newKey(sec, prefix+strconv.Itoa(i+1), value)
		if err != nil {
			return err
		}
	}

	return nil
}

// newKey writes a value the way the reader sees it: edge whitespace is
// trimmed, and a value that would lose an inline comment on reading is skipped.
func (c *Configuration) newKey(sec *ini.Section, key, value string) error {
	value = strings.TrimSpace(value)
	if iniparser.StripInlineComment(value) != value {
		c.log.Warn("value cannot be written",
			slog.String("section", sec.Name()),
			slog.String("key", key),
		)

		return nil
	}

	_, err := sec.NewKey(key, value)
	if err != nil {
		return fmt.Errorf("writing %s.%s: %w", sec.Name(), key, err)
	}

	return nil
}

// singleTokens reports whether every value survives whitespace splitting unchanged.
func singleTokens(values ...string) bool {
	for _, value := range values {
		if len(strings.Fields(value)) != 1 || strings.TrimSpace(value) != value {
			return false
		}
	}

	return true
}
