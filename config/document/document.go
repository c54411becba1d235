// Package document defines the parsed form of a section based configuration
// source. Parsers in config/parser produce a Document; the config package
// consumes it without knowing the source format.
package document

import "strings"

// Section holds the keys of one named section. Keys are lower case.
type Section map[string]string

// Get returns the raw value of key.
func (s Section) Get(key string) (string, bool) {
	value, ok := s[strings.ToLower(key)]

	return value, ok
}

// Document is an ordered collection of named sections.
type Document struct {
	names    []string
	sections map[string]Section
}

// New creates an empty document.
func New() *Document {
	return &Document{sections: make(map[string]Section)}
}

// Set stores value under key in the named section, creating the section on first use.
func (d *Document) Set(section, key, value string) {
	sec, ok := d.sections[section]
	if !ok {
		sec = make(Section)
		d.sections[section] = sec
		d.names = append(d.names, section)
	}

	sec[strings.ToLower(key)] = value
}

// AddSection creates an empty section if it does not exist yet.
func (d *Document) AddSection(section string) {
	if _, ok := d.sections[section]; ok {
		return
	}

	d.sections[section] = make(Section)
	d.names = append(d.names, section)
}

// Section returns the named section.
func (d *Document) Section(name string) (Section, bool) {
	sec, ok := d.sections[name]

	return sec, ok
}

// Sections returns section names in the order they were first seen.
func (d *Document) Sections() []string {
	result := make([]string, len(d.names))
	copy(result, d.names)

	return result
}
