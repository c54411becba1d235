package filter

import (
	"github.com/0xalexb/linkcfg/pattern"
)

// Entry is a compiled link pattern with its strictness flag.
type Entry struct {
	// Pattern is the raw pattern the matcher was compiled from.
	Pattern string
	Matcher pattern.Matcher
	Strict  bool
}

// Links holds the extern filter list and the optional intern entry.
type Links struct {
	extern []Entry
	intern *Entry
}

// NewLinks creates an empty filter set.
func NewLinks() *Links {
	return &Links{}
}

// AddExtern appends an extern entry; earlier entries take precedence.
func (l *Links) AddExtern(entry Entry) {
	l.extern = append(l.extern, entry)
}

// SetIntern replaces the intern entry.
func (l *Links) SetIntern(entry Entry) {
	l.intern = &entry
}

// ClassifyExtern returns the strictness flag of the first extern entry
// matching url. ok is false when url is not an extern link.
func (l *Links) ClassifyExtern(url string) (strict bool, ok bool) {
	if l == nil {
		return false, false
	}

	for _, entry := range l.extern {
		if entry.Matcher != nil && entry.Matcher.Match(url) {
			return entry.Strict, true
		}
	}

	return false, false
}

// ClassifyIntern reports whether url matches the intern entry.
func (l *Links) ClassifyIntern(url string) bool {
	if l == nil || l.intern == nil || l.intern.Matcher == nil {
		return false
	}

	return l.intern.Matcher.Match(url)
}

// Extern returns a copy of the extern entries in match order.
func (l *Links) Extern() []Entry {
	if l == nil {
		return nil
	}

	result := make([]Entry, len(l.extern))
	copy(result, l.extern)

	return result
}

// Intern returns the intern entry, if any.
func (l *Links) Intern() (Entry, bool) {
	if l == nil || l.intern == nil {
		return Entry{}, false
	}

	return *l.intern, true
}
