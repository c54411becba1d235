package auth

import (
	"github.com/0xalexb/linkcfg/pattern"
)

// Entry is a single credential rule.
type Entry struct {
	// Pattern is the raw pattern the matcher was compiled from.
	Pattern  string
	Matcher  pattern.Matcher
	User     string
	Password string
}

// Rules is an ordered credential list. The zero value is an empty list.
type Rules struct {
	entries []Entry
}

// NewRules creates an empty rule list.
func NewRules() *Rules {
	return &Rules{}
}

// Prepend inserts entry in front of every existing entry.
func (r *Rules) Prepend(entry Entry) {
	r.entries = append([]Entry{entry}, r.entries...)
}

// Match returns the first entry whose pattern matches target.
func (r *Rules) Match(target string) (Entry, bool) {
	if r == nil {
		return Entry{}, false
	}

	for _, entry := range r.entries {
		if entry.Matcher != nil && entry.Matcher.Match(target) {
			return entry, true
		}
	}

	return Entry{}, false
}

// Entries returns a copy of the rules in match order.
func (r *Rules) Entries() []Entry {
	if r == nil {
		return nil
	}

	result := make([]Entry, len(r.entries))
	copy(result, r.entries)

	return result
}

// Len returns the number of rules.
func (r *Rules) Len() int {
	if r == nil {
		return 0
	}

	return len(r.entries)
}
