package pattern

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
)

// ErrEmptyPattern is returned when the raw pattern (after removing a negation prefix) is empty.
var ErrEmptyPattern = errors.New("empty pattern")

const negatePrefix = "!"

// Matcher reports whether a URL matches a compiled pattern.
type Matcher interface {
	Match(url string) bool
}

// Compiler compiles a raw pattern string into a Matcher.
// The strict flag is passed through by callers that classify extern links; a
// Compiler may use it or ignore it.
type Compiler interface {
	Compile(raw string, strict bool) (Matcher, error)
}

// Regexp is the default Compiler backed by the regexp package.
type Regexp struct{}

// NewRegexp creates a new regular expression compiler.
func NewRegexp() *Regexp {
	return &Regexp{}
}

// Compile compiles raw into a Matcher. The strict flag does not change how
// the expression matches.
//
//nolint:ireturn // Matcher is the collaborator contract.
func (c *Regexp) Compile(raw string, _ bool) (Matcher, error) {
	negate := strings.HasPrefix(raw, negatePrefix)
	expr := strings.TrimPrefix(raw, negatePrefix)

	if expr == "" {
		return nil, ErrEmptyPattern
	}

	re, err := regexp.Compile(expr)
	if err != nil {
		return nil, fmt.Errorf("compiling pattern %q: %w", raw, err)
	}

	return &regexpMatcher{re: re, negate: negate}, nil
}

type regexpMatcher struct {
	re     *regexp.Regexp
	negate bool
}

func (m *regexpMatcher) Match(url string) bool {
	return m.re.MatchString(url) != m.negate
}
