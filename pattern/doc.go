// Package pattern compiles user-supplied link patterns into matchers.
//
// A Compiler turns a raw pattern string plus a strictness indicator into an
// opaque Matcher. Callers only ever ask a Matcher whether a URL matches; the
// compiled representation stays private to the Compiler implementation.
//
// The default compiler (Regexp) treats the raw string as a Go regular
// expression searched anywhere in the URL. A leading "!" negates the
// expression:
//
//	"^https?://example\.com/"  -> matches URLs below example.com
//	"!^https?://example\.com/" -> matches every other URL
package pattern
