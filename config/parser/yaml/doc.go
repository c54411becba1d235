// Package yaml provides a YAML parser implementation for the config package.
//
// This package uses github.com/goccy/go-yaml. Every top-level mapping is a
// section and its scalar values become raw option strings, so
//
//	checking:
//	  threads: 5
//	  anchors: true
//	output:
//	  fileoutput: [html, csv]
//
// reads like the INI document with sections "checking" and "output".
//
// Value Conversion:
//   - Strings are kept verbatim
//   - Numbers and booleans use their canonical text form
//   - Sequences of scalars are joined with ", "
//   - Null values become the empty string
package yaml
