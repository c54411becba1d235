// Package ini provides an INI parser implementation for the config package.
//
// This package uses gopkg.in/ini.v1 to read section based documents of the
// form
//
//	[checking]
//	threads = 5
//	anchors = yes
//
// Key names are case insensitive and stored in lower case. Section names are
// kept as written. Values are read verbatim: surrounding quotes are kept and a
// trailing backslash does not continue the line. Only a ';' preceded by
// whitespace starts an inline comment, so values such as passwords or
// patterns may contain '#' and ';'.
//
// Usage:
//
//	parser := ini.NewParser()
//	doc, err := parser.Parse(data)
package ini
