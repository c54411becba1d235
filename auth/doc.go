// Package auth holds the ordered list of credentials used when a checked URL
// requires authentication.
//
// Rules are tested front-to-back and the first rule whose pattern matches the
// target wins. The list is built by prepending: every new rule lands in front
// of all existing ones. A configuration file listing entry1..entryN therefore
// yields the order entryN, ..., entry1, and rules from a file read later sit in
// front of rules from files read earlier.
package auth
