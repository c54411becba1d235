// Package config holds the link checker configuration and merges it from
// configuration files.
//
// A Configuration is a typed record with one field per recognized option. A
// schema table describes every option once (key, section, default, coercion
// and text form) and drives construction, reading, writing and the by-name
// Get/Set accessors. The key set is closed: unknown keys and values of the
// wrong type are rejected.
//
// The package uses an interface-based design with two extension points:
//   - Parser: turns raw data into a section document (config/parser/ini, config/parser/yaml)
//   - DataFetcher: retrieves raw config data (config/fetcher/file)
//
// # Reading
//
// Read layers files in the order given; later files override earlier ones.
// Without arguments the system wide file is read first and the per user file
// second. Each file is processed section by section:
//
//	[output]          log, verbose, quiet, status, warnings, fileoutput, interactive
//	[checking]        threads, anchors, debug, recursionlevel, externstrictall,
//	                  warningregex, warnsizebytes, nntpserver, anchorcaching
//	[authentication]  entry1, entry2, ... = pattern user password
//	[filtering]       extern1, extern2, ... = pattern strictness; internlinks; denyallow
//	[<logger type>]   options of that output logger type, e.g. [text] filename
//
// Reading is tolerant. A missing file is skipped, an unparsable file is
// ignored as a whole, and an option that cannot be parsed keeps its previous
// value. Numbered entries stop at the first gap or malformed entry.
//
// # Writing
//
// Write produces a document in the same format which reads back into an
// equivalent configuration.
package config
