// Package file provides a file-based DataFetcher implementation for the config package.
//
// Paths are normalized before use: a leading "~" is expanded to the user's
// home directory and the result is cleaned. The file is read at construction
// time and cached, so subsequent calls to Fetch() return the same data.
//
// Usage:
//
//	fetcher, err := file.NewFetcher("~/.linkchecker/linkcheckerrc")()
//	if errors.Is(err, fs.ErrNotExist) {
//	    // missing configuration files are usually skipped
//	}
//	data, err := fetcher.Fetch()
//
// Error Handling:
//   - Construction returns error if file cannot be read or path is a directory
//   - Errors include the filepath and wrap the underlying fs error
//   - Use errors.Is(err, file.ErrPathIsDirectory) to check for directory errors
package file
