package linkcfg

import "fmt"

// AppName is the application name reported to servers.
const AppName = "LinkChecker"

//nolint:gochecknoglobals // set via ldflags at build time.
var (
	// Version is the application version, set via ldflags.
	Version = "dev"
	// CompiledAt is the build timestamp, set via ldflags.
	CompiledAt = "unknown"
	// URL is the project homepage, set via ldflags.
	URL = "http://linkchecker.sourceforge.net/"
	// Email is the maintainer contact, set via ldflags.
	Email = "calvin@users.sourceforge.net"
)

// UserAgent returns the default User-Agent header value,
// e.g. "LinkChecker/10.2 (http://linkchecker.sourceforge.net/; calvin@users.sourceforge.net)".
func UserAgent() string {
	return fmt.Sprintf("%s/%s (%s; %s)", AppName, Version, URL, Email)
}
