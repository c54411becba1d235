// Command linkcfg inspects the link checker configuration: it prints the
// merged configuration, writes it to a file and answers authentication,
// link classification and pattern queries against it.
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/0xalexb/linkcfg"
	"github.com/0xalexb/linkcfg/config"

	"github.com/alecthomas/kingpin/v2"
	"go.uber.org/fx"
)

const (
	exitOK    = 0
	exitError = 1
	exitUsage = 2
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	cli := kingpin.New("linkcfg", "Inspect and write LinkChecker configuration files")
	cli.UsageWriter(stderr)
	cli.ErrorWriter(stderr)
	cli.Version(linkcfg.UserAgent())

	configFiles := cli.Flag("config", "Configuration file to read, may be repeated. "+
		"Defaults to "+config.SystemConfigFile+" and "+config.UserConfigFile+".").Short('f').Strings()
	logLevel := cli.Flag("log-level", "Diagnostics level (debug, info, warn, error)").Default("warn").String()
	logFormat := cli.Flag("log-format", "Diagnostics format (text, json)").Default("text").Enum("text", "json")

	dump := cli.Command("dump", "Print the merged configuration")
	write := cli.Command("write", "Write the merged configuration to a file")
	writeDest := write.Arg("dest", "Destination file, defaults to "+config.UserConfigFile).String()
	authCmd := cli.Command("auth", "Print the user configured for a URL")
	authURL := authCmd.Arg("url", "URL to look up").Required().String()
	classify := cli.Command("classify", "Classify a URL against the link filters")
	classifyURL := classify.Arg("url", "URL to classify").Required().String()
	match := cli.Command("match", "Test a URL pattern, as written in an entry, against a URL")
	matchPattern := match.Arg("pattern", "Pattern, a leading '!' negates it").Required().String()
	matchURL := match.Arg("url", "URL to test").Required().String()

	command, err := cli.Parse(args)
	if err != nil {
		_, _ = fmt.Fprintf(stderr, "linkcfg: %v\n", err)

		return exitUsage
	}

	var cfg *config.Configuration

	app := linkcfg.NewApp(
		linkcfg.WithLogLevel(*logLevel),
		linkcfg.WithLogFormat(*logFormat),
		linkcfg.WithLogOutput(stderr),
		linkcfg.WithConfigFiles(*configFiles...),
		linkcfg.WithModules(fx.Populate(&cfg)),
	)

	err = app.Start()
	if err != nil {
		_, _ = fmt.Fprintf(stderr, "linkcfg: %v\n", err)

		return exitError
	}

	defer func() { _ = app.Stop() }()

	switch command {
	case dump.FullCommand():
		_, err = cfg.WriteTo(stdout)
	case write.FullCommand():
		err = cfg.Write(*writeDest)
	case authCmd.FullCommand():
		err = printAuth(stdout, cfg, *authURL)
	case classify.FullCommand():
		err = printClassification(stdout, cfg, *classifyURL)
	case match.FullCommand():
		err = printMatch(stdout, cfg, *matchPattern, *matchURL)
	}

	if err != nil {
		_, _ = fmt.Fprintf(stderr, "linkcfg: %v\n", err)

		return exitError
	}

	return exitOK
}

func printAuth(w io.Writer, cfg *config.Configuration, url string) error {
	entry, ok := cfg.Authentication.Match(url)
	if !ok {
		_, err := fmt.Fprintln(w, "no credentials")

		return err //nolint:wrapcheck // plain terminal output
	}

	_, err := fmt.Fprintf(w, "%s (pattern %s)\n", entry.User, entry.Pattern)

	return err //nolint:wrapcheck // plain terminal output
}

func printClassification(w io.Writer, cfg *config.Configuration, url string) error {
	var result string

	strict, extern := cfg.Links.ClassifyExtern(url)

	switch {
	case extern && (strict || cfg.ExternStrictAll):
		result = "extern strict"
	case extern:
		result = "extern"
	case cfg.Links.ClassifyIntern(url):
		result = "intern"
	default:
		result = "unmatched"
	}

	_, err := fmt.Fprintln(w, result)

	return err //nolint:wrapcheck // plain terminal output
}

func printMatch(w io.Writer, cfg *config.Configuration, raw, url string) error {
	matcher, err := cfg.Compiler().Compile(raw, false)
	if err != nil {
		return fmt.Errorf("invalid pattern: %w", err)
	}

	_, err = fmt.Fprintln(w, matcher.Match(url))

	return err //nolint:wrapcheck // plain terminal output
}
