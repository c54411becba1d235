package linkcfg_test

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/0xalexb/linkcfg"
	"github.com/0xalexb/linkcfg/config"
	"github.com/0xalexb/linkcfg/filter"

	"go.uber.org/fx"
)

// Checker is a downstream service consuming the merged configuration.
type Checker struct {
	Threads int
	Links   *filter.Links
}

// Example_appWithConfiguration shows a checker module receiving the
// configuration layered from two files.
func Example_appWithConfiguration() {
	dir, err := os.MkdirTemp("", "linkcfg-example")
	if err != nil {
		fmt.Println(err)

		return
	}
	defer os.RemoveAll(dir)

	system := filepath.Join(dir, "system")
	user := filepath.Join(dir, "user")

	_ = os.WriteFile(system, []byte("[checking]\nthreads = 4\n\n[filtering]\nextern1 = ^mailto: 1\n"), 0o600)
	_ = os.WriteFile(user, []byte("[checking]\nthreads = 16\n"), 0o600)

	var checker *Checker

	checkerModule := fx.Module("checker",
		fx.Provide(func(cfg *config.Configuration) *Checker {
			return &Checker{Threads: cfg.Threads, Links: cfg.Links}
		}),
		fx.Invoke(func(c *Checker) {
			checker = c
		}),
	)

	app := linkcfg.NewApp(
		linkcfg.WithLogLevel("error"),
		linkcfg.WithLogOutput(io.Discard),
		linkcfg.WithConfigFiles(system, user),
		linkcfg.WithConfigOptions(config.WithOutput(io.Discard)),
		linkcfg.WithModules(checkerModule),
	)

	err = app.Start()
	if err != nil {
		fmt.Printf("Error starting app: %v\n", err)

		return
	}

	defer func() { _ = app.Stop() }()

	strict, ok := checker.Links.ClassifyExtern("mailto:someone@example.com")
	fmt.Printf("Threads: %d\n", checker.Threads)
	fmt.Printf("mailto extern: %v strict: %v\n", ok, strict)
	// Output:
	// Threads: 16
	// mailto extern: true strict: true
}
