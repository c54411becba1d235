package config_test

import (
	"bytes"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/0xalexb/linkcfg/config"
	iniparser "github.com/0xalexb/linkcfg/config/parser/ini"

	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()

	path := filepath.Join(dir, name)
	err := os.WriteFile(path, []byte(content), 0o600)
	require.NoError(t, err)

	return path
}

// newTestConfig returns a configuration that never touches the real default
// files, plus the buffer receiving its diagnostics.
func newTestConfig(t *testing.T, opts ...config.Option) (*config.Configuration, *bytes.Buffer) {
	t.Helper()

	var buf bytes.Buffer

	logger := slog.New(slog.NewJSONHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	base := []config.Option{
		config.WithLogger(logger),
		config.WithOutput(io.Discard),
		config.WithDefaultFiles(filepath.Join(t.TempDir(), "missing")),
	}

	return config.New(append(base, opts...)...), &buf
}

// readString reads content as an INI configuration file.
func readString(t *testing.T, cfg *config.Configuration, content string) {
	t.Helper()

	cfg.Read(writeFile(t, t.TempDir(), "linkcheckerrc", content))
}

//nolint:ireturn // tests exercise the Parser contract.
func iniParser() config.Parser {
	return iniparser.NewParser()
}
