package output_test

import (
	"bytes"
	"errors"
	"fmt"
	"sync"
	"testing"

	"github.com/0xalexb/linkcfg/output"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRegistry_BuiltinTypes(t *testing.T) {
	t.Parallel()

	registry := output.NewRegistry(nil)

	assert.Equal(t,
		[]string{"blacklist", "csv", "dot", "gml", "html", "none", "sql", "text", "xml"},
		registry.Names(),
	)

	opts, ok := registry.Options(output.NoneType)
	require.True(t, ok)
	assert.Empty(t, opts)
}

func TestRegistry_Instantiate_Defaults(t *testing.T) {
	t.Parallel()

	registry := output.NewRegistry(&bytes.Buffer{})

	logger, err := registry.Instantiate(output.TextType, output.Options{})
	require.NoError(t, err)
	assert.Equal(t, output.TextType, logger.Type())
	assert.Equal(t, "linkchecker-out.txt", logger.Options()["filename"])
	assert.Equal(t, "default", logger.Options()["colorurl"])
}

func TestRegistry_Instantiate_OverridesWin(t *testing.T) {
	t.Parallel()

	registry := output.NewRegistry(&bytes.Buffer{})

	logger, err := registry.Instantiate(output.CSVType, output.Options{
		"filename":               "report.csv",
		output.FileOutputOption: "1",
	})
	require.NoError(t, err)

	opts := logger.Options()
	assert.Equal(t, "report.csv", opts["filename"])
	assert.Equal(t, "1", opts[output.FileOutputOption])
	assert.Equal(t, ",", opts["separator"])

	defaults, ok := registry.Options(output.CSVType)
	require.True(t, ok)
	assert.Equal(t, "linkchecker-out.csv", defaults["filename"], "defaults must not change")
	assert.NotContains(t, defaults, output.FileOutputOption)
}

func TestRegistry_Instantiate_UnknownType(t *testing.T) {
	t.Parallel()

	registry := output.NewRegistry(nil)

	logger, err := registry.Instantiate("nosuch", nil)
	require.ErrorIs(t, err, output.ErrUnknownType)
	assert.Nil(t, logger)
}

func TestRegistry_Instantiate_ConstructorError(t *testing.T) {
	t.Parallel()

	registry := output.NewRegistry(nil)
	ctorErr := errors.New("boom")

	err := registry.Register("broken", func(output.Options) (output.Logger, error) {
		return nil, ctorErr
	}, nil)
	require.NoError(t, err)

	_, err = registry.Instantiate("broken", nil)
	require.ErrorIs(t, err, ctorErr)
}

func TestRegistry_Register(t *testing.T) {
	t.Parallel()

	registry := output.NewRegistry(nil)

	var captured output.Options

	err := registry.Register("custom", func(opts output.Options) (output.Logger, error) {
		captured = opts

		return output.NewNop(opts)
	}, output.Options{"filename": "custom.out"})
	require.NoError(t, err)
	assert.True(t, registry.Has("custom"))

	_, err = registry.Instantiate("custom", output.Options{"extra": "x"})
	require.NoError(t, err)
	assert.Equal(t, output.Options{"filename": "custom.out", "extra": "x"}, captured)
}

func TestRegistry_Register_Errors(t *testing.T) {
	t.Parallel()

	registry := output.NewRegistry(nil)

	err := registry.Register("", output.NewNop, nil)
	require.ErrorIs(t, err, output.ErrEmptyName)

	err = registry.Register("x", nil, nil)
	require.ErrorIs(t, err, output.ErrNilConstructor)
}

func TestRegistry_Register_Overwrites(t *testing.T) {
	t.Parallel()

	registry := output.NewRegistry(nil)

	err := registry.Register(output.TextType, output.NewNop, output.Options{"filename": "other.txt"})
	require.NoError(t, err)

	logger, err := registry.Instantiate(output.TextType, nil)
	require.NoError(t, err)
	assert.Equal(t, output.NoneType, logger.Type())
	assert.Equal(t, "other.txt", logger.Options()["filename"])
}

func TestRegistry_SetOption(t *testing.T) {
	t.Parallel()

	registry := output.NewRegistry(nil)

	require.NoError(t, registry.SetOption(output.NoneType, "filename", "x"))

	opts, ok := registry.Options(output.NoneType)
	require.True(t, ok)
	assert.Equal(t, "x", opts["filename"])

	err := registry.SetOption("nosuch", "a", "b")
	require.ErrorIs(t, err, output.ErrUnknownType)
}

func TestRegistry_ConcurrentRegistration(t *testing.T) {
	t.Parallel()

	registry := output.NewRegistry(nil)

	var wg sync.WaitGroup

	for i := 0; i < 20; i++ {
		i := i

		wg.Add(1)

		go func() {
			defer wg.Done()

			name := fmt.Sprintf("plugin%d", i)
			assert.NoError(t, registry.Register(name, output.NewNop, nil))
			_, err := registry.Instantiate(output.TextType, nil)
			assert.NoError(t, err)
		}()
	}

	wg.Wait()
	assert.Len(t, registry.Names(), 29)
}

func TestStream_Emit(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer

	registry := output.NewRegistry(&buf)

	logger, err := registry.Instantiate(output.XMLType, nil)
	require.NoError(t, err)
	require.NoError(t, logger.Emit("checked http://example.com/"))
	assert.Equal(t, "xml: checked http://example.com/\n", buf.String())

	nop, err := registry.Instantiate(output.NoneType, nil)
	require.NoError(t, err)
	require.NoError(t, nop.Emit("dropped"))
	assert.Equal(t, "xml: checked http://example.com/\n", buf.String())
}

func TestOptions_Fields(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		opts     output.Options
		expected []string
	}{
		{name: "missing", opts: output.Options{}, expected: nil},
		{name: "single", opts: output.Options{"fields": "url"}, expected: []string{"url"}},
		{name: "trimmed", opts: output.Options{"fields": " url , name,info "}, expected: []string{"url", "name", "info"}},
		{name: "empty elements dropped", opts: output.Options{"fields": "url,,name,"}, expected: []string{"url", "name"}},
	}

	for _, tt := range tests {
		tt := tt

		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.expected, tt.opts.Fields())
		})
	}
}
