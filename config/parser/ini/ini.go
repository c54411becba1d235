package ini

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/0xalexb/linkcfg/config/document"

	"gopkg.in/ini.v1"
)

// LoadOptions are the gopkg.in/ini.v1 options used for reading. The config
// writer uses the same options so that written files parse back identically.
// Values are kept verbatim: no line continuation, no quote stripping. Inline
// comments are handled by StripInlineComment instead of the library.
//
//nolint:gochecknoglobals // read-only parser settings shared with the writer.
var LoadOptions = ini.LoadOptions{
	InsensitiveKeys:         true,
	IgnoreInlineComment:     true,
	IgnoreContinuation:      true,
	PreserveSurroundedQuote: true,
}

// Parser implements config.Parser interface for INI data.
type Parser struct{}

// NewParser creates a new INI parser instance.
func NewParser() *Parser {
	return &Parser{}
}

// Parse parses INI data into a document. Empty data yields an empty document.
func (p *Parser) Parse(data []byte) (*document.Document, error) {
	file, err := ini.LoadSources(LoadOptions, data)
	if err != nil {
		return nil, fmt.Errorf("parsing ini: %w", err)
	}

	doc := document.New()

	for _, section := range file.Sections() {
		if section.Name() == ini.DefaultSection && len(section.Keys()) == 0 {
			continue
		}

		doc.AddSection(section.Name())

		for _, key := range section.Keys() {
			doc.Set(section.Name(), key.Name(), StripInlineComment(key.String()))
		}
	}

	return doc, nil
}

// StripInlineComment removes a trailing comment that starts with ';' preceded
// by whitespace, e.g. "5 ; tuned" becomes "5". A ';' inside a token is kept.
func StripInlineComment(value string) string {
	for i := 1; i < len(value); i++ {
		if value[i] == ';' && unicode.IsSpace(rune(value[i-1])) {
			return strings.TrimRightFunc(value[:i], unicode.IsSpace)
		}
	}

	return value
}
