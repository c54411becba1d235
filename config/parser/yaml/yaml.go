package yaml

import (
	"errors"
	"fmt"
	"strings"

	"github.com/0xalexb/linkcfg/config/document"

	"github.com/goccy/go-yaml"
)

// ErrNotMapping is returned when a section or the document root is not a mapping.
var ErrNotMapping = errors.New("not a mapping")

// ErrNestedValue is returned when an option value is itself a mapping or a nested sequence.
var ErrNestedValue = errors.New("nested values are not supported")

// Parser implements config.Parser interface for YAML data.
type Parser struct{}

// NewParser creates a new YAML parser instance.
func NewParser() *Parser {
	return &Parser{}
}

// Parse parses YAML data into a document. Empty data yields an empty document.
func (p *Parser) Parse(data []byte) (*document.Document, error) {
	doc := document.New()

	if len(strings.TrimSpace(string(data))) == 0 {
		return doc, nil
	}

	var root yaml.MapSlice

	err := yaml.UnmarshalWithOptions(data, &root, yaml.UseOrderedMap())
	if err != nil {
		return nil, fmt.Errorf("unmarshal error: %w", err)
	}

	for _, item := range root {
		name := fmt.Sprint(item.Key)

		err := addSection(doc, name, item.Value)
		if err != nil {
			return nil, err
		}
	}

	return doc, nil
}

func addSection(doc *document.Document, name string, value any) error {
	doc.AddSection(name)

	if value == nil {
		return nil
	}

	options, ok := value.(yaml.MapSlice)
	if !ok {
		return fmt.Errorf("section %q: %w", name, ErrNotMapping)
	}

	for _, option := range options {
		key := fmt.Sprint(option.Key)

		raw, err := scalarString(option.Value)
		if err != nil {
			return fmt.Errorf("section %q key %q: %w", name, key, err)
		}

		doc.Set(name, key, raw)
	}

	return nil
}

func scalarString(value any) (string, error) {
	switch typed := value.(type) {
	case nil:
		return "", nil
	case string:
		return typed, nil
	case yaml.MapSlice, map[string]any:
		return "", ErrNestedValue
	case []any:
		parts := make([]string, 0, len(typed))

		for _, elem := range typed {
			switch elem.(type) {
			case []any, yaml.MapSlice, map[string]any:
				return "", ErrNestedValue
			}

			parts = append(parts, fmt.Sprint(elem))
		}

		return strings.Join(parts, ", "), nil
	default:
		return fmt.Sprint(typed), nil
	}
}
