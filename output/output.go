package output

import (
	"errors"
	"fmt"
	"io"
	"os"
	"slices"
	"strings"
	"sync"

	"dario.cat/mergo"
)

// ErrUnknownType is returned when a logger type is not registered.
var ErrUnknownType = errors.New("unknown logger type")

// ErrEmptyName is returned when registering a type without a name.
var ErrEmptyName = errors.New("logger type name must not be empty")

// ErrNilConstructor is returned when registering a type without a constructor.
var ErrNilConstructor = errors.New("logger constructor must not be nil")

// FieldsOption is the option key holding the comma separated list of output fields.
const FieldsOption = "fields"

// FileOutputOption is the override set on loggers created for file output.
const FileOutputOption = "fileoutput"

// Options maps option names to raw string values.
type Options map[string]string

// Fields returns the fields option as a trimmed list.
func (o Options) Fields() []string {
	raw, ok := o[FieldsOption]
	if !ok {
		return nil
	}

	return SplitList(raw)
}

// Clone returns a copy of the options.
func (o Options) Clone() Options {
	result := make(Options, len(o))
	for key, value := range o {
		result[key] = value
	}

	return result
}

// SplitList splits a comma separated list and trims every element.
// Empty elements are dropped.
func SplitList(raw string) []string {
	parts := strings.Split(raw, ",")
	result := make([]string, 0, len(parts))

	for _, part := range parts {
		part = strings.TrimSpace(part)
		if part != "" {
			result = append(result, part)
		}
	}

	return result
}

// Logger emits check results.
type Logger interface {
	// Type returns the registered type name the logger was created from.
	Type() string
	// Options returns the merged options the logger was created with.
	Options() Options
	// Emit writes a single output record.
	Emit(line string) error
}

// Constructor creates a logger from merged options.
type Constructor func(opts Options) (Logger, error)

type descriptor struct {
	constructor Constructor
	defaults    Options
}

// Registry maps logger type names to constructors and default options.
type Registry struct {
	mu    sync.RWMutex
	types map[string]*descriptor
}

// NewRegistry creates a registry with the built-in types. Built-in loggers
// write to w; a nil w means os.Stdout.
func NewRegistry(w io.Writer) *Registry {
	if w == nil {
		w = os.Stdout
	}

	registry := &Registry{types: make(map[string]*descriptor)}

	for name, defaults := range builtinDefaults() {
		constructor := NewStream(name, w)
		if name == NoneType {
			constructor = NewNop
		}

		registry.types[name] = &descriptor{constructor: constructor, defaults: defaults}
	}

	return registry
}

// Register adds a logger type or replaces an existing one.
func (r *Registry) Register(name string, constructor Constructor, defaults Options) error {
	if name == "" {
		return ErrEmptyName
	}

	if constructor == nil {
		return fmt.Errorf("type %q: %w", name, ErrNilConstructor)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	r.types[name] = &descriptor{constructor: constructor, defaults: defaults.Clone()}

	return nil
}

// Instantiate creates a logger of the given type. Overrides win over the
// type's default options key for key.
//
//nolint:ireturn // Logger is the collaborator contract.
func (r *Registry) Instantiate(name string, overrides Options) (Logger, error) {
	r.mu.RLock()
	desc, ok := r.types[name]

	var merged Options

	if ok {
		merged = desc.defaults.Clone()
	}
	r.mu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownType, name)
	}

	if len(overrides) > 0 {
		err := mergo.Merge(&merged, overrides, mergo.WithOverride)
		if err != nil {
			return nil, fmt.Errorf("merging options for %q: %w", name, err)
		}
	}

	logger, err := desc.constructor(merged)
	if err != nil {
		return nil, fmt.Errorf("creating %q logger: %w", name, err)
	}

	return logger, nil
}

// Has reports whether a type is registered.
func (r *Registry) Has(name string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()

	_, ok := r.types[name]

	return ok
}

// Names returns the registered type names in sorted order.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.types))
	for name := range r.types {
		names = append(names, name)
	}

	slices.Sort(names)

	return names
}

// Options returns a copy of the current default options of a type.
func (r *Registry) Options(name string) (Options, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	desc, ok := r.types[name]
	if !ok {
		return nil, false
	}

	return desc.defaults.Clone(), true
}

// SetOption sets a default option of a registered type.
func (r *Registry) SetOption(name, key, value string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	desc, ok := r.types[name]
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnknownType, name)
	}

	if desc.defaults == nil {
		desc.defaults = make(Options)
	}

	desc.defaults[key] = value

	return nil
}
