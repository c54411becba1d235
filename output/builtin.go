package output

import (
	"fmt"
	"io"
	"sync"
)

// Built-in logger type names.
const (
	TextType      = "text"
	HTMLType      = "html"
	GMLType       = "gml"
	SQLType       = "sql"
	CSVType       = "csv"
	BlacklistType = "blacklist"
	XMLType       = "xml"
	DotType       = "dot"
	NoneType      = "none"
)

const defaultColor = "default"

func builtinDefaults() map[string]Options {
	return map[string]Options{
		TextType: {
			"filename":     "linkchecker-out.txt",
			"colorparent":  defaultColor,
			"colorurl":     defaultColor,
			"colorname":    defaultColor,
			"colorreal":    defaultColor,
			"colorbase":    defaultColor,
			"colorvalid":   defaultColor,
			"colorinvalid": defaultColor,
			"colorinfo":    defaultColor,
			"colorwarning": defaultColor,
			"colordltime":  defaultColor,
			"colordlsize":  defaultColor,
			"colorreset":   defaultColor,
		},
		HTMLType: {
			"filename":        "linkchecker-out.html",
			"colorbackground": "#fff7e5",
			"colorurl":        "#dcd5cf",
			"colorborder":     "#000000",
			"colorlink":       "#191c83",
			"colorwarning":    "#e0954e",
			"colorerror":      "#db4930",
			"colorok":         "#3ba557",
		},
		GMLType: {
			"filename": "linkchecker-out.gml",
		},
		SQLType: {
			"filename":  "linkchecker-out.sql",
			"separator": ";",
			"dbname":    "linksdb",
		},
		CSVType: {
			"filename":  "linkchecker-out.csv",
			"separator": ",",
			"quotechar": `"`,
		},
		BlacklistType: {
			"filename": "~/.linkchecker/blacklist",
		},
		XMLType: {
			"filename": "linkchecker-out.xml",
		},
		DotType: {
			"filename": "linkchecker-out.dot",
			"encoding": "ascii",
		},
		NoneType: {},
	}
}

// Stream is a logger that writes every record as a "type: line" row.
type Stream struct {
	mu   sync.Mutex
	kind string
	opts Options
	w    io.Writer
}

// NewStream returns a Constructor for stream loggers of the given type writing to w.
func NewStream(kind string, w io.Writer) Constructor {
	return func(opts Options) (Logger, error) {
		return &Stream{kind: kind, opts: opts, w: w}, nil
	}
}

// Type returns the logger type.
func (s *Stream) Type() string {
	return s.kind
}

// Options returns a copy of the logger options.
func (s *Stream) Options() Options {
	return s.opts.Clone()
}

// Emit writes line to the underlying writer.
func (s *Stream) Emit(line string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, err := fmt.Fprintf(s.w, "%s: %s\n", s.kind, line)
	if err != nil {
		return fmt.Errorf("emitting %s record: %w", s.kind, err)
	}

	return nil
}

// Nop is the silent logger used for the "none" type.
type Nop struct {
	opts Options
}

// NewNop is the Constructor of the "none" type.
//
//nolint:ireturn // Constructor signature.
func NewNop(opts Options) (Logger, error) {
	return &Nop{opts: opts}, nil
}

// Type returns "none".
func (n *Nop) Type() string {
	return NoneType
}

// Options returns a copy of the logger options.
func (n *Nop) Options() Options {
	return n.opts.Clone()
}

// Emit discards line.
func (n *Nop) Emit(string) error {
	return nil
}
