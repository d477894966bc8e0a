package writers

import (
	"fmt"
	"io"
	"sort"
)

// Matrix is the read surface writers need.
type Matrix interface {
	N() int
	Row(i int) []uint32
}

// Options configures a matrix writer.
type Options struct {
	Label string // first header cell
	Sep   byte   // field separator for text formats
	Mode  Mode
}

// WriteFunc serializes m, whose rows are labelled by ids in load order.
type WriteFunc func(w io.Writer, m Matrix, ids []string, opt Options) error

// formats maps output names to writers. Register from init() blocks.
var formats = map[string]WriteFunc{}

// Register installs fn for format (last wins).
func Register(format string, fn WriteFunc) { formats[format] = fn }

// Formats lists registered format names.
func Formats() []string {
	out := make([]string, 0, len(formats))
	for k := range formats {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}

// Write dispatches to the writer registered for format.
func Write(format string, w io.Writer, m Matrix, ids []string, opt Options) error {
	fn, ok := formats[format]
	if !ok {
		return fmt.Errorf("unknown output format %q (no writer registered)", format)
	}
	if len(ids) != m.N() {
		return fmt.Errorf("%d sample IDs for a %dx%d matrix", len(ids), m.N(), m.N())
	}
	if opt.Mode == 0 {
		opt.Mode = ModeFull
	}
	return fn(w, m, ids, opt)
}
