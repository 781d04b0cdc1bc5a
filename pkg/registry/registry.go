// Package registry maps field names to formatting functions. The
// dispatcher consults it for every scalar that carries a header; a hit is
// terminal (its result is never dispatched again), a miss falls back to
// plain stringification.
//
// Registries are immutable. A view that wants domain formatters calls
// Extend, which layers new entries over the receiver without touching it,
// so concurrent or repeated renders never observe each other's overlays.
package registry

import (
	"github.com/dkoosis/show/pkg/renderable"
	"github.com/dkoosis/show/pkg/value"
)

// Context carries per-render state into formatters.
type Context struct {
	Theme   renderable.Theme
	Palette *Palette
	Width   int // console width, for formatters that wrap
}

// Formatter turns a field value into a finished renderable. Results are
// terminal: the dispatcher never recurses into them.
type Formatter func(v value.Value, ctx Context) renderable.Renderable

// Registry is an immutable layered lookup table.
type Registry struct {
	parent  *Registry
	entries map[string]Formatter
}

// New builds a registry from the given entries.
func New(entries map[string]Formatter) *Registry {
	return &Registry{entries: entries}
}

// Extend returns a new registry layering entries over r. Later layers win.
func (r *Registry) Extend(entries map[string]Formatter) *Registry {
	return &Registry{parent: r, entries: entries}
}

// Lookup finds the formatter for a field name, innermost layer first.
func (r *Registry) Lookup(name string) (Formatter, bool) {
	for reg := r; reg != nil; reg = reg.parent {
		if f, ok := reg.entries[name]; ok {
			return f, true
		}
	}
	return nil, false
}
