// Package flexi is the recursive shape dispatcher: it inspects a value,
// picks a visual representation, recurses into children, and packs sibling
// renderables into width-constrained lines.
//
// Dispatch precedence, most specific first:
//
//  1. scalar            — registry formatter by header, else plain text
//  2. array of strings  — inline hash-colored tokens
//  3. counts array      — label/count/bar table
//  4. array of objects  — key-union grid, or stacked panels when wide
//  5. any other array   — per-element recursion, flattened
//  6. object            — key/value rows plus nested blocks, row-packed
//
// Pre-rendered artifacts never re-enter the dispatcher: formatter results
// are terminal by contract, and renderable values are a separate type that
// Render does not accept.
package flexi

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/dkoosis/show/pkg/registry"
	"github.com/dkoosis/show/pkg/renderable"
	"github.com/dkoosis/show/pkg/value"
)

// wideKeyThreshold is the key-union size at which an array of objects
// stops being a grid and becomes stacked per-element panels.
const wideKeyThreshold = 15

// Engine renders one document. It owns the console width, theme, registry
// and color cache for the pass; nothing here is global.
type Engine struct {
	width   int
	theme   renderable.Theme
	reg     *registry.Registry
	palette *registry.Palette
	num     *message.Printer
	titler  cases.Caser
}

// New builds an engine. A zero width defaults to 80; a nil registry means
// the base registry.
func New(width int, theme renderable.Theme, reg *registry.Registry) *Engine {
	if width <= 0 {
		width = 80
	}
	if reg == nil {
		reg = registry.Base()
	}
	return &Engine{
		width:   width,
		theme:   theme,
		reg:     reg,
		palette: registry.NewPalette(theme.Colorize),
		num:     message.NewPrinter(language.English),
		titler:  cases.Title(language.English),
	}
}

// Width returns the console width for this pass.
func (e *Engine) Width() int { return e.width }

// Theme returns the engine's theme.
func (e *Engine) Theme() renderable.Theme { return e.theme }

// Ctx returns the formatter context for this pass.
func (e *Engine) Ctx() registry.Context {
	return registry.Context{Theme: e.theme, Palette: e.palette, Width: e.width}
}

// Render dispatches on the shape of v. header is the field name v was
// found under, or "" at the top level.
func (e *Engine) Render(v value.Value, header string) renderable.Renderable {
	switch v.Kind() {
	case value.Array:
		return e.renderArray(v, header)
	case value.Object:
		return e.renderObject(v, header)
	default:
		return e.renderScalar(v, header)
	}
}

func (e *Engine) renderScalar(v value.Value, header string) renderable.Renderable {
	if header != "" {
		if f, ok := e.reg.Lookup(header); ok {
			return f(v, e.Ctx())
		}
	}
	return renderable.NewText(e.theme.Value, v.String())
}

func (e *Engine) renderArray(v value.Value, header string) renderable.Renderable {
	switch {
	case v.Len() == 0:
		return renderable.NewText(e.theme.Value, "")
	case v.AllScalars():
		return e.renderTokens(v)
	default:
		if countKey, ok := countsShape(v); ok {
			return e.renderCounts(v, header, countKey)
		}
		if v.AllObjects() {
			return e.renderObjectArray(v, header)
		}
		return e.renderMixedArray(v, header)
	}
}

// renderTokens renders a scalar array as inline tokens, each colored by a
// hash of its own text, space separated. Tag-like lists read better as a
// colored sequence than as a one-column table.
func (e *Engine) renderTokens(v value.Value) renderable.Renderable {
	parts := make([]string, 0, v.Len())
	for _, it := range v.Items() {
		if it.Kind() == value.Null {
			continue
		}
		s := it.String()
		parts = append(parts, e.palette.Style(s).Render(s))
	}
	return renderable.NewRawText(strings.Join(parts, " "))
}

// renderObjectArray renders a homogeneous object array as a grid over the
// key union, or as stacked panels when the union is too wide to read.
func (e *Engine) renderObjectArray(v value.Value, header string) renderable.Renderable {
	keys := KeyUnion(v)
	if len(keys) == 0 {
		return renderable.NewText(e.theme.Value, "")
	}
	if len(keys) >= wideKeyThreshold {
		items := make([]renderable.Renderable, 0, v.Len())
		for _, el := range v.Items() {
			inner := e.renderObject(el, "")
			items = append(items, renderable.NewPanel(e.theme, elementTitle(el), inner.Render()))
		}
		return renderable.NewStack(items)
	}

	headers := make([]string, len(keys))
	for i, k := range keys {
		headers[i] = e.headerTitle(k)
	}
	rows := make([][]string, 0, v.Len())
	for _, el := range v.Items() {
		row := make([]string, len(keys))
		for i, k := range keys {
			cell := el.Field(k)
			if cell.IsAbsent() {
				continue
			}
			row[i] = e.Render(cell, k).Render()
		}
		rows = append(rows, row)
	}
	return renderable.NewGrid(e.theme, e.headerTitle(header), headers, rows)
}

// renderMixedArray recurses per element, skipping nulls and splicing
// nested groups flat.
func (e *Engine) renderMixedArray(v value.Value, header string) renderable.Renderable {
	var items []renderable.Renderable
	for _, el := range v.Items() {
		if el.Kind() == value.Null {
			continue
		}
		r := e.Render(el, header)
		if g, ok := r.(renderable.Group); ok {
			items = append(items, g.Items()...)
		} else {
			items = append(items, r)
		}
	}
	return renderable.NewGroup(items)
}

func (e *Engine) renderObject(v value.Value, header string) renderable.Renderable {
	var rows []renderable.KVRow
	var blocks []renderable.Renderable
	for _, key := range v.Keys() {
		val := v.Field(key)
		if val.IsAbsent() {
			continue
		}
		r := e.Render(val, key)
		switch t := r.(type) {
		case renderable.Group:
			blocks = append(blocks, t.Items()...)
		case renderable.Grid, renderable.Panel, renderable.Tree,
			renderable.BarTable, renderable.Stack, renderable.Columns, renderable.KV:
			blocks = append(blocks, t)
		default:
			rows = append(rows, renderable.KVRow{Key: key, Val: r.Render()})
		}
	}

	items := make([]renderable.Renderable, 0, 1+len(blocks))
	if len(rows) > 0 {
		items = append(items, renderable.NewKV(e.theme, rows))
	}
	items = append(items, blocks...)
	packed := e.Pack(items)
	if header != "" {
		return renderable.NewPanel(e.theme, e.headerTitle(header), packed.Render())
	}
	return packed
}

// Pack groups sibling renderables into lines by greedy first-fit on
// measured width: accumulate while the running width sum stays at or
// under the console width, close the line when the next item would
// exceed it. First-fit only, no backtracking — output stability depends
// on this exact behavior. An item wider than the console gets a line of
// its own rather than being truncated.
func (e *Engine) Pack(items []renderable.Renderable) renderable.Renderable {
	switch len(items) {
	case 0:
		return renderable.NewText(e.theme.Value, "")
	case 1:
		return items[0]
	}

	var lines []renderable.Renderable
	var current []renderable.Renderable
	run := 0
	for _, it := range items {
		w := it.Width()
		if len(current) > 0 && run+w > e.width {
			lines = append(lines, closeLine(current))
			current, run = nil, 0
		}
		current = append(current, it)
		run += w
	}
	lines = append(lines, closeLine(current))

	if len(lines) == 1 {
		return lines[0]
	}
	return renderable.NewStack(lines)
}

func closeLine(items []renderable.Renderable) renderable.Renderable {
	if len(items) == 1 {
		return items[0]
	}
	return renderable.NewColumns(items)
}

// KeyUnion returns the first-seen-order union of keys across all elements
// of an object array, keeping a key only if some element holds a
// non-absent value for it.
func KeyUnion(v value.Value) []string {
	var keys []string
	seen := make(map[string]bool)
	kept := make(map[string]bool)
	for _, el := range v.Items() {
		for _, k := range el.Keys() {
			if !seen[k] {
				seen[k] = true
				keys = append(keys, k)
			}
			if !kept[k] && !el.Field(k).IsAbsent() {
				kept[k] = true
			}
		}
	}
	out := keys[:0]
	for _, k := range keys {
		if kept[k] {
			out = append(out, k)
		}
	}
	return out
}

// headerTitle turns a field name into a display label: underscores to
// spaces, title case.
func (e *Engine) headerTitle(key string) string {
	if key == "" {
		return ""
	}
	return e.titler.String(strings.ReplaceAll(key, "_", " "))
}

// elementTitle picks a panel title for an object rendered standalone.
func elementTitle(el value.Value) string {
	for _, k := range []string{"name", "title", "id"} {
		if f := el.Field(k); !f.IsAbsent() && f.IsScalar() {
			return f.String()
		}
	}
	return ""
}
