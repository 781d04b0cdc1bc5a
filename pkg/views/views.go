// Package views holds the specialized renderers selected by the envelope
// title. Each view layers its own formatters over the base registry and
// delegates structure to the flexi dispatcher; unknown titles fall back to
// the generic path unchanged.
package views

import (
	"github.com/dkoosis/show/pkg/flexi"
	"github.com/dkoosis/show/pkg/renderable"
	"github.com/dkoosis/show/pkg/value"
)

// Context carries the per-invocation display configuration.
type Context struct {
	Width int
	Theme renderable.Theme
}

// Options are the extra top-level envelope fields, forwarded to the view.
type Options map[string]value.Value

// Str returns a string option or def when absent.
func (o Options) Str(key, def string) string {
	if v, ok := o[key]; ok && v.Kind() == value.String {
		return v.Text()
	}
	return def
}

// Int returns an integer option or def when absent.
func (o Options) Int(key string, def int) int {
	if v, ok := o[key]; ok && v.Kind() == value.Number {
		return int(v.Int())
	}
	return def
}

// RenderFunc renders one specialized view.
type RenderFunc func(ctx Context, values value.Value, opts Options) renderable.Renderable

// lookup matches an envelope title, exact match only.
func lookup(title string) (RenderFunc, bool) {
	switch title {
	case "Album", "Albums", "Music":
		return renderAlbum, true
	case "Pull Requests":
		return renderPullRequests, true
	case "Calendar":
		return renderCalendar, true
	case "Tasks":
		return renderTasks, true
	case "Hue lights":
		return renderHueLights, true
	default:
		return nil, false
	}
}

// Split breaks an envelope document into title, values, and leftover
// options. A document is an envelope only if it is an object with a
// string "title" and a "values" field.
func Split(doc value.Value) (title string, values value.Value, opts Options, ok bool) {
	if doc.Kind() != value.Object {
		return "", value.Value{}, nil, false
	}
	t, hasTitle := doc.Get("title")
	vals, hasValues := doc.Get("values")
	if !hasTitle || t.Kind() != value.String || !hasValues {
		return "", value.Value{}, nil, false
	}
	opts = make(Options)
	for _, k := range doc.Keys() {
		if k == "title" || k == "values" {
			continue
		}
		opts[k] = doc.Field(k)
	}
	return t.Text(), vals, opts, true
}

// Render renders a parsed document: envelopes with a known title go to
// their specialized view, everything else through the generic dispatcher.
func Render(doc value.Value, ctx Context) string {
	if title, vals, opts, isEnv := Split(doc); isEnv {
		if fn, known := lookup(title); known {
			return fn(ctx, vals, opts).Render()
		}
		// unrecognized title: generic rendering of the values
		return flexi.New(ctx.Width, ctx.Theme, nil).Render(vals, "").Render()
	}
	return flexi.New(ctx.Width, ctx.Theme, nil).Render(doc, "").Render()
}

// limited applies an optional "limit" envelope option to an array.
func limited(v value.Value, opts Options) value.Value {
	n := opts.Int("limit", 0)
	if n <= 0 || v.Kind() != value.Array || v.Len() <= n {
		return v
	}
	return value.Arr(v.Items()[:n]...)
}
