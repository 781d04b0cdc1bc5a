package views

import (
	"strings"

	"github.com/dkoosis/show/pkg/registry"
	"github.com/dkoosis/show/pkg/renderable"
	"github.com/dkoosis/show/pkg/value"
)

// renderCalendar renders events grouped by day as a tree: one branch per
// day in first-seen order, one leaf per event with its time range.
func renderCalendar(ctx Context, values value.Value, opts Options) renderable.Renderable {
	if values.Kind() != value.Array {
		return renderable.NewText(ctx.Theme.Value, values.String())
	}

	var dayOrder []string
	byDay := make(map[string][]value.Value)
	for _, ev := range values.Items() {
		if ev.Kind() != value.Object {
			continue
		}
		day := eventDay(ev)
		if _, seen := byDay[day]; !seen {
			dayOrder = append(dayOrder, day)
		}
		byDay[day] = append(byDay[day], ev)
	}

	nodes := make([]renderable.TreeNode, 0, len(dayOrder))
	for _, day := range dayOrder {
		node := renderable.TreeNode{Label: ctx.Theme.Accent.Render(day)}
		for _, ev := range byDay[day] {
			node.Children = append(node.Children, renderable.TreeNode{Label: eventLine(ctx, ev)})
		}
		nodes = append(nodes, node)
	}
	return renderable.NewTree(ctx.Theme, opts.Str("label", "Calendar"), nodes)
}

// eventDay picks the grouping label for an event: its date field, or the
// date part of its start time.
func eventDay(ev value.Value) string {
	if d := ev.Field("date"); d.Kind() == value.String {
		return d.Text()
	}
	if t, ok := registry.ParseTime(ev.Field("start")); ok {
		return t.Format("Mon Jan 2")
	}
	return "unscheduled"
}

// eventLine formats one event: "09:00–10:30  Standup @ Room 4".
func eventLine(ctx Context, ev value.Value) string {
	var sb strings.Builder
	if start, ok := registry.ParseTime(ev.Field("start")); ok {
		span := start.Format("15:04")
		if end, ok := registry.ParseTime(ev.Field("end")); ok {
			span += "–" + end.Format("15:04")
		}
		sb.WriteString(ctx.Theme.Muted.Render(span) + "  ")
	}
	sb.WriteString(eventName(ev))
	if loc := ev.Field("location"); loc.Kind() == value.String && loc.Text() != "" {
		sb.WriteString(ctx.Theme.Muted.Render(" @ " + loc.Text()))
	}
	return sb.String()
}

func eventName(ev value.Value) string {
	for _, k := range []string{"title", "summary", "name"} {
		if f := ev.Field(k); f.Kind() == value.String && f.Text() != "" {
			return f.Text()
		}
	}
	return "(untitled)"
}
