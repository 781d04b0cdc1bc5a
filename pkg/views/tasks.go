package views

import (
	"github.com/dkoosis/show/pkg/flexi"
	"github.com/dkoosis/show/pkg/registry"
	"github.com/dkoosis/show/pkg/renderable"
	"github.com/dkoosis/show/pkg/value"
)

// statusOrder fixes the section order for well-known task states; states
// outside this list follow in first-seen order.
var statusOrder = []string{"todo", "in_progress", "blocked", "done"}

// renderTasks renders a task list grouped into one table per status.
func renderTasks(ctx Context, values value.Value, opts Options) renderable.Renderable {
	reg := registry.Base().Extend(map[string]registry.Formatter{
		"priority": taskPriority,
		"assignee": hashedName,
		"project":  accentField,
	})
	e := flexi.New(ctx.Width, ctx.Theme, reg)

	values = limited(values, opts)
	if !values.AllObjects() {
		return e.Render(values, "Tasks")
	}

	groups := make(map[string][]value.Value)
	var order []string
	for _, s := range statusOrder {
		order = append(order, s)
		groups[s] = nil
	}
	for _, t := range values.Items() {
		s := t.Field("status").String()
		if _, known := groups[s]; !known {
			order = append(order, s)
		}
		groups[s] = append(groups[s], stripStatus(t))
	}

	var sections []renderable.Renderable
	for _, s := range order {
		if len(groups[s]) == 0 {
			continue
		}
		sections = append(sections, e.Render(value.Arr(groups[s]...), s))
	}
	if len(sections) == 0 {
		return renderable.NewText(ctx.Theme.Muted, "no tasks")
	}
	return renderable.NewStack(sections)
}

// stripStatus drops the status field from a task: the section heading
// already says it.
func stripStatus(t value.Value) value.Value {
	pairs := make([]value.Pair, 0, t.Len())
	for _, k := range t.Keys() {
		if k == "status" {
			continue
		}
		pairs = append(pairs, value.Pair{Key: k, Val: t.Field(k)})
	}
	return value.Obj(pairs...)
}

// taskPriority colors high/medium/low markers.
func taskPriority(v value.Value, ctx registry.Context) renderable.Renderable {
	s := v.String()
	switch s {
	case "high", "urgent", "1":
		return renderable.NewText(ctx.Theme.Bad, s)
	case "medium", "normal", "2":
		return renderable.NewText(ctx.Theme.Warn, s)
	case "low", "3":
		return renderable.NewText(ctx.Theme.Muted, s)
	default:
		return renderable.NewText(ctx.Theme.Value, s)
	}
}
