package views

import (
	"fmt"

	"github.com/dkoosis/show/pkg/flexi"
	"github.com/dkoosis/show/pkg/registry"
	"github.com/dkoosis/show/pkg/renderable"
	"github.com/dkoosis/show/pkg/value"
)

// renderPullRequests renders a PR list: state icons, diff stats in
// addition/deletion colors, authors and branches in stable hashed colors,
// timestamps relative.
func renderPullRequests(ctx Context, values value.Value, opts Options) renderable.Renderable {
	reg := registry.Base().Extend(map[string]registry.Formatter{
		"number":    prNumber,
		"additions": diffAdditions,
		"deletions": diffDeletions,
		"author":    hashedName,
		"user":      hashedName,
		"assignee":  hashedName,
		"branch":    accentField,
		"head":      accentField,
		"base":      accentField,
		"draft":     draftFlag,
	})
	e := flexi.New(ctx.Width, ctx.Theme, reg)
	return e.Render(limited(values, opts), "Pull Requests")
}

func prNumber(v value.Value, ctx registry.Context) renderable.Renderable {
	if v.Kind() == value.Number {
		return renderable.NewText(ctx.Theme.Muted, fmt.Sprintf("#%d", v.Int()))
	}
	return renderable.NewText(ctx.Theme.Muted, v.String())
}

func diffAdditions(v value.Value, ctx registry.Context) renderable.Renderable {
	return renderable.NewText(ctx.Theme.Good, "+"+v.String())
}

func diffDeletions(v value.Value, ctx registry.Context) renderable.Renderable {
	return renderable.NewText(ctx.Theme.Bad, "-"+v.String())
}

// hashedName colors an identifier by a hash of its own text, so the same
// author lines up across rows and invocations.
func hashedName(v value.Value, ctx registry.Context) renderable.Renderable {
	s := v.String()
	return renderable.NewText(ctx.Palette.Style(s), s)
}

func draftFlag(v value.Value, ctx registry.Context) renderable.Renderable {
	if v.BoolVal() {
		return renderable.NewText(ctx.Theme.Muted, "draft")
	}
	return renderable.NewText(ctx.Theme.Value, "")
}
