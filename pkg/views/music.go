package views

import (
	"fmt"
	"strings"

	"github.com/dkoosis/show/pkg/flexi"
	"github.com/dkoosis/show/pkg/registry"
	"github.com/dkoosis/show/pkg/renderable"
	"github.com/dkoosis/show/pkg/value"
)

// renderAlbum renders a music library entry: album metadata plus a track
// table. Track lengths come as seconds, ratings as 0-5.
func renderAlbum(ctx Context, values value.Value, opts Options) renderable.Renderable {
	reg := registry.Base().Extend(map[string]registry.Formatter{
		"length":   trackLength,
		"duration": trackLength,
		"rating":   starRating,
		"artist":   accentField,
		"album":    accentField,
	})
	e := flexi.New(ctx.Width, ctx.Theme, reg)

	title := opts.Str("artist", "")
	if title == "" {
		title = "Album"
	}
	return e.Render(limited(values, opts), title)
}

// trackLength renders seconds as m:ss.
func trackLength(v value.Value, ctx registry.Context) renderable.Renderable {
	if v.Kind() != value.Number {
		return renderable.NewText(ctx.Theme.Value, v.String())
	}
	sec := v.Int()
	return renderable.NewText(ctx.Theme.Value, fmt.Sprintf("%d:%02d", sec/60, sec%60))
}

// starRating renders a 0-5 rating as filled and empty stars.
func starRating(v value.Value, ctx registry.Context) renderable.Renderable {
	if v.Kind() != value.Number {
		return renderable.NewText(ctx.Theme.Value, v.String())
	}
	n := int(v.Float() + 0.5)
	if n < 0 {
		n = 0
	}
	if n > 5 {
		n = 5
	}
	return renderable.NewText(ctx.Theme.Warn, strings.Repeat("★", n)+strings.Repeat("☆", 5-n))
}

func accentField(v value.Value, ctx registry.Context) renderable.Renderable {
	return renderable.NewText(ctx.Theme.Accent, v.String())
}
