package views

import (
	"fmt"

	"github.com/dkoosis/show/pkg/flexi"
	"github.com/dkoosis/show/pkg/renderable"
	"github.com/dkoosis/show/pkg/value"
)

// maxBrightness is the Hue API brightness ceiling.
const maxBrightness = 254

// renderHueLights renders one panel per light: power state and a
// brightness bar. Accepts both the Hue API shape (id → light object with
// nested "state") and a flat array of lights. Panels pack side by side up
// to the console width.
func renderHueLights(ctx Context, values value.Value, opts Options) renderable.Renderable {
	e := flexi.New(ctx.Width, ctx.Theme, nil)

	var lights []value.Value
	switch values.Kind() {
	case value.Array:
		lights = values.Items()
	case value.Object:
		for _, id := range values.Keys() {
			lights = append(lights, values.Field(id))
		}
	default:
		return e.Render(values, "Hue lights")
	}

	panels := make([]renderable.Renderable, 0, len(lights))
	for _, l := range lights {
		if l.Kind() != value.Object {
			continue
		}
		panels = append(panels, lightPanel(ctx, l))
	}
	if len(panels) == 0 {
		return renderable.NewText(ctx.Theme.Muted, "no lights")
	}
	return e.Pack(panels)
}

func lightPanel(ctx Context, l value.Value) renderable.Renderable {
	state := l
	if s := l.Field("state"); s.Kind() == value.Object {
		state = s
	}

	power := ctx.Theme.Muted.Render("○ off")
	if state.Field("on").BoolVal() {
		power = ctx.Theme.Good.Render("● on")
	}

	rows := []renderable.KVRow{{Key: "power", Val: power}}
	if bri := state.Field("bri"); bri.Kind() == value.Number {
		bar := renderable.NewBar(ctx.Theme, bri.Float()/maxBrightness, 10)
		pct := fmt.Sprintf(" %d%%", int(bri.Float()/maxBrightness*100+0.5))
		rows = append(rows, renderable.KVRow{Key: "bri", Val: bar.Render() + ctx.Theme.Muted.Render(pct)})
	}
	if room := l.Field("room"); room.Kind() == value.String && room.Text() != "" {
		rows = append(rows, renderable.KVRow{Key: "room", Val: ctx.Theme.Accent.Render(room.Text())})
	}

	name := l.Field("name").String()
	return renderable.NewPanel(ctx.Theme, name, renderable.NewKV(ctx.Theme, rows).Render())
}
