package registry

import (
	"fmt"
	"time"

	"github.com/charmbracelet/glamour"
	humanize "github.com/dustin/go-humanize"

	"github.com/dkoosis/show/pkg/renderable"
	"github.com/dkoosis/show/pkg/value"
)

// Base returns the default formatter set shared by every renderer. Views
// layer their own entries on top via Extend.
func Base() *Registry {
	entries := map[string]Formatter{
		"body":        MarkdownField,
		"description": MarkdownField,
		"notes":       MarkdownField,
		"state":       StatusField,
		"status":      StatusField,
		"size":        ByteSizeField,
		"bytes":       ByteSizeField,
		"duration":    DurationField,
		"elapsed":     DurationField,
	}
	for _, name := range []string{"created_at", "updated_at", "merged_at", "closed_at", "due", "date", "timestamp", "last_seen"} {
		entries[name] = TimeField
	}
	for _, name := range []string{"url", "html_url", "link", "homepage"} {
		entries[name] = linkField
	}
	for _, name := range []string{"done", "enabled", "verified", "private"} {
		entries[name] = CheckField
	}
	return New(entries)
}

// CheckField renders booleans as check marks. Non-bools pass through.
func CheckField(v value.Value, ctx Context) renderable.Renderable {
	if v.Kind() != value.Bool {
		return renderable.NewText(ctx.Theme.Value, v.String())
	}
	if v.BoolVal() {
		return renderable.NewText(ctx.Theme.Good, "✓")
	}
	return renderable.NewText(ctx.Theme.Muted, "✗")
}

// TimeField renders unix timestamps and RFC3339 strings as relative times
// ("3 hours ago"). Unparseable values pass through as plain text.
func TimeField(v value.Value, ctx Context) renderable.Renderable {
	if t, ok := ParseTime(v); ok {
		return renderable.NewText(ctx.Theme.Muted, humanize.Time(t))
	}
	return renderable.NewText(ctx.Theme.Value, v.String())
}

// ParseTime extracts a time from a unix-epoch number or an RFC3339 /
// date-only string.
func ParseTime(v value.Value) (time.Time, bool) {
	switch v.Kind() {
	case value.Number:
		sec := v.Int()
		if sec <= 0 {
			return time.Time{}, false
		}
		return time.Unix(sec, 0), true
	case value.String:
		s := v.Text()
		if t, err := time.Parse(time.RFC3339, s); err == nil {
			return t, true
		}
		if t, err := time.Parse("2006-01-02", s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// DurationField renders a seconds count as "1h 04m 05s".
func DurationField(v value.Value, ctx Context) renderable.Renderable {
	if v.Kind() != value.Number {
		return renderable.NewText(ctx.Theme.Value, v.String())
	}
	return renderable.NewText(ctx.Theme.Value, FormatSeconds(v.Float()))
}

// FormatSeconds renders a seconds count compactly: 42s, 4m 05s, 1h 04m.
func FormatSeconds(sec float64) string {
	d := time.Duration(sec * float64(time.Second)).Round(time.Second)
	h := int(d.Hours())
	m := int(d.Minutes()) % 60
	s := int(d.Seconds()) % 60
	switch {
	case h > 0:
		return fmt.Sprintf("%dh %02dm", h, m)
	case m > 0:
		return fmt.Sprintf("%dm %02ds", m, s)
	default:
		return fmt.Sprintf("%ds", s)
	}
}

// ByteSizeField renders a byte count in IEC units.
func ByteSizeField(v value.Value, ctx Context) renderable.Renderable {
	if v.Kind() != value.Number || v.Float() < 0 {
		return renderable.NewText(ctx.Theme.Value, v.String())
	}
	return renderable.NewText(ctx.Theme.Value, humanize.IBytes(uint64(v.Float())))
}

// StatusField renders common state strings with an icon and color.
func StatusField(v value.Value, ctx Context) renderable.Renderable {
	s := v.String()
	switch s {
	case "open", "active", "on", "done", "success", "completed":
		return renderable.NewText(ctx.Theme.Good, "● "+s)
	case "closed", "failed", "error", "off", "blocked":
		return renderable.NewText(ctx.Theme.Bad, "● "+s)
	case "merged", "pending", "in_progress", "waiting":
		return renderable.NewText(ctx.Theme.Warn, "● "+s)
	default:
		return renderable.NewText(ctx.Theme.Value, s)
	}
}

func linkField(v value.Value, ctx Context) renderable.Renderable {
	return renderable.NewText(ctx.Theme.Muted.Underline(true), v.String())
}

// MarkdownField renders a markdown string through glamour inside a panel.
// Render failures degrade to the raw text rather than erroring: formatter
// misses and failures must never abort a render.
func MarkdownField(v value.Value, ctx Context) renderable.Renderable {
	src := v.String()
	wrap := ctx.Width - 8
	if wrap > 80 {
		wrap = 80
	}
	if wrap < 20 {
		wrap = 20
	}
	body := src
	if ctx.Theme.Colorize {
		if r, err := glamour.NewTermRenderer(glamour.WithAutoStyle(), glamour.WithWordWrap(wrap)); err == nil {
			if out, err := r.Render(src); err == nil {
				body = out
			}
		}
	}
	return renderable.NewPanel(ctx.Theme, "", trimBlank(body))
}

func trimBlank(s string) string {
	for len(s) > 0 && (s[0] == '\n' || s[0] == '\r') {
		s = s[1:]
	}
	for len(s) > 0 && (s[len(s)-1] == '\n' || s[len(s)-1] == '\r') {
		s = s[:len(s)-1]
	}
	return s
}
