package registry

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dkoosis/show/pkg/renderable"
	"github.com/dkoosis/show/pkg/value"
)

func testCtx() Context {
	return Context{Theme: renderable.MonoTheme(), Palette: NewPalette(false), Width: 80}
}

func TestRegistry_LookupMiss(t *testing.T) {
	r := New(nil)
	_, ok := r.Lookup("anything")
	assert.False(t, ok)
}

func TestRegistry_ExtendLayersWithoutMutation(t *testing.T) {
	base := New(map[string]Formatter{
		"a": func(v value.Value, ctx Context) renderable.Renderable {
			return renderable.NewRawText("base-a")
		},
	})
	overlay := base.Extend(map[string]Formatter{
		"a": func(v value.Value, ctx Context) renderable.Renderable {
			return renderable.NewRawText("overlay-a")
		},
		"b": func(v value.Value, ctx Context) renderable.Renderable {
			return renderable.NewRawText("overlay-b")
		},
	})

	f, ok := overlay.Lookup("a")
	require.True(t, ok)
	assert.Equal(t, "overlay-a", f(value.Nil(), testCtx()).Render())

	f, ok = overlay.Lookup("b")
	require.True(t, ok)
	assert.Equal(t, "overlay-b", f(value.Nil(), testCtx()).Render())

	// base layer is untouched
	f, ok = base.Lookup("a")
	require.True(t, ok)
	assert.Equal(t, "base-a", f(value.Nil(), testCtx()).Render())
	_, ok = base.Lookup("b")
	assert.False(t, ok)
}

func TestBase_CommonFieldsRegistered(t *testing.T) {
	r := Base()
	for _, name := range []string{"created_at", "url", "body", "state", "duration", "size", "done"} {
		_, ok := r.Lookup(name)
		assert.True(t, ok, name)
	}
}

func TestParseTime(t *testing.T) {
	if got, ok := ParseTime(value.Num(1700000000)); assert.True(t, ok) {
		assert.Equal(t, int64(1700000000), got.Unix())
	}
	if got, ok := ParseTime(value.Str("2024-06-01T10:30:00Z")); assert.True(t, ok) {
		assert.Equal(t, 2024, got.Year())
	}
	if got, ok := ParseTime(value.Str("2024-06-01")); assert.True(t, ok) {
		assert.Equal(t, time.June, got.Month())
	}
	_, ok := ParseTime(value.Str("not a date"))
	assert.False(t, ok)
	_, ok = ParseTime(value.Num(0))
	assert.False(t, ok)
	_, ok = ParseTime(value.Boolean(true))
	assert.False(t, ok)
}

func TestTimeField_RecentTimestampIsRelative(t *testing.T) {
	v := value.Num(float64(time.Now().Add(-3 * time.Hour).Unix()))
	out := TimeField(v, testCtx()).Render()
	assert.Contains(t, out, "ago")
}

func TestTimeField_UnparseablePassesThrough(t *testing.T) {
	out := TimeField(value.Str("soon"), testCtx()).Render()
	assert.Contains(t, out, "soon")
}

func TestFormatSeconds(t *testing.T) {
	tests := []struct {
		sec  float64
		want string
	}{
		{42, "42s"},
		{252, "4m 12s"},
		{3840, "1h 04m"},
		{0, "0s"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, FormatSeconds(tt.sec))
	}
}

func TestByteSizeField(t *testing.T) {
	out := ByteSizeField(value.Num(2048), testCtx()).Render()
	assert.Contains(t, out, "KiB")
	// non-numbers pass through
	out = ByteSizeField(value.Str("big"), testCtx()).Render()
	assert.Contains(t, out, "big")
}

func TestStatusField(t *testing.T) {
	for _, s := range []string{"open", "closed", "merged"} {
		out := StatusField(value.Str(s), testCtx()).Render()
		assert.Contains(t, out, "● "+s)
	}
	out := StatusField(value.Str("weird"), testCtx()).Render()
	assert.Contains(t, out, "weird")
	assert.NotContains(t, out, "●")
}

func TestCheckField(t *testing.T) {
	assert.Equal(t, "✓", CheckField(value.Boolean(true), testCtx()).Render())
	assert.Equal(t, "✗", CheckField(value.Boolean(false), testCtx()).Render())
	assert.Equal(t, "maybe", CheckField(value.Str("maybe"), testCtx()).Render())
}

func TestMarkdownField_ColorlessThemeKeepsRawText(t *testing.T) {
	out := MarkdownField(value.Str("# Heading\n\nbody"), testCtx()).Render()
	assert.Contains(t, out, "Heading")
	assert.Contains(t, out, "╭") // panel frame
}

func TestPalette_StableAndBounded(t *testing.T) {
	p := NewPalette(true)
	first := p.Style("token")
	second := p.Style("token")
	assert.Equal(t, first.GetForeground(), second.GetForeground())

	// a fresh palette derives the same color for the same text
	other := NewPalette(true)
	assert.Equal(t, first.GetForeground(), other.Style("token").GetForeground())

	for i := 0; i < paletteLimit+100; i++ {
		p.Style(strings.Repeat("x", 1+i%50) + string(rune('a'+i%26)))
	}
	assert.LessOrEqual(t, p.Size(), paletteLimit)
}

func TestPalette_DisabledIsUnstyled(t *testing.T) {
	p := NewPalette(false)
	st := p.Style("token")
	assert.Equal(t, "token", st.Render("token"))
}
