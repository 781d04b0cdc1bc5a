package renderable

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestText_RenderAndWidth(t *testing.T) {
	txt := NewRawText("hello")
	assert.Equal(t, "hello", txt.Render())
	assert.Equal(t, 5, txt.Width())

	multi := NewRawText("a\nlonger line")
	assert.Equal(t, 11, multi.Width(), "width is the widest line")
}

func TestKV_AlignsKeys(t *testing.T) {
	kv := NewKV(MonoTheme(), []KVRow{
		{Key: "id", Val: "7"},
		{Key: "longer_key", Val: "x"},
	})
	lines := strings.Split(kv.Render(), "\n")
	require.Len(t, lines, 2)
	// values line up two spaces after the widest key
	assert.Contains(t, lines[0], "id")
	assert.Equal(t, strings.Index(stripANSI(lines[0]), "7"), strings.Index(stripANSI(lines[1]), "x"))
}

func TestKV_MultilineValueHangs(t *testing.T) {
	kv := NewKV(MonoTheme(), []KVRow{{Key: "k", Val: "first\nsecond"}})
	lines := strings.Split(kv.Render(), "\n")
	require.Len(t, lines, 2)
	assert.True(t, strings.HasPrefix(stripANSI(lines[1]), "   second"))
}

func TestPanel_EmbedsTitleAndClosesBox(t *testing.T) {
	p := NewPanel(MonoTheme(), "Title", "content here")
	out := stripANSI(p.Render())
	lines := strings.Split(out, "\n")
	require.Len(t, lines, 3)
	assert.True(t, strings.HasPrefix(lines[0], "╭─ Title "))
	assert.True(t, strings.HasSuffix(lines[0], "╮"))
	assert.True(t, strings.HasPrefix(lines[1], "│ content here"))
	assert.True(t, strings.HasPrefix(lines[2], "╰"))

	// every line is the same display width
	w := lipgloss.Width(lines[0])
	for _, l := range lines[1:] {
		assert.Equal(t, w, lipgloss.Width(l))
	}
}

func TestPanel_WideTitleGrowsBox(t *testing.T) {
	p := NewPanel(MonoTheme(), "a very long panel title", "x")
	lines := strings.Split(stripANSI(p.Render()), "\n")
	assert.Contains(t, lines[0], "a very long panel title")
	w := lipgloss.Width(lines[0])
	for _, l := range lines[1:] {
		assert.Equal(t, w, lipgloss.Width(l))
	}
}

func TestGrid_HeadersAndTitle(t *testing.T) {
	g := NewGrid(MonoTheme(), "People", []string{"Name", "Age"}, [][]string{
		{"ada", "36"},
		{"bob", "41"},
	})
	out := stripANSI(g.Render())
	assert.Contains(t, out, "People")
	assert.Contains(t, out, "Name")
	assert.Contains(t, out, "ada")
	assert.Contains(t, out, "41")
	assert.Contains(t, out, "╭") // bordered
}

func TestBar_MonoFillProportion(t *testing.T) {
	theme := MonoTheme()
	tests := []struct {
		ratio  float64
		filled int
	}{
		{0, 0},
		{0.5, 5},
		{1, 10},
		{2.5, 10},  // clamped
		{-1.0, 0},  // clamped
	}
	for _, tt := range tests {
		out := NewBar(theme, tt.ratio, 10).Render()
		assert.Equal(t, tt.filled, strings.Count(out, "█"), "ratio %v", tt.ratio)
		assert.Equal(t, 10-tt.filled, strings.Count(out, "░"))
	}
}

func TestBarTable_RowsAndCaption(t *testing.T) {
	bt := NewBarTable(MonoTheme(), "Plays", []BarRow{
		{Label: "x", Count: "5", Ratio: 0.25},
		{Label: "yy", Count: "15", Ratio: 1},
	}, "total 20")
	out := stripANSI(bt.Render())
	lines := strings.Split(out, "\n")
	require.Len(t, lines, 4) // title, two rows, caption
	assert.Equal(t, "Plays", lines[0])
	assert.Contains(t, lines[2], strings.Repeat("█", barWidth))
	assert.Equal(t, "total 20", lines[3])
}

func TestColumns_JoinsWithGutter(t *testing.T) {
	c := NewColumns([]Renderable{NewRawText("left"), NewRawText("right")})
	assert.Equal(t, "left  right", c.Render())
	assert.Equal(t, 11, c.Width())
}

func TestStack_JoinsVertically(t *testing.T) {
	s := NewStack([]Renderable{NewRawText("top"), NewRawText("bottom")})
	lines := strings.Split(s.Render(), "\n")
	require.Len(t, lines, 2)
	assert.Equal(t, "top", strings.TrimRight(lines[0], " "))
	assert.Equal(t, "bottom", lines[1])
}

func TestGroup_ExposesItemsForSplicing(t *testing.T) {
	g := NewGroup([]Renderable{NewRawText("a"), NewRawText("b")})
	assert.Len(t, g.Items(), 2)
	assert.Equal(t, "a\nb", g.Render())
}

func TestThemeByName(t *testing.T) {
	assert.Equal(t, "mono", ThemeByName("mono").Name)
	assert.Equal(t, "default", ThemeByName("anything").Name)
	assert.False(t, MonoTheme().Colorize)
	assert.True(t, DefaultTheme().Colorize)
}

func stripANSI(s string) string {
	var sb strings.Builder
	inEsc := false
	for _, r := range s {
		switch {
		case inEsc:
			if r == 'm' {
				inEsc = false
			}
		case r == '\x1b':
			inEsc = true
		default:
			sb.WriteRune(r)
		}
	}
	return sb.String()
}
