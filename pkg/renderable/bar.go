package renderable

import (
	"strings"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
)

// Bar is a horizontal proportional bar.
type Bar struct{ block }

// NewBar renders a bar of the given total width whose filled portion is
// ratio (clamped to [0,1]). Themes with a BarColor use a solid fill;
// colorless themes fall back to block characters so piped output stays
// plain.
func NewBar(theme Theme, ratio float64, width int) Bar {
	if width < 1 {
		width = 1
	}
	if ratio < 0 {
		ratio = 0
	}
	if ratio > 1 {
		ratio = 1
	}
	if theme.BarColor == "" {
		filled := int(ratio*float64(width) + 0.5)
		return Bar{block{strings.Repeat("█", filled) + strings.Repeat("░", width-filled)}}
	}
	p := progress.New(
		progress.WithSolidFill(theme.BarColor),
		progress.WithoutPercentage(),
	)
	p.Width = width
	p.Full = '█'
	p.Empty = '░'
	return Bar{block{p.ViewAs(ratio)}}
}

// BarRow is one entry of a counts table.
type BarRow struct {
	Label string  // already rendered
	Count string  // already formatted
	Ratio float64 // count / max
}

// BarTable is a label + count + proportional bar table with an optional
// title above and caption below.
type BarTable struct{ block }

// barWidth is the fixed width of the bar column.
const barWidth = 20

// NewBarTable renders one row per entry, bars scaled to the largest count.
func NewBarTable(theme Theme, title string, rows []BarRow, caption string) BarTable {
	maxLabel, maxCount := 0, 0
	for _, r := range rows {
		if w := lipgloss.Width(r.Label); w > maxLabel {
			maxLabel = w
		}
		if w := runewidth.StringWidth(r.Count); w > maxCount {
			maxCount = w
		}
	}
	var sb strings.Builder
	if title != "" {
		sb.WriteString(theme.Title.Render(title) + "\n")
	}
	for i, r := range rows {
		if i > 0 {
			sb.WriteByte('\n')
		}
		labelPad := strings.Repeat(" ", maxLabel-lipgloss.Width(r.Label))
		countPad := strings.Repeat(" ", maxCount-runewidth.StringWidth(r.Count))
		sb.WriteString(r.Label + labelPad + "  " + countPad + theme.Value.Render(r.Count) + "  ")
		sb.WriteString(NewBar(theme, r.Ratio, barWidth).Render())
	}
	if caption != "" {
		sb.WriteString("\n" + theme.Muted.Render(caption))
	}
	return BarTable{block{sb.String()}}
}
