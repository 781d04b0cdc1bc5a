package renderable

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/mattn/go-runewidth"
)

// KVRow is one entry of a key/value table. The value may be multi-line.
type KVRow struct {
	Key string
	Val string
}

// KV is a two-column key/value table with bold keys.
type KV struct{ block }

// NewKV builds a key/value table. Keys are padded to the widest key and
// styled with theme.Key; multi-line values hang indented under their key.
func NewKV(theme Theme, rows []KVRow) KV {
	maxKey := 0
	for _, r := range rows {
		if w := runewidth.StringWidth(r.Key); w > maxKey {
			maxKey = w
		}
	}
	var sb strings.Builder
	for i, r := range rows {
		if i > 0 {
			sb.WriteByte('\n')
		}
		pad := strings.Repeat(" ", maxKey-runewidth.StringWidth(r.Key))
		lines := strings.Split(r.Val, "\n")
		sb.WriteString(theme.Key.Render(r.Key) + pad + "  " + lines[0])
		for _, l := range lines[1:] {
			sb.WriteString("\n" + strings.Repeat(" ", maxKey+2) + l)
		}
	}
	return KV{block{sb.String()}}
}

// Grid is a column-per-field table with a header row and an optional
// title line above it.
type Grid struct{ block }

// NewGrid builds a bordered table. Cells arrive already rendered.
func NewGrid(theme Theme, title string, headers []string, rows [][]string) Grid {
	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(theme.Border).
		StyleFunc(func(row, _ int) lipgloss.Style {
			if row == table.HeaderRow {
				return theme.Header.PaddingLeft(1).PaddingRight(1)
			}
			return lipgloss.NewStyle().PaddingLeft(1).PaddingRight(1)
		}).
		Headers(headers...)
	for _, r := range rows {
		t.Row(r...)
	}
	body := t.String()
	if title == "" {
		return Grid{block{body}}
	}
	return Grid{block{theme.Title.Render(title) + "\n" + body}}
}
