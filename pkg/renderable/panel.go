package renderable

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Panel is a rounded box around content, with an optional title embedded
// in the top border: ╭─ Title ────╮
type Panel struct{ block }

// NewPanel boxes the given pre-rendered content. Content keeps its own
// styling; only the frame takes theme.Border and the title theme.Title.
func NewPanel(theme Theme, title, content string) Panel {
	lines := strings.Split(strings.TrimRight(content, "\n"), "\n")

	inner := 0
	for _, l := range lines {
		if w := lipgloss.Width(l); w > inner {
			inner = w
		}
	}
	// title plus one dash and one space each side must fit
	if title != "" {
		if min := lipgloss.Width(title) + 4; inner+2 < min {
			inner = min - 2
		}
	}

	var sb strings.Builder
	if title == "" {
		sb.WriteString(theme.Border.Render("╭" + strings.Repeat("─", inner+2) + "╮"))
	} else {
		rest := inner + 2 - lipgloss.Width(title) - 3
		sb.WriteString(theme.Border.Render("╭─ "))
		sb.WriteString(theme.Title.Render(title))
		sb.WriteString(theme.Border.Render(" " + strings.Repeat("─", rest) + "╮"))
	}
	side := theme.Border.Render("│")
	for _, l := range lines {
		pad := strings.Repeat(" ", inner-lipgloss.Width(l))
		sb.WriteString("\n" + side + " " + l + pad + " " + side)
	}
	sb.WriteString("\n" + theme.Border.Render("╰"+strings.Repeat("─", inner+2)+"╯"))
	return Panel{block{sb.String()}}
}
