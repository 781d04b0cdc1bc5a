// Package record persists a rendered pass as an SVG snapshot. The
// snapshot is plain text on a dark background — enough to drop into a
// README or a bug report — not a faithful ANSI reproduction.
package record

import (
	"fmt"
	"os"
	"regexp"
	"strings"
)

// DefaultPath is the fixed output location for -record.
const DefaultPath = "show.svg"

const (
	fontSize   = 14
	lineHeight = 20
	charWidth  = 8
	padding    = 16
)

var ansiEscape = regexp.MustCompile(`\x1b\[[0-9;]*m`)

// Strip removes ANSI styling sequences.
func Strip(s string) string {
	return ansiEscape.ReplaceAllString(s, "")
}

// WriteSVG writes the rendered output to path as an SVG text snapshot.
func WriteSVG(path, rendered string) error {
	return os.WriteFile(path, []byte(SVG(rendered)), 0o644)
}

// SVG builds the snapshot document.
func SVG(rendered string) string {
	lines := strings.Split(strings.TrimRight(Strip(rendered), "\n"), "\n")

	cols := 0
	for _, l := range lines {
		if n := len([]rune(l)); n > cols {
			cols = n
		}
	}
	width := cols*charWidth + 2*padding
	height := len(lines)*lineHeight + 2*padding

	var sb strings.Builder
	fmt.Fprintf(&sb, `<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d">`, width, height)
	sb.WriteString("\n")
	fmt.Fprintf(&sb, `<rect width="%d" height="%d" fill="#1e1e2e" rx="8"/>`, width, height)
	sb.WriteString("\n")
	fmt.Fprintf(&sb, `<text font-family="monospace" font-size="%d" fill="#cdd6f4" xml:space="preserve">`, fontSize)
	sb.WriteString("\n")
	for i, l := range lines {
		y := padding + (i+1)*lineHeight - (lineHeight-fontSize)/2
		fmt.Fprintf(&sb, `<tspan x="%d" y="%d">%s</tspan>`, padding, y, escapeXML(l))
		sb.WriteString("\n")
	}
	sb.WriteString("</text>\n</svg>\n")
	return sb.String()
}

func escapeXML(s string) string {
	r := strings.NewReplacer("&", "&amp;", "<", "&lt;", ">", "&gt;")
	return r.Replace(s)
}
