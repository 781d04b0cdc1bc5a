// Package renderable defines the terminal output artifacts produced by the
// dispatcher: styled text, key/value and grid tables, panels, trees, bars,
// and horizontal/vertical groupings. Every artifact is built eagerly and is
// immutable afterwards; Render returns the finished string and Width its
// measured display width (widest line, ANSI-aware).
package renderable

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Renderable is a finished terminal artifact.
type Renderable interface {
	Render() string
	Width() int
}

// block is the shared immutable payload behind every artifact.
type block struct {
	s string
}

func (b block) Render() string { return b.s }
func (b block) Width() int     { return lipgloss.Width(b.s) }

// Text is a styled single- or multi-line string.
type Text struct{ block }

// NewText styles s with the given style.
func NewText(style lipgloss.Style, s string) Text {
	return Text{block{style.Render(s)}}
}

// NewRawText wraps an already-styled string unchanged.
func NewRawText(s string) Text {
	return Text{block{s}}
}

// Stack is a vertical sequence of renderables.
type Stack struct{ block }

// NewStack joins items top to bottom, left aligned.
func NewStack(items []Renderable) Stack {
	parts := make([]string, 0, len(items))
	for _, it := range items {
		parts = append(parts, it.Render())
	}
	return Stack{block{lipgloss.JoinVertical(lipgloss.Left, parts...)}}
}

// Columns is a side-by-side arrangement of renderables.
type Columns struct{ block }

// columnGutter separates adjacent columns.
const columnGutter = "  "

// NewColumns joins items left to right, top aligned, with a two-space
// gutter between adjacent items.
func NewColumns(items []Renderable) Columns {
	parts := make([]string, 0, len(items)*2)
	for i, it := range items {
		if i > 0 {
			parts = append(parts, columnGutter)
		}
		parts = append(parts, it.Render())
	}
	return Columns{block{lipgloss.JoinHorizontal(lipgloss.Top, parts...)}}
}

// Group is a flattenable sequence of renderables. Callers that receive a
// Group may splice its items into their own sequence instead of nesting.
type Group struct {
	block
	items []Renderable
}

// NewGroup builds a group rendering its items vertically.
func NewGroup(items []Renderable) Group {
	parts := make([]string, 0, len(items))
	for _, it := range items {
		parts = append(parts, it.Render())
	}
	return Group{block: block{strings.Join(parts, "\n")}, items: items}
}

// Items returns the group members for splicing.
func (g Group) Items() []Renderable { return g.items }
