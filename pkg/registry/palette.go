package registry

import (
	"hash/fnv"

	"github.com/charmbracelet/lipgloss"
	colorful "github.com/lucasb-eyer/go-colorful"
)

// paletteLimit bounds the memoized style cache. Renders with more distinct
// tokens than this still work; the overflow just isn't cached.
const paletteLimit = 512

// Palette derives a stable display color from a string: the same token is
// always the same color within a render pass and across passes, because
// the hue comes from an FNV hash of the text. Owned by one Engine, never
// global.
type Palette struct {
	enabled bool
	cache   map[string]lipgloss.Style
}

// NewPalette builds a palette. A disabled palette hands out unstyled text.
func NewPalette(enabled bool) *Palette {
	return &Palette{enabled: enabled, cache: make(map[string]lipgloss.Style)}
}

// Style returns the hashed color style for s.
func (p *Palette) Style(s string) lipgloss.Style {
	if !p.enabled {
		return lipgloss.NewStyle()
	}
	if st, ok := p.cache[s]; ok {
		return st
	}
	h := fnv.New32a()
	_, _ = h.Write([]byte(s))
	hue := float64(h.Sum32() % 360)
	st := lipgloss.NewStyle().Foreground(lipgloss.Color(colorful.Hsl(hue, 0.55, 0.7).Hex()))
	if len(p.cache) < paletteLimit {
		p.cache[s] = st
	}
	return st
}

// Size reports how many tokens are currently cached.
func (p *Palette) Size() int { return len(p.cache) }
