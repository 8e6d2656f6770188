package gridgraph

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// RenderOption customizes Render.
type RenderOption func(*renderOptions)

type renderOptions struct {
	style    lipgloss.Style
	glyph    rune
	useGlyph bool
}

// WithPathStyle sets the lipgloss style applied to highlighted cells.
func WithPathStyle(s lipgloss.Style) RenderOption {
	return func(o *renderOptions) { o.style = s }
}

// WithPathGlyph replaces the glyph of highlighted cells with r.
func WithPathGlyph(r rune) RenderOption {
	return func(o *renderOptions) {
		o.glyph = r
		o.useGlyph = true
	}
}

// Render draws the grid one row per line, converting cells with glyph.
// Cells listed in highlight are styled (bold red by default); points outside
// the grid are ignored. Color output depends on the terminal lipgloss detects.
func (gg *GridGraph[T]) Render(glyph func(T) rune, highlight []Point, opts ...RenderOption) string {
	o := renderOptions{
		style: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("9")),
	}
	for _, opt := range opts {
		opt(&o)
	}

	marked := make(map[Point]bool, len(highlight))
	for _, p := range highlight {
		marked[p] = true
	}

	var sb strings.Builder
	sb.Grow((gg.Width + 1) * gg.Height)
	for y := 0; y < gg.Height; y++ {
		for x := 0; x < gg.Width; x++ {
			p := Point{x, y}
			r := glyph(gg.cells[gg.index(p)])
			if !marked[p] {
				sb.WriteRune(r)
				continue
			}
			if o.useGlyph {
				r = o.glyph
			}
			sb.WriteString(o.style.Render(string(r)))
		}
		sb.WriteByte('\n')
	}

	return sb.String()
}
