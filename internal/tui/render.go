package tui

import (
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"
	"github.com/san-kum/flipcalc/internal/glyph"
)

const (
	styleFade = "fade"
	styleRoll = "roll"
)

// RenderRow draws the glyph row. Fade flips blend each glyph toward the
// background; roll flips draw three lines and move glyphs vertically.
func RenderRow(seq *glyph.Sequence, t Theme, style string, now time.Time) string {
	if seq.Len() == 0 {
		return ""
	}
	if style == styleRoll {
		return renderRoll(seq, t, now)
	}

	var b strings.Builder
	for _, g := range seq.Glyphs() {
		st := lipgloss.NewStyle().Bold(true).Foreground(Blend(t.Background, t.Digit, g.Opacity(now)))
		b.WriteString(st.Render(cell(g)))
		if g.Gap() {
			b.WriteByte(' ')
		}
	}
	return strings.TrimRight(b.String(), " ")
}

func renderRoll(seq *glyph.Sequence, t Theme, now time.Time) string {
	digit := lipgloss.NewStyle().Bold(true).Foreground(t.Digit)
	var rows [3]strings.Builder
	for _, g := range seq.Glyphs() {
		row := 1
		switch off := g.Offset(now); {
		case off < -1.0/3:
			row = 0
		case off > 1.0/3:
			row = 2
		}
		for i := range rows {
			if i == row {
				rows[i].WriteString(digit.Render(cell(g)))
			} else {
				rows[i].WriteByte(' ')
			}
			if g.Gap() {
				rows[i].WriteByte(' ')
			}
		}
	}
	lines := make([]string, len(rows))
	for i := range rows {
		lines[i] = strings.TrimRight(rows[i].String(), " ")
	}
	return strings.Join(lines, "\n")
}

func cell(g *glyph.Glyph) string {
	if g.Char() == glyph.Blank {
		return " "
	}
	return string(g.Char())
}

func historyGraph(values []float64, width int, t Theme) string {
	if len(values) < 2 || width < 10 {
		return ""
	}
	graph := asciigraph.Plot(values,
		asciigraph.Height(5),
		asciigraph.Width(width),
		asciigraph.Caption("recent results"),
	)
	return lipgloss.NewStyle().Foreground(t.Graph).Render(graph)
}
