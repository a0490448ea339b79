package glyph

import (
	"strings"

	"github.com/san-kum/flipcalc/internal/selector"
)

// ApplySpacing clears all gaps, then marks every k-th digit glyph from the
// left with a trailing gap, where k is the mode's group size. Non-digit
// glyphs are skipped when counting, and a digit directly before the decimal
// point never carries a gap.
func ApplySpacing(seq *Sequence, mode selector.SpacingMode) {
	for _, g := range seq.glyphs {
		g.gap = false
	}

	k := mode.Group()
	if k == 0 {
		return
	}

	digits := 0
	for i, g := range seq.glyphs {
		if !g.IsDigit() {
			continue
		}
		digits++
		if digits%k == 0 && !beforePoint(seq, i) {
			g.gap = true
		}
	}
}

func beforePoint(seq *Sequence, i int) bool {
	return i+1 < len(seq.glyphs) && seq.glyphs[i+1].target == '.'
}

// Gaps returns the slot indexes that carry a gap.
func Gaps(seq *Sequence) []int {
	var out []int
	for _, g := range seq.glyphs {
		if g.gap {
			out = append(out, g.index)
		}
	}
	return out
}

// Spaced returns the displayed text with a space after every gap glyph.
// A gap on the last glyph is dropped.
func Spaced(seq *Sequence) string {
	var b strings.Builder
	for i, g := range seq.glyphs {
		if g.char == Blank {
			b.WriteByte(' ')
		} else {
			b.WriteRune(g.char)
		}
		if g.gap && i < len(seq.glyphs)-1 {
			b.WriteByte(' ')
		}
	}
	return b.String()
}
