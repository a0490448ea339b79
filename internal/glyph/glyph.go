package glyph

import (
	"strings"
	"time"

	"github.com/san-kum/flipcalc/internal/anim"
)

// Blank is the displayed character of a slot that has not flipped in yet.
const Blank rune = 0

// Phase is the stage of a glyph's flip.
type Phase int

const (
	Idle Phase = iota
	// Out is the first half: the old character leaves.
	Out
	// In is the second half: the new character arrives.
	In
)

func (p Phase) String() string {
	switch p {
	case Out:
		return "out"
	case In:
		return "in"
	}
	return "idle"
}

// Glyph is one character slot.
type Glyph struct {
	index    int
	char     rune
	target   rune
	gap      bool
	phase    Phase
	start    time.Time
	duration time.Duration
	gen      uint64
	timers   *anim.Group
}

// Index is the slot position from the left.
func (g *Glyph) Index() int { return g.index }

// Char is the character currently displayed.
func (g *Glyph) Char() rune { return g.char }

// Target is the character the slot is converging to.
func (g *Glyph) Target() rune { return g.target }

// Gap reports whether a grouping gap follows this glyph.
func (g *Glyph) Gap() bool { return g.gap }

// Phase reports the flip stage.
func (g *Glyph) Phase() Phase { return g.phase }

// Animating reports whether a flip is in flight.
func (g *Glyph) Animating() bool { return g.phase != Idle }

// IsDigit reports whether the target character is 0-9.
func (g *Glyph) IsDigit() bool { return g.target >= '0' && g.target <= '9' }

// Progress returns the flip progress in [0, 1]; idle glyphs report 1.
func (g *Glyph) Progress(now time.Time) float64 {
	if g.phase == Idle || g.duration <= 0 {
		return 1
	}
	p := float64(now.Sub(g.start)) / float64(g.duration)
	return min(max(p, 0), 1)
}

// Opacity is the fade-style visual: 1 to 0 while the old character leaves,
// 0 to 1 while the new one arrives.
func (g *Glyph) Opacity(now time.Time) float64 {
	p := g.Progress(now)
	switch g.phase {
	case Out:
		return max(1-2*p, 0)
	case In:
		return min(max(2*p-1, 0), 1)
	}
	return 1
}

// Offset is the roll-style visual: the old character rises from 0 to -1,
// then the new one rises from 1 back to 0.
func (g *Glyph) Offset(now time.Time) float64 {
	p := g.Progress(now)
	switch g.phase {
	case Out:
		return -min(2*p, 1)
	case In:
		return max(2-2*p, 0)
	}
	return 0
}

// Sequence is the ordered row of rendered glyphs.
type Sequence struct {
	glyphs []*Glyph
}

// NewSequence returns an empty row.
func NewSequence() *Sequence {
	return &Sequence{}
}

// Len returns the number of slots.
func (s *Sequence) Len() int { return len(s.glyphs) }

// At returns the glyph at slot i.
func (s *Sequence) At(i int) *Glyph { return s.glyphs[i] }

// Glyphs returns the slots left to right. The slice must not be modified.
func (s *Sequence) Glyphs() []*Glyph { return s.glyphs }

// Text returns the displayed characters; blank slots render as spaces.
func (s *Sequence) Text() string {
	var b strings.Builder
	for _, g := range s.glyphs {
		if g.char == Blank {
			b.WriteByte(' ')
			continue
		}
		b.WriteRune(g.char)
	}
	return b.String()
}

// Target returns the string the row is converging to.
func (s *Sequence) Target() string {
	var b strings.Builder
	for _, g := range s.glyphs {
		b.WriteRune(g.target)
	}
	return b.String()
}

// Animating returns the number of glyphs with a flip in flight.
func (s *Sequence) Animating() int {
	n := 0
	for _, g := range s.glyphs {
		if g.Animating() {
			n++
		}
	}
	return n
}
