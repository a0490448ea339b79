package glyph

import (
	"time"

	"github.com/san-kum/flipcalc/internal/anim"
)

// DefaultDuration is the length of one flip.
const DefaultDuration = 400 * time.Millisecond

// Renderer reconciles sequences against target strings.
type Renderer struct {
	tl       *anim.Timeline
	Duration time.Duration
}

// NewRenderer returns a renderer scheduling flips on tl. A non-positive
// duration swaps characters immediately.
func NewRenderer(tl *anim.Timeline, d time.Duration) *Renderer {
	return &Renderer{tl: tl, Duration: d}
}

// Render converges seq toward target and returns the number of flips it
// started. An empty target clears the row without animation.
func (r *Renderer) Render(seq *Sequence, target string, now time.Time) int {
	runes := []rune(target)

	for len(seq.glyphs) > len(runes) {
		last := seq.glyphs[len(seq.glyphs)-1]
		last.timers.Cancel()
		last.gen++
		seq.glyphs[len(seq.glyphs)-1] = nil
		seq.glyphs = seq.glyphs[:len(seq.glyphs)-1]
	}

	started := 0
	for i, c := range runes {
		if i >= len(seq.glyphs) {
			seq.glyphs = append(seq.glyphs, &Glyph{
				index:  i,
				char:   Blank,
				target: Blank,
				timers: anim.NewGroup(r.tl),
			})
		}
		g := seq.glyphs[i]
		if g.target == c {
			continue
		}
		if r.flip(g, c, now) {
			started++
		}
	}
	return started
}

// Settle completes every flip in seq immediately.
func (r *Renderer) Settle(seq *Sequence) {
	for _, g := range seq.glyphs {
		r.land(g)
	}
}

// flip starts a transition of g toward c, superseding any flip in flight.
// It reports whether an animation was scheduled.
func (r *Renderer) flip(g *Glyph, c rune, now time.Time) bool {
	g.timers.Cancel()
	g.gen++
	g.target = c

	// The old character is still on screen: nothing to animate.
	if g.char == c || r.Duration <= 0 {
		r.land(g)
		return false
	}

	gen := g.gen
	g.phase = Out
	g.start = now
	g.duration = r.Duration

	g.timers.After(now, r.Duration/2, func(time.Time) {
		if g.gen != gen {
			return
		}
		g.char = c
		g.phase = In
	})
	g.timers.After(now, r.Duration, func(time.Time) {
		if g.gen != gen {
			return
		}
		g.phase = Idle
	})
	return true
}

func (r *Renderer) land(g *Glyph) {
	g.timers.Cancel()
	g.gen++
	g.char = g.target
	g.phase = Idle
}
