package anim

import "time"

// Group acquires timers on a timeline on behalf of one owner.
type Group struct {
	tl     *Timeline
	timers []*Timer
}

// NewGroup returns a group scheduling on tl.
func NewGroup(tl *Timeline) *Group {
	return &Group{tl: tl}
}

// After schedules fn on the group's timeline.
func (g *Group) After(now time.Time, d time.Duration, fn func(now time.Time)) *Timer {
	g.compact()
	t := g.tl.After(now, d, fn)
	g.timers = append(g.timers, t)
	return t
}

// Cancel stops every pending timer in the group and returns how many were
// stopped.
func (g *Group) Cancel() int {
	n := 0
	for _, t := range g.timers {
		if t.Stop() {
			n++
		}
	}
	g.timers = g.timers[:0]
	return n
}

// Pending returns the number of timers in the group still waiting to fire.
func (g *Group) Pending() int {
	n := 0
	for _, t := range g.timers {
		if t.Pending() {
			n++
		}
	}
	return n
}

func (g *Group) compact() {
	live := g.timers[:0]
	for _, t := range g.timers {
		if t.Pending() {
			live = append(live, t)
		}
	}
	g.timers = live
}
