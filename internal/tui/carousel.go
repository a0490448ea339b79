package tui

import "github.com/san-kum/flipcalc/internal/selector"

// carousel emits slide events for one track. It holds only a slide index;
// what a slide means is decided by the selector bridge.
type carousel struct {
	id    selector.Track
	slide int
	count int
	wrap  bool
}

func (c *carousel) move(delta int) (selector.SlideEvent, bool) {
	next := c.slide + delta
	switch {
	case c.wrap:
		next = ((next % c.count) + c.count) % c.count
	case next < 0 || next >= c.count:
		return selector.SlideEvent{}, false
	}
	c.slide = next
	return selector.SlideEvent{Slide: next, CarouselID: int(c.id)}, true
}
