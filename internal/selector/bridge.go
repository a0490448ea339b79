package selector

import (
	"fmt"

	"github.com/san-kum/flipcalc/internal/calc"
)

// SlideEvent is what the carousel collaborator emits on a slide change.
type SlideEvent struct {
	Slide      int `json:"slide"`
	CarouselID int `json:"carouselID"`
}

// State is the current selection on both tracks.
type State struct {
	Operator calc.Operator
	Spacing  SpacingMode
}

// Selection is the result of mapping one slide event.
type Selection struct {
	Track    Track
	Operator calc.Operator
	Spacing  SpacingMode
}

// Bridge owns the selection state and its subscribers.
type Bridge struct {
	state  State
	subs   map[int]func(State)
	order  []int
	nextID int
}

// NewBridge returns a bridge starting from initial.
func NewBridge(initial State) *Bridge {
	return &Bridge{state: initial, subs: make(map[int]func(State))}
}

// State returns the current selection.
func (b *Bridge) State() State {
	return b.state
}

// Subscribe registers fn to be called after every change. The returned
// function removes the subscription.
func (b *Bridge) Subscribe(fn func(State)) func() {
	id := b.nextID
	b.nextID++
	b.subs[id] = fn
	b.order = append(b.order, id)
	return func() {
		delete(b.subs, id)
		for i, o := range b.order {
			if o == id {
				b.order = append(b.order[:i], b.order[i+1:]...)
				break
			}
		}
	}
}

// MapSlide maps a slide on a track without changing state.
func (b *Bridge) MapSlide(track Track, slide int) (Selection, error) {
	switch track {
	case TrackOperator:
		return Selection{Track: track, Operator: OperatorForSlide(slide)}, nil
	case TrackSpacing:
		mode, err := SpacingForSlide(slide)
		if err != nil {
			return Selection{}, err
		}
		return Selection{Track: track, Spacing: mode}, nil
	}
	return Selection{}, fmt.Errorf("%w: %d", ErrUnknownTrack, track)
}

// Handle applies a slide event. It returns whether the state changed;
// unmappable events leave the state untouched.
func (b *Bridge) Handle(ev SlideEvent) (bool, error) {
	sel, err := b.MapSlide(Track(ev.CarouselID), ev.Slide)
	if err != nil {
		return false, err
	}

	next := b.state
	switch sel.Track {
	case TrackOperator:
		next.Operator = sel.Operator
	case TrackSpacing:
		next.Spacing = sel.Spacing
	}
	return b.set(next), nil
}

// SetOperator selects op directly, as a dropdown would.
func (b *Bridge) SetOperator(op calc.Operator) bool {
	next := b.state
	next.Operator = op
	return b.set(next)
}

// SetSpacing selects mode directly.
func (b *Bridge) SetSpacing(mode SpacingMode) bool {
	next := b.state
	next.Spacing = mode
	return b.set(next)
}

func (b *Bridge) set(next State) bool {
	if next == b.state {
		return false
	}
	b.state = next
	for _, id := range append([]int(nil), b.order...) {
		if fn, ok := b.subs[id]; ok {
			fn(next)
		}
	}
	return true
}
