// Package selector maps carousel slide events onto operator and spacing
// selections.
//
// Two independent tracks exist. Track 0 drives the operator, track 1 the
// spacing mode. A [Bridge] holds the current selection and notifies
// subscribers whenever a slide event changes it.
package selector

import (
	"errors"
	"fmt"
	"strings"

	"github.com/san-kum/flipcalc/internal/calc"
)

// Track identifies a carousel instance.
type Track int

const (
	TrackOperator Track = 0
	TrackSpacing  Track = 1
)

var (
	ErrUnknownTrack    = errors.New("selector: unknown track")
	ErrSlideOutOfRange = errors.New("selector: slide index out of range")
)

// SpacingMode is the digit grouping granularity.
type SpacingMode int

const (
	SpacingNone SpacingMode = iota
	SpacingEvery2
	SpacingEvery3
)

// SpacingModes in slide order.
var SpacingModes = []SpacingMode{SpacingNone, SpacingEvery2, SpacingEvery3}

// Group returns the number of digits per group, or 0 for no grouping.
func (m SpacingMode) Group() int {
	switch m {
	case SpacingEvery2:
		return 2
	case SpacingEvery3:
		return 3
	}
	return 0
}

func (m SpacingMode) String() string {
	switch m {
	case SpacingEvery2:
		return "2"
	case SpacingEvery3:
		return "3"
	}
	return "none"
}

// ParseSpacing accepts "none", "0", "2", "3", "every2" and "every3".
func ParseSpacing(s string) (SpacingMode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "none", "0", "off":
		return SpacingNone, nil
	case "2", "every2":
		return SpacingEvery2, nil
	case "3", "every3":
		return SpacingEvery3, nil
	}
	return SpacingNone, fmt.Errorf("selector: unknown spacing %q", s)
}

// operatorOrder is the operator carousel ordering. Slide i selects
// operatorOrder[(i+1) mod len].
var operatorOrder = []calc.Operator{calc.Add, calc.Subtract, calc.Multiply, calc.Divide}

// OperatorForSlide maps an operator-track slide index to an operator.
func OperatorForSlide(slide int) calc.Operator {
	n := len(operatorOrder)
	return operatorOrder[((slide+1)%n+n)%n]
}

// SlideForOperator is the inverse of OperatorForSlide.
func SlideForOperator(op calc.Operator) int {
	n := len(operatorOrder)
	for i, o := range operatorOrder {
		if o == op {
			return (i - 1 + n) % n
		}
	}
	return -1
}

// SpacingForSlide maps a spacing-track slide index to a mode.
func SpacingForSlide(slide int) (SpacingMode, error) {
	if slide < 0 || slide >= len(SpacingModes) {
		return SpacingNone, fmt.Errorf("%w: %d", ErrSlideOutOfRange, slide)
	}
	return SpacingModes[slide], nil
}
