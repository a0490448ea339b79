// Package tui is the terminal front end of the calculator, built on Bubble Tea.
//
// Two digit-only text inputs hold the operands. Between them sits the
// operator carousel (track 0); below them the spacing carousel (track 1).
// Both carousels only emit slide events; the widget decides what a slide
// selects. The result row redraws on every frame tick so glyph flips animate.
//
// # Key Bindings
//
//	Tab/Shift+Tab - Move between fields
//	Left/Right    - Slide the focused carousel
//	Ctrl+T        - Cycle color themes
//	Ctrl+S        - Toggle fade/roll flips
//	Ctrl+G        - Toggle the history graph
//	?             - Show full help
//	Q/Esc         - Quit
package tui
