// Package glyph renders a result string as a row of independently animated
// character slots.
//
// A [Sequence] is the rendered row. [Renderer.Render] converges it toward a
// new target string: surplus trailing slots are dropped immediately, missing
// slots are appended blank, and every slot whose character changes plays a
// two-phase flip. The displayed character swaps at the midpoint of the flip
// and the transient state clears at the end.
//
// Flips are scheduled on an [anim.Timeline]. Each glyph owns an [anim.Group],
// and starting a new flip cancels the previous one before scheduling, so a
// superseded callback never writes a stale character.
//
// [ApplySpacing] decorates digit glyphs with trailing gaps for grouping.
package glyph
