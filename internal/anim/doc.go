// Package anim provides a cooperative timer set for UI animations.
//
// A [Timeline] never spawns goroutines. Callbacks are queued with a deadline
// and run from [Timeline.Advance], which the UI loop calls on every frame
// tick. Because everything runs on the loop that owns the rendered state,
// callbacks may mutate that state without locking.
//
// A [Group] scopes a set of timers to an owner. Cancelling the group stops
// every timer it acquired, so a superseded animation can never fire late.
//
// # Thread Safety
//
// Timeline and Group are NOT safe for concurrent use.
package anim
