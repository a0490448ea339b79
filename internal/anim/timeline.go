package anim

import (
	"container/heap"
	"time"
)

// Timer is a pending callback on a Timeline.
type Timer struct {
	at    time.Time
	seq   uint64
	fn    func(now time.Time)
	index int
	tl    *Timeline
}

// Stop prevents the timer from firing. It reports whether the timer was
// still pending.
func (t *Timer) Stop() bool {
	if t == nil || t.tl == nil || t.index < 0 {
		return false
	}
	heap.Remove(&t.tl.queue, t.index)
	t.tl = nil
	return true
}

// Pending reports whether the timer has neither fired nor been stopped.
func (t *Timer) Pending() bool {
	return t != nil && t.tl != nil && t.index >= 0
}

// Deadline returns when the timer fires.
func (t *Timer) Deadline() time.Time {
	return t.at
}

// Timeline orders timers by deadline.
type Timeline struct {
	queue timerQueue
	seq   uint64
}

// NewTimeline returns an empty timeline.
func NewTimeline() *Timeline {
	return &Timeline{}
}

// After schedules fn to run once Advance reaches now+d.
func (tl *Timeline) After(now time.Time, d time.Duration, fn func(now time.Time)) *Timer {
	t := &Timer{at: now.Add(d), seq: tl.seq, fn: fn, tl: tl}
	tl.seq++
	heap.Push(&tl.queue, t)
	return t
}

// Advance runs every timer due at or before now, in deadline order with
// ties broken by scheduling order. Timers scheduled by a callback with a
// deadline at or before now run in the same call. It returns the number of
// callbacks run.
func (tl *Timeline) Advance(now time.Time) int {
	n := 0
	for len(tl.queue) > 0 {
		next := tl.queue[0]
		if next.at.After(now) {
			break
		}
		heap.Pop(&tl.queue)
		next.tl = nil
		next.fn(next.at)
		n++
	}
	return n
}

// Pending returns the number of scheduled timers.
func (tl *Timeline) Pending() int {
	return len(tl.queue)
}

// Next returns the earliest deadline, if any.
func (tl *Timeline) Next() (time.Time, bool) {
	if len(tl.queue) == 0 {
		return time.Time{}, false
	}
	return tl.queue[0].at, true
}

// Flush runs every pending timer regardless of deadline.
func (tl *Timeline) Flush() int {
	n := 0
	for len(tl.queue) > 0 {
		last := tl.queue[0].at
		for _, t := range tl.queue {
			if t.at.After(last) {
				last = t.at
			}
		}
		n += tl.Advance(last)
	}
	return n
}

type timerQueue []*Timer

func (q timerQueue) Len() int { return len(q) }

func (q timerQueue) Less(i, j int) bool {
	if q[i].at.Equal(q[j].at) {
		return q[i].seq < q[j].seq
	}
	return q[i].at.Before(q[j].at)
}

func (q timerQueue) Swap(i, j int) {
	q[i], q[j] = q[j], q[i]
	q[i].index = i
	q[j].index = j
}

func (q *timerQueue) Push(x any) {
	t := x.(*Timer)
	t.index = len(*q)
	*q = append(*q, t)
}

func (q *timerQueue) Pop() any {
	old := *q
	n := len(old)
	t := old[n-1]
	old[n-1] = nil
	t.index = -1
	*q = old[:n-1]
	return t
}
