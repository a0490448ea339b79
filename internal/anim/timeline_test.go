package anim_test

import (
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/flipcalc/internal/anim"
)

var _ = Describe("Timeline", func() {
	var (
		tl    *anim.Timeline
		start time.Time
		fired []string
	)

	record := func(name string) func(time.Time) {
		return func(time.Time) { fired = append(fired, name) }
	}

	BeforeEach(func() {
		tl = anim.NewTimeline()
		start = time.Unix(1000, 0)
		fired = nil
	})

	It("fires callbacks in deadline order", func() {
		tl.After(start, 300*time.Millisecond, record("c"))
		tl.After(start, 100*time.Millisecond, record("a"))
		tl.After(start, 200*time.Millisecond, record("b"))

		Expect(tl.Advance(start.Add(50 * time.Millisecond))).To(Equal(0))
		Expect(tl.Advance(start.Add(250 * time.Millisecond))).To(Equal(2))
		Expect(fired).To(Equal([]string{"a", "b"}))
		Expect(tl.Pending()).To(Equal(1))

		tl.Advance(start.Add(time.Second))
		Expect(fired).To(Equal([]string{"a", "b", "c"}))
	})

	It("breaks deadline ties by scheduling order", func() {
		tl.After(start, time.Second, record("first"))
		tl.After(start, time.Second, record("second"))
		tl.Advance(start.Add(time.Second))
		Expect(fired).To(Equal([]string{"first", "second"}))
	})

	It("does not fire stopped timers", func() {
		t := tl.After(start, 100*time.Millisecond, record("stopped"))
		tl.After(start, 100*time.Millisecond, record("kept"))

		Expect(t.Stop()).To(BeTrue())
		Expect(t.Stop()).To(BeFalse())
		Expect(t.Pending()).To(BeFalse())

		tl.Advance(start.Add(time.Second))
		Expect(fired).To(Equal([]string{"kept"}))
	})

	It("reports Stop as false once the timer fired", func() {
		t := tl.After(start, 10*time.Millisecond, record("x"))
		tl.Advance(start.Add(10 * time.Millisecond))
		Expect(t.Stop()).To(BeFalse())
	})

	It("runs timers chained from a callback within the same advance", func() {
		tl.After(start, 100*time.Millisecond, func(now time.Time) {
			fired = append(fired, "outer")
			tl.After(now, 100*time.Millisecond, record("inner"))
		})
		tl.Advance(start.Add(250 * time.Millisecond))
		Expect(fired).To(Equal([]string{"outer", "inner"}))
	})

	It("exposes the next deadline", func() {
		_, ok := tl.Next()
		Expect(ok).To(BeFalse())

		tl.After(start, 2*time.Second, record("late"))
		tl.After(start, time.Second, record("early"))
		next, ok := tl.Next()
		Expect(ok).To(BeTrue())
		Expect(next).To(Equal(start.Add(time.Second)))
	})

	It("flushes everything regardless of deadline", func() {
		tl.After(start, time.Hour, record("a"))
		tl.After(start, 2*time.Hour, record("b"))
		Expect(tl.Flush()).To(Equal(2))
		Expect(tl.Pending()).To(BeZero())
	})
})

var _ = Describe("Group", func() {
	It("cancels only its own timers", func() {
		tl := anim.NewTimeline()
		start := time.Unix(0, 0)
		var fired []string

		g := anim.NewGroup(tl)
		g.After(start, time.Second, func(time.Time) { fired = append(fired, "group") })
		g.After(start, 2*time.Second, func(time.Time) { fired = append(fired, "group2") })
		tl.After(start, time.Second, func(time.Time) { fired = append(fired, "other") })

		Expect(g.Pending()).To(Equal(2))
		Expect(g.Cancel()).To(Equal(2))
		Expect(g.Pending()).To(BeZero())

		tl.Advance(start.Add(time.Minute))
		Expect(fired).To(Equal([]string{"other"}))
	})

	It("forgets timers that already fired", func() {
		tl := anim.NewTimeline()
		start := time.Unix(0, 0)
		g := anim.NewGroup(tl)

		g.After(start, time.Millisecond, func(time.Time) {})
		tl.Advance(start.Add(time.Second))
		Expect(g.Cancel()).To(BeZero())
	})
})
