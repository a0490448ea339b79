package glyph_test

import (
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/flipcalc/internal/anim"
	"github.com/san-kum/flipcalc/internal/glyph"
)

var _ = Describe("Renderer", func() {
	const d = 400 * time.Millisecond

	var (
		tl  *anim.Timeline
		r   *glyph.Renderer
		seq *glyph.Sequence
		now time.Time
	)

	advance := func(by time.Duration) {
		now = now.Add(by)
		tl.Advance(now)
	}

	BeforeEach(func() {
		tl = anim.NewTimeline()
		r = glyph.NewRenderer(tl, d)
		seq = glyph.NewSequence()
		now = time.Unix(0, 0)
	})

	It("appends blank slots and flips them in", func() {
		Expect(r.Render(seq, "42", now)).To(Equal(2))
		Expect(seq.Len()).To(Equal(2))
		Expect(seq.Text()).To(Equal("  "))
		Expect(seq.Target()).To(Equal("42"))
		Expect(seq.Animating()).To(Equal(2))

		advance(d)
		Expect(seq.Text()).To(Equal("42"))
		Expect(seq.Animating()).To(BeZero())
	})

	It("swaps the displayed character at the midpoint", func() {
		r.Render(seq, "1", now)
		advance(d)

		r.Render(seq, "2", now)
		g := seq.At(0)
		Expect(g.Phase()).To(Equal(glyph.Out))

		advance(d/2 - time.Millisecond)
		Expect(g.Char()).To(Equal('1'))

		advance(time.Millisecond)
		Expect(g.Char()).To(Equal('2'))
		Expect(g.Phase()).To(Equal(glyph.In))

		advance(d / 2)
		Expect(g.Phase()).To(Equal(glyph.Idle))
	})

	It("removes trailing slots immediately", func() {
		r.Render(seq, "12345", now)
		advance(d)

		Expect(r.Render(seq, "12", now)).To(BeZero())
		Expect(seq.Len()).To(Equal(2))
		Expect(seq.Text()).To(Equal("12"))
	})

	It("only flips slots whose character changes", func() {
		r.Render(seq, "1234", now)
		advance(d)

		Expect(r.Render(seq, "1284", now)).To(Equal(1))
		Expect(seq.At(2).Animating()).To(BeTrue())
		Expect(seq.At(0).Animating()).To(BeFalse())
	})

	It("is idempotent for an unchanged target", func() {
		r.Render(seq, "99", now)
		pending := tl.Pending()

		Expect(r.Render(seq, "99", now)).To(BeZero())
		Expect(tl.Pending()).To(Equal(pending))

		advance(d)
		Expect(r.Render(seq, "99", now)).To(BeZero())
		Expect(seq.Text()).To(Equal("99"))
	})

	It("clears the row for an absent result", func() {
		r.Render(seq, "3.5", now)
		Expect(r.Render(seq, "", now)).To(BeZero())
		Expect(seq.Len()).To(BeZero())
		Expect(tl.Pending()).To(BeZero())
	})

	It("round-trips 42, 7, 42", func() {
		r.Render(seq, "42", now)
		advance(d)
		r.Render(seq, "7", now)
		advance(d)
		Expect(seq.Text()).To(Equal("7"))

		r.Render(seq, "42", now)
		advance(d)
		Expect(seq.Text()).To(Equal("42"))
		Expect(seq.Len()).To(Equal(2))
	})

	It("never lets a superseded flip write a stale character", func() {
		r.Render(seq, "1", now)
		advance(d)

		r.Render(seq, "2", now)
		advance(d / 4)
		r.Render(seq, "3", now)

		advance(d / 4)
		Expect(seq.At(0).Char()).NotTo(Equal('2'))

		advance(d)
		Expect(seq.Text()).To(Equal("3"))
		Expect(tl.Pending()).To(BeZero())
	})

	It("lands immediately when reverting before the midpoint", func() {
		r.Render(seq, "5", now)
		advance(d)

		r.Render(seq, "6", now)
		advance(d / 4)
		Expect(r.Render(seq, "5", now)).To(BeZero())
		Expect(seq.At(0).Animating()).To(BeFalse())
		Expect(seq.Text()).To(Equal("5"))
	})

	It("cancels timers of removed slots", func() {
		r.Render(seq, "123", now)
		r.Render(seq, "1", now)
		Expect(tl.Pending()).To(Equal(2))
	})

	It("settles every flip on demand", func() {
		r.Render(seq, "-12.5", now)
		r.Settle(seq)
		Expect(seq.Text()).To(Equal("-12.5"))
		Expect(tl.Pending()).To(BeZero())
	})

	It("swaps immediately with a zero duration", func() {
		instant := glyph.NewRenderer(tl, 0)
		Expect(instant.Render(seq, "88", now)).To(BeZero())
		Expect(seq.Text()).To(Equal("88"))
	})

	Describe("visual progress", func() {
		It("fades out then in", func() {
			r.Render(seq, "1", now)
			g := seq.At(0)
			Expect(g.Opacity(now)).To(BeNumerically("~", 1, 1e-9))
			Expect(g.Opacity(now.Add(d / 4))).To(BeNumerically("~", 0.5, 1e-9))

			advance(d / 2)
			Expect(g.Opacity(now)).To(BeNumerically("~", 0, 1e-9))
			Expect(g.Opacity(now.Add(d / 4))).To(BeNumerically("~", 0.5, 1e-9))

			advance(d / 2)
			Expect(g.Opacity(now)).To(Equal(1.0))
		})

		It("rolls up and back", func() {
			r.Render(seq, "1", now)
			g := seq.At(0)
			Expect(g.Offset(now.Add(d / 4))).To(BeNumerically("~", -0.5, 1e-9))

			advance(d / 2)
			Expect(g.Offset(now)).To(BeNumerically("~", 1, 1e-9))

			advance(d / 2)
			Expect(g.Offset(now)).To(BeZero())
		})
	})
})
