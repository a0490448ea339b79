// Package widget wires the calculator's inputs to its rendered result.
//
// Every mutation (operand text, slide event, direct selection) runs the same
// directed update: compute, format, render, apply spacing. The update is a
// pure function of the current inputs, so running it twice is harmless.
package widget

import (
	"log/slog"
	"time"

	"github.com/san-kum/flipcalc/internal/anim"
	"github.com/san-kum/flipcalc/internal/calc"
	"github.com/san-kum/flipcalc/internal/glyph"
	"github.com/san-kum/flipcalc/internal/selector"
)

// Options configure a Widget.
type Options struct {
	Precision   calc.Precision
	Operator    calc.Operator
	Spacing     selector.SpacingMode
	Duration    time.Duration
	HistorySize int
	Logger      *slog.Logger
}

// Widget is the calculator controller.
type Widget struct {
	operands [2]string
	engine   *calc.Engine
	bridge   *selector.Bridge
	timeline *anim.Timeline
	renderer *glyph.Renderer
	seq      *glyph.Sequence
	result   calc.Result
	reason   error
	history  *History
	log      *slog.Logger
	now      time.Time
	unsub    func()
}

// New returns a widget with empty operands.
func New(opts Options, now time.Time) *Widget {
	log := opts.Logger
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}
	tl := anim.NewTimeline()
	w := &Widget{
		engine:   calc.NewEngine(opts.Precision),
		bridge:   selector.NewBridge(selector.State{Operator: opts.Operator, Spacing: opts.Spacing}),
		timeline: tl,
		renderer: glyph.NewRenderer(tl, opts.Duration),
		seq:      glyph.NewSequence(),
		history:  NewHistory(opts.HistorySize),
		log:      log,
		now:      now,
	}
	w.unsub = w.bridge.Subscribe(func(selector.State) { w.update() })
	w.update()
	return w
}

// Close detaches the widget from its bridge.
func (w *Widget) Close() {
	if w.unsub != nil {
		w.unsub()
		w.unsub = nil
	}
}

// SetOperand replaces the text of operand i (0 or 1).
func (w *Widget) SetOperand(i int, text string, now time.Time) {
	if i < 0 || i > 1 {
		return
	}
	w.now = now
	if w.operands[i] == text {
		return
	}
	w.operands[i] = text
	w.update()
}

// Operand returns the text of operand i.
func (w *Widget) Operand(i int) string {
	if i < 0 || i > 1 {
		return ""
	}
	return w.operands[i]
}

// HandleSlide applies a carousel slide event.
func (w *Widget) HandleSlide(ev selector.SlideEvent, now time.Time) error {
	w.now = now
	_, err := w.bridge.Handle(ev)
	if err != nil {
		w.log.Debug("slide ignored", "slide", ev.Slide, "carousel", ev.CarouselID, "err", err)
	}
	return err
}

// SetOperator selects op directly.
func (w *Widget) SetOperator(op calc.Operator, now time.Time) {
	w.now = now
	w.bridge.SetOperator(op)
}

// SetSpacing selects a spacing mode directly.
func (w *Widget) SetSpacing(mode selector.SpacingMode, now time.Time) {
	w.now = now
	w.bridge.SetSpacing(mode)
}

// Tick advances in-flight flips to now and returns how many callbacks ran.
func (w *Widget) Tick(now time.Time) int {
	w.now = now
	return w.timeline.Advance(now)
}

// Settle completes all flips immediately.
func (w *Widget) Settle() {
	w.renderer.Settle(w.seq)
	w.timeline.Flush()
}

// Animating reports whether any flip is still in flight.
func (w *Widget) Animating() bool {
	return w.timeline.Pending() > 0
}

func (w *Widget) Selection() selector.State { return w.bridge.State() }
func (w *Widget) Result() calc.Result { return w.result }
func (w *Widget) Reason() error { return w.reason }
func (w *Widget) Sequence() *glyph.Sequence { return w.seq }
func (w *Widget) History() *History { return w.history }
func (w *Widget) Bridge() *selector.Bridge { return w.bridge }
func (w *Widget) Timeline() *anim.Timeline { return w.timeline }
func (w *Widget) Renderer() *glyph.Renderer { return w.renderer }

func (w *Widget) update() {
	state := w.bridge.State()
	a := calc.ParseOperand(w.operands[0])
	b := calc.ParseOperand(w.operands[1])

	v, err := w.engine.Evaluate(a, b, state.Operator)
	prev := w.result
	if err != nil {
		w.result, w.reason = calc.None, err
	} else {
		w.result, w.reason = calc.Result{Value: v, Valid: true}, nil
	}

	text := calc.Format(w.result)
	flips := w.renderer.Render(w.seq, text, w.now)
	glyph.ApplySpacing(w.seq, state.Spacing)

	if w.result.Valid && w.result != prev {
		w.history.Add(w.result.Value)
	}

	w.log.Debug("recomputed",
		"a", w.operands[0],
		"b", w.operands[1],
		"op", state.Operator,
		"spacing", state.Spacing,
		"result", text,
		"flips", flips,
		"reason", w.reason,
	)
}
