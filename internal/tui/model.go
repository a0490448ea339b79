package tui

import (
	"context"
	"log/slog"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/san-kum/flipcalc/internal/calc"
	"github.com/san-kum/flipcalc/internal/selector"
	"github.com/san-kum/flipcalc/internal/widget"
)

type field int

const (
	fieldA field = iota
	fieldOperator
	fieldB
	fieldSpacing
	fieldCount
)

// TickMsg drives the flip animations.
type TickMsg time.Time

// Options configure the interactive model.
type Options struct {
	Widget        *widget.Widget
	Theme         string
	Style         string
	ShowHistory   bool
	FrameInterval time.Duration
	Logger        *slog.Logger
	// Clock defaults to time.Now.
	Clock func() time.Time
}

// Model is the Bubble Tea model of the calculator.
type Model struct {
	w           *widget.Widget
	inputs      [2]textinput.Model
	opCarousel  carousel
	spCarousel  carousel
	focus       field
	keys        keyMap
	help        help.Model
	theme       Theme
	style       string
	showHistory bool
	interval    time.Duration
	width       int
	ticking     bool
	log         *slog.Logger
	clock       func() time.Time
}

// New builds the model around an existing widget.
func New(opts Options) Model {
	log := opts.Logger
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}
	clock := opts.Clock
	if clock == nil {
		clock = time.Now
	}
	interval := opts.FrameInterval
	if interval <= 0 {
		interval = time.Second / 60
	}
	style := opts.Style
	if style != styleRoll {
		style = styleFade
	}

	sel := opts.Widget.Selection()
	m := Model{
		w:           opts.Widget,
		opCarousel:  carousel{id: selector.TrackOperator, slide: selector.SlideForOperator(sel.Operator), count: len(calc.Operators), wrap: true},
		spCarousel:  carousel{id: selector.TrackSpacing, slide: int(sel.Spacing), count: len(selector.SpacingModes)},
		keys:        defaultKeys(),
		help:        help.New(),
		theme:       GetTheme(opts.Theme),
		style:       style,
		showHistory: opts.ShowHistory,
		interval:    interval,
		width:       80,
		log:         log,
		clock:       clock,
	}
	for i := range m.inputs {
		in := textinput.New()
		in.Placeholder = "0"
		in.CharLimit = 15
		in.Width = 16
		in.Prompt = ""
		in.Validate = calc.ValidateOperand
		in.SetValue(opts.Widget.Operand(i))
		m.inputs[i] = in
	}
	m.inputs[0].Focus()
	return m
}

func (m Model) Init() tea.Cmd {
	if m.w.Animating() {
		return tea.Batch(textinput.Blink, m.tick())
	}
	return textinput.Blink
}

func (m Model) tick() tea.Cmd {
	return tea.Tick(m.interval, func(t time.Time) tea.Msg { return TickMsg(t) })
}

// arm starts the frame tick if flips are pending and no tick is in flight.
func (m *Model) arm() tea.Cmd {
	if m.ticking || !m.w.Animating() {
		return nil
	}
	m.ticking = true
	return m.tick()
}

// Update handles input events and advances animations.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case TickMsg:
		m.w.Tick(time.Time(msg))
		if !m.w.Animating() {
			m.ticking = false
			return m, nil
		}
		m.ticking = true
		return m, m.tick()
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.help.Width = msg.Width
		return m, nil
	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	if i, ok := m.inputIndex(); ok {
		var cmd tea.Cmd
		m.inputs[i], cmd = m.inputs[i].Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.Next):
		return m, m.setFocus((m.focus + 1) % fieldCount)
	case key.Matches(msg, m.keys.Prev):
		return m, m.setFocus((m.focus + fieldCount - 1) % fieldCount)
	case key.Matches(msg, m.keys.Theme):
		m.theme = NextTheme(m.theme)
		return m, nil
	case key.Matches(msg, m.keys.Style):
		if m.style == styleFade {
			m.style = styleRoll
		} else {
			m.style = styleFade
		}
		return m, nil
	case key.Matches(msg, m.keys.History):
		m.showHistory = !m.showHistory
		return m, nil
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil
	}

	if c := m.focusedCarousel(); c != nil {
		switch {
		case key.Matches(msg, m.keys.Left):
			m.slide(c, -1)
		case key.Matches(msg, m.keys.Right):
			m.slide(c, 1)
		}
		return m, m.arm()
	}

	i, ok := m.inputIndex()
	if !ok {
		return m, nil
	}
	if msg.Type == tea.KeyRunes {
		for _, r := range msg.Runes {
			if !calc.AcceptsRune(r) {
				return m, nil
			}
		}
	}
	prev, pos := m.inputs[i].Value(), m.inputs[i].Position()
	var cmd tea.Cmd
	m.inputs[i], cmd = m.inputs[i].Update(msg)
	if err := m.inputs[i].Err; err != nil {
		m.log.Debug("operand rejected", "err", err)
		m.inputs[i].SetValue(prev)
		m.inputs[i].SetCursor(pos)
		m.inputs[i].Err = nil
		return m, cmd
	}
	m.w.SetOperand(i, m.inputs[i].Value(), m.clock())
	return m, tea.Batch(cmd, m.arm())
}

func (m *Model) slide(c *carousel, delta int) {
	ev, ok := c.move(delta)
	if !ok {
		return
	}
	if err := m.w.HandleSlide(ev, m.clock()); err != nil {
		m.log.Warn("slide rejected", "err", err)
	}
}

func (m *Model) setFocus(f field) tea.Cmd {
	m.focus = f
	var cmd tea.Cmd
	for i := range m.inputs {
		if i == m.inputFor(f) {
			cmd = m.inputs[i].Focus()
			continue
		}
		m.inputs[i].Blur()
	}
	return cmd
}

func (m Model) inputFor(f field) int {
	switch f {
	case fieldA:
		return 0
	case fieldB:
		return 1
	}
	return -1
}

func (m Model) inputIndex() (int, bool) {
	i := m.inputFor(m.focus)
	return i, i >= 0
}

func (m *Model) focusedCarousel() *carousel {
	switch m.focus {
	case fieldOperator:
		return &m.opCarousel
	case fieldSpacing:
		return &m.spCarousel
	}
	return nil
}

// View renders the calculator.
func (m Model) View() string {
	now := m.clock()
	t := m.theme

	label := lipgloss.NewStyle().Foreground(t.Label)
	muted := lipgloss.NewStyle().Foreground(t.Muted)
	box := lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(t.Muted).Padding(0, 1)
	focused := box.BorderForeground(t.Focus)

	frame := func(f field, s string) string {
		if m.focus == f {
			return focused.Render(s)
		}
		return box.Render(s)
	}

	sel := m.w.Selection()
	form := lipgloss.JoinHorizontal(lipgloss.Center,
		frame(fieldA, m.inputs[0].View()),
		" ",
		frame(fieldOperator, carouselLabel(sel.Operator.Label(), label)),
		" ",
		frame(fieldB, m.inputs[1].View()),
	)
	spacing := lipgloss.JoinHorizontal(lipgloss.Center,
		muted.Render("spacing "),
		frame(fieldSpacing, carouselLabel(sel.Spacing.String(), label)),
	)

	result := lipgloss.JoinHorizontal(lipgloss.Center,
		label.Render("= "),
		RenderRow(m.w.Sequence(), t, m.style, now),
	)

	sections := []string{
		GradientText("FLIPCALC", t.Title, t.Digit),
		muted.Render("calculatrice"),
		"",
		form,
		spacing,
		"",
		result,
	}
	if m.showHistory {
		if g := historyGraph(m.w.History().Values(), min(m.width-4, 60), t); g != "" {
			sections = append(sections, "", g)
		}
	}
	sections = append(sections, "", m.help.View(m.keys))

	return lipgloss.NewStyle().Padding(1, 2).Render(lipgloss.JoinVertical(lipgloss.Left, sections...))
}

func carouselLabel(s string, style lipgloss.Style) string {
	return "‹ " + style.Render(s) + " ›"
}

// Run starts the interactive program and blocks until it exits.
func Run(ctx context.Context, opts Options) error {
	p := tea.NewProgram(New(opts), tea.WithAltScreen(), tea.WithContext(ctx))
	_, err := p.Run()
	return err
}
