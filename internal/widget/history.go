package widget

// History is a bounded ring of recent valid results.
type History struct {
	buf   []float64
	start int
	n     int
}

// NewHistory returns a history holding up to size values. A size of zero
// keeps nothing.
func NewHistory(size int) *History {
	return &History{buf: make([]float64, max(size, 0))}
}

// Add records v, evicting the oldest value when full.
func (h *History) Add(v float64) {
	if len(h.buf) == 0 {
		return
	}
	if h.n < len(h.buf) {
		h.buf[(h.start+h.n)%len(h.buf)] = v
		h.n++
		return
	}
	h.buf[h.start] = v
	h.start = (h.start + 1) % len(h.buf)
}

// Len returns the number of recorded values.
func (h *History) Len() int { return h.n }

// Values returns the values oldest first.
func (h *History) Values() []float64 {
	out := make([]float64, h.n)
	for i := range out {
		out[i] = h.buf[(h.start+i)%len(h.buf)]
	}
	return out
}
