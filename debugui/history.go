package debugui

// History is a fixed-size ring of samples for plotting.
type History struct {
	samples []float32
	next    int
	full    bool
}

// NewHistory returns a ring holding size samples.
func NewHistory(size int) *History {
	if size <= 0 {
		panic("debugui: history size must be positive")
	}
	return &History{samples: make([]float32, size)}
}

// Push records a sample, overwriting the oldest once the ring is full.
func (h *History) Push(v float32) {
	h.samples[h.next] = v
	h.next++
	if h.next == len(h.samples) {
		h.next = 0
		h.full = true
	}
}

// Len returns the number of recorded samples.
func (h *History) Len() int {
	if h.full {
		return len(h.samples)
	}
	return h.next
}

// Ordered returns the recorded samples oldest first.
func (h *History) Ordered() []float32 {
	if !h.full {
		return append([]float32(nil), h.samples[:h.next]...)
	}
	out := make([]float32, 0, len(h.samples))
	out = append(out, h.samples[h.next:]...)
	return append(out, h.samples[:h.next]...)
}

// Average returns the mean of the recorded samples, or 0 when empty.
func (h *History) Average() float32 {
	n := h.Len()
	if n == 0 {
		return 0
	}
	var sum float32
	for _, v := range h.samples[:n] {
		sum += v
	}
	return sum / float32(n)
}

// Max returns the largest recorded sample, or 0 when empty.
func (h *History) Max() float32 {
	var m float32
	for _, v := range h.samples[:h.Len()] {
		m = max(m, v)
	}
	return m
}
