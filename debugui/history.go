package debugui

// History is a fixed-size ring of samples for line plots.
type History struct {
	samples []float32
	offset  int
}

func NewHistory(size int) *History {
	return &History{samples: make([]float32, size)}
}

// Push overwrites the oldest sample.
func (h *History) Push(v float32) {
	h.samples[h.offset] = v
	h.offset = (h.offset + 1) % len(h.samples)
}

// Ordered returns the samples oldest first.
func (h *History) Ordered() []float32 {
	out := make([]float32, len(h.samples))
	copy(out, h.samples[h.offset:])
	copy(out[len(h.samples)-h.offset:], h.samples[:h.offset])
	return out
}

// Average returns the mean over the whole ring, counting unfilled slots as zero.
func (h *History) Average() float32 {
	var sum float32
	for _, v := range h.samples {
		sum += v
	}
	return sum / float32(len(h.samples))
}

func (h *History) Len() int { return len(h.samples) }
