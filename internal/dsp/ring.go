package dsp

// Ring is a circular buffer for signal history values.
type Ring struct {
	buf   []float64
	pos   int
	count int
}

// NewRing creates a new circular buffer with the given capacity.
func NewRing(capacity int) *Ring {
	return &Ring{
		buf: make([]float64, capacity),
	}
}

// Push adds a value to the ring buffer.
func (r *Ring) Push(val float64) {
	r.buf[r.pos] = val
	r.pos = (r.pos + 1) % len(r.buf)
	if r.count < len(r.buf) {
		r.count++
	}
}

// Values returns all stored values in chronological order.
func (r *Ring) Values() []float64 {
	if r.count == 0 {
		return nil
	}
	result := make([]float64, r.count)
	if r.count < len(r.buf) {
		copy(result, r.buf[:r.count])
	} else {
		start := r.pos
		n := copy(result, r.buf[start:])
		copy(result[n:], r.buf[:start])
	}
	return result
}

// Last returns the most recent value, or 0 if empty.
func (r *Ring) Last() float64 {
	if r.count == 0 {
		return 0
	}
	idx := (r.pos - 1 + len(r.buf)) % len(r.buf)
	return r.buf[idx]
}

// Tail returns up to n of the most recent values in chronological order.
func (r *Ring) Tail(n int) []float64 {
	vals := r.Values()
	if len(vals) <= n {
		return vals
	}
	return vals[len(vals)-n:]
}

// Len returns the number of stored values.
func (r *Ring) Len() int {
	return r.count
}
