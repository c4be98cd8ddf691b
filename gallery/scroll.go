package gallery

// Buckets is the number of scroll indicator segments.
const Buckets = 3

// Metrics is a snapshot of a horizontally scrolling container, in whatever
// unit the container measures (terminal columns for the card strip).
type Metrics struct {
	Left        int // scrolled distance from the start
	Width       int // full content width
	ClientWidth int // visible width
}

// Fraction returns how far through its scrollable range the container is,
// clamped to [0, 1]. Content that fits without scrolling is at 0.
func (m Metrics) Fraction() float64 {
	scrollable := m.Width - m.ClientWidth
	if scrollable <= 0 {
		return 0
	}
	f := float64(m.Left) / float64(scrollable)
	switch {
	case f < 0:
		return 0
	case f > 1:
		return 1
	}
	return f
}

// Bucket maps scroll progress to an indicator segment:
// below 0.33 is 0, below 0.66 is 1, anything further is 2.
func Bucket(m Metrics) int {
	f := m.Fraction()
	switch {
	case f < 0.33:
		return 0
	case f < 0.66:
		return 1
	default:
		return 2
	}
}

// Tracker turns a stream of scroll events into bucket updates for a single
// listener. Only the latest event matters; there is no queue.
type Tracker struct {
	listener func(bucket int)
	attached uint64
	last     int
}

// Attach registers fn to receive the bucket of every observed event and
// returns the function that removes it. Attaching again replaces the previous
// listener, and a stale detach func leaves the replacement in place.
func (t *Tracker) Attach(fn func(bucket int)) (detach func()) {
	t.attached++
	gen := t.attached
	t.listener = fn
	return func() {
		if t.attached == gen {
			t.listener = nil
		}
	}
}

// Attached reports whether a listener is registered.
func (t *Tracker) Attached() bool { return t.listener != nil }

// Observe handles one scroll event. Without a listener it does nothing.
func (t *Tracker) Observe(m Metrics) {
	if t.listener == nil {
		return
	}
	t.last = Bucket(m)
	t.listener(t.last)
}

// Last returns the bucket of the most recent observed event.
func (t *Tracker) Last() int { return t.last }
