package physics

// TrailSample is one rendered history point of the player.
type TrailSample struct {
	X, Y     float64
	Rotation float64
}

// Trail is a fixed-capacity ring buffer of recent samples, newest first.
// It exists purely for rendering; the simulation never reads it back.
type Trail struct {
	buf  []TrailSample
	head int // index of the newest sample
	n    int
}

func newTrail(capacity int) Trail {
	if capacity < 1 {
		capacity = 1
	}
	return Trail{buf: make([]TrailSample, capacity)}
}

// Push inserts a sample at the front, evicting the oldest when full.
func (t *Trail) Push(s TrailSample) {
	t.head--
	if t.head < 0 {
		t.head = len(t.buf) - 1
	}
	t.buf[t.head] = s
	if t.n < len(t.buf) {
		t.n++
	}
}

// Len returns the number of stored samples.
func (t *Trail) Len() int { return t.n }

// Cap returns the fixed capacity.
func (t *Trail) Cap() int { return len(t.buf) }

// At returns the i-th sample, 0 being the newest.
func (t *Trail) At(i int) TrailSample {
	return t.buf[(t.head+i)%len(t.buf)]
}

// Reset drops all samples, keeping capacity.
func (t *Trail) Reset() {
	t.head = 0
	t.n = 0
}
