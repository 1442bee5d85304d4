// Package history keeps the session's accepted weight entries.
package history

// Tracker is an append-only, in-memory sequence of weights in entry order.
// It is owned by a single session and is not safe for concurrent writers.
type Tracker struct {
	weights []float64
}

// NewTracker returns an empty tracker.
func NewTracker() *Tracker {
	return &Tracker{}
}

// Append adds w to the end of the history.
func (t *Tracker) Append(w float64) {
	t.weights = append(t.weights, w)
}

// Snapshot returns a copy of the history in entry order. It is never nil.
func (t *Tracker) Snapshot() []float64 {
	out := make([]float64, len(t.weights))
	copy(out, t.weights)
	return out
}

// Len returns the number of entries.
func (t *Tracker) Len() int {
	return len(t.weights)
}
