package feed

import "time"

// gate admits at most one event per window. Both gesture paths share one
// gate, so a wheel scroll and a touch swipe cannot double-fire together.
type gate struct {
	window time.Duration
	last   time.Time
}

// admit reports whether now clears the window and, if so, consumes it.
func (g *gate) admit(now time.Time) bool {
	if !g.admits(now) {
		return false
	}
	g.last = now
	return true
}

// admits peeks without consuming the window.
func (g *gate) admits(now time.Time) bool {
	return g.last.IsZero() || now.Sub(g.last) >= g.window
}
