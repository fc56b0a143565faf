package clock

import "time"

// Manual is a Clock whose time only moves when told to. Intended for tests.
type Manual struct {
	t time.Time
}

// NewManual creates a Manual clock frozen at t.
func NewManual(t time.Time) *Manual { return &Manual{t: t} }

// Now returns the frozen time.
func (m *Manual) Now() time.Time { return m.t }

// Set moves the clock to t.
func (m *Manual) Set(t time.Time) { m.t = t }

// Advance moves the clock forward by d.
func (m *Manual) Advance(d time.Duration) { m.t = m.t.Add(d) }
