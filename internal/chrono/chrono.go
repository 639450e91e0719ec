// Package chrono provides a simple chronometer for timing operations,
// with lap recording and human-readable duration formatting.
package chrono

import (
	"fmt"
	"time"
)

// Clock supplies the current time; injectable for tests.
type Clock func() time.Time

// Chronometer accumulates elapsed wall time across start/stop cycles
// and records laps. The zero value is not usable; call New.
type Chronometer struct {
	clock   Clock
	started time.Time
	accum   time.Duration
	running bool
	laps    []time.Duration
}

// Option configures a Chronometer during creation.
type Option func(*Chronometer)

// WithClock replaces the time source.
func WithClock(clock Clock) Option {
	return func(c *Chronometer) {
		if clock != nil {
			c.clock = clock
		}
	}
}

// New creates a stopped chronometer.
func New(opts ...Option) *Chronometer {
	c := &Chronometer{clock: time.Now}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Start begins timing from zero, discarding any accumulated time and
// laps.
func (c *Chronometer) Start() {
	c.accum = 0
	c.laps = nil
	c.started = c.clock()
	c.running = true
}

// Stop halts timing, retaining the accumulated elapsed time. Stopping
// a stopped chronometer is a no-op.
func (c *Chronometer) Stop() {
	if !c.running {
		return
	}
	c.accum += c.clock().Sub(c.started)
	c.running = false
}

// Resume continues timing after Stop without discarding accumulated
// time. Resuming a running chronometer is a no-op.
func (c *Chronometer) Resume() {
	if c.running {
		return
	}
	c.started = c.clock()
	c.running = true
}

// Reset stops the chronometer and discards all state.
func (c *Chronometer) Reset() {
	c.accum = 0
	c.laps = nil
	c.running = false
}

// Running reports whether the chronometer is timing.
func (c *Chronometer) Running() bool {
	return c.running
}

// Elapsed returns the total accumulated time, including the current
// running span.
func (c *Chronometer) Elapsed() time.Duration {
	if c.running {
		return c.accum + c.clock().Sub(c.started)
	}
	return c.accum
}

// Lap records and returns the elapsed time at this moment.
func (c *Chronometer) Lap() time.Duration {
	d := c.Elapsed()
	c.laps = append(c.laps, d)
	return d
}

// Laps returns the recorded lap times.
func (c *Chronometer) Laps() []time.Duration {
	out := make([]time.Duration, len(c.laps))
	copy(out, c.laps)
	return out
}

// Format renders a duration compactly for console output: sub-second
// values in milliseconds, sub-minute in seconds, longer in minutes and
// seconds.
func Format(d time.Duration) string {
	switch {
	case d < time.Millisecond:
		return fmt.Sprintf("%dµs", d.Microseconds())
	case d < time.Second:
		return fmt.Sprintf("%dms", d.Milliseconds())
	case d < time.Minute:
		return fmt.Sprintf("%.2fs", d.Seconds())
	default:
		m := int(d.Minutes())
		s := int(d.Seconds()) - m*60
		return fmt.Sprintf("%dm%02ds", m, s)
	}
}
