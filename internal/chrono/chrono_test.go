package chrono

import (
	"testing"
	"time"
)

// fakeClock advances by a fixed step on every reading.
type fakeClock struct {
	now  time.Time
	step time.Duration
}

func (f *fakeClock) read() time.Time {
	t := f.now
	f.now = f.now.Add(f.step)
	return t
}

func TestStartStopElapsed(t *testing.T) {
	fc := &fakeClock{now: time.Unix(0, 0), step: 100 * time.Millisecond}
	c := New(WithClock(fc.read))

	c.Start() // t=0
	c.Stop()  // t=100ms

	if got := c.Elapsed(); got != 100*time.Millisecond {
		t.Errorf("expected 100ms, got %v", got)
	}
	if c.Running() {
		t.Error("expected stopped chronometer")
	}
}

func TestResumeAccumulates(t *testing.T) {
	fc := &fakeClock{now: time.Unix(0, 0), step: time.Second}
	c := New(WithClock(fc.read))

	c.Start()  // t=0
	c.Stop()   // t=1s, accum=1s
	c.Resume() // t=2s
	c.Stop()   // t=3s, accum=2s

	if got := c.Elapsed(); got != 2*time.Second {
		t.Errorf("expected 2s, got %v", got)
	}
}

func TestStartDiscardsPrevious(t *testing.T) {
	fc := &fakeClock{now: time.Unix(0, 0), step: time.Second}
	c := New(WithClock(fc.read))

	c.Start()
	c.Stop()
	c.Lap()
	c.Start()

	if len(c.Laps()) != 0 {
		t.Error("Start must discard laps")
	}
}

func TestLaps(t *testing.T) {
	fc := &fakeClock{now: time.Unix(0, 0), step: time.Second}
	c := New(WithClock(fc.read))

	c.Start()          // t=0
	first := c.Lap()   // t=1s
	second := c.Lap()  // t=2s

	if first != time.Second || second != 2*time.Second {
		t.Errorf("expected 1s and 2s laps, got %v and %v", first, second)
	}
	if laps := c.Laps(); len(laps) != 2 {
		t.Errorf("expected 2 recorded laps, got %d", len(laps))
	}
}

func TestReset(t *testing.T) {
	fc := &fakeClock{now: time.Unix(0, 0), step: time.Second}
	c := New(WithClock(fc.read))

	c.Start()
	c.Lap()
	c.Reset()

	if c.Elapsed() != 0 || c.Running() || len(c.Laps()) != 0 {
		t.Error("Reset must clear all state")
	}
}

func TestFormat(t *testing.T) {
	tests := []struct {
		d    time.Duration
		want string
	}{
		{500 * time.Microsecond, "500µs"},
		{42 * time.Millisecond, "42ms"},
		{1500 * time.Millisecond, "1.50s"},
		{90 * time.Second, "1m30s"},
		{3605 * time.Second, "60m05s"},
	}

	for _, tt := range tests {
		if got := Format(tt.d); got != tt.want {
			t.Errorf("Format(%v) = %q, want %q", tt.d, got, tt.want)
		}
	}
}
