// Interval timer, the primitive every scheduling component builds on
package core

// IntervalTimer tracks elapsed time against a configured interval.
//
// The timer keeps the absolute clock reading it was started or resumed at
// rather than counting down, so repeated resets accumulate no drift. A
// stopped timer freezes its elapsed time; Resume rebases the start reading
// so elapsed continues from the frozen value instead of restarting. Once
// the interval expires the timer reports expired until it is reset or
// restarted. An interval of zero means the timer never expires; it is the
// way to represent disabled or manual-only timers, not an error.
//
// The zero value is a stopped, never-started timer: Resume on it behaves
// exactly like Start.
type IntervalTimer struct {
	interval Ticks // configured duration, 0 = never expires
	begin    Ticks // reading at last start/resume/reset
	end      Ticks // reading at last stop, freezes elapsed
	running  bool
}

// NewIntervalTimer returns a stopped timer with the given interval
func NewIntervalTimer(interval Ticks) *IntervalTimer {
	return &IntervalTimer{interval: interval}
}

// Interval returns the configured duration
func (t *IntervalTimer) Interval() Ticks {
	return t.interval
}

// SetInterval sets the duration. It does not reset or restart the timer;
// the new interval is compared against the already accumulated elapsed time.
func (t *IntervalTimer) SetInterval(interval Ticks) {
	t.interval = interval
}

// Start unconditionally restarts the timer: elapsed time begins at zero
// from the current clock reading and any frozen carry-over is discarded.
func (t *IntervalTimer) Start() {
	t.Reset()
	t.running = true
}

// StartWith sets the interval and restarts the timer
func (t *IntervalTimer) StartWith(interval Ticks) {
	t.interval = interval
	t.Start()
}

// Stop halts the timer and freezes its elapsed time. Time spent stopped
// is never counted.
func (t *IntervalTimer) Stop() {
	if t.running {
		t.end = Now()
		t.running = false
	}
}

// Resume restarts a stopped timer from its frozen elapsed time. On a
// never-started timer the frozen value is zero, so Resume equals Start.
func (t *IntervalTimer) Resume() {
	if !t.running {
		t.begin = Now() - t.Elapsed()
		t.running = true
	}
}

// Reset rebases the timer on the current clock reading: a running timer
// restarts its interval without changing run state, a stopped timer drops
// any frozen elapsed value.
func (t *IntervalTimer) Reset() {
	now := Now()
	t.begin = now
	t.end = now
}

// Elapsed returns the time accumulated since the timer was last started,
// resumed or reset. A stopped timer reports the frozen value.
func (t *IntervalTimer) Elapsed() Ticks {
	if t.running {
		return Since(Now(), t.begin)
	}
	return Since(t.end, t.begin)
}

// Expired reports whether the running timer's interval has elapsed.
// A zero interval never expires.
func (t *IntervalTimer) Expired() bool {
	return t.running && t.interval != 0 && t.Elapsed() >= t.interval
}

// Active reports whether the timer is currently running
func (t *IntervalTimer) Active() bool {
	return t.running
}
