package core

import "testing"

func TestIntervalTimerExpiry(t *testing.T) {
	SetClock(0)
	timer := NewIntervalTimer(100)

	if timer.Active() {
		t.Error("Fresh timer should not be active")
	}

	timer.Start()
	if !timer.Active() {
		t.Error("Started timer should be active")
	}
	if timer.Expired() {
		t.Error("Timer expired immediately after start")
	}

	AdvanceClock(99)
	if timer.Expired() {
		t.Error("Timer expired before interval elapsed")
	}

	AdvanceClock(1)
	if !timer.Expired() {
		t.Error("Timer not expired at interval boundary")
	}

	// Expired is idempotent until reset
	AdvanceClock(500)
	if !timer.Expired() {
		t.Error("Expired state not held")
	}

	timer.Reset()
	if timer.Expired() {
		t.Error("Reset did not clear expired state")
	}
	if !timer.Active() {
		t.Error("Reset changed run state")
	}
}

func TestIntervalTimerWrapSafety(t *testing.T) {
	// Start the timer close to the counter maximum so the interval
	// boundary lands on the far side of the wrap.
	SetClock(0xFFFFFFF0)
	timer := NewIntervalTimer(100)
	timer.Start()

	AdvanceClock(50) // counter wraps to 0x22
	if got := timer.Elapsed(); got != 50 {
		t.Errorf("Elapsed across wrap = %d, want 50", got)
	}
	if timer.Expired() {
		t.Error("Timer expired before interval elapsed across wrap")
	}

	AdvanceClock(50)
	if !timer.Expired() {
		t.Error("Timer not expired at interval boundary across wrap")
	}
}

func TestIntervalTimerPauseResumeConservation(t *testing.T) {
	SetClock(0)
	timer := NewIntervalTimer(100)
	timer.Start()

	AdvanceClock(40)
	timer.Stop()
	if timer.Active() {
		t.Error("Stopped timer reports active")
	}
	if got := timer.Elapsed(); got != 40 {
		t.Errorf("Frozen elapsed = %d, want 40", got)
	}

	// Time spent stopped never counts.
	AdvanceClock(100000)
	if got := timer.Elapsed(); got != 40 {
		t.Errorf("Elapsed grew while stopped: %d", got)
	}
	if timer.Expired() {
		t.Error("Stopped timer reports expired")
	}

	timer.Resume()
	AdvanceClock(59)
	if timer.Expired() {
		t.Error("Timer expired before remaining time elapsed")
	}
	AdvanceClock(1)
	if !timer.Expired() {
		t.Error("Timer not expired after exactly interval of running time")
	}
}

func TestIntervalTimerResumeOnFreshTimer(t *testing.T) {
	SetClock(1000)
	timer := NewIntervalTimer(50)

	// Resume on a never-started timer behaves like Start.
	timer.Resume()
	if !timer.Active() {
		t.Error("Resume did not start fresh timer")
	}
	if got := timer.Elapsed(); got != 0 {
		t.Errorf("Elapsed after fresh resume = %d, want 0", got)
	}

	AdvanceClock(50)
	if !timer.Expired() {
		t.Error("Timer not expired one interval after fresh resume")
	}
}

func TestIntervalTimerZeroIntervalNeverExpires(t *testing.T) {
	SetClock(0)
	timer := NewIntervalTimer(0)
	timer.Start()

	AdvanceClock(1 << 30)
	if timer.Expired() {
		t.Error("Zero-interval timer expired")
	}
	if got := timer.Elapsed(); got != 1<<30 {
		t.Errorf("Elapsed = %d, want %d", got, 1<<30)
	}
}

func TestIntervalTimerSetIntervalDoesNotReset(t *testing.T) {
	SetClock(0)
	timer := NewIntervalTimer(1000)
	timer.Start()
	AdvanceClock(80)

	timer.SetInterval(50)
	if got := timer.Elapsed(); got != 80 {
		t.Errorf("SetInterval disturbed elapsed: %d", got)
	}
	if !timer.Expired() {
		t.Error("Shortened interval below elapsed should expire")
	}
}

func TestIntervalTimerStartWith(t *testing.T) {
	SetClock(0)
	timer := NewIntervalTimer(10)
	timer.Start()
	AdvanceClock(500)

	// StartWith discards accumulated time and replaces the interval.
	timer.StartWith(200)
	if got := timer.Elapsed(); got != 0 {
		t.Errorf("Elapsed after StartWith = %d, want 0", got)
	}
	if got := timer.Interval(); got != 200 {
		t.Errorf("Interval after StartWith = %d, want 200", got)
	}

	AdvanceClock(200)
	if !timer.Expired() {
		t.Error("Timer not expired after new interval")
	}
}

func TestIntervalTimerResetWhileStopped(t *testing.T) {
	SetClock(0)
	timer := NewIntervalTimer(100)
	timer.Start()
	AdvanceClock(70)
	timer.Stop()

	// Reset on a stopped timer drops the frozen elapsed value.
	timer.Reset()
	if got := timer.Elapsed(); got != 0 {
		t.Errorf("Frozen elapsed after reset = %d, want 0", got)
	}

	timer.Resume()
	AdvanceClock(99)
	if timer.Expired() {
		t.Error("Timer expired early after stopped reset")
	}
	AdvanceClock(1)
	if !timer.Expired() {
		t.Error("Timer not expired one full interval after stopped reset")
	}
}
