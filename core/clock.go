// Monotonic tick clock for the scheduling core
// All elapsed-time arithmetic uses wrap-safe unsigned subtraction so the
// core stays correct across counter overflow
package core

// Ticks is a reading of the system tick counter. The counter increases
// monotonically and wraps modulo 2^32. One tick is one millisecond on the
// default clock sources; targets with a different timer rate convert with
// TicksFromMS/TicksToMS.
type Ticks uint32

// ClockFreq is the tick rate of the default clock sources, in Hz
const ClockFreq = 1000

// ClockSource supplies the current tick count
type ClockSource func() Ticks

var clockSource ClockSource = getSystemTicks

// SetClockSource installs the clock the core reads from. Target code
// registers its hardware counter here; hosts install a wall clock and
// tests a manually stepped one. Passing nil restores the default source.
func SetClockSource(src ClockSource) {
	if src == nil {
		src = getSystemTicks
	}
	clockSource = src
}

// Now returns the current clock reading
func Now() Ticks {
	return clockSource()
}

// Since returns the time elapsed between start and a later reading now.
// The unsigned difference is correct even when the counter wrapped between
// the two readings, so callers must never compare readings directly.
func Since(now, start Ticks) Ticks {
	return now - start
}

// TicksFromMS converts milliseconds to ticks
func TicksFromMS(ms uint32) Ticks {
	return Ticks(ms * (ClockFreq / 1000))
}

// TicksToMS converts ticks to milliseconds
func TicksToMS(t Ticks) uint32 {
	return uint32(t) / (ClockFreq / 1000)
}
