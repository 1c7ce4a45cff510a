//go:build !tinygo

package core

import "time"

var systemTicks Ticks

// getSystemTicks returns the simulated tick count (regular Go builds)
func getSystemTicks() Ticks {
	return systemTicks
}

// SetClock sets the simulated clock to an absolute reading
func SetClock(t Ticks) {
	systemTicks = t
}

// AdvanceClock steps the simulated clock forward
func AdvanceClock(d Ticks) {
	systemTicks += d
}

// WallClock returns a ClockSource backed by the host monotonic clock in
// milliseconds. The reading wraps after ~49 days, the same as an MCU
// millis() counter, which the wrap-safe arithmetic absorbs.
func WallClock() ClockSource {
	start := time.Now()
	return func() Ticks {
		return Ticks(time.Since(start) / time.Millisecond)
	}
}
