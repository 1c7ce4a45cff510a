//go:build tinygo

package core

import "sync/atomic"

var systemTicksValue uint32

// getSystemTicks returns the current tick count
func getSystemTicks() Ticks {
	return Ticks(atomic.LoadUint32(&systemTicksValue))
}

// SetClock sets the tick counter; target timer interrupts call this
func SetClock(t Ticks) {
	atomic.StoreUint32(&systemTicksValue, uint32(t))
}

// AdvanceClock steps the tick counter forward
func AdvanceClock(d Ticks) {
	atomic.AddUint32(&systemTicksValue, uint32(d))
}
