//go:build tinygo

package eeprom

import (
	"tinygo.org/x/drivers"
	"tinygo.org/x/drivers/at24cx"
)

// AT24CX adapts an AT24C32/64/128/256/512 2-wire serial EEPROM to the
// hal.EEPROMDevice interface. The driver already speaks ReadAt/WriteAt;
// this wrapper pins the capacity for bounds checks.
type AT24CX struct {
	dev  at24cx.Device
	size int64
}

// NewAT24CX returns a configured device on the given I2C bus. size is
// the chip capacity in bytes (4096 for an AT24C32, 32768 for a C256).
func NewAT24CX(bus drivers.I2C, size int64) *AT24CX {
	d := at24cx.New(bus)
	d.Configure(at24cx.Config{})
	return &AT24CX{dev: d, size: size}
}

func (d *AT24CX) ReadAt(p []byte, off int64) (int, error) {
	return d.dev.ReadAt(p, off)
}

func (d *AT24CX) WriteAt(p []byte, off int64) (int, error) {
	return d.dev.WriteAt(p, off)
}

func (d *AT24CX) Size() int64 {
	return d.size
}
