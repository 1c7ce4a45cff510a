//go:build tinygo

package display

import (
	"tinygo.org/x/drivers"
	"tinygo.org/x/drivers/hd44780i2c"
)

// HD44780 adapts an I2C-attached HD44780 character LCD to the Device
// interface.
type HD44780 struct {
	dev hd44780i2c.Device
}

// NewHD44780 configures an HD44780 behind a PCF8574 I2C backpack
func NewHD44780(bus drivers.I2C, addr uint8, width, height uint8) (*HD44780, error) {
	dev := hd44780i2c.New(bus, addr)
	err := dev.Configure(hd44780i2c.Config{
		Width:  width,
		Height: height,
	})
	if err != nil {
		return nil, err
	}
	return &HD44780{dev: dev}, nil
}

func (d *HD44780) Clear() error {
	return d.dev.ClearDisplay()
}

func (d *HD44780) SetCursor(col, row uint8) error {
	return d.dev.SetCursor(col, row)
}

func (d *HD44780) Print(p []byte) error {
	return d.dev.Print(p)
}

func (d *HD44780) CursorOn(on bool) error {
	return d.dev.CursorOn(on)
}

func (d *HD44780) CursorBlink(on bool) error {
	return d.dev.CursorBlink(on)
}

func (d *HD44780) DisplayOn(on bool) error {
	return d.dev.DisplayOn(on)
}
