//go:build rp2040 || rp2350

package main

import (
	"errors"
	"io"
	"machine"

	"tickwork/hal"
)

// rpGPIO maps hal pin numbers straight onto machine pins
type rpGPIO struct{}

func (rpGPIO) ConfigureOutput(pin hal.Pin) error {
	machine.Pin(pin).Configure(machine.PinConfig{Mode: machine.PinOutput})
	return nil
}

func (rpGPIO) ConfigureInputPullUp(pin hal.Pin) error {
	machine.Pin(pin).Configure(machine.PinConfig{Mode: machine.PinInputPullup})
	return nil
}

func (rpGPIO) ConfigureInputPullDown(pin hal.Pin) error {
	machine.Pin(pin).Configure(machine.PinConfig{Mode: machine.PinInputPulldown})
	return nil
}

func (rpGPIO) SetPin(pin hal.Pin, value bool) error {
	machine.Pin(pin).Set(value)
	return nil
}

func (rpGPIO) GetPin(pin hal.Pin) (bool, error) {
	return machine.Pin(pin).Get(), nil
}

func (rpGPIO) ReadPin(pin hal.Pin) bool {
	return machine.Pin(pin).Get()
}

// adcPins maps hal channel numbers onto the analog-capable pins
var adcPins = []machine.Pin{machine.ADC0, machine.ADC1, machine.ADC2, machine.ADC3}

var errBadChannel = errors.New("no such channel")

type rpADC struct {
	inputs [4]machine.ADC
}

func newRPADC() *rpADC {
	machine.InitADC()
	return &rpADC{}
}

func (a *rpADC) ConfigureChannel(ch hal.ADCChannel) error {
	if int(ch) >= len(adcPins) {
		return errBadChannel
	}
	a.inputs[ch] = machine.ADC{Pin: adcPins[ch]}
	a.inputs[ch].Configure(machine.ADCConfig{})
	return nil
}

func (a *rpADC) ReadChannel(ch hal.ADCChannel) (uint16, error) {
	if int(ch) >= len(adcPins) {
		return 0, errBadChannel
	}
	return a.inputs[ch].Get(), nil
}

func (a *rpADC) Sample(ch hal.ADCChannel) uint16 {
	v, _ := a.ReadChannel(ch)
	return v
}

// pwmSlice is the slice of the RP2040 PWM peripheral a servo pin maps to
type pwmSlice interface {
	Configure(config machine.PWMConfig) error
	Channel(pin machine.Pin) (uint8, error)
	Set(channel uint8, value uint32)
	Top() uint32
}

// rpPWM drives one servo pin from one PWM slice
type rpPWM struct {
	slice    pwmSlice
	pin      machine.Pin
	ch       uint8
	periodUS uint32
	pulseUS  uint32
}

func newRPPWM(slice pwmSlice, pin machine.Pin) *rpPWM {
	return &rpPWM{slice: slice, pin: pin}
}

func (p *rpPWM) ConfigureChannel(_ hal.PWMChannel, periodUS uint32) error {
	if err := p.slice.Configure(machine.PWMConfig{Period: uint64(periodUS) * 1000}); err != nil {
		return err
	}
	ch, err := p.slice.Channel(p.pin)
	if err != nil {
		return err
	}
	p.ch = ch
	p.periodUS = periodUS
	return nil
}

func (p *rpPWM) SetPulseWidth(_ hal.PWMChannel, us uint32) error {
	if p.periodUS == 0 {
		return errBadChannel
	}
	p.pulseUS = us
	p.slice.Set(p.ch, uint32(uint64(p.slice.Top())*uint64(us)/uint64(p.periodUS)))
	return nil
}

func (p *rpPWM) PulseWidth(_ hal.PWMChannel) (uint32, error) {
	return p.pulseUS, nil
}

// usbSerial adapts the USB CDC console to the io.ReadWriter the remote
// poller expects. Reads never block; an empty receive buffer reads as
// io.EOF like an idle port.
type usbSerial struct{}

func (usbSerial) Read(p []byte) (int, error) {
	n := 0
	for n < len(p) && machine.Serial.Buffered() > 0 {
		b, err := machine.Serial.ReadByte()
		if err != nil {
			break
		}
		p[n] = b
		n++
	}
	if n == 0 {
		return 0, io.EOF
	}
	return n, nil
}

func (usbSerial) Write(p []byte) (int, error) {
	return machine.Serial.Write(p)
}
