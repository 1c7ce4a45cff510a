// In-memory driver implementations for tests and host-side simulation
package hal

import (
	"errors"
	"io"
)

// ErrNotConfigured is returned when a pin or channel is used before being configured
var ErrNotConfigured = errors.New("hal: pin or channel not configured")

type simPin struct {
	output bool
	value  bool
}

// SimGPIO is an in-memory GPIODriver. Tests drive input pins with SetInput
// and observe outputs with ReadPin.
type SimGPIO struct {
	pins map[Pin]*simPin
}

// NewSimGPIO returns an empty simulated GPIO bank
func NewSimGPIO() *SimGPIO {
	return &SimGPIO{pins: make(map[Pin]*simPin)}
}

func (g *SimGPIO) ConfigureOutput(pin Pin) error {
	g.pins[pin] = &simPin{output: true}
	return nil
}

func (g *SimGPIO) ConfigureInputPullUp(pin Pin) error {
	g.pins[pin] = &simPin{value: true} // pull-up idles high
	return nil
}

func (g *SimGPIO) ConfigureInputPullDown(pin Pin) error {
	g.pins[pin] = &simPin{}
	return nil
}

func (g *SimGPIO) SetPin(pin Pin, value bool) error {
	p, ok := g.pins[pin]
	if !ok {
		return ErrNotConfigured
	}
	p.value = value
	return nil
}

func (g *SimGPIO) GetPin(pin Pin) (bool, error) {
	p, ok := g.pins[pin]
	if !ok {
		return false, ErrNotConfigured
	}
	return p.value, nil
}

func (g *SimGPIO) ReadPin(pin Pin) bool {
	v, _ := g.GetPin(pin)
	return v
}

// SetInput sets the externally driven level of an input pin
func (g *SimGPIO) SetInput(pin Pin, value bool) {
	if p, ok := g.pins[pin]; ok {
		p.value = value
	}
}

// SimADC is an in-memory ADCDriver; tests preload channel readings
type SimADC struct {
	channels map[ADCChannel]uint16
}

// NewSimADC returns an empty simulated converter
func NewSimADC() *SimADC {
	return &SimADC{channels: make(map[ADCChannel]uint16)}
}

func (a *SimADC) ConfigureChannel(ch ADCChannel) error {
	if _, ok := a.channels[ch]; !ok {
		a.channels[ch] = 0xFFFF // open input floats high, like an analog keypad at rest
	}
	return nil
}

func (a *SimADC) ReadChannel(ch ADCChannel) (uint16, error) {
	v, ok := a.channels[ch]
	if !ok {
		return 0, ErrNotConfigured
	}
	return v, nil
}

func (a *SimADC) Sample(ch ADCChannel) uint16 {
	v, _ := a.ReadChannel(ch)
	return v
}

// SetSample sets the reading the channel will report
func (a *SimADC) SetSample(ch ADCChannel, value uint16) {
	a.channels[ch] = value
}

type simPWM struct {
	periodUS uint32
	pulseUS  uint32
}

// SimPWM is an in-memory PWMDriver
type SimPWM struct {
	channels map[PWMChannel]*simPWM
}

// NewSimPWM returns an empty simulated PWM bank
func NewSimPWM() *SimPWM {
	return &SimPWM{channels: make(map[PWMChannel]*simPWM)}
}

func (p *SimPWM) ConfigureChannel(ch PWMChannel, periodUS uint32) error {
	p.channels[ch] = &simPWM{periodUS: periodUS}
	return nil
}

func (p *SimPWM) SetPulseWidth(ch PWMChannel, us uint32) error {
	c, ok := p.channels[ch]
	if !ok {
		return ErrNotConfigured
	}
	c.pulseUS = us
	return nil
}

func (p *SimPWM) PulseWidth(ch PWMChannel) (uint32, error) {
	c, ok := p.channels[ch]
	if !ok {
		return 0, ErrNotConfigured
	}
	return c.pulseUS, nil
}

// MemEEPROM is an in-memory EEPROMDevice
type MemEEPROM struct {
	data []byte
}

// NewMemEEPROM returns a zero-filled device of the given capacity
func NewMemEEPROM(size int) *MemEEPROM {
	return &MemEEPROM{data: make([]byte, size)}
}

func (m *MemEEPROM) ReadAt(p []byte, off int64) (int, error) {
	if off < 0 || off >= int64(len(m.data)) {
		return 0, io.EOF
	}
	n := copy(p, m.data[off:])
	if n < len(p) {
		return n, io.ErrUnexpectedEOF
	}
	return n, nil
}

func (m *MemEEPROM) WriteAt(p []byte, off int64) (int, error) {
	if off < 0 || off >= int64(len(m.data)) {
		return 0, io.ErrShortWrite
	}
	n := copy(m.data[off:], p)
	if n < len(p) {
		return n, io.ErrShortWrite
	}
	return n, nil
}

func (m *MemEEPROM) Size() int64 {
	return int64(len(m.data))
}
