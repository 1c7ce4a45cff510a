// Digital and analog GPIO input polling
// Inputs are passive objects serviced through the scheduling contracts:
// a scheduler task polls them and an optional trigger command fires when
// the configured condition is met
package input

import (
	"tickwork/core"
	"tickwork/hal"
)

// Trigger enumerates the input trigger types
type Trigger uint8

const (
	// TriggerNone inputs are read-only and never fire a command
	TriggerNone Trigger = iota
	// TriggerEdge fires when the input transitions into the trigger state
	TriggerEdge
	// TriggerLevel fires on every poll while the input is in the trigger state
	TriggerLevel
)

// DigitalInput polls one digital GPIO pin. A trigger condition and
// command may be attached; Poll samples the pin and fires the command
// when the condition holds.
type DigitalInput struct {
	pin     hal.Pin
	state   bool // last sampled level
	trigger Trigger
	want    bool // level or edge destination that triggers
	command core.Command
}

// NewDigitalInput configures pin as an input and returns a poller.
// pullup selects the internal pull-up resistor, otherwise pull-down.
func NewDigitalInput(pin hal.Pin, pullup bool) (*DigitalInput, error) {
	gpio := hal.MustGPIO()
	var err error
	if pullup {
		err = gpio.ConfigureInputPullUp(pin)
	} else {
		err = gpio.ConfigureInputPullDown(pin)
	}
	if err != nil {
		return nil, err
	}
	return &DigitalInput{pin: pin, state: gpio.ReadPin(pin)}, nil
}

// Pin returns the attached pin
func (d *DigitalInput) Pin() hal.Pin {
	return d.pin
}

// SetTrigger sets the trigger type, the triggering level and the command
// to execute. The command may be nil to only track the triggered state.
func (d *DigitalInput) SetTrigger(trigger Trigger, level bool, command core.Command) {
	d.trigger = trigger
	d.want = level
	d.command = command
}

// Read samples and returns the pin's current level
func (d *DigitalInput) Read() bool {
	d.state = hal.MustGPIO().ReadPin(d.pin)
	return d.state
}

// Is reports whether the pin currently reads the given level
func (d *DigitalInput) Is(level bool) bool {
	return d.Read() == level
}

// Triggered samples the pin, applies the trigger condition and fires the
// attached command if it holds. Edge triggers fire once per transition
// into the trigger level; level triggers fire on every triggered poll.
func (d *DigitalInput) Triggered() bool {
	prev := d.state
	cur := d.Read()

	var fired bool
	switch d.trigger {
	case TriggerEdge:
		fired = cur == d.want && prev != d.want
	case TriggerLevel:
		fired = cur == d.want
	}
	if fired && d.command != nil {
		d.command.Execute()
	}
	return fired
}

// Poll services the input once
func (d *DigitalInput) Poll() {
	d.Triggered()
}

// Clock services the input, satisfying the Clockable contract
func (d *DigitalInput) Clock() {
	d.Poll()
}
