package input

import (
	"tickwork/core"
	"tickwork/hal"
)

// AnalogInput polls one analog channel and fires a command while or when
// the reading falls inside a configured window. Edge triggers fire once
// when the reading enters the window; level triggers fire on every poll
// inside it.
type AnalogInput struct {
	channel  hal.ADCChannel
	value    uint16 // last sampled reading
	inWindow bool
	trigger  Trigger
	low      uint16
	high     uint16
	command  core.Command
}

// NewAnalogInput configures the channel and returns a poller
func NewAnalogInput(channel hal.ADCChannel) (*AnalogInput, error) {
	if err := hal.MustADC().ConfigureChannel(channel); err != nil {
		return nil, err
	}
	return &AnalogInput{channel: channel}, nil
}

// Channel returns the attached channel
func (a *AnalogInput) Channel() hal.ADCChannel {
	return a.channel
}

// SetTrigger sets the trigger type, the [low, high] window and the
// command to execute. The command may be nil.
func (a *AnalogInput) SetTrigger(trigger Trigger, low, high uint16, command core.Command) {
	a.trigger = trigger
	a.low = low
	a.high = high
	a.command = command
}

// Read samples and returns the channel's current reading
func (a *AnalogInput) Read() uint16 {
	a.value = hal.MustADC().Sample(a.channel)
	return a.value
}

// Triggered samples the channel, applies the window condition and fires
// the attached command if it holds.
func (a *AnalogInput) Triggered() bool {
	wasIn := a.inWindow
	v := a.Read()
	a.inWindow = v >= a.low && v <= a.high

	var fired bool
	switch a.trigger {
	case TriggerEdge:
		fired = a.inWindow && !wasIn
	case TriggerLevel:
		fired = a.inWindow
	}
	if fired && a.command != nil {
		a.command.Execute()
	}
	return fired
}

// Poll services the input once
func (a *AnalogInput) Poll() {
	a.Triggered()
}

// Clock services the input, satisfying the Clockable contract
func (a *AnalogInput) Clock() {
	a.Poll()
}
