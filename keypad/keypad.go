// Analog keypad reader
// Several buttons share one analog input through a resistor ladder; each
// button is identified by the voltage it pulls the pin to. The keypad is
// a passive object polled through the scheduling contracts.
package keypad

import (
	"tickwork/core"
	"tickwork/hal"
)

// Event enumerates the keypad button events
type Event uint8

const (
	// Press is reported when a button goes down (and on every poll while
	// held, if repeat mode is on)
	Press Event = iota
	// Longpress is reported per the configured LongPress mode
	Longpress
	// Release is reported when a button comes up
	Release
)

// LongPress enumerates the longpress trigger modes
type LongPress uint8

const (
	// LongPressHold triggers while the button is held down
	LongPressHold LongPress = iota
	// LongPressRelease triggers after the button is released
	LongPressRelease
	// LongPressNone never triggers
	LongPressNone
)

// Button maps an identifying tag to the analog level that selects it.
// Button collections MUST be ordered by increasing TriggerLevel.
type Button struct {
	Tag          int
	TriggerLevel uint16
}

// Callback receives button events
type Callback func(*Button, Event)

// Keypad decodes button events from one analog channel. Poll samples the
// channel, resolves the pressed button from the trigger levels and
// reports Press/Longpress/Release transitions through the callback.
type Keypad struct {
	channel    hal.ADCChannel
	callback   Callback
	buttons    []Button
	current    int // index of the held button, -1 when none
	lpTimer    core.IntervalTimer
	lpInterval core.Ticks
	lpMode     LongPress
	lpFired    bool
	repeat     bool
}

// NewKeypad configures the channel and returns a keypad over the given
// buttons. An empty button collection is a contract violation.
func NewKeypad(channel hal.ADCChannel, callback Callback, mode LongPress, lpInterval core.Ticks, buttons []Button) (*Keypad, error) {
	if len(buttons) == 0 {
		panic("keypad: empty button collection")
	}
	if err := hal.MustADC().ConfigureChannel(channel); err != nil {
		return nil, err
	}
	return &Keypad{
		channel:    channel,
		callback:   callback,
		buttons:    buttons,
		current:    -1,
		lpInterval: lpInterval,
		lpMode:     mode,
	}, nil
}

// SetRepeat sets repeat mode: while on, a held button reports Press on
// every poll instead of longpress handling.
func (k *Keypad) SetRepeat(on bool) {
	k.repeat = on
}

// Poll services the keypad once
func (k *Keypad) Poll() {
	idx := k.readInput()
	switch {
	case k.current < 0 && idx >= 0:
		k.current = idx
		k.pressEvent()
	case k.current >= 0 && idx < 0:
		k.releaseEvent()
		k.current = -1
	case k.current >= 0 && idx == k.current:
		k.holdEvent()
	}
}

// Clock services the keypad, satisfying the Clockable contract
func (k *Keypad) Clock() {
	k.Poll()
}

// readInput samples the channel and returns the index of the pressed
// button, or -1. The ladder pulls the input to at most the pressed
// button's trigger level, so the first level at or above the reading
// identifies the button; a reading above every level means no press.
func (k *Keypad) readInput() int {
	v := hal.MustADC().Sample(k.channel)
	for i := range k.buttons {
		if v <= k.buttons[i].TriggerLevel {
			return i
		}
	}
	return -1
}

func (k *Keypad) pressEvent() {
	if k.lpMode != LongPressNone {
		k.lpTimer.StartWith(k.lpInterval)
	}
	k.lpFired = false
	k.notify(Press)
}

func (k *Keypad) holdEvent() {
	if k.repeat {
		k.notify(Press)
		return
	}
	if k.lpMode == LongPressHold && !k.lpFired && k.lpTimer.Expired() {
		k.lpFired = true
		k.notify(Longpress)
	}
}

func (k *Keypad) releaseEvent() {
	k.lpTimer.Stop()
	if k.lpMode == LongPressRelease && k.lpTimer.Elapsed() >= k.lpInterval && k.lpInterval != 0 {
		k.notify(Longpress)
		return
	}
	k.notify(Release)
}

func (k *Keypad) notify(e Event) {
	if k.callback != nil {
		k.callback(&k.buttons[k.current], e)
	}
}
