//go:build rp2040 || rp2350

// Demo firmware for a Pico-class board: a four button analog keypad, a
// 16x2 I2C character display, a sweep servo and an EEPROM-persisted
// event sequence, all driven by one cooperative scheduler and
// controllable over the USB serial console.
package main

import (
	"machine"
	"time"

	"tickwork/core"
	"tickwork/display"
	"tickwork/eeprom"
	"tickwork/hal"
	"tickwork/keypad"
	"tickwork/remote"
	"tickwork/servo"
)

const (
	lcdAddr    = 0x27
	lcdCols    = 16
	lcdRows    = 2
	servoPin   = machine.GPIO16
	eepromSize = 4096
)

var seq *core.Sequencer

func main() {
	start := time.Now()
	core.SetClockSource(func() core.Ticks {
		return core.Ticks(time.Since(start) / time.Millisecond)
	})

	machine.LED.Configure(machine.PinConfig{Mode: machine.PinOutput})

	hal.SetGPIODriver(rpGPIO{})
	hal.SetADCDriver(newRPADC())
	hal.SetPWMDriver(newRPPWM(machine.PWM0, servoPin))

	machine.I2C0.Configure(machine.I2CConfig{})
	hal.SetEEPROM(eeprom.NewAT24CX(machine.I2C0, eepromSize))

	lcd, err := display.NewHD44780(machine.I2C0, lcdAddr, lcdCols, lcdRows)
	if err != nil {
		for {
			time.Sleep(time.Second)
		}
	}

	seq = core.NewSequencer([]*core.Event{
		{Name: "warmup", Duration: core.TicksFromMS(2000)},
		{Name: "run", Duration: core.TicksFromMS(5000)},
		{Name: "cooldown", Duration: core.TicksFromMS(3000)},
	}, onSequence, true)

	sweep := servo.NewSweepServo(servo.DefaultTraits())
	sweep.Attach(0)

	disp := display.NewDisplay(lcd, render, display.NewScreen("seq",
		[]display.Field{{Col: 0, Row: 0}}, make([]string, lcdRows)))

	pad, err := keypad.NewKeypad(0, onButton, keypad.LongPressHold,
		core.TicksFromMS(1000), []keypad.Button{
			{Tag: 1, TriggerLevel: 6000},
			{Tag: 2, TriggerLevel: 20000},
			{Tag: 3, TriggerLevel: 40000},
			{Tag: 4, TriggerLevel: 58000},
		})
	if err != nil {
		for {
			time.Sleep(time.Second)
		}
	}

	reg := remote.NewRegistry()
	reg.MustRegister("start", "start the sequence", func([]string) error {
		seq.Resume()
		return nil
	})
	reg.MustRegister("stop", "stop the sequence", func([]string) error {
		seq.Stop()
		return nil
	})
	reg.MustRegister("servo", "servo <angle>", func(args []string) error {
		if len(args) > 0 {
			sweep.Sweep(parseAngle(args[0]))
		}
		return nil
	})
	rem := remote.NewRemote(reg, usbSerial{}, 128)
	rem.SetEcho(usbSerial{})

	sched := core.NewScheduler([]*core.Task{
		core.NewTask(core.NewClockCommand(pad), core.TicksFromMS(25), core.TaskActive),
		core.NewTask(core.NewClockCommand(seq), core.TicksFromMS(5), core.TaskActive),
		core.NewTask(core.NewClockCommand(sweep), core.TicksFromMS(20), core.TaskActive),
		core.NewTask(core.NewClockCommand(disp), core.TicksFromMS(100), core.TaskActive),
		core.NewTask(core.NewClockCommand(rem), core.TicksFromMS(50), core.TaskActive),
	})

	for {
		sched.Tick()
		time.Sleep(time.Millisecond)
	}
}

func onSequence(e *core.Event, phase core.EventPhase) {
	if phase == core.EventBegin {
		machine.LED.Set(!machine.LED.Get())
	}
}

func onButton(b *keypad.Button, e keypad.Event) {
	if e == keypad.Release {
		return
	}
	switch b.Tag {
	case 1:
		if e == keypad.Longpress {
			seq.Reset()
		} else {
			seq.Resume()
		}
	case 2:
		seq.Stop()
	case 3:
		seq.Next()
	case 4:
		seq.Prev()
	}
}

func render(s *display.Screen) []string {
	name := "-"
	if e := seq.Event(); e != nil {
		name = e.Name
	}
	status := "idle"
	switch seq.Status() {
	case core.StatusActive:
		status = "run"
	case core.StatusDone:
		status = "done"
	}
	return []string{
		display.PadRight(name, lcdCols, ' '),
		display.PadRight(status+" "+display.Utoa(core.TicksToMS(seq.Elapsed())/1000)+"s", lcdCols, ' '),
	}
}

func parseAngle(s string) uint16 {
	var v uint16
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			break
		}
		v = v*10 + uint16(s[i]-'0')
	}
	return v
}
