// Package sim assembles a complete simulated firmware rig on the host:
// a scheduler driving a keypad, a character display, an event sequencer,
// a sweep servo and a serial command surface, all over the in-memory
// HAL drivers. It exists to exercise the full stack without hardware.
package sim

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"strconv"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"tickwork/core"
	"tickwork/display"
	"tickwork/eeprom"
	"tickwork/hal"
	"tickwork/input"
	"tickwork/keypad"
	"tickwork/remote"
	"tickwork/servo"
)

// estopPin is the simulated emergency stop switch (pull-up, active low)
const estopPin hal.Pin = 2

// lineQueue is a byte queue that reads like an idle serial port:
// empty means io.EOF, not blocking.
type lineQueue struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (q *lineQueue) Read(p []byte) (int, error) {
	q.mu.Lock()
	defer q.mu.Unlock()
	if q.buf.Len() == 0 {
		return 0, io.EOF
	}
	return q.buf.Read(p)
}

func (q *lineQueue) Write(p []byte) (int, error) {
	q.mu.Lock()
	defer q.mu.Unlock()
	return q.buf.Write(p)
}

// rigState is the rig's persisted record
type rigState struct {
	Boots uint32
	Angle uint16
}

func (r *rigState) Save(s *eeprom.Stream) error {
	if err := s.WriteUint32(r.Boots); err != nil {
		return err
	}
	return s.WriteUint16(r.Angle)
}

func (r *rigState) Load(s *eeprom.Stream) error {
	var err error
	if r.Boots, err = s.ReadUint32(); err != nil {
		return err
	}
	r.Angle, err = s.ReadUint16()
	return err
}

// Rig is the assembled simulated device
type Rig struct {
	log   zerolog.Logger
	cfg   *Config
	gpio  *hal.SimGPIO
	adc   *hal.SimADC
	pwm   *hal.SimPWM
	sched *core.Scheduler
	seq   *core.Sequencer
	pad   *keypad.Keypad
	disp  *display.Display
	sweep *servo.SweepServo
	estop *input.DigitalInput
	rem   *remote.Remote
	store *eeprom.Stream
	state rigState
	input *lineQueue
	out   io.Writer
}

// NewRig builds the rig from a validated configuration. Command
// responses and display output notes go to out.
func NewRig(cfg *Config, log zerolog.Logger, out io.Writer) (*Rig, error) {
	r := &Rig{
		log:   log,
		cfg:   cfg,
		gpio:  hal.NewSimGPIO(),
		adc:   hal.NewSimADC(),
		pwm:   hal.NewSimPWM(),
		input: &lineQueue{},
		out:   out,
	}
	hal.SetGPIODriver(r.gpio)
	hal.SetADCDriver(r.adc)
	hal.SetPWMDriver(r.pwm)
	hal.SetEEPROM(hal.NewMemEEPROM(4096))

	core.SetDebugWriter(func(msg string) {
		r.log.Debug().Msg(msg)
	})
	core.SetDebugEnabled(true)

	if err := r.buildSequencer(); err != nil {
		return nil, err
	}
	if err := r.buildKeypad(); err != nil {
		return nil, err
	}
	if err := r.buildServo(); err != nil {
		return nil, err
	}
	if err := r.buildEstop(); err != nil {
		return nil, err
	}
	r.buildDisplay()
	r.buildRemote()
	if err := r.restoreState(); err != nil {
		return nil, err
	}
	if err := r.buildSchedule(); err != nil {
		return nil, err
	}
	return r, nil
}

func (r *Rig) buildSequencer() error {
	events := make([]*core.Event, len(r.cfg.Sequence.Events))
	for i, e := range r.cfg.Sequence.Events {
		d, err := ticksField("sequence.events.duration", e.Duration, time.Second)
		if err != nil {
			return err
		}
		events[i] = &core.Event{Name: e.Name, Duration: d}
	}
	r.seq = core.NewSequencer(events, func(e *core.Event, phase core.EventPhase) {
		r.log.Info().
			Str("event", e.Name).
			Bool("begin", phase == core.EventBegin).
			Msg("sequence")
		r.disp.Touch()
	}, r.cfg.Sequence.Wrap)
	return nil
}

func (r *Rig) buildKeypad() error {
	lp, err := ticksField("keypad.longpress", r.cfg.Keypad.Longpress, time.Second)
	if err != nil {
		return err
	}
	buttons := make([]keypad.Button, len(r.cfg.Keypad.Buttons))
	for i, b := range r.cfg.Keypad.Buttons {
		buttons[i] = keypad.Button{Tag: b.Tag, TriggerLevel: b.Level}
	}
	r.pad, err = keypad.NewKeypad(0, r.onButton, keypad.LongPressHold, lp, buttons)
	if err != nil {
		return err
	}
	r.pad.SetRepeat(r.cfg.Keypad.Repeat)
	return nil
}

// onButton maps the four panel buttons onto the sequencer transport
func (r *Rig) onButton(b *keypad.Button, e keypad.Event) {
	r.log.Debug().Int("button", b.Tag).Uint8("event", uint8(e)).Msg("keypad")
	if e == keypad.Release {
		return
	}
	switch b.Tag {
	case 1:
		if e == keypad.Longpress {
			r.seq.Reset()
		} else if r.seq.Status() == core.StatusActive {
			r.seq.Stop()
		} else {
			r.seq.Resume()
		}
	case 2:
		r.seq.Stop()
	case 3:
		r.seq.Next()
	case 4:
		r.seq.Prev()
	}
	r.disp.Touch()
}

func (r *Rig) buildServo() error {
	r.sweep = servo.NewSweepServo(servo.DefaultTraits())
	if r.cfg.Servo.StepUS != 0 {
		r.sweep.SetStepSize(r.cfg.Servo.StepUS)
	}
	return r.sweep.Attach(0)
}

// buildEstop wires the emergency stop switch: pulling the pin low halts
// the sequence regardless of keypad or console state.
func (r *Rig) buildEstop() error {
	in, err := input.NewDigitalInput(estopPin, true)
	if err != nil {
		return err
	}
	in.SetTrigger(input.TriggerEdge, false, core.CommandFunc(func() {
		r.log.Warn().Msg("emergency stop")
		r.seq.Stop()
		r.disp.Touch()
	}))
	r.estop = in
	return nil
}

// SetEstop drives the simulated emergency stop switch level; false
// asserts the stop (the switch is active low).
func (r *Rig) SetEstop(level bool) {
	r.gpio.SetInput(estopPin, level)
}

func (r *Rig) buildDisplay() {
	screen := display.NewScreen("seq",
		[]display.Field{{Col: 0, Row: 0}, {Col: 0, Row: 1}},
		make([]string, int(r.cfg.Display.Rows)))
	dev := newLogDevice(r.log, r.cfg.Display.Cols, r.cfg.Display.Rows)
	r.disp = display.NewDisplay(dev, r.render, screen)
}

// render produces the two status rows shown on the panel
func (r *Rig) render(s *display.Screen) []string {
	cols := int(r.cfg.Display.Cols)
	name := "-"
	if e := r.seq.Event(); e != nil {
		name = e.Name
	}
	var status string
	switch r.seq.Status() {
	case core.StatusActive:
		status = "run " + display.Utoa(core.TicksToMS(r.seq.Elapsed())/1000) + "s"
	case core.StatusDone:
		status = "done"
	default:
		status = "idle"
	}
	rows := make([]string, int(r.cfg.Display.Rows))
	rows[0] = display.PadRight(name, cols, ' ')
	if len(rows) > 1 {
		rows[1] = display.PadRight(status, cols, ' ')
	}
	return rows
}

func (r *Rig) buildRemote() {
	reg := remote.NewRegistry()
	reg.MustRegister("seq", "seq start|stop|next|prev|reset|status", r.cmdSeq)
	reg.MustRegister("servo", "servo <angle> - sweep to angle", r.cmdServo)
	reg.MustRegister("save", "persist rig state", r.cmdSave)
	reg.MustRegister("help", "list commands", func([]string) error {
		for _, e := range reg.Dictionary() {
			fmt.Fprintf(r.out, "%s - %s\n", e.Name, e.Help)
		}
		return nil
	})
	r.rem = remote.NewRemote(reg, r.input, r.cfg.Remote.Buffer)
}

func (r *Rig) cmdSeq(args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("seq: missing subcommand")
	}
	switch args[0] {
	case "start":
		r.seq.Start()
	case "stop":
		r.seq.Stop()
	case "next":
		r.seq.Next()
	case "prev":
		r.seq.Prev()
	case "reset":
		r.seq.Reset()
	case "status":
		name := "-"
		if e := r.seq.Event(); e != nil {
			name = e.Name
		}
		fmt.Fprintf(r.out, "seq %d %s elapsed=%dms\n",
			r.seq.Index(), name, core.TicksToMS(r.seq.Elapsed()))
		return nil
	default:
		return fmt.Errorf("seq: unknown subcommand %q", args[0])
	}
	r.disp.Touch()
	fmt.Fprintf(r.out, "ok\n")
	return nil
}

func (r *Rig) cmdServo(args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("servo: missing angle")
	}
	angle, err := strconv.ParseUint(args[0], 10, 16)
	if err != nil {
		return fmt.Errorf("servo: bad angle %q", args[0])
	}
	steps, err := r.sweep.Sweep(uint16(angle))
	if err != nil {
		return err
	}
	fmt.Fprintf(r.out, "ok %d steps\n", steps)
	return nil
}

func (r *Rig) cmdSave(args []string) error {
	r.state.Angle = r.sweep.Angle()
	r.store.Reset()
	if err := r.store.Store(&r.state); err != nil {
		return err
	}
	fmt.Fprintf(r.out, "ok\n")
	return nil
}

// restoreState loads the persisted record and counts the boot
func (r *Rig) restoreState() error {
	r.store = eeprom.NewStream(nil)
	if err := r.store.Load(&r.state); err != nil {
		return err
	}
	r.state.Boots++
	r.store.Reset()
	if err := r.store.Store(&r.state); err != nil {
		return err
	}
	r.log.Info().Uint32("boots", r.state.Boots).Uint16("angle", r.state.Angle).Msg("state restored")
	if r.state.Angle != 0 {
		r.sweep.Sweep(r.state.Angle)
	}
	return nil
}

func (r *Rig) buildSchedule() error {
	poll, err := ticksField("keypad.poll", r.cfg.Keypad.Poll, 25*time.Millisecond)
	if err != nil {
		return err
	}
	refresh, err := ticksField("display.refresh", r.cfg.Display.Refresh, 100*time.Millisecond)
	if err != nil {
		return err
	}
	step, err := ticksField("servo.interval", r.cfg.Servo.Interval, 20*time.Millisecond)
	if err != nil {
		return err
	}

	r.sched = core.NewScheduler([]*core.Task{
		core.NewTask(core.NewClockCommand(r.pad), poll, core.TaskActive),
		core.NewTask(core.NewClockCommand(r.estop), poll, core.TaskActive),
		core.NewTask(core.NewClockCommand(r.seq), 5, core.TaskActive),
		core.NewTask(core.NewClockCommand(r.sweep), step, core.TaskActive),
		core.NewTask(core.NewClockCommand(r.disp), refresh, core.TaskActive),
		core.NewTask(core.NewClockCommand(r.rem), 50, core.TaskActive),
	})
	r.sched.SetPassBudget(100)
	return nil
}

// Inject queues a line of console input for the remote poller
func (r *Rig) Inject(line string) {
	io.WriteString(r.input, line+"\n")
}

// PressButton simulates the panel button with the given tag going down
func (r *Rig) PressButton(tag int) {
	for _, b := range r.cfg.Keypad.Buttons {
		if b.Tag == tag {
			r.adc.SetSample(0, b.Level)
			return
		}
	}
}

// ReleaseButtons simulates all panel buttons up
func (r *Rig) ReleaseButtons() {
	r.adc.SetSample(0, 0xFFFF)
}

// Sequencer exposes the transport for tests and tooling
func (r *Rig) Sequencer() *core.Sequencer {
	return r.seq
}

// Servo exposes the sweep controller for tests and tooling
func (r *Rig) Servo() *servo.SweepServo {
	return r.sweep
}

// Tick runs one scheduler pass against the current clock
func (r *Rig) Tick() {
	r.sched.Tick()
}

// Run drives the rig against the host wall clock until ctx is done
func (r *Rig) Run(ctx context.Context) error {
	core.SetClockSource(core.WallClock())
	defer core.SetClockSource(nil)

	ticker := time.NewTicker(time.Millisecond)
	defer ticker.Stop()

	r.log.Info().Msg("rig running")
	for {
		select {
		case <-ctx.Done():
			if err := r.cmdSave(nil); err != nil {
				r.log.Error().Err(err).Msg("state save failed")
			}
			return ctx.Err()
		case <-ticker.C:
			r.sched.Tick()
		}
	}
}
