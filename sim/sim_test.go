package sim

import (
	"bytes"
	"strings"
	"testing"

	"github.com/rs/zerolog"

	"tickwork/core"
)

func newTestRig(t *testing.T) (*Rig, *bytes.Buffer) {
	t.Helper()
	core.SetClock(0)

	cfg := DefaultConfig()
	cfg.Keypad.Poll = "10ms"
	cfg.Display.Refresh = "50ms"
	cfg.Servo.Interval = "10ms"
	cfg.Sequence.Events = []EventConfig{
		{Name: "warmup", Duration: "100ms"},
		{Name: "run", Duration: "200ms"},
		{Name: "cooldown", Duration: "150ms"},
	}

	out := &bytes.Buffer{}
	rig, err := NewRig(cfg, zerolog.Nop(), out)
	if err != nil {
		t.Fatalf("NewRig: %v", err)
	}
	rig.Tick() // first pass arms the task timers
	return rig, out
}

// run advances the simulated clock one millisecond per scheduler pass
func run(r *Rig, ms int) {
	for i := 0; i < ms; i++ {
		core.AdvanceClock(1)
		r.Tick()
	}
}

func TestRigRemoteSequence(t *testing.T) {
	rig, out := newTestRig(t)

	rig.Inject("seq start")
	run(rig, 60)
	if !strings.Contains(out.String(), "ok") {
		t.Fatalf("no ok response: %q", out.String())
	}
	if rig.Sequencer().Status() != core.StatusActive {
		t.Fatal("sequence not running")
	}
	if got := rig.Sequencer().Event().Name; got != "warmup" {
		t.Errorf("current event = %q, want warmup", got)
	}

	// First event is 100ms; well past that the cursor has advanced.
	run(rig, 120)
	if got := rig.Sequencer().Event().Name; got != "run" {
		t.Errorf("current event = %q, want run", got)
	}

	out.Reset()
	rig.Inject("seq status")
	run(rig, 60)
	if !strings.Contains(out.String(), "run") {
		t.Errorf("status response = %q", out.String())
	}
}

func TestRigButtons(t *testing.T) {
	rig, _ := newTestRig(t)

	// Button 3 scrubs to the next event.
	rig.PressButton(3)
	run(rig, 15)
	rig.ReleaseButtons()
	run(rig, 15)

	if got := rig.Sequencer().Index(); got != 2 {
		t.Errorf("index after next = %d, want 2", got)
	}

	// Button 1 resumes from the scrubbed position.
	rig.PressButton(1)
	run(rig, 15)
	rig.ReleaseButtons()
	run(rig, 15)

	if rig.Sequencer().Status() != core.StatusActive {
		t.Error("sequence not running after start button")
	}
	if got := rig.Sequencer().Event().Name; got != "run" {
		t.Errorf("current event = %q, want run", got)
	}
}

func TestRigServoCommand(t *testing.T) {
	rig, out := newTestRig(t)

	rig.Inject("servo 180")
	run(rig, 60)
	if !strings.Contains(out.String(), "steps") {
		t.Fatalf("no sweep response: %q", out.String())
	}
	if !rig.Servo().Sweeping() {
		t.Fatal("servo not sweeping")
	}

	run(rig, 400)
	if rig.Servo().Sweeping() {
		t.Error("sweep never completed")
	}
	if got := rig.Servo().Angle(); got != 180 {
		t.Errorf("angle = %d, want 180", got)
	}
}

func TestRigEstop(t *testing.T) {
	rig, _ := newTestRig(t)

	rig.Inject("seq start")
	run(rig, 60)
	if rig.Sequencer().Status() != core.StatusActive {
		t.Fatal("sequence not running")
	}

	rig.SetEstop(false)
	run(rig, 15)
	if rig.Sequencer().Status() != core.StatusIdle {
		t.Error("emergency stop did not halt the sequence")
	}

	// Releasing the switch does not restart anything.
	rig.SetEstop(true)
	run(rig, 15)
	if rig.Sequencer().Status() != core.StatusIdle {
		t.Error("sequence restarted on estop release")
	}
}

func TestRigUnknownCommandReported(t *testing.T) {
	rig, _ := newTestRig(t)

	var debug []string
	core.SetDebugWriter(func(msg string) { debug = append(debug, msg) })
	defer core.SetDebugWriter(nil)

	rig.Inject("nosuch")
	run(rig, 60)
	if len(debug) == 0 {
		t.Fatal("unknown command not reported on the debug hook")
	}
	if !strings.Contains(debug[0], "unknown command") {
		t.Errorf("debug = %q", debug[0])
	}
}
