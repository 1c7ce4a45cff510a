package input

import (
	"testing"

	"tickwork/core"
	"tickwork/hal"
)

func setupGPIO(t *testing.T) *hal.SimGPIO {
	t.Helper()
	g := hal.NewSimGPIO()
	hal.SetGPIODriver(g)
	return g
}

func TestDigitalInputEdgeTrigger(t *testing.T) {
	g := setupGPIO(t)

	in, err := NewDigitalInput(4, true)
	if err != nil {
		t.Fatalf("NewDigitalInput: %v", err)
	}

	var fired int
	// Pull-up input: pressing the switch pulls the pin low.
	in.SetTrigger(TriggerEdge, false, core.CommandFunc(func() { fired++ }))

	in.Poll() // idle high
	if fired != 0 {
		t.Fatal("Trigger fired while idle")
	}

	g.SetInput(4, false)
	in.Poll()
	if fired != 1 {
		t.Fatalf("Edge trigger fired %d times, want 1", fired)
	}

	// Held low: an edge trigger does not re-fire.
	in.Poll()
	in.Poll()
	if fired != 1 {
		t.Errorf("Edge trigger re-fired while held: %d", fired)
	}

	// Release and press again: one more firing.
	g.SetInput(4, true)
	in.Poll()
	g.SetInput(4, false)
	in.Poll()
	if fired != 2 {
		t.Errorf("Edge trigger fired %d times after second press, want 2", fired)
	}
}

func TestDigitalInputLevelTrigger(t *testing.T) {
	g := setupGPIO(t)

	in, err := NewDigitalInput(7, false)
	if err != nil {
		t.Fatalf("NewDigitalInput: %v", err)
	}

	var fired int
	in.SetTrigger(TriggerLevel, true, core.CommandFunc(func() { fired++ }))

	g.SetInput(7, true)
	for i := 0; i < 3; i++ {
		in.Poll()
	}
	if fired != 3 {
		t.Errorf("Level trigger fired %d times over 3 polls, want 3", fired)
	}

	g.SetInput(7, false)
	in.Poll()
	if fired != 3 {
		t.Errorf("Level trigger fired while out of state: %d", fired)
	}
}

func TestDigitalInputNoTrigger(t *testing.T) {
	g := setupGPIO(t)

	in, err := NewDigitalInput(2, false)
	if err != nil {
		t.Fatalf("NewDigitalInput: %v", err)
	}

	g.SetInput(2, true)
	if in.Triggered() {
		t.Error("TriggerNone input reported triggered")
	}
	if !in.Is(true) {
		t.Error("Is(true) = false for a high pin")
	}
}

func TestAnalogInputWindow(t *testing.T) {
	adc := hal.NewSimADC()
	hal.SetADCDriver(adc)

	in, err := NewAnalogInput(1)
	if err != nil {
		t.Fatalf("NewAnalogInput: %v", err)
	}

	var fired int
	in.SetTrigger(TriggerEdge, 100, 200, core.CommandFunc(func() { fired++ }))

	adc.SetSample(1, 50)
	in.Poll()
	adc.SetSample(1, 150)
	in.Poll() // enters window
	in.Poll() // still inside, edge does not re-fire
	adc.SetSample(1, 500)
	in.Poll() // leaves
	adc.SetSample(1, 120)
	in.Poll() // re-enters

	if fired != 2 {
		t.Errorf("Window edge trigger fired %d times, want 2", fired)
	}
	if got := in.Read(); got != 120 {
		t.Errorf("Read = %d, want 120", got)
	}
}

func TestInputAsClockable(t *testing.T) {
	g := setupGPIO(t)

	in, err := NewDigitalInput(9, true)
	if err != nil {
		t.Fatalf("NewDigitalInput: %v", err)
	}
	var fired int
	in.SetTrigger(TriggerEdge, false, core.CommandFunc(func() { fired++ }))

	// Wire the input into a scheduler task through the Clockable contract.
	core.SetClock(0)
	task := core.NewTask(core.NewClockCommand(in), 10, core.TaskActive)
	sched := core.NewScheduler([]*core.Task{task})

	sched.Tick() // arming pass
	g.SetInput(9, false)
	core.SetClock(10)
	sched.Tick()
	if fired != 1 {
		t.Errorf("Scheduled input poll fired %d times, want 1", fired)
	}
}
