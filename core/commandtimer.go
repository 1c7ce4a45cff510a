// Timed command execution
package core

// CommandTimer binds an IntervalTimer to one Command. Tick is called once
// per scheduler pass; when the interval expires the command executes
// exactly once and the timer either resets (repeating) or stops
// (one-shot). Command execution is synchronous: it must return before the
// next component can be serviced.
type CommandTimer struct {
	IntervalTimer
	command Command
	repeats bool
}

// NewCommandTimer returns a stopped CommandTimer. Call Start to arm it.
func NewCommandTimer(interval Ticks, command Command, repeats bool) *CommandTimer {
	t := &CommandTimer{command: command, repeats: repeats}
	t.interval = interval
	return t
}

// Command returns the bound command
func (t *CommandTimer) Command() Command {
	return t.command
}

// SetCommand rebinds the command without disturbing the timer's
// accumulated elapsed time.
func (t *CommandTimer) SetCommand(command Command) {
	t.command = command
}

// Repeats returns the repeat mode
func (t *CommandTimer) Repeats() bool {
	return t.repeats
}

// SetRepeats sets the repeat mode without disturbing the timer
func (t *CommandTimer) SetRepeats(repeats bool) {
	t.repeats = repeats
}

// Tick checks the interval and executes the bound command if it expired
func (t *CommandTimer) Tick() {
	if t.Expired() {
		t.execute()
	}
}

func (t *CommandTimer) execute() {
	if t.command != nil {
		t.command.Execute()
	}
	if t.repeats {
		t.Reset()
	} else {
		t.Stop()
	}
}
