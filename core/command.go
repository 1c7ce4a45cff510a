// Command and Clockable capability contracts
// These two narrow interfaces are the entire boundary between the
// scheduling core and the hardware-facing driver objects it services
package core

// Command is a zero-argument, no-return executable action. Any driver
// behavior the scheduler should trigger is wrapped as one Command.
type Command interface {
	Execute()
}

// Clockable is implemented by stateful driver objects that need periodic
// service (poll an input, refresh a display, advance a sequencer).
// Implementations forward Clock to their own service method.
type Clockable interface {
	Clock()
}

// CommandFunc adapts a plain function to the Command interface.
// Method values work too: CommandFunc(keypad.Poll) binds receiver and
// method in one expression.
type CommandFunc func()

func (f CommandFunc) Execute() { f() }

// BindCommand curries one argument onto a function, yielding a Command
// that passes arg on every execution.
func BindCommand[T any](fn func(T), arg T) Command {
	return CommandFunc(func() { fn(arg) })
}

// NullCommand is a Command that does nothing
type NullCommand struct{}

func (NullCommand) Execute() {}

// ClockCommand adapts a Clockable into a Command so timed tasks can drive
// driver objects through their periodic-service method.
type ClockCommand struct {
	receiver Clockable
}

// NewClockCommand returns a Command that forwards to receiver.Clock
func NewClockCommand(receiver Clockable) *ClockCommand {
	return &ClockCommand{receiver: receiver}
}

func (c *ClockCommand) Execute() {
	c.receiver.Clock()
}
